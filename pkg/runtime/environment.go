package runtime

// Closure is a flat identifier→ObjectHolder mapping. Unlike a lexically
// chained environment, a Closure never delegates to a parent: each
// function/method activation and each class instance gets its own Closure,
// and name resolution inside a method body never reaches outside it except
// through the explicitly bound formal parameters and self, plus the
// fallback to Context.Globals() that variable and class lookups make.
type Closure map[string]ObjectHolder

// NewClosure returns an empty Closure ready for use as a name-resolution
// environment.
func NewClosure() Closure {
	return make(Closure)
}

// Lookup returns the holder bound to name and whether it was found.
func (c Closure) Lookup(name string) (ObjectHolder, bool) {
	h, ok := c[name]
	return h, ok
}

// Set binds name to h, overwriting any existing binding.
func (c Closure) Set(name string, h ObjectHolder) {
	c[name] = h
}
