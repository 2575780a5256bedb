package runtime

import "io"

// ObjectHolder is a reference handle that is either empty (represents
// None) or wraps an Object. Go's garbage collector makes manual
// refcounting unnecessary, so Own and Share are behaviorally identical;
// they are kept as two named constructors purely so call sites read the
// same way the spec's vocabulary does: Own at allocation sites, Share when
// handing self into a method call.
type ObjectHolder struct {
	obj Object
}

// None returns an empty holder.
func None() ObjectHolder {
	return ObjectHolder{}
}

// Own wraps a freshly allocated Object in an owning holder.
func Own(obj Object) ObjectHolder {
	return ObjectHolder{obj: obj}
}

// Share returns a non-owning holder pointing at an object owned elsewhere.
// Used to pass self into a method call without implying a fresh allocation.
func Share(obj Object) ObjectHolder {
	return ObjectHolder{obj: obj}
}

// IsEmpty reports whether the holder represents None.
func (h ObjectHolder) IsEmpty() bool {
	return h.obj == nil
}

// Get returns the wrapped Object, or nil if the holder is empty.
func (h ObjectHolder) Get() Object {
	return h.obj
}

// As attempts to downcast the held Object to T, returning the zero value
// and false if the holder is empty or holds a different variant.
func As[T Object](h ObjectHolder) (T, bool) {
	var zero T
	if h.obj == nil {
		return zero, false
	}
	v, ok := h.obj.(T)
	return v, ok
}

// IsTrue reports the holder's truthiness: empty is false; String is
// non-empty length; Number is non-zero; Bool is its own value; anything
// else (including ClassInstance) is false, since truthiness coercion via
// user methods is out of scope.
func IsTrue(h ObjectHolder) bool {
	if h.IsEmpty() {
		return false
	}
	switch v := h.Get().(type) {
	case String:
		return len(v.Value) != 0
	case Number:
		return v.Value != 0
	case Bool:
		return v.Value
	default:
		return false
	}
}

// PrintHolder writes h to w via ctx, printing the literal "None" for an
// empty holder. Mirrors the original interpreter's free function
// PrintObjectHolder.
func PrintHolder(h ObjectHolder, w io.Writer, ctx Context) error {
	if h.IsEmpty() {
		_, err := io.WriteString(w, "None")
		return err
	}
	return h.Get().Print(w, ctx)
}
