package runtime

import "fmt"

const (
	equalMethod = "__eq__"
	lessMethod  = "__lt__"
)

// compare dispatches a three-way rule shared by Equal and Less: if both
// operands are the same primitive kind, compare their Go values directly;
// if the left operand is a ClassInstance with a matching one-argument
// dunder method, call it and require a Bool result; otherwise fatal.
func compare(l, r ObjectHolder, ctx Context, method string, numCmp func(a, b int32) bool, strCmp func(a, b string) bool, boolCmp func(a, b bool) bool) (bool, error) {
	if ln, ok := As[Number](l); ok {
		if rn, ok := As[Number](r); ok {
			return numCmp(ln.Value, rn.Value), nil
		}
	}
	if ls, ok := As[String](l); ok {
		if rs, ok := As[String](r); ok {
			return strCmp(ls.Value, rs.Value), nil
		}
	}
	if lb, ok := As[Bool](l); ok {
		if rb, ok := As[Bool](r); ok {
			return boolCmp(lb.Value, rb.Value), nil
		}
	}
	if li, ok := As[*ClassInstanceObject](l); ok {
		if r.IsEmpty() {
			return false, fmt.Errorf("mython: invalid compare call")
		}
		if li.HasMethod(method, 1) {
			result, err := li.Call(method, []ObjectHolder{Share(r.Get())}, ctx)
			if err != nil {
				return false, err
			}
			if b, ok := As[Bool](result); ok {
				return b.Value, nil
			}
		}
	}
	return false, fmt.Errorf("mython: invalid compare call")
}

// Equal implements value equality: two empty holders are equal; otherwise
// falls through to the three-way dispatch above using __eq__.
func Equal(l, r ObjectHolder, ctx Context) (bool, error) {
	if l.IsEmpty() && r.IsEmpty() {
		return true, nil
	}
	return compare(l, r, ctx, equalMethod,
		func(a, b int32) bool { return a == b },
		func(a, b string) bool { return a == b },
		func(a, b bool) bool { return a == b },
	)
}

// Less implements ordering via __lt__.
func Less(l, r ObjectHolder, ctx Context) (bool, error) {
	return compare(l, r, ctx, lessMethod,
		func(a, b int32) bool { return a < b },
		func(a, b string) bool { return a < b },
		func(a, b bool) bool { return !a && b },
	)
}

func NotEqual(l, r ObjectHolder, ctx Context) (bool, error) {
	eq, err := Equal(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(l, r ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return false, nil
	}
	eq, err := Equal(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(l, r ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	return Equal(l, r, ctx)
}

func GreaterOrEqual(l, r ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
