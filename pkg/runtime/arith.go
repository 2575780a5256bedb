package runtime

import "fmt"

const (
	addMethod = "__add__"
	subMethod = "__sub__"
	mulMethod = "__mul__"
	divMethod = "__truediv__"
)

// Add implements + : Number+Number, String+String (concatenation), or a
// ClassInstance with a one-argument __add__.
func Add(l, r ObjectHolder, ctx Context) (ObjectHolder, error) {
	if ln, ok := As[Number](l); ok {
		if rn, ok := As[Number](r); ok {
			return Own(Number{Value: ln.Value + rn.Value}), nil
		}
	} else if ls, ok := As[String](l); ok {
		if rs, ok := As[String](r); ok {
			return Own(String{Value: ls.Value + rs.Value}), nil
		}
	} else if li, ok := As[*ClassInstanceObject](l); ok {
		if li.HasMethod(addMethod, 1) {
			return li.Call(addMethod, []ObjectHolder{r}, ctx)
		}
	}
	return None(), fmt.Errorf("mython: adding with different types")
}

// Sub implements - : Number-Number, or a ClassInstance with __sub__.
func Sub(l, r ObjectHolder, ctx Context) (ObjectHolder, error) {
	if ln, ok := As[Number](l); ok {
		if rn, ok := As[Number](r); ok {
			return Own(Number{Value: ln.Value - rn.Value}), nil
		}
	} else if li, ok := As[*ClassInstanceObject](l); ok {
		if li.HasMethod(subMethod, 1) {
			return li.Call(subMethod, []ObjectHolder{r}, ctx)
		}
	}
	return None(), fmt.Errorf("mython: sub with different types")
}

// Mul implements * : Number*Number, or a ClassInstance with __mul__.
func Mul(l, r ObjectHolder, ctx Context) (ObjectHolder, error) {
	if ln, ok := As[Number](l); ok {
		if rn, ok := As[Number](r); ok {
			return Own(Number{Value: ln.Value * rn.Value}), nil
		}
	} else if li, ok := As[*ClassInstanceObject](l); ok {
		if li.HasMethod(mulMethod, 1) {
			return li.Call(mulMethod, []ObjectHolder{r}, ctx)
		}
	}
	return None(), fmt.Errorf("mython: mult with different types")
}

// Div implements / : Number/Number (fatal on division by zero), or a
// ClassInstance with __truediv__.
func Div(l, r ObjectHolder, ctx Context) (ObjectHolder, error) {
	if ln, ok := As[Number](l); ok {
		if rn, ok := As[Number](r); ok {
			if rn.Value == 0 {
				return None(), fmt.Errorf("mython: division by zero")
			}
			return Own(Number{Value: ln.Value / rn.Value}), nil
		}
	} else if li, ok := As[*ClassInstanceObject](l); ok {
		if li.HasMethod(divMethod, 1) {
			return li.Call(divMethod, []ObjectHolder{r}, ctx)
		}
	}
	return None(), fmt.Errorf("mython: div with different types")
}
