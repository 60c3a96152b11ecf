package document

// Equal reports whether a and b are structurally identical, including the
// order of object fields. A nil Value is treated as null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}

	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		if av.Len() == 0 {
			return true
		}
		for i, f := range av.fields {
			g := bv.fields[i]
			if f.key != g.key || !Equal(f.value, g.value) {
				return false
			}
		}
		return true
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && av.kind == bv.kind && av.text == bv.text
	}
	return false
}
