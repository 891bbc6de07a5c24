package ir

// Equal reports whether a and b are logically equal. Key order is
// significant, and an integer never equals a float.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case StringType, BareWordType:
		return a.String == b.String
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if a.IsFloat() != b.IsFloat() {
			return false
		}
		if a.IsFloat() {
			return *a.Float64 == *b.Float64
		}
		return a.NumberText() == b.NumberText()
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		return EqualMaps(a.Fields, b.Fields)
	}
	return false
}

// EqualMaps compares two property maps entry by entry, in order. A nil
// map only equals another nil map.
func EqualMaps(a, b *PropertyMap) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Len() != b.Len() {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k {
			return false
		}
		if !Equal(a.vals[k], b.vals[k]) {
			return false
		}
	}
	return true
}

func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !EqualMaps(d.App, o.App) || !EqualMaps(d.Style, o.Style) {
		return false
	}
	if len(d.Questions) != len(o.Questions) {
		return false
	}
	for i, q := range d.Questions {
		oq := o.Questions[i]
		if q.ID != oq.ID || q.Type != oq.Type || !EqualMaps(q.Props, oq.Props) {
			return false
		}
	}
	return true
}
