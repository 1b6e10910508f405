package vecpath

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

// get returns the value and whether it is set.
func (opt option[T]) get() (T, bool) {
	return opt.value, opt.isSet
}

// or returns the value if it is set, and def otherwise.
func (opt option[T]) or(def T) T {
	if opt.isSet {
		return opt.value
	}
	return def
}
