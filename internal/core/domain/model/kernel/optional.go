package kernel

// Optional is a tri-state field wrapper used by partial-update forms. A field
// can be absent (left untouched), explicitly null (cleared), or carry a value
// (overwritten). Plain pointers cannot express the difference between absent
// and null, so patch structures use Optional instead.
//
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional carrying a value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// Null returns an Optional that is present but explicitly cleared.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// None returns an absent Optional. Equivalent to the zero value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether the field was supplied at all, as a value or as
// an explicit null.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsNull reports whether the field was supplied as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Value returns the carried value and whether one is carried.
func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// OrElse returns the carried value, or fallback when the Optional is absent
// or null.
func (o Optional[T]) OrElse(fallback T) T {
	if v, ok := o.Value(); ok {
		return v
	}
	return fallback
}
