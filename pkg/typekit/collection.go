package typekit

import "reflect"

// Count returns the length of a collection-like object.
// Nodes and the host global are not collections, even when they have a length.
func (k *Kernel) Count(v any) (int, bool) {
	if KindOf(v) != KindObject || isNothing(v) || k.IsNode(v) || k.isGlobal(v) {
		return 0, false
	}
	return Len(v)
}

// IsIndexed reports whether v can be walked by position: strings and collection-like objects.
func (k *Kernel) IsIndexed(v any) bool {
	if KindOf(v) == KindString {
		return true
	}
	_, ok := k.Count(v)
	return ok
}

// IsEmpty reports whether v holds nothing.
//
// Undefined and null are empty. Among the other primitives only the empty string is.
// An object is empty when its numeric length is zero,
// or when it has no enumerable own properties.
// The host global is never empty.
func (k *Kernel) IsEmpty(v any) bool {
	if isNothing(v) {
		return true
	}
	switch KindOf(v) {
	case KindString:
		return reflect.ValueOf(v).Len() == 0
	case KindObject:
	default:
		return false
	}
	if n, ok := Len(v); ok && n == 0 {
		return !k.isGlobal(v)
	}
	for p := range Enumerate(v) {
		if p.Own {
			return false
		}
	}
	return true
}
