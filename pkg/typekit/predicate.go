package typekit

// Predicate is a reusable single-argument test.
type Predicate func(v any) bool

// Not returns the inverted form of the predicate.
func (p Predicate) Not() Predicate {
	return func(v any) bool { return !p(v) }
}

// Automate builds a predicate from a descriptor or a literal value.
// The descriptor is resolved once with DescriptorOf, not on every call.
// With invert set, the predicate reports the negated result.
//
//	isString := k.Automate("string", false)
//	notArray := k.Automate("Array", true)
//	isAnswer := k.Automate(42, false)
func (k *Kernel) Automate(descriptor any, invert bool) Predicate {
	match := DescriptorOf(descriptor).matcher(k)
	if invert {
		return func(v any) bool { return !match(v) }
	}
	return match
}

// Is reports whether v matches the type descriptor.
//
// It is true when the descriptor equals the runtime kind of v.
// For undefined, null and NaN the descriptor is compared with the string form
// of v, so "undefined", "null" and "NaN" match them.
// Otherwise the descriptor is compared with the class tag of v,
// as reported by the host or by TagOf.
func (k *Kernel) Is(v any, descriptor string) bool {
	if string(KindOf(v)) == descriptor {
		return true
	}
	if isNothing(v) || IsNaNValue(v) {
		return ToString(v) == descriptor
	}
	return k.tagString(v) == formatTag(descriptor)
}

func (k *Kernel) tagOf(v any) string {
	if !isNothing(v) {
		if tag, ok := k.host.Tag(v); ok {
			return tag
		}
	}
	return TagOf(v)
}

func (k *Kernel) tagString(v any) string {
	return formatTag(k.tagOf(v))
}
