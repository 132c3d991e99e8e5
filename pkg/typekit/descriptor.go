package typekit

import "fmt"

// Descriptor is what a predicate tests against. It is one of:
//
//   - Kind: a runtime kind such as "string" or "function"
//   - TagName: a class tag such as "Array", or one of the special spellings "null" and "NaN"
//   - Literal: a concrete value matched by same-value identity
type Descriptor interface {
	fmt.Stringer
	matcher(k *Kernel) func(v any) bool
}

// TagName names a class tag, matched the way Kernel.Is matches it.
type TagName string

func (t TagName) String() string { return string(t) }

// Literal is a concrete value descriptor.
type Literal struct{ Value any }

func (l Literal) String() string { return ToString(l.Value) }

// DescriptorOf resolves a raw descriptor value once.
//
// A plain string spelling one of the runtime kinds becomes a Kind,
// any other non-empty plain string becomes a TagName,
// and every other value, the empty string included, becomes a Literal.
// A Descriptor is returned as is.
func DescriptorOf(v any) Descriptor {
	switch d := v.(type) {
	case Descriptor:
		return d
	case string:
		if kind, ok := ParseKind(d); ok {
			return kind
		}
		if d != "" {
			return TagName(d)
		}
	}
	return Literal{Value: v}
}

func (k Kind) matcher(*Kernel) func(any) bool {
	return func(v any) bool { return KindOf(v) == k }
}

func (t TagName) matcher(k *Kernel) func(any) bool {
	tag := string(t)
	return func(v any) bool { return k.Is(v, tag) }
}

func (l Literal) matcher(*Kernel) func(any) bool {
	target := l.Value
	return func(v any) bool { return SameValue(v, target) }
}
