// Package typekit is a runtime type introspection kernel for values whose static type is `any`.
//
// It classifies values by their runtime kind and class tag,
// builds reusable predicates from a type descriptor or from a literal value,
// and compares values deeply with same-value semantics for NaN and signed zero.
//
//	typekit.Is([]int{}, "Array")        // true
//	typekit.Is(map[string]int{}, "object") // true
//	typekit.Automate("string", false)("x") // true
//	typekit.Equal(math.NaN(), math.NaN())  // true
package typekit

import (
	"math"
	"reflect"
)

// Kind is the runtime kind of a value, the closest Go analogue of a `typeof` result.
// A Kind is also the primitive variant of a Descriptor.
type Kind string

const (
	KindFunction  Kind = "function"
	KindObject    Kind = "object"
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindUndefined Kind = "undefined"
)

var kinds = map[string]Kind{
	string(KindFunction):  KindFunction,
	string(KindObject):    KindObject,
	string(KindString):    KindString,
	string(KindNumber):    KindNumber,
	string(KindBoolean):   KindBoolean,
	string(KindUndefined): KindUndefined,
}

// ParseKind looks up the Kind spelled by name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

func (k Kind) String() string { return string(k) }

// Null is a ready-made null value.
// Any typed nil reference (pointer, map, slice, func, chan) is null,
// while the untyped nil interface value is undefined.
var Null = (*struct{})(nil)

// KindOf returns the runtime kind of v.
//
// Named types are classified by their underlying kind.
// Typed nil references report KindObject, the same way a null does.
func KindOf(v any) Kind {
	if v == nil {
		return KindUndefined
	}
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return KindUndefined
	}
	if isNullValue(rv) {
		return KindObject
	}
	switch rv.Kind() {
	case reflect.Func:
		return KindFunction
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	default:
		return KindObject
	}
}

// IsNull reports whether v is a typed nil reference.
func IsNull(v any) bool {
	if v == nil {
		return false
	}
	return isNullValue(reflect.ValueOf(v))
}

func isNullValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// unwrap returns the dynamic value held by an interface value.
// A nil interface unwraps to the invalid Value, which is undefined.
func unwrap(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv
}

// isNothing covers both spellings of absence: undefined and null.
func isNothing(v any) bool {
	return v == nil || IsNull(v)
}

// IsNaNValue reports whether v is the NaN sentinel, the only number that fails self-equality.
// Boxed numbers are objects and never NaN.
func IsNaNValue(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return math.IsNaN(real(c)) || math.IsNaN(imag(c))
	default:
		return false
	}
}

// Truthy reports whether v would pass a boolean test.
// Falsy values are undefined, null, false, zero numbers, NaN and the empty string.
// Every other value, including empty collections, is truthy.
func Truthy(v any) bool {
	if isNothing(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return c != 0 && !IsNaNValue(v)
	default:
		return true
	}
}
