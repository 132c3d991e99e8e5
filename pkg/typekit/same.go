package typekit

import (
	"math"
	"reflect"
)

// StrictEqual reports whether a and b are identical without any coercion.
//
// Numbers compare by numeric value across Go numeric types,
// so NaN is never strictly equal to itself and +0 equals -0.
// Strings and booleans compare by value.
// Reference values (pointers, maps, slices, channels, functions) compare by identity,
// other comparable values with the == operator.
// Undefined and null are only strictly equal to themselves.
func StrictEqual(a, b any) bool {
	ka := KindOf(a)
	if ka != KindOf(b) {
		return false
	}
	if ka == KindUndefined {
		return true
	}
	var (
		ra = reflect.ValueOf(a)
		rb = reflect.ValueOf(b)
	)
	switch ka {
	case KindNumber:
		return numbersEqual(ra, rb)
	case KindString:
		return ra.String() == rb.String()
	case KindBoolean:
		return ra.Bool() == rb.Bool()
	case KindFunction:
		return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer()
	}
	an, bn := isNullValue(ra), isNullValue(rb)
	if an || bn {
		return an && bn
	}
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		return ra.UnsafePointer() == rb.UnsafePointer() && ra.Len() == rb.Len()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return ra.UnsafePointer() == rb.UnsafePointer()
	}
	if ra.Comparable() && rb.Comparable() {
		return a == b
	}
	return false
}

// SameValue reports whether a and b are the same value.
// It follows StrictEqual, except that NaN is the same value as NaN,
// and a positive zero is not the same value as a negative zero.
func SameValue(a, b any) bool {
	if StrictEqual(a, b) {
		return !isZeroNumber(a) || sameZeroSign(a, b)
	}
	return IsNaNValue(a) && IsNaNValue(b)
}

func numbersEqual(a, b reflect.Value) bool {
	switch {
	case a.CanInt() && b.CanInt():
		return a.Int() == b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() == b.Uint()
	case a.CanInt() && b.CanUint():
		return 0 <= a.Int() && uint64(a.Int()) == b.Uint()
	case a.CanUint() && b.CanInt():
		return 0 <= b.Int() && a.Uint() == uint64(b.Int())
	default:
		return complexOf(a) == complexOf(b)
	}
}

func complexOf(rv reflect.Value) complex128 {
	switch {
	case rv.CanInt():
		return complex(float64(rv.Int()), 0)
	case rv.CanUint():
		return complex(float64(rv.Uint()), 0)
	case rv.CanFloat():
		return complex(rv.Float(), 0)
	case rv.CanComplex():
		return rv.Complex()
	default:
		return complex(math.NaN(), 0)
	}
}

func isZeroNumber(v any) bool {
	if KindOf(v) != KindNumber {
		return false
	}
	return complexOf(reflect.ValueOf(v)) == 0
}

func sameZeroSign(a, b any) bool {
	var (
		ca = complexOf(reflect.ValueOf(a))
		cb = complexOf(reflect.ValueOf(b))
	)
	return math.Signbit(real(ca)) == math.Signbit(real(cb)) &&
		math.Signbit(imag(ca)) == math.Signbit(imag(cb))
}
