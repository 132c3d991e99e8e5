package typekit

import (
	"iter"
	"math"
	"reflect"
	"strings"
)

// Property is an enumerable property of an object-like value.
type Property struct {
	Key   any
	Value any
	// Own is false for fields promoted from an embedded struct,
	// which behave as inherited properties.
	Own bool
}

// Enumerate yields the enumerable properties of v, the way a for-in loop visits them.
//
//   - struct: exported fields by name, promoted fields included
//   - map: every entry
//   - slice, array: every index
//   - string: every rune position, with the rune as a string
//   - Arguments: every argument position
//
// Pointers are followed, so a pointer enumerates what it points to.
// Every other value has no enumerable properties.
// Map entries are yielded in the map's iteration order.
func Enumerate(v any) iter.Seq[Property] {
	return func(yield func(Property) bool) {
		rv := baseValue(reflect.ValueOf(v))
		if !rv.IsValid() {
			return
		}
		switch rv.Kind() {
		case reflect.Struct:
			if args, ok := asArguments(rv); ok {
				for i, arg := range args.Values {
					if !yield(Property{Key: i, Value: arg, Own: true}) {
						return
					}
				}
				return
			}
			for _, field := range reflect.VisibleFields(rv.Type()) {
				if !isPropertyField(field) {
					continue
				}
				fv, err := rv.FieldByIndexErr(field.Index)
				if err != nil {
					continue
				}
				if !yield(Property{Key: field.Name, Value: fv.Interface(), Own: len(field.Index) == 1}) {
					return
				}
			}
		case reflect.Map:
			iter := rv.MapRange()
			for iter.Next() {
				if !yield(Property{Key: iter.Key().Interface(), Value: iter.Value().Interface(), Own: true}) {
					return
				}
			}
		case reflect.Slice, reflect.Array:
			for i, n := 0, rv.Len(); i < n; i++ {
				if !yield(Property{Key: i, Value: rv.Index(i).Interface(), Own: true}) {
					return
				}
			}
		case reflect.String:
			for i, r := range []rune(rv.String()) {
				if !yield(Property{Key: i, Value: string(r), Own: true}) {
					return
				}
			}
		}
	}
}

// Get reads the property of v under key.
// A missing property reports false, and reads as undefined (nil).
//
// Struct properties are looked up by exported field name first, then by json tag name.
// Map keys are converted to the map's key type when the conversion keeps their value.
func Get(v any, key any) (any, bool) {
	val, _, ok := lookup(v, key)
	return val, ok
}

// HasOwn reports whether v owns the property key.
// Fields promoted from an embedded struct are not own properties.
func HasOwn(v any, key any) bool {
	_, own, ok := lookup(v, key)
	return ok && own
}

func lookup(v any, key any) (_ any, own bool, _ bool) {
	rv := baseValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false, false
	}
	switch rv.Kind() {
	case reflect.Struct:
		if args, ok := asArguments(rv); ok {
			if key == "callee" {
				return args.Callee, true, true
			}
			if i, ok := indexOf(key, len(args.Values)); ok {
				return args.Values[i], true, true
			}
			return nil, false, false
		}
		name, ok := key.(string)
		if !ok {
			return nil, false, false
		}
		field, ok := fieldByName(rv.Type(), name)
		if !ok {
			return nil, false, false
		}
		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false, false
		}
		return fv.Interface(), len(field.Index) == 1, true
	case reflect.Map:
		rk, ok := convertKey(key, rv.Type().Key())
		if !ok {
			return nil, false, false
		}
		val := rv.MapIndex(rk)
		if !val.IsValid() {
			return nil, false, false
		}
		return val.Interface(), true, true
	case reflect.Slice, reflect.Array:
		i, ok := indexOf(key, rv.Len())
		if !ok {
			return nil, false, false
		}
		return rv.Index(i).Interface(), true, true
	case reflect.String:
		runes := []rune(rv.String())
		i, ok := indexOf(key, len(runes))
		if !ok {
			return nil, false, false
		}
		return string(runes[i]), true, true
	default:
		return nil, false, false
	}
}

// Len reports the numeric length of v.
// Collections, strings, Arguments and types with a Len() int method have one,
// and so does any value with a numeric "length" property.
func Len(v any) (int, bool) {
	if isNothing(v) {
		return 0, false
	}
	if l, ok := v.(interface{ Len() int }); ok {
		return l.Len(), true
	}
	rv := baseValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, false
	}
	if rv.CanInterface() {
		if l, ok := rv.Interface().(interface{ Len() int }); ok {
			return l.Len(), true
		}
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Chan:
		return rv.Len(), true
	case reflect.String:
		return len([]rune(rv.String())), true
	case reflect.Map, reflect.Struct:
		length, ok := Get(rv.Interface(), "length")
		if !ok || KindOf(length) != KindNumber {
			return 0, false
		}
		return intOf(ToNumber(length))
	default:
		return 0, false
	}
}

// intOf accepts integral numbers that fit an int.
func intOf(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

// baseValue follows pointers and interfaces down to the value they refer to.
// A nil reference on the way yields the invalid Value.
// A pointer that the chain already went through is returned as is.
func baseValue(rv reflect.Value) reflect.Value {
	var chain refMem
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		if _, ok := chain.tryEnterValue(rv); !ok {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func asArguments(rv reflect.Value) (Arguments, bool) {
	if rv.Type() != typeArguments || !rv.CanInterface() {
		return Arguments{}, false
	}
	return rv.Interface().(Arguments), true
}

// isPropertyField tells whether a struct field is enumerable.
// An embedded struct is not a property itself, its fields are promoted instead.
func isPropertyField(field reflect.StructField) bool {
	if !field.IsExported() {
		return false
	}
	if field.Anonymous {
		t := field.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		return t.Kind() != reflect.Struct
	}
	return true
}

func fieldByName(typ reflect.Type, name string) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(typ)
	for _, field := range fields {
		if isPropertyField(field) && field.Name == name {
			return field, true
		}
	}
	for _, field := range fields {
		if !isPropertyField(field) {
			continue
		}
		tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if tag != "" && tag != "-" && tag == name {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func indexOf(key any, length int) (int, bool) {
	rk := reflect.ValueOf(key)
	var i int
	switch {
	case !rk.IsValid():
		return 0, false
	case rk.CanInt():
		n := rk.Int()
		if n < 0 || n >= int64(length) {
			return 0, false
		}
		i = int(n)
	case rk.CanUint():
		n := rk.Uint()
		if n >= uint64(length) {
			return 0, false
		}
		i = int(n)
	default:
		return 0, false
	}
	return i, true
}

func convertKey(key any, typ reflect.Type) (reflect.Value, bool) {
	rk := reflect.ValueOf(key)
	if !rk.IsValid() {
		return reflect.Value{}, false
	}
	if rk.Type().AssignableTo(typ) {
		return rk, true
	}
	switch {
	case rk.Kind() == reflect.String && typ.Kind() == reflect.String,
		rk.Kind() == reflect.Bool && typ.Kind() == reflect.Bool:
		return rk.Convert(typ), true
	case KindOf(key) == KindNumber && isNumericType(typ):
		converted := rk.Convert(typ)
		if !numbersEqual(rk, converted) {
			return reflect.Value{}, false
		}
		return converted, true
	default:
		return reflect.Value{}, false
	}
}

func isNumericType(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
