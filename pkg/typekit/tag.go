package typekit

import (
	"reflect"
	"regexp"
	"time"
)

// Tagger lets a type report its own class tag.
type Tagger interface {
	TypeTag() string
}

// Arguments is the argument list of a call captured as a value.
// It is tagged "Arguments", is indexed like an array and owns a "callee" property.
type Arguments struct {
	Callee any   `json:"callee"`
	Values []any `json:"-"`
}

// Len returns the number of captured arguments.
func (args Arguments) Len() int { return len(args.Values) }

var (
	typeTime      = reflect.TypeOf(time.Time{})
	typeRegexp    = reflect.TypeOf(regexp.Regexp{})
	typeArguments = reflect.TypeOf(Arguments{})
	typeError     = reflect.TypeOf((*error)(nil)).Elem()
	typeTagger    = reflect.TypeOf((*Tagger)(nil)).Elem()
)

// TagOf returns the class tag of v.
// Unlike KindOf, the tag tells apart values that share the object kind:
//
//	TagOf(map[string]any{}) // "Object"
//	TagOf([]any{})          // "Array"
//	TagOf(time.Now())       // "Date"
//	TagOf(&n)               // "Number", the boxed form of n
func TagOf(v any) string {
	if v == nil {
		return "Undefined"
	}
	return tagOfValue(reflect.ValueOf(v), &refMem{})
}

// TagString formats the class tag of v as "[object Tag]".
func TagString(v any) string {
	return formatTag(TagOf(v))
}

func formatTag(tag string) string {
	return "[object " + tag + "]"
}

func tagOfValue(rv reflect.Value, chain *refMem) string {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return "Undefined"
	}
	if isNullValue(rv) {
		return "Null"
	}
	if rv.Type().Implements(typeTagger) && rv.CanInterface() {
		return rv.Interface().(Tagger).TypeTag()
	}
	switch rv.Type() {
	case typeTime:
		return "Date"
	case typeRegexp:
		return "RegExp"
	case typeArguments:
		return "Arguments"
	}
	if rv.Type().Implements(typeError) {
		return "Error"
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if _, ok := chain.tryEnterValue(rv); !ok {
			return "Pointer"
		}
		return tagOfValue(rv.Elem(), chain)
	case reflect.Func:
		return "Function"
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "Number"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Map, reflect.Struct:
		return "Object"
	case reflect.Chan:
		return "Channel"
	case reflect.UnsafePointer:
		return "Pointer"
	default:
		return "Object"
	}
}
