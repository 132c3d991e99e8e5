package typekit

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ToNumber is the unary numeric coercion of v.
//
//	ToNumber(nil)            // NaN, undefined
//	ToNumber(typekit.Null)   // 0
//	ToNumber(" 42 ")         // 42
//	ToNumber(&n)             // n, boxed numbers unwrap
//	ToNumber(time.Unix(1,0)) // 1000, dates coerce to epoch milliseconds
//	ToNumber([]any{"7"})     // 7
//	ToNumber(struct{}{})     // NaN
func ToNumber(v any) float64 {
	if v == nil {
		return math.NaN()
	}
	return toNumberValue(reflect.ValueOf(v), &refMem{})
}

type float64er interface {
	Float64() (float64, error)
}

func toNumberValue(rv reflect.Value, chain *refMem) float64 {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return math.NaN()
	}
	if isNullValue(rv) {
		return 0
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case time.Time:
			return float64(x.UnixMilli())
		case float64er:
			f, err := x.Float64()
			if err != nil {
				return math.NaN()
			}
			return f
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if imag(c) != 0 {
			return math.NaN()
		}
		return real(c)
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Pointer:
		if _, ok := chain.tryEnterValue(rv); !ok {
			return math.NaN()
		}
		return toNumberValue(rv.Elem(), chain)
	case reflect.Slice, reflect.Array:
		switch rv.Len() {
		case 0:
			return 0
		case 1:
			if elem := rv.Index(0); !isNothingValue(elem) {
				return parseNumber(toStringValue(elem, &refMem{}))
			}
			return 0
		default:
			return math.NaN()
		}
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		var base int
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.ContainsRune(s, '_') {
				return math.NaN()
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	// strconv accepts spellings like "inf", "nan", hex floats and digit separators,
	// none of which are numbers here.
	for _, r := range s {
		if !strings.ContainsRune("0123456789.eE+-", r) {
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// ToString is the string coercion of v.
//
//	ToString(nil)          // "undefined"
//	ToString(typekit.Null) // "null"
//	ToString(math.NaN())   // "NaN"
//	ToString([]any{1, "a"}) // "1,a"
//	ToString(struct{}{})   // "[object Object]"
func ToString(v any) string {
	if v == nil {
		return "undefined"
	}
	return toStringValue(reflect.ValueOf(v), &refMem{})
}

var typeRegexpPtr = reflect.TypeOf((*regexp.Regexp)(nil))

// toStringValue joins slices the way an array join does:
// a slice the join is already inside of renders as "".
func toStringValue(rv reflect.Value, joining *refMem) string {
	rv = unwrap(rv)
	if !rv.IsValid() {
		return "undefined"
	}
	if isNullValue(rv) {
		return "null"
	}
	if rv.Type() == typeRegexpPtr {
		return "/" + rv.Interface().(*regexp.Regexp).String() + "/"
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case time.Time:
			return x.Format(time.RFC1123)
		case error:
			return x.Error()
		case fmt.Stringer:
			return x.String()
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatNumber(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if imag(c) == 0 {
			return formatNumber(real(c))
		}
		return strconv.FormatComplex(c, 'g', -1, 128)
	case reflect.String:
		return rv.String()
	case reflect.Pointer:
		leave, ok := joining.tryEnterValue(rv)
		if !ok {
			return ""
		}
		defer leave()
		return toStringValue(rv.Elem(), joining)
	case reflect.Func:
		return "function"
	case reflect.Slice, reflect.Array:
		leave, ok := joining.tryEnterValue(rv)
		if !ok {
			return ""
		}
		defer leave()
		var b strings.Builder
		for i, n := 0, rv.Len(); i < n; i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			if elem := rv.Index(i); !isNothingValue(elem) {
				b.WriteString(toStringValue(elem, joining))
			}
		}
		return b.String()
	default:
		return formatTag(tagOfValue(rv, &refMem{}))
	}
}

func isNothingValue(rv reflect.Value) bool {
	rv = unwrap(rv)
	return !rv.IsValid() || isNullValue(rv)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
