package typekit

import "sync"

var defaultKernel = sync.OnceValue(func() *Kernel { return New() })

// Default returns the kernel built for a BareHost, the one the package level functions use.
func Default() *Kernel { return defaultKernel() }

// Is is Default().Is.
func Is(v any, descriptor string) bool { return Default().Is(v, descriptor) }

// Automate is Default().Automate.
func Automate(descriptor any, invert bool) Predicate {
	return Default().Automate(descriptor, invert)
}

// Equal is Default().Equal.
func Equal(a, b any) bool { return Default().Equal(a, b) }

// EqualE is Default().EqualE.
func EqualE(a, b any) (bool, error) { return Default().EqualE(a, b) }

// IsEmpty is Default().IsEmpty.
func IsEmpty(v any) bool { return Default().IsEmpty(v) }

// IsArray is Default().IsArray.
func IsArray(v any) bool { return Default().IsArray(v) }

// IsObject is Default().IsObject.
func IsObject(v any) bool { return Default().IsObject(v) }

// IsArguments is Default().IsArguments.
func IsArguments(v any) bool { return Default().IsArguments(v) }

// IsFunction is Default().IsFunction.
func IsFunction(v any) bool { return Default().IsFunction(v) }

// IsBoolean is Default().IsBoolean.
func IsBoolean(v any) bool { return Default().IsBoolean(v) }

// IsNumber is Default().IsNumber.
func IsNumber(v any) bool { return Default().IsNumber(v) }

// IsString is Default().IsString.
func IsString(v any) bool { return Default().IsString(v) }

// IsObjectKind is Default().IsObjectKind.
func IsObjectKind(v any) bool { return Default().IsObjectKind(v) }

// IsNaN is Default().IsNaN.
func IsNaN(v any) bool { return Default().IsNaN(v) }

// IsUndefined is Default().IsUndefined.
func IsUndefined(v any) bool { return Default().IsUndefined(v) }

// IsDefined is Default().IsDefined.
func IsDefined(v any) bool { return Default().IsDefined(v) }

// IsRegExp is Default().IsRegExp.
func IsRegExp(v any) bool { return Default().IsRegExp(v) }

// IsNode is Default().IsNode.
func IsNode(v any) bool { return Default().IsNode(v) }

// IsElement is Default().IsElement.
func IsElement(v any) bool { return Default().IsElement(v) }

// Count is Default().Count.
func Count(v any) (int, bool) { return Default().Count(v) }

// IsIndexed is Default().IsIndexed.
func IsIndexed(v any) bool { return Default().IsIndexed(v) }
