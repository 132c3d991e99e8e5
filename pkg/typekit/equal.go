package typekit

import (
	"reflect"
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrCyclicValue errorkit.Error = "ErrCyclicValue"

// Equal reports whether a and b are deeply equal.
// A cyclic comparison is reported as not equal, use EqualE to tell it apart.
func (k *Kernel) Equal(a, b any) bool {
	eq, err := k.EqualE(a, b)
	return err == nil && eq
}

// EqualE reports whether a and b are deeply equal.
//
// Values of different kinds or different truthiness are never equal.
// Same-valued primitives are equal, NaN included, while +0 and -0 are not.
// Two objects or functions are equal when they share a class tag and a numeric length,
// every enumerable property of a equals the same property of b,
// and their numeric coercions are equal.
// Properties only b has are not inspected.
//
// When the comparison reaches a reference that it is already inside of,
// it stops with ErrCyclicValue.
func (k *Kernel) EqualE(a, b any) (bool, error) {
	c := comparison{kernel: k}
	return c.equal(a, b)
}

type comparison struct {
	kernel *Kernel
	refA   refMem
	refB   refMem
}

func (c *comparison) equal(a, b any) (bool, error) {
	kind := KindOf(a)
	if kind != KindOf(b) || Truthy(a) != Truthy(b) {
		return false, nil
	}
	if SameValue(a, b) {
		return true, nil
	}
	if !Truthy(a) || !Truthy(b) || c.kernel.tagString(a) != c.kernel.tagString(b) {
		return false, nil
	}
	if kind != KindObject && kind != KindFunction {
		return false, nil
	}
	if la, ok := Len(a); ok {
		if lb, ok := Len(b); !ok || la != lb {
			return false, nil
		}
	}

	leaveA, ok := c.refA.TryEnter(a)
	if !ok {
		return false, ErrCyclicValue.F("%s refers back to itself", TagString(a))
	}
	defer leaveA()
	leaveB, ok := c.refB.TryEnter(b)
	if !ok {
		return false, ErrCyclicValue.F("%s refers back to itself", TagString(b))
	}
	defer leaveB()

	for p := range Enumerate(a) {
		vb, _ := Get(b, p.Key)
		eq, err := c.equal(p.Value, vb)
		if err != nil || !eq {
			return false, err
		}
	}
	return c.equal(ToNumber(a), ToNumber(b))
}

// refMem remembers the references on the current comparison path.
type refMem struct{ path map[refKey]struct{} }

type refKey struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
}

// TryEnter marks v as being compared.
// It fails when v is a reference that the path already went through.
// Values without identity can always be entered.
func (m *refMem) TryEnter(v any) (leave func(), ok bool) {
	return m.tryEnterValue(reflect.ValueOf(v))
}

func (m *refMem) tryEnterValue(rv reflect.Value) (leave func(), ok bool) {
	key, ok := m.keyOf(rv)
	if !ok {
		return func() {}, true
	}
	if _, ok := m.path[key]; ok {
		return nil, false
	}
	if m.path == nil {
		m.path = make(map[refKey]struct{})
	}
	m.path[key] = struct{}{}
	return func() { delete(m.path, key) }, true
}

func (m *refMem) keyOf(rv reflect.Value) (refKey, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan:
		if rv.IsNil() {
			return refKey{}, false
		}
		return refKey{typ: rv.Type(), ptr: rv.UnsafePointer()}, true
	case reflect.Slice:
		if rv.IsNil() {
			return refKey{}, false
		}
		return refKey{typ: rv.Type(), ptr: rv.UnsafePointer(), len: rv.Len()}, true
	case reflect.Struct:
		// Arguments enumerate their Values, so they are as deep as that slice.
		args, ok := asArguments(rv)
		if !ok || args.Values == nil {
			return refKey{}, false
		}
		values := reflect.ValueOf(args.Values)
		return refKey{typ: rv.Type(), ptr: values.UnsafePointer(), len: values.Len()}, true
	default:
		return refKey{}, false
	}
}
