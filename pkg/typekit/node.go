package typekit

import (
	"math"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/must"
)

const ErrInvalidNodeKind errorkit.Error = "ErrInvalidNodeKind"

// Node is implemented by values that belong to a node tree.
// Element nodes report 1.
type Node interface {
	NodeType() int
}

// NodeTypeOf returns the node type of v.
// It is read from the NodeType method, or else from a numeric "nodeType" property.
// Zero and missing node types report false.
func NodeTypeOf(v any) (int, bool) {
	if !Truthy(v) {
		return 0, false
	}
	if n, ok := v.(Node); ok {
		t := n.NodeType()
		return t, t != 0
	}
	nodeType, ok := Get(v, "nodeType")
	if !ok || KindOf(nodeType) != KindNumber {
		return 0, false
	}
	f := ToNumber(nodeType)
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// IsNode reports whether v has a node type.
func (k *Kernel) IsNode(v any) bool {
	_, ok := NodeTypeOf(v)
	return ok
}

// AutomateNode builds a predicate that matches nodes of node type n.
// Node types start at 1, anything lower is rejected with ErrInvalidNodeKind.
func AutomateNode(n int) (Predicate, error) {
	if n <= 0 {
		return nil, ErrInvalidNodeKind.F("node type must be positive, got %d", n)
	}
	return func(v any) bool {
		t, ok := NodeTypeOf(v)
		return ok && t == n
	}, nil
}

// MustAutomateNode is AutomateNode that panics on an invalid node type.
func MustAutomateNode(n int) Predicate {
	return must.Must(AutomateNode(n))
}
