package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the family a Value belongs to.
//
// Kind is deliberately a flat enum rather than an interface hierarchy: the
// peephole engine switches on Kind constantly (every compute() call), and a
// closed set of five families is cheaper and clearer as a tag than as a
// type-switch over concrete types.
type Kind int

const (
	KindTop Kind = iota
	KindBottom
	KindControl
	KindTuple
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindTop:
		return "Top"
	case KindBottom:
		return "Bottom"
	case KindControl:
		return "Control"
	case KindTuple:
		return "Tuple"
	case KindInteger:
		return "Integer"
	default:
		return "Unknown"
	}
}

// intState distinguishes the three shapes an Integer-kind Value can take.
type intState int

const (
	intConst intState = iota // a singleton {value}
	intTop                   // identity element of the integer sub-lattice
	intBottom                // the bottom of the integer sub-lattice
)

// Value is an immutable element of the type lattice. The zero Value is Top.
//
// Value is deliberately a small struct copied by value (never a pointer):
// nodes compare and store types constantly, and the lattice has no element
// large enough to make copying costly.
type Value struct {
	kind  Kind
	ist   intState // meaningful only when kind == KindInteger
	ival  int64    // meaningful only when kind == KindInteger && ist == intConst
	elems []Value  // meaningful only when kind == KindTuple
}

// Top is the identity element of the lattice: Meet(Top, x) == x for all x.
var Top = Value{kind: KindTop}

// Bottom is the absorbing element of the lattice: Meet(Bottom, x) == Bottom.
var Bottom = Value{kind: KindBottom}

// Control is the single control-flow type, carried by CFG nodes.
var Control = Value{kind: KindControl}

// IntTop is the identity element of the integer sub-lattice.
var IntTop = Value{kind: KindInteger, ist: intTop}

// IntBottom is the bottom of the integer sub-lattice: "some integer, value
// unknown at compile time".
var IntBottom = Value{kind: KindInteger, ist: intBottom}

// Zero is the constant integer 0, the value DivNode folds to on division by
// zero (see spec.md §4.1 and §9's open-question resolution).
var Zero = NewIntConst(0)

// NewIntConst returns the singleton integer lattice element {v}.
func NewIntConst(v int64) Value {
	return Value{kind: KindInteger, ist: intConst, ival: v}
}

// NewTuple returns a Tuple(elems...) value, used by Start and If to carry
// their multi-valued result type.
func NewTuple(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)

	return Value{kind: KindTuple, elems: cp}
}

// Kind reports which family v belongs to.
func (v Value) Kind() Kind { return v.kind }

// IsConstant reports whether v identifies a single concrete element.
// Top counts as constant, per the source convention documented in spec.md
// §4.1 — it is the vacuous "no information yet" singleton.
func (v Value) IsConstant() bool {
	switch v.kind {
	case KindTop:
		return true
	case KindInteger:
		return v.ist == intConst || v.ist == intTop
	default:
		return false
	}
}

// AsInt returns v's constant integer value and true, or (0, false) if v is
// not a concrete integer constant (IntTop and IntBottom both report false:
// neither identifies one definite value).
func (v Value) AsInt() (int64, bool) {
	if v.kind == KindInteger && v.ist == intConst {
		return v.ival, true
	}

	return 0, false
}

// Elem returns the i-th element of a Tuple-kind value.
func (v Value) Elem(i int) Value {
	if v.kind != KindTuple || i < 0 || i >= len(v.elems) {
		return Bottom
	}

	return v.elems[i]
}

// Arity returns the number of elements of a Tuple-kind value, or 0.
func (v Value) Arity() int {
	if v.kind != KindTuple {
		return 0
	}

	return len(v.elems)
}

// Equal reports whether a and b denote the same lattice element.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInteger:
		if a.ist != b.ist {
			return false
		}

		return a.ist != intConst || a.ival == b.ival
	case KindTuple:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// Meet computes the greatest lower bound of a and b. Meet is commutative and
// associative; Bottom absorbs; Top is the identity; mixing disjoint families
// collapses to Bottom.
func Meet(a, b Value) Value {
	if a.kind == KindTop {
		return b
	}
	if b.kind == KindTop {
		return a
	}
	if a.kind == KindBottom || b.kind == KindBottom {
		return Bottom
	}
	if a.kind != b.kind {
		return Bottom
	}
	switch a.kind {
	case KindControl:
		return Control
	case KindTuple:
		return meetTuple(a, b)
	case KindInteger:
		return meetInteger(a, b)
	default:
		return Bottom
	}
}

func meetTuple(a, b Value) Value {
	if len(a.elems) != len(b.elems) {
		return Bottom
	}
	out := make([]Value, len(a.elems))
	for i := range a.elems {
		out[i] = Meet(a.elems[i], b.elems[i])
	}

	return Value{kind: KindTuple, elems: out}
}

func meetInteger(a, b Value) Value {
	if a.ist == intTop {
		return b
	}
	if b.ist == intTop {
		return a
	}
	if a.ist == intBottom || b.ist == intBottom {
		return IntBottom
	}
	if a.ival == b.ival {
		return a
	}

	return IntBottom
}

// String renders v the way node printers embed types in diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindTop:
		return "Top"
	case KindBottom:
		return "Bottom"
	case KindControl:
		return "Ctrl"
	case KindTuple:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}

		return "Tuple[" + strings.Join(parts, ",") + "]"
	case KindInteger:
		switch v.ist {
		case intTop:
			return "IntTop"
		case intBottom:
			return "int"
		default:
			return strconv.FormatInt(v.ival, 10)
		}
	default:
		return fmt.Sprintf("lattice.Value(kind=%d)", int(v.kind))
	}
}
