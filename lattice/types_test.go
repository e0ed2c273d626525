package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PHLens/SeaOfNode/lattice"
)

func TestMeet_IntegerSubLattice(t *testing.T) {
	cases := []struct {
		name string
		a, b lattice.Value
		want lattice.Value
	}{
		{"top identity left", lattice.IntTop, lattice.NewIntConst(5), lattice.NewIntConst(5)},
		{"top identity right", lattice.NewIntConst(5), lattice.IntTop, lattice.NewIntConst(5)},
		{"equal constants", lattice.NewIntConst(3), lattice.NewIntConst(3), lattice.NewIntConst(3)},
		{"unequal constants widen", lattice.NewIntConst(3), lattice.NewIntConst(4), lattice.IntBottom},
		{"bottom absorbs", lattice.NewIntConst(3), lattice.IntBottom, lattice.IntBottom},
		{"bottom absorbs bottom", lattice.IntBottom, lattice.IntBottom, lattice.IntBottom},
		{"top meet top", lattice.IntTop, lattice.IntTop, lattice.IntTop},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, lattice.Equal(c.want, lattice.Meet(c.a, c.b)), "Meet(%s,%s)", c.a, c.b)
			assert.True(t, lattice.Equal(c.want, lattice.Meet(c.b, c.a)), "Meet must commute")
		})
	}
}

func TestMeet_GlobalTopAndBottom(t *testing.T) {
	assert.True(t, lattice.Equal(lattice.Control, lattice.Meet(lattice.Top, lattice.Control)))
	assert.True(t, lattice.Equal(lattice.Bottom, lattice.Meet(lattice.Bottom, lattice.Control)))
	assert.True(t, lattice.Equal(lattice.Bottom, lattice.Meet(lattice.Control, lattice.NewIntConst(1))),
		"disjoint families must collapse to Bottom")
}

func TestMeet_Tuple(t *testing.T) {
	a := lattice.NewTuple(lattice.Control, lattice.NewIntConst(1))
	b := lattice.NewTuple(lattice.Control, lattice.NewIntConst(2))
	got := lattice.Meet(a, b)
	assert.Equal(t, 2, got.Arity())
	assert.True(t, lattice.Equal(lattice.Control, got.Elem(0)))
	assert.True(t, lattice.Equal(lattice.IntBottom, got.Elem(1)))
}

func TestIsConstant(t *testing.T) {
	assert.True(t, lattice.Top.IsConstant(), "Top counts as constant per the source convention")
	assert.True(t, lattice.IntTop.IsConstant())
	assert.True(t, lattice.NewIntConst(7).IsConstant())
	assert.False(t, lattice.IntBottom.IsConstant())
	assert.False(t, lattice.Bottom.IsConstant())
	assert.False(t, lattice.Control.IsConstant())
}

func TestAsInt(t *testing.T) {
	v, ok := lattice.NewIntConst(42).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = lattice.IntTop.AsInt()
	assert.False(t, ok)

	_, ok = lattice.IntBottom.AsInt()
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "5", lattice.NewIntConst(5).String())
	assert.Equal(t, "int", lattice.IntBottom.String())
	assert.Equal(t, "IntTop", lattice.IntTop.String())
	assert.Equal(t, "Ctrl", lattice.Control.String())
}
