package shape

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

func TestStringHashMatchesReference(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"hello", 99162322},
		{"ENG", 68798},
		{"😀", 1772899},
	} {
		assert.Equal(t, tc.want, String(tc.in), "String(%q)", tc.in)
	}
}

func TestFloat64Hash(t *testing.T) {
	assert.Equal(t, int32(1072693248), Float64(1.0))
	assert.Equal(t, int32(0), Float64(0))
	assert.Equal(t, int32(math.MinInt32), Float64(math.Copysign(0, -1)))
	assert.Equal(t, Float64(math.NaN()), Float64(-math.NaN()))
}

func TestTimeHash(t *testing.T) {
	assert.Equal(t, int32(0), Time(time.Unix(0, 0)))
	assert.Equal(t, int32(1000), Time(time.Unix(1, 0)))
	assert.Equal(t, Time(time.Unix(1, 0)), Time(time.Unix(1, 400)), "sub-millisecond precision is ignored")
}

func TestHashAccumulator(t *testing.T) {
	h := NewHash()
	assert.Equal(t, int32(1), h.Sum())
	h.Add(0)
	assert.Equal(t, int32(31), h.Sum())
	h.Add(5)
	assert.Equal(t, int32(966), h.Sum())
}

func TestHashOfAbsentIsZero(t *testing.T) {
	assert.Equal(t, int32(0), HashOf(opt.None[string](), String))
	assert.Equal(t, int32(97), HashOf(opt.Some("a"), String))
}

func TestListHash(t *testing.T) {
	assert.Equal(t, int32(30817), List(Int32)([]int32{1, 2, 3}))
	assert.Equal(t, int32(1), List(Int32)(nil))
	assert.NotEqual(t, List(Int32)([]int32{1, 2}), List(Int32)([]int32{2, 1}))
}

func TestMapHashIsOrderIndependent(t *testing.T) {
	f := Map(String)
	assert.Equal(t, int32(3), f(map[string]string{"a": "b"}))
	a := map[string]string{"x": "1", "y": "2", "z": "3"}
	b := map[string]string{"z": "3", "y": "2", "x": "1"}
	assert.Equal(t, f(a), f(b))
}

type color string

func TestEnumHash(t *testing.T) {
	assert.Equal(t, String("RED"), Enum(color("RED")))
}

func TestEqualIsNullAware(t *testing.T) {
	assert.True(t, Equal(opt.None[string](), opt.None[string]()))
	assert.False(t, Equal(opt.Some(""), opt.None[string]()))
	assert.False(t, Equal(opt.None[string](), opt.Some("")))
	assert.True(t, Equal(opt.Some("x"), opt.Some("x")))
	assert.False(t, Equal(opt.Some("x"), opt.Some("y")))
}

func TestFloat64Equal(t *testing.T) {
	assert.True(t, Float64Equal(math.NaN(), math.NaN()))
	assert.False(t, Float64Equal(0, math.Copysign(0, -1)))
	assert.True(t, Float64Equal(2.5, 2.5))
}

func TestTimeEqual(t *testing.T) {
	a := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, TimeEqual(a, a.In(time.FixedZone("x", 3600))))
	assert.False(t, TimeEqual(a, a.Add(time.Second)))
}

func TestListAndMapEqual(t *testing.T) {
	le := ListEqual(Eq[int32])
	assert.True(t, le(nil, []int32{}))
	assert.True(t, le([]int32{1, 2}, []int32{1, 2}))
	assert.False(t, le([]int32{1, 2}, []int32{2, 1}))

	me := MapEqual(Eq[string])
	assert.True(t, me(map[string]string{"a": "1"}, map[string]string{"a": "1"}))
	assert.False(t, me(map[string]string{"a": "1"}, map[string]string{"b": "1"}))
	assert.False(t, me(map[string]string{"a": "1"}, map[string]string{"a": "1", "b": "2"}))
}

func TestCloneListDoesNotAlias(t *testing.T) {
	src := []int32{1, 2}
	c := CloneList(opt.Some(src))
	src[0] = 9
	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, []int32{1, 2}, got)

	assert.False(t, CloneList(opt.None[[]int32]()).IsSet())
	empty, ok := CloneList(opt.Some[[]int32](nil)).Get()
	require.True(t, ok)
	assert.NotNil(t, empty)
}

func TestCloneMapDoesNotAlias(t *testing.T) {
	src := map[string]string{"k": "v"}
	c := CloneMap(opt.Some(src))
	src["k"] = "changed"
	got, _ := c.Get()
	assert.Equal(t, map[string]string{"k": "v"}, got)
}

func TestAppend(t *testing.T) {
	o := Append(opt.None[[]string](), "a")
	o = Append(o, "b", "c")
	got, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	empty, ok := Append(opt.None[[]string]()).Get()
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestAddEntryRejectsDuplicates(t *testing.T) {
	o, err := AddEntry(opt.None[map[string]string](), "k", "first")
	require.NoError(t, err)
	o, err = AddEntry(o, "k", "second")
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "duplicated keys (k) are provided")
	got, _ := o.Get()
	assert.Equal(t, "first", got["k"])
}

func TestPrinter(t *testing.T) {
	var p Printer
	Print(&p, "A", opt.Some(int32(1)))
	Print(&p, "B", opt.None[string]())
	Print(&p, "C", opt.Some([]string{"x", "y"}))
	assert.Equal(t, "{A: 1, C: [x y]}", p.String())

	var empty Printer
	assert.Equal(t, "{}", empty.String())
}
