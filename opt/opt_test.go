package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsAbsent(t *testing.T) {
	var o Optional[string]
	assert.False(t, o.IsSet())
	v, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Nil(t, o.Ptr())
	assert.Equal(t, "<absent>", o.String())
}

func TestSome(t *testing.T) {
	o := Some(int32(42))
	require.True(t, o.IsSet())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, int32(42), v)
	assert.Equal(t, int32(42), o.Or(7))
	assert.Equal(t, "42", o.String())
}

func TestSomeZeroIsPresent(t *testing.T) {
	o := Some("")
	assert.True(t, o.IsSet())
	assert.Equal(t, "", o.Or("fallback"))
}

func TestNoneOr(t *testing.T) {
	assert.Equal(t, 1.5, None[float64]().Or(1.5))
}

func TestFromPtr(t *testing.T) {
	assert.False(t, FromPtr[string](nil).IsSet())

	s := "x"
	o := FromPtr(&s)
	require.True(t, o.IsSet())
	s = "changed"
	assert.Equal(t, "x", o.Or(""), "FromPtr must copy the pointee")
}

func TestPtrReturnsCopy(t *testing.T) {
	o := Some(3)
	p := o.Ptr()
	require.NotNil(t, p)
	*p = 9
	assert.Equal(t, 3, o.Or(0))
}
