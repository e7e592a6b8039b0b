package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRoundTrip(t *testing.T) {
	for _, c := range StatusUpdateInterval("").Values() {
		got, err := ParseStatusUpdateInterval(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, c := range LanguageCode("").Values() {
		got, err := ParseLanguageCode(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestEnumRoundTripEveryRegisteredEnum(t *testing.T) {
	names := EnumNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		values, ok := EnumValues(name)
		require.True(t, ok, name)
		require.NotEmpty(t, values, name)
		for _, v := range values {
			got, err := ParseEnumValue(name, v)
			require.NoError(t, err, "%s %q", name, v)
			assert.Equal(t, v, got)
		}
	}
}

func TestParseEnumEmptyValue(t *testing.T) {
	_, err := ParseStatusUpdateInterval("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedEnumValue)
	assert.ErrorIs(t, err, ErrEmptyEnumValue)
	assert.NotErrorIs(t, err, ErrNoSuchEnumMember)
	assert.Equal(t, "StatusUpdateInterval: value cannot be empty", err.Error())
}

func TestParseEnumNoSuchMember(t *testing.T) {
	_, err := ParseStatusUpdateInterval("not-a-real-value")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedEnumValue)
	assert.ErrorIs(t, err, ErrNoSuchEnumMember)
	assert.NotErrorIs(t, err, ErrEmptyEnumValue)

	var ee *EnumError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "StatusUpdateInterval", ee.Enum)
	assert.Equal(t, "not-a-real-value", ee.Value)
}

func TestParseEnumIsCaseSensitive(t *testing.T) {
	_, err := ParseLanguageCode("eng")
	assert.ErrorIs(t, err, ErrNoSuchEnumMember)
}

func TestEnumIsValid(t *testing.T) {
	assert.True(t, StatusUpdateIntervalSeconds60.IsValid())
	assert.False(t, StatusUpdateInterval("SECONDS_61").IsValid())
	assert.False(t, StatusUpdateInterval("").IsValid())
}

func TestEnumUnmarshalText(t *testing.T) {
	var s SimulateReservedQueue
	require.NoError(t, s.UnmarshalText([]byte("ENABLED")))
	assert.Equal(t, SimulateReservedQueueEnabled, s)

	err := s.UnmarshalText([]byte("MAYBE"))
	assert.ErrorIs(t, err, ErrNoSuchEnumMember)
	assert.Equal(t, SimulateReservedQueueEnabled, s, "failed unmarshal leaves the value unchanged")
}

func TestEnumLookupByName(t *testing.T) {
	values, ok := EnumValues("SimulateReservedQueue")
	require.True(t, ok)
	assert.Equal(t, []string{"DISABLED", "ENABLED"}, values)

	values[0] = "changed"
	again, _ := EnumValues("SimulateReservedQueue")
	assert.Equal(t, "DISABLED", again[0])

	_, ok = EnumValues("NoSuchEnum")
	assert.False(t, ok)

	_, err := ParseEnumValue("NoSuchEnum", "X")
	assert.Error(t, err)

	_, err = ParseEnumValue("SimulateReservedQueue", "")
	assert.ErrorIs(t, err, ErrEmptyEnumValue)
}
