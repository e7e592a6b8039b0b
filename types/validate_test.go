package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "error %v is not a *ValidationError", err)
	return ve.Errors
}

func TestValidateRequiredFields(t *testing.T) {
	errs := validationErrors(t, NewCreateJobRequestBuilder().Build().Validate())
	assert.Equal(t, []FieldError{
		{Field: "role", Message: "is required"},
		{Field: "settings", Message: "is required"},
	}, errs)
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	req := NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithSettings(NewJobSettingsBuilder().
			WithInputs(NewInputBuilder().WithFileInput("s3://in/a.mp4").WithTimecodeStart("00:00:10:00").Build()).
			Build()).
		WithPriority(0).
		Build()
	assert.NoError(t, req.Validate())
}

func TestValidateReportsNestedPaths(t *testing.T) {
	req := NewCreateJobRequestBuilder().
		WithRole("r").
		WithPriority(51).
		WithSettings(NewJobSettingsBuilder().
			WithInputs(
				NewInputBuilder().WithFileInput("s3://ok").Build(),
				NewInputBuilder().
					WithFileInput("ftp://bad").
					WithFilterStrength(9).
					WithAudioSelectors(map[string]AudioSelector{
						"Audio Selector 1": NewAudioSelectorBuilder().WithDefaultSelection("SOMETIMES").Build(),
					}).
					Build(),
			).
			Build()).
		Build()

	errs := validationErrors(t, req.Validate())
	var fields []string
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{
		"priority",
		"settings.inputs[1].audioSelectors[Audio Selector 1].defaultSelection",
		"settings.inputs[1].fileInput",
		"settings.inputs[1].filterStrength",
	}, fields)
	assert.Equal(t, "must be between -50 and 50, got 51", errs[0].Message)
}

func TestValidateLengthAndPattern(t *testing.T) {
	in := NewInputBuilder().WithTimecodeStart("1:00").Build()
	errs := validationErrors(t, in.Validate())
	require.Len(t, errs, 2)
	assert.Equal(t, "timecodeStart", errs[0].Field)
	assert.Contains(t, errs[0].Message, "must match")
	assert.Equal(t, "must be at least 11 characters", errs[1].Message)
}

func TestValidateEnumList(t *testing.T) {
	hls := NewHlsGroupSettingsBuilder().WithAdMarkers(HlsAdMarkersElemental, "BOGUS").Build()
	errs := validationErrors(t, hls.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "adMarkers[1]", errs[0].Field)
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "role", Message: "is required"},
		{Field: "priority", Message: "must be between -50 and 50, got 51"},
	}}
	assert.True(t, err.HasErrors())
	assert.Equal(t, "validation failed: role: is required; priority: must be between -50 and 50, got 51", err.Error())
	assert.False(t, (&ValidationError{}).HasErrors())
}

func TestValidateNonFiniteDoubles(t *testing.T) {
	s := NewEac3SettingsBuilder().
		WithLoRoCenterMixLevel(math.NaN()).
		WithLtRtSurroundMixLevel(-1.5).
		Build()
	assert.Equal(t, []FieldError{
		{Field: "loRoCenterMixLevel", Message: "must be a finite number, got NaN"},
	}, validationErrors(t, s.Validate()))

	h := NewH264SettingsBuilder().WithGopSize(math.Inf(1)).Build()
	assert.Equal(t, []FieldError{
		{Field: "gopSize", Message: "must be a finite number, got +Inf"},
	}, validationErrors(t, h.Validate()))
}
