package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, s string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func TestDecodeCreateJobRequest(t *testing.T) {
	doc := parseDoc(t, `{
		"role": "arn:aws:iam::111122223333:role/MediaConvert",
		"priority": 10,
		"statusUpdateInterval": "SECONDS_60",
		"tags": {"env": "prod"},
		"settings": {
			"inputs": [{"fileInput": "s3://in/a.mp4", "audioSelectors": {"Audio Selector 1": {"defaultSelection": "DEFAULT", "pids": [1, 2]}}}],
			"outputGroups": [{"name": "File Group"}]
		}
	}`)

	req, err := DecodeCreateJobRequest(doc)
	require.NoError(t, err)

	want := NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithPriority(10).
		WithStatusUpdateInterval(StatusUpdateIntervalSeconds60).
		WithTags(map[string]string{"env": "prod"}).
		WithSettings(NewJobSettingsBuilder().
			WithInputs(NewInputBuilder().
				WithFileInput("s3://in/a.mp4").
				WithAudioSelectors(map[string]AudioSelector{
					"Audio Selector 1": NewAudioSelectorBuilder().
						WithDefaultSelection(AudioDefaultSelectionDefault).
						WithPids(1, 2).
						Build(),
				}).
				Build()).
			WithOutputGroups(NewOutputGroupBuilder().WithName("File Group").Build()).
			Build()).
		Build()

	assert.True(t, want.Equal(req), "got %s", req)
	assert.Equal(t, want.HashCode(), req.HashCode())
}

func TestDecodeNullIsAbsent(t *testing.T) {
	req, err := DecodeCreateJobRequest(parseDoc(t, `{"queue": null, "role": "r"}`))
	require.NoError(t, err)
	assert.False(t, req.Queue().IsSet())
	assert.Equal(t, "r", req.Role().Or(""))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		path  string
		cause error
	}{
		{
			name:  "unknown top-level key",
			doc:   `{"role": "r", "bogus": 1}`,
			path:  "bogus",
			cause: ErrUnknownField,
		},
		{
			name:  "unknown nested key",
			doc:   `{"settings": {"outputGroups": [{"name": "a", "colour": "red"}]}}`,
			path:  "settings.outputGroups[0].colour",
			cause: ErrUnknownField,
		},
		{
			name:  "string for integer",
			doc:   `{"priority": "high"}`,
			path:  "priority",
			cause: ErrWrongType,
		},
		{
			name:  "fractional integer",
			doc:   `{"priority": 1.5}`,
			path:  "priority",
			cause: ErrWrongType,
		},
		{
			name:  "integer overflow",
			doc:   `{"priority": 4294967296}`,
			path:  "priority",
			cause: ErrWrongType,
		},
		{
			name:  "object for list",
			doc:   `{"hopDestinations": {}}`,
			path:  "hopDestinations",
			cause: ErrWrongType,
		},
		{
			name:  "empty enum",
			doc:   `{"statusUpdateInterval": ""}`,
			path:  "statusUpdateInterval",
			cause: ErrEmptyEnumValue,
		},
		{
			name:  "enum inside map value",
			doc:   `{"settings": {"inputs": [{"audioSelectors": {"Audio Selector 1": {"defaultSelection": "BOGUS"}}}]}}`,
			path:  "settings.inputs[0].audioSelectors[Audio Selector 1].defaultSelection",
			cause: ErrNoSuchEnumMember,
		},
		{
			name:  "non-string map value",
			doc:   `{"tags": {"env": 3}}`,
			path:  "tags[env]",
			cause: ErrWrongType,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCreateJobRequest(parseDoc(t, tc.doc))
			require.Error(t, err)
			var de *DecodeError
			require.True(t, errors.As(err, &de), "error %v is not a *DecodeError", err)
			assert.Equal(t, tc.path, de.Path)
			assert.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestDecodeKeepsFirstError(t *testing.T) {
	_, err := DecodeCreateJobRequest(parseDoc(t, `{"priority": "x", "queue": 5}`))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "priority", de.Path)
}

func TestDecodeTimes(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, raw := range []any{"2024-03-01T12:00:00Z", float64(want.Unix()), want} {
		timing, err := decodeRoot(map[string]any{"startTime": raw}, decodeTiming)
		require.NoError(t, err, "%v", raw)
		assert.True(t, want.Equal(timing.StartTime().Or(time.Time{})), "%v", raw)
	}

	_, err := decodeRoot(map[string]any{"startTime": "yesterday"}, decodeTiming)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestDecodeAcceptsNativeIntegers(t *testing.T) {
	// yaml.v3 and toml produce int and int64 rather than float64.
	req, err := DecodeListJobsRequest(map[string]any{"maxResults": 5, "order": "ASCENDING"})
	require.NoError(t, err)
	assert.Equal(t, int32(5), req.MaxResults().Or(0))

	req, err = DecodeListJobsRequest(map[string]any{"maxResults": int64(7)})
	require.NoError(t, err)
	assert.Equal(t, int32(7), req.MaxResults().Or(0))
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Path: "settings.inputs[0]", Err: ErrUnknownField}
	assert.Equal(t, "decode settings.inputs[0]: unknown field", err.Error())
	assert.Equal(t, "decode: unknown field", (&DecodeError{Err: ErrUnknownField}).Error())
}
