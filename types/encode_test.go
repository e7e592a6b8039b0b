package types

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJob() Job {
	at := time.Date(2024, 5, 1, 9, 30, 0, 123000000, time.UTC)
	return NewJobBuilder().
		WithId("1714555800000-abc123").
		WithArn("arn:aws:mediaconvert:us-east-1:111122223333:jobs/1714555800000-abc123").
		WithStatus(JobStatusProgressing).
		WithCreatedAt(at).
		WithPriority(-5).
		WithJobPercentComplete(40).
		WithTiming(NewTimingBuilder().WithSubmitTime(at).WithStartTime(at.Add(time.Second)).Build()).
		WithUserMetadata(map[string]string{"team": "video"}).
		WithSettings(NewJobSettingsBuilder().
			WithInputs(NewInputBuilder().
				WithFileInput("s3://in/a.mp4").
				WithAudioSelectors(map[string]AudioSelector{
					"Audio Selector 1": NewAudioSelectorBuilder().WithPids(1, 2).Build(),
				}).
				Build()).
			Build()).
		Build()
}

func TestDocumentRoundTrip(t *testing.T) {
	job := sampleJob()
	doc := job.Document()

	// Documents hold only plain values.
	assert.Equal(t, int64(-5), doc["priority"])
	assert.Equal(t, "PROGRESSING", doc["status"])
	assert.Equal(t, "2024-05-01T09:30:00.123Z", doc["createdAt"])
	_, present := doc["errorMessage"]
	assert.False(t, present, "absent fields are omitted")

	got, err := DecodeJob(doc)
	require.NoError(t, err)
	assert.True(t, job.Equal(got), "got %s", got)
	assert.Equal(t, job.HashCode(), got.HashCode())
}

func TestCreateJobRequestDocumentRoundTrip(t *testing.T) {
	req := NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithQueue("Default").
		WithPriority(3).
		WithTags(map[string]string{"env": "prod"}).
		WithAccelerationSettings(NewAccelerationSettingsBuilder().WithMode(AccelerationModePreferred).Build()).
		WithSettings(NewJobSettingsBuilder().
			WithInputs(NewInputBuilder().WithFileInput("s3://in/a.mp4").Build()).
			Build()).
		Build()

	got, err := DecodeCreateJobRequest(req.Document())
	require.NoError(t, err)
	assert.True(t, req.Equal(got), "got %s", got)
}

func TestMarshalJSONDecodesBack(t *testing.T) {
	job := sampleJob()
	data, err := json.Marshal(job)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"), "marshaled %s", data)
	assert.NotContains(t, string(data), "null")

	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var doc map[string]any
	require.NoError(t, dec.Decode(&doc))

	got, err := DecodeJob(doc)
	require.NoError(t, err)
	assert.True(t, job.Equal(got), "got %s", got)
}

func TestMarshalJSONEmptyRecord(t *testing.T) {
	data, err := json.Marshal(Job{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestMarshalJSONNested(t *testing.T) {
	res := NewCreateJobResultBuilder().WithJob(NewJobBuilder().WithId("1-a").Build()).Build()
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"job": {"id": "1-a"}}`, string(data))
}

func TestMarshalJSONNonFiniteDouble(t *testing.T) {
	s := NewVideoCodecSettingsBuilder().
		WithH264Settings(NewH264SettingsBuilder().WithGopSize(math.Inf(-1)).Build()).
		Build()
	_, err := json.Marshal(s)
	require.ErrorIs(t, err, ErrNonFiniteNumber)
	assert.Contains(t, err.Error(), "h264Settings.gopSize holds -Inf")

	_, err = json.Marshal(NewH264SettingsBuilder().WithGopSize(90).Build())
	assert.NoError(t, err)
}
