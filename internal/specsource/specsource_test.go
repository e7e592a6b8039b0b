package specsource

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredjeanlab/mediaconvert/types"
)

type memStore struct {
	objects map[string][]byte
	puts    map[string]string
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte), puts: make(map[string]string)}
}

func (m *memStore) GetObject(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (m *memStore) PutObject(_ context.Context, bucket, key string, data []byte, contentType string) error {
	m.objects[bucket+"/"+key] = data
	m.puts[bucket+"/"+key] = contentType
	return nil
}

const jsonSpec = `{
  "role": "arn:aws:iam::111122223333:role/MediaConvert",
  "priority": 5,
  "tags": {"env": "prod"},
  "settings": {"inputs": [{"fileInput": "s3://in/a.mp4", "audioSelectors": {"Audio Selector 1": {"pids": [1, 2]}}}]}
}`

const yamlSpec = `
role: arn:aws:iam::111122223333:role/MediaConvert
priority: 5
tags:
  env: prod
settings:
  inputs:
    - fileInput: s3://in/a.mp4
      audioSelectors:
        Audio Selector 1:
          pids: [1, 2]
`

const tomlSpec = `
role = "arn:aws:iam::111122223333:role/MediaConvert"
priority = 5

[tags]
env = "prod"

[[settings.inputs]]
fileInput = "s3://in/a.mp4"

[settings.inputs.audioSelectors."Audio Selector 1"]
pids = [1, 2]
`

func wantRequest() types.CreateJobRequest {
	return types.NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithPriority(5).
		WithTags(map[string]string{"env": "prod"}).
		WithSettings(types.NewJobSettingsBuilder().
			WithInputs(types.NewInputBuilder().
				WithFileInput("s3://in/a.mp4").
				WithAudioSelectors(map[string]types.AudioSelector{
					"Audio Selector 1": types.NewAudioSelectorBuilder().WithPids(1, 2).Build(),
				}).
				Build()).
			Build()).
		Build()
}

func TestDecodeFormatsAgree(t *testing.T) {
	for _, tc := range []struct {
		format Format
		src    string
	}{
		{FormatJSON, jsonSpec},
		{FormatYAML, yamlSpec},
		{FormatTOML, tomlSpec},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			doc, err := Decode(tc.format, []byte(tc.src))
			require.NoError(t, err)
			req, err := types.DecodeCreateJobRequest(doc)
			require.NoError(t, err)
			assert.True(t, wantRequest().Equal(req), "got %s", req)
		})
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	_, err := Decode(FormatJSON, []byte(`null`))
	assert.Error(t, err)
	_, err = Decode(FormatJSON, []byte(`[1, 2]`))
	assert.Error(t, err)
	_, err = Decode(FormatYAML, []byte(``))
	assert.Error(t, err)
	_, err = Decode(Format("xml"), []byte(`<a/>`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeJSONKeepsNumbersExact(t *testing.T) {
	doc, err := Decode(FormatJSON, []byte(`{"priority": 12}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12"), doc["priority"])
}

func TestFormatOf(t *testing.T) {
	for ref, want := range map[string]Format{
		"job.json":             FormatJSON,
		"dir/job.YAML":         FormatYAML,
		"job.yml":              FormatYAML,
		"s3://bucket/a/b.toml": FormatTOML,
	} {
		got, err := FormatOf(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, want, got, ref)
	}
	_, err := FormatOf("job.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseS3URL(t *testing.T) {
	bucket, key, ok := ParseS3URL("s3://media/jobs/a.json")
	assert.True(t, ok)
	assert.Equal(t, "media", bucket)
	assert.Equal(t, "jobs/a.json", key)

	for _, bad := range []string{"media/jobs/a.json", "s3://media", "s3://media/", "s3:///a.json", "https://media/a.json"} {
		_, _, ok := ParseS3URL(bad)
		assert.False(t, ok, bad)
	}
}

func TestLoaderFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(p, []byte(yamlSpec), 0o644))

	l := &Loader{}
	doc, err := l.Load(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::111122223333:role/MediaConvert", doc["role"])

	_, err = l.Load(context.Background(), filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoaderStdin(t *testing.T) {
	l := &Loader{Stdin: strings.NewReader(`{"queue": "Default"}`)}
	doc, err := l.Load(context.Background(), Stdin)
	require.NoError(t, err)
	assert.Equal(t, "Default", doc["queue"])
}

func TestLoaderS3(t *testing.T) {
	store := newMemStore()
	store.objects["media/jobs/a.toml"] = []byte(tomlSpec)

	l := &Loader{Store: store}
	doc, err := l.Load(context.Background(), "s3://media/jobs/a.toml")
	require.NoError(t, err)
	req, err := types.DecodeCreateJobRequest(doc)
	require.NoError(t, err)
	assert.True(t, wantRequest().Equal(req))

	_, err = l.Load(context.Background(), "s3://media/jobs/missing.json")
	assert.Error(t, err)

	_, err = (&Loader{}).Load(context.Background(), "s3://media/jobs/a.toml")
	assert.ErrorContains(t, err, "no object store")
}
