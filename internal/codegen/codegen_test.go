package codegen

import (
	"errors"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `{
  "metadata": {"serviceId": "MediaConvert", "apiVersion": "2017-08-29", "package": "types"},
  "shapes": [
    {
      "name": "Clip",
      "kind": "structure",
      "doc": "A clip of an input.",
      "root": true,
      "members": [
        {"name": "Codec", "location": "codec", "type": "enum", "ref": "Codec", "doc": "The codec."},
        {"name": "Frames", "location": "frames", "type": "list", "member": {"type": "integer"}, "doc": "Frame numbers."},
        {"name": "Label", "location": "label", "type": "string", "doc": "- A label", "pattern": "^[a-z]+$", "minLength": 1, "maxLength": 8, "required": true},
        {"name": "Rate", "location": "rate", "type": "double", "doc": "Playback rate"},
        {"name": "Start", "location": "start", "type": "timestamp", "doc": "Start time."},
        {"name": "Tags", "location": "tags", "type": "map", "value": {"type": "string"}, "doc": "Tags."},
        {"name": "Type", "location": "type", "type": "integer", "min": 0, "max": 9, "doc": "Type."},
        {"name": "Window", "location": "window", "type": "structure", "ref": "Window", "doc": "Window."}
      ]
    },
    {
      "name": "Window",
      "kind": "structure",
      "doc": "",
      "members": []
    }
  ],
  "enums": [
    {"name": "Codec", "values": ["H_264", "MPEG2"]}
  ]
}`

func parseTestModel(t *testing.T, mutate func(string) string) (*Model, error) {
	t.Helper()
	src := testModel
	if mutate != nil {
		src = mutate(src)
	}
	return Parse([]byte(src))
}

func TestEnumConst(t *testing.T) {
	tests := []struct {
		enum, value, want string
	}{
		{"H264CodecLevel", "LEVEL_4_1", "H264CodecLevelLevel41"},
		{"LanguageCode", "ENG", "LanguageCodeEng"},
		{"StatusUpdateInterval", "SECONDS_60", "StatusUpdateIntervalSeconds60"},
		{"Codec", "_LEADING__DOUBLE_", "CodecLeadingDouble"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, EnumConst(tc.enum, tc.value))
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"H264QvbrSettings":           "h264_qvbr_settings.go",
		"AudioDescription":           "audio_description.go",
		"S3DestinationAccessControl": "s3_destination_access_control.go",
		"HlsGroupSettings":           "hls_group_settings.go",
		"DvbNitSettings":             "dvb_nit_settings.go",
		"Job":                        "job.go",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileName(in), in)
	}
}

func TestFieldIdent(t *testing.T) {
	assert.Equal(t, "typ", fieldIdent("type"))
	assert.Equal(t, "range_", fieldIdent("range"))
	assert.Equal(t, "streamName", fieldIdent("streamName"))
}

func TestSentence(t *testing.T) {
	assert.Equal(t, "", sentence("  "))
	assert.Equal(t, "A label.", sentence("- A label"))
	assert.Equal(t, "Two words.", sentence("Two\n\t words."))
	assert.Equal(t, "Really?", sentence("Really?"))
}

func TestWrap(t *testing.T) {
	lines := wrap("aaa bbb ccc ddd", 7)
	assert.Equal(t, []string{"aaa bbb", "ccc ddd"}, lines)
	assert.Equal(t, []string{"averyveryverylongword"}, wrap("averyveryverylongword", 5))
	assert.Nil(t, wrap("", 10))
}

func TestComment(t *testing.T) {
	assert.Equal(t, "// One.\n//\n// Two.\n", comment("One.", "", "Two."))
	assert.Equal(t, "", comment("", ""))
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := parseTestModel(t, func(s string) string {
		return strings.Replace(s, `"kind": "structure",`, `"kind": "structure", "extra": 1,`, 1)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra")
}

func TestCheckProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(string) string
		want   string
	}{
		{
			name:   "unknown structure",
			mutate: func(s string) string { return strings.Replace(s, `"ref": "Window"`, `"ref": "Door"`, 1) },
			want:   `Clip.window: unknown structure "Door"`,
		},
		{
			name:   "unknown enum",
			mutate: func(s string) string { return strings.Replace(s, `"ref": "Codec"`, `"ref": "Codek"`, 1) },
			want:   `Clip.codec: unknown enum "Codek"`,
		},
		{
			name:   "range on string",
			mutate: func(s string) string { return strings.Replace(s, `"doc": "- A label",`, `"doc": "- A label", "min": 1,`, 1) },
			want:   "Clip.label: range on non-integer member",
		},
		{
			name:   "reserved method",
			mutate: func(s string) string { return strings.Replace(s, `"name": "Rate"`, `"name": "String"`, 1) },
			want:   "Clip.rate: member name collides with a generated method",
		},
		{
			name: "constant collision",
			mutate: func(s string) string {
				return strings.Replace(s, `["H_264", "MPEG2"]`, `["H_264", "H264"]`, 1)
			},
			want: "identifier CodecH264 declared by both enum Codec and enum Codec",
		},
		{
			name: "cycle",
			mutate: func(s string) string {
				return strings.Replace(s, `"members": []`, `"members": [{"name": "Clip", "location": "clip", "type": "structure", "ref": "Clip", "doc": ""}]`, 1)
			},
			want: "structure cycle Clip -> Window -> Clip",
		},
		{
			name: "list without member",
			mutate: func(s string) string {
				return strings.Replace(s, `"type": "list", "member": {"type": "integer"}`, `"type": "list"`, 1)
			},
			want: "Clip.frames: list without member",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseTestModel(t, tc.mutate)
			require.Error(t, err)
			var me *ModelError
			require.True(t, errors.As(err, &me))
			assert.Contains(t, me.Problems, tc.want)
		})
	}
}

func TestGenerateSmallModel(t *testing.T) {
	m, err := parseTestModel(t, nil)
	require.NoError(t, err)

	files, err := Generate(m, Options{Source: "test.json"})
	require.NoError(t, err)

	var names []string
	for name := range files {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"clip.go", "window.go", "enums.go", "enum_registry.go"}, names)

	clip := string(files["clip.go"])
	for _, want := range []string{
		"// Code generated by shapegen from test.json. DO NOT EDIT.",
		"\"regexp\"",
		"\"time\"",
		"typ    opt.Optional[int32]",
		"frames opt.Optional[[]int32]",
		"// A label.",
		"validateRequired(v, \"label\", x.label)",
		"validatePattern(v, \"label\", x.label, patternClipLabel)",
		"validateLength(v, \"label\", x.label, 1, 8)",
		"validateFinite(v, \"rate\", x.rate)",
		"validateRange(v, \"type\", x.typ, 0, 9)",
		"shape.EqualFunc(x.rate, o.rate, shape.Float64Equal)",
		"shape.EqualFunc(x.start, o.start, shape.TimeEqual)",
		"func DecodeClip(doc map[string]any) (Clip, error)",
		"func (b *ClipBuilder) WithFrames(v ...int32) *ClipBuilder",
		"func (b *ClipBuilder) AddTagsEntry(key string, value string) error",
		"func (b *ClipBuilder) ClearTagsEntries() *ClipBuilder",
		"func (x Clip) Document() map[string]any",
		"put(doc, \"frames\", x.frames, fromList(fromInt32))",
		"put(doc, \"codec\", x.codec, fromEnum[Codec])",
		"put(doc, \"tags\", x.tags, fromMap(fromString))",
		"put(doc, \"window\", x.window, fromStruct[Window])",
		"func (x Clip) MarshalJSON() ([]byte, error)",
	} {
		assert.Contains(t, clip, want)
	}

	assert.NotContains(t, string(files["window.go"]), "func DecodeWindow(")

	enums := string(files["enums.go"])
	assert.Contains(t, enums, "CodecH264  Codec = \"H_264\"")
	assert.Contains(t, enums, "CodecMpeg2 Codec = \"MPEG2\"")
	assert.Contains(t, enums, "// Used by Clip.Codec.")
	assert.Contains(t, string(files["enum_registry.go"]), `registerEnum("Codec", Codec("").Values())`)
}

func TestGenerateIsFormatStable(t *testing.T) {
	m, err := parseTestModel(t, nil)
	require.NoError(t, err)
	files, err := Generate(m, Options{Source: "test.json"})
	require.NoError(t, err)
	for name, src := range files {
		again, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(src), string(again), name)
	}
}

func TestGenerateServiceModel(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "api", "mediaconvert.json"))
	require.NoError(t, err)
	assert.Equal(t, "MediaConvert", m.Metadata.ServiceID)

	files, err := Generate(m, Options{Source: "mediaconvert.json"})
	require.NoError(t, err)

	// Every generated file is checked in under types/.
	for name := range files {
		_, err := os.Stat(filepath.Join("..", "..", "types", name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, string(files["create_job_request.go"]), "func DecodeCreateJobRequest(")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
