package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

func commentaryTrack(t *testing.T) AudioDescription {
	t.Helper()
	lang, err := ParseLanguageCode("ENG")
	require.NoError(t, err)
	return NewAudioDescriptionBuilder().
		SetLanguageCode(opt.Some(lang)).
		SetStreamName(opt.Some("Director commentary")).
		Build()
}

func TestAudioDescriptionScenario(t *testing.T) {
	ad := NewAudioDescriptionBuilder().
		WithLanguageCode(LanguageCodeEng).
		WithStreamName("Director commentary").
		Build()

	other := commentaryTrack(t)
	assert.True(t, ad.Equal(other))
	assert.True(t, other.Equal(ad))
	assert.Equal(t, ad.HashCode(), other.HashCode())
	assert.Equal(t, int32(-53813792), ad.HashCode())

	s := ad.String()
	assert.Equal(t, "{LanguageCode: ENG, StreamName: Director commentary}", s)
	for _, absent := range []string{"AudioType", "CodecSettings", "AudioSourceName", "RemixSettings"} {
		assert.NotContains(t, s, absent)
	}
}

func TestAccessorRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	job := NewJobBuilder().
		WithArn("arn:aws:mediaconvert:us-east-1:111122223333:jobs/abc").
		WithPriority(-12).
		WithStatus(JobStatusProgressing).
		WithCreatedAt(created).
		WithUserMetadata(map[string]string{"team": "video"}).
		Build()

	arn, ok := job.Arn().Get()
	require.True(t, ok)
	assert.Equal(t, "arn:aws:mediaconvert:us-east-1:111122223333:jobs/abc", arn)
	assert.Equal(t, int32(-12), job.Priority().Or(0))
	assert.Equal(t, JobStatusProgressing, job.Status().Or(""))
	assert.True(t, created.Equal(job.CreatedAt().Or(time.Time{})))
	assert.Equal(t, map[string]string{"team": "video"}, job.UserMetadata().Or(nil))

	assert.False(t, job.Queue().IsSet())
	assert.False(t, job.Settings().IsSet())
}

func TestOutOfRangeValuesAreStored(t *testing.T) {
	ad := NewAudioDescriptionBuilder().WithAudioType(9000).WithStreamName("!!").Build()
	assert.Equal(t, int32(9000), ad.AudioType().Or(0))
	assert.Equal(t, "!!", ad.StreamName().Or(""))
}

func TestFluentChainMatchesSequentialSets(t *testing.T) {
	chained := NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithQueue("Default").
		WithPriority(5).
		Build()

	b := NewCreateJobRequestBuilder()
	b.WithRole("arn:aws:iam::111122223333:role/MediaConvert")
	b.SetQueue(opt.Some("Default"))
	b.SetPriority(opt.Some[int32](5))
	sequential := b.Build()

	assert.True(t, chained.Equal(sequential))
	assert.Equal(t, chained.HashCode(), sequential.HashCode())
}

func TestNullAwareEquality(t *testing.T) {
	a := NewAudioDescriptionBuilder().Build()
	b := NewAudioDescriptionBuilder().Build()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())

	a = a.ToBuilder().WithAudioType(3).Build()
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	b = b.ToBuilder().WithAudioType(3).Build()
	assert.True(t, a.Equal(b))

	// A present zero value differs from an absent field.
	zero := NewAudioDescriptionBuilder().WithAudioType(0).Build()
	assert.False(t, zero.Equal(NewAudioDescriptionBuilder().Build()))
}

func TestSetClearsField(t *testing.T) {
	ad := NewAudioDescriptionBuilder().WithStreamName("x").Build()
	cleared := ad.ToBuilder().SetStreamName(opt.None[string]()).Build()
	assert.False(t, cleared.StreamName().IsSet())
	assert.True(t, cleared.Equal(NewAudioDescriptionBuilder().Build()))
}

func TestNestedRecordEquality(t *testing.T) {
	build := func(lkfs float64) AudioDescription {
		return NewAudioDescriptionBuilder().
			WithAudioNormalizationSettings(
				NewAudioNormalizationSettingsBuilder().
					WithAlgorithm(AudioNormalizationAlgorithmItuBs17703).
					WithTargetLkfs(lkfs).
					Build()).
			Build()
	}
	assert.True(t, build(-23).Equal(build(-23)))
	assert.Equal(t, build(-23).HashCode(), build(-23).HashCode())
	assert.False(t, build(-23).Equal(build(-24)))
}

func TestListFields(t *testing.T) {
	sel := NewAudioSelectorBuilder().WithPids(1, 2).WithPids(3).Build()
	assert.Equal(t, []int32{1, 2, 3}, sel.Pids().Or(nil))

	reordered := NewAudioSelectorBuilder().WithPids(3, 2, 1).Build()
	assert.False(t, sel.Equal(reordered))

	empty := NewAudioSelectorBuilder().SetPids(opt.Some([]int32{})).Build()
	assert.True(t, empty.Pids().IsSet())
	assert.False(t, empty.Equal(NewAudioSelectorBuilder().Build()))
}

func TestCollectionsAreCopied(t *testing.T) {
	tags := map[string]string{"env": "prod"}
	b := NewCreateJobRequestBuilder().WithTags(tags)
	req := b.Build()

	tags["env"] = "dev"
	assert.Equal(t, "prod", req.Tags().Or(nil)["env"])

	got := req.Tags().Or(nil)
	got["env"] = "mutated"
	assert.Equal(t, "prod", req.Tags().Or(nil)["env"])

	require.NoError(t, b.AddTagsEntry("owner", "media"))
	assert.Len(t, req.Tags().Or(nil), 1, "Build returns an independent copy")
	assert.Len(t, b.Build().Tags().Or(nil), 2)

	pids := NewAudioSelectorBuilder().WithPids(1, 2).Build()
	s := pids.Pids().Or(nil)
	s[0] = 99
	assert.Equal(t, int32(1), pids.Pids().Or(nil)[0])
}

func TestAddEntryRejectsDuplicateKey(t *testing.T) {
	b := NewCreateJobRequestBuilder()
	require.NoError(t, b.AddTagsEntry("env", "prod"))

	err := b.AddTagsEntry("env", "dev")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "env")

	assert.Equal(t, map[string]string{"env": "prod"}, b.Build().Tags().Or(nil))
}

func TestClearEntriesLeavesEmptyMap(t *testing.T) {
	b := NewCreateJobRequestBuilder()
	require.NoError(t, b.AddUserMetadataEntry("a", "1"))
	require.NoError(t, b.AddUserMetadataEntry("b", "2"))

	req := b.ClearUserMetadataEntries().Build()
	m, ok := req.UserMetadata().Get()
	assert.True(t, ok)
	assert.NotNil(t, m)
	assert.Empty(t, m)
	assert.False(t, req.Equal(NewCreateJobRequestBuilder().Build()))

	require.NoError(t, b.AddUserMetadataEntry("a", "3"), "cleared keys can be added again")
}

func TestMapEqualityIgnoresInsertionOrder(t *testing.T) {
	a := NewCreateJobRequestBuilder()
	require.NoError(t, a.AddTagsEntry("x", "1"))
	require.NoError(t, a.AddTagsEntry("y", "2"))
	b := NewCreateJobRequestBuilder()
	require.NoError(t, b.AddTagsEntry("y", "2"))
	require.NoError(t, b.AddTagsEntry("x", "1"))

	assert.True(t, a.Build().Equal(b.Build()))
	assert.Equal(t, a.Build().HashCode(), b.Build().HashCode())
}

func TestStringOmitsAbsentFields(t *testing.T) {
	req := NewCreateJobRequestBuilder().WithQueue("Default").Build()
	s := req.String()
	assert.Contains(t, s, "Queue:")
	for _, name := range []string{"Role", "Settings", "Tags", "Priority", "UserMetadata", "JobTemplate"} {
		assert.False(t, strings.Contains(s, name), "%s should be omitted from %s", name, s)
	}
	assert.Equal(t, "{}", NewCreateJobRequestBuilder().Build().String())
}

func TestStringRendersNestedRecords(t *testing.T) {
	settings := NewJobSettingsBuilder().
		WithInputs(NewInputBuilder().WithFileInput("s3://in/a.mp4").Build()).
		Build()
	assert.Equal(t, "{Inputs: [{FileInput: s3://in/a.mp4}]}", settings.String())
}

func TestTimeFieldsCompareAtMillisecondPrecision(t *testing.T) {
	start := time.UnixMilli(1700000000123)
	a := NewTimingBuilder().WithStartTime(start).Build()
	b := NewTimingBuilder().WithStartTime(start.Add(400 * time.Microsecond)).Build()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())

	c := NewTimingBuilder().WithStartTime(start.Add(time.Millisecond)).Build()
	assert.False(t, a.Equal(c))
}

func TestFieldOrderIsIndependentOfSetOrder(t *testing.T) {
	a := NewRectangleBuilder().WithHeight(720).WithWidth(1280).Build()
	b := NewRectangleBuilder().WithWidth(1280).WithHeight(720).Build()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.Equal(t, "{Height: 720, Width: 1280}", b.String())
}

func TestBuilderStaysUsableAfterBuild(t *testing.T) {
	b := NewAudioDescriptionBuilder().WithStreamName("one")
	first := b.Build()
	second := b.WithStreamName("two").Build()
	assert.Equal(t, "one", first.StreamName().Or(""))
	assert.Equal(t, "two", second.StreamName().Or(""))
}
