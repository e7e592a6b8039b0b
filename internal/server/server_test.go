package server

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []events.JobStateChange
}

func (p *recordingPublisher) Publish(_ context.Context, c events.JobStateChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, c.Topic())
	p.events = append(p.events, c)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// stepClock advances one second per reading.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestJobServer() (*JobServer, *memory.MemoryStore, *recordingPublisher) {
	st := memory.New()
	pub := &recordingPublisher{}
	clock := &stepClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	srv := NewJobServer(st, pub, Options{
		Region:  "us-west-2",
		Account: "444455556666",
		Now:     clock.Now,
	})
	return srv, st, pub
}

// newTestServer returns a server, its store, and its HTTP handler.
func newTestServer() (*JobServer, *memory.MemoryStore, http.Handler) {
	srv, st, _ := newTestJobServer()
	return srv, st, srv.NewHTTPHandler("")
}

func baseRequest() *types.CreateJobRequestBuilder {
	return types.NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithSettings(types.NewJobSettingsBuilder().
			WithInputs(types.NewInputBuilder().WithFileInput("s3://in/a.mp4").Build()).
			Build())
}

func mustCreate(t *testing.T, srv *JobServer, req types.CreateJobRequest) types.Job {
	t.Helper()
	res, err := srv.CreateJob(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	job, ok := res.Job().Get()
	if !ok {
		t.Fatal("result has no job")
	}
	return job
}

func TestBuildJob(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	req := baseRequest().
		WithQueue("Fast").
		WithPriority(7).
		WithStatusUpdateInterval(types.StatusUpdateIntervalSeconds60).
		WithUserMetadata(map[string]string{"team": "video"}).
		WithTags(map[string]string{"env": "prod"}).
		Build()

	job := BuildJob(req, JobIdentity{ID: "1714555800000-abc123", Region: "us-west-2", Account: "444455556666", Now: now})

	if got := job.Id().Or(""); got != "1714555800000-abc123" {
		t.Errorf("Id = %q", got)
	}
	if got, want := job.Arn().Or(""), "arn:aws:mediaconvert:us-west-2:444455556666:jobs/1714555800000-abc123"; got != want {
		t.Errorf("Arn = %q, want %q", got, want)
	}
	if got, want := job.Queue().Or(""), "arn:aws:mediaconvert:us-west-2:444455556666:queues/Fast"; got != want {
		t.Errorf("Queue = %q, want %q", got, want)
	}
	if got := job.Status().Or(""); got != types.JobStatusSubmitted {
		t.Errorf("Status = %q, want SUBMITTED", got)
	}
	if got := job.AccelerationStatus().Or(""); got != types.AccelerationStatusNotApplicable {
		t.Errorf("AccelerationStatus = %q, want NOT_APPLICABLE", got)
	}
	if got := job.Priority().Or(0); got != 7 {
		t.Errorf("Priority = %d, want 7", got)
	}
	if !job.CreatedAt().Or(time.Time{}).Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", job.CreatedAt(), now)
	}
	timing, _ := job.Timing().Get()
	if !timing.SubmitTime().Or(time.Time{}).Equal(now) {
		t.Errorf("Timing.SubmitTime = %v, want %v", timing.SubmitTime(), now)
	}
	if !job.Settings().Or(types.JobSettings{}).Equal(req.Settings().Or(types.JobSettings{})) {
		t.Error("Settings were not copied from the request")
	}
	if !reflect.DeepEqual(job.UserMetadata().Or(nil), map[string]string{"team": "video"}) {
		t.Errorf("UserMetadata = %v", job.UserMetadata())
	}
	if job.StatusUpdateInterval().Or("") != types.StatusUpdateIntervalSeconds60 {
		t.Errorf("StatusUpdateInterval = %v", job.StatusUpdateInterval())
	}
	if err := job.Validate(); err != nil {
		t.Errorf("built job does not validate: %v", err)
	}
}

func TestBuildJob_DefaultQueueAndAcceleration(t *testing.T) {
	req := baseRequest().
		WithAccelerationSettings(types.NewAccelerationSettingsBuilder().WithMode(types.AccelerationModePreferred).Build()).
		Build()
	job := BuildJob(req, JobIdentity{ID: "1-a", Region: "us-east-1", Account: "111122223333", Now: time.Unix(0, 0)})

	if got := job.Queue().Or(""); got != "arn:aws:mediaconvert:us-east-1:111122223333:queues/Default" {
		t.Errorf("Queue = %q", got)
	}
	if got := job.Priority().Or(-1); got != 0 {
		t.Errorf("Priority = %d, want 0", got)
	}
	if got := job.AccelerationStatus().Or(""); got != types.AccelerationStatusInProgress {
		t.Errorf("AccelerationStatus = %q, want IN_PROGRESS", got)
	}
}

func TestCreateJob(t *testing.T) {
	srv, st, pub := newTestJobServer()
	ctx := context.Background()

	job := mustCreate(t, srv, baseRequest().WithTags(map[string]string{"env": "prod"}).Build())

	stored, err := st.GetJob(ctx, job.Id().Or(""))
	if err != nil {
		t.Fatalf("stored job: %v", err)
	}
	if !stored.Equal(job) {
		t.Errorf("stored %s, want %s", stored, job)
	}

	tags, _ := st.ListTags(ctx, job.Arn().Or(""))
	if !reflect.DeepEqual(tags, map[string]string{"env": "prod"}) {
		t.Errorf("tags = %v", tags)
	}

	if len(pub.events) != 1 || pub.topics[0] != events.TopicJobSubmitted {
		t.Fatalf("published %v", pub.topics)
	}
	if ev := pub.events[0]; ev.JobID != job.Id().Or("") || ev.AccountID != "444455556666" {
		t.Errorf("event = %+v", ev)
	}
}

func TestCreateJob_Invalid(t *testing.T) {
	srv, st, pub := newTestJobServer()

	_, err := srv.CreateJob(context.Background(), types.NewCreateJobRequestBuilder().WithPriority(99).Build())
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("problems = %v", ve.Errors)
	}
	if !isInputError(err) {
		t.Error("validation failures are input errors")
	}

	jobs, _ := st.ListJobs(context.Background(), store.JobFilter{})
	if len(jobs) != 0 || len(pub.events) != 0 {
		t.Errorf("invalid request left %d jobs and %d events", len(jobs), len(pub.events))
	}
}

func TestGetJob(t *testing.T) {
	srv, _, _ := newTestJobServer()
	ctx := context.Background()
	job := mustCreate(t, srv, baseRequest().Build())

	res, err := srv.GetJob(ctx, job.Id().Or(""))
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if !res.Job().Or(types.Job{}).Equal(job) {
		t.Errorf("GetJob = %s", res)
	}

	if _, err := srv.GetJob(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetJob(missing) = %v, want ErrNotFound", err)
	}
	if _, err := srv.GetJob(ctx, ""); !isInputError(err) {
		t.Errorf("GetJob(\"\") = %v, want input error", err)
	}
}

func jobIDs(res types.ListJobsResult) []string {
	var ids []string
	for _, j := range res.Jobs().Or(nil) {
		ids = append(ids, j.Id().Or(""))
	}
	return ids
}

func TestListJobs_Pagination(t *testing.T) {
	srv, _, _ := newTestJobServer()
	ctx := context.Background()

	var created []string
	for range 5 {
		created = append(created, mustCreate(t, srv, baseRequest().Build()).Id().Or(""))
	}

	var pages [][]string
	req := types.NewListJobsRequestBuilder().WithMaxResults(2).Build()
	for {
		res, err := srv.ListJobs(ctx, req)
		if err != nil {
			t.Fatalf("ListJobs: %v", err)
		}
		pages = append(pages, jobIDs(res))
		tok, ok := res.NextToken().Get()
		if !ok {
			break
		}
		req = req.ToBuilder().WithNextToken(tok).Build()
	}

	want := [][]string{
		{created[4], created[3]},
		{created[2], created[1]},
		{created[0]},
	}
	if !reflect.DeepEqual(pages, want) {
		t.Errorf("pages = %v, want %v", pages, want)
	}

	asc, err := srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithOrder(types.OrderAscending).Build())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if !reflect.DeepEqual(jobIDs(asc), created) {
		t.Errorf("ascending = %v, want %v", jobIDs(asc), created)
	}
	if asc.NextToken().IsSet() {
		t.Error("a complete listing has no next token")
	}
}

func TestCreateJob_MicrosecondTimestamps(t *testing.T) {
	clock := &stepClock{t: time.Date(2024, 5, 1, 9, 0, 0, 123456789, time.UTC)}
	srv := NewJobServer(memory.New(), &recordingPublisher{}, Options{Now: clock.Now})
	ctx := context.Background()

	for range 3 {
		mustCreate(t, srv, baseRequest().Build())
	}
	res, err := srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithMaxResults(1).Build())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	for _, j := range res.Jobs().Or(nil) {
		if ns := j.CreatedAt().Or(time.Time{}).Nanosecond(); ns%1000 != 0 {
			t.Errorf("createdAt carries %d ns", ns)
		}
	}

	tok, ok := res.NextToken().Get()
	if !ok {
		t.Fatal("expected a next token")
	}
	c, err := decodePageToken(tok)
	if err != nil {
		t.Fatalf("decodePageToken: %v", err)
	}
	if want := time.Date(2024, 5, 1, 9, 0, 3, 123456000, time.UTC); !c.CreatedAt.Equal(want) {
		t.Errorf("cursor createdAt = %v, want %v", c.CreatedAt, want)
	}
}

func TestListJobs_Filters(t *testing.T) {
	srv, _, _ := newTestJobServer()
	ctx := context.Background()

	fast := mustCreate(t, srv, baseRequest().WithQueue("Fast").Build())
	slow := mustCreate(t, srv, baseRequest().Build())
	if _, err := srv.CancelJob(ctx, slow.Id().Or("")); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}

	byQueue, err := srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithQueue("Fast").Build())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if got := jobIDs(byQueue); !reflect.DeepEqual(got, []string{fast.Id().Or("")}) {
		t.Errorf("queue filter = %v", got)
	}

	byARN, _ := srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithQueue(fast.Queue().Or("")).Build())
	if got := jobIDs(byARN); !reflect.DeepEqual(got, []string{fast.Id().Or("")}) {
		t.Errorf("queue ARN filter = %v", got)
	}

	byStatus, _ := srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithStatus(types.JobStatusCanceled).Build())
	if got := jobIDs(byStatus); !reflect.DeepEqual(got, []string{slow.Id().Or("")}) {
		t.Errorf("status filter = %v", got)
	}
}

func TestListJobs_BadInput(t *testing.T) {
	srv, _, _ := newTestJobServer()
	ctx := context.Background()

	_, err := srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithNextToken("%%%").Build())
	if !isInputError(err) {
		t.Errorf("bad token: got %v, want input error", err)
	}

	_, err = srv.ListJobs(ctx, types.NewListJobsRequestBuilder().WithMaxResults(50).Build())
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("maxResults 50: got %v, want ValidationError", err)
	}
}

func TestCancelJob(t *testing.T) {
	srv, st, pub := newTestJobServer()
	ctx := context.Background()
	job := mustCreate(t, srv, baseRequest().Build())
	id := job.Id().Or("")

	if _, err := srv.CancelJob(ctx, id); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}

	got, _ := st.GetJob(ctx, id)
	if got.Status().Or("") != types.JobStatusCanceled {
		t.Errorf("Status = %v, want CANCELED", got.Status())
	}
	timing := got.Timing().Or(types.Timing{})
	if !timing.FinishTime().IsSet() || !timing.SubmitTime().IsSet() {
		t.Errorf("Timing = %s, want submit and finish times", timing)
	}
	if last := pub.topics[len(pub.topics)-1]; last != events.TopicJobCanceled {
		t.Errorf("last topic = %q, want %q", last, events.TopicJobCanceled)
	}

	_, err := srv.CancelJob(ctx, id)
	var ce conflictError
	if !errors.As(err, &ce) {
		t.Errorf("second cancel = %v, want conflictError", err)
	}
	if _, err := srv.CancelJob(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("CancelJob(missing) = %v, want ErrNotFound", err)
	}
}

func TestTagOperations(t *testing.T) {
	srv, _, _ := newTestJobServer()
	ctx := context.Background()
	arn := "arn:aws:mediaconvert:us-west-2:444455556666:jobs/1-a"

	_, err := srv.TagResource(ctx, types.NewTagResourceRequestBuilder().
		WithArn(arn).
		WithTags(map[string]string{"env": "prod", "team": "video"}).
		Build())
	if err != nil {
		t.Fatalf("TagResource: %v", err)
	}
	_, err = srv.UntagResource(ctx, types.NewUntagResourceRequestBuilder().WithArn(arn).WithTagKeys("team").Build())
	if err != nil {
		t.Fatalf("UntagResource: %v", err)
	}

	res, err := srv.ListTagsForResource(ctx, arn)
	if err != nil {
		t.Fatalf("ListTagsForResource: %v", err)
	}
	rt := res.ResourceTags().Or(types.ResourceTags{})
	if rt.Arn().Or("") != arn || !reflect.DeepEqual(rt.Tags().Or(nil), map[string]string{"env": "prod"}) {
		t.Errorf("ResourceTags = %s", rt)
	}

	_, err = srv.TagResource(ctx, types.NewTagResourceRequestBuilder().WithArn(arn).Build())
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("TagResource without tags = %v, want ValidationError", err)
	}
}

func TestPageToken(t *testing.T) {
	c := store.Cursor{CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 5, time.UTC), ID: "1-a"}
	got, err := decodePageToken(encodePageToken(c))
	if err != nil {
		t.Fatalf("decodePageToken: %v", err)
	}
	if !got.CreatedAt.Equal(c.CreatedAt) || got.ID != c.ID {
		t.Errorf("cursor = %+v, want %+v", got, c)
	}

	for _, bad := range []string{"", "!!", "e30"} {
		if _, err := decodePageToken(bad); err == nil {
			t.Errorf("decodePageToken(%q) should fail", bad)
		}
	}
}
