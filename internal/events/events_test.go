package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/types"
)

func submittedJob() types.Job {
	return types.NewJobBuilder().
		WithId("1583867853213-1nvvbu").
		WithStatus(types.JobStatusSubmitted).
		WithQueue("arn:aws:mediaconvert:us-east-1:111122223333:queues/Default").
		WithUserMetadata(map[string]string{"team": "video"}).
		Build()
}

func TestTopicFor(t *testing.T) {
	tests := map[types.JobStatus]string{
		types.JobStatusSubmitted:   TopicJobSubmitted,
		types.JobStatusProgressing: TopicJobProgressing,
		types.JobStatusComplete:    TopicJobComplete,
		types.JobStatusCanceled:    TopicJobCanceled,
		types.JobStatusError:       TopicJobError,
	}
	for status, want := range tests {
		if got := TopicFor(status); got != want {
			t.Errorf("TopicFor(%s) = %q, want %q", status, got, want)
		}
	}
}

func TestNewJobStateChange(t *testing.T) {
	at := time.UnixMilli(1583867853213)
	e, err := NewJobStateChange(submittedJob(), "111122223333", at)
	if err != nil {
		t.Fatalf("NewJobStateChange: %v", err)
	}
	if e.DetailType != DetailType || e.Timestamp != 1583867853213 || e.AccountID != "111122223333" {
		t.Errorf("header fields = %+v", e)
	}
	if e.JobID != "1583867853213-1nvvbu" || e.Status != types.JobStatusSubmitted {
		t.Errorf("job fields = %+v", e)
	}
	if e.UserMetadata["team"] != "video" {
		t.Errorf("UserMetadata = %v", e.UserMetadata)
	}
	if e.Topic() != TopicJobSubmitted {
		t.Errorf("Topic() = %q", e.Topic())
	}
}

func TestNewJobStateChange_MissingFields(t *testing.T) {
	if _, err := NewJobStateChange(types.NewJobBuilder().WithStatus(types.JobStatusComplete).Build(), "", time.Now()); err == nil {
		t.Error("expected an error for a job without an id")
	}
	if _, err := NewJobStateChange(types.NewJobBuilder().WithId("x").Build(), "", time.Now()); err == nil {
		t.Error("expected an error for a job without a status")
	}
}

func TestParseJobStateChange(t *testing.T) {
	e, err := NewJobStateChange(submittedJob(), "111122223333", time.UnixMilli(5))
	if err != nil {
		t.Fatalf("NewJobStateChange: %v", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"status":"SUBMITTED"`) {
		t.Errorf("payload = %s, want canonical status", data)
	}

	got, err := ParseJobStateChange(data)
	if err != nil {
		t.Fatalf("ParseJobStateChange: %v", err)
	}
	if got.JobID != e.JobID || got.Status != e.Status || got.Queue != e.Queue {
		t.Errorf("got %+v, want %+v", got, e)
	}
}

func TestParseJobStateChange_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantEnum bool
	}{
		{"unknown status", `{"jobId":"1","status":"DONE"}`, true},
		{"empty status", `{"jobId":"1","status":""}`, true},
		{"missing status", `{"jobId":"1"}`, true},
		{"missing job id", `{"status":"COMPLETE"}`, false},
		{"not json", `nope`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJobStateChange([]byte(tt.payload))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, types.ErrUnrecognizedEnumValue); got != tt.wantEnum {
				t.Errorf("errors.Is(%v, ErrUnrecognizedEnumValue) = %t, want %t", err, got, tt.wantEnum)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Publish(context.Background(), JobStateChange{JobID: "j"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := Discard.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
