// Package events carries MediaConvert job state changes over NATS. The
// payloads follow the detail of the service's "MediaConvert Job State
// Change" notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// Event topic constants
const (
	TopicJobSubmitted   = "mediaconvert.job.submitted"
	TopicJobProgressing = "mediaconvert.job.progressing"
	TopicJobComplete    = "mediaconvert.job.complete"
	TopicJobCanceled    = "mediaconvert.job.canceled"
	TopicJobError       = "mediaconvert.job.error"

	// TopicAll matches every job topic.
	TopicAll = "mediaconvert.job.>"
)

// DetailType is the notification type carried by every JobStateChange.
const DetailType = "MediaConvert Job State Change"

// TopicFor returns the topic for a job entering status.
func TopicFor(status types.JobStatus) string {
	return "mediaconvert.job." + strings.ToLower(string(status))
}

// JobStateChange reports a job entering a new status.
type JobStateChange struct {
	DetailType   string            `json:"detailType"`
	Timestamp    int64             `json:"timestamp"`
	AccountID    string            `json:"accountId"`
	Queue        string            `json:"queue"`
	JobID        string            `json:"jobId"`
	Status       types.JobStatus   `json:"status"`
	UserMetadata map[string]string `json:"userMetadata,omitempty"`
	ErrorCode    int32             `json:"errorCode,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
}

// NewJobStateChange describes job's current status. The job must carry an id
// and a status.
func NewJobStateChange(job types.Job, account string, at time.Time) (JobStateChange, error) {
	id, ok := job.Id().Get()
	if !ok {
		return JobStateChange{}, fmt.Errorf("job has no id")
	}
	status, ok := job.Status().Get()
	if !ok {
		return JobStateChange{}, fmt.Errorf("job %s has no status", id)
	}
	return JobStateChange{
		DetailType:   DetailType,
		Timestamp:    at.UnixMilli(),
		AccountID:    account,
		Queue:        job.Queue().Or(""),
		JobID:        id,
		Status:       status,
		UserMetadata: job.UserMetadata().Or(nil),
		ErrorCode:    job.ErrorCode().Or(0),
		ErrorMessage: job.ErrorMessage().Or(""),
	}, nil
}

// Topic returns the topic e is published on.
func (e JobStateChange) Topic() string {
	return TopicFor(e.Status)
}

// ParseJobStateChange decodes a payload. A status outside JobStatus is an
// error matching types.ErrUnrecognizedEnumValue.
func ParseJobStateChange(data []byte) (JobStateChange, error) {
	var e JobStateChange
	if err := json.Unmarshal(data, &e); err != nil {
		return JobStateChange{}, fmt.Errorf("decoding job state change: %w", err)
	}
	if e.JobID == "" {
		return JobStateChange{}, fmt.Errorf("decoding job state change: missing jobId")
	}
	if e.Status == "" {
		return JobStateChange{}, fmt.Errorf("decoding job state change: %w", &types.EnumError{Enum: "JobStatus", Err: types.ErrEmptyEnumValue})
	}
	return e, nil
}

// Publisher emits job state changes on the topic for their status.
type Publisher interface {
	Publish(ctx context.Context, c JobStateChange) error
	Close() error
}

// Delivery is one payload received from a watched topic. Err is set when the
// payload is not a valid JobStateChange; Change is then zero.
type Delivery struct {
	Subject string
	Change  JobStateChange
	Err     error
}

// Watcher streams job state changes from topics that may hold wildcards.
type Watcher interface {
	// Watch delivers changes on topic until ctx is done, then closes the
	// channel.
	Watch(ctx context.Context, topic string) (<-chan Delivery, error)
	Close() error
}

// Discard is a Publisher that drops every change. It stands in when no
// NATS URL is configured.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, JobStateChange) error { return nil }
func (discard) Close() error                                  { return nil }
