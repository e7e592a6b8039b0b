package idgen

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

var jobIDPattern = regexp.MustCompile(`^[0-9]+-[a-z0-9]{6}$`)

func TestJobID_Format(t *testing.T) {
	now := time.UnixMilli(1583867853213)
	id, err := JobID("", now)
	if err != nil {
		t.Fatalf("JobID() error: %v", err)
	}
	if !strings.HasPrefix(id, "1583867853213-") {
		t.Errorf("JobID() = %q, want millisecond timestamp prefix", id)
	}
	if !jobIDPattern.MatchString(id) {
		t.Errorf("JobID() = %q, does not match %s", id, jobIDPattern)
	}
}

func TestJobID_Prefix(t *testing.T) {
	id, err := JobID("sim-", time.UnixMilli(1))
	if err != nil {
		t.Fatalf("JobID() error: %v", err)
	}
	if !strings.HasPrefix(id, "sim-1-") {
		t.Errorf("JobID() = %q, want prefix %q", id, "sim-1-")
	}
}

func TestJobID_Uniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool, 500)
	for i := 0; i < 500; i++ {
		id, err := JobID("", now)
		if err != nil {
			t.Fatalf("JobID() error on iteration %d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("JobID() produced duplicate %q on iteration %d", id, i)
		}
		seen[id] = true
	}
}

func TestJobARN(t *testing.T) {
	got := JobARN("us-east-1", "111122223333", "1583867853213-1nvvbu")
	want := "arn:aws:mediaconvert:us-east-1:111122223333:jobs/1583867853213-1nvvbu"
	if got != want {
		t.Errorf("JobARN() = %q, want %q", got, want)
	}
}

func TestClientRequestToken(t *testing.T) {
	a, b := ClientRequestToken(), ClientRequestToken()
	if a == b {
		t.Fatalf("ClientRequestToken() returned %q twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("ClientRequestToken() = %q is not a UUID: %v", a, err)
	}
}

func TestQueueARN(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"Default", "arn:aws:mediaconvert:eu-west-1:111122223333:queues/Default"},
		{"arn:aws:mediaconvert:us-west-2:444455556666:queues/Fast", "arn:aws:mediaconvert:us-west-2:444455556666:queues/Fast"},
	}
	for _, tt := range tests {
		if got := QueueARN("eu-west-1", "111122223333", tt.name); got != tt.want {
			t.Errorf("QueueARN(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
