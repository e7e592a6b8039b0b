// Package idgen provides the identifiers mcjob puts on simulated jobs and
// requests: nanoid-backed job ids and UUID client request tokens.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set used for the random suffix of a job id.
var Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters in a job id suffix.
var Length = 6

// JobID returns a job id in the service's form, creation time in Unix
// milliseconds then a random suffix, e.g. 1583867853213-1nvvbu. prefix is
// prepended verbatim.
func JobID(prefix string, now time.Time) (string, error) {
	suffix, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix, nil
}

// JobARN returns the ARN of job id in the given region and account.
func JobARN(region, account, id string) string {
	return fmt.Sprintf("arn:aws:mediaconvert:%s:%s:jobs/%s", region, account, id)
}

// ClientRequestToken returns a fresh idempotency token for CreateJob.
func ClientRequestToken() string {
	return uuid.NewString()
}

// QueueARN returns the ARN of the named queue. A name that is already an ARN
// is returned unchanged.
func QueueARN(region, account, name string) string {
	if strings.HasPrefix(name, "arn:") {
		return name
	}
	return fmt.Sprintf("arn:aws:mediaconvert:%s:%s:queues/%s", region, account, name)
}
