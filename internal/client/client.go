// Package client provides a transport-agnostic interface for the job ledger
// and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// JobsClient is the interface the mcjob job and tag commands use to reach a
// ledger server. It is implemented by HTTPClient.
type JobsClient interface {
	// Jobs
	CreateJob(ctx context.Context, req types.CreateJobRequest) (types.CreateJobResult, error)
	GetJob(ctx context.Context, id string) (types.GetJobResult, error)
	ListJobs(ctx context.Context, req types.ListJobsRequest) (types.ListJobsResult, error)
	CancelJob(ctx context.Context, id string) (types.CancelJobResult, error)

	// Tags
	TagResource(ctx context.Context, req types.TagResourceRequest) (types.TagResourceResult, error)
	UntagResource(ctx context.Context, req types.UntagResourceRequest) (types.UntagResourceResult, error)
	ListTagsForResource(ctx context.Context, arn string) (types.ListTagsForResourceResult, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}
