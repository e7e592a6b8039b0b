package server

import (
	"context"
	"fmt"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/idgen"
	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// defaultMaxResults is the page size when a ListJobs request names none.
const defaultMaxResults = 20

// JobIdentity names a job the ledger is about to create.
type JobIdentity struct {
	ID      string
	Region  string
	Account string
	Now     time.Time
}

// BuildJob returns the SUBMITTED job created by req. Request fields the
// service echoes back are copied onto the job.
func BuildJob(req types.CreateJobRequest, ident JobIdentity) types.Job {
	b := types.NewJobBuilder().
		WithId(ident.ID).
		WithArn(idgen.JobARN(ident.Region, ident.Account, ident.ID)).
		WithStatus(types.JobStatusSubmitted).
		WithCreatedAt(ident.Now).
		WithTiming(types.NewTimingBuilder().WithSubmitTime(ident.Now).Build()).
		WithQueue(idgen.QueueARN(ident.Region, ident.Account, req.Queue().Or("Default"))).
		WithPriority(req.Priority().Or(0)).
		WithAccelerationStatus(types.AccelerationStatusNotApplicable).
		SetAccelerationSettings(req.AccelerationSettings()).
		SetBillingTagsSource(req.BillingTagsSource()).
		SetHopDestinations(req.HopDestinations()).
		SetJobTemplate(req.JobTemplate()).
		SetRole(req.Role()).
		SetSettings(req.Settings()).
		SetSimulateReservedQueue(req.SimulateReservedQueue()).
		SetStatusUpdateInterval(req.StatusUpdateInterval()).
		SetUserMetadata(req.UserMetadata())
	if a, ok := req.AccelerationSettings().Get(); ok {
		if mode, ok := a.Mode().Get(); ok && mode != types.AccelerationModeDisabled {
			b.WithAccelerationStatus(types.AccelerationStatusInProgress)
		}
	}
	return b.Build()
}

// CreateJob validates req, records the job it creates along with the
// request's tags, and announces it as SUBMITTED.
func (s *JobServer) CreateJob(ctx context.Context, req types.CreateJobRequest) (types.CreateJobResult, error) {
	if err := req.Validate(); err != nil {
		return types.CreateJobResult{}, err
	}

	now := s.now()
	id, err := idgen.JobID(s.opts.TokenPrefix, now)
	if err != nil {
		return types.CreateJobResult{}, fmt.Errorf("generate job id: %w", err)
	}
	job := BuildJob(req, JobIdentity{ID: id, Region: s.opts.Region, Account: s.opts.Account, Now: now})

	err = s.store.RunInTransaction(ctx, func(tx store.Store) error {
		if err := tx.CreateJob(ctx, job); err != nil {
			return err
		}
		if tags := req.Tags().Or(nil); len(tags) > 0 {
			return tx.TagResource(ctx, job.Arn().Or(""), tags)
		}
		return nil
	})
	if err != nil {
		return types.CreateJobResult{}, fmt.Errorf("create job: %w", err)
	}

	s.publishJob(ctx, job, now)
	return types.NewCreateJobResultBuilder().WithJob(job).Build(), nil
}

// GetJob returns the job with the given id.
func (s *JobServer) GetJob(ctx context.Context, id string) (types.GetJobResult, error) {
	if id == "" {
		return types.GetJobResult{}, inputError("id is required")
	}
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return types.GetJobResult{}, err
	}
	return types.NewGetJobResultBuilder().WithJob(job).Build(), nil
}

// ListJobs returns one page of jobs, newest first unless req asks for
// ASCENDING. NextToken is set when another page follows.
func (s *JobServer) ListJobs(ctx context.Context, req types.ListJobsRequest) (types.ListJobsResult, error) {
	if err := req.Validate(); err != nil {
		return types.ListJobsResult{}, err
	}

	limit := int(req.MaxResults().Or(defaultMaxResults))
	filter := store.JobFilter{
		Status:     req.Status().Or(""),
		Descending: req.Order().Or(types.OrderDescending) == types.OrderDescending,
		Limit:      limit + 1,
	}
	if q, ok := req.Queue().Get(); ok {
		filter.Queue = idgen.QueueARN(s.opts.Region, s.opts.Account, q)
	}
	if tok, ok := req.NextToken().Get(); ok {
		c, err := decodePageToken(tok)
		if err != nil {
			return types.ListJobsResult{}, err
		}
		filter.After = &c
	}

	jobs, err := s.store.ListJobs(ctx, filter)
	if err != nil {
		return types.ListJobsResult{}, fmt.Errorf("list jobs: %w", err)
	}

	b := types.NewListJobsResultBuilder()
	if len(jobs) > limit {
		jobs = jobs[:limit]
		last := jobs[limit-1]
		b.WithNextToken(encodePageToken(store.Cursor{
			CreatedAt: last.CreatedAt().Or(time.Time{}),
			ID:        last.Id().Or(""),
		}))
	}
	return b.WithJobs(jobs...).Build(), nil
}

// CancelJob moves a SUBMITTED or PROGRESSING job to CANCELED.
func (s *JobServer) CancelJob(ctx context.Context, id string) (types.CancelJobResult, error) {
	if id == "" {
		return types.CancelJobResult{}, inputError("id is required")
	}

	now := s.now()
	var canceled types.Job
	err := s.store.RunInTransaction(ctx, func(tx store.Store) error {
		job, err := tx.GetJob(ctx, id)
		if err != nil {
			return err
		}
		switch status := job.Status().Or(""); status {
		case types.JobStatusSubmitted, types.JobStatusProgressing:
		default:
			return conflictError(fmt.Sprintf("job %s is %s and cannot be canceled", id, status))
		}
		timing := job.Timing().Or(types.Timing{}).ToBuilder().WithFinishTime(now).Build()
		canceled = job.ToBuilder().
			WithStatus(types.JobStatusCanceled).
			WithTiming(timing).
			Build()
		return tx.UpdateJob(ctx, canceled)
	})
	if err != nil {
		return types.CancelJobResult{}, err
	}

	s.publishJob(ctx, canceled, now)
	return types.NewCancelJobResultBuilder().Build(), nil
}

// TagResource adds tags to the resource named by req's ARN, replacing the
// values of keys it already carries.
func (s *JobServer) TagResource(ctx context.Context, req types.TagResourceRequest) (types.TagResourceResult, error) {
	if err := req.Validate(); err != nil {
		return types.TagResourceResult{}, err
	}
	if err := s.store.TagResource(ctx, req.Arn().Or(""), req.Tags().Or(nil)); err != nil {
		return types.TagResourceResult{}, fmt.Errorf("tag resource: %w", err)
	}
	return types.NewTagResourceResultBuilder().Build(), nil
}

// UntagResource removes tag keys from a resource. Keys it does not carry are
// ignored.
func (s *JobServer) UntagResource(ctx context.Context, req types.UntagResourceRequest) (types.UntagResourceResult, error) {
	if err := req.Validate(); err != nil {
		return types.UntagResourceResult{}, err
	}
	if err := s.store.UntagResource(ctx, req.Arn().Or(""), req.TagKeys().Or(nil)); err != nil {
		return types.UntagResourceResult{}, fmt.Errorf("untag resource: %w", err)
	}
	return types.NewUntagResourceResultBuilder().Build(), nil
}

// ListTagsForResource returns the tags on the resource named by arn.
func (s *JobServer) ListTagsForResource(ctx context.Context, arn string) (types.ListTagsForResourceResult, error) {
	if arn == "" {
		return types.ListTagsForResourceResult{}, inputError("arn is required")
	}
	tags, err := s.store.ListTags(ctx, arn)
	if err != nil {
		return types.ListTagsForResourceResult{}, fmt.Errorf("list tags: %w", err)
	}
	return types.NewListTagsForResourceResultBuilder().
		WithResourceTags(types.NewResourceTagsBuilder().WithArn(arn).WithTags(tags).Build()).
		Build(), nil
}
