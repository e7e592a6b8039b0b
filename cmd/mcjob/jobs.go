package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/client"
	"github.com/alfredjeanlab/mediaconvert/internal/idgen"
	"github.com/alfredjeanlab/mediaconvert/internal/ui"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// newJobsClient returns a client for the ledger at MCJOB_SERVER_URL.
func newJobsClient() client.JobsClient {
	return client.NewHTTPClient(cfg.ServerURL, cfg.ServerToken)
}

var jobsCmd = &cobra.Command{
	Use:     "jobs",
	Short:   "Submit and inspect jobs on a ledger started with mcjob serve",
	GroupID: "ledger",
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create <spec>",
	Short: "Submit a CreateJob spec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		req, err := loadRequest(ctx, args[0])
		if err != nil {
			return err
		}
		req = withClientRequestToken(req, idgen.ClientRequestToken)

		c := newJobsClient()
		defer c.Close()
		res, err := c.CreateJob(ctx, req)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, res)
		}
		job, _ := res.Job().Get()
		fmt.Fprintf(w, "Submitted %s\n", job.Id().Or(""))
		return nil
	},
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newJobsClient()
		defer c.Close()
		res, err := c.GetJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, res)
		}
		job, _ := res.Job().Get()
		writeJobDetail(w, job)
		return nil
	},
}

var (
	listStatus     string
	listQueue      string
	listOrder      string
	listMaxResults int32
	listNextToken  string
)

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := types.NewListJobsRequestBuilder()
		if listStatus != "" {
			s, err := types.ParseJobStatus(listStatus)
			if err != nil {
				return err
			}
			b.WithStatus(s)
		}
		if listOrder != "" {
			o, err := types.ParseOrder(listOrder)
			if err != nil {
				return err
			}
			b.WithOrder(o)
		}
		if listQueue != "" {
			b.WithQueue(listQueue)
		}
		if listMaxResults != 0 {
			b.WithMaxResults(listMaxResults)
		}
		if listNextToken != "" {
			b.WithNextToken(listNextToken)
		}

		c := newJobsClient()
		defer c.Close()
		res, err := c.ListJobs(cmd.Context(), b.Build())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, res)
		}
		writeJobTable(w, res.Jobs().Or(nil))
		if tok, ok := res.NextToken().Get(); ok {
			fmt.Fprintf(w, "\n%s --next-token %s\n", ui.RenderMuted("more:"), tok)
		}
		return nil
	},
}

var jobsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a SUBMITTED or PROGRESSING job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newJobsClient()
		defer c.Close()
		if _, err := c.CancelJob(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Canceled %s\n", args[0])
		return nil
	},
}

func init() {
	jobsListCmd.Flags().StringVar(&listStatus, "status", "", "only jobs with this status")
	jobsListCmd.Flags().StringVar(&listQueue, "queue", "", "only jobs in this queue (name or ARN)")
	jobsListCmd.Flags().StringVar(&listOrder, "order", "", "ASCENDING or DESCENDING (default DESCENDING)")
	jobsListCmd.Flags().Int32Var(&listMaxResults, "max-results", 0, "page size, 1 to 20")
	jobsListCmd.Flags().StringVar(&listNextToken, "next-token", "", "resume a previous listing")

	jobsCmd.AddCommand(jobsCreateCmd)
	jobsCmd.AddCommand(jobsGetCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsCancelCmd)
}

func writeJobTable(w io.Writer, jobs []types.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, ui.RenderMuted("no jobs"))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCREATED\tQUEUE")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			j.Id().Or(""),
			j.Status().Or(""),
			j.CreatedAt().Or(time.Time{}).UTC().Format(time.RFC3339),
			j.Queue().Or(""))
	}
	tw.Flush()
}

func writeJobDetail(w io.Writer, job types.Job) {
	fmt.Fprintf(w, "%s %s\n", ui.RenderAccent(job.Id().Or("")), ui.RenderStatus(job.Status().Or("")))
	fmt.Fprintf(w, "ARN:      %s\n", job.Arn().Or(""))
	fmt.Fprintf(w, "Queue:    %s\n", job.Queue().Or(""))
	fmt.Fprintf(w, "Priority: %d\n", job.Priority().Or(0))
	fmt.Fprintf(w, "Created:  %s\n", job.CreatedAt().Or(time.Time{}).UTC().Format(time.RFC3339))
	if t, ok := job.Timing().Get(); ok {
		if ft, ok := t.FinishTime().Get(); ok {
			fmt.Fprintf(w, "Finished: %s\n", ft.UTC().Format(time.RFC3339))
		}
	}
	if role, ok := job.Role().Get(); ok {
		fmt.Fprintf(w, "Role:     %s\n", role)
	}
}
