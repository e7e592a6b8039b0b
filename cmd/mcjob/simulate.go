package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/server"
	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
)

var (
	simulateRegion  string
	simulateAccount string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <spec>",
	Short: "Show the CreateJob response the service would return for a spec",
	Long: `Validate a CreateJob spec and, if it passes, print the CreateJobResult
the service would return: a SUBMITTED job with a fresh id and ARN.
The job is recorded in a throwaway in-memory ledger and announced on
MCJOB_NATS_URL when it is set. Nothing is sent to AWS.`,
	GroupID: "spec",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pub, err := newPublisher()
		if err != nil {
			return err
		}
		defer pub.Close()

		region := simulateRegion
		if region == "" {
			region = cfg.S3Region
		}
		js := server.NewJobServer(memory.New(), pub, server.Options{
			Region:      region,
			Account:     simulateAccount,
			TokenPrefix: cfg.TokenPrefix,
		})
		res, err := js.CreateJob(cmd.Context(), req)
		if err != nil {
			return err
		}
		job, _ := res.Job().Get()
		logger.Info("job simulated", "id", job.Id().Or(""), "hash", res.HashCode())

		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, res)
		}
		fmt.Fprintf(w, "CreateJobResult %s\n", res)
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateRegion, "region", "", "region for the job ARN (default MCJOB_S3_REGION)")
	simulateCmd.Flags().StringVar(&simulateAccount, "account", "111122223333", "account id for the job ARN")
}
