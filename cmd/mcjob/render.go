package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/idgen"
	"github.com/alfredjeanlab/mediaconvert/internal/specsource"
	"github.com/alfredjeanlab/mediaconvert/types"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:     "render <spec>",
	Short:   "Decode a CreateJob spec and print its record form",
	GroupID: "spec",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		req, err := loadRequest(ctx, args[0])
		if err != nil {
			return err
		}
		req = withClientRequestToken(req, idgen.ClientRequestToken)

		var buf bytes.Buffer
		contentType := "text/plain"
		if jsonOutput {
			contentType = "application/json"
			if err := writeRenderJSON(&buf, req); err != nil {
				return err
			}
		} else {
			writeRenderText(&buf, req)
		}

		if renderOut == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		bucket, key, ok := specsource.ParseS3URL(renderOut)
		if !ok {
			return fmt.Errorf("--out must be an s3://bucket/key URL, got %q", renderOut)
		}
		if err := s3Objects.PutObject(ctx, bucket, key, buf.Bytes(), contentType); err != nil {
			return err
		}
		logger.Info("rendering uploaded", "bucket", bucket, "key", key, "bytes", buf.Len())
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "upload the rendering to s3://bucket/key instead of printing it")
}

// withClientRequestToken sets a fresh idempotency token when req has none.
func withClientRequestToken(req types.CreateJobRequest, token func() string) types.CreateJobRequest {
	if req.ClientRequestToken().IsSet() {
		return req
	}
	return req.ToBuilder().WithClientRequestToken(token()).Build()
}

type renderSummary struct {
	ClientRequestToken string   `json:"clientRequestToken"`
	Hash               int32    `json:"hash"`
	Valid              bool     `json:"valid"`
	Problems           []string `json:"problems,omitempty"`
	Record             string   `json:"record"`

	Document types.CreateJobRequest `json:"document"`
}

func summarize(req types.CreateJobRequest) renderSummary {
	s := renderSummary{
		ClientRequestToken: req.ClientRequestToken().Or(""),
		Hash:               req.HashCode(),
		Valid:              true,
		Record:             req.String(),
		Document:           req,
	}
	if ve := validationErrorOf(req.Validate()); ve != nil {
		s.Valid = false
		for _, fe := range ve.Errors {
			s.Problems = append(s.Problems, fe.Field+": "+fe.Message)
		}
	}
	return s
}

func writeRenderJSON(w io.Writer, req types.CreateJobRequest) error {
	return writeJSON(w, summarize(req))
}

func writeRenderText(w io.Writer, req types.CreateJobRequest) {
	s := summarize(req)
	fmt.Fprintf(w, "CreateJobRequest %s\n", s.Record)
	fmt.Fprintf(w, "Hash:               %d\n", s.Hash)
	fmt.Fprintf(w, "ClientRequestToken: %s\n", s.ClientRequestToken)
	fmt.Fprintf(w, "Valid:              %t\n", s.Valid)
	for _, p := range s.Problems {
		fmt.Fprintf(w, "  %s\n", p)
	}
}
