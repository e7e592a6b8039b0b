package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/shape"
	"github.com/alfredjeanlab/mediaconvert/internal/ui"
	"github.com/alfredjeanlab/mediaconvert/opt"
	"github.com/alfredjeanlab/mediaconvert/types"
)

var diffCmd = &cobra.Command{
	Use:     "diff <spec-a> <spec-b>",
	Short:   "Compare two CreateJob specs field by field",
	GroupID: "spec",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadRequest(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		b, err := loadRequest(cmd.Context(), args[1])
		if err != nil {
			return err
		}
		r := diffRequests(a, b)
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), r)
		}
		writeDiffText(cmd.OutOrStdout(), r, a, b)
		return nil
	},
}

type requestField struct {
	name  string
	equal func(a, b types.CreateJobRequest) bool
	show  func(types.CreateJobRequest) string
}

func fieldOf[T any](name string, get func(types.CreateJobRequest) opt.Optional[T], eq func(T, T) bool) requestField {
	return requestField{
		name:  name,
		equal: func(a, b types.CreateJobRequest) bool { return shape.EqualFunc(get(a), get(b), eq) },
		show:  func(x types.CreateJobRequest) string { return get(x).String() },
	}
}

var requestFields = []requestField{
	fieldOf("AccelerationSettings", types.CreateJobRequest.AccelerationSettings, types.AccelerationSettings.Equal),
	fieldOf("BillingTagsSource", types.CreateJobRequest.BillingTagsSource, shape.Eq[types.BillingTagsSource]),
	fieldOf("ClientRequestToken", types.CreateJobRequest.ClientRequestToken, shape.Eq[string]),
	fieldOf("HopDestinations", types.CreateJobRequest.HopDestinations, shape.ListEqual(types.HopDestination.Equal)),
	fieldOf("JobTemplate", types.CreateJobRequest.JobTemplate, shape.Eq[string]),
	fieldOf("Priority", types.CreateJobRequest.Priority, shape.Eq[int32]),
	fieldOf("Queue", types.CreateJobRequest.Queue, shape.Eq[string]),
	fieldOf("Role", types.CreateJobRequest.Role, shape.Eq[string]),
	fieldOf("Settings", types.CreateJobRequest.Settings, types.JobSettings.Equal),
	fieldOf("SimulateReservedQueue", types.CreateJobRequest.SimulateReservedQueue, shape.Eq[types.SimulateReservedQueue]),
	fieldOf("StatusUpdateInterval", types.CreateJobRequest.StatusUpdateInterval, shape.Eq[types.StatusUpdateInterval]),
	fieldOf("Tags", types.CreateJobRequest.Tags, shape.MapEqual(shape.Eq[string])),
	fieldOf("UserMetadata", types.CreateJobRequest.UserMetadata, shape.MapEqual(shape.Eq[string])),
}

type diffResult struct {
	Equal   bool     `json:"equal"`
	HashA   int32    `json:"hashA"`
	HashB   int32    `json:"hashB"`
	Differs []string `json:"differs"`
}

func diffRequests(a, b types.CreateJobRequest) diffResult {
	r := diffResult{
		Equal:   a.Equal(b),
		HashA:   a.HashCode(),
		HashB:   b.HashCode(),
		Differs: []string{},
	}
	for _, f := range requestFields {
		if !f.equal(a, b) {
			r.Differs = append(r.Differs, f.name)
		}
	}
	return r
}

func writeDiffText(w io.Writer, r diffResult, a, b types.CreateJobRequest) {
	if r.Equal {
		fmt.Fprintf(w, "%s equal (hash %d)\n", ui.RenderPass("✓"), r.HashA)
		return
	}
	fmt.Fprintf(w, "%s %d field(s) differ (hash %d vs %d)\n", ui.RenderFail("✗"), len(r.Differs), r.HashA, r.HashB)
	for _, name := range r.Differs {
		for _, f := range requestFields {
			if f.name != name {
				continue
			}
			fmt.Fprintf(w, "\n%s\n", ui.RenderAccent(name))
			fmt.Fprintf(w, "  - %s\n", f.show(a))
			fmt.Fprintf(w, "  + %s\n", f.show(b))
		}
	}
}
