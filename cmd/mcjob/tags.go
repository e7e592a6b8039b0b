package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/types"
)

var tagsCmd = &cobra.Command{
	Use:     "tags",
	Short:   "Manage tags on ledger resources",
	GroupID: "ledger",
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <arn> <key=value>...",
	Short: "Add or replace tags on a resource",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := parseTagPairs(args[1:])
		if err != nil {
			return err
		}
		req := types.NewTagResourceRequestBuilder().WithArn(args[0]).WithTags(tags).Build()

		c := newJobsClient()
		defer c.Close()
		if _, err := c.TagResource(cmd.Context(), req); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s\n", args[0])
		return nil
	},
}

var tagsRemoveCmd = &cobra.Command{
	Use:   "remove <arn> <key>...",
	Short: "Remove tag keys from a resource",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := types.NewUntagResourceRequestBuilder().WithArn(args[0]).WithTagKeys(args[1:]...).Build()

		c := newJobsClient()
		defer c.Close()
		if _, err := c.UntagResource(cmd.Context(), req); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Untagged %s\n", args[0])
		return nil
	},
}

var tagsListCmd = &cobra.Command{
	Use:   "list <arn>",
	Short: "Show the tags on a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newJobsClient()
		defer c.Close()
		res, err := c.ListTagsForResource(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, res)
		}
		rt, _ := res.ResourceTags().Get()
		tags := rt.Tags().Or(nil)
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s=%s\n", k, tags[k])
		}
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsAddCmd)
	tagsCmd.AddCommand(tagsRemoveCmd)
	tagsCmd.AddCommand(tagsListCmd)
}

// parseTagPairs turns key=value arguments into a tag map. A repeated key is
// an error.
func parseTagPairs(pairs []string) (map[string]string, error) {
	tags := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid tag %q: want key=value", p)
		}
		if _, dup := tags[k]; dup {
			return nil, fmt.Errorf("tag %q given more than once", k)
		}
		tags[k] = v
	}
	return tags, nil
}
