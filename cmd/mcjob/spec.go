package main

import (
	"context"
	"fmt"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// loadRequest reads a CreateJob spec, decodes it, and fills absent fields
// from the defaults file unless --no-defaults is set.
func loadRequest(ctx context.Context, ref string) (types.CreateJobRequest, error) {
	doc, err := loader.Load(ctx, ref)
	if err != nil {
		return types.CreateJobRequest{}, err
	}
	req, err := types.DecodeCreateJobRequest(doc)
	if err != nil {
		return types.CreateJobRequest{}, fmt.Errorf("%s: %w", ref, err)
	}
	if !noDefaults {
		if req, err = cfg.Defaults.Apply(req); err != nil {
			return types.CreateJobRequest{}, fmt.Errorf("apply defaults: %w", err)
		}
	}
	logger.Debug("spec loaded", "ref", ref, "hash", req.HashCode())
	return req, nil
}
