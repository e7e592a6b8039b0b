// Command shapegen renders package types from the JSON service model.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/codegen"
)

const generatedHeader = "// Code generated by shapegen from "

var (
	modelPath string
	outDir    string
	checkOnly bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "shapegen",
	Short:         "Generate MediaConvert record and enum types from the service model",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return run(logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&modelPath, "model", "api/mediaconvert.json", "service model file")
	rootCmd.Flags().StringVar(&outDir, "out", "types", "output package directory")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "fail if the output directory is out of date instead of writing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each file written")
}

func run(logger *slog.Logger) error {
	m, err := codegen.Load(modelPath)
	if err != nil {
		return err
	}
	files, err := codegen.Generate(m, codegen.Options{Source: filepath.Base(modelPath)})
	if err != nil {
		return err
	}

	stale, err := staleFiles(outDir, files)
	if err != nil {
		return err
	}
	changed, err := changedFiles(outDir, files)
	if err != nil {
		return err
	}

	if checkOnly {
		if len(changed)+len(stale) == 0 {
			logger.Info("generated files up to date", "dir", outDir, "files", len(files))
			return nil
		}
		return fmt.Errorf("%s is out of date: %s", outDir, strings.Join(append(changed, stale...), ", "))
	}

	for _, name := range changed {
		if err := os.WriteFile(filepath.Join(outDir, name), files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		logger.Info("wrote", "file", name)
	}
	for _, name := range stale {
		if err := os.Remove(filepath.Join(outDir, name)); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
		logger.Info("removed stale file", "file", name)
	}
	logger.Info("generation complete", "shapes", len(m.Shapes), "enums", len(m.Enums), "written", len(changed), "removed", len(stale))
	return nil
}

// changedFiles lists generated files whose content differs from disk.
func changedFiles(dir string, files map[string][]byte) ([]string, error) {
	var out []string
	for name, src := range files {
		cur, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if !bytes.Equal(cur, src) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}

// staleFiles lists generated files on disk that the model no longer produces.
// Hand-written files never carry the generated header.
func staleFiles(dir string, files map[string][]byte) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if _, ok := files[name]; ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if bytes.HasPrefix(data, []byte(generatedHeader)) {
			out = append(out, name)
		}
	}
	return out, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shapegen:", err)
		os.Exit(1)
	}
}
