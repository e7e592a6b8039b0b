package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStaleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "job.go", generatedHeader+"m.json. DO NOT EDIT.\n")
	writeFile(t, dir, "old_shape.go", generatedHeader+"m.json. DO NOT EDIT.\n")
	writeFile(t, dir, "enum.go", "package types\n")
	writeFile(t, dir, "record_test.go", generatedHeader+"\n")
	if err := os.Mkdir(filepath.Join(dir, "sub.go"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := staleFiles(dir, map[string][]byte{"job.go": nil})
	if err != nil {
		t.Fatalf("staleFiles: %v", err)
	}
	if want := []string{"old_shape.go"}; !reflect.DeepEqual(got, want) {
		t.Errorf("staleFiles = %v, want %v", got, want)
	}
}

func TestChangedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "same.go", "a")
	writeFile(t, dir, "differs.go", "a")

	got, err := changedFiles(dir, map[string][]byte{
		"same.go":    []byte("a"),
		"differs.go": []byte("b"),
		"new.go":     []byte("c"),
	})
	if err != nil {
		t.Fatalf("changedFiles: %v", err)
	}
	if want := []string{"differs.go", "new.go"}; !reflect.DeepEqual(got, want) {
		t.Errorf("changedFiles = %v, want %v", got, want)
	}
}

func TestStaleFilesMissingDir(t *testing.T) {
	if _, err := staleFiles(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFlags(t *testing.T) {
	t.Cleanup(func() {
		modelPath, outDir, checkOnly = "api/mediaconvert.json", "types", false
	})
	if err := rootCmd.ParseFlags([]string{"--model", "m.json", "--out", "gen", "--check"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if modelPath != "m.json" || outDir != "gen" || !checkOnly {
		t.Errorf("model, out, check = %q, %q, %v", modelPath, outDir, checkOnly)
	}
	if err := rootCmd.ParseFlags([]string{"-model", "m.json"}); err == nil {
		t.Error("single-dash long flag should not parse")
	}
}
