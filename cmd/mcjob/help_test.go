package main

import (
	"strings"
	"testing"
)

func TestColorizeHelpOutput(t *testing.T) {
	in := `Usage:
  mcjob <command>

Job specs:
  validate    Check a CreateJob spec against the model's constraints

Flags:
      --account string   account id for the job ARN (default "111122223333")
`
	out := colorizeHelpOutput(in)

	for _, want := range []string{
		"\x1b[38;5;74mJob specs:\x1b[0m",
		"\x1b[38;5;74mFlags:\x1b[0m",
		"  \x1b[38;5;250mvalidate\x1b[0m  ",
		"--account \x1b[38;5;245mstring\x1b[0m",
		"\x1b[38;5;245m(default \"111122223333\")\x1b[0m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("colorized help missing %q:\n%q", want, out)
		}
	}
}

func TestColorizeHelpOutput_LeavesUsageAlone(t *testing.T) {
	in := "Usage:\n  mcjob jobs list [flags]\n\nExamples:\n  mcjob jobs list  --status COMPLETE\n"
	out := colorizeHelpOutput(in)
	if strings.Contains(out, "\x1b[38;5;250m") {
		t.Errorf("usage and example lines should not be colored as commands:\n%q", out)
	}
	if !strings.HasSuffix(out, "--status COMPLETE\n") {
		t.Errorf("trailing newline lost:\n%q", out)
	}
}

func TestColorCommandName(t *testing.T) {
	for in, want := range map[string]string{
		"  serve       Run a ledger": "  \x1b[38;5;250mserve\x1b[0m       Run a ledger",
		"  mcjob <command>":          "  mcjob <command>",
		"no indent  here":            "no indent  here",
	} {
		if got := colorCommandName(in); got != want {
			t.Errorf("colorCommandName(%q) = %q, want %q", in, got, want)
		}
	}
}
