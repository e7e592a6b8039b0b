package ui

import (
	"testing"

	"github.com/alfredjeanlab/mediaconvert/types"
)

func withColor(t *testing.T, on bool) {
	t.Helper()
	prev := colorOn
	colorOn = on
	t.Cleanup(func() { colorOn = prev })
}

func TestPaint(t *testing.T) {
	withColor(t, true)
	for name, tc := range map[string]struct {
		fn   func(string) string
		want string
	}{
		"accent":  {RenderAccent, "\x1b[38;5;74mx\x1b[0m"},
		"muted":   {RenderMuted, "\x1b[38;5;245mx\x1b[0m"},
		"command": {RenderCommand, "\x1b[38;5;250mx\x1b[0m"},
		"pass":    {RenderPass, "\x1b[38;5;114mx\x1b[0m"},
		"fail":    {RenderFail, "\x1b[38;5;203mx\x1b[0m"},
	} {
		if got := tc.fn("x"); got != tc.want {
			t.Errorf("%s: got %q, want %q", name, got, tc.want)
		}
	}

	withColor(t, false)
	if got := RenderAccent("plain"); got != "plain" {
		t.Errorf("colorless accent = %q", got)
	}
}

func TestRenderStatus(t *testing.T) {
	withColor(t, true)
	if got := RenderStatus(types.JobStatusComplete); got != RenderPass("COMPLETE") {
		t.Errorf("COMPLETE = %q", got)
	}
	for _, s := range []types.JobStatus{types.JobStatusError, types.JobStatusCanceled} {
		if got := RenderStatus(s); got != RenderFail(string(s)) {
			t.Errorf("%s = %q", s, got)
		}
	}
	if got := RenderStatus(types.JobStatusProgressing); got != "PROGRESSING" {
		t.Errorf("PROGRESSING = %q", got)
	}
}

func TestColorFromEnv(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  map[string]string
		tty  bool
		want bool
	}{
		{"tty", nil, true, true},
		{"pipe", nil, false, false},
		{"no color wins over force", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, true, false},
		{"forced into a pipe", map[string]string{"CLICOLOR_FORCE": " 1 "}, false, true},
		{"clicolor off", map[string]string{"CLICOLOR": "0"}, true, false},
		{"clicolor on defers to tty", map[string]string{"CLICOLOR": "1"}, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			getenv := func(k string) string { return tc.env[k] }
			if got := colorFromEnv(getenv, func() bool { return tc.tty }); got != tc.want {
				t.Errorf("colorFromEnv = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShouldUseColor_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor() {
		t.Error("NO_COLOR should disable color")
	}
}
