package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/ui"
)

var (
	// "--out string" or "-n, --count int"
	reFlagType = regexp.MustCompile(`^(\s+(?:-\w, )?--?[\w-]+ )(\w+)`)
	reDefault  = regexp.MustCompile(`\(default [^)]*\)`)
)

// colorizedHelpFunc prints cobra's usage text, colored when stdout takes
// color.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		if !ui.ShouldUseColor() {
			_ = cmd.Usage()
			return
		}
		out := cmd.OutOrStdout()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		_ = cmd.Usage()
		cmd.SetOut(out)
		fmt.Fprint(out, colorizeHelpOutput(buf.String()))
	}
}

// colorizeHelpOutput styles cobra's plain help one line at a time. Section
// headers get the accent color. Lines under a command section get their
// command name highlighted, and lines under a flags section get their type
// and default muted.
func colorizeHelpOutput(s string) string {
	var b strings.Builder
	section := ""
	for _, line := range strings.SplitAfter(s, "\n") {
		body := strings.TrimRight(line, "\n")
		switch {
		case body == "":
		case !strings.HasPrefix(body, " ") && strings.HasSuffix(body, ":"):
			section = body
			body = ui.RenderAccent(body)
		case strings.HasSuffix(section, "Flags:"):
			body = reFlagType.ReplaceAllStringFunc(body, func(m string) string {
				parts := reFlagType.FindStringSubmatch(m)
				return parts[1] + ui.RenderMuted(parts[2])
			})
			body = reDefault.ReplaceAllStringFunc(body, ui.RenderMuted)
		case section != "Usage:" && section != "Examples:" && section != "Aliases:":
			body = colorCommandName(body)
		}
		b.WriteString(body)
		if strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// colorCommandName highlights the name in a "  name    description" row.
func colorCommandName(line string) string {
	rest, ok := strings.CutPrefix(line, "  ")
	if !ok {
		return line
	}
	name, desc, ok := strings.Cut(rest, "  ")
	if !ok || name == "" || strings.Contains(name, " ") {
		return line
	}
	return "  " + ui.RenderCommand(name) + "  " + desc
}
