// Package ui colors mcjob's terminal output.
package ui

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// 256-color codes from the Ayu palette.
const (
	accent  = 74
	command = 250
	muted   = 245
	pass    = 114
	fail    = 203
)

var colorOn = true

func paint(code int, s string) string {
	if !colorOn {
		return s
	}
	return "\x1b[38;5;" + strconv.Itoa(code) + "m" + s + "\x1b[0m"
}

func RenderAccent(s string) string  { return paint(accent, s) }
func RenderMuted(s string) string   { return paint(muted, s) }
func RenderCommand(s string) string { return paint(command, s) }
func RenderPass(s string) string    { return paint(pass, s) }
func RenderFail(s string) string    { return paint(fail, s) }

// RenderStatus colors a job status by outcome. In-flight statuses stay plain.
func RenderStatus(s types.JobStatus) string {
	switch s {
	case types.JobStatusComplete:
		return RenderPass(string(s))
	case types.JobStatusError, types.JobStatusCanceled:
		return RenderFail(string(s))
	}
	return string(s)
}

// ShouldUseColor reports whether stdout gets ANSI colors. NO_COLOR,
// CLICOLOR_FORCE and CLICOLOR are consulted before TTY detection.
func ShouldUseColor() bool {
	return colorFromEnv(os.Getenv, func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}

func colorFromEnv(getenv func(string) string, isTTY func() bool) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	if strings.TrimSpace(getenv("CLICOLOR")) == "0" {
		return false
	}
	return isTTY()
}

// Configure sets process-wide coloring from ShouldUseColor.
func Configure() {
	colorOn = ShouldUseColor()
}
