package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/alfredjeanlab/mediaconvert/types"
)

func baseRequest() *types.CreateJobRequestBuilder {
	return types.NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithSettings(types.NewJobSettingsBuilder().
			WithInputs(types.NewInputBuilder().WithFileInput("s3://in/a.mp4").Build()).
			Build())
}

func TestDiffRequests(t *testing.T) {
	a := baseRequest().WithTags(map[string]string{"env": "prod"}).Build()

	same := diffRequests(a, a.ToBuilder().Build())
	if !same.Equal || len(same.Differs) != 0 || same.HashA != same.HashB {
		t.Errorf("identical requests: got %+v", same)
	}

	b := a.ToBuilder().
		WithPriority(3).
		WithTags(map[string]string{"env": "dev"}).
		Build()
	r := diffRequests(a, b)
	if r.Equal {
		t.Fatal("expected requests to differ")
	}
	if want := []string{"Priority", "Tags"}; !reflect.DeepEqual(r.Differs, want) {
		t.Errorf("Differs = %v, want %v", r.Differs, want)
	}
}

func TestRequestFieldsCoverEveryField(t *testing.T) {
	if got := len(requestFields); got != 13 {
		t.Errorf("len(requestFields) = %d, want 13", got)
	}
	// A difference in any one field must show up in exactly that field.
	a := baseRequest().Build()
	b := a.ToBuilder().WithSimulateReservedQueue(types.SimulateReservedQueueEnabled).Build()
	if r := diffRequests(a, b); !reflect.DeepEqual(r.Differs, []string{"SimulateReservedQueue"}) {
		t.Errorf("Differs = %v", r.Differs)
	}
}

func TestWithClientRequestToken(t *testing.T) {
	token := func() string { return "tok-1" }

	req := withClientRequestToken(baseRequest().Build(), token)
	if got := req.ClientRequestToken().Or(""); got != "tok-1" {
		t.Errorf("token = %q, want tok-1", got)
	}

	kept := withClientRequestToken(baseRequest().WithClientRequestToken("mine").Build(), token)
	if got := kept.ClientRequestToken().Or(""); got != "mine" {
		t.Errorf("token = %q, want the caller's token", got)
	}
}

func TestCheckEnum(t *testing.T) {
	tests := []struct {
		enum, raw  string
		valid      bool
		reason     string
		wantErrSub string
	}{
		{"JobStatus", "COMPLETE", true, "", ""},
		{"JobStatus", "", false, "empty", "JobStatus: value cannot be empty"},
		{"JobStatus", "complete", false, "no-member", `cannot create enum from "complete"`},
	}
	for _, tt := range tests {
		c, err := checkEnum(tt.enum, tt.raw)
		if err != nil {
			t.Fatalf("checkEnum(%q, %q): %v", tt.enum, tt.raw, err)
		}
		if c.Valid != tt.valid || c.Reason != tt.reason {
			t.Errorf("checkEnum(%q, %q) = %+v, want valid=%t reason=%q", tt.enum, tt.raw, c, tt.valid, tt.reason)
		}
		if !strings.Contains(c.Error, tt.wantErrSub) {
			t.Errorf("checkEnum(%q, %q).Error = %q, want it to contain %q", tt.enum, tt.raw, c.Error, tt.wantErrSub)
		}
	}

	if _, err := checkEnum("Nope", "X"); err == nil {
		t.Error("expected an error for an unknown enumeration")
	}
}

func TestWriteValidationTable(t *testing.T) {
	var buf bytes.Buffer
	writeValidationTable(&buf, &types.ValidationError{Errors: []types.FieldError{
		{Field: "role", Message: "is required"},
		{Field: "settings.inputs[0].fileInput", Message: "must match ^s3://"},
	}})
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "FIELD") || !strings.Contains(lines[0], "PROBLEM") {
		t.Errorf("header = %q", lines[0])
	}
	// Columns are aligned on the longest field path.
	col := strings.Index(lines[0], "PROBLEM")
	if strings.Index(lines[1], "is required") != col {
		t.Errorf("misaligned row %q (PROBLEM column at %d)", lines[1], col)
	}
	if !strings.Contains(lines[3], "2 problem(s)") {
		t.Errorf("summary = %q", lines[3])
	}

	buf.Reset()
	writeValidationTable(&buf, nil)
	if !strings.Contains(buf.String(), "valid") {
		t.Errorf("valid output = %q", buf.String())
	}
}

func TestValidationErrorOf(t *testing.T) {
	if validationErrorOf(nil) != nil {
		t.Error("nil error should give nil")
	}
	if validationErrorOf(&types.ValidationError{}) != nil {
		t.Error("empty ValidationError should give nil")
	}
	ve := validationErrorOf(baseRequest().WithPriority(60).Build().Validate())
	if ve == nil || len(ve.Errors) != 1 || ve.Errors[0].Field != "priority" {
		t.Errorf("got %+v", ve)
	}
}
