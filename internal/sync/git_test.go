package sync

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// newClone creates a bare origin with one commit on main and returns a
// clone of it.
func newClone(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
	origin := t.TempDir()
	gitRun(t, origin, "init", "--bare")

	repo := filepath.Join(t.TempDir(), "ledger")
	gitRun(t, filepath.Dir(repo), "clone", origin, "ledger")
	gitRun(t, repo, "config", "user.email", "ledger@example.com")
	gitRun(t, repo, "config", "user.name", "Ledger")
	gitRun(t, repo, "symbolic-ref", "HEAD", "refs/heads/main")
	if err := os.WriteFile(filepath.Join(repo, "README"), []byte("exports\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	gitRun(t, repo, "add", "README")
	gitRun(t, repo, "commit", "-m", "init")
	gitRun(t, repo, "push", "origin", "main")
	return repo
}

func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func commitCount(t *testing.T, repo string) string {
	return gitRun(t, repo, "rev-list", "--count", "origin/main")
}

func TestGitDestination_CommitsChanges(t *testing.T) {
	repo := newClone(t)
	dest := NewGitDestination(repo, "jobs.jsonl", "main")
	ctx := context.Background()

	v1 := []byte(`{"version":"1","type":"header","job_count":0}` + "\n")
	if err := dest.Write(ctx, v1); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if got := commitCount(t, repo); got != "2" {
		t.Fatalf("origin has %s commits, want 2", got)
	}
	if msg := gitRun(t, repo, "log", "-1", "--format=%s", "origin/main"); msg != gitCommitMessage {
		t.Errorf("commit message = %q", msg)
	}

	// Identical content pushes nothing.
	if err := dest.Write(ctx, v1); err != nil {
		t.Fatalf("repeat write: %v", err)
	}
	if got := commitCount(t, repo); got != "2" {
		t.Fatalf("unchanged export made a commit (%s total)", got)
	}

	v2 := []byte(`{"version":"1","type":"header","job_count":1}` + "\n")
	if err := dest.Write(ctx, v2); err != nil {
		t.Fatalf("changed write: %v", err)
	}
	if got := commitCount(t, repo); got != "3" {
		t.Fatalf("origin has %s commits, want 3", got)
	}
	if got := gitRun(t, repo, "show", "origin/main:jobs.jsonl"); got+"\n" != string(v2) {
		t.Errorf("pushed content = %q", got)
	}
}

func TestGitDestination_NestedFile(t *testing.T) {
	repo := newClone(t)
	dest := NewGitDestination(repo, "exports/2024/jobs.jsonl", "main")
	if err := dest.Write(context.Background(), []byte(`{"type":"header"}`+"\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := gitRun(t, repo, "show", "origin/main:exports/2024/jobs.jsonl"); got != `{"type":"header"}` {
		t.Errorf("pushed content = %q", got)
	}
}

func TestGitDestination_MissingBranch(t *testing.T) {
	repo := newClone(t)
	dest := NewGitDestination(repo, "jobs.jsonl", "exports")
	err := dest.Write(context.Background(), []byte("{}\n"))
	if err == nil || !strings.Contains(err.Error(), "git checkout") {
		t.Fatalf("err = %v, want a checkout failure", err)
	}
	if got := dest.String(); got != "git:"+repo+"/jobs.jsonl@exports" {
		t.Errorf("String() = %q", got)
	}
}
