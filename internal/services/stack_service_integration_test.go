package services

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/stackmate/internal/git"
	"github.com/thomas-vilte/stackmate/internal/models"
)

var originalDir string

func init() {
	var err error
	originalDir, err = os.Getwd()
	if err != nil {
		panic("failed to get original directory: " + err.Error())
	}
}

func runGit(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), output)
	return strings.TrimSpace(string(output))
}

// setupWorkflowRepo creates a working repository on "main" with a bare
// origin that already has the initial commit, and chdirs into it.
func setupWorkflowRepo(t *testing.T) (workDir, bareDir string) {
	t.Helper()

	bareDir, err := os.MkdirTemp("", "stackmate-origin")
	require.NoError(t, err)
	workDir, err = os.MkdirTemp("", "stackmate-work")
	require.NoError(t, err)

	require.NoError(t, os.Chdir(workDir))

	runGit(t, "init")
	runGit(t, "config", "user.email", "test@example.com")
	runGit(t, "config", "user.name", "Test User")
	runGit(t, "checkout", "-b", "main")

	cmd := exec.Command("git", "init", "--bare", bareDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git init --bare: %s", output)

	commitWorkFile(t, "README.md", "initial\n", "Initial commit")
	runGit(t, "remote", "add", "origin", bareDir)
	runGit(t, "push", "-u", "origin", "main")

	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
		_ = os.RemoveAll(workDir)
		_ = os.RemoveAll(bareDir)
	})

	return workDir, bareDir
}

func commitWorkFile(t *testing.T, path, content, message string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	runGit(t, "add", "--", path)
	runGit(t, "commit", "-m", message)
	return runGit(t, "rev-parse", "HEAD")
}

func subjectsBetween(t *testing.T, rangeSpec string) []string {
	t.Helper()
	out := runGit(t, "log", "--format=%s", rangeSpec)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestWorkflow_NewThenUpdate(t *testing.T) {
	_, bareDir := setupWorkflowRepo(t)

	mockVCS := &MockVCSClient{}
	service := NewStackService(git.NewGitService(), mockVCS, testConfig())
	ctx := context.Background()

	commitWorkFile(t, "parser.go", "package parser\n", "Add widget parser")

	mockVCS.On("CreatePR", mock.Anything, mock.MatchedBy(func(spec models.PRSpec) bool {
		return spec.Title == "Add widget parser" && spec.Head == "pr/add-widget-parser" && spec.Base == "main"
	})).Return(models.StackedPR{Number: 1, Branch: "pr/add-widget-parser"}, nil)

	pr, err := service.CreateStackedPR(ctx, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "pr/add-widget-parser", pr.Branch)

	// Back on main, and the branch carries exactly the one commit on
	// top of the remote main line.
	assert.Equal(t, "main", runGit(t, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t, []string{"Add widget parser"},
		subjectsBetween(t, "origin/main..pr/add-widget-parser"))

	// Pushed: the bare origin has the same tip as the local branch.
	localTip := runGit(t, "rev-parse", "pr/add-widget-parser")
	remoteTip := runGit(t, "--git-dir", bareDir, "rev-parse", "refs/heads/pr/add-widget-parser")
	assert.Equal(t, localTip, remoteTip)

	// A review fix lands as a new commit on main, then gets folded
	// into the target.
	commitWorkFile(t, "parser.go", "package parser\n\n// fix one\n", "Handle empty input")
	targetSHA := runGit(t, "log", "-1", "--format=%H", "--grep=Add widget parser", "main")

	update, err := service.UpdateStackedPR(ctx, targetSHA)
	require.NoError(t, err)
	assert.Equal(t, "pr/add-widget-parser", update.Branch)
	assert.Equal(t, "Handle empty input", update.Tip.Subject)

	// The branch now has target plus the transplanted fix.
	assert.Equal(t, []string{"Handle empty input", "Add widget parser"},
		subjectsBetween(t, "origin/main..pr/add-widget-parser"))
	assert.Equal(t, runGit(t, "rev-parse", "pr/add-widget-parser"),
		runGit(t, "--git-dir", bareDir, "rev-parse", "refs/heads/pr/add-widget-parser"))

	// On main the fix was squashed into the target: one commit with
	// the original subject, no fixup left behind, fix content kept.
	assert.Equal(t, "main", runGit(t, "rev-parse", "--abbrev-ref", "HEAD"))
	mainSubjects := subjectsBetween(t, "main")
	assert.Equal(t, []string{"Add widget parser", "Initial commit"}, mainSubjects)
	content, err := os.ReadFile("parser.go")
	require.NoError(t, err)
	assert.Equal(t, "package parser\n\n// fix one\n", string(content))

	// A second round of review fixes behaves the same way.
	commitWorkFile(t, "parser.go", "package parser\n\n// fix one\n// fix two\n", "Handle unicode input")
	targetSHA = runGit(t, "log", "-1", "--format=%H", "--grep=Add widget parser", "main")

	_, err = service.UpdateStackedPR(ctx, targetSHA)
	require.NoError(t, err)

	assert.Equal(t, []string{"Handle unicode input", "Handle empty input", "Add widget parser"},
		subjectsBetween(t, "origin/main..pr/add-widget-parser"))
	assert.Equal(t, []string{"Add widget parser", "Initial commit"}, subjectsBetween(t, "main"))

	mockVCS.AssertExpectations(t)
}

func TestWorkflow_NewRestoresStateOnConflict(t *testing.T) {
	setupWorkflowRepo(t)

	service := NewStackService(git.NewGitService(), &MockVCSClient{}, testConfig())
	ctx := context.Background()

	// Two commits touching the same line: the second does not apply on
	// origin/main without the first.
	commitWorkFile(t, "README.md", "rewritten\n", "Rewrite readme")
	sha := commitWorkFile(t, "README.md", "rewritten again\n", "Rewrite readme again")

	_, err := service.CreateStackedPR(ctx, sha)
	require.Error(t, err)

	// Pre-invocation state: back on main, clean tree, no branch left.
	assert.Equal(t, "main", runGit(t, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Empty(t, runGit(t, "status", "--porcelain"))
	branches := runGit(t, "branch", "--list", "pr/*")
	assert.Empty(t, branches)
	assert.Equal(t, sha, runGit(t, "rev-parse", "HEAD"))
}
