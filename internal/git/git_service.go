package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/thomas-vilte/stackmate/internal/errors"
	"github.com/thomas-vilte/stackmate/internal/logger"
	"github.com/thomas-vilte/stackmate/internal/models"
	"github.com/thomas-vilte/stackmate/internal/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// run executes git with the given arguments and returns trimmed stdout.
// Stderr is captured so failures carry the actual git complaint.
func (s *GitService) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		logger.Debug(ctx, "git command failed",
			"args", strings.Join(args, " "),
			"stderr", strings.TrimSpace(stderr.String()))
		return "", fmt.Errorf("git %s: %v: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(output)), nil
}

func (s *GitService) IsRepository(ctx context.Context) bool {
	_, err := s.run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

func (s *GitService) IsClean(ctx context.Context) (bool, error) {
	output, err := s.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, errors.ErrNotInGitRepo.WithError(err)
	}
	return output == "", nil
}

func (s *GitService) ResolveCommit(ctx context.Context, ref string) (models.Commit, error) {
	// %H, %s and %b separated by NUL so multi-line bodies survive.
	output, err := s.run(ctx, "log", "-1", "--format=%H%x00%s%x00%b", ref, "--")
	if err != nil {
		return models.Commit{}, errors.ErrResolveCommit.WithContext("ref", ref).WithError(err)
	}

	parts := strings.SplitN(output, "\x00", 3)
	if len(parts) < 2 {
		return models.Commit{}, errors.ErrResolveCommit.WithContext("ref", ref)
	}

	commit := models.Commit{
		SHA:     parts[0],
		Subject: parts[1],
	}
	if len(parts) == 3 {
		commit.Body = strings.TrimSpace(parts[2])
	}
	return commit, nil
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", errors.ErrGetBranch.WithError(err)
	}
	if output == "" {
		return "", errors.ErrNoBranch
	}
	return output, nil
}

func (s *GitService) GetRepoInfo(ctx context.Context, remote string) (string, string, string, error) {
	output, err := s.run(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", "", "", errors.ErrGetRepoURL.WithContext("remote", remote).WithError(err)
	}
	return parseRepoURL(output)
}

func (s *GitService) Fetch(ctx context.Context, remote, branch string) error {
	if _, err := s.run(ctx, "fetch", remote, branch); err != nil {
		return errors.ErrFetch.WithContext("remote", remote).WithError(err)
	}
	return nil
}

func (s *GitService) CreateBranchFrom(ctx context.Context, branch, startPoint string) error {
	if _, err := s.run(ctx, "checkout", "--no-track", "-b", branch, startPoint); err != nil {
		return errors.ErrCreateBranch.WithContext("branch", branch).WithError(err)
	}
	return nil
}

func (s *GitService) Checkout(ctx context.Context, branch string) error {
	if _, err := s.run(ctx, "checkout", branch); err != nil {
		if strings.Contains(err.Error(), "did not match any") ||
			strings.Contains(err.Error(), "pathspec") {
			return errors.ErrBranchNotFound.WithContext("branch", branch).WithError(err)
		}
		return errors.ErrCheckout.WithContext("branch", branch).WithError(err)
	}
	return nil
}

func (s *GitService) DeleteBranch(ctx context.Context, branch string) error {
	if _, err := s.run(ctx, "branch", "-D", branch); err != nil {
		return errors.ErrDeleteBranch.WithContext("branch", branch).WithError(err)
	}
	return nil
}

func (s *GitService) CherryPick(ctx context.Context, sha string) error {
	if _, err := s.run(ctx, "cherry-pick", sha); err != nil {
		return errors.ErrCherryPick.WithContext("commit", sha).WithError(err)
	}
	return nil
}

func (s *GitService) AbortCherryPick(ctx context.Context) error {
	if _, err := s.run(ctx, "cherry-pick", "--abort"); err != nil {
		return errors.ErrAbortCherryPick.WithError(err)
	}
	return nil
}

func (s *GitService) Push(ctx context.Context, remote, branch string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "--set-upstream")
	}
	args = append(args, remote, branch)

	if _, err := s.run(ctx, args...); err != nil {
		return errors.ErrPush.WithContext("branch", branch).WithError(err)
	}
	return nil
}

func (s *GitService) AmendCommitMessage(ctx context.Context, message string) error {
	if _, err := s.run(ctx, "commit", "--amend", "-m", message); err != nil {
		return errors.ErrAmendCommit.WithError(err)
	}
	return nil
}

func (s *GitService) AutosquashRebase(ctx context.Context, upstream string) error {
	// The sequence editor is forced to a no-op so the autosquash todo
	// list is applied without any interaction.
	cmd := exec.CommandContext(ctx, "git", "rebase", "--interactive", "--autosquash", upstream)
	cmd.Env = append(os.Environ(), "GIT_SEQUENCE_EDITOR=true", "GIT_EDITOR=true")
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Leave no half-applied rebase behind.
		abort := exec.CommandContext(ctx, "git", "rebase", "--abort")
		_ = abort.Run()
		return errors.ErrAutosquash.
			WithContext("stderr", strings.TrimSpace(stderr.String())).
			WithError(err)
	}
	return nil
}

func parseRepoURL(url string) (string, string, string, error) {
	sshRegex := regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex := regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)

	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		provider := detectProvider(matches[1])
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, provider, nil
	}

	return "", "", "", errors.ErrExtractRepoInfo.WithContext("url", url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}
