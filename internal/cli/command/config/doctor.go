package config

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

type DoctorCommand struct{}

func NewDoctorCommand() *DoctorCommand {
	return &DoctorCommand{}
}

type checkStatus int

const (
	checkStatusOK checkStatus = iota
	checkStatusWarning
	checkStatusError
)

type checkResult struct {
	status     checkStatus
	message    string
	suggestion string
}

type healthCheck struct {
	name string
	fn   func(context.Context, *config.Config) checkResult
}

func (d *DoctorCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor.command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			return d.runHealthCheck(ctx, t, cfg)
		},
	}
}

func (d *DoctorCommand) runHealthCheck(ctx context.Context, t *i18n.Translations, cfg *config.Config) error {
	ui.PrintSectionBanner(t.GetMessage("doctor.running_checks", 0, nil))

	checks := []healthCheck{
		{name: "doctor.check_git_installed", fn: d.checkGitInstalled},
		{name: "doctor.check_git_repo", fn: d.checkGitRepo},
		{name: "doctor.check_remote", fn: d.checkRemote},
		{name: "doctor.check_config_file", fn: d.checkConfigFile},
		{name: "doctor.check_github_token", fn: d.checkGitHubToken},
	}

	var warnings []string
	allPassed := true

	for _, check := range checks {
		checkName := t.GetMessage(check.name, 0, nil)
		result := check.fn(ctx, cfg)

		switch result.status {
		case checkStatusOK:
			ui.PrintSuccess(os.Stdout, checkName)
		case checkStatusWarning:
			ui.PrintWarning(checkName)
			warnings = append(warnings, result.message)
			if result.suggestion != "" {
				ui.PrintInfo("  → " + result.suggestion)
			}
		case checkStatusError:
			ui.PrintError(os.Stdout, checkName)
			allPassed = false
			if result.suggestion != "" {
				ui.PrintInfo("  → " + result.suggestion)
			}
		}
	}

	fmt.Println()
	ui.PrintSectionBanner(t.GetMessage("doctor.summary", 0, nil))

	switch {
	case allPassed && len(warnings) == 0:
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.all_good", 0, nil))
	case allPassed:
		ui.PrintWarning(t.GetMessage("doctor.has_warnings", 0, nil))
	default:
		ui.PrintError(os.Stdout, t.GetMessage("doctor.has_errors", 0, nil))
	}

	return nil
}

func (d *DoctorCommand) checkGitInstalled(ctx context.Context, _ *config.Config) checkResult {
	if _, err := exec.LookPath("git"); err != nil {
		return checkResult{
			status:     checkStatusError,
			message:    "git not found",
			suggestion: "Install git: https://git-scm.com/downloads",
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGitRepo(ctx context.Context, _ *config.Config) checkResult {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	if err := cmd.Run(); err != nil {
		return checkResult{
			status:     checkStatusError,
			message:    "not inside a git repository",
			suggestion: "Run stackmate from inside a git checkout",
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkRemote(ctx context.Context, cfg *config.Config) checkResult {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", cfg.Remote)
	if err := cmd.Run(); err != nil {
		return checkResult{
			status:     checkStatusError,
			message:    "remote missing",
			suggestion: fmt.Sprintf("Add the remote: git remote add %s <url>", cfg.Remote),
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkConfigFile(_ context.Context, cfg *config.Config) checkResult {
	if cfg.PathFile == "" {
		return checkResult{
			status:     checkStatusWarning,
			message:    "config path unknown",
			suggestion: "Run: stackmate config init",
		}
	}
	if _, err := os.Stat(cfg.PathFile); err != nil {
		return checkResult{
			status:     checkStatusWarning,
			message:    "config file missing",
			suggestion: "Run: stackmate config init",
		}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGitHubToken(_ context.Context, cfg *config.Config) checkResult {
	if cfg.Token() == "" {
		return checkResult{
			status:     checkStatusWarning,
			message:    "token missing",
			suggestion: "stackmate new and stackmate list need a token: stackmate config set-token <token>",
		}
	}
	return checkResult{status: checkStatusOK}
}
