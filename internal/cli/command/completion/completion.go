package completion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_stackmate_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _stackmate_bash_autocomplete stackmate
`

const zshCompletionScript = `#compdef stackmate

_stackmate() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _stackmate stackmate
`

const installInfo = `
# StackMate Shell Completion
if command -v stackmate >/dev/null 2>&1; then
	source <(stackmate completion %s)
fi
`

func NewCompletionCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:        "completion",
		Usage:       t.GetMessage("completion.command_usage", 0, nil),
		Description: t.GetMessage("completion.command_description", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion.bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Print(bashCompletionScript)
					return nil
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion.zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Print(zshCompletionScript)
					return nil
				},
			},
			{
				Name:  "install",
				Usage: t.GetMessage("completion.install_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return installCompletion(t)
				},
			},
		},
	}
}

func installCompletion(t *i18n.Translations) error {
	shell := os.Getenv("SHELL")
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_home_dir", 0, map[string]interface{}{"Error": err.Error()}))
	}

	var configFile string
	var shellName string

	if strings.Contains(shell, "zsh") {
		configFile = filepath.Join(home, ".zshrc")
		shellName = "zsh"
	} else if strings.Contains(shell, "bash") {
		configFile = filepath.Join(home, ".bashrc")
		shellName = "bash"
	} else {
		return fmt.Errorf("%s", t.GetMessage("completion.error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
	}

	content := fmt.Sprintf(installInfo, shellName)

	fileContent, err := os.ReadFile(configFile)
	if err == nil && strings.Contains(string(fileContent), "# StackMate Shell Completion") {
		fmt.Println(t.GetMessage("completion.already_installed", 0, map[string]interface{}{"File": configFile}))
		fmt.Println(t.GetMessage("completion.restart_shell", 0, nil))
		fmt.Printf("  source %s\n", configFile)
		return nil
	}

	f, err := os.OpenFile(configFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_open_config", 0, map[string]interface{}{"Error": err.Error()}))
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_write_config", 0, map[string]interface{}{"Error": err.Error()}))
	}

	fmt.Println(t.GetMessage("completion.installed_success", 0, map[string]interface{}{"File": configFile}))
	fmt.Println(t.GetMessage("completion.restart_shell", 0, nil))
	fmt.Printf("  source %s\n", configFile)

	return nil
}
