package i18n

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var localeFiles embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle. The English defaults and
// the locale catalogs ship embedded in the binary; localesPath may
// point at a directory with extra active.*.toml files to load on top.
func NewTranslations(defaultLang, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	embedded, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, entry := range embedded {
		data, err := localeFiles.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("error reading embedded locale %s: %w", entry.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("error parsing embedded locale %s: %w", entry.Name(), err)
		}
	}

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Stacked pull requests for people who live on the main line"

	[app_description]
	other = "stackmate turns single commits on your main branch into stacked pull requests: it transplants a commit onto a fresh branch cut from the remote main line, pushes it and opens the review. Updates flow back as autosquashed fixups."

	[help_command_usage]
	other = "Shows general help or help for a specific command"

	[stack.new_usage]
	other = "Create a stacked branch and pull request from a commit (default: tip of the main line)"

	[stack.update_usage]
	other = "Transplant the tip of the main line onto an existing stacked branch and fold it back as a fixup"

	[stack.list_usage]
	other = "List open stacked pull requests"

	[stack.missing_commit_arg]
	other = "A commit reference is required.\nUsage: stackmate update <commit-ref>"

	[stack.creating]
	other = "Creating stacked branch {{.Branch}} from {{.Commit}}..."

	[stack.updating]
	other = "Updating stacked branch {{.Branch}}..."

	[stack.pr_created]
	other = "Pull request #{{.Number}} created: {{.URL}}"

	[stack.branch_pushed]
	other = "Branch {{.Branch}} pushed"

	[stack.updated]
	other = "Stacked branch {{.Branch}} updated; main line tip squashed into {{.Commit}}"

	[stack.listing]
	other = "Fetching open stacked pull requests..."

	[stack.no_open_prs]
	other = "No open stacked pull requests"

	[stack.open_prs_header]
	one = "{{.Count}} open stacked pull request"
	other = "{{.Count}} open stacked pull requests"

	[stack.draft_marker]
	other = "draft"

	[error.service_creation]
	other = "Failed to initialize the stack service"

	[error.create_pr]
	other = "Failed to create the pull request for {{.Branch}}"

	[error.list_prs]
	other = "Failed to list pull requests"

	[error.insufficient_permissions]
	other = "The token does not have permission to open pull requests on {{.Owner}}/{{.Repo}}"

	[error.token_scopes_help]
	other = "The token needs the 'repo' scope. Regenerate it at https://github.com/settings/tokens"

	[config_command_usage]
	other = "Manage stackmate configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_init_usage]
	other = "Create a default configuration file"

	[config_set_lang_usage]
	other = "Set the CLI language (en, es)"

	[config_set_token_usage]
	other = "Store the GitHub token"

	[config_set_branch_usage]
	other = "Set the main branch, remote and branch prefix"

	[current_config]
	other = "Current configuration"

	[language_label]
	other = "Language: {{.Lang}}"

	[main_branch_label]
	other = "Main branch: {{.Branch}}"

	[remote_label]
	other = "Remote: {{.Remote}}"

	[prefix_label]
	other = "Branch prefix: {{.Prefix}}"

	[draft_label]
	other = "Open PRs as drafts: {{.Draft}}"

	[token.set]
	other = "GitHub token is configured"

	[token.not_set]
	other = "GitHub token is not set"

	[token.tip]
	other = "Set it with 'stackmate config set-token <token>' or export GITHUB_TOKEN"

	[config.invalid_lang]
	other = "Unsupported language: {{.Lang}}. Supported: en, es"

	[config.lang_updated]
	other = "Language updated to {{.Lang}}"

	[config.token_updated]
	other = "GitHub token updated"

	[config.branch_updated]
	other = "Main branch set to {{.Branch}}"

	[config.remote_updated]
	other = "Remote set to {{.Remote}}"

	[config.prefix_updated]
	other = "Branch prefix set to {{.Prefix}}"

	[config.init_done]
	other = "Configuration written to {{.Path}}"

	[doctor.command_usage]
	other = "Check that git, the remote and the token are ready"

	[doctor.running_checks]
	other = "Running health checks"

	[doctor.check_git_installed]
	other = "git is installed"

	[doctor.check_git_repo]
	other = "Inside a git repository"

	[doctor.check_remote]
	other = "Remote is configured"

	[doctor.check_config_file]
	other = "Configuration file exists"

	[doctor.check_github_token]
	other = "GitHub token is available"

	[doctor.summary]
	other = "Summary"

	[doctor.all_good]
	other = "Everything looks good"

	[doctor.has_warnings]
	other = "Some checks reported warnings"

	[doctor.has_errors]
	other = "Some checks failed"

	[completion.command_usage]
	other = "Generate shell completion scripts"

	[completion.command_description]
	other = "Prints or installs completion scripts for bash and zsh"

	[completion.bash_usage]
	other = "Print the bash completion script"

	[completion.zsh_usage]
	other = "Print the zsh completion script"

	[completion.install_usage]
	other = "Append the completion hook to your shell config"

	[completion.error_home_dir]
	other = "Could not resolve home directory: {{.Error}}"

	[completion.error_unsupported_shell]
	other = "Unsupported shell: {{.Shell}}"

	[completion.already_installed]
	other = "Completion already installed in {{.File}}"

	[completion.restart_shell]
	other = "Restart your shell or run:"

	[completion.error_open_config]
	other = "Could not open shell config: {{.Error}}"

	[completion.error_write_config]
	other = "Could not write shell config: {{.Error}}"

	[completion.installed_success]
	other = "Completion installed in {{.File}}"

	[ui_error.try_suggestion]
	other = "Try: "

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"
	`
