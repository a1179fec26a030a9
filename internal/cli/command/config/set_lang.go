package config

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<en|es>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if lang != config.LangEN && lang != config.LangES {
				return fmt.Errorf("%s", t.GetMessage("config.invalid_lang", 0, map[string]interface{}{
					"Lang": lang,
				}))
			}

			// Switch the live bundle first so the config is only
			// persisted once the language is known to be loadable.
			if err := t.SetLanguage(lang); err != nil {
				return err
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Writer, t.GetMessage("config.lang_updated", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
