package config

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			fmt.Printf("%s\n", t.GetMessage("language_label", 0, map[string]interface{}{"Lang": cfg.Language}))
			fmt.Printf("%s\n", t.GetMessage("main_branch_label", 0, map[string]interface{}{"Branch": cfg.MainBranch}))
			fmt.Printf("%s\n", t.GetMessage("remote_label", 0, map[string]interface{}{"Remote": cfg.Remote}))
			fmt.Printf("%s\n", t.GetMessage("prefix_label", 0, map[string]interface{}{"Prefix": cfg.BranchPrefix}))
			fmt.Printf("%s\n", t.GetMessage("draft_label", 0, map[string]interface{}{"Draft": cfg.DraftPRs}))

			if cfg.Token() == "" {
				fmt.Println(t.GetMessage("token.not_set", 0, nil))
				fmt.Println(t.GetMessage("token.tip", 0, nil))
			} else {
				fmt.Println(t.GetMessage("token.set", 0, nil))
			}

			return nil
		},
	}
}
