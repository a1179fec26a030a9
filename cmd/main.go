package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/thomas-vilte/stackmate/internal/cli/command/completion"
	configcmd "github.com/thomas-vilte/stackmate/internal/cli/command/config"
	"github.com/thomas-vilte/stackmate/internal/cli/command/stack"
	"github.com/thomas-vilte/stackmate/internal/cli/registry"
	cfg "github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/git"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/logger"
	"github.com/thomas-vilte/stackmate/internal/services"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/thomas-vilte/stackmate/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	// Token and other secrets may live in a repo-local .env.
	_ = godotenv.Load()

	logger.Initialize(hasArg("--debug"), hasArg("--verbose"))

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfg.GetLocaleConfig(cfgApp.Language), "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load translations: %w", err)
	}

	gitService := git.NewGitService()
	stackFactory := services.NewStackServiceFactory(cfgApp, translations, gitService)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("new", stack.NewNewCommandFactory(stackFactory)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("update", stack.NewUpdateCommandFactory(stackFactory)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("list", stack.NewListCommandFactory(stackFactory)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("doctor", configcmd.NewDoctorCommand()); err != nil {
		return nil, nil, err
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	app := &cli.Command{
		Name:        "stackmate",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log informational messages",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log everything, with source locations",
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}

	return app, translations, nil
}

func hasArg(flag string) bool {
	for _, arg := range os.Args[1:] {
		if arg == flag {
			return true
		}
	}
	return false
}
