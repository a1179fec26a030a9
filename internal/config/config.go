package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Language     string `json:"language"`
	MainBranch   string `json:"main_branch"`
	Remote       string `json:"remote"`
	BranchPrefix string `json:"branch_prefix"`
	GithubToken  string `json:"github_token,omitempty"`
	DraftPRs     bool   `json:"draft_prs"`
	UseEmoji     bool   `json:"use_emoji"`
	PathFile     string `json:"path_file"`
}

const (
	defaultLang         = "en"
	defaultMainBranch   = "main"
	defaultRemote       = "origin"
	defaultBranchPrefix = "pr/"
	defaultUseEmoji     = true
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".stack-mate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:     defaultLang,
		MainBranch:   defaultMainBranch,
		Remote:       defaultRemote,
		BranchPrefix: defaultBranchPrefix,
		DraftPRs:     false,
		UseEmoji:     defaultUseEmoji,
		PathFile:     path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	return nil
}

// Token returns the configured GitHub token, falling back to the
// GITHUB_TOKEN environment variable (optionally loaded from .env).
func (c *Config) Token() string {
	if c.GithubToken != "" {
		return c.GithubToken
	}
	return os.Getenv("GITHUB_TOKEN")
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if config.MainBranch == "" {
		return errors.New("main_branch cannot be empty")
	}
	if config.Remote == "" {
		return errors.New("remote cannot be empty")
	}
	if strings.ContainsAny(config.BranchPrefix, " ~^:?*[\\") {
		return fmt.Errorf("branch_prefix %q contains characters not allowed in ref names", config.BranchPrefix)
	}
	return nil
}
