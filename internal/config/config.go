package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Remote        string        `mapstructure:"remote"`
	GithubToken   string        `mapstructure:"github_token"`
	GithubOwner   string        `mapstructure:"github_owner"`
	GithubRepo    string        `mapstructure:"github_repo"`
	VerifyPush    bool          `mapstructure:"verify_push"`
	VerifyTimeout time.Duration `mapstructure:"verify_timeout"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Remote:        "origin",
		VerifyPush:    true,
		VerifyTimeout: 30 * time.Second,
	}
}

// VerificationEnabled reports whether post-push remote verification can run.
// It needs a token plus the owner/repo coordinates of the remote.
func (c *Config) VerificationEnabled() bool {
	return c.VerifyPush && c.GithubToken != "" && c.GithubOwner != "" && c.GithubRepo != ""
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}
	// Token and owner/repo are optional; validate only what is provided.
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	if c.GithubOwner != "" || c.GithubRepo != "" {
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	if c.VerifyTimeout <= 0 {
		return fmt.Errorf("verify_timeout must be positive")
	}
	return nil
}

// ValidateGitHubToken validates GitHub token format.
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names.
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".retag")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("RETAG")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// BindEnv allows multiple env vars - it will check them in order
	if err := viper.BindEnv("github_token", "GITHUB_TOKEN", "RETAG_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := viper.BindEnv("github_owner", "GITHUB_REPOSITORY_OWNER", "RETAG_GITHUB_OWNER"); err != nil {
		return nil, fmt.Errorf("failed to bind github_owner env: %w", err)
	}
	if err := viper.BindEnv("github_repo", "GITHUB_REPOSITORY_NAME", "RETAG_GITHUB_REPO"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repo env: %w", err)
	}
	if err := viper.BindEnv("github_repository", "GITHUB_REPOSITORY"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repository env: %w", err)
	}
	if err := viper.BindEnv("remote", "RETAG_REMOTE"); err != nil {
		return nil, fmt.Errorf("failed to bind remote env: %w", err)
	}
	defaults := DefaultConfig()
	viper.SetDefault("remote", defaults.Remote)
	viper.SetDefault("verify_push", defaults.VerifyPush)
	viper.SetDefault("verify_timeout", defaults.VerifyTimeout)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	applyRepositoryFallback(&config)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// applyRepositoryFallback fills owner/repo from GITHUB_REPOSITORY
// ("owner/repo" form, set by GitHub Actions) when they are not configured
// individually.
func applyRepositoryFallback(c *Config) {
	if c.GithubOwner != "" && c.GithubRepo != "" {
		return
	}
	combined := viper.GetString("github_repository")
	if combined == "" {
		return
	}
	idx := strings.Index(combined, "/")
	if idx <= 0 || idx >= len(combined)-1 {
		return
	}
	if c.GithubOwner == "" {
		c.GithubOwner = combined[:idx]
	}
	if c.GithubRepo == "" {
		c.GithubRepo = combined[idx+1:]
	}
}
