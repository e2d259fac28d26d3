package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retagger/retag/internal/config"
	"github.com/retagger/retag/internal/orchestrator"
	"github.com/retagger/retag/internal/repository"
	"github.com/retagger/retag/internal/service"
)

// container holds all the dependencies for the application.
type container struct {
	cfg *config.Config
	log *zap.Logger

	gitRepo  repository.GitRepository
	verifier repository.TagVerifier
	prompter service.Prompter
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stderr"}
	log, err := logCfg.Build()
	if err != nil {
		return nil, err
	}

	gitRepo, err := repository.NewGitRepository(cfg.Remote, cfg.GithubToken)
	if err != nil {
		return nil, err
	}

	// Remote verification is optional - it needs GitHub API coordinates
	verifier := repository.NewNoopTagVerifier()
	if cfg.VerificationEnabled() {
		verifier = repository.NewGithubTagVerifier(
			cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo, cfg.VerifyTimeout)
	}

	return &container{
		cfg:      cfg,
		log:      log,
		gitRepo:  gitRepo,
		verifier: verifier,
		prompter: service.NewPrompter(),
	}, nil
}

// InitCommands initializes all commands with their dependencies.
func InitCommands() error {
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		c, err := newContainer()
		if err != nil {
			return err
		}
		defer func() {
			_ = c.log.Sync()
		}()
		session := orchestrator.NewSession(c.gitRepo, c.verifier, c.prompter, c.log, os.Stdout)
		return session.Run(cmd.Context())
	}
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
