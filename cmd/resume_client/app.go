package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/resume-assistant/internal/config"
	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/observability"
	"github.com/jonathan/resume-assistant/internal/repository"
	"github.com/jonathan/resume-assistant/internal/transport"
	"github.com/jonathan/resume-assistant/internal/types"
	"github.com/jonathan/resume-assistant/internal/viewstate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app wires the repositories of one process. The session lives in memory only, so
// every command that needs one signs in and out itself.
type app struct {
	cfg     *config.Config
	log     logging.Logger
	printer *observability.Printer
	session *transport.SessionStore

	auth      *repository.AuthRepository
	personas  *repository.PersonaRepository
	mypage    *repository.MypageRepository
	generator *repository.GenerateResumeRepository
	parser    *repository.ParsePdfRepository
}

// loadApp resolves the configuration (flags over env over file over defaults) and
// builds the repositories.
func loadApp(cmd *cobra.Command) (*app, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg := flagConfig.MergeWithDefaults(*fileCfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Env, cfg.Verbose)
	if err != nil {
		return nil, err
	}
	return newApp(&cfg, log, cmd.OutOrStdout())
}

func newApp(cfg *config.Config, log logging.Logger, out io.Writer) (*app, error) {
	session := transport.NewSessionStore()
	api, err := newClient(cfg, cfg.BaseURL, session, log)
	if err != nil {
		return nil, err
	}
	parserClient := api
	if cfg.ParserURL() != cfg.BaseURL {
		if parserClient, err = newClient(cfg, cfg.ParserURL(), session, log); err != nil {
			return nil, err
		}
	}

	return &app{
		cfg:       cfg,
		log:       log,
		printer:   observability.NewPrinter(out),
		session:   session,
		auth:      repository.NewAuthRepository(api, log),
		personas:  repository.NewPersonaRepository(api, log),
		mypage:    repository.NewMypageRepository(api, log),
		generator: repository.NewGenerateResumeRepository(api, log),
		parser:    repository.NewParsePdfRepository(parserClient, log),
	}, nil
}

// newClient builds a client for one host. Every client of an app shares session, so
// logout clears the cookies of every host.
func newClient(cfg *config.Config, baseURL string, session *transport.SessionStore, log logging.Logger) (*transport.Client, error) {
	opts := transport.DefaultOptions()
	opts.BaseURL = baseURL
	opts.Session = session
	opts.ConnectTimeout = cfg.ConnectTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.Logger = log
	client, err := transport.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// withSession signs in with the configured credentials, runs fn and signs out.
func (a *app) withSession(ctx context.Context, fn func(user types.UserProfile) error) error {
	login := viewstate.NewLogin(a.auth)
	login.UpdateEmail(a.cfg.Email)
	login.UpdatePassword(a.cfg.Password)
	if err := login.Validate(); err != nil {
		return fmt.Errorf("--email and --password (or RESUME_EMAIL and RESUME_PASSWORD) are required: %w", err)
	}

	login.Submit(ctx)
	result, ok := login.LoggedIn().Consume()
	if !ok {
		return fmt.Errorf("login failed: %s", login.State().Snapshot().Error)
	}

	defer func() {
		if o := a.auth.Logout(ctx); !o.IsSuccess() {
			a.log.Warn("logout failed", zap.String("outcome", o.String()))
		}
		_ = a.log.Sync()
	}()

	return fn(result.User)
}
