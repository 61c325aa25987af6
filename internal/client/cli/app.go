// Package cli implements the interactive LearnTrack terminal client: a
// small REPL over the session controller and the resource services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/xshsama/learntrack/internal/client/api"
	"github.com/xshsama/learntrack/internal/client/config"
	"github.com/xshsama/learntrack/internal/client/credstore"
	"github.com/xshsama/learntrack/internal/client/services"
	"github.com/xshsama/learntrack/internal/client/session"
	"github.com/xshsama/learntrack/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Controller

	auth     services.AuthService
	profiles *services.ProfileService
	subjects *services.SubjectService
	goals    *services.GoalService
	tasks    *services.TaskService
	reports  *services.ReportService

	reader *bufio.Reader
}

// NewApp wires the full client: credential store, dispatcher, session
// controller (registered as the dispatcher's session listener), and the
// resource services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := credstore.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing credential database: %w", err)
	}

	store := credstore.NewSQLiteStore(db, log)
	client := api.NewClient(cfg.APIBaseURL, store, cfg.RequestTimeout, log)
	profiles := services.NewProfileService(client)

	ctrl := session.NewController(store, profiles, cfg.CredentialTTL, log)
	client.RegisterSessionListener(ctrl)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		session:  ctrl,
		auth:     services.NewAuthService(client, ctrl),
		profiles: profiles,
		subjects: services.NewSubjectService(client),
		goals:    services.NewGoalService(client),
		tasks:    services.NewTaskService(client),
		reports:  services.NewReportService(client),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Username + ")"
	}
	return ""
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restoration failed", "err", err)
	}
	if u := a.session.CurrentUser(); u != nil {
		printlnFn("Welcome back,", u.Username)
	} else {
		printlnFn("Welcome to LearnTrack (type 'help' for commands)")
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
