package bootstrap

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	askinadapter "campusqa/internal/modules/ask/adapter/in"
	askoutadapter "campusqa/internal/modules/ask/adapter/out"
	askservice "campusqa/internal/modules/ask/service"
	askusecase "campusqa/internal/modules/ask/usecase"
	authinadapter "campusqa/internal/modules/auth/adapter/in"
	authusecase "campusqa/internal/modules/auth/usecase"
	prefsinadapter "campusqa/internal/modules/prefs/adapter/in"
	prefsoutadapter "campusqa/internal/modules/prefs/adapter/out"
	prefsservice "campusqa/internal/modules/prefs/service"
	prefsusecase "campusqa/internal/modules/prefs/usecase"
	sessioninadapter "campusqa/internal/modules/session/adapter/in"
	sessionoutadapter "campusqa/internal/modules/session/adapter/out"
	sessionservice "campusqa/internal/modules/session/service"
	sessionusecase "campusqa/internal/modules/session/usecase"
	viewerinadapter "campusqa/internal/modules/viewer/adapter/in"
	vieweroutadapter "campusqa/internal/modules/viewer/adapter/out"
	viewerservice "campusqa/internal/modules/viewer/service"
	viewerusecase "campusqa/internal/modules/viewer/usecase"
	"campusqa/internal/platform/clock"
	"campusqa/internal/platform/config"
	"campusqa/internal/platform/id"
	uiapp "campusqa/internal/ui/app"
	"campusqa/internal/ui/theme"
)

// App wires the modules together once; CLI commands and the TUI both
// run against the same interactors.
type App struct {
	SessionCLI sessioninadapter.CLIHandler
	AskCLI     askinadapter.CLIHandler
	PrefsCLI   prefsinadapter.CLIHandler
	AuthCLI    authinadapter.CLIHandler
	ViewerCLI  viewerinadapter.CLIHandler

	Sessions *sessionusecase.Interactor
	Ask      *askusecase.Interactor
	Prefs    *prefsusecase.Interactor
	Auth     *authusecase.Interactor
	Viewer   *viewerusecase.Interactor

	cfg config.Config
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	timeout := time.Duration(cfg.HTTPTimeoutSec) * time.Second

	prefsUC := prefsusecase.NewInteractor(
		prefsservice.NewPreferencesService(prefsoutadapter.NewFileStore(cfg.PrefsPath())))

	history, err := sessionoutadapter.NewSQLiteHistory(cfg.HistoryDBPath())
	if err != nil {
		return nil, fmt.Errorf("new history store: %w", err)
	}
	memory := sessionoutadapter.NewMemoryStore()
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(memory, memory, history, clk, ids, logger))
	if err := sessionUC.Restore(context.Background()); err != nil {
		return nil, fmt.Errorf("restore history: %w", err)
	}

	askUC := askusecase.NewInteractor(
		askservice.NewAskService(askoutadapter.NewHTTPAnswerClient(cfg.APIBaseURL, timeout)),
		sessionUC,
		prefsUC,
		clk,
		logger,
	)

	authUC := authusecase.NewInteractor(cfg.APIBaseURL, prefsUC, logger)

	viewerUC := viewerusecase.NewInteractor(
		viewerservice.NewViewerService(
			vieweroutadapter.NewHTTPFetcher(cfg.APIBaseURL, cfg.PDFCacheDir(), timeout),
			vieweroutadapter.NewLocalPDFReader(),
		),
		prefsUC,
	)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		AskCLI:     askinadapter.NewCLIHandler(askUC),
		PrefsCLI:   prefsinadapter.NewCLIHandler(prefsUC),
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		ViewerCLI:  viewerinadapter.NewCLIHandler(viewerUC),
		Sessions:   sessionUC,
		Ask:        askUC,
		Prefs:      prefsUC,
		Auth:       authUC,
		Viewer:     viewerUC,
		cfg:        cfg,
	}, nil
}

func RunTUI(app *App) error {
	if prefs, err := app.Prefs.Get(context.Background()); err == nil {
		theme.Apply(prefs.Theme)
	}
	model := uiapp.NewModel(
		app.cfg.DownloadDir(),
		app.Sessions,
		app.Ask,
		app.Prefs,
		app.Viewer,
		app.Auth,
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
