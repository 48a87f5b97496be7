package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/proofpost/internal/client/api"
	"github.com/dmitrijs2005/proofpost/internal/client/config"
	"github.com/dmitrijs2005/proofpost/internal/client/workflow"
	"github.com/dmitrijs2005/proofpost/internal/common"
	"github.com/dmitrijs2005/proofpost/internal/logging"
)

type App struct {
	config   *config.Config
	workflow *workflow.Workflow
	session  *workflow.Session
	logger   logging.Logger
	reader   *bufio.Reader
}

// NewApp builds the client. When no API key is configured it is requested
// interactively, without echo, before the gateway is constructed.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	reader := bufio.NewReader(os.Stdin)

	if cfg.APIKey == "" {
		key, err := GetSecret("Enter API key: ", os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("read api key: %w", err)
		}
		cfg.APIKey = strings.TrimSpace(string(key))
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("api key is required")
		}
	}

	gateway := api.NewGateway(cfg.BaseURL, cfg.APIKey, &http.Client{}, logger)
	locator := &workflow.Locator{Dir: cfg.FilesDir}
	wf := workflow.New(gateway, locator, logger, workflow.Options{
		PageLimit:            cfg.PageLimit,
		ClearUploadAfterPost: cfg.ClearUploadAfterPost,
	})

	return &App{
		config:   cfg,
		workflow: wf,
		session:  &workflow.Session{},
		logger:   logger,
		reader:   reader,
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("proofpost CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// getStatus summarizes the session for the prompt, e.g. "(p:185690 i:999 u)".
func (a *App) getStatus() string {
	s := ""
	if a.session.ProjectID != "" {
		s = "p:" + a.session.ProjectID
	}
	if a.session.SelectedItemID != "" {
		s += " i:" + a.session.SelectedItemID
	}
	if a.session.UploadedUUID != "" {
		s += " u"
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// printError maps workflow and gateway errors to user-facing messages. Every
// error is absorbed here; nothing terminates the session.
func (a *App) printError(err error) {
	switch {
	case errors.Is(err, common.ErrNoProjectSelected):
		printlnFn("Select a project first (project <id>).")
	case errors.Is(err, common.ErrNoItemSelected):
		printlnFn("Select or create an item first.")
	case errors.Is(err, common.ErrNoUploadUUID):
		printlnFn("Upload a file first (match or upload <path>).")
	case errors.Is(err, common.ErrDirectoryMissing):
		printlnFn("Warning: " + err.Error())
	case errors.Is(err, common.ErrUnavailable):
		printlnFn("Request failed: " + err.Error())
	default:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			printlnFn("Error: " + apiErr.Error())
			return
		}
		var mf *api.MissingFieldError
		if errors.As(err, &mf) {
			printlnFn("Warning: " + mf.Error())
			return
		}
		printlnFn("Error: " + err.Error())
	}
}
