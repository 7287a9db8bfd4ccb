package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/llehouerou/shelf/internal/config"
	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/logging"
	"github.com/llehouerou/shelf/internal/state"
)

// commandContext carries what every subcommand needs: the configuration,
// the logger and, once opened, the database.
type commandContext struct {
	configPath string
	dbPath     string

	config    *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	state     *state.Manager
}

// init loads the configuration and opens the log file.
func (c *commandContext) init() error {
	var cfg *config.Config
	var err error
	if path := strings.TrimSpace(c.configPath); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closer, err := logging.NewFromConfig(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	c.config = cfg
	c.logger = logger
	c.logCloser = closer
	return nil
}

// openState opens the database once per command.
func (c *commandContext) openState() (*state.Manager, error) {
	if c.state != nil {
		return c.state, nil
	}
	var m *state.Manager
	var err error
	if path := strings.TrimSpace(c.dbPath); path != "" {
		m, err = state.Open(path)
	} else {
		m, err = state.OpenDefault()
	}
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	c.state = m
	return m, nil
}

// libraryRoot returns the configured music folder, falling back to the one
// remembered from the last scan.
func (c *commandContext) libraryRoot(st *state.Manager) (string, error) {
	if c.config.HasLibraryRoot() {
		return c.config.LibraryRoot, nil
	}
	root, ok, err := st.Get(state.KeyRoot)
	if err != nil {
		return "", err
	}
	if !ok || root == "" {
		return "", library.ErrNoLibraryRoot
	}
	return root, nil
}

func (c *commandContext) loader(st *state.Manager) *library.Loader {
	scanner := library.NewScanner(
		library.WithWorkers(c.config.ScanWorkers),
		library.WithLogger(c.logger))
	return library.NewLoader(library.NewStore(st.DB()), scanner, c.logger)
}

// storedLibrary loads the library without scanning.
func (c *commandContext) storedLibrary(ctx context.Context, st *state.Manager) (*library.Registry, error) {
	reg, err := library.NewStore(st.DB()).LoadAll(ctx)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpLibraryLoad, err))
	}
	return reg, nil
}

func (c *commandContext) close() error {
	var errs []error
	if c.state != nil {
		errs = append(errs, c.state.Close())
		c.state = nil
	}
	if c.logCloser != nil {
		errs = append(errs, c.logCloser.Close())
		c.logCloser = nil
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
