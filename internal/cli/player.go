package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/app"
	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/notify"
	"github.com/llehouerou/shelf/internal/playback"
	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/stderr"
)

// runPlayer loads the library, scanning it first when nothing is stored,
// and runs the TUI until the user quits.
func runPlayer(ctx context.Context, cc *commandContext, progressOut io.Writer) error {
	st, err := cc.openState()
	if err != nil {
		return err
	}
	root, err := cc.libraryRoot(st)
	if err != nil && !errors.Is(err, library.ErrNoLibraryRoot) {
		return errors.New(errmsg.Format(errmsg.OpLibraryLoad, err))
	}

	reg, err := withProgress(progressOut, func(progress chan<- library.ScanProgress) (*library.Registry, error) {
		return cc.loader(st).Load(ctx, root, progress)
	})
	if errors.Is(err, library.ErrNoLibraryRoot) {
		return fmt.Errorf("%s (set library_root or run `shelf scan <dir>`)", errmsg.Format(errmsg.OpLibraryLoad, err))
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLibraryLoad, err))
	}
	collections, err := collection.NewStore(st).Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCollectionLoad, err))
	}

	// The audio device is opened lazily by the first Play; capture must be
	// in place before that.
	capture, err := stderr.Start()
	if err != nil {
		cc.logger.Warn("stderr capture unavailable", slog.Any("error", err))
	}
	defer capture.Stop()

	queue := playlist.New(reg, playlist.WithLoopMode(cc.config.Loop()))
	sink := player.New()
	sink.SetVolumeDB(cc.config.VolumeDB)
	driver := playback.New(sink, queue, reg,
		playback.WithSettings(st),
		playback.WithLogger(cc.logger))
	defer func() {
		if err := driver.Close(); err != nil {
			cc.logger.Warn("close player", slog.Any("error", err))
		}
	}()

	if cc.config.Notify {
		np := notify.NewNowPlaying(notify.New(), reg, cc.logger)
		driver.Events().Play.AddListener(np.TrackStarted)
		driver.Events().Clear.AddListener(func(struct{}) { np.Reset() })
		defer func() {
			if err := np.Close(); err != nil {
				cc.logger.Debug("close notification", slog.Any("error", err))
			}
		}()
	}

	model := app.New(app.Deps{
		Registry:    reg,
		Collections: collections,
		Queue:       queue,
		Driver:      driver,
		Logger:      cc.logger,
		Stderr:      capture.Lines(),
	})
	cc.logger.Info("player started", slog.Int("albums", reg.AlbumCount()), slog.Int("tracks", reg.Len()))

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run player: %w", err)
	}
	return nil
}
