package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/state"
)

func newScanCommand(cc *commandContext) *cobra.Command {
	var rescan bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Build the library from a music folder",
		Long: "Scan reads every music file under the folder and stores the resulting " +
			"tracks and albums. A folder given on the command line is remembered for " +
			"later runs and always scanned.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := cc.openState()
			if err != nil {
				return err
			}

			var root string
			if len(args) == 1 {
				if root, err = filepath.Abs(args[0]); err != nil {
					return err
				}
				if err := st.Set(state.KeyRoot, root); err != nil {
					return errors.New(errmsg.Format(errmsg.OpLibrarySave, err))
				}
				rescan = true
			} else if root, err = cc.libraryRoot(st); err != nil {
				return errors.New(errmsg.Format(errmsg.OpLibraryScan, err))
			}

			loader := cc.loader(st)
			start := time.Now()
			reg, err := withProgress(cmd.ErrOrStderr(), func(progress chan<- library.ScanProgress) (*library.Registry, error) {
				if rescan {
					return loader.Rescan(cmd.Context(), root, progress)
				}
				return loader.Load(cmd.Context(), root, progress)
			})
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpLibraryScan, err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Library: %s tracks in %s albums from %s (%s)\n",
				humanize.Comma(int64(reg.Len())),
				humanize.Comma(int64(reg.AlbumCount())),
				root,
				time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rescan, "rescan", false, "Scan even when a library is already stored")
	return cmd
}

// withProgress runs fn with a progress channel whose updates are written to
// w, one line per phase change.
func withProgress(w io.Writer, fn func(chan<- library.ScanProgress) (*library.Registry, error)) (*library.Registry, error) {
	progress := make(chan library.ScanProgress, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		reportProgress(w, progress)
	}()

	reg, err := fn(progress)
	close(progress)
	<-done
	return reg, err
}

func reportProgress(w io.Writer, progress <-chan library.ScanProgress) {
	phase := ""
	for p := range progress {
		if p.Phase == phase {
			continue
		}
		phase = p.Phase
		switch p.Phase {
		case library.PhaseDone:
			if p.Stats != nil {
				fmt.Fprintf(w, "scan: %s files, %s skipped\n",
					humanize.Comma(int64(p.Stats.Files)), humanize.Comma(int64(p.Stats.Skipped)))
			}
		default:
			fmt.Fprintf(w, "scan: %s\n", p.Phase)
		}
	}
}
