package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/playlist"
)

func newAlbumsCommand(cc *commandContext) *cobra.Command {
	var collectionPath string

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List the albums in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := cc.openState()
			if err != nil {
				return err
			}
			reg, err := cc.storedLibrary(cmd.Context(), st)
			if err != nil {
				return err
			}

			albums := reg.Albums()
			if collectionPath != "" {
				lib, err := collection.NewStore(st).Load()
				if err != nil {
					return errors.New(errmsg.Format(errmsg.OpCollectionLoad, err))
				}
				c, ok := lib.Find(splitPath(collectionPath)...)
				if !ok {
					return errors.New(errmsg.FormatWith(errmsg.OpCollectionLoad, collectionPath, collection.ErrNotFound))
				}
				albums = albumsIn(reg, c.AlbumIDs(reg))
			}

			out := cmd.OutOrStdout()
			if len(albums) == 0 {
				fmt.Fprintln(out, "No albums.")
				return nil
			}
			fmt.Fprintln(out, albumTable(reg, albums))
			return nil
		},
	}

	cmd.Flags().StringVar(&collectionPath, "collection", "", "Only list albums of this collection (e.g. Jazz/Bebop)")
	return cmd
}

func albumsIn(reg *library.Registry, ids []int64) []*library.Album {
	out := make([]*library.Album, 0, len(ids))
	for _, a := range reg.Albums() {
		for _, id := range ids {
			if a.ID == id {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func albumTable(reg *library.Registry, albums []*library.Album) string {
	rows := make([][]string, 0, len(albums))
	var tracks int
	var total time.Duration
	for _, a := range albums {
		d := reg.AlbumDuration(a)
		tracks += len(a.TrackIDs)
		total += d
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			orUnknown(a.Artist, "Unknown artist"),
			orUnknown(a.Name, "Unknown album"),
			humanize.Comma(int64(len(a.TrackIDs))),
			playlist.FormatDuration(d),
		})
	}
	footer := []string{
		"",
		humanize.Comma(int64(len(albums))) + " albums",
		"",
		humanize.Comma(int64(tracks)),
		formatTotal(total),
	}
	return renderTable(
		[]string{"ID", "Artist", "Album", "Tracks", "Length"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
		footer,
	)
}

// formatTotal renders long durations as hours and minutes.
func formatTotal(d time.Duration) string {
	hours := int64(d / time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%s h %02d min", humanize.Comma(hours), minutes)
}

func orUnknown(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// splitPath turns "Jazz/Bebop" or several arguments into path segments.
func splitPath(parts ...string) []string {
	var out []string
	for _, p := range parts {
		for _, seg := range strings.Split(p, "/") {
			if seg = strings.TrimSpace(seg); seg != "" {
				out = append(out, seg)
			}
		}
	}
	return out
}
