package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/errmsg"
)

func newCollectionsCommand(cc *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List and edit track collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := cc.openState()
			if err != nil {
				return err
			}
			lib, err := collection.NewStore(st).Load()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCollectionLoad, err))
			}
			out := cmd.OutOrStdout()
			if len(lib.Collections) == 0 {
				fmt.Fprintln(out, "No collections.")
				return nil
			}
			for _, c := range lib.Collections {
				printCollection(out, c, 0)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newCollectionsCreateCommand(cc),
		newCollectionsAddCommand(cc),
		newCollectionsDeleteCommand(cc),
	)
	return cmd
}

func printCollection(w io.Writer, c *collection.Collection, depth int) {
	fmt.Fprintf(w, "%s%s (%s)\n",
		strings.Repeat("  ", depth), c.Name, english.Plural(len(c.TrackIDs()), "track", ""))
	for _, child := range c.Children() {
		printCollection(w, child, depth+1)
	}
}

func newCollectionsCreateCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <path...>",
		Short: "Create a collection, with any missing parents",
		Example: `  shelf collections create Jazz/Bebop
  shelf collections create Jazz Bebop`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := splitPath(args...)
			if len(path) == 0 {
				return errors.New(errmsg.Format(errmsg.OpCollectionCreate, errors.New("empty path")))
			}
			return editCollections(cc, func(lib *collection.Library) error {
				_, created := lib.Create(path...)
				name := strings.Join(path, "/")
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", name)
				}
				return nil
			})
		},
	}
}

func newCollectionsAddCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path> <track-id...>",
		Short: "Add library tracks to a collection",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := splitPath(args[0])
			ids, err := parseIDs(args[1:])
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpCollectionAdd, err))
			}

			st, err := cc.openState()
			if err != nil {
				return err
			}
			reg, err := cc.storedLibrary(cmd.Context(), st)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := reg.Lookup(id); err != nil {
					return errors.New(errmsg.Format(errmsg.OpLibraryLookup, err))
				}
			}

			return editCollections(cc, func(lib *collection.Library) error {
				c, ok := lib.Find(path...)
				if !ok {
					return errors.New(errmsg.FormatWith(errmsg.OpCollectionAdd, args[0], collection.ErrNotFound))
				}
				added := 0
				for _, id := range ids {
					if !c.Has(id) {
						c.Add(id)
						added++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n",
					english.Plural(added, "track", ""), strings.Join(path, "/"))
				return nil
			})
		},
	}
}

func newCollectionsDeleteCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a collection and its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := splitPath(args[0])
			return editCollections(cc, func(lib *collection.Library) error {
				if !lib.Delete(path...) {
					return errors.New(errmsg.FormatWith(errmsg.OpCollectionDelete, args[0], collection.ErrNotFound))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", strings.Join(path, "/"))
				return nil
			})
		},
	}
}

// editCollections loads the collections, applies fn and saves the result.
// Nothing is saved when fn fails.
func editCollections(cc *commandContext, fn func(*collection.Library) error) error {
	st, err := cc.openState()
	if err != nil {
		return err
	}
	store := collection.NewStore(st)
	lib, err := store.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCollectionLoad, err))
	}
	if err := fn(lib); err != nil {
		return err
	}
	if err := store.Save(lib); err != nil {
		return errors.New(errmsg.Format(errmsg.OpCollectionSave, err))
	}
	return nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid track id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
