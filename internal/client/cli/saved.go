package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Bookmark a place or tradition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := c.catalog.ByID(args[0])
			if err != nil {
				return fail(err)
			}
			if c.bookmarks.IsSaved(item.ID) {
				c.io.Printf("%s is already saved\n", item.Name)
				return nil
			}
			if err := c.bookmarks.Save(cmd.Context(), item); err != nil {
				return fail(err)
			}
			c.notifier.Success(fmt.Sprintf("Saved %s", item.Name))
			return nil
		},
	}
}

func (c *Cli) newUnsaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unsave <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a bookmark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !c.bookmarks.IsSaved(id) {
				c.io.Printf("%s is not saved\n", id)
				return nil
			}
			if err := c.bookmarks.Remove(cmd.Context(), id); err != nil {
				return fail(err)
			}
			c.notifier.Success(fmt.Sprintf("Removed %s from saved places", id))
			return nil
		},
	}
}

func (c *Cli) newSavedCmd() *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List saved places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearAll {
				if err := c.bookmarks.Clear(cmd.Context()); err != nil {
					return fail(err)
				}
				c.notifier.Success("Saved places cleared")
				return nil
			}

			c.io.Println("=== Saved places ===")
			c.io.Println()
			return c.printItems(c.bookmarks.Items())
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "remove all saved places")
	return cmd
}
