package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/minahasa-guide/internal/catalog"
)

func parseType(s string) (catalog.Type, error) {
	t := catalog.Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown type %q, use %s or %s", s, catalog.TypeTourism, catalog.TypeCulture)
	}
	return t, nil
}

func (c *Cli) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse places and traditions",
	}
	cmd.AddCommand(
		c.newCatalogListCmd(),
		c.newCatalogCategoriesCmd(),
		c.newCatalogSearchCmd(),
		c.newCatalogNearCmd(),
	)
	return cmd
}

func (c *Cli) newCatalogListCmd() *cobra.Command {
	var (
		typeName string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Example: `  guide catalog list --type tourism
  guide catalog list --type culture --category Tarian`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if typeName == "" {
				if category != "" {
					return fmt.Errorf("--category requires --type")
				}
				return c.printItems(c.catalog.All())
			}

			t, err := parseType(typeName)
			if err != nil {
				return err
			}
			if category != "" {
				return c.printItems(c.catalog.ByCategory(t, category))
			}
			return c.printItems(c.catalog.ByType(t))
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "tourism or culture")
	cmd.Flags().StringVar(&category, "category", "", "category within the type")
	return cmd
}

func (c *Cli) newCatalogCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories <type>",
		Short: "List categories of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(args[0])
			if err != nil {
				return err
			}
			for _, category := range c.catalog.Categories(t) {
				c.io.Println(category)
			}
			return nil
		},
	}
}

func (c *Cli) newCatalogSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search by name, category, location or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printItems(c.catalog.Search(strings.Join(args, " ")))
		},
	}
}

func (c *Cli) newCatalogNearCmd() *cobra.Command {
	var precision uint

	cmd := &cobra.Command{
		Use:     "near <lat> <lon>",
		Short:   "List places near a position",
		Example: "  guide catalog near 1.63 125.05",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil || lat < -90 || lat > 90 {
				return fmt.Errorf("invalid latitude %q", args[0])
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil || lon < -180 || lon > 180 {
				return fmt.Errorf("invalid longitude %q", args[1])
			}

			nearby := c.catalog.Near(lat, lon, precision)
			if len(nearby) == 0 {
				c.io.Println("Nothing found nearby")
				return nil
			}
			if err := nearbyTmpl.Execute(c.io, nearby); err != nil {
				return fmt.Errorf("failed to render list: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&precision, "precision", catalog.DefaultNearPrecision, "geohash precision, smaller is wider")
	return cmd
}

func (c *Cli) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show details of a place or tradition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := c.catalog.ByID(args[0])
			if err != nil {
				return fail(err)
			}
			return c.printItem(item)
		},
	}
}
