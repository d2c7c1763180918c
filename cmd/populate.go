package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bookforge/bookforge/internal/config"
	"github.com/bookforge/bookforge/internal/db"
	"github.com/bookforge/bookforge/internal/pipeline"
	"github.com/bookforge/bookforge/internal/report"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var (
	populateFile       string
	populateSeed       int64
	populateSkipImport bool

	populateBooks      int
	populateAuthors    int
	populateCustomers  int
	populateOrders     int
	populateOrderItems int
	populateReviews    int
	populateInventory  int
	populateWishlist   int
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Populate the bookstore database",
	Long: `Import books from the catalog CSV and generate authors, customers,
orders, line items, reviews, inventory transactions, wishlist items and
discount codes referencing them.

The run is all-or-nothing: every insert happens inside one transaction
that is rolled back if any stage fails. Individual bad rows are logged
and skipped without failing the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyPopulateFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		conn, err := db.Open(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()

		ctx := context.Background()

		p := pipeline.New(cfg, conn.DB, pipeline.NewGenerator(populateSeed))
		if populateSkipImport {
			p.SkipImport()
		}

		if err := p.Run(ctx); err != nil {
			return err
		}

		fmt.Println()
		report.RenderTable(os.Stdout, report.Collect(ctx, conn.DB))
		return nil
	},
}

func applyPopulateFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("file") {
		cfg.CatalogPath = populateFile
	}
	if cmd.Flags().Changed("books") {
		cfg.Counts.TotalBooks = populateBooks
	}
	if cmd.Flags().Changed("authors") {
		cfg.Counts.Authors = populateAuthors
	}
	if cmd.Flags().Changed("customers") {
		cfg.Counts.Customers = populateCustomers
	}
	if cmd.Flags().Changed("orders") {
		cfg.Counts.Orders = populateOrders
	}
	if cmd.Flags().Changed("order-items") {
		cfg.Counts.OrderItems = populateOrderItems
	}
	if cmd.Flags().Changed("reviews") {
		cfg.Counts.Reviews = populateReviews
	}
	if cmd.Flags().Changed("inventory") {
		cfg.Counts.InventoryTransactions = populateInventory
	}
	if cmd.Flags().Changed("wishlist") {
		cfg.Counts.WishlistItems = populateWishlist
	}
}

func init() {
	rootCmd.AddCommand(populateCmd)

	populateCmd.Flags().StringVar(&populateFile, "file", "", "Catalog CSV path (overrides config)")
	populateCmd.Flags().Int64Var(&populateSeed, "seed", 0, "Random seed for reproducible runs (0 = time-based)")
	populateCmd.Flags().BoolVar(&populateSkipImport, "skip-import", false, "Skip the catalog import stage")

	populateCmd.Flags().IntVar(&populateBooks, "books", 0, "Target total number of books")
	populateCmd.Flags().IntVar(&populateAuthors, "authors", 0, "Number of authors to generate")
	populateCmd.Flags().IntVar(&populateCustomers, "customers", 0, "Number of customers to generate")
	populateCmd.Flags().IntVar(&populateOrders, "orders", 0, "Number of orders to generate")
	populateCmd.Flags().IntVar(&populateOrderItems, "order-items", 0, "Number of order items to generate")
	populateCmd.Flags().IntVar(&populateReviews, "reviews", 0, "Number of reviews to generate")
	populateCmd.Flags().IntVar(&populateInventory, "inventory", 0, "Number of inventory transactions to generate")
	populateCmd.Flags().IntVar(&populateWishlist, "wishlist", 0, "Number of wishlist items to generate")
}
