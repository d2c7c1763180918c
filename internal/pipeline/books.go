package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/bookforge/bookforge/internal/catalog"
	"github.com/fatih/color"
)

func normalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

const (
	// cost basis for imported books: 40% markup over cost
	importCostRatio = 0.6

	// category to fall back on when a catalog category is unknown
	fallbackCategoryID = 1
)

// importCatalog inserts one book per catalog record. Category names
// resolve case-insensitively against the categories lookup; publishers
// are picked at random. A failed row is skipped, never fatal.
func (p *Pipeline) importCatalog(ctx context.Context, st *Store, records []catalog.Record) error {
	color.Cyan("  📝 Importing books from catalog...")

	categories, err := st.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	publisherIDs, err := st.PublisherIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load publishers: %w", err)
	}
	if len(publisherIDs) == 0 {
		return fmt.Errorf("publishers table is empty; seed it before populating")
	}

	inserted := 0
	for _, rec := range records {
		categoryID, ok := categories[normalizeCategory(rec.Category)]
		if !ok {
			categoryID = fallbackCategoryID
		}

		stock := 0
		if rec.InStock() {
			stock = p.gen.IntRange(10, 50)
		}

		book := Book{
			Title:           rec.Title,
			Price:           rec.Price,
			Cost:            round2(rec.Price * importCostRatio),
			StockQuantity:   stock,
			URL:             rec.URL,
			CategoryID:      categoryID,
			PublisherID:     p.gen.PickID(publisherIDs),
			PublicationDate: p.gen.Date(2000, 2020),
			Pages:           p.gen.IntRange(100, 500),
			Language:        "English",
			Description:     fmt.Sprintf("Description for %s", rec.Title),
		}

		if err := st.InsertBook(ctx, book); err != nil {
			color.Yellow("  ⚠️  Error inserting book '%s': %v", rec.Title, err)
			continue
		}
		inserted++
	}

	color.Green("  ✅ Imported %d books from catalog", inserted)
	return nil
}

// synthesizeBooks fills the deficit against the configured target with
// fully synthetic books. Unlike the importer, a synthetic book's cost
// is drawn independently of its price.
func (p *Pipeline) synthesizeBooks(ctx context.Context, st *Store) error {
	color.Cyan("  📝 Generating additional books...")

	current, err := st.CountBooks(ctx)
	if err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}

	needed := p.cfg.Counts.TotalBooks - current
	if needed <= 0 {
		color.Yellow("  Already have %d books, no additional books needed", current)
		return nil
	}

	categoryIDs, err := st.CategoryIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	publisherIDs, err := st.PublisherIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load publishers: %w", err)
	}
	if len(categoryIDs) == 0 || len(publisherIDs) == 0 {
		return fmt.Errorf("categories and publishers must be seeded before populating")
	}

	for i := 0; i < needed; i++ {
		n := current + i + 1

		book := Book{
			Title:           fmt.Sprintf("Generated Book %d", n),
			Price:           p.gen.Money(10, 60),
			Cost:            p.gen.Money(6, 36),
			StockQuantity:   p.gen.IntRange(10, 50),
			URL:             fmt.Sprintf("http://books.toscrape.com/catalogue/generated-book-%d/index.html", n),
			CategoryID:      p.gen.PickID(categoryIDs),
			PublisherID:     p.gen.PickID(publisherIDs),
			PublicationDate: p.gen.Date(2000, 2020),
			Pages:           p.gen.IntRange(100, 500),
			Language:        "English",
			Description:     fmt.Sprintf("This is a generated book description for book number %d", n),
		}

		if err := st.InsertBook(ctx, book); err != nil {
			color.Yellow("  ⚠️  Error generating book %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d additional books", needed)
	return nil
}
