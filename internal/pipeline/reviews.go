package pipeline

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

// generateReviews inserts reviews against random existing customers
// and books. There is no uniqueness rule, so a customer can review the
// same book more than once.
func (p *Pipeline) generateReviews(ctx context.Context, st *Store) error {
	color.Cyan("  ⭐ Generating book reviews...")

	customerIDs, err := st.CustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	bookIDs, err := st.BookIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	if len(customerIDs) == 0 || len(bookIDs) == 0 {
		return fmt.Errorf("customers and books are required for reviews")
	}

	count := p.cfg.Counts.Reviews
	for i := 0; i < count; i++ {
		review := Review{
			CustomerID: p.gen.PickID(customerIDs),
			BookID:     p.gen.PickID(bookIDs),
			Rating:     p.gen.IntRange(1, 5),
			Title:      p.gen.Pick(reviewTitles),
			Text:       p.gen.Pick(reviewTexts),
			Verified:   p.gen.Chance(0.5),
		}

		if err := st.InsertReview(ctx, review); err != nil {
			color.Yellow("  ⚠️  Error generating review %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d book reviews", count)
	return nil
}
