package pipeline

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

func (p *Pipeline) generateWishlist(ctx context.Context, st *Store) error {
	color.Cyan("  💝 Generating wishlist items...")

	customerIDs, err := st.CustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	bookIDs, err := st.BookIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	if len(customerIDs) == 0 || len(bookIDs) == 0 {
		return fmt.Errorf("customers and books are required for wishlist items")
	}

	count := p.cfg.Counts.WishlistItems
	for i := 0; i < count; i++ {
		item := WishlistItem{
			CustomerID: p.gen.PickID(customerIDs),
			BookID:     p.gen.PickID(bookIDs),
			Priority:   p.gen.Pick(wishlistPriorities),
			Notes:      p.gen.Pick(wishlistNotes),
		}

		if err := st.InsertWishlistItem(ctx, item); err != nil {
			color.Yellow("  ⚠️  Error generating wishlist item %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d wishlist items", count)
	return nil
}
