package pipeline

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

// generateAuthors inserts the configured number of authors. Names are
// sampled independently, so duplicate full names are possible.
func (p *Pipeline) generateAuthors(ctx context.Context, st *Store) error {
	color.Cyan("  👥 Generating authors...")

	count := p.cfg.Counts.Authors
	for i := 0; i < count; i++ {
		author := Author{
			FirstName:   p.gen.Pick(authorFirstNames),
			LastName:    p.gen.Pick(authorLastNames),
			BirthDate:   p.gen.Date(1950, 2000),
			Nationality: p.gen.Pick(nationalities),
			Biography:   fmt.Sprintf("Award-winning author with over %d published works.", p.gen.IntRange(5, 25)),
		}

		if err := st.InsertAuthor(ctx, author); err != nil {
			color.Yellow("  ⚠️  Error generating author %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d authors", count)
	return nil
}

// linkAuthors assigns every existing book 1-3 distinct authors with
// contiguous 1-based order positions and an independent royalty split
// per link.
func (p *Pipeline) linkAuthors(ctx context.Context, st *Store) error {
	color.Cyan("  🔗 Linking books to authors...")

	bookIDs, err := st.BookIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	authorIDs, err := st.AuthorIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load authors: %w", err)
	}
	if len(authorIDs) == 0 {
		return fmt.Errorf("no authors available to link")
	}

	linked := 0
	for _, bookID := range bookIDs {
		selected := p.gen.Sample(authorIDs, p.gen.IntRange(1, 3))

		for i, authorID := range selected {
			link := BookAuthor{
				BookID:            bookID,
				AuthorID:          authorID,
				AuthorOrder:       i + 1,
				RoyaltyPercentage: p.gen.Money(5, 20),
			}
			if err := st.InsertBookAuthor(ctx, link); err != nil {
				color.Yellow("  ⚠️  Error linking book %d: %v", bookID, err)
				break
			}
			linked++
		}
	}

	color.Green("  ✅ Created %d book-author links", linked)
	return nil
}
