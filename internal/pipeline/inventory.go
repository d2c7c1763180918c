package pipeline

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

// quantityChangeFor draws a signed stock delta whose range depends on
// the transaction type.
func (p *Pipeline) quantityChangeFor(transactionType string) int {
	switch transactionType {
	case "Purchase":
		return p.gen.IntRange(10, 50)
	case "Sale":
		return -p.gen.IntRange(1, 5)
	case "Adjustment":
		return p.gen.IntRange(-5, 10)
	default: // Damaged
		return -p.gen.IntRange(1, 3)
	}
}

// generateInventory inserts stock movement rows against random
// existing books. Half the rows carry a loose reference id.
func (p *Pipeline) generateInventory(ctx context.Context, st *Store) error {
	color.Cyan("  📊 Generating inventory transactions...")

	bookIDs, err := st.BookIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	if len(bookIDs) == 0 {
		return fmt.Errorf("books are required for inventory transactions")
	}

	count := p.cfg.Counts.InventoryTransactions
	for i := 0; i < count; i++ {
		transactionType := p.gen.Pick(transactionTypes)

		var referenceID *int64
		if p.gen.Chance(0.5) {
			ref := int64(p.gen.IntRange(1, 100))
			referenceID = &ref
		}

		t := InventoryTransaction{
			BookID:         p.gen.PickID(bookIDs),
			Type:           transactionType,
			QuantityChange: p.quantityChangeFor(transactionType),
			ReferenceID:    referenceID,
			ReferenceType:  p.gen.Pick(referenceTypes),
			Notes:          p.gen.Pick(inventoryNotes),
		}

		if err := st.InsertInventoryTransaction(ctx, t); err != nil {
			color.Yellow("  ⚠️  Error generating inventory transaction %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d inventory transactions", count)
	return nil
}
