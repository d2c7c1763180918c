package pipeline

import (
	"context"
	"time"

	"github.com/fatih/color"
)

var (
	discountValidFrom = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	discountValidTo   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

// promotionalCodes is the fixed catalog the seeder inserts; all codes
// share the same validity window.
var promotionalCodes = []DiscountCode{
	{Code: "WELCOME10", Description: "Welcome discount for new customers", Type: "Percentage", Value: 10.00, MinOrderAmount: 25.00, UsageLimit: 100},
	{Code: "SAVE20", Description: "Save 20% on orders over $50", Type: "Percentage", Value: 20.00, MinOrderAmount: 50.00, UsageLimit: 50},
	{Code: "FREESHIP", Description: "Free shipping on any order", Type: "Fixed Amount", Value: 10.00, MinOrderAmount: 0.00, UsageLimit: 200},
	{Code: "STUDENT15", Description: "Student discount", Type: "Percentage", Value: 15.00, MinOrderAmount: 30.00, UsageLimit: 100},
	{Code: "BULK25", Description: "Bulk purchase discount", Type: "Percentage", Value: 25.00, MinOrderAmount: 100.00, UsageLimit: 25},
}

func (p *Pipeline) seedDiscountCodes(ctx context.Context, st *Store) error {
	color.Cyan("  🎟️  Seeding discount codes...")

	for _, code := range promotionalCodes {
		code.ValidFrom = discountValidFrom
		code.ValidTo = discountValidTo

		if err := st.InsertDiscountCode(ctx, code); err != nil {
			color.Yellow("  ⚠️  Error seeding discount code %s: %v", code.Code, err)
			continue
		}
	}

	color.Green("  ✅ Seeded %d discount codes", len(promotionalCodes))
	return nil
}
