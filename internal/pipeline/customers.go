package pipeline

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

// generateCustomers inserts the configured number of customers. Emails
// are unique by construction through the sequential index. The
// total_orders/total_spent aggregates are seeded plausible values, not
// derived from generated orders.
func (p *Pipeline) generateCustomers(ctx context.Context, st *Store) error {
	color.Cyan("  👤 Generating customers...")

	count := p.cfg.Counts.Customers
	for i := 0; i < count; i++ {
		customer := Customer{
			FirstName:   p.gen.Pick(customerFirstNames),
			LastName:    p.gen.Pick(customerLastNames),
			Email:       fmt.Sprintf("customer%d@email.com", i+1),
			Phone:       fmt.Sprintf("555-%d-%d", p.gen.IntRange(100, 999), p.gen.IntRange(1000, 9999)),
			DateOfBirth: p.gen.Date(1980, 2010),
			Gender:      p.gen.Pick(genders),
			Address:     fmt.Sprintf("%d Main St", p.gen.IntRange(1, 9999)),
			City:        p.gen.Pick(cities),
			State:       p.gen.Pick(states),
			PostalCode:  fmt.Sprintf("%d", p.gen.IntRange(10000, 99999)),
			Country:     "USA",
			TotalOrders: p.gen.IntRange(0, 20),
			TotalSpent:  p.gen.Money(100, 2000),
		}

		if err := st.InsertCustomer(ctx, customer); err != nil {
			color.Yellow("  ⚠️  Error generating customer %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d customers", count)
	return nil
}
