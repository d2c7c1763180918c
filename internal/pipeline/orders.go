package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
)

const (
	taxRate               = 0.08
	freeShippingThreshold = 50.0
	discountProbability   = 0.2
)

// orderDateBase anchors the one-year window order dates fall in.
var orderDateBase = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// orderTotal derives the order total from its already-rounded
// components. Rounding happens per component, so small drift between
// runs of the same figures is expected and accepted.
func orderTotal(subtotal, tax, shipping, discount float64) float64 {
	return round2(subtotal + tax + shipping - discount)
}

func taxFor(subtotal float64) float64 {
	return round2(subtotal * taxRate)
}

// generateOrders inserts the configured number of orders with derived
// financial totals. Shipping is free once the subtotal crosses the
// threshold; a discount applies with fixed probability.
func (p *Pipeline) generateOrders(ctx context.Context, st *Store) error {
	color.Cyan("  🛒 Generating orders...")

	customerIDs, err := st.CustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	if len(customerIDs) == 0 {
		return fmt.Errorf("no customers available for orders")
	}

	count := p.cfg.Counts.Orders
	for i := 0; i < count; i++ {
		subtotal := p.gen.Money(20, 200)
		tax := taxFor(subtotal)

		shipping := 0.0
		if subtotal < freeShippingThreshold {
			shipping = p.gen.Money(5, 10)
		}

		discount := 0.0
		if p.gen.Chance(discountProbability) {
			discount = p.gen.Money(0, 20)
		}

		order := Order{
			CustomerID:      p.gen.PickID(customerIDs),
			OrderDate:       p.gen.DateWithin(orderDateBase, 365),
			Status:          p.gen.Pick(orderStatuses),
			Subtotal:        subtotal,
			TaxAmount:       tax,
			ShippingCost:    shipping,
			DiscountAmount:  discount,
			TotalAmount:     orderTotal(subtotal, tax, shipping, discount),
			PaymentMethod:   p.gen.Pick(paymentMethods),
			PaymentStatus:   p.gen.Pick(paymentStatuses),
			ShippingAddress: fmt.Sprintf("%d Main St, City, State 12345", p.gen.IntRange(1, 9999)),
		}

		if err := st.InsertOrder(ctx, order); err != nil {
			color.Yellow("  ⚠️  Error generating order %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d orders", count)
	return nil
}

// generateOrderItems inserts line items against random existing orders
// and books, with replacement: an order may collect duplicate book
// lines, and item totals are never reconciled with the parent order.
// The unit price is a snapshot of the book's price at generation time.
func (p *Pipeline) generateOrderItems(ctx context.Context, st *Store) error {
	color.Cyan("  📦 Generating order items...")

	orderIDs, err := st.OrderIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	books, err := st.Books(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	if len(orderIDs) == 0 || len(books) == 0 {
		return fmt.Errorf("orders and books are required for order items")
	}

	count := p.cfg.Counts.OrderItems
	for i := 0; i < count; i++ {
		book := books[p.gen.IntRange(0, len(books)-1)]
		quantity := p.gen.IntRange(1, 3)

		item := OrderItem{
			OrderID:    p.gen.PickID(orderIDs),
			BookID:     book.ID,
			Quantity:   quantity,
			UnitPrice:  book.Price,
			TotalPrice: round2(book.Price * float64(quantity)),
		}

		if err := st.InsertOrderItem(ctx, item); err != nil {
			color.Yellow("  ⚠️  Error generating order item %d: %v", i+1, err)
			continue
		}
	}

	color.Green("  ✅ Generated %d order items", count)
	return nil
}
