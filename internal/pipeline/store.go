package pipeline

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
)

// DBTX is satisfied by *sql.Tx and *sql.DB. The pipeline always runs
// its store against the run transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store issues the pipeline's reads and writes. Statements are built
// with squirrel using the placeholder format the provider expects.
type Store struct {
	db DBTX
	qb squirrel.StatementBuilderType
}

func NewStore(db DBTX, provider string) *Store {
	var format squirrel.PlaceholderFormat = squirrel.Question
	if provider == "postgresql" || provider == "postgres" {
		format = squirrel.Dollar
	}
	return &Store{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(format),
	}
}

func (s *Store) exec(ctx context.Context, b squirrel.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *Store) ids(ctx context.Context, table, column string) ([]int64, error) {
	query, args, err := s.qb.Select(column).From(table).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Categories returns the category lookup keyed by lowercased name.
func (s *Store) Categories(ctx context.Context) (map[string]int64, error) {
	query, args, err := s.qb.Select("category_id", "name").From("categories").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		categories[strings.ToLower(name)] = id
	}
	return categories, rows.Err()
}

func (s *Store) CategoryIDs(ctx context.Context) ([]int64, error) {
	return s.ids(ctx, "categories", "category_id")
}

func (s *Store) PublisherIDs(ctx context.Context) ([]int64, error) {
	return s.ids(ctx, "publishers", "publisher_id")
}

func (s *Store) BookIDs(ctx context.Context) ([]int64, error) {
	return s.ids(ctx, "books", "book_id")
}

func (s *Store) AuthorIDs(ctx context.Context) ([]int64, error) {
	return s.ids(ctx, "authors", "author_id")
}

func (s *Store) CustomerIDs(ctx context.Context) ([]int64, error) {
	return s.ids(ctx, "customers", "customer_id")
}

func (s *Store) OrderIDs(ctx context.Context) ([]int64, error) {
	return s.ids(ctx, "orders", "order_id")
}

// Books returns identifier/price pairs for every existing book.
func (s *Store) Books(ctx context.Context) ([]BookRef, error) {
	query, args, err := s.qb.Select("book_id", "price").From("books").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []BookRef
	for rows.Next() {
		var b BookRef
		if err := rows.Scan(&b.ID, &b.Price); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (s *Store) CountBooks(ctx context.Context) (int, error) {
	query, args, err := s.qb.Select("COUNT(*)").From("books").ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) InsertBook(ctx context.Context, b Book) error {
	return s.exec(ctx, s.qb.Insert("books").
		Columns("title", "price", "cost", "stock_quantity", "book_url", "category_id",
			"publisher_id", "publication_date", "pages", "language", "description").
		Values(b.Title, b.Price, b.Cost, b.StockQuantity, b.URL, b.CategoryID,
			b.PublisherID, b.PublicationDate, b.Pages, b.Language, b.Description))
}

func (s *Store) InsertAuthor(ctx context.Context, a Author) error {
	return s.exec(ctx, s.qb.Insert("authors").
		Columns("first_name", "last_name", "birth_date", "nationality", "biography").
		Values(a.FirstName, a.LastName, a.BirthDate, a.Nationality, a.Biography))
}

func (s *Store) InsertBookAuthor(ctx context.Context, link BookAuthor) error {
	return s.exec(ctx, s.qb.Insert("book_authors").
		Columns("book_id", "author_id", "author_order", "royalty_percentage").
		Values(link.BookID, link.AuthorID, link.AuthorOrder, link.RoyaltyPercentage))
}

func (s *Store) InsertCustomer(ctx context.Context, c Customer) error {
	return s.exec(ctx, s.qb.Insert("customers").
		Columns("first_name", "last_name", "email", "phone", "date_of_birth", "gender",
			"address_line1", "city", "state", "postal_code", "country", "total_orders", "total_spent").
		Values(c.FirstName, c.LastName, c.Email, c.Phone, c.DateOfBirth, c.Gender,
			c.Address, c.City, c.State, c.PostalCode, c.Country, c.TotalOrders, c.TotalSpent))
}

func (s *Store) InsertOrder(ctx context.Context, o Order) error {
	return s.exec(ctx, s.qb.Insert("orders").
		Columns("customer_id", "order_date", "status", "subtotal", "tax_amount", "shipping_cost",
			"discount_amount", "total_amount", "payment_method", "payment_status", "shipping_address").
		Values(o.CustomerID, o.OrderDate, o.Status, o.Subtotal, o.TaxAmount, o.ShippingCost,
			o.DiscountAmount, o.TotalAmount, o.PaymentMethod, o.PaymentStatus, o.ShippingAddress))
}

func (s *Store) InsertOrderItem(ctx context.Context, item OrderItem) error {
	return s.exec(ctx, s.qb.Insert("order_items").
		Columns("order_id", "book_id", "quantity", "unit_price", "total_price").
		Values(item.OrderID, item.BookID, item.Quantity, item.UnitPrice, item.TotalPrice))
}

func (s *Store) InsertReview(ctx context.Context, r Review) error {
	return s.exec(ctx, s.qb.Insert("book_reviews").
		Columns("customer_id", "book_id", "rating", "title", "review_text", "is_verified_purchase").
		Values(r.CustomerID, r.BookID, r.Rating, r.Title, r.Text, r.Verified))
}

func (s *Store) InsertInventoryTransaction(ctx context.Context, t InventoryTransaction) error {
	return s.exec(ctx, s.qb.Insert("inventory_transactions").
		Columns("book_id", "transaction_type", "quantity_change", "reference_id", "reference_type", "notes").
		Values(t.BookID, t.Type, t.QuantityChange, t.ReferenceID, t.ReferenceType, t.Notes))
}

func (s *Store) InsertWishlistItem(ctx context.Context, w WishlistItem) error {
	return s.exec(ctx, s.qb.Insert("wishlist").
		Columns("customer_id", "book_id", "priority", "notes").
		Values(w.CustomerID, w.BookID, w.Priority, w.Notes))
}

func (s *Store) InsertDiscountCode(ctx context.Context, d DiscountCode) error {
	return s.exec(ctx, s.qb.Insert("discount_codes").
		Columns("code", "description", "discount_type", "discount_value", "min_order_amount",
			"usage_limit", "valid_from", "valid_to").
		Values(d.Code, d.Description, d.Type, d.Value, d.MinOrderAmount,
			d.UsageLimit, d.ValidFrom, d.ValidTo))
}
