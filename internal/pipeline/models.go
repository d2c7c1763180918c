package pipeline

import "time"

// Row values the stages produce. Identifiers are assigned by the
// database on insert; stages only ever read them back for references.

type Book struct {
	Title           string
	Price           float64
	Cost            float64
	StockQuantity   int
	URL             string
	CategoryID      int64
	PublisherID     int64
	PublicationDate time.Time
	Pages           int
	Language        string
	Description     string
}

type Author struct {
	FirstName   string
	LastName    string
	BirthDate   time.Time
	Nationality string
	Biography   string
}

type BookAuthor struct {
	BookID            int64
	AuthorID          int64
	AuthorOrder       int
	RoyaltyPercentage float64
}

type Customer struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth time.Time
	Gender      string
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	TotalOrders int
	TotalSpent  float64
}

type Order struct {
	CustomerID      int64
	OrderDate       time.Time
	Status          string
	Subtotal        float64
	TaxAmount       float64
	ShippingCost    float64
	DiscountAmount  float64
	TotalAmount     float64
	PaymentMethod   string
	PaymentStatus   string
	ShippingAddress string
}

type OrderItem struct {
	OrderID    int64
	BookID     int64
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

type Review struct {
	CustomerID int64
	BookID     int64
	Rating     int
	Title      string
	Text       string
	Verified   bool
}

type InventoryTransaction struct {
	BookID         int64
	Type           string
	QuantityChange int
	ReferenceID    *int64
	ReferenceType  string
	Notes          string
}

type WishlistItem struct {
	CustomerID int64
	BookID     int64
	Priority   string
	Notes      string
}

type DiscountCode struct {
	Code           string
	Description    string
	Type           string
	Value          float64
	MinOrderAmount float64
	UsageLimit     int
	ValidFrom      time.Time
	ValidTo        time.Time
}

// BookRef is the (identifier, price) pair read back from the books
// table; the price acts as the unit-price snapshot for line items.
type BookRef struct {
	ID    int64
	Price float64
}
