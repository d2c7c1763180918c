package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Version     string   `json:"version" mapstructure:"version"`
	CatalogPath string   `json:"catalog_path" mapstructure:"catalog_path"`
	Database    Database `json:"database" mapstructure:"database"`
	Counts      Counts   `json:"counts" mapstructure:"counts"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Counts controls how many rows each generation stage produces.
// TotalBooks is a target total (catalog rows included); every other
// field is an absolute number of new rows per run.
type Counts struct {
	TotalBooks            int `json:"total_books" mapstructure:"total_books"`
	Authors               int `json:"authors" mapstructure:"authors"`
	Customers             int `json:"customers" mapstructure:"customers"`
	Orders                int `json:"orders" mapstructure:"orders"`
	OrderItems            int `json:"order_items" mapstructure:"order_items"`
	Reviews               int `json:"reviews" mapstructure:"reviews"`
	InventoryTransactions int `json:"inventory_transactions" mapstructure:"inventory_transactions"`
	WishlistItems         int `json:"wishlist_items" mapstructure:"wishlist_items"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "books.csv"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "mysql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Counts.TotalBooks == 0 {
		cfg.Counts.TotalBooks = 1000
	}
	if cfg.Counts.Authors == 0 {
		cfg.Counts.Authors = 20
	}
	if cfg.Counts.Customers == 0 {
		cfg.Counts.Customers = 50
	}
	if cfg.Counts.Orders == 0 {
		cfg.Counts.Orders = 100
	}
	if cfg.Counts.OrderItems == 0 {
		cfg.Counts.OrderItems = 300
	}
	if cfg.Counts.Reviews == 0 {
		cfg.Counts.Reviews = 50
	}
	if cfg.Counts.InventoryTransactions == 0 {
		cfg.Counts.InventoryTransactions = 200
	}
	if cfg.Counts.WishlistItems == 0 {
		cfg.Counts.WishlistItems = 50
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	counts := map[string]int{
		"total_books":            c.Counts.TotalBooks,
		"authors":                c.Counts.Authors,
		"customers":              c.Counts.Customers,
		"orders":                 c.Counts.Orders,
		"order_items":            c.Counts.OrderItems,
		"reviews":                c.Counts.Reviews,
		"inventory_transactions": c.Counts.InventoryTransactions,
		"wishlist_items":         c.Counts.WishlistItems,
	}
	for name, count := range counts {
		if count <= 0 {
			return fmt.Errorf("counts.%s must be a positive integer, got %d", name, count)
		}
	}

	return nil
}
