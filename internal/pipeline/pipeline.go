// Package pipeline implements the referential data-generation
// pipeline: a fixed sequence of generator stages, each inserting rows
// that reference only identifiers created by earlier stages. The whole
// run executes inside one transaction; a row-level failure is logged
// and skipped, any other error rolls everything back.
package pipeline

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bookforge/bookforge/internal/catalog"
	"github.com/bookforge/bookforge/internal/config"
	"github.com/fatih/color"
)

type Pipeline struct {
	cfg        *config.Config
	db         *sql.DB
	gen        *Generator
	skipImport bool
}

func New(cfg *config.Config, db *sql.DB, gen *Generator) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		db:  db,
		gen: gen,
	}
}

// SkipImport disables the catalog import stage; the book synthesizer
// then fills the whole target on its own.
func (p *Pipeline) SkipImport() {
	p.skipImport = true
}

// Run executes every stage in dependency order inside a single
// transaction. Nothing is committed unless all stages finish.
func (p *Pipeline) Run(ctx context.Context) error {
	color.Cyan("🌱 Starting bookstore data population...")

	var records []catalog.Record
	if !p.skipImport {
		var err error
		records, err = catalog.Read(p.cfg.CatalogPath)
		if err != nil {
			return err
		}
		color.Green("📖 Read %d books from catalog %s", len(records), p.cfg.CatalogPath)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	st := NewStore(tx, p.cfg.Database.Provider)

	if err := p.runStages(ctx, st, records); err != nil {
		color.Yellow("🔄 Rolling back due to error...")
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("run failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	color.Green("\n✅ All data populated successfully!")
	return nil
}

func (p *Pipeline) runStages(ctx context.Context, st *Store, records []catalog.Record) error {
	type stage struct {
		name string
		run  func(context.Context, *Store) error
	}

	stages := []stage{
		{"book synthesizer", p.synthesizeBooks},
		{"author synthesizer", p.generateAuthors},
		{"book-author linker", p.linkAuthors},
		{"customer synthesizer", p.generateCustomers},
		{"order synthesizer", p.generateOrders},
		{"order-item synthesizer", p.generateOrderItems},
		{"review synthesizer", p.generateReviews},
		{"inventory-transaction synthesizer", p.generateInventory},
		{"wishlist synthesizer", p.generateWishlist},
		{"discount-code seeder", p.seedDiscountCodes},
	}

	if !p.skipImport {
		if err := p.importCatalog(ctx, st, records); err != nil {
			return fmt.Errorf("catalog importer: %w", err)
		}
	}

	for _, s := range stages {
		if err := s.run(ctx, st); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return nil
}
