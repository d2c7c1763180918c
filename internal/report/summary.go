// Package report renders row counts for every table the pipeline
// populates. It is strictly read-only.
package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TableCount is one summary line. Err is set when the count query for
// that table failed; the renderers show it as an ERROR placeholder.
type TableCount struct {
	Label string
	Table string
	Count int64
	Err   error
}

var tables = []struct {
	label string
	table string
}{
	{"Books", "books"},
	{"Authors", "authors"},
	{"Customers", "customers"},
	{"Orders", "orders"},
	{"Order Items", "order_items"},
	{"Reviews", "book_reviews"},
	{"Wishlist Items", "wishlist"},
	{"Inventory Transactions", "inventory_transactions"},
	{"Discount Codes", "discount_codes"},
}

// Collect queries the row count of every populated table. A failure
// for one table is recorded on its line and never aborts the report.
func Collect(ctx context.Context, db Querier) []TableCount {
	counts := make([]TableCount, 0, len(tables))
	for _, t := range tables {
		tc := TableCount{Label: t.label, Table: t.table}
		// Table names come from the fixed list above, never from input.
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", t.table)
		tc.Err = db.QueryRowContext(ctx, query).Scan(&tc.Count)
		counts = append(counts, tc)
	}
	return counts
}

// RenderTable writes the classic dotted summary table.
func RenderTable(w io.Writer, counts []TableCount) {
	line := "=================================================="
	fmt.Fprintln(w, line)
	color.New(color.FgCyan, color.Bold).Fprintln(w, "DATA POPULATION SUMMARY")
	fmt.Fprintln(w, line)

	for _, tc := range counts {
		if tc.Err != nil {
			fmt.Fprintf(w, "%s %s\n", pad(tc.Label), color.RedString("%10s", "ERROR"))
			continue
		}
		fmt.Fprintf(w, "%s %10d\n", pad(tc.Label), tc.Count)
	}
}

func pad(label string) string {
	const width = 30
	for len(label) < width {
		label += "."
	}
	return label
}

type entry struct {
	Table string `json:"table" yaml:"table"`
	Count int64  `json:"count" yaml:"count"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func entries(counts []TableCount) []entry {
	out := make([]entry, 0, len(counts))
	for _, tc := range counts {
		e := entry{Table: tc.Table, Count: tc.Count}
		if tc.Err != nil {
			e.Count = 0
			e.Error = tc.Err.Error()
		}
		out = append(out, e)
	}
	return out
}

func RenderJSON(w io.Writer, counts []TableCount) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries(counts))
}

func RenderYAML(w io.Writer, counts []TableCount) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(entries(counts))
}
