// Package catalog reads the external book catalog file feeding the
// import stage. The file is CSV with a header row; column order does
// not matter, extra columns are ignored.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var requiredColumns = []string{"title", "price", "stock", "book_url", "category"}

// Record is one catalog row. Rating is parsed when the optional rating
// column is present (word form, e.g. "Three"); it defaults to 3.
type Record struct {
	Title    string
	Price    float64
	Stock    string
	URL      string
	Category string
	Rating   int
}

// InStock reports whether the stock field marks the book as available.
func (r Record) InStock() bool {
	return r.Stock == "In stock"
}

// Read parses the catalog file. A missing or unreadable file is an
// error; a malformed row is logged and skipped.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer f.Close()

	return parse(csv.NewReader(f))
}

func parse(r *csv.Reader) ([]Record, error) {
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog file is missing required columns: %s", strings.Join(missing, ", "))
	}

	ratingIdx, hasRating := idx["rating"]

	var records []Record
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			color.Yellow("⚠️  Skipping catalog line %d: %v", line, err)
			continue
		}

		field := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		title := field("title")
		if title == "" {
			color.Yellow("⚠️  Skipping catalog line %d: empty title", line)
			continue
		}

		price, err := strconv.ParseFloat(field("price"), 64)
		if err != nil {
			color.Yellow("⚠️  Skipping catalog row '%s': bad price: %v", title, err)
			continue
		}

		rec := Record{
			Title:    title,
			Price:    price,
			Stock:    field("stock"),
			URL:      field("book_url"),
			Category: field("category"),
			Rating:   3,
		}
		if hasRating && ratingIdx < len(row) {
			rec.Rating = RatingFromWord(strings.TrimSpace(row[ratingIdx]))
		}

		records = append(records, rec)
	}

	return records, nil
}

var ratingWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

// RatingFromWord maps a human-readable star rating to an integer,
// defaulting to 3 for anything unrecognized.
func RatingFromWord(word string) int {
	if rating, ok := ratingWords[strings.ToLower(word)]; ok {
		return rating
	}
	return 3
}
