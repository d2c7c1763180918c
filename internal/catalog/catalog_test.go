package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeCatalog(t, `title,price,stock,book_url,category
A Light in the Attic,51.77,In stock,http://books.toscrape.com/a-light/index.html,Poetry
Tipping the Velvet,53.74,Out of Stock,http://books.toscrape.com/tipping/index.html,Historical Fiction
`)

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Failed to read catalog: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "A Light in the Attic" {
		t.Errorf("Unexpected title: %s", first.Title)
	}
	if first.Price != 51.77 {
		t.Errorf("Unexpected price: %v", first.Price)
	}
	if !first.InStock() {
		t.Error("Expected first record to be in stock")
	}
	if first.Category != "Poetry" {
		t.Errorf("Unexpected category: %s", first.Category)
	}
	if first.Rating != 3 {
		t.Errorf("Expected default rating 3, got %d", first.Rating)
	}

	if records[1].InStock() {
		t.Error("Expected second record to be out of stock")
	}
}

func TestReadColumnOrderIndependent(t *testing.T) {
	path := writeCatalog(t, `category,book_url,stock,price,title
Travel,http://example.com/1,In stock,12.50,On the Road
`)

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Failed to read catalog: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Title != "On the Road" || records[0].Price != 12.50 {
		t.Errorf("Column mapping broken: %+v", records[0])
	}
}

func TestReadOptionalRating(t *testing.T) {
	path := writeCatalog(t, `title,price,stock,book_url,category,rating
Book A,10.00,In stock,http://example.com/a,Fiction,Five
Book B,11.00,In stock,http://example.com/b,Fiction,garbage
`)

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Failed to read catalog: %v", err)
	}

	if records[0].Rating != 5 {
		t.Errorf("Expected rating 5, got %d", records[0].Rating)
	}
	if records[1].Rating != 3 {
		t.Errorf("Expected fallback rating 3, got %d", records[1].Rating)
	}
}

func TestReadSkipsMalformedRows(t *testing.T) {
	path := writeCatalog(t, `title,price,stock,book_url,category
Good Book,10.00,In stock,http://example.com/good,Fiction
Bad Price,not-a-number,In stock,http://example.com/bad,Fiction
,5.00,In stock,http://example.com/empty,Fiction
Another Good Book,20.00,In stock,http://example.com/good2,Fiction
`)

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Expected malformed rows to be skipped, got error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 valid records, got %d", len(records))
	}
	if records[0].Title != "Good Book" || records[1].Title != "Another Good Book" {
		t.Errorf("Unexpected surviving records: %+v", records)
	}
}

func TestReadMissingColumns(t *testing.T) {
	path := writeCatalog(t, `title,price
Book,10.00
`)

	if _, err := Read(path); err == nil {
		t.Error("Expected error for missing required columns")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRatingFromWord(t *testing.T) {
	cases := map[string]int{
		"One":   1,
		"two":   2,
		"Three": 3,
		"Four":  4,
		"FIVE":  5,
		"Six":   3,
		"":      3,
	}
	for word, want := range cases {
		if got := RatingFromWord(word); got != want {
			t.Errorf("RatingFromWord(%q) = %d, want %d", word, got, want)
		}
	}
}
