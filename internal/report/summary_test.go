package report

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"
)

func newPartialDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	// Only books exists; every other table errors on count.
	if _, err := db.Exec(`CREATE TABLE books (book_id INTEGER PRIMARY KEY, title TEXT)`); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO books (title) VALUES ('A'), ('B')`); err != nil {
		t.Fatalf("Failed to insert rows: %v", err)
	}
	return db
}

func TestCollectSurvivesMissingTables(t *testing.T) {
	db := newPartialDB(t)

	counts := Collect(context.Background(), db)
	if len(counts) != 9 {
		t.Fatalf("Expected 9 summary lines, got %d", len(counts))
	}

	for _, tc := range counts {
		switch tc.Table {
		case "books":
			if tc.Err != nil {
				t.Errorf("books count failed: %v", tc.Err)
			}
			if tc.Count != 2 {
				t.Errorf("Expected 2 books, got %d", tc.Count)
			}
		default:
			if tc.Err == nil {
				t.Errorf("Expected error for missing table %s", tc.Table)
			}
		}
	}
}

func TestRenderTableShowsErrorPlaceholder(t *testing.T) {
	db := newPartialDB(t)
	counts := Collect(context.Background(), db)

	var buf bytes.Buffer
	RenderTable(&buf, counts)
	out := buf.String()

	if !strings.Contains(out, "Books") {
		t.Error("Expected Books line in output")
	}
	if !strings.Contains(out, "ERROR") {
		t.Error("Expected ERROR placeholder for missing tables")
	}
}

func TestRenderJSON(t *testing.T) {
	db := newPartialDB(t)
	counts := Collect(context.Background(), db)

	var buf bytes.Buffer
	if err := RenderJSON(&buf, counts); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded []struct {
		Table string `json:"table"`
		Count int64  `json:"count"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(decoded) != 9 {
		t.Fatalf("Expected 9 entries, got %d", len(decoded))
	}
	if decoded[0].Table != "books" || decoded[0].Count != 2 || decoded[0].Error != "" {
		t.Errorf("Unexpected books entry: %+v", decoded[0])
	}
	if decoded[1].Error == "" {
		t.Errorf("Expected error recorded for %s", decoded[1].Table)
	}
}

func TestRenderYAML(t *testing.T) {
	db := newPartialDB(t)
	counts := Collect(context.Background(), db)

	var buf bytes.Buffer
	if err := RenderYAML(&buf, counts); err != nil {
		t.Fatalf("RenderYAML failed: %v", err)
	}

	var decoded []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if len(decoded) != 9 {
		t.Fatalf("Expected 9 entries, got %d", len(decoded))
	}
}
