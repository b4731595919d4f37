package record

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
)

func TestRecordAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "decisions.jsonl")
	rec, err := NewJSONLRecorder(path)
	if err != nil {
		t.Fatalf("NewJSONLRecorder returned error: %v", err)
	}

	rec.Record(Entry{
		Cycle:       1,
		Orders:      map[string][]book.Order{"RAINFOREST_RESIN": {{Product: "RAINFOREST_RESIN", Price: 101, Quantity: 60}}},
		Conversions: 1,
		Ts:          time.Now(),
	})
	rec.Record(Entry{Cycle: 2, Orders: map[string][]book.Order{}, Conversions: 1, Ts: time.Now()})

	if err := rec.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open recorded file: %v", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("bad JSONL line: %v", err)
		}
		entries = append(entries, entry)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Orders["RAINFOREST_RESIN"][0].Quantity != 60 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}
