// Package record appends per-cycle decisions as JSON lines for later analysis.
package record

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
)

// Entry is one recorded decision cycle.
type Entry struct {
	Cycle       int                     `json:"cycle"`
	Orders      map[string][]book.Order `json:"orders"`
	Conversions int                     `json:"conversions"`
	Ts          time.Time               `json:"ts"`
}

// JSONLRecorder appends entries to a JSONL file.
type JSONLRecorder struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewJSONLRecorder creates/opens the target file and returns a recorder.
func NewJSONLRecorder(path string) (*JSONLRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &JSONLRecorder{
		file: file,
		enc:  json.NewEncoder(file),
	}, nil
}

// Record writes a single entry to the underlying JSONL file.
func (r *JSONLRecorder) Record(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.enc.Encode(entry)
}

// Close flushes and closes the file handle.
func (r *JSONLRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
