package receipt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"DotNFT/internal/mint"
)

const (
	ItemsFile   = "minted.jsonl"
	SummaryFile = "summary.json"
)

// AppendJSONL appends v to path as one JSON line.
func AppendJSONL(path string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %T: %w", v, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := OpenAppend(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(blob, '\n'))
	return err
}

// Writer records the outcome of one minting run inside its run directory.
type Writer struct {
	dir string
	mu  sync.Mutex
}

func NewWriter(dir string) *Writer { return &Writer{dir: dir} }

func (w *Writer) Item(it mint.ItemResult) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return AppendJSONL(filepath.Join(w.dir, ItemsFile), it)
}

// Summary writes the report without its per-item list, which lives in minted.jsonl.
func (w *Writer) Summary(rep *mint.Report) error {
	if rep == nil {
		return nil
	}
	s := *rep
	s.Items = nil
	blob, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	path := filepath.Join(w.dir, SummaryFile)
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// Record writes every item line followed by the summary.
func (w *Writer) Record(rep *mint.Report) error {
	if rep == nil {
		return nil
	}
	for _, it := range rep.Items {
		if err := w.Item(it); err != nil {
			return fmt.Errorf("write item %d: %w", it.ItemID, err)
		}
	}
	return w.Summary(rep)
}
