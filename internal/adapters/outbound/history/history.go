package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/euvat/euvat/internal/domain"
)

const historyFile = ".euvat/history/calculations.json"

// FileHistory implements domain.CalculationHistory using JSON file storage
// under the working directory. It is safe for concurrent use within one process.
type FileHistory struct {
	dir string
	mu  sync.Mutex
}

var _ domain.CalculationHistory = (*FileHistory)(nil)

// New returns a history rooted at dir.
func New(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

func (h *FileHistory) Save(entry domain.CalculationEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return writeAtomic(h.path(), data)
}

func (h *FileHistory) Load() ([]domain.CalculationEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// Clear deletes the history file. A missing file is not an error.
func (h *FileHistory) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (h *FileHistory) load() ([]domain.CalculationEntry, error) {
	data, err := os.ReadFile(h.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.CalculationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *FileHistory) path() string {
	return filepath.Join(h.dir, historyFile)
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over fp, so readers never see a partial file.
func writeAtomic(fp string, data []byte) error {
	dir := filepath.Dir(fp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".calculations-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}
