package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// HistoryEntry records a single association-based launch.
type HistoryEntry struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Original  []string  `json:"original"`
	Extension string    `json:"extension"`
	Template  string    `json:"template"`
	Resolved  []string  `json:"resolved"`
	Dir       string    `json:"dir,omitempty"`
	ExitCode  int       `json:"exit_code"`
	DryRun    bool      `json:"dry_run,omitempty"`
}

// HistoryStore interface for storage abstraction (ISP compliance).
type HistoryStore interface {
	Save(entry HistoryEntry) error
	GetRecent(limit int) ([]HistoryEntry, error)
}

// FileHistoryStore implements HistoryStore with JSONL file storage.
type FileHistoryStore struct {
	fs   afero.Fs
	path string
}

// NewFileHistoryStore creates a history store at the given path on the OS filesystem.
// If path is empty, uses default XDG location.
func NewFileHistoryStore(path string) *FileHistoryStore {
	return NewFileHistoryStoreFS(afero.NewOsFs(), path)
}

// NewFileHistoryStoreFS creates a history store backed by fs.
func NewFileHistoryStoreFS(fs afero.Fs, path string) *FileHistoryStore {
	if path == "" {
		path = DefaultHistoryPath()
	}
	return &FileHistoryStore{fs: fs, path: path}
}

// DefaultHistoryPath returns ~/.config/ftype/history.jsonl.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.jsonl"
	}
	return filepath.Join(home, ".config", "ftype", "history.jsonl")
}

// Save appends an entry to the history file.
func (h *FileHistoryStore) Save(entry HistoryEntry) error {
	if err := h.fs.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	file, err := h.fs.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	return nil
}

// GetRecent returns the most recent history entries. Malformed lines are skipped.
func (h *FileHistoryStore) GetRecent(limit int) ([]HistoryEntry, error) {
	file, err := h.fs.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var entries []HistoryEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry HistoryEntry
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Path returns the history file path.
func (h *FileHistoryStore) Path() string {
	return h.path
}

// NewLaunchHistoryEntry creates a history entry for a resolved launch.
func NewLaunchHistoryEntry(inv Invocation, cmd *ResolvedCommand, code ExitCode) HistoryEntry {
	original := append([]string{inv.Program}, inv.Args...)
	return HistoryEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Original:  original,
		Extension: cmd.Extension,
		Template:  cmd.Template,
		Resolved:  cmd.Argv(),
		Dir:       cmd.Dir,
		ExitCode:  int(code),
	}
}
