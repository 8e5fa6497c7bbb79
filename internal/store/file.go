package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileStore keeps one YAML file per client under a base directory.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
	now     func() time.Time
}

type fileRecord struct {
	Client    string            `yaml:"client"`
	UpdatedAt time.Time         `yaml:"updated_at"`
	Inputs    map[string]string `yaml:"inputs"`
}

// NewFileStore creates a file store rooted at baseDir, creating it if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", baseDir, err)
	}
	return &FileStore{baseDir: baseDir, now: time.Now}, nil
}

func (s *FileStore) path(clientID string) string {
	return filepath.Join(s.baseDir, clientID+".yaml")
}

// Get reads the client's record.
func (s *FileStore) Get(ctx context.Context, clientID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if err := validateClientID(clientID); err != nil {
		return Record{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(clientID))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{Inputs: domain.ScenarioInputs{}}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to read record for %s: %w", clientID, err)
	}

	var fr fileRecord
	if err := yaml.Unmarshal(data, &fr); err != nil {
		return Record{}, fmt.Errorf("failed to parse record for %s: %w", clientID, err)
	}
	inputs := make(domain.ScenarioInputs, len(fr.Inputs))
	for k, v := range fr.Inputs {
		if v != "" {
			inputs[domain.Field(k)] = v
		}
	}
	return Record{Inputs: inputs, UpdatedAt: fr.UpdatedAt}, nil
}

// Save replaces the client's record file.
func (s *FileStore) Save(ctx context.Context, clientID string, inputs domain.ScenarioInputs) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if err := validateClientID(clientID); err != nil {
		return Record{}, err
	}

	rec := Record{Inputs: compact(inputs), UpdatedAt: s.now().UTC()}
	fr := fileRecord{Client: clientID, UpdatedAt: rec.UpdatedAt, Inputs: make(map[string]string, len(rec.Inputs))}
	for k, v := range rec.Inputs {
		fr.Inputs[string(k)] = v
	}
	data, err := yaml.Marshal(fr)
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode record for %s: %w", clientID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := atomicWrite(s.path(clientID), data); err != nil {
		return Record{}, fmt.Errorf("failed to write record for %s: %w", clientID, err)
	}
	return rec, nil
}

// atomicWrite writes to a temp file and renames it into place.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
