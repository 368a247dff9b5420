package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klwxsrx/ticketgate/internal/session/app/session"
)

const fileMode = 0o600

var errCorrupted = errors.New("corrupted storage document")

// fileStorage keeps all keys in one JSON document, rewritten atomically on every change.
// Values must be valid JSON.
type fileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) session.Storage {
	return &fileStorage{path: path}
}

func (s *fileStorage) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return nil, false, err
	}

	value, ok := values[key]
	if !ok {
		return nil, false, nil
	}

	return value, true, nil
}

func (s *fileStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, _, err := s.readForUpdate()
	if err != nil {
		return err
	}

	values[key] = value
	return s.write(values)
}

func (s *fileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, corrupted, err := s.readForUpdate()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok && !corrupted {
		return nil
	}

	delete(values, key)
	return s.write(values)
}

func (s *fileStorage) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	values := make(map[string]json.RawMessage)
	if len(data) == 0 {
		return values, nil
	}
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errCorrupted, s.path, err)
	}

	return values, nil
}

// readForUpdate starts from an empty document when the stored one does not decode, so writes replace it.
func (s *fileStorage) readForUpdate() (values map[string]json.RawMessage, corrupted bool, err error) {
	values, err = s.read()
	if errors.Is(err, errCorrupted) {
		return make(map[string]json.RawMessage), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	return values, false, nil
}

func (s *fileStorage) write(values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
