// Package jsonfile provides a GroupStore backed by a single JSON document.
//
// Reads take a shared lock and writes an exclusive lock on "<path>.lock", so
// separate processes never interleave writes. Writes go to a temp file in the
// same directory which is synced and renamed over the document, so a crash
// leaves either the old or the new document, never a partial one.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/mmynk/secretsanta/internal/metrics"
	"github.com/mmynk/secretsanta/internal/models"
	"github.com/mmynk/secretsanta/internal/storage"
)

// Ensure Store implements storage.GroupStore
var _ storage.GroupStore = (*Store)(nil)

const (
	// DefaultLockTimeout bounds how long Load and Save wait for the lock.
	DefaultLockTimeout = 5 * time.Second

	lockRetryDelay = 10 * time.Millisecond
)

// Store implements storage.GroupStore on top of one JSON file.
type Store struct {
	path        string
	lock        *flock.Flock // nil when running unlocked
	lockTimeout time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics

	// mu serializes goroutines of this process; flock only arbitrates
	// between processes since one Flock is shared by every caller here.
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLockTimeout overrides DefaultLockTimeout.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithoutLock disables the cross-process lock.
func WithoutLock() Option {
	return func(s *Store) {
		s.lock = nil
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records load/save latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New creates a Store for the document at path, creating its parent directory.
// The document itself is created on the first Save.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("data file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		path:        path,
		lock:        flock.New(LockPath(path)),
		lockTimeout: DefaultLockTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LockPath returns the lock file used for the document at path.
func LockPath(path string) string {
	return path + ".lock"
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the lock file handle.
func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	return s.lock.Close()
}

// Load reads every group from the document.
func (s *Store) Load(ctx context.Context) (models.Store, error) {
	defer s.metrics.ObserveStore("load", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquire(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Failed to read data file, using empty store", "path", s.path, "error", err)
		}
		return models.Store{}, nil
	}
	return s.decode(data), nil
}

func (s *Store) decode(data []byte) models.Store {
	groups := models.Store{}
	if len(bytes.TrimSpace(data)) == 0 {
		return groups
	}
	if err := json.Unmarshal(data, &groups); err != nil {
		s.logger.Warn("Invalid data file, using empty store", "path", s.path, "error", err)
		return models.Store{}
	}
	if groups == nil {
		return models.Store{}
	}
	groups.Normalize()
	return groups
}

// Save atomically replaces the document with groups.
func (s *Store) Save(ctx context.Context, groups models.Store) error {
	defer s.metrics.ObserveStore("save", time.Now())

	if groups == nil {
		groups = models.Store{}
	}
	data, err := encode(groups)
	if err != nil {
		return fmt.Errorf("failed to encode groups: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquire(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		s.logger.Error("Failed to save data file", "path", s.path, "error", err)
		return fmt.Errorf("failed to save groups: %w", err)
	}
	s.logger.Debug("Data file saved", "path", s.path, "groups", len(groups), "bytes", len(data))
	return nil
}

// encode renders the document indented, with names written as typed.
func encode(groups models.Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(groups); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// acquire takes the file lock (exclusive when write is set) and returns its release.
// If the platform cannot lock, it logs and carries on unlocked.
func (s *Store) acquire(ctx context.Context, write bool) (func(), error) {
	noop := func() {}
	if s.lock == nil {
		return noop, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if write {
		locked, err = s.lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = s.lock.TryRLockContext(ctx, lockRetryDelay)
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrLockTimeout, s.lock.Path(), err)
	case err != nil:
		s.logger.Warn("File lock unavailable, continuing unlocked", "lock", s.lock.Path(), "error", err)
		return noop, nil
	case !locked:
		return nil, fmt.Errorf("%w: %s", storage.ErrLockTimeout, s.lock.Path())
	}

	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("Failed to release file lock", "lock", s.lock.Path(), "error", err)
		}
	}, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	syncDir(dir)
	return nil
}

// syncDir is best effort: some filesystems refuse fsync on directories.
func syncDir(dir string) {
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	defer f.Close()
	_ = f.Sync()
}
