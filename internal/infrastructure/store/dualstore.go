package store

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DualStore persists named collections with two backings: a durable
// JSON file per collection and a process-local in-memory copy.
//
// Save updates memory first and unconditionally; the file write is
// best-effort and a failure is logged, never surfaced. The in-memory
// copy is therefore never behind a successful Save, so Load serves it
// whenever it exists; the durable file is consulted only for
// collections this process has not touched yet. A stale file left by a
// failed durable write can never shadow newer in-process data.
type DualStore struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
	log *logrus.Logger
	mem map[string][]byte
	// purged marks collections cleared by Purge whose durable file could
	// not be removed. Load must not resurrect them; Save lifts the mark.
	purged map[string]bool
	// allPurged is set when Purge could not enumerate the data dir at
	// all, blocking durable reads for any collection not saved since.
	allPurged bool
}

// New creates a DualStore rooted at dir on the given filesystem. The
// directory is created best-effort: environments without a writable
// disk still get a working (memory-only) store.
func New(fs afero.Fs, dir string, log *logrus.Logger) *DualStore {
	s := &DualStore{
		fs:     fs,
		dir:    dir,
		log:    log,
		mem:    make(map[string][]byte),
		purged: make(map[string]bool),
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		log.Warnf("Data directory %q is not writable, running on memory only: %v", dir, err)
	}
	return s
}

// Save stores the collection. The in-memory backing is always updated;
// the durable write may silently fail.
func (s *DualStore) Save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem[name] = data
	delete(s.purged, name)

	if err := afero.WriteFile(s.fs, s.path(name), data, 0o644); err != nil {
		s.log.Warnf("Durable write for collection %q failed, memory copy is authoritative: %v", name, err)
	}
	return nil
}

// Load reads the collection into out. The in-memory copy wins whenever
// one exists; the durable file serves collections from earlier process
// lifetimes. When neither backing holds data, out is left untouched so
// callers see an empty collection.
func (s *DualStore) Load(name string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.mem[name]; ok {
		return json.Unmarshal(data, out)
	}
	if s.allPurged || s.purged[name] {
		return nil
	}

	if data, err := afero.ReadFile(s.fs, s.path(name)); err == nil {
		if jsonErr := json.Unmarshal(data, out); jsonErr != nil {
			s.log.Warnf("Durable data for collection %q is corrupt, reading as empty: %v", name, jsonErr)
		}
	}
	return nil
}

// Purge atomically empties both backings for every known collection.
// A Load immediately afterwards returns empty collections, never stale
// durable data.
func (s *DualStore) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name := range s.mem {
		s.purged[name] = true
		delete(s.mem, name)
	}

	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		s.log.Warnf("Purge could not list data directory %q, blocking durable reads: %v", s.dir, err)
		s.allPurged = true
		return nil
	}
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(info.Name(), ".json")
		path := filepath.Join(s.dir, info.Name())
		if err := s.fs.Remove(path); err != nil {
			s.log.Warnf("Purge could not remove %q, overwriting with empty collection: %v", path, err)
			if writeErr := afero.WriteFile(s.fs, path, []byte("[]\n"), 0o644); writeErr != nil {
				s.log.Warnf("Purge could not empty %q: %v", path, writeErr)
				s.purged[name] = true
				continue
			}
		}
		delete(s.purged, name)
	}
	return nil
}

func (s *DualStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
