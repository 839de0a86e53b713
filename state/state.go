package state

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Data is everything the app remembers between runs. The zero value
// is the correct default for a fresh install.
type Data struct {
	Effect string `toml:"effect"`
	Banner string `toml:"banner"`
	Muted  bool   `toml:"muted"`
}

// Store reads and writes Data as a small TOML file under the user
// config directory. Persistence is a convenience: every failure is
// swallowed and the caller falls back to defaults.
type Store struct {
	path string
}

// NewStore resolves the default state path. When the user config
// directory cannot be determined the store stays disabled and all
// operations are no-ops.
func NewStore() *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &Store{}
	}
	return &Store{path: filepath.Join(dir, "termfolio", "state.toml")}
}

// NewStoreAt uses an explicit file path. Empty disables the store.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path, empty when disabled.
func (s *Store) Path() string { return s.path }

// Load reads the state file. ok is false when the store is disabled,
// the file is absent, or it does not parse.
func (s *Store) Load() (Data, bool) {
	if s.path == "" {
		return Data{}, false
	}
	var d Data
	if _, err := toml.DecodeFile(s.path, &d); err != nil {
		return Data{}, false
	}
	return d, true
}

// Save writes the state file, creating the directory if needed.
// Failures are dropped.
func (s *Store) Save(d Data) {
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	f, err := os.Create(s.path)
	if err != nil {
		return
	}
	defer f.Close()
	_ = toml.NewEncoder(f).Encode(d)
}

// Mutate loads the current state, hands it to fn and saves the
// result. Missing or unreadable state starts from the zero value.
func (s *Store) Mutate(fn func(d *Data)) {
	d, _ := s.Load()
	fn(&d)
	s.Save(d)
}
