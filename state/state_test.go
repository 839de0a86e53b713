package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.toml")
	s := NewStoreAt(path)

	s.Save(Data{Effect: "ticker", Banner: "compact", Muted: true})

	got, ok := s.Load()
	if !ok {
		t.Fatal("Expected load to succeed")
	}
	want := Data{Effect: "ticker", Banner: "compact", Muted: true}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "absent.toml"))
	if _, ok := s.Load(); ok {
		t.Error("Expected missing file to report not ok")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("effect = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStoreAt(path)
	if _, ok := s.Load(); ok {
		t.Error("Expected corrupt file to report not ok")
	}
}

func TestDisabledStoreIsQuiet(t *testing.T) {
	s := NewStoreAt("")
	s.Save(Data{Effect: "matrix"})
	if _, ok := s.Load(); ok {
		t.Error("Expected disabled store to report not ok")
	}
	s.Mutate(func(d *Data) { d.Effect = "wave" })
}

func TestMutatePreservesOtherFields(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "state.toml"))
	s.Save(Data{Effect: "matrix", Muted: true})

	s.Mutate(func(d *Data) { d.Effect = "binary" })

	got, ok := s.Load()
	if !ok {
		t.Fatal("Expected load to succeed")
	}
	if got.Effect != "binary" || !got.Muted {
		t.Errorf("Expected mutation to keep muted flag, got %+v", got)
	}
}

func TestMutateStartsFromZero(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "state.toml"))
	s.Mutate(func(d *Data) { d.Banner = "initials" })

	got, ok := s.Load()
	if !ok {
		t.Fatal("Expected load to succeed")
	}
	if got.Banner != "initials" || got.Effect != "" {
		t.Errorf("Expected fresh state with banner set, got %+v", got)
	}
}
