package dataio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/internal/testutil"
)

func TestSaveLoadArrayAuto(t *testing.T) {
	dir := t.TempDir()
	a := array.MustNew([]int{2, 3}, testutil.Ramp(1, 6))

	saver, err := NewSaver(KindAuto)
	if err != nil {
		t.Fatal(err)
	}
	loader, err := NewLoader(KindAuto)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"m.txt", "m.ads", "m.csv", "m.xlsx", filepath.Join("nested", "m.bin")} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := saver.SaveArray(path, a); err != nil {
				t.Fatal(err)
			}
			back, err := loader.LoadArray(path)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireShape(t, back.Shape(), a.Shape())
			testutil.RequireSliceNearlyEqual(t, back.Data(), a.Data(), 1e-12)
		})
	}
}

func TestLoaderFixedKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "class0.dat")
	if err := os.WriteFile(path, []byte("1 2\n3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, _ := NewLoader(KindText)
	a, err := text.LoadArray(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireShape(t, a.Shape(), []int{2, 2})

	bin, _ := NewLoader(KindBinary)
	if _, err := bin.LoadArray(path); !errors.Is(err, ErrFormat) {
		t.Fatalf("binary load of text error = %v, want ErrFormat", err)
	}
}

func TestLoaderText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")

	saver, _ := NewSaver(KindAuto)
	if err := saver.SaveText(path, "hello\n"); err != nil {
		t.Fatal(err)
	}
	loader, _ := NewLoader(KindAuto)
	got, err := loader.LoadText(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello\n" {
		t.Fatalf("LoadText = %q", got)
	}

	if err := saver.SaveText(filepath.Join(dir, "x.ads"), "nope"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("SaveText to binary error = %v, want ErrNotImplemented", err)
	}
}

func TestNotImplemented(t *testing.T) {
	if _, err := NewLoader(KindUnknown); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("NewLoader error = %v, want ErrNotImplemented", err)
	}
	if _, err := NewSaver(Kind(17)); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("NewSaver error = %v, want ErrNotImplemented", err)
	}

	loader, _ := NewLoader(KindAuto)
	if _, err := loader.LoadArray("picture.png"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("LoadArray error = %v, want ErrNotImplemented", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader, _ := NewLoader(KindBinary)
	if _, err := loader.LoadArray(filepath.Join(t.TempDir(), "none.ads")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
}
