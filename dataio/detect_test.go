package dataio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		path, mime, ext string
		kind            Kind
	}{
		{"notes.txt", "text/plain", ".txt", KindText},
		{"README.MD", "text/markdown", ".md", KindText},
		{"data.csv", "text/csv", ".csv", KindTable},
		{"sheet.xlsx", mimeXLSX, ".xlsx", KindTable},
		{"class0.ads", mimeADSA, ".ads", KindBinary},
		{"cfg.json", "application/json", ".json", KindText},
		{"photo.jpeg", "image/jpeg", ".jpeg", KindUnknown},
		{"missing.weird", "application/octet-stream", ".weird", KindBinary},
		{"noext", "application/octet-stream", "", KindBinary},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			mime, ext := DetectMIME(tt.path)
			if mime != tt.mime || ext != tt.ext {
				t.Errorf("DetectMIME = (%q, %q), want (%q, %q)", mime, ext, tt.mime, tt.ext)
			}
			if got := Detect(tt.path); got != tt.kind {
				t.Errorf("Detect = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestDetectSniffsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples")
	if err := os.WriteFile(path, []byte("1 2 3\n4 5 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mime, _ := DetectMIME(path)
	if mime != "text/plain" {
		t.Fatalf("mime = %q, want text/plain", mime)
	}
	if Detect(path) != KindText {
		t.Fatalf("Detect = %v, want text", Detect(path))
	}
}

func TestDetectAll(t *testing.T) {
	if _, err := DetectAll(nil); !errors.Is(err, ErrNoPaths) {
		t.Fatalf("error = %v, want ErrNoPaths", err)
	}

	kinds, err := DetectAll([]string{"a.txt", "b.csv", "c.ads"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{KindText, KindTable, KindBinary}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindAuto, KindText, KindBinary, KindTable, KindUnknown} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("pickle"); err == nil {
		t.Fatal("expected error")
	}
}
