package dataio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-dataset/array"
)

// Loader reads files of one storage kind.
type Loader struct {
	kind Kind
}

// NewLoader returns a loader for kind. KindAuto detects the kind of every
// path separately. KindUnknown and out-of-range kinds fail with
// [ErrNotImplemented].
func NewLoader(kind Kind) (*Loader, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return &Loader{kind: kind}, nil
}

// Kind returns the kind fixed at construction.
func (l *Loader) Kind() Kind { return l.kind }

// LoadText returns the contents of a text file.
func (l *Loader) LoadText(path string) (string, error) {
	kind := resolve(l.kind, path)
	if kind != KindText && kind != KindTable {
		return "", fmt.Errorf("%w: load text from %s file %s", ErrNotImplemented, kind, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// LoadArray decodes a numeric array from path.
func (l *Loader) LoadArray(path string) (*array.Array, error) {
	kind := resolve(l.kind, path)

	var decode func(io.Reader) (*array.Array, error)
	switch kind {
	case KindText:
		decode = ReadMatrix
	case KindBinary:
		decode = ReadArray
	case KindTable:
		decode = ReadCSV
		if isXLSX(path) {
			decode = ReadXLSX
		}
	default:
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotImplemented, kind, path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	a, err := decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return a, nil
}

// Saver writes files of one storage kind.
type Saver struct {
	kind Kind
}

// NewSaver returns a saver for kind. With KindAuto the kind is derived from
// each target path's extension.
func NewSaver(kind Kind) (*Saver, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return &Saver{kind: kind}, nil
}

// Kind returns the kind fixed at construction.
func (s *Saver) Kind() Kind { return s.kind }

// SaveText writes text to path, creating parent directories.
func (s *Saver) SaveText(path, text string) error {
	kind := resolve(s.kind, path)
	if kind != KindText && kind != KindTable {
		return fmt.Errorf("%w: save text as %s file %s", ErrNotImplemented, kind, path)
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

// SaveArray encodes a to path, creating parent directories.
func (s *Saver) SaveArray(path string, a *array.Array) error {
	kind := resolve(s.kind, path)

	var encode func(io.Writer, *array.Array) error
	switch kind {
	case KindText:
		encode = WriteMatrix
	case KindBinary:
		encode = WriteArray
	case KindTable:
		encode = WriteCSV
		if isXLSX(path) {
			encode = WriteXLSX
		}
	default:
		return fmt.Errorf("%w: %s (%s)", ErrNotImplemented, kind, path)
	}

	return writeFile(path, func(w io.Writer) error { return encode(w, a) })
}

func checkKind(kind Kind) error {
	if kind < KindAuto || kind >= KindUnknown {
		return fmt.Errorf("%w: %s", ErrNotImplemented, kind)
	}
	return nil
}

func resolve(kind Kind, path string) Kind {
	if kind == KindAuto {
		return Detect(path)
	}
	return kind
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
