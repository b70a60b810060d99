package dataio

import "fmt"

// Kind is the storage kind of a file.
type Kind int

const (
	// KindAuto detects the kind from each path.
	KindAuto Kind = iota
	// KindText is a plain text file.
	KindText
	// KindBinary is the ADSA binary array format or an unrecognized binary file.
	KindBinary
	// KindTable is a CSV or XLSX table.
	KindTable
	// KindUnknown is a recognized format that has no loader.
	KindUnknown
)

var kindNames = [...]string{
	KindAuto:    "auto",
	KindText:    "text",
	KindBinary:  "binary",
	KindTable:   "table",
	KindUnknown: "unknown",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("dataio: unknown file kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
