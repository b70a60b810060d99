package dataio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	mimeOctetStream = "application/octet-stream"
	mimeCSV         = "text/csv"
	mimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeADSA        = "application/x-adsa"
)

var extensionMap = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  mimeCSV,
	".json": "application/json",
	".xml":  "application/xml",
	".html": "text/html",
	".py":   "text/x-python",
	".java": "text/x-java-source",
	".c":    "text/x-c",
	".cpp":  "text/x-c++",
	".js":   "application/javascript",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".xlsx": mimeXLSX,
	".ads":  mimeADSA,
}

// DetectMIME returns the MIME type of path and the extension it was derived
// from. Known extensions are mapped directly. Otherwise an existing file is
// sniffed by content, and anything else is application/octet-stream.
func DetectMIME(path string) (mime, ext string) {
	ext = strings.ToLower(filepath.Ext(path))
	if m, ok := extensionMap[ext]; ok {
		return m, ext
	}

	if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
		if m, err := mimetype.DetectFile(path); err == nil {
			mime, _, _ = strings.Cut(m.String(), ";")
			if ext == "" {
				ext = m.Extension()
			}
			return mime, ext
		}
	}

	return mimeOctetStream, ext
}

// Detect returns the storage kind of path.
func Detect(path string) Kind {
	mime, _ := DetectMIME(path)
	return kindOf(mime)
}

// DetectAll returns the kind of every path, in order.
func DetectAll(paths []string) ([]Kind, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	out := make([]Kind, len(paths))
	for i, p := range paths {
		out[i] = Detect(p)
	}
	return out, nil
}

func kindOf(mime string) Kind {
	switch {
	case mime == mimeCSV, mime == mimeXLSX:
		return KindTable
	case mime == mimeOctetStream, mime == mimeADSA:
		return KindBinary
	case strings.HasPrefix(mime, "text/"),
		mime == "application/json",
		mime == "application/xml",
		mime == "application/javascript":
		return KindText
	default:
		return KindUnknown
	}
}
