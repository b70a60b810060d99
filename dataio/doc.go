// Package dataio detects file types and loads or saves numeric arrays and
// text.
//
// Three storage kinds are supported: whitespace separated text matrices,
// the versioned ADSA binary array format, and tables (CSV or XLSX). A
// [Loader] or [Saver] fixes its kind at construction; [KindAuto] detects
// the kind of every path it is given.
package dataio
