// Package core provides small numeric and buffer helpers shared by the
// dataset-preparation packages.
package core
