// Command dsprep assembles labelled train/validation/test partitions from
// per-class data files.
//
// Usage:
//
//	dsprep assemble -config dsprep.yaml [-debug]
//	dsprep inspect [-type auto|text|binary|table] [-z 3] file ...
//	dsprep detect file ...
//	dsprep version
//
// The assemble config lists one file per class. Class IDs follow the order
// of that list.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "assemble":
		err = runAssemble(os.Args[2:], os.Stdout)
	case "inspect":
		err = runInspect(os.Args[2:], os.Stdout)
	case "detect":
		err = runDetect(os.Args[2:], os.Stdout)
	case "version", "--version", "-v":
		fmt.Printf("dsprep version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: dsprep <command> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  assemble   split, label and normalize classes from a YAML config\n")
	fmt.Fprintf(os.Stderr, "  inspect    print shape and statistics of data files\n")
	fmt.Fprintf(os.Stderr, "  detect     print the detected MIME type and kind of files\n")
	fmt.Fprintf(os.Stderr, "  version    print the version\n")
}
