package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-dataset/dataio"
	"github.com/cwbudde/algo-dataset/outlier"
	"github.com/cwbudde/algo-dataset/stats"
)

func runInspect(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	kindName := fs.String("type", "auto", "file kind: auto, text, binary or table")
	zLimit := fs.Float64("z", 3, "z-score at which a value counts as an outlier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("inspect: no files given")
	}

	kind, err := dataio.ParseKind(*kindName)
	if err != nil {
		return err
	}
	loader, err := dataio.NewLoader(kind)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tShape\tMean\tStd\tMin\tMax\tOutliers\n")
	fmt.Fprintf(tw, "----\t-----\t----\t---\t---\t---\t--------\n")
	for _, path := range fs.Args() {
		a, err := loader.LoadArray(path)
		if err != nil {
			return err
		}
		s := stats.Calculate(a.Data())
		extreme, err := outlier.Detect(a.Data(), *zLimit, outlier.ZScore)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%v\t%.6g\t%.6g\t%.6g\t%.6g\t%d\n", path, a.Shape(), s.Mean, s.Std, s.Min, s.Max, len(extreme))
	}
	return tw.Flush()
}

func runDetect(args []string, out io.Writer) error {
	kinds, err := dataio.DetectAll(args)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tMIME\tKind\n")
	for i, path := range args {
		mime, _ := dataio.DetectMIME(path)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", path, mime, kinds[i])
	}
	return tw.Flush()
}
