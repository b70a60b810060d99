package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/dataio"
	"github.com/cwbudde/algo-dataset/dataset"
	"github.com/cwbudde/algo-dataset/internal/config"
	"github.com/cwbudde/algo-dataset/internal/logging"
	"github.com/cwbudde/algo-dataset/spectrum"
)

func runAssemble(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	configPath := fs.String("config", "dsprep.yaml", "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Debug || *debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", *configPath),
		zap.Int("classes", len(cfg.Classes)),
		zap.Stringer("policy", cfg.Policy))

	written, err := assemble(cfg, logger)
	if err != nil {
		logger.Error("assembly failed", zap.Error(err))
		return err
	}

	for _, path := range written {
		fmt.Fprintln(out, path)
	}
	return nil
}

// assemble runs the whole pipeline for cfg and returns the written files.
func assemble(cfg *config.Config, logger *zap.Logger) ([]string, error) {
	loader, err := dataio.NewLoader(cfg.FileType)
	if err != nil {
		return nil, err
	}
	set, err := dataset.Load(loader, cfg.Classes, logger)
	if err != nil {
		return nil, err
	}

	first, err := set.Class(0)
	if err != nil {
		return nil, err
	}
	cuts, err := cfg.Split.Resolve(first.Len())
	if err != nil {
		return nil, err
	}

	opts := []dataset.Option{
		dataset.WithPolicy(cfg.Policy),
		dataset.WithWorkers(cfg.Workers),
		dataset.WithSamplesPerClass(cfg.SamplesPerClass),
		dataset.WithLogger(logger),
	}
	if len(cfg.FeatureShape) > 0 {
		opts = append(opts, dataset.WithFeatureShape(cfg.FeatureShape...))
	}
	if cfg.Spectrum.Enabled {
		var sopts []spectrum.Option
		if cfg.Spectrum.Hann {
			sopts = append(sopts, spectrum.WithHann())
		}
		if cfg.Spectrum.Size > 0 {
			sopts = append(sopts, spectrum.WithSize(cfg.Spectrum.Size))
		}
		opts = append(opts, dataset.WithSpectrum(sopts...))
	}

	pairs, err := set.Assemble(cuts, opts...)
	if err != nil {
		return nil, err
	}

	saver, err := dataio.NewSaver(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	ext := extension(cfg.Output.Format)
	var written []string
	for p, pair := range pairs {
		name := partitionName(p, len(pairs))
		logger.Info("partition ready",
			zap.String("partition", name),
			zap.Int("samples", pair.Len()),
			zap.Ints("shape", pair.Data.Shape))

		if cfg.BatchSize == 0 {
			files, err := savePair(saver, cfg.Output.Dir, name, ext, pair)
			if err != nil {
				return nil, err
			}
			written = append(written, files...)
			continue
		}

		batches, err := pair.Batches(cfg.BatchSize, rng)
		if err != nil {
			return nil, err
		}
		for b, batch := range batches {
			files, err := savePair(saver, cfg.Output.Dir, fmt.Sprintf("%s_batch%03d", name, b), ext, batch)
			if err != nil {
				return nil, err
			}
			written = append(written, files...)
		}
	}

	return written, nil
}

func savePair(saver *dataio.Saver, dir, name, ext string, pair dataset.Pair) ([]string, error) {
	parts := []struct {
		suffix string
		data   array.Float32
	}{
		{"data", pair.Data},
		{"labels", pair.Labels},
	}

	files := make([]string, 0, len(parts))
	for _, part := range parts {
		a, err := array.FromFloat32(part.data)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", name, part.suffix, ext))
		if err := saver.SaveArray(path, a); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func partitionName(p, count int) string {
	switch {
	case count == 2:
		return [...]string{"train", "test"}[p]
	case count == 3:
		return [...]string{"train", "val", "test"}[p]
	default:
		return fmt.Sprintf("partition%d", p)
	}
}

func extension(kind dataio.Kind) string {
	switch kind {
	case dataio.KindText:
		return ".txt"
	case dataio.KindTable:
		return ".csv"
	default:
		return ".ads"
	}
}
