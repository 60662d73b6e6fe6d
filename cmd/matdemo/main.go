// SPDX-License-Identifier: MIT

// Command matdemo generates a random integer matrix, prints it, and reports
// its determinant and row-reduced form.
//
// Configuration comes from the environment:
//
//	MATDEMO_ROWS, MATDEMO_COLS   shape (default 3x3)
//	MATDEMO_MAX                  inclusive upper bound of entries (default 10)
//	MATDEMO_SEED                 fixed seed; negative uses the process-wide source
//	MATDEMO_LOG_LEVEL            debug, info, warn, error (default info)
//	MATDEMO_LOG_DEV              console logging instead of JSON
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/linalg/matrix"
	"go.uber.org/zap"
)

func main() {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	if err = run(cfg, os.Stdout, logger); err != nil {
		logger.Error("matdemo failed", zap.Error(err))
		os.Exit(1)
	}
}

// run executes the demo against w.
func run(cfg *Config, w io.Writer, log *zap.Logger) error {
	var opts []matrix.Option
	if cfg.Seeded() {
		opts = append(opts, matrix.WithSeed(cfg.Seed))
	}
	log.Debug("generating matrix",
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Int("max", cfg.Max),
		zap.Bool("seeded", cfg.Seeded()),
	)

	m, err := matrix.Generate(cfg.Rows, cfg.Cols, cfg.Max, opts...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprint(w, "matrix:")
	if err = matrix.Fprint(w, m); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	fmt.Fprintln(w)

	det, err := m.Determinant()
	switch {
	case err == nil:
		log.Info("determinant", zap.Float64("det", det))
		fmt.Fprintf(w, "det: %g\n", det)
	case errors.Is(err, matrix.ErrNonSquare), errors.Is(err, matrix.ErrUnsupportedShape):
		log.Warn("determinant skipped", zap.Error(err))
	default:
		return fmt.Errorf("determinant: %w", err)
	}

	reduced, ok, err := matrix.RowReduce(m)
	if err != nil {
		return fmt.Errorf("row reduce: %w", err)
	}
	if !ok {
		log.Warn("row reduction skipped", zap.String("reason", "matrix is not square"))
		return nil
	}
	log.Info("row reduced", zap.Bool("identity", isIdentity(reduced)))
	fmt.Fprint(w, "reduced:")
	if err = matrix.Fprint(w, reduced); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	fmt.Fprintln(w)

	return nil
}

// isIdentity reports whether a square m equals I within the default tolerance.
func isIdentity(m *matrix.Dense) bool {
	id, err := matrix.IdentityLike(m)
	if err != nil {
		return false
	}

	return matrix.Equal(m, id)
}
