// Package app wires the dataset adapter and the date-shift transform into a
// single load, shift, save run.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JonMunkholm/dateshift/internal/dataset"
	"github.com/JonMunkholm/dateshift/internal/logging"
	"github.com/JonMunkholm/dateshift/internal/shift"
)

// Job describes one run.
type Job struct {
	Input  string
	Column string
	Output string
	Range  shift.Range
}

// Result reports a completed run.
type Result struct {
	RunID   string
	Summary shift.Summary
}

// Runner executes Jobs. Zero-value fields fall back to defaults in Run.
type Runner struct {
	Logger *slog.Logger
	// NewShifter builds the transform for one run; the logger passed in
	// already carries the run ID.
	NewShifter   func(logger *slog.Logger) *shift.Shifter
	ReadOptions  dataset.ReadOptions
	WriteOptions dataset.WriteOptions
}

// Run loads job.Input, shifts job.Column and writes job.Output. Nothing is
// written when any step fails.
func (r *Runner) Run(ctx context.Context, job Job) (Result, error) {
	runID := uuid.New().String()

	base := r.Logger
	if base == nil {
		base = logging.Discard()
	}
	logger := logging.WithFields(logging.NewContext(ctx, base), "run_id", runID)

	newShifter := r.NewShifter
	if newShifter == nil {
		newShifter = func(l *slog.Logger) *shift.Shifter { return shift.New(shift.WithLogger(l)) }
	}

	if err := ctx.Err(); err != nil {
		return Result{RunID: runID}, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Debug("loading input", "input", job.Input)
	table, err := dataset.Load(job.Input, r.ReadOptions)
	if err != nil {
		return Result{RunID: runID}, fmt.Errorf("load input: %w", err)
	}

	shifted, summary, err := newShifter(logger).ShiftColumn(table, job.Column, job.Range)
	if err != nil {
		return Result{RunID: runID}, fmt.Errorf("shift column %q: %w", job.Column, err)
	}

	if err := ctx.Err(); err != nil {
		return Result{RunID: runID, Summary: summary}, fmt.Errorf("run cancelled: %w", err)
	}

	if err := dataset.Save(job.Output, shifted, r.WriteOptions); err != nil {
		return Result{RunID: runID, Summary: summary}, fmt.Errorf("save output: %w", err)
	}

	logger.Info("dates shifted",
		"column", job.Column,
		"input", job.Input,
		"output", job.Output,
		"min_shift", job.Range.Min,
		"max_shift", job.Range.Max,
		"rows", summary.Rows,
		"shifted", summary.Shifted,
		"unparsed", summary.Unparsed,
	)

	return Result{RunID: runID, Summary: summary}, nil
}
