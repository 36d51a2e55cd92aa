package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/JonMunkholm/dateshift/internal/app"
	"github.com/JonMunkholm/dateshift/internal/config"
	"github.com/JonMunkholm/dateshift/internal/dataset"
	"github.com/JonMunkholm/dateshift/internal/shift"
)

type rootOptions struct {
	minShift   string
	maxShift   string
	seed       int64
	dateLayout string
	delimiter  string
	sheet      string
}

// newRootCmd builds the dateshift command. Flag defaults come from cfg, so the
// environment sets defaults and flags override them.
func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "dateshift <input_file> <column_name> <output_file>",
		Short: "Shift the dates in one column by a random number of days",
		Long: `dateshift reads a CSV (or .xlsx) file, moves every date in the named column
by a whole number of days drawn independently per row from
[--min_shift, --max_shift], and writes the result to a new file.

Values that cannot be parsed as dates are kept unchanged and reported as warnings.`,
		Example: `  dateshift input.csv visit_date output.csv
  dateshift input.csv visit_date output.csv --min_shift -10 --max_shift 10
  dateshift input.csv visit_date output.csv --min_shift 0 --max_shift 365 --seed 42`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument errors above print usage; runtime failures below do not.
			cmd.SilenceUsage = true
			return runShift(cmd, args, opts, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.minShift, "min_shift", cfg.Shift.MinShift, "minimum number of days to shift (env DATESHIFT_MIN_SHIFT)")
	flags.StringVar(&opts.maxShift, "max_shift", cfg.Shift.MaxShift, "maximum number of days to shift (env DATESHIFT_MAX_SHIFT)")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for reproducible shifts; random when unset (env DATESHIFT_SEED)")
	flags.StringVar(&opts.dateLayout, "date_layout", cfg.Shift.DateLayout, "Go time layout for shifted values; keeps input precision when empty (env DATESHIFT_DATE_LAYOUT)")
	flags.StringVar(&opts.delimiter, "delimiter", cfg.Dataset.Delimiter, "field separator for delimited files (env DATASET_DELIMITER)")
	flags.StringVar(&opts.sheet, "sheet", cfg.Dataset.Sheet, "worksheet to read from .xlsx input; first sheet when empty (env DATASET_SHEET)")
	cmd.SetGlobalNormalizationFunc(underscoreFlags)

	return cmd
}

// underscoreFlags lets --min-shift and --min_shift name the same flag.
func underscoreFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "-", "_"))
}

func runShift(cmd *cobra.Command, args []string, opts rootOptions, cfg *config.Config, logger *slog.Logger) error {
	eff := *cfg
	eff.Shift.MinShift = opts.minShift
	eff.Shift.MaxShift = opts.maxShift
	eff.Shift.DateLayout = opts.dateLayout
	eff.Dataset.Delimiter = opts.delimiter
	eff.Dataset.Sheet = opts.sheet
	if cmd.Flags().Changed("seed") {
		seed := opts.seed
		eff.Shift.Seed = &seed
	}
	if err := eff.Validate(); err != nil {
		return err
	}

	rng, err := shift.ParseRange(eff.Shift.MinShift, eff.Shift.MaxShift)
	if err != nil {
		return err
	}

	runner := &app.Runner{
		Logger: logger,
		NewShifter: func(l *slog.Logger) *shift.Shifter {
			return shift.New(
				shift.WithLogger(l),
				shift.WithSource(newSource(eff.Shift.Seed)),
				shift.WithFormatter(shift.NewFormatter(eff.Shift.DateLayout)),
			)
		},
		ReadOptions: dataset.ReadOptions{
			Delimiter:   eff.Dataset.DelimiterRune(),
			MaxFileSize: eff.Dataset.MaxFileSize,
			Sheet:       eff.Dataset.Sheet,
		},
		WriteOptions: dataset.WriteOptions{
			Delimiter: eff.Dataset.DelimiterRune(),
		},
	}

	_, err = runner.Run(cmd.Context(), app.Job{
		Input:  args[0],
		Column: args[1],
		Output: args[2],
		Range:  rng,
	})
	return err
}

func newSource(seed *int64) shift.Source {
	if seed == nil {
		return shift.NewRandomSource()
	}
	return shift.NewSource(*seed)
}
