package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/report"
)

// ErrNoInput is returned when neither --input nor --total/--category is given.
var ErrNoInput = errors.New("no emissions data: use --input, --total or --category")

// summaryFlags are the input flags shared by render and show.
type summaryFlags struct {
	input      string
	total      float64
	categories []string
}

func (f *summaryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "emissions summary JSON file (- for stdin)")
	cmd.Flags().Float64Var(&f.total, "total", 0, "total footprint in kg CO2e (default: sum of --category values)")
	cmd.Flags().StringArrayVar(&f.categories, "category", nil, "category value as key=value, repeatable")
}

// load returns the summary described by the flags. --input takes precedence;
// otherwise the summary is built from --total and --category.
func (f *summaryFlags) load(cmd *cobra.Command) (*report.Summary, error) {
	if f.input != "" {
		if cmd.Flags().Changed("total") || len(f.categories) > 0 {
			return nil, errors.New("--input cannot be combined with --total or --category")
		}
		if f.input == "-" {
			return report.Decode(cmd.InOrStdin())
		}
		return report.Load(f.input)
	}

	totalSet := cmd.Flags().Changed("total")
	if !totalSet && len(f.categories) == 0 {
		return nil, ErrNoInput
	}

	s := &report.Summary{Total: f.total, Details: make(map[string]float64, len(f.categories))}
	for _, pair := range f.categories {
		key, v, err := report.ParseCategory(pair)
		if err != nil {
			return nil, err
		}
		s.Details[key] += v
	}
	if !totalSet {
		s.Total = s.DetailsTotal()
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("--total: %w", err)
	}
	return s, nil
}
