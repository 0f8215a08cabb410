package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/report"
	"github.com/rshade/carbonmeter/internal/tui"
)

// NewImpactCmd creates the impact command, which expresses a carbon amount
// as real-world equivalents.
func NewImpactCmd() *cobra.Command {
	var (
		value   float64
		unit    string
		input   string
		jsonOut bool
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Express a footprint as real-world equivalents",
		Long: `Converts a carbon amount into equivalents such as cars off the road for a
year, homes powered, trees grown and meals swapped. The amount comes from
--value and --unit (g, kg, t or lb) or from the total of a summary file.`,
		Example: `  carbonmeter impact --value 2.5 --unit t
  carbonmeter impact --input summary.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := impactInput(cmd, input, value, unit)
			if err != nil {
				return err
			}

			cfg := config.GetGlobalConfig()
			out, err := greenops.ImpactWith(cmd.Context(), cfg.Formatter(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case jsonOut:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			case tui.DetectOutputMode(plain, false, true) == tui.OutputModePlain:
				return tui.WriteImpactPlain(w, out)
			default:
				fmt.Fprintln(w, tui.RenderImpact(out, tui.TerminalWidth()))
				return nil
			}
		},
	}

	cmd.Flags().Float64Var(&value, "value", 0, "carbon amount")
	cmd.Flags().StringVar(&unit, "unit", "kg", "unit of --value: g, kg, t or lb")
	cmd.Flags().StringVarP(&input, "input", "i", "", "use the total of this summary file (- for stdin)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "write the equivalents as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain text output")

	return cmd
}

func impactInput(cmd *cobra.Command, input string, value float64, unit string) (greenops.CarbonInput, error) {
	valueSet := cmd.Flags().Changed("value")
	switch {
	case input != "" && valueSet:
		return greenops.CarbonInput{}, errors.New("--input cannot be combined with --value")
	case input != "":
		var (
			s   *report.Summary
			err error
		)
		if input == "-" {
			s, err = report.Decode(cmd.InOrStdin())
		} else {
			s, err = report.Load(input)
		}
		if err != nil {
			return greenops.CarbonInput{}, err
		}
		return greenops.CarbonInput{Value: s.Total, Unit: "kg"}, nil
	case valueSet:
		return greenops.CarbonInput{Value: value, Unit: unit}, nil
	default:
		return greenops.CarbonInput{}, errors.New("no amount: use --value or --input")
	}
}
