package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/prism/scale"
)

var (
	convertFamily string
	convertScale  string
	convertFrom   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [values...]",
	Short: "Convert values between domain-range conventions",
	Long: `Convert maps values expressed in a caller convention into a function's
reference domain (default), or back out of it with --from.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFamily, "family", "1",
		"reference domain family: 1, 10, 100, degrees or int")
	convertCmd.Flags().StringVar(&convertScale, "scale", "",
		"caller convention (default: ambient scale)")
	convertCmd.Flags().BoolVar(&convertFrom, "from", false,
		"map out of the reference domain instead of into it")

	rootCmd.AddCommand(convertCmd)
}

func conversion() (func(float64, ...scale.Scale) float64, error) {
	type pair struct {
		to   func(float64, ...scale.Scale) float64
		from func(float64, ...scale.Scale) float64
	}
	families := map[string]pair{
		"1":       {scale.ToDomain1, scale.FromRange1},
		"10":      {scale.ToDomain10, scale.FromRange10},
		"100":     {scale.ToDomain100, scale.FromRange100},
		"degrees": {scale.ToDomainDegrees, scale.FromRangeDegrees},
		"int":     {scale.ToDomainInt, scale.FromRangeInt},
	}
	p, ok := families[convertFamily]
	if !ok {
		return nil, fmt.Errorf("unknown family %q", convertFamily)
	}
	if convertFrom {
		return p.from, nil
	}
	return p.to, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	convert, err := conversion()
	if err != nil {
		return err
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parsing value %q: %w", arg, err)
		}
		values[i] = v
	}

	run := func() {
		out := scale.MapSlice(values, func(v float64) float64 { return convert(v) })
		for i, v := range out {
			fmt.Fprintf(cmd.OutOrStdout(), "%g -> %g\n", values[i], v)
		}
	}

	if convertScale != "" {
		s, err := scale.Parse(convertScale)
		if err != nil {
			return err
		}
		return scale.With(s, run)
	}
	run()
	return nil
}
