package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubetimer"
)

var (
	scrambleCount  int
	scrambleLen    int
	scrambleSeed   uint64
	scrambleStrict bool
	scrambleCube   bool
	scrambleFormat string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate random move scrambles",
	Long: `Generate random 3x3 scrambles in standard notation.

Examples:
  cubetimer scramble
  cubetimer scramble -n 5 --length 25
  cubetimer scramble --seed 42 --cube
  cubetimer scramble -n 12 --format json`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 1, "Number of scrambles")
	scrambleCmd.Flags().IntVarP(&scrambleLen, "length", "l", 20, "Moves per scramble (default: CUBETIMER_SCRAMBLE_LENGTH or 20)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible sequence")
	scrambleCmd.Flags().BoolVar(&scrambleStrict, "strict-axis", false, "Reject patterns such as U D U that stay on one axis")
	scrambleCmd.Flags().BoolVar(&scrambleCube, "cube", false, "Print the scrambled cube net after each scramble")
	scrambleCmd.Flags().StringVar(&scrambleFormat, "format", "text", "Output format (text, json, yaml)")
}

// scrambleRecord is the json/yaml form of one scramble.
type scrambleRecord struct {
	Index    int      `json:"index" yaml:"index"`
	Scramble string   `json:"scramble" yaml:"scramble"`
	Moves    []string `json:"moves" yaml:"moves"`
	Cube     string   `json:"cube,omitempty" yaml:"cube,omitempty"`
}

type scrambleOptions struct {
	count  int
	length int
	cube   bool
	format string
}

func runScramble(cmd *cobra.Command, args []string) error {
	gen := newGenerator(cmd, scrambleSeed, scrambleStrict)
	opts := scrambleOptions{
		count:  scrambleCount,
		length: scrambleLength(cmd, scrambleLen),
		cube:   scrambleCube,
		format: scrambleFormat,
	}

	logger.Debug("generating scrambles",
		zap.Int("count", opts.count),
		zap.Int("length", opts.length),
		zap.String("format", opts.format),
	)
	return writeScrambles(os.Stdout, gen, opts)
}

func writeScrambles(w io.Writer, gen *cubetimer.Generator, opts scrambleOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	records := make([]scrambleRecord, 0, opts.count)
	for i := 1; i <= opts.count; i++ {
		moves, err := gen.Scramble(opts.length)
		if err != nil {
			return fmt.Errorf("failed to generate scramble: %w", err)
		}

		rec := scrambleRecord{
			Index:    i,
			Scramble: cubetimer.FormatMoves(moves),
			Moves: lo.Map(moves, func(m cubetimer.Move, _ int) string {
				return m.Notation()
			}),
		}
		if opts.cube {
			cube := cubetimer.NewCube()
			cube.Apply(moves...)
			rec.Cube = cube.String()
		}
		records = append(records, rec)
	}

	switch strings.ToLower(opts.format) {
	case "text", "txt":
		for _, rec := range records {
			if opts.count == 1 {
				fmt.Fprintln(w, rec.Scramble)
			} else {
				fmt.Fprintf(w, "Scramble %d: %s\n", rec.Index, rec.Scramble)
			}
			if rec.Cube != "" {
				fmt.Fprintln(w)
				fmt.Fprint(w, rec.Cube)
				fmt.Fprintln(w)
			}
		}

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}

	default:
		return fmt.Errorf("unknown format: %s (use text, json or yaml)", opts.format)
	}

	return nil
}
