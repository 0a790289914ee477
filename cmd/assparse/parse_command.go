package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"assparse/internal/drawing"
	"assparse/internal/logging"
	"assparse/internal/parser"
	"assparse/internal/parts"
	"assparse/internal/timing"
)

type parseOutput struct {
	Rule      string            `json:"rule" yaml:"rule"`
	Value     any               `json:"value" yaml:"value"`
	Syllables []timing.Syllable `json:"syllables,omitempty" yaml:"syllables,omitempty"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var (
		ruleName string
		format   string
		duration float64
		karaoke  bool
	)

	cmd := &cobra.Command{
		Use:   "parse <text|->",
		Short: "Parse one input with a grammar rule",
		Long: "Parse one input with a grammar rule. The default rule parses a dialogue line.\n" +
			"Pass - to read the input from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(format)
			if err != nil {
				return err
			}
			rule, ok := parser.LookupRule(ruleName)
			if !ok {
				return fmt.Errorf("unknown rule %q (run `assparse rules` for the list)", ruleName)
			}
			timed := cmd.Flags().Changed("duration") || karaoke
			if timed && rule != parser.RuleDialogueParts {
				return fmt.Errorf("--duration and --karaoke apply to %s only", parser.RuleDialogueParts)
			}

			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			value, err := parser.Parse(input, rule)
			if err != nil {
				logger.Debug("parse failed", logging.String(logging.FieldRule, string(rule)), logging.Error(err))
				return err
			}

			out := parseOutput{Rule: string(rule)}
			if ps, ok := value.([]parts.Part); ok && timed {
				if cmd.Flags().Changed("duration") {
					ps = timing.Resolve(ps, duration)
				}
				if karaoke {
					out.Syllables = timing.Karaoke(ps)
				}
				value = ps
			}
			out.Value = parts.Tagged(value)

			if format != formatTable {
				return writeStructured(cmd, format, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderValueTable(value))
			if len(out.Syllables) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderSyllableTable(out.Syllables))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&ruleName, "rule", "r", string(parser.RuleDialogueParts), "Grammar rule to start from")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, or yaml")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Line duration in seconds used to fill unset move/transform times")
	cmd.Flags().BoolVar(&karaoke, "karaoke", false, "Show karaoke syllable timing")
	return cmd
}

func readInput(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func renderValueTable(value any) string {
	switch v := value.(type) {
	case []parts.Part:
		rows := make([][]string, len(v))
		for i, p := range v {
			rows[i] = []string{strconv.Itoa(i + 1), p.Kind(), compactJSON(p)}
		}
		return renderTable([]string{"#", "Kind", "Data"}, rows, []columnAlignment{alignRight})
	case []drawing.Instruction:
		rows := make([][]string, len(v))
		for i, in := range v {
			rows[i] = []string{strconv.Itoa(i + 1), in.Kind(), compactJSON(in)}
		}
		return renderTable([]string{"#", "Kind", "Data"}, rows, []columnAlignment{alignRight})
	case parts.Part:
		return renderTable([]string{"Kind", "Data"}, [][]string{{v.Kind(), compactJSON(v)}}, nil)
	case parts.Color:
		return renderTable([]string{"Value"}, [][]string{{v.String()}}, nil)
	default:
		return renderTable([]string{"Value"}, [][]string{{compactJSON(v)}}, nil)
	}
}

func renderSyllableTable(syllables []timing.Syllable) string {
	rows := make([][]string, len(syllables))
	for i, s := range syllables {
		rows[i] = []string{
			s.Kind,
			formatSeconds(s.Start),
			formatSeconds(s.End()),
			strconv.Quote(s.Text),
		}
	}
	return renderTable([]string{"Karaoke", "Start", "End", "Text"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignRight})
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
