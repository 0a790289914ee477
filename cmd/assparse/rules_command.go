package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"assparse/internal/parser"
)

type ruleOutput struct {
	Name  string `json:"name" yaml:"name"`
	Group string `json:"group" yaml:"group"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:         "rules",
		Short:       "List the grammar rules accepted by parse and the parse server",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(format)
			if err != nil {
				return err
			}
			rules := parser.Rules()
			out := make([]ruleOutput, len(rules))
			for i, rule := range rules {
				out[i] = ruleOutput{Name: string(rule), Group: ruleGroup(rule)}
			}
			if format != formatTable {
				return writeStructured(cmd, format, out)
			}
			rows := make([][]string, len(out))
			for i, r := range out {
				rows[i] = []string{r.Name, r.Group}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Rule", "Group"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, or yaml")
	return cmd
}

func ruleGroup(rule parser.Rule) string {
	name := string(rule)
	switch {
	case strings.HasPrefix(name, "tag_"):
		return "tag"
	case rule == parser.RuleDialogueParts || rule == parser.RuleDrawingInstructions:
		return "entry"
	default:
		return "primitive"
	}
}
