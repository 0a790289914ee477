package parser

import (
	"fmt"
	"sort"

	"assparse/internal/drawing"
	"assparse/internal/parts"
)

// Rule names an entry point into the grammar.
type Rule string

const (
	RuleDialogueParts       Rule = "dialogueParts"
	RuleEnclosedTags        Rule = "enclosedTags"
	RuleNewline             Rule = "newline"
	RuleHardspace           Rule = "hardspace"
	RuleText                Rule = "text"
	RuleComment             Rule = "comment"
	RuleDrawingInstructions Rule = "drawingInstructions"
	RuleDecimal             Rule = "decimal"
	RuleUnsignedDecimal     Rule = "unsignedDecimal"
	RuleDecimalInt32        Rule = "decimalInt32"
	RuleHexInt32            Rule = "hexInt32"
	RuleDecimalOrHexInt32   Rule = "decimalOrHexInt32"
	RuleColor               Rule = "color"
	RuleAlpha               Rule = "alpha"
	RuleColorWithAlpha      Rule = "colorWithAlpha"
	RuleEnableDisable       Rule = "enableDisable"
)

// TagRule returns the rule that parses a single override tag, without its
// leading backslash.
func TagRule(name string) Rule {
	return Rule("tag_" + name)
}

var rules map[Rule]ruleFunc

// The table is filled in init because the tag rules reach back into the
// dispatcher, which would otherwise form an initialization cycle.
func init() {
	rules = map[Rule]ruleFunc{
		RuleDialogueParts:       (*run).parseDialogueParts,
		RuleEnclosedTags:        (*run).parseEnclosedTags,
		RuleNewline:             (*run).parseNewline,
		RuleHardspace:           (*run).parseHardspace,
		RuleText:                (*run).parseText,
		RuleComment:             (*run).parseComment,
		RuleDrawingInstructions: (*run).parseDrawingInstructions,
		RuleDecimal:             (*run).parseDecimal,
		RuleUnsignedDecimal:     (*run).parseUnsignedDecimal,
		RuleDecimalInt32:        (*run).parseDecimalInt32,
		RuleHexInt32:            (*run).parseHexInt32,
		RuleDecimalOrHexInt32:   (*run).parseDecimalOrHexInt32,
		RuleColor:               (*run).parseColor,
		RuleAlpha:               (*run).parseAlpha,
		RuleColorWithAlpha:      (*run).parseColorWithAlpha,
		RuleEnableDisable:       (*run).parseEnableDisable,
	}
	for _, tag := range tagTable {
		rules[TagRule(tag.name)] = tag.parse
	}
}

// execute runs fn from a fresh root over input and returns the rule's node,
// or nil when it did not match.
func execute(input string, fn ruleFunc) *node {
	r := &run{input: input}
	root := newNode(nil)
	return fn(r, root)
}

// Parse runs rule over input. It succeeds only when the rule consumes the
// whole input; partial matches are reported as *ParseError. Parse panics on
// a rule that is not registered; use LookupRule to validate external names.
func Parse(input string, rule Rule) (any, error) {
	fn, ok := rules[rule]
	if !ok {
		panic(fmt.Sprintf("parser: unknown rule %q", rule))
	}

	result := execute(input, fn)
	if result == nil || result.value == nil {
		return nil, &ParseError{Rule: rule, Input: input}
	}
	if result.end != len(input) {
		return nil, &ParseError{Rule: rule, Input: input, Offset: result.end}
	}
	return result.value, nil
}

// LookupRule reports whether name is a registered rule.
func LookupRule(name string) (Rule, bool) {
	rule := Rule(name)
	_, ok := rules[rule]
	return rule, ok
}

// Rules lists every registered rule in name order.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for rule := range rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseDialogueParts parses the text field of a dialogue line.
func ParseDialogueParts(input string) ([]parts.Part, error) {
	value, err := Parse(input, RuleDialogueParts)
	if err != nil {
		return nil, err
	}
	return value.([]parts.Part), nil
}

func ParseDrawingInstructions(input string) ([]drawing.Instruction, error) {
	value, err := Parse(input, RuleDrawingInstructions)
	if err != nil {
		return nil, err
	}
	return value.([]drawing.Instruction), nil
}

func ParseColorWithAlpha(input string) (parts.Color, error) {
	value, err := Parse(input, RuleColorWithAlpha)
	if err != nil {
		return parts.Color{}, err
	}
	return value.(parts.Color), nil
}

func ParseColor(input string) (parts.Color, error) {
	value, err := Parse(input, RuleColor)
	if err != nil {
		return parts.Color{}, err
	}
	return value.(parts.Color), nil
}

// ParseAlpha returns the opacity encoded by an ASS alpha literal such as
// &H80&.
func ParseAlpha(input string) (float64, error) {
	value, err := Parse(input, RuleAlpha)
	if err != nil {
		return 0, err
	}
	return value.(float64), nil
}

func ParseDecimalInt32(input string) (int64, error) {
	value, err := Parse(input, RuleDecimalInt32)
	if err != nil {
		return 0, err
	}
	return value.(int64), nil
}
