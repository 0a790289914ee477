package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"assparse/internal/batch"
	"assparse/internal/config"
	"assparse/internal/logging"
	"assparse/internal/parts"
	"assparse/internal/script"
	"assparse/internal/timing"
)

type scriptLineOutput struct {
	Line      int               `json:"line" yaml:"line"`
	Start     float64           `json:"start" yaml:"start"`
	End       float64           `json:"end" yaml:"end"`
	Style     string            `json:"style" yaml:"style"`
	Text      string            `json:"text" yaml:"text"`
	Parts     []parts.Envelope  `json:"parts,omitempty" yaml:"parts,omitempty"`
	Syllables []timing.Syllable `json:"syllables,omitempty" yaml:"syllables,omitempty"`
	Error     string            `json:"error,omitempty" yaml:"error,omitempty"`
}

type scriptOutput struct {
	RunID     string             `json:"runId" yaml:"runId"`
	Path      string             `json:"path" yaml:"path"`
	Lines     []scriptLineOutput `json:"lines" yaml:"lines"`
	Failed    int                `json:"failed" yaml:"failed"`
	Skipped   []int              `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	CacheHits int                `json:"cacheHits" yaml:"cacheHits"`
}

func newScriptCommand(ctx *commandContext) *cobra.Command {
	var (
		format  string
		workers int
		resolve bool
		karaoke bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "script <file>",
		Short: "Parse every dialogue line of a subtitle script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(format)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			sc, err := script.Load(path)
			if err != nil {
				return err
			}
			for _, line := range sc.Skipped {
				logging.WarnWithContext(logger, "dialogue line skipped", "script_line_skipped",
					logging.Int("line", line),
					logging.String(logging.FieldErrorHint, "check the field count against the Format line"),
					logging.String(logging.FieldImpact, "line not parsed"),
				)
			}

			cache, err := ctx.openCache(logger, noCache)
			if err != nil {
				return err
			}
			defer cache.Close()

			if !cmd.Flags().Changed("workers") {
				workers = cfg.Parser.Workers
			}
			run, err := batch.Parse(cmd.Context(), sc.Dialogues, batch.Options{
				Workers: workers,
				Cache:   cache,
				Resolve: resolve,
				Karaoke: karaoke,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			if format != formatTable {
				return writeStructured(cmd, format, buildScriptOutput(path, sc, run))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderScriptTable(run))
			fmt.Fprintf(out, "%d lines, %d failed, %d skipped, %d from cache (run %s)\n",
				len(run.Results), run.Failed, len(sc.Skipped), run.CacheHits, run.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent parses (defaults to parser.workers)")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Fill unset move/transform times from each line's duration")
	cmd.Flags().BoolVar(&karaoke, "karaoke", false, "Compute karaoke syllable timing")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the parse cache")
	return cmd
}

func buildScriptOutput(path string, sc *script.Script, run *batch.Run) scriptOutput {
	out := scriptOutput{
		RunID:     run.ID,
		Path:      path,
		Lines:     make([]scriptLineOutput, len(run.Results)),
		Failed:    run.Failed,
		Skipped:   sc.Skipped,
		CacheHits: run.CacheHits,
	}
	for i, res := range run.Results {
		line := scriptLineOutput{
			Line:      res.Dialogue.Line,
			Start:     res.Dialogue.Start,
			End:       res.Dialogue.End,
			Style:     res.Dialogue.Style,
			Text:      res.Dialogue.Text,
			Syllables: res.Syllables,
		}
		if res.Err != nil {
			line.Error = res.Err.Error()
		} else {
			line.Parts = parts.Wrap(res.Parts)
		}
		out.Lines[i] = line
	}
	return out
}

func renderScriptTable(run *batch.Run) string {
	rows := make([][]string, len(run.Results))
	for i, res := range run.Results {
		status := strconv.Itoa(len(res.Parts)) + " parts"
		if res.Err != nil {
			status = "error: " + res.Err.Error()
		} else if len(res.Syllables) > 0 {
			status += ", " + strconv.Itoa(len(res.Syllables)) + " syllables"
		}
		rows[i] = []string{
			strconv.Itoa(res.Dialogue.Line),
			formatSeconds(res.Dialogue.Start),
			formatSeconds(res.Dialogue.End),
			yesNo(res.Cached),
			status,
		}
	}
	return renderTable([]string{"Line", "Start", "End", "Cached", "Result"}, rows,
		[]columnAlignment{alignRight, alignRight, alignRight})
}
