// Command braces renders and inspects brace format strings.
//
// Usage:
//
//	braces render "Values: [{}, {}]" int:3 int:4
//	braces check "{x} {d2}" --output markdown
//	braces batch jobs.yaml
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"

	"github.com/bjaus/braces"
	"github.com/bjaus/braces/internal/report"
)

const version = "0.1.0"

func main() {
	app := orpheus.New("braces").
		SetDescription("Render and inspect brace format strings").
		SetVersion(version)

	renderCmd := orpheus.NewCommand("render", "Format typed values, e.g. render \"{x}\" u8:255").
		SetHandler(func(ctx *orpheus.Context) error {
			logger := newLogger(os.Stderr, ctx.GetFlagBool("verbose"))
			if ctx.ArgCount() == 0 {
				return orpheus.ExecutionError("render", "missing format string")
			}
			values := make([]string, 0, ctx.ArgCount()-1)
			for i := 1; i < ctx.ArgCount(); i++ {
				values = append(values, ctx.GetArg(i))
			}
			return runRender(os.Stdout, logger, ctx.GetArg(0), values)
		}).
		AddBoolFlag("verbose", "", false, "Log diagnostics to stderr")

	checkCmd := orpheus.NewCommand("check", "Validate a format string and report its segments").
		SetHandler(func(ctx *orpheus.Context) error {
			logger := newLogger(os.Stderr, ctx.GetFlagBool("verbose"))
			if ctx.ArgCount() == 0 {
				return orpheus.ExecutionError("check", "missing format string")
			}
			return runCheck(os.Stdout, logger, ctx.GetArg(0), checkOptions{
				Args:   ctx.GetFlagInt("args"),
				Output: ctx.GetFlagString("output"),
				Title:  ctx.GetFlagString("title"),
			})
		}).
		AddIntFlag("args", "n", -1, "Expected argument count; -1 skips the count check").
		AddFlag("output", "o", string(report.Table), "Output format: table, markdown, csv, tsv, json, jsonl, yaml, html or go-template=<tmpl>").
		AddFlag("title", "t", "", "Title above table output, or HTML caption").
		AddBoolFlag("verbose", "", false, "Log diagnostics to stderr")

	batchCmd := orpheus.NewCommand("batch", "Render every job in a YAML job file").
		SetHandler(func(ctx *orpheus.Context) error {
			logger := newLogger(os.Stderr, ctx.GetFlagBool("verbose"))
			if ctx.ArgCount() == 0 {
				return orpheus.ExecutionError("batch", "missing job file")
			}
			jf, err := loadJobs(ctx.GetArg(0))
			if err != nil {
				return err
			}
			logger.Debug("loaded job file", "path", ctx.GetArg(0), "jobs", len(jf.Jobs))
			return runJobs(os.Stdout, logger, jf)
		}).
		AddBoolFlag("verbose", "", false, "Log diagnostics to stderr")

	app.AddCommand(renderCmd)
	app.AddCommand(checkCmd)
	app.AddCommand(batchCmd)

	if err := app.Run(os.Args[1:]); err != nil {
		_, _ = braces.Eprintln("braces: {}", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runRender(w io.Writer, logger *slog.Logger, format string, raw []string) error {
	values, err := parseValues(raw)
	if err != nil {
		return orpheus.ExecutionError("render", err.Error())
	}
	logger.Debug("rendering", "format", format, "args", len(values))
	if _, err := braces.Fprintln(w, format, values...); err != nil {
		return orpheus.ExecutionError("render", err.Error())
	}
	return nil
}

type checkOptions struct {
	Args   int
	Output string
	Title  string
}

func runCheck(w io.Writer, logger *slog.Logger, format string, opts checkOptions) error {
	out, err := report.ParseFormat(opts.Output)
	if err != nil {
		return orpheus.ExecutionError("check", err.Error())
	}

	var segments []braces.Segment
	if opts.Args < 0 {
		segments, err = braces.Segments(format)
	} else {
		segments, err = braces.Parse(format, opts.Args)
	}
	if err != nil {
		return orpheus.ExecutionError("check", err.Error())
	}
	logger.Debug("parsed", "format", format, "segments", len(segments))

	return report.WriteOptions(w, out, report.Rows(segments), report.Options{Title: opts.Title})
}
