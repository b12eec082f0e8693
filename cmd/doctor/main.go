package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/3-lines-studio/folio"
	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	output := cli.NewOutput()

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	output.PrintHeader("folio doctor")
	report := cli.NewReport(output, "")

	step := report.StartStep("Read " + config.FileName)
	cfg, err := config.Load(projectDir)
	report.EndStep(step, err)
	if err != nil {
		for _, e := range unjoin(err) {
			report.AddError(config.FileName, e.Error())
		}
		return finish(report)
	}

	step = report.StartStep("Load content")
	app, err := folio.New(
		folio.WithConfig(cfg),
		folio.WithRoot(projectDir),
		folio.WithLogger(logging.Discard()),
		folio.WithMode(folio.ModeProd),
	)
	report.EndStep(step, err)
	if err != nil {
		for _, e := range unjoin(err) {
			report.AddError(cfg.ContentDir, e.Error())
		}
		return finish(report)
	}
	defer func() { _ = app.Stop() }()

	step = report.StartStep("Render pages")
	check := app.Check(context.Background())
	report.SetPageCount(check.Pages)
	for _, p := range check.Problems {
		report.AddError(p.Path, "render failed", unwrapChain(p.Err)...)
	}
	for _, w := range check.Warnings {
		report.AddWarning(w.Path, w.Err.Error())
	}
	report.EndStep(step, nil)

	return finish(report)
}

func finish(report *cli.Report) int {
	report.Render()
	if report.HasFailures() {
		return 1
	}
	return 0
}

// unjoin splits errors.Join results so each one is reported on its own.
func unjoin(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, unjoin(e)...)
		}
		return out
	}
	return []error{err}
}

func unwrapChain(err error) []string {
	var details []string
	for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
		details = append(details, fmt.Sprint(e))
	}
	return details
}
