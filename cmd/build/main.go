package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/3-lines-studio/folio"
	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(args []string) int {
	output := cli.NewOutput()

	projectDir := "."
	if len(args) > 0 {
		if args[0] == "--help" || args[0] == "-h" {
			output.PrintHeader("folio build")
			fmt.Println()
			fmt.Println("Usage: folio-build [project-dir]")
			fmt.Println("Renders every page into the configured outDir (default dist).")
			return 0
		}
		projectDir = args[0]
	}

	output.PrintHeader("folio build")

	cfg, err := config.Load(projectDir)
	if err != nil {
		output.PrintError("Failed to load %s: %v", config.FileName, err)
		return 1
	}
	cfg.ApplyEnv(os.Getenv)

	report := cli.NewReport(output, filepath.Join(projectDir, cfg.OutDir))

	step := report.StartStep("Load content")
	app, err := folio.New(
		folio.WithConfig(cfg),
		folio.WithRoot(projectDir),
		folio.WithLogger(logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)),
		folio.WithMode(folio.ModeProd),
	)
	report.EndStep(step, err)
	if err != nil {
		report.Render()
		return 1
	}
	defer func() { _ = app.Stop() }()

	step = report.StartStep("Export")
	result := app.Export(context.Background(), output)
	report.EndStep(step, result.Error)
	report.SetPageCount(len(result.Pages))

	report.Render()
	if report.HasFailures() {
		return 1
	}
	return 0
}
