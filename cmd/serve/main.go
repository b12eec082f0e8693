package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

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
	var dev bool
	var addr string

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--help", "-h":
			printUsage(output)
			return 0
		case "--dev":
			dev = true
		case "--addr":
			if i+1 >= len(args) {
				output.PrintHeader("folio serve")
				output.PrintError("--addr requires a value")
				return 1
			}
			addr = args[i+1]
			i++
		default:
			projectDir = arg
		}
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		output.PrintHeader("folio serve")
		output.PrintError("Failed to load %s: %v", config.FileName, err)
		return 1
	}
	cfg.ApplyEnv(os.Getenv)
	if addr != "" {
		cfg.Addr = addr
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	opts := []folio.Option{
		folio.WithConfig(cfg),
		folio.WithRoot(projectDir),
		folio.WithLogger(logger),
	}
	if dev {
		opts = append(opts, folio.WithMode(folio.ModeDev))
	}

	app, err := folio.New(opts...)
	if err != nil {
		output.PrintHeader("folio serve")
		output.PrintError("%v", err)
		return 1
	}
	defer func() { _ = app.Stop() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, os.Stdout); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		return 1
	}
	return 0
}

func printUsage(output *cli.Output) {
	output.PrintHeader("folio serve")
	fmt.Println()
	fmt.Println("Usage: folio-serve [--dev] [--addr :8080] [project-dir]")
	fmt.Println()
	fmt.Println("  --dev          Watch content, disable caching and live reload pages")
	fmt.Println("  --addr <addr>  Listen address (also FOLIO_ADDR)")
	fmt.Println()
	fmt.Println("FOLIO_DEV=1 enables dev mode as well.")
}
