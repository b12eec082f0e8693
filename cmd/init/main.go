package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/initcmd"
	"github.com/3-lines-studio/folio/internal/templates"
)

func main() {
	output := cli.NewOutput()

	if len(os.Args) < 2 {
		printUsage(output)
		os.Exit(1)
	}

	if os.Args[1] == "--help" || os.Args[1] == "-h" {
		printUsage(output)
		os.Exit(0)
	}

	var opts initcmd.Options
	var projectDir string

	argIdx := 1
	for argIdx < len(os.Args) {
		arg := os.Args[argIdx]

		switch arg {
		case "--template", "--title", "--author":
			if argIdx+1 >= len(os.Args) {
				output.PrintHeader("folio init")
				output.PrintError("%s requires a value", arg)
				os.Exit(1)
			}
			value := os.Args[argIdx+1]
			switch arg {
			case "--template":
				opts.Template = value
			case "--title":
				opts.Title = value
			case "--author":
				opts.Author = value
			}
			argIdx += 2
			continue
		}

		if projectDir == "" && !isFlag(arg) {
			projectDir = arg
		}
		argIdx++
	}

	if projectDir == "" {
		printUsage(output)
		os.Exit(1)
	}

	if _, err := initcmd.Run(projectDir, opts, output); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	output.PrintDone(fmt.Sprintf("Run: folio-serve %s", projectDir))
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}

func printUsage(output *cli.Output) {
	output.PrintHeader("folio init")
	fmt.Println()
	fmt.Println("Usage: folio-init [options] <project-dir>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Printf("  --template <name>  Template to use (%s). Default: %s\n", strings.Join(templates.Names(), ", "), templates.DefaultTemplate)
	fmt.Println("  --title <title>    Site title. Default: the directory name")
	fmt.Println("  --author <name>    Default author name")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  folio-init myblog")
	fmt.Println("  folio-init --template minimal --title \"Field Notes\" notes")
	fmt.Println()
	fmt.Println("To check an existing site, use: folio-doctor <dir>")
}

