// Package initcmd scaffolds a new site on the local disk.
package initcmd

import (
	"path/filepath"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/usecase"
)

type Options struct {
	Template string
	Title    string
	Author   string
}

// Run writes the chosen starter template into projectDir.
func Run(projectDir string, opts Options, output usecase.CLIOutput) ([]string, error) {
	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, err
	}

	svc := usecase.NewInitService(fs.NewOSFileSystem(), output)
	result := svc.InitProject(usecase.InitInput{
		ProjectDir: absDir,
		Template:   opts.Template,
		Title:      opts.Title,
		Author:     opts.Author,
	})
	return result.Files, result.Error
}
