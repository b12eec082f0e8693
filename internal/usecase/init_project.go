package usecase

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Template   string
	Title      string
	Author     string
}

type InitOutput struct {
	Files []string
	Error error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject copies a starter site into ProjectDir, which must be absent
// or empty. Files ending in .tmpl are written without the suffix after
// substituting {{.Title}} and {{.Author}}.
func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("folio init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{Error: fmt.Errorf("failed to read directory: %w", err)}
		}
		if len(entries) > 0 {
			return InitOutput{Error: fmt.Errorf("directory '%s' already exists and is not empty", input.ProjectDir)}
		}
	}

	name := input.Template
	if name == "" {
		name = templates.DefaultTemplate
	}
	templateFS, err := templates.GetTemplate(name)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return InitOutput{Error: fmt.Errorf("invalid template '%s'", name)}
		}
		return InitOutput{Error: err}
	}

	data := core.TemplateData{Title: input.Title, Author: input.Author}
	if data.Title == "" {
		data.Title = core.DeriveSiteTitle(input.ProjectDir)
	}
	if data.Author == "" {
		data.Author = "Site Owner"
	}

	var files []string
	err = iofs.WalkDir(templateFS, ".", func(file string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return s.fs.MkdirAll(path.Join(input.ProjectDir, file), 0755)
		}

		content, err := iofs.ReadFile(templateFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", file, err)
		}

		target, isTemplate := core.ProcessFilename(file, data)
		target = path.Join(input.ProjectDir, target)
		if err := s.fs.MkdirAll(path.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path.Dir(target), err)
		}
		if err := s.fs.WriteFile(target, core.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}

		if isTemplate {
			s.cli.PrintFile(target + " (generated)")
		} else {
			s.cli.PrintFile(target)
		}
		files = append(files, target)
		return nil
	})
	if err != nil {
		return InitOutput{Files: files, Error: err}
	}

	s.cli.PrintSuccess("Created %d files using '%s' template", len(files), name)
	return InitOutput{Files: files}
}
