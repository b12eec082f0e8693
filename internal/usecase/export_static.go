package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/tdewolff/minify"
	mincss "github.com/tdewolff/minify/css"
	minhtml "github.com/tdewolff/minify/html"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
)

// StylesheetWriter writes the code highlighting stylesheet.
type StylesheetWriter interface {
	WriteCSS(w io.Writer) error
}

type ExportInput struct {
	OutDir    string
	StaticDir string
	Minify    bool
}

type ExportOutput struct {
	Pages  []string
	Assets []string
	Error  error
}

type ExportService struct {
	pages *PageService
	css   StylesheetWriter
	fs    FileSystem
	cli   CLIOutput
	min   *minify.M
}

func NewExportService(pages *PageService, css StylesheetWriter, fs FileSystem, cli CLIOutput) *ExportService {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	m.AddFunc("text/css", mincss.Minify)

	return &ExportService{
		pages: pages,
		css:   css,
		fs:    fs,
		cli:   cli,
		min:   m,
	}
}

// Export renders every route to OutDir/<route>/index.html, writes
// css/chroma.css and 404.html, and copies StaticDir to OutDir/static.
// The first failing page stops the export.
func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	var out ExportOutput

	for _, route := range s.pages.Routes() {
		if err := ctx.Err(); err != nil {
			out.Error = err
			return out
		}

		page := s.pages.ServePage(ctx, ServePageInput{Path: route, Mode: core.ModeProd})
		if page.Error != nil {
			out.Error = page.Error
			return out
		}
		if page.NotFound {
			out.Error = fmt.Errorf("route %s rendered no page", route)
			return out
		}

		file := path.Join(input.OutDir, core.OutputPath(route))
		if err := s.write(file, "text/html", []byte(page.HTML), input.Minify); err != nil {
			out.Error = err
			return out
		}
		s.cli.PrintFile(file)
		out.Pages = append(out.Pages, file)
	}

	notFound, err := core.RenderErrorPage(core.ErrorData{Status: 404})
	if err != nil {
		out.Error = err
		return out
	}
	if err := s.write(path.Join(input.OutDir, "404.html"), "text/html", []byte(notFound), input.Minify); err != nil {
		out.Error = err
		return out
	}

	var css bytes.Buffer
	if err := s.css.WriteCSS(&css); err != nil {
		out.Error = fmt.Errorf("stylesheet: %w", err)
		return out
	}
	cssFile := path.Join(input.OutDir, strings.TrimPrefix(core.ChromaCSSPath, "/"))
	if err := s.write(cssFile, "text/css", css.Bytes(), input.Minify); err != nil {
		out.Error = err
		return out
	}
	out.Assets = append(out.Assets, cssFile)

	assets, err := s.copyStatic(input.StaticDir, path.Join(input.OutDir, "static"))
	out.Assets = append(out.Assets, assets...)
	if err != nil {
		out.Error = err
		return out
	}

	logging.FromContext(ctx).Info("export complete", "pages", len(out.Pages), "assets", len(out.Assets))
	return out
}

func (s *ExportService) write(file, mediatype string, data []byte, minified bool) error {
	if minified {
		var buf bytes.Buffer
		if err := s.min.Minify(mediatype, &buf, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("minify %s: %w", file, err)
		}
		data = buf.Bytes()
	}

	if err := s.fs.MkdirAll(path.Dir(file), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file, err)
	}
	if err := s.fs.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

func (s *ExportService) copyStatic(src, dst string) ([]string, error) {
	if src == "" || !s.fs.FileExists(src) {
		return nil, nil
	}

	var copied []string
	err := s.fs.WalkDir(src, func(file string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(file, src), "/")
		target := path.Join(dst, rel)
		if err := s.fs.CopyFile(file, target); err != nil {
			return fmt.Errorf("failed to copy %s: %w", file, err)
		}
		copied = append(copied, target)
		return nil
	})
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return copied, fmt.Errorf("copy static: %w", err)
	}
	return copied, nil
}
