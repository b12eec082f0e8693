package usecase

import (
	"context"
	"html/template"
	"io"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/markdown"
	"github.com/3-lines-studio/folio/internal/types"
)

// ComponentRenderer is satisfied by *registry.Registry.
type ComponentRenderer interface {
	Render(ctx context.Context, w io.Writer, name string, props types.Props) error
}

type DocumentRenderer interface {
	RenderDocument(ctx context.Context, doc *markdown.Document) (template.HTML, error)
}

// ContentSource returns the current content store. Dev mode swaps the
// store on every reload.
type ContentSource interface {
	Store() *content.Store
}

type SubscriberStore interface {
	Add(ctx context.Context, sub core.Subscriber) error
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
