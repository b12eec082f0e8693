package env

import (
	"os"

	"github.com/3-lines-studio/folio/internal/core"
)

const DevVar = "FOLIO_DEV"

func DetectMode() core.Mode {
	return ModeFrom(os.Getenv)
}

// ModeFrom reports dev mode when FOLIO_DEV is "1" or "true".
func ModeFrom(getenv func(string) string) core.Mode {
	switch getenv(DevVar) {
	case "1", "true":
		return core.ModeDev
	}
	return core.ModeProd
}
