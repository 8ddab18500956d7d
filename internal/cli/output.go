package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/render"
)

// outputFormat resolves --output, then the config file, then fallback.
func outputFormat(cfg *config.Config, fallback render.Format) (render.Format, error) {
	name := outputFlag
	if name == "" {
		name = cfg.Output
	}
	if name == "" {
		return fallback, nil
	}
	return render.ParseFormat(name)
}

// markupFor picks plain text on a terminal and raw markup otherwise.
func markupFor(w io.Writer) render.Format {
	if isTerminal(w) {
		return render.FormatPlain
	}
	return render.FormatMarkup
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// message adapts a markup message to the output format.
func message(format render.Format, s string) string {
	if format == render.FormatMarkup {
		return s
	}
	return render.StripMarkup(s)
}
