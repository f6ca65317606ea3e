package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. An unknown level falls back to info.
// Every line carries the component name and a per-run id.
func New(w io.Writer, level, component string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor(w)}).
		Level(ParseLevel(level)).
		With().Timestamp().
		Str("component", component).
		Str("run_id", uuid.NewString()).
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func noColor(w io.Writer) bool {
	type fd interface{ Fd() uintptr }
	_, isFile := w.(fd)
	return !isFile
}
