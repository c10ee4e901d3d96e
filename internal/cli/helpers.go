package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/99minutos/eld-logs/pkg/logger"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	stopColors   = map[string]*color.Color{
		"Pickup":  color.New(color.FgGreen),
		"Dropoff": color.New(color.FgGreen),
		"Fuel":    color.New(color.FgBlue),
	}
)

func heading(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headingColor.Sprintf(format, args...))
}

func stopLabel(kind string) string {
	if c, ok := stopColors[kind]; ok {
		return c.Sprint(kind)
	}
	return warnColor.Sprint(kind)
}

// commandLogger logs warnings and above to w, which is the command's stderr.
func commandLogger(w io.Writer) zerolog.Logger {
	return logger.New(logger.Options{Level: "warn", Output: w, Service: "eldlogs"})
}
