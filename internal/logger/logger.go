// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// GinStyleFormatter renders log lines as "[timestamp] LEVEL | message" with
// ANSI level colors, similar to Gin's request log.
type GinStyleFormatter struct{}

func (f *GinStyleFormatter) Format(entry *log.Entry) ([]byte, error) {
	levelColor := "\033[37m" // Default white
	resetColor := "\033[0m"

	switch entry.Level {
	case log.InfoLevel:
		levelColor = "\033[32m" // Green
	case log.WarnLevel:
		levelColor = "\033[33m" // Yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = "\033[31m" // Red
	case log.DebugLevel:
		levelColor = "\033[36m" // Cyan
	}

	timestamp := entry.Time.Format("2006/01/02 - 15:04:05")
	level := fmt.Sprintf("% -5s", strings.ToUpper(entry.Level.String()))

	return []byte(fmt.Sprintf("%s[%s] %s%s | %s\n",
		levelColor, timestamp, level, resetColor, entry.Message)), nil
}

// Setup installs the formatter on the standard logrus logger. Debug drops the
// level threshold to include debug output.
func Setup(debug bool) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&GinStyleFormatter{})
	log.SetReportCaller(false)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
