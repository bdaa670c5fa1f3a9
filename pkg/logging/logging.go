package logging

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var (
	mu     sync.Mutex
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
		Prefix:          "factorial",
	})
}

// L returns the process-wide logger. It writes to stderr so that stdout
// carries results only.
func L() *charmlog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLevel parses one of debug, info, warn, error.
func SetLevel(level string) error {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	L().SetLevel(lvl)
	return nil
}

// SetOutput replaces the logger with one writing to w, keeping the level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	lvl := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(lvl)
}
