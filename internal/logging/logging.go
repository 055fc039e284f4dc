// Package logging sets up the application logger. The terminal belongs to
// the UI, so log lines go to a file and to an in-memory ring shown in the
// diagnostics panel.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup creates a logger that appends to path at the given level and
// mirrors every entry into ring. An empty path discards file output.
// The returned closer releases the log file.
func Setup(path, level string, ring *Ring) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var closer io.Closer = nopCloser{}
	if path == "" {
		log.SetOutput(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		closer = f
	}

	if ring != nil {
		log.AddHook(&RingHook{Ring: ring})
	}
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RingHook copies log entries into a Ring as short single-line summaries.
type RingHook struct {
	Ring *Ring
}

func (h *RingHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *RingHook) Fire(e *logrus.Entry) error {
	h.Ring.Push(FormatEntry(e))
	return nil
}

// FormatEntry renders an entry as "15:04:05 LEVEL message key=value ...",
// with fields sorted by key.
func FormatEntry(e *logrus.Entry) string {
	var sb strings.Builder
	sb.WriteString(e.Time.Format("15:04:05"))
	sb.WriteByte(' ')
	sb.WriteString(strings.ToUpper(e.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, e.Data[k])
	}
	return sb.String()
}
