package logger

import (
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/cube-world.txt"

// Logger writes leveled, timestamped entries to a rotating file (and optionally a console)
// and keeps the formatted lines in memory for on-screen display.
type Logger struct {
	*logrus.Logger

	file *lumberjack.Logger

	mu    sync.Mutex
	lines []string
}

// New returns a Logger appending to path (LogFilePath when empty). Directories are
// created on first write. If console is non-nil, entries are also written there.
func New(path string, console io.Writer) *Logger {
	if path == "" {
		path = LogFilePath
	}
	l := &Logger{
		Logger: logrus.New(),
		file: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		},
		lines: make([]string, 0),
	}
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
		DisableColors:   true,
	})
	if console != nil {
		l.SetOutput(io.MultiWriter(console, l.file))
	} else {
		l.SetOutput(l.file)
	}
	l.AddHook(&historyHook{l: l})
	return l
}

// Log writes line at info level.
func (l *Logger) Log(line string) {
	l.Info(line)
}

// SetLevelName sets the minimum level from its name ("debug", "info", "warn", ...).
func (l *Logger) SetLevelName(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLevel(lvl)
	return nil
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// historyHook records every emitted entry as "[timestamp] LEVEL message".
type historyHook struct {
	l *Logger
}

func (h *historyHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *historyHook) Fire(e *logrus.Entry) error {
	line := "[" + e.Time.Format(time.DateTime) + "] " + e.Level.String() + " " + e.Message
	h.l.mu.Lock()
	h.l.lines = append(h.l.lines, line)
	h.l.mu.Unlock()
	return nil
}
