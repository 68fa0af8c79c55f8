package internal

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level orders log severities.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// ParseLevel maps debug|info|warn|error to a Level. Unknown names are an
// error; the empty string is info.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo, nil
	}
	if l, ok := levelNames[s]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l Level) String() string {
	for name, v := range levelNames {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("level(%d)", int32(l))
}

var minLevel atomic.Int32

func init() { minLevel.Store(int32(LevelInfo)) }

// Logf is where every message ends up. Tests may swap it with SetLogger.
var Logf func(format string, v ...any) = log.Printf

// InitLogging sends the standard logger to stdout with microsecond
// timestamps and sets the minimum level.
func InitLogging(level Level) {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	SetLevel(level)
}

// SetLevel changes the minimum level that is written.
func SetLevel(level Level) { minLevel.Store(int32(level)) }

// SetLogger replaces the sink. nil mutes logging.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

func logAt(l Level, prefix, format string, v ...any) {
	if l < Level(minLevel.Load()) {
		return
	}
	Logf(prefix+format, v...)
}

func Debugf(format string, v ...any) { logAt(LevelDebug, "DEBUG ", format, v...) }
func Infof(format string, v ...any)  { logAt(LevelInfo, "INFO ", format, v...) }
func Warnf(format string, v ...any)  { logAt(LevelWarn, "WARN ", format, v...) }
func Errorf(format string, v ...any) { logAt(LevelError, "ERROR ", format, v...) }
