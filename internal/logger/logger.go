package logger

import (
    "io"
    "os"
    "strings"
    "time"

    "github.com/sirupsen/logrus"
)

// New returns a JSON logger whose entries all carry the instance name.
// Unknown levels fall back to info.
func New(instance, level string) *logrus.Entry {
    return NewWithOutput(instance, level, os.Stdout)
}

func NewWithOutput(instance, level string, out io.Writer) *logrus.Entry {
    l := logrus.New()
    l.SetOutput(out)
    l.SetFormatter(&logrus.JSONFormatter{
        TimestampFormat: time.RFC3339,
        FieldMap: logrus.FieldMap{
            logrus.FieldKeyTime: "timestamp",
            logrus.FieldKeyMsg:  "message",
        },
    })
    lvl, err := logrus.ParseLevel(level)
    if err != nil {
        lvl = logrus.InfoLevel
    }
    l.SetLevel(lvl)
    return l.WithField("instance", instance)
}

// JSONLogger lets the standard library logger write through a logrus entry:
//
//  log.SetFlags(0)
//  log.SetOutput(&logger.JSONLogger{Entry: entry})
type JSONLogger struct {
    Entry *logrus.Entry
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
    l.Entry.Info(strings.TrimRight(string(p), "\n"))
    return len(p), nil
}
