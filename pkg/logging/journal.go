package logging

import (
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	"go.uber.org/zap/zapcore"
)

const syslogIdentifier = "swaymon"

type SendFunc func(message string, priority journal.Priority, vars map[string]string) error

type journalCore struct {
	zapcore.LevelEnabler
	fields []zapcore.Field
	send   SendFunc
}

// NewJournalCore returns a core that writes every entry as a journal message,
// with structured fields as journal variables.
func NewJournalCore(level zapcore.LevelEnabler, send SendFunc) zapcore.Core {
	return &journalCore{LevelEnabler: level, send: send}
}

func (c *journalCore) With(fields []zapcore.Field) zapcore.Core {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	return &journalCore{LevelEnabler: c.LevelEnabler, fields: all, send: c.send}
}

func (c *journalCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *journalCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	vars := map[string]string{"SYSLOG_IDENTIFIER": syslogIdentifier}
	if ent.LoggerName != "" {
		vars["LOGGER"] = ent.LoggerName
	}
	for k, v := range enc.Fields {
		vars[journalKey(k)] = fmt.Sprint(v)
	}

	return c.send(ent.Message, priority(ent.Level), vars)
}

func (c *journalCore) Sync() error {
	return nil
}

func priority(level zapcore.Level) journal.Priority {
	switch level {
	case zapcore.DebugLevel:
		return journal.PriDebug
	case zapcore.InfoLevel:
		return journal.PriInfo
	case zapcore.WarnLevel:
		return journal.PriWarning
	case zapcore.ErrorLevel:
		return journal.PriErr
	default:
		return journal.PriCrit
	}
}

// journalKey maps a zap field name onto the journal's [A-Z0-9_] variable names.
func journalKey(key string) string {
	key = strings.ToUpper(key)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.TrimLeft(key, "_"))
}
