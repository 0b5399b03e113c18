package alog

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/ndkshim/dynlib"
)

type core struct {
	zapcore.LevelEnabler
	b   *Binding
	tag string
	enc zapcore.Encoder
}

// NewCore returns a zapcore.Core writing to logcat under tag through b, or
// through the default binding when b is nil. Time and level are left to
// logcat; the line carries the logger name, message and fields.
func NewCore(b *Binding, tag string, enab zapcore.LevelEnabler) zapcore.Core {
	if b == nil {
		b = Default()
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		NameKey:          "logger",
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	})
	return &core{LevelEnabler: enab, b: b, tag: tag, enc: enc}
}

// NewLogger is a zap.Logger over NewCore with the default binding.
func NewLogger(tag string, enab zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(nil, tag, enab), opts...)
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.enc = c.enc.Clone()
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return &clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	// Diagnostics from liblog's own resolution arrive here while it is still
	// in progress; calling into the binding now would block on itself.
	if c.b.lib.State() == dynlib.InProgress {
		return nil
	}

	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	c.b.Write(levelPriority(ent.Level), c.tag, strings.TrimSuffix(buf.String(), "\n"))
	return nil
}

func (c *core) Sync() error {
	return nil
}

func levelPriority(l zapcore.Level) Priority {
	switch l {
	case zapcore.DebugLevel:
		return PriorityDebug
	case zapcore.InfoLevel:
		return PriorityInfo
	case zapcore.WarnLevel:
		return PriorityWarn
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel:
		return PriorityError
	case zapcore.FatalLevel:
		return PriorityFatal
	default:
		return PriorityVerbose
	}
}
