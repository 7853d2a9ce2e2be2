package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps a zap logger. Loggers made with New keep their output in
// memory so it can be shown on a page.
type ZapLogger struct {
	log *zap.Logger
	buf *syncBuffer
}

// syncBuffer lets concurrent tessellations share one buffered logger.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error { return nil }

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func newCore(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}

// New returns a logger that records into memory. See HTML.
func New(level zapcore.Level) *ZapLogger {
	buf := &syncBuffer{}
	return &ZapLogger{
		log: newCore(buf, level),
		buf: buf,
	}
}

// NewWriter returns a logger writing to w.
func NewWriter(w io.Writer, level zapcore.Level) *ZapLogger {
	return &ZapLogger{log: newCore(zapcore.AddSync(w), level)}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

// ParseLevel maps "debug", "info", "warn" and "error" to zap levels.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(s)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiCode = regexp.MustCompile(`\033\[(\d+)m`)

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// ansiToHTML turns ANSI colour codes into inline-styled spans. Text between
// codes is HTML-escaped.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	closeSpan := func() {
		if open {
			result.WriteString("</span>")
			open = false
		}
	}

	result.WriteString("<pre>")
	for _, match := range ansiCode.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}

		code := input[match[2]:match[3]]
		if color, ok := colorMap[code]; ok {
			closeSpan()
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" {
			closeSpan()
		}
		lastIndex = end
	}
	if lastIndex < len(input) {
		result.WriteString(escapeHTML(input[lastIndex:]))
	}
	closeSpan()
	result.WriteString("</pre>")

	return result.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// HTML renders the recorded output. It is empty for loggers not made with
// New.
func (z *ZapLogger) HTML() string {
	if z.buf == nil {
		return ""
	}
	return ansiToHTML(z.buf.String())
}

// ClearLogs drops the recorded output.
func (z *ZapLogger) ClearLogs() {
	if z.buf != nil {
		z.buf.Reset()
	}
}

// With returns a child logger that adds fields to every entry.
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{log: z.log.With(fields...), buf: z.buf}
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}
