package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Config contém as opções do logger
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json ou console
	Output io.Writer
}

// ZeroLogger implementa Logger sobre o zerolog
type ZeroLogger struct {
	log zerolog.Logger
}

// NewLogger cria um logger a partir da configuração
func NewLogger(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return &ZeroLogger{log: zl}
}

// Nop retorna um logger que descarta tudo
func Nop() Logger {
	return &ZeroLogger{log: zerolog.Nop()}
}

// Zerolog expõe o logger subjacente para middlewares
func (l *ZeroLogger) Zerolog() zerolog.Logger {
	return l.log
}

// Info registra uma mensagem de informação
func (l *ZeroLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

// Error registra uma mensagem de erro
func (l *ZeroLogger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

// Debug registra uma mensagem de debug
func (l *ZeroLogger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

// Warn registra uma mensagem de aviso
func (l *ZeroLogger) Warn(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Warn(), keysAndValues).Msg(msg)
}

// withFields converte pares chave/valor em campos do evento.
// Chaves que não são string são ignoradas junto com o valor.
func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		switch v := keysAndValues[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	if len(keysAndValues)%2 == 1 {
		e = e.Interface("extra", keysAndValues[len(keysAndValues)-1])
	}
	return e
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
