package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela API, já com os campos do contexto
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField   = "correlation_id"
	maxCorrelationIDSize = 64
)

type logger struct {
	entry *logrus.Entry
}

var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment considera APP_ENV vazio como desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup aplica nível e formato: texto em desenvolvimento, JSON nos demais ambientes.
// Um nível inválido cai para info e é devolvido para quem chamou registrar.
func Setup(level string) logrus.Level {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	return parsed
}

// SetupTestLogger deixa a saída dos testes compacta e em debug
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// devFields são os únicos campos impressos em desenvolvimento
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"date":             {},
	"dates_to_fetch":   {},
	"batch":            {},
	"sheet_range":      {},
	"source":           {},
	"action":           {},
	"run_id":           {},
}

func keepInDevelopment(key string) bool {
	if _, ok := devFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value any) Logger {
	if IsDevelopment() && !keepInDevelopment(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepInDevelopment(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *logger) Error(args ...any) { l.entry.Error(args...) }

func (l *logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithCorrelationID gera um novo ID de correlação e o coloca no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	return ContextWithCorrelationID(ctx, "")
}

// ContextWithCorrelationID reaproveita o ID recebido (ex.: header do front) quando ele
// é aceitável; caso contrário gera um UUID novo
func ContextWithCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	correlationID = strings.TrimSpace(correlationID)
	if correlationID == "" || len(correlationID) > maxCorrelationIDSize || strings.ContainsAny(correlationID, " \t\r\n") {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
