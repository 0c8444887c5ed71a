// Package log encapsula o logrus com os campos que acompanham uma requisição do hub:
// correlation id, usuário e relatório acessado.
package log

import (
	"context"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Nomes de campo compartilhados entre middlewares, casos de uso e fontes de dados
const (
	FieldCorrelationID = "correlation_id"
	FieldUserID        = "user_id"
	FieldReport        = "report"
	FieldScope         = "scope"
	FieldFilters       = "filters"
	FieldSource        = "source"
)

// verboseFields são omitidos em desenvolvimento para o console ficar legível
var verboseFields = map[string]struct{}{
	"remote_addr":    {},
	"user_agent":     {},
	"referer":        {},
	"content_type":   {},
	"content_length": {},
	"query":          {},
}

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	// WithFilters registra apenas as chaves ativas do filtro de um escopo
	WithFilters(scope string, state map[string]string) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
}

type contextKey int

const (
	correlationIDKey contextKey = iota
	userIDKey
	reportKey
)

type logger struct {
	entry *logrus.Entry
}

// L é o logger sem contexto de requisição
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger deixa a saída dos testes compacta e em nível debug
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() {
		if _, verbose := verboseFields[key]; verbose {
			return l
		}
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for key, value := range fields {
		if _, verbose := verboseFields[key]; verbose && IsDevelopment() {
			continue
		}
		kept[key] = value
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithFilters(scope string, state map[string]string) Logger {
	active := make([]string, 0, len(state))
	for key, value := range state {
		if value != "" {
			active = append(active, key+"="+value)
		}
	}
	sort.Strings(active)

	return &logger{entry: l.entry.WithFields(logrus.Fields{
		FieldScope:   scope,
		FieldFilters: active,
	})}
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

// WithCorrelationID gera o id que acompanha todos os logs da requisição
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func CorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(correlationIDKey).(string)
	return correlationID
}

// WithUser marca o contexto com o usuário autenticado
func WithUser(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// WithReport marca o contexto com o relatório que está sendo montado
func WithReport(ctx context.Context, report string) context.Context {
	return context.WithValue(ctx, reportKey, report)
}

// ForContext cria um logger com os campos de requisição presentes no contexto
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}

	fields := Fields{}
	if correlationID := CorrelationID(ctx); correlationID != "" {
		fields[FieldCorrelationID] = correlationID
	}
	if userID, ok := ctx.Value(userIDKey).(int); ok {
		fields[FieldUserID] = userID
	}
	if report, ok := ctx.Value(reportKey).(string); ok {
		fields[FieldReport] = report
	}

	if len(fields) == 0 {
		return L
	}
	return L.WithFields(fields)
}
