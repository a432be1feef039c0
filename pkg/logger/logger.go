package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_MODE")) == "release" {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	// Create logger
	logger := slog.New(handler)

	return &Logger{
		Logger: logger,
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// Business logic logging methods

// LogTicketBooked logs when a ticket is booked (confirmed or waitlisted)
func (l *Logger) LogTicketBooked(ctx context.Context, pnr, trainID int, status string) {
	l.Logger.InfoContext(ctx,
		"Ticket Booked",
		slog.Int("pnr", pnr),
		slog.Int("train_id", trainID),
		slog.String("status", status),
	)
}

// LogTicketCancelled logs when a ticket is cancelled
func (l *Logger) LogTicketCancelled(ctx context.Context, pnr, trainID int) {
	l.Logger.InfoContext(ctx,
		"Ticket Cancelled",
		slog.Int("pnr", pnr),
		slog.Int("train_id", trainID),
	)
}

// LogWaitlistPromoted logs when a waitlisted ticket is upgraded to a freed seat
func (l *Logger) LogWaitlistPromoted(ctx context.Context, pnr, trainID, seatNo int) {
	l.Logger.InfoContext(ctx,
		"Waitlist Promoted",
		slog.Int("pnr", pnr),
		slog.Int("train_id", trainID),
		slog.Int("seat_no", seatNo),
	)
}

// LogTrainAdded logs when a train is added to the catalog
func (l *Logger) LogTrainAdded(ctx context.Context, trainID int, name string, totalSeats int) {
	l.Logger.InfoContext(ctx,
		"Train Added",
		slog.Int("train_id", trainID),
		slog.String("name", name),
		slog.Int("total_seats", totalSeats),
	)
}

// Security logging methods

// LogAuthSuccess logs successful authentication
func (l *Logger) LogAuthSuccess(ctx context.Context, method string) {
	l.Logger.InfoContext(ctx,
		"Authentication Success",
		slog.String("method", method),
	)
}

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(ctx context.Context, reason string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
	)
}

// Persistence logging methods

// LogStateSaved logs a completed state save
func (l *Logger) LogStateSaved(ctx context.Context, trains, tickets, waiting int) {
	l.Logger.DebugContext(ctx,
		"State Saved",
		slog.Int("trains", trains),
		slog.Int("tickets", tickets),
		slog.Int("waiting", waiting),
	)
}

// LogStateLoadWarning logs a recoverable problem while loading persisted state
func (l *Logger) LogStateLoadWarning(ctx context.Context, file string, err error) {
	l.Logger.WarnContext(ctx,
		"State Load Warning",
		slog.String("file", file),
		slog.String("error", err.Error()),
	)
}

// Helper methods for common patterns

// InfoWithContext logs an info message with context
func (l *Logger) InfoWithContext(ctx context.Context, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.InfoContext(ctx, msg, args...)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
