// Package logging はロギング機能を提供します
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// ログフォーマット
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error, attrs ...any)
}

// SlogLogger は slog を使ってログを出力するロガーです
type SlogLogger struct {
	logger *slog.Logger
}

// NewLogger は新しい SlogLogger インスタンスを作成します。
// level は debug/info/warn/error、format は json/text を受け付けます
func NewLogger(writer io.Writer, level, format string) *SlogLogger {
	if writer == nil {
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.ToLower(format) == FormatJSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// NewJSONLogger は JSON フォーマットで全レベルを出力するロガーを作成します
func NewJSONLogger(writer io.Writer) *SlogLogger {
	return NewLogger(writer, "debug", FormatJSON)
}

// Log はメッセージをログ出力します。err が nil でない場合は error 属性を付与します
func (l *SlogLogger) Log(level, message string, err error, attrs ...any) {
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.logger.Log(context.Background(), parseLevel(level), message, attrs...)
}

// ValidLevel はログレベル名が有効かどうかを返します
func ValidLevel(level string) bool {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}

// ValidFormat はログフォーマット名が有効かどうかを返します
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatText:
		return true
	}
	return false
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard はログを一切出力しないロガーです
type Discard struct{}

// Log は何もしません
func (Discard) Log(string, string, error, ...any) {}

var _ Logger = (*SlogLogger)(nil)
var _ Logger = Discard{}
