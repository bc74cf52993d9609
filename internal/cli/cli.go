// Package cli はコマンドライン引数を解析し、実行設定に変換します
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"NameLint/internal/domain/model"
	"NameLint/internal/infrastructure/logging"
	"NameLint/internal/usecase/ignore"
)

// Version はビルド時に -ldflags で上書きされます
var Version = "dev"

// 終了コード
const (
	ExitRuntime = 1
	ExitUsage   = 2
)

// 選択ダイアログの実装名
const (
	PickerNative = "native"
	PickerFyne   = "fyne"
)

// ExitError は終了コードを持つエラーです
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Parse はコマンドライン引数を解析します。
// ヘルプやバージョンを表示して終了すべき場合は true を返します
func Parse(args []string, output io.Writer) (*model.Config, bool, error) {
	flagSet := pflag.NewFlagSet("namelint", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
namelint - ファイル名・ディレクトリ名に使えない文字を検出し、置換します

Usage:
  namelint [options] [PATH]

Arguments:
  PATH
    検査するディレクトリまたはファイル（省略時はカレントディレクトリ）

Options:
`)
		flagSet.PrintDefaults()
	}

	fix := flagSet.BoolP("fix", "f", false, "Automatically rename directories/files")
	verbose := flagSet.BoolP("verbose", "v", false, "Log all directories/files traversed")
	ignores := flagSet.StringArrayP("ignore", "i", nil, "Glob pattern of directories/files to ignore (repeatable)")
	pick := flagSet.Bool("pick", false, "Choose the directory to check with a dialog")
	picker := flagSet.String("picker", PickerNative, "Dialog used by --pick: 'native' or 'fyne'")
	logLevel := flagSet.String("log-level", "warn", "Diagnostic log level: 'debug', 'info', 'warn' or 'error'")
	logFormat := flagSet.String("log-format", logging.FormatText, "Diagnostic log format: 'text' or 'json'")
	version := flagSet.BoolP("version", "V", false, "Print version information")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}

	if *version {
		fmt.Fprintf(output, "namelint %s\n", Version)
		return nil, true, nil
	}

	if flagSet.NArg() > 1 {
		return nil, false, usageError("パスは一つだけ指定できます: %s", strings.Join(flagSet.Args(), ", "))
	}
	root := flagSet.Arg(0)

	if *pick && root != "" {
		return nil, false, usageError("--pick とパスは同時に指定できません")
	}
	if *picker != PickerNative && *picker != PickerFyne {
		return nil, false, usageError("不正な --picker です: %q（'native' または 'fyne'）", *picker)
	}

	for _, p := range *ignores {
		if err := ignore.Validate(p); err != nil {
			return nil, false, usageError("不正な --ignore です: %v", err)
		}
	}

	if !logging.ValidLevel(*logLevel) {
		return nil, false, usageError("不正な --log-level です: %q", *logLevel)
	}
	if !logging.ValidFormat(*logFormat) {
		return nil, false, usageError("不正な --log-format です: %q", *logFormat)
	}

	return &model.Config{
		Root:      root,
		Fix:       *fix,
		Verbose:   *verbose,
		Ignore:    append([]string(nil), (*ignores)...),
		Pick:      *pick,
		Picker:    *picker,
		LogLevel:  strings.ToLower(*logLevel),
		LogFormat: strings.ToLower(*logFormat),
	}, false, nil
}
