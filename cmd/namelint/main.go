// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"NameLint/internal/cli"
	"NameLint/internal/domain/model"
	"NameLint/internal/gui"
	"NameLint/internal/infrastructure/filesystem"
	"NameLint/internal/infrastructure/logging"
	"NameLint/internal/interface/ui"
	"NameLint/internal/usecase/report"
	"NameLint/internal/usecase/sanitize"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "エラー: %s\n", exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		stop()
		os.Exit(cli.ExitRuntime)
	}
}

// run は引数の解析から走査までを実行します
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// ロガーの初期化
	logger := logging.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	// ファイルシステムの初期化
	osFS := filesystem.NewOS()

	// 表示用パスの相対化に使うカレントディレクトリ
	workDir, wdErr := os.Getwd()
	if wdErr != nil {
		logger.Log(logging.LevelWarn, "カレントディレクトリを取得できません。パスは相対化されません", wdErr)
	}
	cfg.WorkDir = workDir

	if err := resolveRoot(cfg, osFS, logger, wdErr); err != nil {
		return err
	}

	walker, err := sanitize.NewWalker(cfg, osFS, report.NewReporter(stdout), logger)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	if _, err := walker.Walk(ctx, cfg.Root); err != nil {
		logger.Log(logging.LevelError, "走査に失敗しました", err)
		return err
	}
	return nil
}

// resolveRoot は走査のルートを確定します。
// 指定がなければダイアログまたはカレントディレクトリを使います
func resolveRoot(cfg *model.Config, osFS *filesystem.OS, logger logging.Logger, wdErr error) error {
	if cfg.Pick {
		var picker ui.Picker = ui.NewDirectorySelector(osFS)
		if cfg.Picker == cli.PickerFyne {
			picker = gui.NewDirectorySelector(osFS)
		}

		root, err := picker.SelectDirectory(ui.RootTitle)
		if err != nil {
			return fmt.Errorf("フォルダ選択に失敗: %w", err)
		}
		logger.Log(logging.LevelInfo, "選択されたフォルダ", nil, "root", root)
		cfg.Root = root
		return nil
	}

	if cfg.Root != "" {
		return nil
	}
	if wdErr != nil {
		return fmt.Errorf("カレントディレクトリを取得できません: %w", wdErr)
	}
	cfg.Root = cfg.WorkDir
	return nil
}
