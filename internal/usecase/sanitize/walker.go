// Package sanitize はディレクトリツリーを走査し、名前の検査とリネームを行います
package sanitize

import (
	"context"
	"fmt"
	"path/filepath"

	"NameLint/internal/domain/lint"
	"NameLint/internal/domain/model"
	"NameLint/internal/infrastructure/filesystem"
	"NameLint/internal/infrastructure/logging"
	"NameLint/internal/usecase/ignore"
	"NameLint/internal/usecase/report"
)

// Outcome は一つの要素に対する検査結果です
type Outcome struct {
	// Path は検査後の要素のパスです。リネームした場合は新しいパスになります
	Path string
	// NewName は正規化後のベース名です
	NewName string
	// Changed は名前の変更が必要かどうかを示します
	Changed bool
	// Renamed は実際にリネームしたかどうかを示します
	Renamed bool
}

// Walker はディレクトリツリーを深さ優先で走査します
type Walker struct {
	cfg      *model.Config
	fs       filesystem.FileSystem
	matcher  *ignore.Matcher
	reporter *report.Reporter
	logger   logging.Logger
}

// NewWalker は新しい Walker インスタンスを作成します。
// cfg は走査の間変更しないでください
func NewWalker(cfg *model.Config, fs filesystem.FileSystem, reporter *report.Reporter, logger logging.Logger) (*Walker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("設定が指定されていません")
	}

	matcher, err := ignore.NewMatcher(cfg.Ignore)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.Discard{}
	}

	return &Walker{
		cfg:      cfg,
		fs:       fs,
		matcher:  matcher,
		reporter: reporter,
		logger:   logger,
	}, nil
}

// Walk は root から走査を開始します。最初のエラーで走査を中断します
func (w *Walker) Walk(ctx context.Context, root string) (model.Summary, error) {
	var summary model.Summary

	w.logger.Log(logging.LevelInfo, "走査を開始します", nil,
		"root", root, "fix", w.cfg.Fix, "ignore", w.matcher.Patterns())

	stack := []string{root}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("走査が中断されました: %w", err)
		}

		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, ok, err := w.visit(path, &summary)
		if err != nil {
			return summary, err
		}
		if !ok || !node.IsDir() {
			continue
		}

		names, err := w.fs.ReadDir(node.Path)
		if err != nil {
			return summary, err
		}

		// 列挙順に訪れるため逆順に積む
		for i := len(names) - 1; i >= 0; i-- {
			stack = append(stack, filepath.Join(node.Path, names[i]))
		}
	}

	w.logger.Log(logging.LevelInfo, "走査が完了しました", nil,
		"visited", summary.Visited, "ignored", summary.Ignored,
		"proposed", summary.Proposed, "renamed", summary.Renamed)

	return summary, nil
}

// visit は一つの要素を処理し、リネーム後のパスを持つノードを返します。
// 除外された場合は false を返します
func (w *Walker) visit(path string, summary *model.Summary) (model.Node, bool, error) {
	if w.matcher.Match(path) {
		summary.Ignored++
		return model.Node{}, false, w.verbose(model.IgnoreTag, path)
	}

	kind, err := w.fs.Classify(path)
	if err != nil {
		return model.Node{}, false, err
	}
	summary.Visited++

	w.logger.Log(logging.LevelDebug, "要素を検査します", nil, "path", path, "kind", kind.String())
	if err := w.verbose(kind.String(), path); err != nil {
		return model.Node{}, false, err
	}

	outcome, err := w.Check(path)
	if err != nil {
		return model.Node{}, false, err
	}
	if outcome.Changed {
		summary.Proposed++
	}
	if outcome.Renamed {
		summary.Renamed++
	}

	return model.Node{Path: outcome.Path, Kind: kind}, true, nil
}

// Check はベース名を検査し、変更が必要なら通知を出力します。
// Fix が有効な場合は同じディレクトリ内でリネームします
func (w *Walker) Check(path string) (Outcome, error) {
	outcome := Outcome{Path: path}

	display := filesystem.Relate(w.cfg.WorkDir, path)
	base, ok := lint.BaseName(display)
	if !ok {
		return outcome, nil
	}

	linted, changed := lint.Lint(base)
	if !changed {
		return outcome, nil
	}
	outcome.NewName = linted
	outcome.Changed = true

	if err := w.reporter.Rename(display, linted); err != nil {
		return outcome, err
	}

	if !w.cfg.Fix {
		return outcome, nil
	}

	if linted == "" {
		return outcome, fmt.Errorf("'%s' はリネームできません: %w", display, lint.ErrEmptyName)
	}

	newPath := filesystem.SiblingPath(path, linted)
	if err := w.fs.Rename(path, newPath); err != nil {
		return outcome, err
	}
	w.logger.Log(logging.LevelDebug, "リネームしました", nil, "from", path, "to", newPath)

	outcome.Path = newPath
	outcome.Renamed = true
	return outcome, nil
}

func (w *Walker) verbose(tag, path string) error {
	if !w.cfg.Verbose {
		return nil
	}
	return w.reporter.Tag(tag, filesystem.Relate(w.cfg.WorkDir, path))
}
