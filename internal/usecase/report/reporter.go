// Package report は標準出力に出す走査結果の書式を提供します
package report

import (
	"fmt"
	"io"
	"strconv"
)

// Reporter は詳細ログとリネーム通知を書き出します
type Reporter struct {
	writer io.Writer
}

// NewReporter は新しい Reporter インスタンスを作成します
func NewReporter(writer io.Writer) *Reporter {
	return &Reporter{writer: writer}
}

// Tag は `[TAG] "path"` 形式の行を出力します
func (r *Reporter) Tag(tag, path string) error {
	return r.printf("[%s] %s\n", tag, strconv.Quote(path))
}

// Rename は `"old" -> "new"` 形式の行を出力します
func (r *Reporter) Rename(oldPath, newName string) error {
	return r.printf("%s -> %s\n", strconv.Quote(oldPath), strconv.Quote(newName))
}

func (r *Reporter) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.writer, format, args...); err != nil {
		return fmt.Errorf("出力に失敗しました: %w", err)
	}
	return nil
}
