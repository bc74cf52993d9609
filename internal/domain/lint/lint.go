// Package lint はファイル名・ディレクトリ名の正規化ルールを提供します
package lint

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
)

// Replacement は空白とハイフンの置換文字です
const Replacement = '_'

// ErrEmptyName は正規化の結果が空文字列になったことを示します
var ErrEmptyName = errors.New("正規化後の名前が空になります")

// Lint はベース名を正規化します。
// 変更が必要な場合は正規化後の名前と true を、不要な場合は元の名前と false を返します。
// 結果が空文字列になる場合もそのまま返します
func Lint(name string) (string, bool) {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		if unicode.IsSpace(r) || r == '-' {
			r = Replacement
		}
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}

	linted := b.String()
	if linted == name {
		return name, false
	}
	return linted, true
}

// isAllowed は ASCII の英数字、アンダースコア、ピリオドのみを許可します
func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == Replacement, r == '.':
		return true
	}
	return false
}

// BaseName はパスの最後の要素を返します。
// 空のパス、".", ".."、ルートのように名前を持たないパスでは false を返します
func BaseName(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	base := filepath.Base(filepath.Clean(path))
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	if vol := filepath.VolumeName(path); vol != "" && base == vol {
		return "", false
	}
	return base, true
}
