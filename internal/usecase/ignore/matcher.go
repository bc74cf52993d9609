// Package ignore は glob パターンによる除外判定を提供します
package ignore

import (
	"errors"
	"fmt"
	pathpkg "path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern は不正な glob パターンを示します
var ErrBadPattern = errors.New("不正な glob パターンです")

// Matcher は除外パターンの集合です。ゼロ値は何も除外しません
type Matcher struct {
	patterns []string
}

// NewMatcher はパターンを検証して Matcher を作成します
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		if err := Validate(p); err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, filepath.ToSlash(p))
	}
	return m, nil
}

// Validate はパターンが glob として解釈できるかを確認します
func Validate(pattern string) error {
	if pattern == "" || !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return fmt.Errorf("%q: %w", pattern, ErrBadPattern)
	}
	return nil
}

// Match はいずれかのパターンがパスに一致する場合に true を返します。
// パスは呼び出し側が保持している形式のまま照合します。
// 区切り文字を含まないパターンはベース名に対しても照合します
func (m *Matcher) Match(path string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	slashed := filepath.ToSlash(path)
	base := pathpkg.Base(slashed)

	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, slashed); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, base); ok {
				return true
			}
		}
	}
	return false
}

// Patterns は登録されているパターンを返します
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}
