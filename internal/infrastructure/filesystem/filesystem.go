// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"NameLint/internal/domain/model"
)

// ErrDestinationExists はリネーム先が既に存在することを示します
var ErrDestinationExists = errors.New("リネーム先が既に存在します")

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// FileSystem は走査とリネームに必要なファイルシステム操作のインターフェースです
type FileSystem interface {
	// Classify はパスの種別を判定します。シンボリックリンクは辿りません
	Classify(path string) (model.Kind, error)
	// ReadDir はディレクトリ直下の要素名を列挙順に返します
	ReadDir(path string) ([]string, error)
	// Rename は要素を移動します
	Rename(oldPath, newPath string) error
}

// OS はホストのファイルシステムを操作する FileSystem の実装です
type OS struct{}

// NewOS は新しい OS インスタンスを作成します
func NewOS() *OS {
	return &OS{}
}

// Classify はパスがディレクトリ、通常ファイル、その他のいずれであるかを返します
func (o *OS) Classify(path string) (model.Kind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return model.KindOther, fmt.Errorf("'%s' の種別を取得できません: %w", path, err)
	}

	switch mode := info.Mode(); {
	case mode.IsDir():
		return model.KindDirectory, nil
	case mode.IsRegular():
		return model.KindFile, nil
	default:
		return model.KindOther, nil
	}
}

// ReadDir はディレクトリ直下の要素名を返します
func (o *OS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ '%s' の読み込みに失敗しました: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Rename は要素をリネームします。既存の要素を上書きすることはありません
func (o *OS) Rename(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("'%s' -> '%s': %w", oldPath, newPath, ErrDestinationExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("リネーム先 '%s' を確認できません: %w", newPath, err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("リネームに失敗しました: %w", err)
	}
	return nil
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (o *OS) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	return nil
}

// SiblingPath は親ディレクトリを保ったままベース名だけを置き換えたパスを返します
func SiblingPath(path, name string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(path)), name)
}

// Relate はパスの先頭から workDir を取り除きます。
// workDir が空の場合や先頭が一致しない場合はパスをそのまま返します。
// 表示専用であり、ファイル操作には使用しないでください
func Relate(workDir, path string) string {
	if workDir == "" {
		return path
	}

	dir := filepath.Clean(workDir)
	clean := filepath.Clean(path)
	if clean == dir {
		return ""
	}

	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if rest, ok := strings.CutPrefix(clean, prefix); ok {
		return rest
	}
	return path
}
