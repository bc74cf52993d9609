// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"NameLint/internal/infrastructure/filesystem"
)

// ErrCancelled はユーザーが選択をキャンセルしたことを示します
var ErrCancelled = errors.New("ディレクトリの選択がキャンセルされました")

// RootTitle はルート選択ダイアログのタイトルです
const RootTitle = "検査するフォルダを選択"

// Picker は走査のルートを対話的に選択するインターフェースです
type Picker interface {
	SelectDirectory(title string) (string, error)
}

// DirectorySelector はネイティブダイアログでディレクトリ選択機能を提供します
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
	// browse はダイアログを表示して選択されたパスを返します
	browse func(title string) (string, error)
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
		browse: func(title string) (string, error) {
			return dialog.Directory().Title(title).Browse()
		},
	}
}

// SelectDirectory はダイアログを表示してディレクトリを選択します
func (d *DirectorySelector) SelectDirectory(title string) (string, error) {
	selectedDir, err := d.browse(title)
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("ディレクトリの選択に失敗しました: %w", err)
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", fmt.Errorf("無効なディレクトリが選択されました: %w", err)
	}

	return selectedDir, nil
}
