// Package gui はGUIを提供します
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"NameLint/internal/infrastructure/filesystem"
	"NameLint/internal/interface/ui"
)

// Default window size constants
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// DirectorySelector は、Fyneを使用してディレクトリ選択を行う構造体
type DirectorySelector struct {
	validator filesystem.DirectoryValidator
}

// NewDirectorySelector は、DirectorySelectorの新しいインスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
	}
}

var _ ui.Picker = (*DirectorySelector)(nil)

// SelectDirectory は、Fyneダイアログを使用してディレクトリを選択し、
// 選択されたパスまたはエラーを返します。
// メインゴルーチンから呼び出す必要があります
func (s *DirectorySelector) SelectDirectory(title string) (string, error) {
	var result struct {
		path string
		err  error
	}
	decided := false

	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	finish := func(path string, err error) {
		result.path, result.err = path, err
		decided = true
		w.Close()
		a.Quit()
	}

	d := dialog.NewFolderOpen(func(selectedURI fyne.ListableURI, err error) {
		// コールバック: ユーザーがディレクトリを選択した結果を受け取る
		if err != nil {
			finish("", fmt.Errorf("フォルダ選択エラー: %w", err))
			return
		}
		if selectedURI == nil {
			finish("", ui.ErrCancelled)
			return
		}
		path := selectedURI.Path()
		if err := s.validator.ValidateDirectoryPath(path); err != nil {
			finish("", fmt.Errorf("パス検証エラー: %w", err))
			return
		}
		finish(path, nil)
	}, w)
	d.Show()
	w.Show()

	// イベントループはウィンドウが閉じられるまで戻りません
	a.Run()

	// ダイアログを使わずにウィンドウを閉じた場合
	if !decided {
		return "", ui.ErrCancelled
	}
	return result.path, result.err
}
