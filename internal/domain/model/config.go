package model

// Config はコマンドライン引数から確定した実行設定です。
// 走査の間は読み取り専用として扱います
type Config struct {
	// Root は走査を開始するパスです
	Root string
	// WorkDir は表示用パスを相対化するためのカレントディレクトリです。空の場合は相対化しません
	WorkDir string
	// Fix が true の場合は実際にリネームします
	Fix bool
	// Verbose が true の場合は訪れた全要素を出力します
	Verbose bool
	// Ignore は除外するパスの glob パターンです
	Ignore []string
	// Pick が true の場合はダイアログでルートを選択します
	Pick bool
	// Picker は選択ダイアログの実装名です（native または fyne）
	Picker string
	// LogLevel と LogFormat は診断ログの設定です
	LogLevel  string
	LogFormat string
}
