// package model はドメインモデルを定義します
package model

// Kind はファイルシステム要素の種別を表します
type Kind int

const (
	// KindOther はシンボリックリンクや特殊ファイルなど、ディレクトリでも通常ファイルでもない要素です
	KindOther Kind = iota
	// KindDirectory はディレクトリです
	KindDirectory
	// KindFile は通常ファイルです
	KindFile
)

// IgnoreTag は除外された要素の詳細ログに使うタグです
const IgnoreTag = "IGNORE"

// String は詳細ログに出力するタグを返します
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "DIRECTORY"
	case KindFile:
		return "FILE"
	default:
		return "OTHER"
	}
}

// Node は走査中に訪れたファイルシステムの要素を表します
type Node struct {
	// Path は走査で保持しているパスを表します（ルートの指定形式に従います）
	Path string
	// Kind は要素の種別を表します
	Kind Kind
}

// IsDir はディレクトリであるかどうかを示します
func (n Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// Summary は一回の走査の集計結果です
type Summary struct {
	Visited  int
	Ignored  int
	Proposed int
	Renamed  int
}
