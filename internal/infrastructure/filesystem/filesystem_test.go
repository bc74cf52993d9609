package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"NameLint/internal/domain/model"
)

func TestOS_ValidateDirectoryPath(t *testing.T) {
	o := NewOS()

	// テスト用の一時ディレクトリを作成
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(testFile, []byte("test content"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "有効なディレクトリパス",
			path:    tempDir,
			wantErr: false,
		},
		{
			name:    "空のパス",
			path:    "",
			wantErr: true,
		},
		{
			name:    "存在しないパス",
			path:    filepath.Join(tempDir, "notexist"),
			wantErr: true,
		},
		{
			name:    "ファイルのパス",
			path:    testFile,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.ValidateDirectoryPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDirectoryPath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOS_Classify(t *testing.T) {
	o := NewOS()
	tempDir := t.TempDir()

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗: %v", err)
	}
	testFile := filepath.Join(tempDir, "testfile.txt")
	if err := os.WriteFile(testFile, []byte("test content"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		want    model.Kind
		wantErr bool
	}{
		{name: "ディレクトリ", path: testDir, want: model.KindDirectory},
		{name: "通常ファイル", path: testFile, want: model.KindFile},
		{name: "存在しないパス", path: filepath.Join(tempDir, "missing"), want: model.KindOther, wantErr: true},
	}

	if runtime.GOOS != "windows" {
		link := filepath.Join(tempDir, "link")
		if err := os.Symlink(testDir, link); err != nil {
			t.Fatalf("シンボリックリンクの作成に失敗: %v", err)
		}
		tests = append(tests, struct {
			name    string
			path    string
			want    model.Kind
			wantErr bool
		}{name: "ディレクトリへのシンボリックリンク", path: link, want: model.KindOther})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Classify(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Classify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOS_ReadDir(t *testing.T) {
	o := NewOS()
	tempDir := t.TempDir()

	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), nil, 0644); err != nil {
			t.Fatalf("テストファイルの作成に失敗: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tempDir, "sub"), 0755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗: %v", err)
	}

	names, err := o.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("ReadDir() got %v entries, want 3", len(names))
	}

	if _, err := o.ReadDir(filepath.Join(tempDir, "missing")); err == nil {
		t.Error("存在しないディレクトリでエラーが返されていません")
	}
}

func TestOS_Rename(t *testing.T) {
	o := NewOS()
	tempDir := t.TempDir()

	oldPath := filepath.Join(tempDir, "bad name.txt")
	newPath := filepath.Join(tempDir, "bad_name.txt")
	if err := os.WriteFile(oldPath, []byte("content"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	if err := o.Rename(oldPath, newPath); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Errorf("リネーム後のファイルが存在しません: %v", err)
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("リネーム前のファイルが残っています: %v", err)
	}

	// 既存のファイルは上書きしない
	other := filepath.Join(tempDir, "other file.txt")
	if err := os.WriteFile(other, []byte("other"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}
	err := o.Rename(other, newPath)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("Rename() error = %v, want ErrDestinationExists", err)
	}
	content, err := os.ReadFile(newPath)
	if err != nil {
		t.Fatalf("ファイルの読み込みに失敗: %v", err)
	}
	if string(content) != "content" {
		t.Errorf("既存のファイルが上書きされました: %q", content)
	}
}

func TestSiblingPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{name: "相対パス", path: filepath.Join("dir", "bad name"), base: "bad_name", want: filepath.Join("dir", "bad_name")},
		{name: "単独の名前", path: "bad name", base: "bad_name", want: "bad_name"},
		{name: "末尾の区切り文字", path: filepath.Join("dir", "bad name") + string(filepath.Separator), base: "bad_name", want: filepath.Join("dir", "bad_name")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SiblingPath(tt.path, tt.base); got != tt.want {
				t.Errorf("SiblingPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelate(t *testing.T) {
	workDir := filepath.Join(string(filepath.Separator), "home", "user")

	tests := []struct {
		name    string
		workDir string
		path    string
		want    string
	}{
		{name: "配下のパス", workDir: workDir, path: filepath.Join(workDir, "dir", "file.txt"), want: filepath.Join("dir", "file.txt")},
		{name: "作業ディレクトリ自身", workDir: workDir, path: workDir, want: ""},
		{name: "前方一致だが別のディレクトリ", workDir: workDir, path: workDir + "2", want: workDir + "2"},
		{name: "無関係なパス", workDir: workDir, path: filepath.Join(string(filepath.Separator), "tmp", "x"), want: filepath.Join(string(filepath.Separator), "tmp", "x")},
		{name: "相対パス", workDir: workDir, path: "dir", want: "dir"},
		{name: "作業ディレクトリ不明", workDir: "", path: filepath.Join(workDir, "x"), want: filepath.Join(workDir, "x")},
		{name: "ルートが作業ディレクトリ", workDir: string(filepath.Separator), path: filepath.Join(string(filepath.Separator), "tmp"), want: "tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relate(tt.workDir, tt.path); got != tt.want {
				t.Errorf("Relate() = %q, want %q", got, tt.want)
			}
		})
	}
}
