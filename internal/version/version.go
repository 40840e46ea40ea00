package version

import "fmt"

var (
	// Version はビルド時に-ldflagsで設定されるバージョン
	Version = "dev"
	// Commit はビルド時に設定されるGitコミットハッシュ
	Commit = "none"
	// Date はビルド時に設定されるビルド日時
	Date = "unknown"
)

// Info はバージョン情報
type Info struct {
	Version string `yaml:"version"`
	Commit  string `yaml:"commit"`
	Date    string `yaml:"date"`
}

// Get は現在のバージョン情報を返す
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

// String はversionコマンドで表示する1行の文字列を返す
func (i Info) String() string {
	return fmt.Sprintf("buildutils %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
