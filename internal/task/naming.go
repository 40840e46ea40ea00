package task

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// builderDir はBuilderモジュールを置くディレクトリ
const builderDir = "src/task-builders/"

// ModulePath はBuilderモジュールのパス（src/task-builders/<name>-task-builder）
func ModulePath(name string) string {
	return builderDir + name + "-task-builder"
}

// ReferenceName はテストや設定で使う参照名（copy-files -> copyFilesTaskBuilder）
func ReferenceName(name string) string {
	return CamelCase(name) + "TaskBuilder"
}

// ImportKey はモジュールの参照キー（copy-files -> copyFilesTaskBuilderModule）
func ImportKey(name string) string {
	return ReferenceName(name) + "Module"
}

// ClassName はモジュールが公開するConstructorの名前（copy-files -> CopyFilesTaskBuilder）
func ClassName(name string) string {
	return PascalCase(name) + "TaskBuilder"
}

// CamelCase は区切り文字（-, _, 空白, .）で分割した単語をcamelCaseで連結する
func CamelCase(name string) string {
	words := splitWords(name)
	for i, w := range words {
		if i == 0 {
			words[i] = mapFirstRune(w, unicode.ToLower)
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, "")
}

// PascalCase はCamelCaseの先頭を大文字にしたもの
func PascalCase(name string) string {
	return capitalize(CamelCase(name))
}

func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
}

func capitalize(w string) string {
	return mapFirstRune(w, unicode.ToUpper)
}

// mapFirstRune は先頭の1文字（バイトではなくrune）だけを変換する
func mapFirstRune(w string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(f(r)) + w[size:]
}
