package project

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// MissingEnvError は必須の環境変数が設定されていない場合のエラー
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Names, ", "))
}

// LookupFunc は環境変数の参照関数（os.LookupEnv互換）
type LookupFunc func(key string) (string, bool)

// LoadEnv は.envファイルを読み込む。存在しないファイルは無視する
// 既に設定されている環境変数は上書きしない
func LoadEnv(files ...string) ([]string, error) {
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("failed to access env file %s: %w", file, err)
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}

// CheckEnv は必須の環境変数がすべて設定されているか確認する
// 空文字列は未設定として扱う
func CheckEnv(def *Definition, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missing []string
	for _, name := range def.BuildMetadata.RequiredEnv {
		if value, ok := lookup(name); !ok || value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingEnvError{Names: missing}
	}
	return nil
}

// RequiredEnvValues は必須の環境変数の現在値を返す
func RequiredEnvValues(def *Definition, lookup LookupFunc) map[string]string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	values := make(map[string]string, len(def.BuildMetadata.RequiredEnv))
	for _, name := range def.BuildMetadata.RequiredEnv {
		value, _ := lookup(name)
		values[name] = value
	}
	return values
}
