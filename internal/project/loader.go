package project

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition はプロジェクト定義が不正な場合のエラー
var ErrInvalidDefinition = errors.New("invalid project definition")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Load はプロジェクト定義ファイル（JSONまたはYAML）を読み込む
//
// viperはキーを小文字化するため、buildArgsなど大文字小文字を区別する
// キーを保持できるようyaml.v3で直接パースする。
func Load(path string) (*Definition, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}

	def, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Decode はネストしたマップをDefinitionに変換する
// package.jsonのdependenciesなど未知のキーは無視する
// buildArgsの数値は文字列として扱う
func Decode(raw map[string]interface{}) (*Definition, error) {
	def := &Definition{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           def,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return def, nil
}

// Validate は構造体タグに従ってDefinitionを検証する
func Validate(def *Definition) error {
	err := getValidator().Struct(def)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: failed on '%s'", trimNamespace(e.Namespace()), e.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(messages, "; "))
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// エラーメッセージにはプロジェクトファイル上のキー名を使う
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// trimNamespace は"Definition.buildMetadata.type"の先頭の型名を取り除く
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
