package project

import "sort"

// プロジェクトの種類
const (
	TypeLib             = "lib"
	TypeCLI             = "cli"
	TypeAPI             = "api"
	TypeContainer       = "container"
	TypeAWSMicroservice = "aws-microservice"
)

// 対応言語
const (
	LanguageJS = "js"
	LanguageTS = "ts"
)

// Definition はプロジェクト定義（package.jsonのビルド関連部分）
type Definition struct {
	Name          string        `mapstructure:"name" yaml:"name" validate:"required"`
	Description   string        `mapstructure:"description" yaml:"description"`
	Version       string        `mapstructure:"version" yaml:"version" validate:"required"`
	BuildMetadata BuildMetadata `mapstructure:"buildMetadata" yaml:"buildMetadata"`
}

// BuildMetadata はビルドに関するメタデータ
type BuildMetadata struct {
	Type               string                     `mapstructure:"type" yaml:"type" validate:"required,oneof=lib cli api container aws-microservice"`
	Language           string                     `mapstructure:"language" yaml:"language" validate:"required,oneof=js ts"`
	RequiredEnv        []string                   `mapstructure:"requiredEnv" yaml:"requiredEnv"`
	AWS                AWSConfig                  `mapstructure:"aws" yaml:"aws"`
	StaticFilePatterns []string                   `mapstructure:"staticFilePatterns" yaml:"staticFilePatterns"`
	Container          map[string]ContainerTarget `mapstructure:"container" yaml:"container" validate:"dive"`
}

// AWSConfig はデプロイ対象のCloudFormationスタック
type AWSConfig struct {
	Stacks map[string]string `mapstructure:"stacks" yaml:"stacks"`
}

// ContainerTarget はコンテナビルドのターゲット
type ContainerTarget struct {
	Repo      string            `mapstructure:"repo" yaml:"repo" validate:"required"`
	BuildFile string            `mapstructure:"buildFile" yaml:"buildFile"`
	BuildArgs map[string]string `mapstructure:"buildArgs" yaml:"buildArgs"`
}

// ContainerTargets はコンテナターゲット名をソートして返す
func (d *Definition) ContainerTargets() []string {
	return sortedKeys(d.BuildMetadata.Container)
}

// StackKeys はAWSスタックのキーをソートして返す
func (d *Definition) StackKeys() []string {
	return sortedKeys(d.BuildMetadata.AWS.Stacks)
}

// HasContainers はコンテナビルドを行うプロジェクトかどうか
func (d *Definition) HasContainers() bool {
	t := d.BuildMetadata.Type
	return (t == TypeContainer || t == TypeAWSMicroservice) && len(d.BuildMetadata.Container) > 0
}

// IsAWSMicroservice はAWSにデプロイするプロジェクトかどうか
func (d *Definition) IsAWSMicroservice() bool {
	return d.BuildMetadata.Type == TypeAWSMicroservice
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
