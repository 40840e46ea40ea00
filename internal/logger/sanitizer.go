package logger

import (
	"regexp"
	"strings"
)

const masked = "***MASKED***"

// センシティブなキーのパターン（大文字小文字を区別しない）
// 環境変数名（AWS_SECRET_ACCESS_KEYなど）もこのパターンで判定する
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"token",
	"secret",
	"api_key",
	"apikey",
	"access_key",
	"authorization",
	"auth",
	"credential",
	"credentials",
	"private_key",
	"session_token",
}

// センシティブな値のパターン（正規表現）
var sensitiveValuePatterns = []*regexp.Regexp{
	// AWS access key id (AKIA/ASIA + 16文字)
	regexp.MustCompile(`^(AKIA|ASIA)[0-9A-Z]{16}$`),
	// npm access tokens
	regexp.MustCompile(`^npm_[A-Za-z0-9]{36,}$`),
	// GitHub tokens (container registryのログイン等で使われる)
	regexp.MustCompile(`^gh[psuo]_[A-Za-z0-9]{36,}$`),
	// Authorization Bearer tokens
	regexp.MustCompile(`(?i)^Bearer\s+[A-Za-z0-9\-_\.]{20,}$`),
}

// valuePrefixes はマスク後も残すプレフィックス
var valuePrefixes = []string{"AKIA", "ASIA", "npm_", "ghp_", "ghs_", "ghu_", "gho_", "Bearer "}

// SanitizeValue は値がセンシティブかどうかを判定し、必要に応じてマスクする
func SanitizeValue(value interface{}) interface{} {
	if isSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// SanitizeKeyValue はキーと値の組み合わせをチェックし、センシティブな情報をマスクする
func SanitizeKeyValue(key string, value interface{}) (string, interface{}) {
	if isSensitiveKey(key) {
		if isSensitiveValue(value) {
			return key, maskValue(value)
		}
		return key, masked
	}

	if isSensitiveValue(value) {
		return key, maskValue(value)
	}

	return key, value
}

// SanitizeArgs はログ引数（key-valueペア）をサニタイズする
func SanitizeArgs(args ...interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}

	sanitized := make([]interface{}, len(args))
	copy(sanitized, args)

	// 偶数インデックスがkey、奇数インデックスがvalue
	for i := 0; i < len(sanitized)-1; i += 2 {
		if key, ok := sanitized[i].(string); ok {
			_, sanitized[i+1] = SanitizeKeyValue(key, sanitized[i+1])
		}
	}

	return sanitized
}

// SanitizeEnv は環境変数のマップをサニタイズしたコピーを返す
func SanitizeEnv(env map[string]string) map[string]string {
	result := make(map[string]string, len(env))
	for key, value := range env {
		_, v := SanitizeKeyValue(key, value)
		result[key] = v.(string)
	}
	return result
}

// isSensitiveKey はキーがセンシティブかどうかを判定する
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	for _, pattern := range sensitiveKeyPatterns {
		if lowerKey == pattern ||
			strings.HasPrefix(lowerKey, pattern+"_") ||
			strings.HasSuffix(lowerKey, "_"+pattern) ||
			strings.Contains(lowerKey, "_"+pattern+"_") {
			return true
		}
	}

	return false
}

// isSensitiveValue は値がセンシティブかどうかを判定する
func isSensitiveValue(value interface{}) bool {
	str, ok := value.(string)
	if !ok || str == "" {
		return false
	}

	for _, pattern := range sensitiveValuePatterns {
		if pattern.MatchString(str) {
			return true
		}
	}

	return false
}

// maskValue はセンシティブな値をマスクする（既知のプレフィックスは保持）
func maskValue(value interface{}) string {
	str, ok := value.(string)
	if !ok || str == "" {
		return masked
	}

	for _, prefix := range valuePrefixes {
		if strings.HasPrefix(str, prefix) {
			return prefix + masked
		}
	}

	return masked
}
