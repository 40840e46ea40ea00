package helpers

import (
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// GetZapFieldsAsMap converts zapcore.Field array to map for easy testing
func GetZapFieldsAsMap(fields []zapcore.Field) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range fields {
		switch field.Type {
		case zapcore.StringType:
			result[field.Key] = field.String
		case zapcore.Int64Type, zapcore.Int32Type, zapcore.DurationType:
			result[field.Key] = field.Integer
		case zapcore.BoolType:
			result[field.Key] = field.Integer == 1
		case zapcore.ErrorType:
			if field.Interface != nil {
				result[field.Key] = field.Interface.(error)
			}
		default:
			// その他の型はInterface経由で取得
			if field.Interface != nil {
				result[field.Key] = field.Interface
			}
		}
	}
	return result
}

// FindEntry returns the first recorded entry with the given message
func FindEntry(recorded *observer.ObservedLogs, message string) (observer.LoggedEntry, bool) {
	entries := recorded.FilterMessage(message).All()
	if len(entries) == 0 {
		return observer.LoggedEntry{}, false
	}
	return entries[0], true
}
