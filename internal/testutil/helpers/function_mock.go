package helpers

import (
	"fmt"
	"reflect"
	"testing"
)

// FunctionMocker は関数変数をモックするためのヘルパー
// cmdパッケージのnewRunnerFuncのような差し替え用の関数変数に使う
type FunctionMocker struct {
	restoreFuncs []func()
}

// NewFunctionMocker は新しいFunctionMockerを作成
// テスト終了時にRestoreが呼ばれる
func NewFunctionMocker(t testing.TB) *FunctionMocker {
	t.Helper()
	mocker := &FunctionMocker{}
	t.Cleanup(mocker.Restore)
	return mocker
}

// MockFunc は関数変数をモックする
// funcPtr は関数変数へのポインタ、mockImpl は同じ型のモック実装
func (m *FunctionMocker) MockFunc(funcPtr interface{}, mockImpl interface{}) *FunctionMocker {
	funcPtrValue := reflect.ValueOf(funcPtr)
	if funcPtrValue.Kind() != reflect.Ptr || funcPtrValue.Elem().Kind() != reflect.Func {
		panic("funcPtr must be a pointer to a function variable")
	}

	funcValue := funcPtrValue.Elem()
	mockValue := reflect.ValueOf(mockImpl)
	if !mockValue.Type().AssignableTo(funcValue.Type()) {
		panic(fmt.Sprintf("mock of type %s cannot replace %s", mockValue.Type(), funcValue.Type()))
	}

	// 元の関数を保存（コピーが必要）
	originalFunc := reflect.New(funcValue.Type()).Elem()
	originalFunc.Set(funcValue)

	funcValue.Set(mockValue)

	m.restoreFuncs = append(m.restoreFuncs, func() {
		funcValue.Set(originalFunc)
	})

	return m
}

// Restore はすべてのモックを元に戻す
func (m *FunctionMocker) Restore() {
	// 逆順で復元（後からモックしたものを先に戻す）
	for i := len(m.restoreFuncs) - 1; i >= 0; i-- {
		m.restoreFuncs[i]()
	}
	m.restoreFuncs = nil
}

// ReplaceFunc は関数変数をimplに置き換え、テスト終了時に元に戻す
func ReplaceFunc[F any](t testing.TB, target *F, impl F) {
	t.Helper()
	original := *target
	*target = impl
	t.Cleanup(func() {
		*target = original
	})
}
