package interpreter

import (
	"github.com/tangzhangming/tulox/internal/lexer"
)

// RuntimeError 运行时错误，Token 指出出错位置
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

// NewRuntimeError 创建运行时错误
func NewRuntimeError(tok lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Line 出错的源码行
func (e *RuntimeError) Line() int {
	return e.Token.Line
}

// completionKind 语句执行结束的方式
type completionKind int

const (
	completionNormal completionKind = iota
	completionBreak
	completionReturn
)

// completion 语句执行结果；break 和 return 不是错误，沿调用栈逐层返回
type completion struct {
	kind  completionKind
	value Value
}

var normal = completion{}
