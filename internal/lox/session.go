// Package lox wires the scanner, parser, resolver and interpreter into a
// single pipeline shared by the run and repl commands.
package lox

import (
	"errors"
	"io"

	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/interpreter"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
	"github.com/tangzhangming/tulox/internal/resolver"
)

// Session 一次解释会话，全局定义在多次 Run 之间保留
type Session struct {
	reporter *diag.Reporter
	interp   *interpreter.Interpreter
}

// NewSession 创建会话，print 输出写到 out，错误报告给 reporter
func NewSession(out io.Writer, reporter *diag.Reporter) *Session {
	interp := interpreter.New()
	interp.SetOutput(out)
	return &Session{reporter: reporter, interp: interp}
}

// Interpreter 底层解释器，用于设置日志和调用深度
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// HadError 是否出现过静态错误
func (s *Session) HadError() bool {
	return s.reporter.HadError()
}

// HadRuntimeError 是否出现过运行时错误
func (s *Session) HadRuntimeError() bool {
	return s.reporter.HadRuntimeError()
}

// Reset 清除错误标志，全局定义不受影响
func (s *Session) Reset() {
	s.reporter.Reset()
}

// Run 执行一段源码
//
// 有静态错误时不执行任何语句。输入恰好是一条表达式语句时只对该表达式求值一次，
// 返回其文本形式和 true；其余情况返回 "" 和 false。
func (s *Session) Run(source string) (string, bool) {
	tokens := lexer.Tokenize(source, s.reporter)
	prog := parser.New(tokens, s.reporter).Parse()
	if s.reporter.HadError() {
		return "", false
	}

	r := resolver.New(s.interp, s.reporter)
	if prog.Expr != nil {
		r.ResolveExpr(prog.Expr)
	} else {
		r.Resolve(prog.Statements)
	}
	if s.reporter.HadError() {
		return "", false
	}

	if prog.Expr != nil {
		v, err := s.interp.Evaluate(prog.Expr)
		if err != nil {
			s.runtimeError(err)
			return "", false
		}
		return interpreter.Stringify(v), true
	}

	if err := s.interp.Interpret(prog.Statements); err != nil {
		s.runtimeError(err)
	}
	return "", false
}

func (s *Session) runtimeError(err error) {
	var rt *interpreter.RuntimeError
	if errors.As(err, &rt) {
		s.reporter.RuntimeError(rt.Line(), rt.Message)
		return
	}
	s.reporter.RuntimeError(0, err.Error())
}
