// Package diag collects and prints lexical, static and runtime diagnostics.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// Sink 接收扫描、解析和解析绑定阶段的错误
type Sink interface {
	Report(line int, where, message string)
}

// ColorMode 控制诊断输出是否着色
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Diagnostic 一条已报告的错误
type Diagnostic struct {
	Line    int
	Where   string
	Message string
	Runtime bool
}

// String 按当前语言格式化
func (d Diagnostic) String() string {
	if d.Runtime {
		return i18n.T(i18n.MsgReportRuntime, d.Message, d.Line)
	}
	return i18n.T(i18n.MsgReportStatic, d.Line, d.Where, d.Message)
}

// Reporter 默认的诊断实现：写到输出流并记录错误标志
type Reporter struct {
	out             io.Writer
	paint           func(a ...interface{}) string
	hadError        bool
	hadRuntimeError bool
	diagnostics     []Diagnostic
}

// NewReporter 创建写到 out 的 Reporter，out 为 nil 时只记录不输出
func NewReporter(out io.Writer, mode ColorMode) *Reporter {
	r := &Reporter{out: out, paint: fmt.Sprint}
	if useColor(out, mode) {
		c := color.New(color.FgRed)
		c.EnableColor()
		r.paint = c.SprintFunc()
	}
	return r
}

// useColor 判断输出是否应着色
func useColor(out io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Report 报告一个静态错误（词法、语法或解析绑定）
func (r *Reporter) Report(line int, where, message string) {
	r.hadError = true
	r.emit(Diagnostic{Line: line, Where: where, Message: message})
}

// RuntimeError 报告一个运行时错误
func (r *Reporter) RuntimeError(line int, message string) {
	r.hadRuntimeError = true
	r.emit(Diagnostic{Line: line, Message: message, Runtime: true})
}

func (r *Reporter) emit(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	if r.out != nil {
		fmt.Fprintln(r.out, r.paint(d.String()))
	}
}

// HadError 是否报告过静态错误
func (r *Reporter) HadError() bool {
	return r.hadError
}

// HadRuntimeError 是否报告过运行时错误
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntimeError
}

// Diagnostics 返回目前为止报告的所有错误
func (r *Reporter) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Reset 清除错误标志，REPL 每行输入前调用
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
	r.diagnostics = nil
}
