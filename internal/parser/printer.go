package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer 以括号形式输出语法树，仅用于调试
type Printer struct {
	sb strings.Builder
}

// PrintProgram 输出整个程序，每条顶层语句一行
func PrintProgram(prog *Program) string {
	var lines []string
	for _, stmt := range prog.Statements {
		lines = append(lines, PrintStatement(stmt))
	}
	return strings.Join(lines, "\n")
}

// PrintStatement 输出一条语句
func PrintStatement(stmt Statement) string {
	var p Printer
	p.stmt(stmt)
	return p.sb.String()
}

// PrintExpression 输出一个表达式
func PrintExpression(expr Expression) string {
	var p Printer
	p.expr(expr)
	return p.sb.String()
}

func (p *Printer) open(name string) {
	p.sb.WriteByte('(')
	p.sb.WriteString(name)
}

func (p *Printer) close() {
	p.sb.WriteByte(')')
}

func (p *Printer) word(s string) {
	p.sb.WriteByte(' ')
	p.sb.WriteString(s)
}

func (p *Printer) sub(expr Expression) {
	p.sb.WriteByte(' ')
	p.expr(expr)
}

func (p *Printer) body(stmts []Statement) {
	for _, s := range stmts {
		p.sb.WriteByte(' ')
		p.stmt(s)
	}
}

func (p *Printer) expr(expr Expression) {
	switch e := expr.(type) {
	case *LiteralExpr:
		p.sb.WriteString(literalText(e.Value))
	case *VariableExpr:
		p.sb.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		p.open("=")
		p.word(e.Name.Lexeme)
		p.sub(e.Value)
		p.close()
	case *BinaryExpr:
		p.open(e.Operator.Lexeme)
		p.sub(e.Left)
		p.sub(e.Right)
		p.close()
	case *LogicalExpr:
		p.open(e.Operator.Lexeme)
		p.sub(e.Left)
		p.sub(e.Right)
		p.close()
	case *UnaryExpr:
		p.open(e.Operator.Lexeme)
		p.sub(e.Right)
		p.close()
	case *GroupingExpr:
		p.open("group")
		p.sub(e.Expression)
		p.close()
	case *CallExpr:
		p.open("call")
		p.sub(e.Callee)
		for _, arg := range e.Arguments {
			p.sub(arg)
		}
		p.close()
	case *GetExpr:
		p.open(".")
		p.sub(e.Object)
		p.word(e.Name.Lexeme)
		p.close()
	case *SetExpr:
		p.open("set")
		p.sub(e.Object)
		p.word(e.Name.Lexeme)
		p.sub(e.Value)
		p.close()
	case *ThisExpr:
		p.sb.WriteString("this")
	case *SuperExpr:
		p.open("super")
		p.word(e.Method.Lexeme)
		p.close()
	case *FunctionExpr:
		p.open("fun")
		p.params(e)
		p.body(e.Body)
		p.close()
	default:
		fmt.Fprintf(&p.sb, "<%T>", expr)
	}
}

func (p *Printer) params(fn *FunctionExpr) {
	names := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		names[i] = param.Lexeme
	}
	p.word("(" + strings.Join(names, " ") + ")")
}

func (p *Printer) stmt(stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		p.open(";")
		p.sub(s.Expression)
		p.close()
	case *PrintStmt:
		p.open("print")
		p.sub(s.Expression)
		p.close()
	case *VarStmt:
		p.open("var")
		p.word(s.Name.Lexeme)
		if s.Initializer != nil {
			p.sub(s.Initializer)
		}
		p.close()
	case *BlockStmt:
		p.open("block")
		p.body(s.Statements)
		p.close()
	case *IfStmt:
		p.open("if")
		p.sub(s.Condition)
		p.sb.WriteByte(' ')
		p.stmt(s.Then)
		if s.Else != nil {
			p.sb.WriteByte(' ')
			p.stmt(s.Else)
		}
		p.close()
	case *WhileStmt:
		p.open("while")
		p.sub(s.Condition)
		p.sb.WriteByte(' ')
		p.stmt(s.Body)
		p.close()
	case *BreakStmt:
		p.open("break")
		p.close()
	case *FunctionStmt:
		p.open("fun")
		p.word(s.Name.Lexeme)
		p.params(s.Function)
		p.body(s.Function.Body)
		p.close()
	case *ReturnStmt:
		p.open("return")
		if s.Value != nil {
			p.sub(s.Value)
		}
		p.close()
	case *ClassStmt:
		p.open("class")
		p.word(s.Name.Lexeme)
		if s.Superclass != nil {
			p.word("<")
			p.word(s.Superclass.Name.Lexeme)
		}
		for _, m := range s.Methods {
			p.sb.WriteByte(' ')
			p.stmt(m)
		}
		p.close()
	default:
		fmt.Fprintf(&p.sb, "<%T>", stmt)
	}
}

func literalText(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
