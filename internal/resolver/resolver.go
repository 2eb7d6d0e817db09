// Package resolver performs the static scope pass between parsing and
// evaluation. It records, for every local variable reference, how many
// environments separate the use from its declaration.
package resolver

import (
	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
	"github.com/tangzhangming/tulox/internal/symbol"
)

// Binder receives resolved hop counts. Expressions never passed to Resolve
// are globals.
type Binder interface {
	Resolve(expr parser.Expression, depth int)
}

// FunctionType 当前所在函数的种类
type FunctionType int

const (
	FunctionNone FunctionType = iota
	FunctionPlain
	FunctionMethod
	FunctionInitializer
)

// ClassType 当前所在类的种类
type ClassType int

const (
	ClassNone ClassType = iota
	ClassPlain
	ClassSub
)

// Resolver 静态作用域解析器
type Resolver struct {
	binder       Binder
	sink         diag.Sink
	scopes       *symbol.Table
	currentFunc  FunctionType
	currentClass ClassType
}

// New 创建解析器，结果写入 binder，错误报告给 sink
func New(binder Binder, sink diag.Sink) *Resolver {
	return &Resolver{
		binder: binder,
		sink:   sink,
		scopes: symbol.New(),
	}
}

// Resolve 解析一组顶层语句
func (r *Resolver) Resolve(stmts []parser.Statement) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

// ResolveExpr 解析单独的表达式（REPL 回显）
func (r *Resolver) ResolveExpr(expr parser.Expression) {
	r.resolveExpr(expr)
}

func (r *Resolver) error(tok lexer.Token, msg string) {
	r.sink.Report(tok.Line, tok.Where(), msg)
}

func (r *Resolver) declare(name lexer.Token) {
	if !r.scopes.Declare(name.Lexeme) {
		r.error(name, i18n.T(i18n.ErrAlreadyDeclared, name.Lexeme))
	}
}

func (r *Resolver) define(name lexer.Token) {
	r.scopes.Define(name.Lexeme)
}

// resolveLocal 记录引用到声明之间的作用域层数，找不到时视为全局变量
func (r *Resolver) resolveLocal(expr parser.Expression, name string) {
	if hops, ok := r.scopes.Lookup(name); ok {
		r.binder.Resolve(expr, hops)
	}
}

func (r *Resolver) resolveStmt(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.BlockStmt:
		r.scopes.Begin()
		r.Resolve(s.Statements)
		r.scopes.End()

	case *parser.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *parser.FunctionStmt:
		// 先定义名字，函数体内可以递归引用自身
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s.Function, FunctionPlain)

	case *parser.ClassStmt:
		r.resolveClass(s)

	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *parser.PrintStmt:
		r.resolveExpr(s.Expression)

	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *parser.BreakStmt:
		// 循环外的 break 已由语法分析器报告

	case *parser.ReturnStmt:
		if r.currentFunc == FunctionNone {
			r.error(s.Keyword, i18n.T(i18n.ErrReturnTopLevel))
		}
		if s.Value != nil {
			if r.currentFunc == FunctionInitializer {
				r.error(s.Keyword, i18n.T(i18n.ErrReturnFromInit))
			}
			r.resolveExpr(s.Value)
		}
	}
}

// resolveClass 解析类声明
//
// 作用域布局必须与运行时一致：有父类时先压入只含 super 的作用域，
// 再压入只含 this 的作用域，方法体作用域位于其内。
func (r *Resolver) resolveClass(s *parser.ClassStmt) {
	enclosing := r.currentClass
	r.currentClass = ClassPlain
	defer func() { r.currentClass = enclosing }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, i18n.T(i18n.ErrInheritSelf))
		}
		r.currentClass = ClassSub
		r.resolveExpr(s.Superclass)

		r.scopes.Begin()
		r.scopes.Declare("super")
		r.scopes.Define("super")
		defer r.scopes.End()
	}

	r.scopes.Begin()
	r.scopes.Declare("this")
	r.scopes.Define("this")

	for _, method := range s.Methods {
		kind := FunctionMethod
		if method.Name.Lexeme == "init" {
			kind = FunctionInitializer
		}
		r.resolveFunction(method.Function, kind)
	}

	r.scopes.End()
}

// resolveFunction 参数与函数体共用一个作用域，与调用时创建的环境对应
func (r *Resolver) resolveFunction(fn *parser.FunctionExpr, kind FunctionType) {
	enclosing := r.currentFunc
	r.currentFunc = kind
	defer func() { r.currentFunc = enclosing }()

	r.scopes.Begin()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.Resolve(fn.Body)
	r.scopes.End()
}

func (r *Resolver) resolveExpr(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.VariableExpr:
		if r.scopes.InInitializer(e.Name.Lexeme) {
			r.error(e.Name, i18n.T(i18n.ErrReadInOwnInitializer))
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)

	case *parser.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *parser.GetExpr:
		r.resolveExpr(e.Object)

	case *parser.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *parser.ThisExpr:
		if r.currentClass == ClassNone {
			r.error(e.Keyword, i18n.T(i18n.ErrThisOutsideClass))
			return
		}
		r.resolveLocal(e, "this")

	case *parser.SuperExpr:
		switch r.currentClass {
		case ClassNone:
			r.error(e.Keyword, i18n.T(i18n.ErrSuperOutsideClass))
			return
		case ClassPlain:
			r.error(e.Keyword, i18n.T(i18n.ErrSuperNoSuperclass))
			return
		}
		r.resolveLocal(e, "super")

	case *parser.FunctionExpr:
		r.resolveFunction(e, FunctionPlain)

	case *parser.LiteralExpr:
	}
}
