// Package interpreter evaluates a resolved syntax tree.
package interpreter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
)

const (
	// DefaultMaxCallDepth 默认的调用栈深度上限
	DefaultMaxCallDepth = 4096
	// MaxCallDepthLimit 可设置的调用栈深度上限，再深会先耗尽宿主的 goroutine 栈
	MaxCallDepthLimit = 100000
)

// Interpreter 树遍历解释器
//
// 全局环境和解析结果在多次 Interpret 之间保留，REPL 中前面的定义对后续输入可见。
type Interpreter struct {
	globals  *Environment
	env      *Environment
	locals   map[parser.Expression]int
	out      io.Writer
	logger   *slog.Logger
	maxDepth int
	depth    int
}

// New 创建解释器，全局环境中预置 clock
func New() *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", clock)

	return &Interpreter{
		globals:  globals,
		env:      globals,
		locals:   make(map[parser.Expression]int),
		out:      os.Stdout,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxCallDepth,
	}
}

// SetOutput 设置 print 的输出位置
func (in *Interpreter) SetOutput(w io.Writer) {
	in.out = w
}

// SetLogger 设置调试日志
func (in *Interpreter) SetLogger(logger *slog.Logger) {
	if logger != nil {
		in.logger = logger
	}
}

// SetMaxCallDepth 设置调用栈深度上限，n <= 0 时使用默认值，超过 MaxCallDepthLimit 时截断
func (in *Interpreter) SetMaxCallDepth(n int) {
	switch {
	case n <= 0:
		n = DefaultMaxCallDepth
	case n > MaxCallDepthLimit:
		n = MaxCallDepthLimit
	}
	in.maxDepth = n
}

// MaxCallDepth 当前生效的调用栈深度上限
func (in *Interpreter) MaxCallDepth() int {
	return in.maxDepth
}

// Resolve 记录局部变量引用的作用域距离，由解析器调用
func (in *Interpreter) Resolve(expr parser.Expression, depth int) {
	in.locals[expr] = depth
}

// Interpret 依次执行语句，遇到第一个运行时错误即停止并返回它
func (in *Interpreter) Interpret(stmts []parser.Statement) error {
	for _, stmt := range stmts {
		if _, err := in.execute(stmt); err != nil {
			in.logAbort(err)
			return err
		}
	}
	return nil
}

// Evaluate 对单个表达式求值
func (in *Interpreter) Evaluate(expr parser.Expression) (Value, error) {
	v, err := in.evaluate(expr)
	if err != nil {
		in.logAbort(err)
	}
	return v, err
}

func (in *Interpreter) logAbort(err error) {
	if rt, ok := err.(*RuntimeError); ok {
		in.logger.Debug("runtime error", slog.Int("line", rt.Line()), slog.String("message", rt.Message))
	}
}

// executeBlock 在给定环境中执行语句，结束后恢复原环境
func (in *Interpreter) executeBlock(stmts []parser.Statement, env *Environment) (completion, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		c, err := in.execute(stmt)
		if err != nil || c.kind != completionNormal {
			return c, err
		}
	}
	return normal, nil
}

func (in *Interpreter) execute(stmt parser.Statement) (completion, error) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return normal, err

	case *parser.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return normal, err
		}
		fmt.Fprintln(in.out, Stringify(v))
		return normal, nil

	case *parser.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return normal, err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return normal, nil

	case *parser.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *parser.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return normal, err
		}
		if IsTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return normal, nil

	case *parser.WhileStmt:
		return in.executeWhile(s)

	case *parser.BreakStmt:
		return completion{kind: completionBreak}, nil

	case *parser.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return normal, err
			}
			value = v
		}
		return completion{kind: completionReturn, value: value}, nil

	case *parser.FunctionStmt:
		fn := NewFunction(s.Name.Lexeme, s.Function, in.env, false)
		in.env.Define(s.Name.Lexeme, fn)
		return normal, nil

	case *parser.ClassStmt:
		return normal, in.executeClass(s)
	}
	panic(fmt.Sprintf("interpreter: unexpected statement %T", stmt))
}

// executeWhile break 只结束最内层循环，return 继续向外传递
func (in *Interpreter) executeWhile(s *parser.WhileStmt) (completion, error) {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return normal, err
		}
		if !IsTruthy(cond) {
			return normal, nil
		}

		c, err := in.execute(s.Body)
		if err != nil {
			return normal, err
		}
		switch c.kind {
		case completionBreak:
			return normal, nil
		case completionReturn:
			return c, nil
		}
	}
}

// executeClass 创建类对象
//
// 有父类时方法的闭包外再套一层只含 super 的环境，与解析阶段的作用域布局一致。
func (in *Interpreter) executeClass(s *parser.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return NewRuntimeError(s.Superclass.Name, i18n.T(i18n.ErrSuperclassNotClass))
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, nil)

	closure := in.env
	if superclass != nil {
		closure = NewEnvironment(closure)
		closure.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		name := m.Name.Lexeme
		methods[name] = NewFunction(name, m.Function, closure, name == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	in.env.Define(s.Name.Lexeme, class)

	attrs := []any{slog.String("name", class.Name), slog.Int("methods", len(methods))}
	if superclass != nil {
		attrs = append(attrs, slog.String("superclass", superclass.Name))
	}
	in.logger.Debug("class defined", attrs...)
	return nil
}

func (in *Interpreter) evaluate(expr parser.Expression) (Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return e.Value, nil

	case *parser.GroupingExpr:
		return in.evaluate(e.Expression)

	case *parser.VariableExpr:
		return in.lookUpVariable(e.Name, e)

	case *parser.AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := in.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *parser.UnaryExpr:
		return in.evaluateUnary(e)

	case *parser.BinaryExpr:
		return in.evaluateBinary(e)

	case *parser.LogicalExpr:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == lexer.TOKEN_OR {
			if IsTruthy(left) {
				return left, nil
			}
		} else if !IsTruthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)

	case *parser.CallExpr:
		return in.evaluateCall(e)

	case *parser.GetExpr:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, NewRuntimeError(e.Name, i18n.T(i18n.ErrOnlyInstancesProps))
		}
		return instance.Get(e.Name)

	case *parser.SetExpr:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, NewRuntimeError(e.Name, i18n.T(i18n.ErrOnlyInstancesField))
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name, value)
		return value, nil

	case *parser.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)

	case *parser.SuperExpr:
		return in.evaluateSuper(e)

	case *parser.FunctionExpr:
		return NewFunction("", e, in.env, false), nil
	}
	panic(fmt.Sprintf("interpreter: unexpected expression %T", expr))
}

// lookUpVariable 有解析距离时直接定位环境，否则到全局环境查找
func (in *Interpreter) lookUpVariable(name lexer.Token, expr parser.Expression) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

// evaluateSuper super 所在环境的内一层就是 this 所在环境
func (in *Interpreter) evaluateSuper(e *parser.SuperExpr) (Value, error) {
	distance := in.locals[e]
	superclass := in.env.GetAt(distance, "super").(*Class)
	object := in.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(e.Method, i18n.T(i18n.ErrUndefinedProperty, e.Method.Lexeme))
	}
	return method.Bind(object), nil
}

func (in *Interpreter) evaluateUnary(e *parser.UnaryExpr) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TOKEN_BANG:
		return !IsTruthy(right), nil
	case lexer.TOKEN_MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(e.Operator, i18n.T(i18n.ErrOperandNumber))
		}
		return -n, nil
	}
	return nil, nil
}

func (in *Interpreter) evaluateBinary(e *parser.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TOKEN_EQUAL_EQUAL:
		return isEqual(left, right), nil
	case lexer.TOKEN_BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.TOKEN_PLUS:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, NewRuntimeError(e.Operator, i18n.T(i18n.ErrOperandsAdd))
	}

	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, NewRuntimeError(e.Operator, i18n.T(i18n.ErrOperandsNumbers))
	}

	switch e.Operator.Type {
	case lexer.TOKEN_MINUS:
		return l - r, nil
	case lexer.TOKEN_STAR:
		return l * r, nil
	case lexer.TOKEN_SLASH:
		return l / r, nil
	case lexer.TOKEN_GREATER:
		return l > r, nil
	case lexer.TOKEN_GREATER_EQUAL:
		return l >= r, nil
	case lexer.TOKEN_LESS:
		return l < r, nil
	case lexer.TOKEN_LESS_EQUAL:
		return l <= r, nil
	}
	return nil, nil
}

func (in *Interpreter) evaluateCall(e *parser.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(e.Paren, i18n.T(i18n.ErrNotCallable))
	}
	if len(args) != fn.Arity() {
		return nil, NewRuntimeError(e.Paren, i18n.T(i18n.ErrArityMismatch, fn.Arity(), len(args)))
	}

	in.depth++
	defer func() { in.depth-- }()
	if in.depth > in.maxDepth {
		return nil, NewRuntimeError(e.Paren, i18n.T(i18n.ErrStackOverflow))
	}

	if in.logger.Enabled(context.Background(), slog.LevelDebug) {
		in.logger.Debug("call", slog.Any("callee", fn), slog.Int("argc", len(args)), slog.Int("depth", in.depth))
	}
	return fn.Call(in, args)
}
