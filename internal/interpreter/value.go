package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
)

// Value 运行时值：nil、bool、float64、string、*Function、*Native、*Class 或 *Instance
type Value = any

// Callable 可调用的值
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// Function 用户定义的函数、方法或匿名函数
type Function struct {
	name          string
	decl          *parser.FunctionExpr
	closure       *Environment
	isInitializer bool
}

// NewFunction 创建闭包，name 为空表示匿名函数
func NewFunction(name string, decl *parser.FunctionExpr, closure *Environment, isInitializer bool) *Function {
	return &Function{name: name, decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int {
	return len(f.decl.Params)
}

// Call 在闭包环境之上为参数新建一层环境并执行函数体
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	c, err := in.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}
	// 初始化方法总是返回实例本身
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if c.kind == completionReturn {
		return c.value, nil
	}
	return nil, nil
}

// Bind 把方法绑定到实例：新建一层只含 this 的环境
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.name, f.decl, env, f.isInitializer)
}

func (f *Function) String() string {
	if f.name == "" {
		return "<fn anonymous>"
	}
	return "<fn " + f.name + ">"
}

// Native 宿主实现的内建函数
type Native struct {
	arity int
	fn    func(args []Value) Value
}

func (n *Native) Arity() int {
	return n.arity
}

func (n *Native) Call(_ *Interpreter, args []Value) (Value, error) {
	return n.fn(args), nil
}

func (n *Native) String() string {
	return "<native fn>"
}

// clock 返回自 Unix 纪元以来的秒数
var clock = &Native{
	arity: 0,
	fn: func([]Value) Value {
		return float64(time.Now().UnixNano()) / float64(time.Second)
	},
}

// Class 类对象，调用它会创建实例
type Class struct {
	Name       string
	Superclass *Class
	methods    map[string]*Function
}

// NewClass 创建类
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, methods: methods}
}

// FindMethod 在类及其父类链上查找方法
func (c *Class) FindMethod(name string) *Function {
	for cls := c; cls != nil; cls = cls.Superclass {
		if m, ok := cls.methods[name]; ok {
			return m
		}
	}
	return nil
}

// Arity 等于 init 的参数个数，没有 init 时为 0
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call 创建实例并执行 init
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}

// Instance 类的实例
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance 创建没有字段的实例
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

// Get 读取属性，字段优先于方法
func (i *Instance) Get(name lexer.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m := i.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i), nil
	}
	return nil, NewRuntimeError(name, i18n.T(i18n.ErrUndefinedProperty, name.Lexeme))
}

// Set 设置字段
func (i *Instance) Set(name lexer.Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}

// IsTruthy nil 和 false 为假，其余都为真
func IsTruthy(v Value) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	}
	return true
}

// isEqual 值相等：同类型且值相同，对象比较身份
func isEqual(a, b Value) bool {
	return a == b
}

// Stringify 把值转成 print 输出的文本
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatNumber(x)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// formatNumber 最短的十进制表示，整数不带小数点
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		// 指数不补零：1e-7 而不是 1e-07
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
