package interpreter

import (
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
)

// Environment 一层运行时变量环境，与解析阶段的作用域一一对应
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment 创建以 enclosing 为外层的新环境，enclosing 为 nil 表示全局环境
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Define 在当前环境中定义或覆盖变量
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get 沿环境链查找变量
func (e *Environment) Get(name lexer.Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, NewRuntimeError(name, i18n.T(i18n.ErrUndefinedVariable, name.Lexeme))
}

// Assign 沿环境链给已存在的变量赋值
func (e *Environment) Assign(name lexer.Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return NewRuntimeError(name, i18n.T(i18n.ErrUndefinedVariable, name.Lexeme))
}

// Ancestor 向外走 distance 层
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt 读取距离为 distance 的环境中的变量
func (e *Environment) GetAt(distance int, name string) Value {
	return e.Ancestor(distance).values[name]
}

// AssignAt 给距离为 distance 的环境中的变量赋值
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.Ancestor(distance).values[name] = value
}
