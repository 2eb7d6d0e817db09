package lox

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/interpreter"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

type harness struct {
	*Session
	out  bytes.Buffer
	errs bytes.Buffer
}

func newHarness() *harness {
	h := &harness{}
	h.Session = NewSession(&h.out, diag.NewReporter(&h.errs, diag.ColorNever))
	return h
}

// run 执行一段程序，返回 print 输出和错误输出
func run(t *testing.T, source string) (string, string) {
	t.Helper()
	h := newHarness()
	h.Run(source)
	return h.out.String(), h.errs.String()
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "block scoping and shadowing",
			source: `
var a = "global a"; var b = "global b"; var c = "global c";
{
  var a = "outer a"; var b = "outer b";
  { var a = "inner a"; print a; print b; print c; }
  print a; print b; print c;
}
print a; print b; print c;`,
			want: "inner a\nouter b\nglobal c\nouter a\nouter b\nglobal c\nglobal a\nglobal b\nglobal c\n",
		},
		{
			name:   "inner declaration shadows only inside its block",
			source: "var a = 1; { var a = 2; print a; } print a;",
			want:   "2\n1\n",
		},
		{
			name: "closure counter",
			source: `
fun makeCounter() {
  var i = 0;
  fun count() { i = i + 1; print i; }
  return count;
}
var counter = makeCounter();
counter();
counter();`,
			want: "1\n2\n",
		},
		{
			name: "closures bind at declaration",
			source: `
var a = "global";
{
  fun showA() { print a; }
  showA();
  var a = "block";
  showA();
}`,
			want: "global\nglobal\n",
		},
		{
			name: "local at distance zero is not treated as global",
			source: `
{
  var a = 1;
  fun f() { var a = 2; a = 3; print a; }
  f();
  print a;
}`,
			want: "3\n1\n",
		},
		{
			name: "break leaves only the innermost loop",
			source: `
for (var i = 0; i < 3; i = i + 1) {
  for (var j = 0; j < 3; j = j + 1) {
    if (j == 1) break;
    print i * 10 + j;
  }
  if (i == 1) break;
}`,
			want: "0\n10\n",
		},
		{
			name: "return from inside a loop",
			source: `
fun find() {
  var i = 0;
  while (true) { if (i == 3) return i; i = i + 1; }
}
print find();`,
			want: "3\n",
		},
		{
			name: "recursion",
			source: `
fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); }
print fib(15);`,
			want: "610\n",
		},
		{
			name: "super dispatch skips the receiver class",
			source: `
class A { method() { print "A method"; } }
class B < A {
  method() { print "B method"; }
  test() { super.method(); }
}
class C < B {}
C().test();`,
			want: "A method\n",
		},
		{
			name: "inherited methods and initializer",
			source: `
class Shape { init(name) { this.name = name; } describe() { return "I am " + this.name; } }
class Square < Shape { init(side) { super.init("square"); this.side = side; } area() { return this.side * this.side; } }
var s = Square(3);
print s.describe();
print s.area();`,
			want: "I am square\n9\n",
		},
		{
			name: "initializer always returns the instance",
			source: `
class Foo { init(x) { this.x = x; return; } }
var foo = Foo(1);
print foo.init(2) == foo;
print foo.x;`,
			want: "true\n2\n",
		},
		{
			name: "bound methods keep this",
			source: `
class Cake {
  taste() { var adjective = "delicious"; print "The " + this.flavor + " cake is " + adjective + "!"; }
}
var cake = Cake();
cake.flavor = "German chocolate";
var taste = cake.taste;
taste();`,
			want: "The German chocolate cake is delicious!\n",
		},
		{
			name: "fields shadow methods",
			source: `
class A { m() { return "method"; } }
var a = A();
print a.m();
a.m = "field";
print a.m;`,
			want: "method\nfield\n",
		},
		{
			name: "printing values",
			source: `
class Cake {}
fun named() {}
print Cake;
print Cake();
print named;
print fun () {};
print clock;
print nil;
print 1.50;
print 1 / 0;`,
			want: "Cake\nCake instance\n<fn named>\n<fn anonymous>\n<native fn>\nnil\n1.5\nInfinity\n",
		},
		{
			name: "equality and concatenation",
			source: `
print "a" + "b";
print 1 == 1;
print nil == nil;
print nil == false;
print "1" == 1;
print 3 != 4;
print !nil;`,
			want: "ab\ntrue\ntrue\nfalse\nfalse\ntrue\ntrue\n",
		},
		{
			name: "logical operators return an operand",
			source: `
print nil or "yes";
print 0 and "second";
print false and undefinedVariable;
print "first" or undefinedVariable;`,
			want: "yes\nsecond\nfalse\nfirst\n",
		},
		{
			name: "anonymous functions as values",
			source: `
fun apply(f, x) { return f(x); }
print apply(fun (n) { return n * 2; }, 21);`,
			want: "42\n",
		},
		{
			name:   "clock returns a number",
			source: `print clock() > 0;`,
			want:   "true\n",
		},
		{
			name: "nested comments are ignored",
			source: `
/* outer /* inner */ still a comment */
print "ok"; // trailing`,
			want: "ok\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errs := run(t, tt.source)
			require.Empty(t, errs)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errs   string
	}{
		{"add mismatch", `print 1 + "a";`, "Operands must be two numbers or two strings.\n[line 1]\n"},
		{"negate string", `print -"a";`, "Operand must be a number.\n[line 1]\n"},
		{"compare mismatch", `print 1 < "a";`, "Operands must be numbers.\n[line 1]\n"},
		{"undefined variable", "\n\nprint missing;", "Undefined variable 'missing'.\n[line 3]\n"},
		{"assign undefined", "missing = 1;", "Undefined variable 'missing'.\n[line 1]\n"},
		{"arity", "fun f(a, b) {}\nf(1);", "Expected 2 arguments but got 1.\n[line 2]\n"},
		{"class arity", "class P { init(a) {} }\nP();", "Expected 1 arguments but got 0.\n[line 2]\n"},
		{"not callable", `"str"();`, "Can only call functions and classes.\n[line 1]\n"},
		{"property on number", "var a = 1; print a.b;", "Only instances have properties.\n[line 1]\n"},
		{"field on number", "var a = 1; a.b = 2;", "Only instances have fields.\n[line 1]\n"},
		{"undefined property", "class A {} print A().nope;", "Undefined property 'nope'.\n[line 1]\n"},
		{"undefined super method", "class A {} class B < A { m() { return super.nope; } } B().m();", "Undefined property 'nope'.\n[line 1]\n"},
		{"superclass not a class", "var NotClass = 1;\nclass A < NotClass {}", "Superclass must be a class.\n[line 2]\n"},
		{"global self reference", "var a = a;", "Undefined variable 'a'.\n[line 1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.Run(tt.source)
			assert.True(t, h.HadRuntimeError())
			assert.False(t, h.HadError())
			assert.Equal(t, tt.errs, h.errs.String())
		})
	}
}

func TestRuntimeErrorStopsExecution(t *testing.T) {
	out, errs := run(t, "print 1;\nprint missing;\nprint 2;")
	assert.Equal(t, "1\n", out)
	assert.Equal(t, "Undefined variable 'missing'.\n[line 2]\n", errs)
}

func TestStaticErrorPreventsExecution(t *testing.T) {
	tests := []struct {
		name   string
		source string
		errs   string
	}{
		{"parse error", "print \"before\";\nprint ;", "[line 2] Error at ';': Expect expression.\n"},
		{"resolve error", "print \"before\";\n{ var a = a; }", "[line 2] Error at 'a': Can't read local variable in its own initializer.\n"},
		{"lex error", "print \"before\";\n@", "[line 2] Error: Unexpected character '@'.\n"},
		{"break outside loop", "print \"before\"; break;", "[line 1] Error at 'break': Must be inside a loop to use 'break'.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.Run(tt.source)
			assert.True(t, h.HadError())
			assert.Empty(t, h.out.String())
			assert.Equal(t, tt.errs, h.errs.String())
		})
	}
}

func TestStackOverflow(t *testing.T) {
	h := newHarness()
	h.Interpreter().SetMaxCallDepth(64)
	h.Run("fun f(n) { return f(n + 1); }\nf(0);")

	assert.True(t, h.HadRuntimeError())
	assert.Equal(t, "Stack overflow.\n[line 1]\n", h.errs.String())

	// 溢出后调用深度已恢复，可以继续执行
	h.Reset()
	h.errs.Reset()
	h.Run("fun g(n) { if (n == 0) return 0; return g(n - 1); }\nprint g(10);")
	assert.Empty(t, h.errs.String())
	assert.Equal(t, "0\n", h.out.String())
}

func TestStackLimitAllowsConfiguredDepth(t *testing.T) {
	h := newHarness()
	h.Interpreter().SetMaxCallDepth(50)
	h.Run("fun down(n) { if (n == 0) return 0; return down(n - 1); }\nprint down(49);")
	assert.Empty(t, h.errs.String())
	assert.Equal(t, "0\n", h.out.String())
}

func TestOversizedDepthIsClamped(t *testing.T) {
	h := newHarness()
	h.Interpreter().SetMaxCallDepth(100000000)
	assert.Equal(t, interpreter.MaxCallDepthLimit, h.Interpreter().MaxCallDepth())

	h.Run("fun f(n) { return f(n + 1); }\nf(0);")
	assert.True(t, h.HadRuntimeError())
	assert.Equal(t, "Stack overflow.\n[line 1]\n", h.errs.String())
}

func TestReplSession(t *testing.T) {
	h := newHarness()

	value, ok := h.Run("var a = 1;")
	assert.False(t, ok)
	assert.Empty(t, value)

	value, ok = h.Run("a + 1;")
	require.True(t, ok)
	assert.Equal(t, "2", value)

	value, ok = h.Run("a = 5;")
	require.True(t, ok)
	assert.Equal(t, "5", value)

	h.Run("print a;")
	assert.Equal(t, "5\n", h.out.String())

	value, ok = h.Run(`"str";`)
	require.True(t, ok)
	assert.Equal(t, "str", value)
}

func TestReplExpressionEvaluatedOnce(t *testing.T) {
	h := newHarness()
	h.Run("var n = 0;")
	h.Run("fun inc() { n = n + 1; return n; }")

	value, ok := h.Run("inc();")
	require.True(t, ok)
	assert.Equal(t, "1", value)

	value, _ = h.Run("n;")
	assert.Equal(t, "1", value)
}

func TestReplRecoversAfterErrors(t *testing.T) {
	h := newHarness()

	_, ok := h.Run("print missing;")
	assert.False(t, ok)
	assert.True(t, h.HadRuntimeError())

	h.Reset()
	h.Run("var ;")
	assert.True(t, h.HadError())

	h.Reset()
	value, ok := h.Run("var missing = 3; ")
	assert.False(t, ok)
	assert.Empty(t, value)
	value, ok = h.Run("missing * 2;")
	require.True(t, ok)
	assert.Equal(t, "6", value)
	assert.False(t, h.HadError())
}

func TestReplClassesAcrossLines(t *testing.T) {
	h := newHarness()
	h.Run("class Base { hi() { return \"hi from \" + this.name; } }")
	h.Run("class Derived < Base { init(name) { this.name = name; } hi() { return super.hi() + \"!\"; } }")

	value, ok := h.Run(`Derived("d").hi();`)
	require.True(t, ok)
	assert.Equal(t, "hi from d!", value)
}

func TestDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	h := newHarness()
	h.Interpreter().SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	h.Run("class A {}\nclass B < A {}\nfun f() {}\nf();\nprint missing;")

	assert.Contains(t, logs.String(), `msg="class defined" name=B methods=0 superclass=A`)
	assert.Contains(t, logs.String(), `msg=call callee="<fn f>" argc=0 depth=1`)
	assert.Contains(t, logs.String(), `msg="runtime error" line=5`)
}

func TestCallLogSkippedAboveDebug(t *testing.T) {
	var logs bytes.Buffer
	h := newHarness()
	h.Interpreter().SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))

	h.Run("fun f() {}\nf();")

	assert.NotContains(t, logs.String(), "msg=call")
}
