package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Lexer errors
	ErrUnexpectedChar:      "意外的字符 '%s'。",
	ErrUnterminatedString:  "字符串未结束。",
	ErrUnterminatedComment: "块注释未结束。",

	// Parser errors
	ErrExpectExpression:     "此处需要一个表达式。",
	ErrExpectClassName:      "需要类名。",
	ErrExpectSuperclassName: "需要父类名。",
	ErrExpectClassBody:      "类体前需要 '{'。",
	ErrExpectClassBodyEnd:   "类体后需要 '}'。",
	ErrExpectFuncName:       "需要 %s 名称。",
	ErrExpectParamsStart:    "%s 名称后需要 '('。",
	ErrExpectParamName:      "需要参数名。",
	ErrExpectParamsEnd:      "参数列表后需要 ')'。",
	ErrExpectFuncBody:       "%s 体前需要 '{'。",
	ErrTooManyParams:        "参数不能超过 %d 个。",
	ErrTooManyArgs:          "实参不能超过 %d 个。",
	ErrExpectVarName:        "需要变量名。",
	ErrExpectVarEnd:         "变量声明后需要 ';'。",
	ErrExpectForStart:       "'for' 后需要 '('。",
	ErrExpectLoopCondEnd:    "循环条件后需要 ';'。",
	ErrExpectForEnd:         "for 子句后需要 ')'。",
	ErrExpectIfStart:        "'if' 后需要 '('。",
	ErrExpectIfEnd:          "if 条件后需要 ')'。",
	ErrExpectWhileStart:     "'while' 后需要 '('。",
	ErrExpectWhileEnd:       "条件后需要 ')'。",
	ErrExpectPrintEnd:       "值后需要 ';'。",
	ErrExpectReturnEnd:      "返回值后需要 ';'。",
	ErrExpectBreakEnd:       "'break' 后需要 ';'。",
	ErrExpectExprEnd:        "表达式后需要 ';'。",
	ErrBreakOutsideLoop:     "'break' 只能在循环内使用。",
	ErrExpectBlockEnd:       "代码块后需要 '}'。",
	ErrInvalidAssignTarget:  "无效的赋值目标。",
	ErrExpectArgsEnd:        "实参列表后需要 ')'。",
	ErrExpectPropertyName:   "'.' 后需要属性名。",
	ErrExpectGroupEnd:       "表达式后需要 ')'。",
	ErrExpectSuperDot:       "'super' 后需要 '.'。",
	ErrExpectSuperMethod:    "需要父类方法名。",

	// Resolver errors
	ErrReturnTopLevel:       "不能在顶层代码中 return。",
	ErrReturnFromInit:       "不能从构造方法返回值。",
	ErrThisOutsideClass:     "不能在类外使用 'this'。",
	ErrSuperOutsideClass:    "不能在类外使用 'super'。",
	ErrSuperNoSuperclass:    "没有父类的类中不能使用 'super'。",
	ErrInheritSelf:          "类不能继承自身。",
	ErrAlreadyDeclared:      "当前作用域已存在名为 '%s' 的变量。",
	ErrReadInOwnInitializer: "不能在局部变量自身的初始化表达式中读取它。",

	// Runtime errors
	ErrOperandNumber:      "操作数必须是数字。",
	ErrOperandsNumbers:    "操作数必须都是数字。",
	ErrOperandsAdd:        "操作数必须是两个数字或两个字符串。",
	ErrUndefinedVariable:  "未定义的变量 '%s'。",
	ErrUndefinedProperty:  "未定义的属性 '%s'。",
	ErrOnlyInstancesProps: "只有实例才有属性。",
	ErrOnlyInstancesField: "只有实例才有字段。",
	ErrNotCallable:        "只能调用函数和类。",
	ErrArityMismatch:      "期望 %d 个参数，实际是 %d 个。",
	ErrSuperclassNotClass: "父类必须是一个类。",
	ErrStackOverflow:      "栈溢出。",

	// Diagnostic formatting
	MsgReportStatic:  "[第 %d 行] 错误%s: %s",
	MsgReportRuntime: "%s\n[第 %d 行]",
	MsgWhereEnd:      " 位于末尾",
	MsgWhereToken:    " 位于 '%s'",

	// CLI - Usage and help
	MsgUsage:          "用法: tulox <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdRun:         "  run      运行脚本文件",
	MsgCmdRepl:        "  repl     启动交互式环境",
	MsgCmdTokens:      "  tokens   输出脚本的 token 序列",
	MsgCmdAst:         "  ast      输出脚本的语法树",
	MsgCmdVersion:     "  version  输出版本信息",
	MsgCmdHelp:        "  help     显示帮助信息",
	MsgUseHelp:        "使用 \"tulox <命令> -h\" 查看命令的详细说明。",
	MsgUnknownCommand: "未知命令: %s",

	// CLI - Shared options
	MsgOptDebug:  "开启调试日志",
	MsgOptConfig: "tulox.toml 的路径（默认从脚本目录向上查找）",

	// CLI - Run command
	MsgRunUsage:       "用法: tulox run [选项] <file.lox>",
	MsgRunDescription: "扫描、解析、解析绑定并执行脚本。",
	MsgArgInput:       "  <file.lox>  脚本文件",

	// CLI - Repl command
	MsgReplUsage:       "用法: tulox repl [选项]",
	MsgReplDescription: "逐行读取并求值，单独的表达式会输出其值。",
	MsgReplBanner:      "tulox %s\nCtrl+D 退出，输入 :help 查看命令。",
	MsgReplHelp:        "REPL 命令:\n  :help   显示本信息\n  :reset  丢弃所有定义\n  :quit   退出 REPL",
	MsgReplReset:       "解释器已重置。",
	MsgReplUnknown:     "未知命令，输入 :help 查看帮助。",

	// CLI - Tokens / ast commands
	MsgTokensUsage:       "用法: tulox tokens <file.lox>",
	MsgTokensDescription: "输出扫描器产生的每个 token。",
	MsgAstUsage:          "用法: tulox ast <file.lox>",
	MsgAstDescription:    "以括号形式输出解析后的程序。",

	// CLI - Common errors
	ErrInputRequired:    "错误: 需要输入文件",
	ErrCannotGetCwd:     "错误: 无法获取当前目录: %v",
	ErrCannotLoadConfig: "无法加载配置",
	ErrCannotReadFile:   "无法读取文件",

	// CLI - Info messages
	MsgUsingConfig: "使用配置 %s",
	MsgNoConfig:    "未找到 tulox.toml，使用默认配置",
}
