package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer errors
	ErrUnexpectedChar:      "Unexpected character '%s'.",
	ErrUnterminatedString:  "Unterminated string.",
	ErrUnterminatedComment: "Unterminated block comment.",

	// Parser errors
	ErrExpectExpression:     "Expect expression.",
	ErrExpectClassName:      "Expect class name.",
	ErrExpectSuperclassName: "Expect superclass name.",
	ErrExpectClassBody:      "Expect '{' before class body.",
	ErrExpectClassBodyEnd:   "Expect '}' after class body.",
	ErrExpectFuncName:       "Expect %s name.",
	ErrExpectParamsStart:    "Expect '(' after %s name.",
	ErrExpectParamName:      "Expect parameter name.",
	ErrExpectParamsEnd:      "Expect ')' after parameters.",
	ErrExpectFuncBody:       "Expect '{' before %s body.",
	ErrTooManyParams:        "Can't have more than %d parameters.",
	ErrTooManyArgs:          "Can't have more than %d arguments.",
	ErrExpectVarName:        "Expect variable name.",
	ErrExpectVarEnd:         "Expect ';' after variable declaration.",
	ErrExpectForStart:       "Expect '(' after 'for'.",
	ErrExpectLoopCondEnd:    "Expect ';' after loop condition.",
	ErrExpectForEnd:         "Expect ')' after for clauses.",
	ErrExpectIfStart:        "Expect '(' after 'if'.",
	ErrExpectIfEnd:          "Expect ')' after if condition.",
	ErrExpectWhileStart:     "Expect '(' after 'while'.",
	ErrExpectWhileEnd:       "Expect ')' after condition.",
	ErrExpectPrintEnd:       "Expect ';' after value.",
	ErrExpectReturnEnd:      "Expect ';' after return value.",
	ErrExpectBreakEnd:       "Expect ';' after 'break'.",
	ErrExpectExprEnd:        "Expect ';' after expression.",
	ErrBreakOutsideLoop:     "Must be inside a loop to use 'break'.",
	ErrExpectBlockEnd:       "Expect '}' after block.",
	ErrInvalidAssignTarget:  "Invalid assignment target.",
	ErrExpectArgsEnd:        "Expect ')' after arguments.",
	ErrExpectPropertyName:   "Expect property name after '.'.",
	ErrExpectGroupEnd:       "Expect ')' after expression.",
	ErrExpectSuperDot:       "Expect '.' after 'super'.",
	ErrExpectSuperMethod:    "Expect superclass method name.",

	// Resolver errors
	ErrReturnTopLevel:       "Can't return from top-level code.",
	ErrReturnFromInit:       "Can't return a value from an initializer.",
	ErrThisOutsideClass:     "Can't use 'this' outside of a class.",
	ErrSuperOutsideClass:    "Can't use 'super' outside of a class.",
	ErrSuperNoSuperclass:    "Can't use 'super' in a class with no superclass.",
	ErrInheritSelf:          "A class can't inherit from itself.",
	ErrAlreadyDeclared:      "Already a variable named '%s' in this scope.",
	ErrReadInOwnInitializer: "Can't read local variable in its own initializer.",

	// Runtime errors
	ErrOperandNumber:      "Operand must be a number.",
	ErrOperandsNumbers:    "Operands must be numbers.",
	ErrOperandsAdd:        "Operands must be two numbers or two strings.",
	ErrUndefinedVariable:  "Undefined variable '%s'.",
	ErrUndefinedProperty:  "Undefined property '%s'.",
	ErrOnlyInstancesProps: "Only instances have properties.",
	ErrOnlyInstancesField: "Only instances have fields.",
	ErrNotCallable:        "Can only call functions and classes.",
	ErrArityMismatch:      "Expected %d arguments but got %d.",
	ErrSuperclassNotClass: "Superclass must be a class.",
	ErrStackOverflow:      "Stack overflow.",

	// Diagnostic formatting
	MsgReportStatic:  "[line %d] Error%s: %s",
	MsgReportRuntime: "%s\n[line %d]",
	MsgWhereEnd:      " at end",
	MsgWhereToken:    " at '%s'",

	// CLI - Usage and help
	MsgUsage:          "Usage: tulox <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdRun:         "  run      Run a script file",
	MsgCmdRepl:        "  repl     Start the interactive prompt",
	MsgCmdTokens:      "  tokens   Print the token stream of a script",
	MsgCmdAst:         "  ast      Print the syntax tree of a script",
	MsgCmdVersion:     "  version  Print version information",
	MsgCmdHelp:        "  help     Show this help message",
	MsgUseHelp:        "Use \"tulox <command> -h\" for more information about a command.",
	MsgUnknownCommand: "Unknown command: %s",

	// CLI - Shared options
	MsgOptDebug:  "Enable debug logging",
	MsgOptConfig: "Path to tulox.toml (default: searched upwards from the script)",

	// CLI - Run command
	MsgRunUsage:       "Usage: tulox run [options] <file.lox>",
	MsgRunDescription: "Scan, parse, resolve and execute a script.",
	MsgArgInput:       "  <file.lox>  Script file",

	// CLI - Repl command
	MsgReplUsage:       "Usage: tulox repl [options]",
	MsgReplDescription: "Read and evaluate one line at a time. Bare expressions print their value.",
	MsgReplBanner:      "tulox %s\nCtrl+D exits. Type :help for commands.",
	MsgReplHelp:        "REPL commands:\n  :help   Show this message\n  :reset  Discard all definitions\n  :quit   Exit the REPL",
	MsgReplReset:       "interpreter reset.",
	MsgReplUnknown:     "unknown command. Type :help for help.",

	// CLI - Tokens / ast commands
	MsgTokensUsage:       "Usage: tulox tokens <file.lox>",
	MsgTokensDescription: "Print every token produced by the scanner.",
	MsgAstUsage:          "Usage: tulox ast <file.lox>",
	MsgAstDescription:    "Print the parsed program in parenthesized form.",

	// CLI - Common errors
	ErrInputRequired:    "Error: input file is required",
	ErrCannotGetCwd:     "Error: cannot get current directory: %v",
	ErrCannotLoadConfig: "cannot load config",
	ErrCannotReadFile:   "cannot read file",

	// CLI - Info messages
	MsgUsingConfig: "using config %s",
	MsgNoConfig:    "no tulox.toml found, using defaults",
}
