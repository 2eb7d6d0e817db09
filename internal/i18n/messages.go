package i18n

// Message keys for lexer errors
const (
	ErrUnexpectedChar      = "lexer.unexpected_char" // args: char
	ErrUnterminatedString  = "lexer.unterminated_string"
	ErrUnterminatedComment = "lexer.unterminated_comment"
)

// Message keys for parser errors
const (
	ErrExpectExpression     = "parser.expect_expression"
	ErrExpectClassName      = "parser.expect_class_name"
	ErrExpectSuperclassName = "parser.expect_superclass_name"
	ErrExpectClassBody      = "parser.expect_class_body"
	ErrExpectClassBodyEnd   = "parser.expect_class_body_end"
	ErrExpectFuncName       = "parser.expect_func_name"       // args: kind
	ErrExpectParamsStart    = "parser.expect_params_start"    // args: kind
	ErrExpectParamName      = "parser.expect_param_name"
	ErrExpectParamsEnd      = "parser.expect_params_end"
	ErrExpectFuncBody       = "parser.expect_func_body"       // args: kind
	ErrTooManyParams        = "parser.too_many_params"        // args: max
	ErrTooManyArgs          = "parser.too_many_args"          // args: max
	ErrExpectVarName        = "parser.expect_var_name"
	ErrExpectVarEnd         = "parser.expect_var_end"
	ErrExpectForStart       = "parser.expect_for_start"
	ErrExpectLoopCondEnd    = "parser.expect_loop_cond_end"
	ErrExpectForEnd         = "parser.expect_for_end"
	ErrExpectIfStart        = "parser.expect_if_start"
	ErrExpectIfEnd          = "parser.expect_if_end"
	ErrExpectWhileStart     = "parser.expect_while_start"
	ErrExpectWhileEnd       = "parser.expect_while_end"
	ErrExpectPrintEnd       = "parser.expect_print_end"
	ErrExpectReturnEnd      = "parser.expect_return_end"
	ErrExpectBreakEnd       = "parser.expect_break_end"
	ErrExpectExprEnd        = "parser.expect_expr_end"
	ErrBreakOutsideLoop     = "parser.break_outside_loop"
	ErrExpectBlockEnd       = "parser.expect_block_end"
	ErrInvalidAssignTarget  = "parser.invalid_assign_target"
	ErrExpectArgsEnd        = "parser.expect_args_end"
	ErrExpectPropertyName   = "parser.expect_property_name"
	ErrExpectGroupEnd       = "parser.expect_group_end"
	ErrExpectSuperDot       = "parser.expect_super_dot"
	ErrExpectSuperMethod    = "parser.expect_super_method"
)

// Message keys for resolver errors
const (
	ErrReturnTopLevel       = "resolver.return_top_level"
	ErrReturnFromInit       = "resolver.return_from_init"
	ErrThisOutsideClass     = "resolver.this_outside_class"
	ErrSuperOutsideClass    = "resolver.super_outside_class"
	ErrSuperNoSuperclass    = "resolver.super_no_superclass"
	ErrInheritSelf          = "resolver.inherit_self"
	ErrAlreadyDeclared      = "resolver.already_declared" // args: name
	ErrReadInOwnInitializer = "resolver.read_in_own_initializer"
)

// Message keys for runtime errors
const (
	ErrOperandNumber      = "runtime.operand_number"
	ErrOperandsNumbers    = "runtime.operands_numbers"
	ErrOperandsAdd        = "runtime.operands_add"
	ErrUndefinedVariable  = "runtime.undefined_variable" // args: name
	ErrUndefinedProperty  = "runtime.undefined_property" // args: name
	ErrOnlyInstancesProps = "runtime.only_instances_props"
	ErrOnlyInstancesField = "runtime.only_instances_fields"
	ErrNotCallable        = "runtime.not_callable"
	ErrArityMismatch      = "runtime.arity_mismatch" // args: expected, got
	ErrSuperclassNotClass = "runtime.superclass_not_class"
	ErrStackOverflow      = "runtime.stack_overflow"
)

// Message keys for diagnostic formatting
const (
	MsgReportStatic  = "diag.static"      // args: line, where, message
	MsgReportRuntime = "diag.runtime"     // args: message, line
	MsgWhereEnd      = "diag.where_end"
	MsgWhereToken    = "diag.where_token" // args: lexeme
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdRepl        = "cli.cmd_repl"
	MsgCmdTokens      = "cli.cmd_tokens"
	MsgCmdAst         = "cli.cmd_ast"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Shared options
	MsgOptDebug  = "cli.opt_debug"
	MsgOptConfig = "cli.opt_config"

	// Run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgArgInput       = "cli.arg_input"

	// Repl command
	MsgReplUsage       = "cli.repl_usage"
	MsgReplDescription = "cli.repl_description"
	MsgReplBanner      = "cli.repl_banner" // args: version
	MsgReplHelp        = "cli.repl_help"
	MsgReplReset       = "cli.repl_reset"
	MsgReplUnknown     = "cli.repl_unknown"

	// Tokens / ast commands
	MsgTokensUsage       = "cli.tokens_usage"
	MsgTokensDescription = "cli.tokens_description"
	MsgAstUsage          = "cli.ast_usage"
	MsgAstDescription    = "cli.ast_description"

	// Common errors
	ErrInputRequired    = "cli.input_required"
	ErrCannotGetCwd     = "cli.cannot_get_cwd"     // args: error
	ErrCannotLoadConfig = "cli.cannot_load_config"
	ErrCannotReadFile   = "cli.cannot_read_file"

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgNoConfig    = "cli.no_config"
)
