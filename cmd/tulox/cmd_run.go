package main

import (
	"flag"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// runCmd 执行脚本文件，返回进程退出码
func runCmd(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	flags := addCommonFlags(fs)
	fs.Usage = inputUsage(fs, i18n.T(i18n.MsgRunUsage), i18n.T(i18n.MsgRunDescription))

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		return exitUsage
	}
	input := fs.Arg(0)

	source, err := readSource(input)
	if err != nil {
		printError(err.Error())
		return exitIOError
	}

	env, err := setup(flags, scriptDir(input))
	if err != nil {
		printError(err.Error())
		return exitUsage
	}

	session := env.newSession()
	session.Run(source)

	switch {
	case session.HadError():
		return exitStatic
	case session.HadRuntimeError():
		return exitRuntime
	}
	return 0
}
