package main

import (
	"fmt"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// readFileError 源文件读取失败
type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotReadFile), e.path, e.err)
}

func (e *readFileError) Unwrap() error {
	return e.err
}

// configError 配置文件加载失败
type configError struct {
	path string
	err  error
}

func (e *configError) Error() string {
	if e.path == "" {
		return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotLoadConfig), e.err)
	}
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotLoadConfig), e.path, e.err)
}

func (e *configError) Unwrap() error {
	return e.err
}
