// Package i18n provides internationalization support for tulox diagnostics and CLI output.
package i18n

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Language represents a supported language
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	currentLang Language
	mu          sync.RWMutex
	once        sync.Once
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		lang := detectLanguage()
		mu.Lock()
		currentLang = lang
		mu.Unlock()
	})
}

// SetLanguage sets the current language manually.
// A manual choice always wins over detection, even when it happens before Init.
func SetLanguage(lang Language) {
	once.Do(func() {})
	mu.Lock()
	currentLang = lang
	mu.Unlock()
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	var messages map[string]string
	switch GetLanguage() {
	case LangChinese:
		messages = zhMessages
	default:
		messages = enMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to English
		template, ok = enMessages[key]
		if !ok {
			// Return key if not found
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// ParseLanguage parses a locale such as "zh_CN.UTF-8", "zh-Hant" or "en_US".
// It returns an empty Language when the code is not recognized.
func ParseLanguage(code string) Language {
	// POSIX locales carry a codeset and modifier that BCP 47 does not know about
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return ""
	}

	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return LangChinese
	case "en":
		return LangEnglish
	}
	return ""
}

// detectLanguage detects the system language.
func detectLanguage() Language {
	// Check environment variables first (works on all platforms)
	for _, envVar := range []string{"TULOX_LANG", "LANG", "LC_ALL", "LANGUAGE"} {
		if lang := os.Getenv(envVar); lang != "" {
			if detected := ParseLanguage(lang); detected != "" {
				return detected
			}
		}
	}

	// Platform-specific detection
	if runtime.GOOS == "windows" {
		return detectWindowsLanguage()
	}

	// Default to English
	return LangEnglish
}

// detectWindowsLanguage detects language on Windows.
func detectWindowsLanguage() Language {
	if lang := os.Getenv("LANG"); lang != "" {
		if detected := ParseLanguage(lang); detected != "" {
			return detected
		}
	}

	// GetUserDefaultUILanguage would need syscall; TULOX_LANG covers the rest.
	return LangEnglish
}
