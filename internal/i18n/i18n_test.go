package i18n

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestTablesHaveSameKeys(t *testing.T) {
	if diff := cmp.Diff(keys(enMessages), keys(zhMessages)); diff != "" {
		t.Fatalf("en/zh key mismatch (-en +zh):\n%s", diff)
	}
}

func TestTablesHaveSameVerbs(t *testing.T) {
	for key, en := range enMessages {
		zh := zhMessages[key]
		assert.Equal(t, strings.Count(en, "%"), strings.Count(zh, "%"), key)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := map[string]Language{
		"zh_CN.UTF-8": LangChinese,
		"zh-TW":       LangChinese,
		"en_US.UTF-8": LangEnglish,
		"EN":          LangEnglish,
		"zh-Hant":     LangChinese,
		"de_DE@euro":  "",
		"fr_FR":       "",
		"C":           "",
		"":            "",
	}
	for code, want := range tests {
		assert.Equal(t, want, ParseLanguage(code), code)
	}
}

func TestTranslate(t *testing.T) {
	SetLanguage(LangEnglish)
	assert.Equal(t, "Undefined variable 'x'.", T(ErrUndefinedVariable, "x"))
	assert.Equal(t, "no.such.key", T("no.such.key"))

	SetLanguage(LangChinese)
	defer SetLanguage(LangEnglish)
	assert.Equal(t, zhMessages[ErrStackOverflow], T(ErrStackOverflow))
}
