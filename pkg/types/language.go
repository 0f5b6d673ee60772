package types

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language codes understood by the scaffolder.
const (
	LanguagePython = "python"
	LanguageGo     = "go"
	LanguageJava   = "java"
	LanguageCpp    = "cpp"
)

// languageAliases maps user input to a language code.
var languageAliases = map[string]string{
	"py":     LanguagePython,
	"python": LanguagePython,
	"go":     LanguageGo,
	"golang": LanguageGo,
	"java":   LanguageJava,
	"cpp":    LanguageCpp,
	"c++":    LanguageCpp,
}

var languageExtensions = map[string]string{
	LanguagePython: "py",
	LanguageGo:     "go",
	LanguageJava:   "java",
	LanguageCpp:    "cpp",
}

// LookupLanguage resolves an alias (py, c++, ...) to its language code.
func LookupLanguage(s string) (string, bool) {
	code, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]
	return code, ok
}

// ParseLanguage resolves an alias to a language code, falling back to
// DefaultLanguage for anything unrecognised.
func ParseLanguage(s string) string {
	if code, ok := LookupLanguage(s); ok {
		return code
	}
	return DefaultLanguage
}

// LanguageExtension returns the solution file extension for a code.
// Unknown codes get the python extension.
func LanguageExtension(code string) string {
	if ext, ok := languageExtensions[strings.ToLower(code)]; ok {
		return ext
	}
	return languageExtensions[DefaultLanguage]
}

// DisplayLabel returns the label shown in the index for a language code.
// cpp is the only irregular case; everything else is the capitalized code.
func DisplayLabel(code string) string {
	code = strings.TrimSpace(code)
	if strings.EqualFold(code, LanguageCpp) {
		return "C++"
	}
	_, size := utf8.DecodeRuneInString(code)
	return cases.Upper(language.Und).String(code[:size]) + cases.Lower(language.Und).String(code[size:])
}

// LanguageForExtension maps a solution file extension back to its code.
func LanguageForExtension(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	for code, e := range languageExtensions {
		if e == ext {
			return code, true
		}
	}
	return "", false
}
