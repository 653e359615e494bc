package domain

import "fmt"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

var SupportedLanguages = map[Language]bool{
	LanguageEnglish: true,
	LanguageSpanish: true,
}

func (l Language) Parse() (Language, error) {
	if _, ok := SupportedLanguages[l]; !ok {
		return "", fmt.Errorf("unsupported language: %q", string(l))
	}
	return l, nil
}
