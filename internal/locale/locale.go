package locale

import "strings"

const (
	LanguageBurmese = "my"
	LanguageEnglish = "en"
)

// Default is the locale served at the site root.
const Default = LanguageBurmese

type Preference struct {
	Language string
	Locale   string
	HTMLLang string
}

func IsSupported(language string) bool {
	return language == LanguageBurmese || language == LanguageEnglish
}

func Normalize(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "my") || trimmed == "mm" || trimmed == "bur" {
		return LanguageBurmese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func FromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "my") || strings.Contains(trimmed, "mm") {
		return LanguageBurmese
	}
	if strings.Contains(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func PreferenceForLanguage(language string) Preference {
	if Normalize(language) == LanguageEnglish {
		return Preference{Language: LanguageEnglish, Locale: "en_US", HTMLLang: "en"}
	}
	return Preference{Language: LanguageBurmese, Locale: "my_MM", HTMLLang: "my"}
}

// Alternate returns the other supported language, used for the
// language switcher links on public pages.
func Alternate(language string) string {
	if Normalize(language) == LanguageEnglish {
		return LanguageBurmese
	}
	return LanguageEnglish
}
