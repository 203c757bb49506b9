package domain

type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageZH Language = "zh"
)

type Handedness string

const (
	HandednessLeft  Handedness = "left"
	HandednessRight Handedness = "right"
)

// Preferences holds the three persisted display enums. Each is stored as
// its own key and falls back to its default on a missing or corrupt value.
type Preferences struct {
	Theme      Theme      `json:"theme"`
	Language   Language   `json:"language"`
	Handedness Handedness `json:"handedness"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:      ThemeDay,
		Language:   LanguageEN,
		Handedness: HandednessRight,
	}
}

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDay, ThemeNight:
		return Theme(s), true
	}
	return ThemeDay, false
}

func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageEN, LanguageZH:
		return Language(s), true
	}
	return LanguageEN, false
}

func ParseHandedness(s string) (Handedness, bool) {
	switch Handedness(s) {
	case HandednessLeft, HandednessRight:
		return Handedness(s), true
	}
	return HandednessRight, false
}
