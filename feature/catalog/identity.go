package catalog

import (
	"strings"
	"unicode"

	"gamedata-sync/feature/catalog/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BaseKey derives the family grouping key from a raw game identifier. The
// Component_ prefix is stripped, a trailing all-digit variant segment is
// dropped, and the rest is lowercased:
//
//	Component_Ion_Engine_01 -> ion_engine
//	Component_Sensor_Array  -> sensor_array
//
// The variant segment only comes off when at least one other segment
// remains, so Component_01 keeps its digits. BaseKey is idempotent; feeding
// a base key back in returns it unchanged.
func BaseKey(gameName string) string {
	name := strings.TrimPrefix(gameName, models.GameNamePrefix)
	parts := strings.Split(name, "_")
	if len(parts) >= 2 && isNumeric(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return strings.ToLower(strings.Join(parts, "_"))
}

// FriendlyID derives the camelCase catalog id from a display name. Hyphens
// split words like spaces do, each word beyond the first is capitalized with
// the remainder lowered, and anything outside letters and digits is dropped:
//
//	Pulse Cannon    -> pulseCannon
//	Mark-II Shield  -> markIiShield
//
// The second return is false when nothing survives, for example a name made
// entirely of punctuation.
func FriendlyID(displayName string) (string, bool) {
	words := strings.Fields(strings.ReplaceAll(displayName, "-", " "))

	var b strings.Builder
	for i, word := range words {
		if i == 0 {
			word = strings.ToLower(word)
		} else {
			word = capitalize(word)
		}
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// TitleName renders a display name from a base key when the localization
// table has nothing better: underscores become spaces and each word is
// title-cased.
func TitleName(baseKey string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(baseKey, "_", " "))
}

// capitalize uppercases the first rune and lowers the rest, so MARK becomes
// Mark and ii becomes Ii.
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// isNumeric reports whether s is non-empty and entirely decimal digits.
// Signs do not count, so a trailing "-01" segment is kept, not dropped.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
