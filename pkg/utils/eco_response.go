package utils

import (
	"encoding/json"
	"regexp"
	"strings"

	"gorm.io/datatypes"
)

const UnparsedEcoNote = "Réponse non parsée (format inattendu)"

var codeFencePattern = regexp.MustCompile("(?i)```json\\n?|\\n?```")

// RawEcoSuggestions is returned in place of the suggestions when the model
// answer is not valid JSON.
type RawEcoSuggestions struct {
	RawResponse string `json:"raw_response"`
	Note        string `json:"note"`
}

// StripCodeFences removes markdown code fence markers wrapping a JSON answer.
func StripCodeFences(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}

// ParseEcoSuggestions never fails: it returns the cleaned JSON as-is when it
// parses, and a RawEcoSuggestions document carrying the original text otherwise.
func ParseEcoSuggestions(text string) (datatypes.JSON, bool) {
	cleaned := StripCodeFences(text)
	if cleaned != "" && json.Valid([]byte(cleaned)) {
		return datatypes.JSON(cleaned), true
	}

	raw, err := json.Marshal(RawEcoSuggestions{RawResponse: text, Note: UnparsedEcoNote})
	if err != nil {
		return datatypes.JSON(`{}`), false
	}
	return datatypes.JSON(raw), false
}
