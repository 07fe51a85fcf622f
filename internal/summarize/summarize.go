// Package summarize holds the domain types shared by the API server and the
// client: summarization modes, length tiers, and input validation.
package summarize

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinTextLength is the minimum number of characters (runes) an input text
// must have after trimming.
const MinTextLength = 50

// MaxTextLength caps server-side input size.
const MaxTextLength = 10000

// Validation errors carry the exact user-facing messages. The empty-text
// check is subsumed by the length check but kept separate so the two cases
// keep their distinct messages.
var (
	ErrTextRequired = errors.New("Text field is required")
	ErrTextTooShort = errors.New("Text must be at least 50 characters long")
	ErrTextTooLong  = errors.New("Text must be at most 10000 characters long")
	ErrInvalidMode  = errors.New("Invalid mode specified")
	ErrInvalidTier  = errors.New("Invalid length specified")
)

// Mode is a summarization style.
type Mode string

const (
	ModeParagraph Mode = "paragraph"
	ModeBullets   Mode = "bullets"
	ModeELI5      Mode = "eli5"
	ModeQuestions Mode = "questions"
	ModeSEO       Mode = "seo"
)

// DefaultMode is what the page starts with.
const DefaultMode = ModeParagraph

// Modes lists all valid modes in display order.
var Modes = []Mode{ModeParagraph, ModeBullets, ModeELI5, ModeQuestions, ModeSEO}

// ParseMode validates a wire-format mode identifier.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", ErrInvalidMode
}

// Length is a summary length tier. Its string value is the lower-cased wire
// format.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// DefaultLength matches the slider's starting position (middle).
const DefaultLength = LengthMedium

// Lengths is the ordered tier set; index i is slider position i.
var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

// ParseLength validates a wire-format length tier.
func ParseLength(s string) (Length, error) {
	l := Length(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Lengths {
		if l == known {
			return l, nil
		}
	}
	return "", ErrInvalidTier
}

// LengthAt maps a slider position to its tier.
func LengthAt(pos int) (Length, error) {
	if pos < 0 || pos >= len(Lengths) {
		return "", ErrInvalidTier
	}
	return Lengths[pos], nil
}

// Label returns the display label ("Short", "Medium", "Long").
func (l Length) Label() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// ValidateText trims the input and enforces the length bounds. It returns
// the trimmed text on success. No other normalization happens: the trimmed
// string is exactly what goes on the wire.
func ValidateText(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrTextRequired
	}
	n := utf8.RuneCountInString(trimmed)
	if n < MinTextLength {
		return "", ErrTextTooShort
	}
	if n > MaxTextLength {
		return "", ErrTextTooLong
	}
	return trimmed, nil
}
