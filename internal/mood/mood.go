// Package mood maps free-text moods onto a small set of display categories.
package mood

import "strings"

// Category is a visual bucket for a mood.
type Category string

const (
	Reflective Category = "reflective"
	Calm       Category = "calm"
	Productive Category = "productive"
	Melancholy Category = "melancholy"
	Neutral    Category = "neutral"
)

var known = []Category{Reflective, Calm, Productive, Melancholy}

// Categories returns the known categories, Neutral excluded.
func Categories() []Category {
	out := make([]Category, len(known))
	copy(out, known)
	return out
}

// Classify returns the category for a mood. Matching is case-insensitive
// and exact; anything else is Neutral.
func Classify(m string) Category {
	lower := strings.ToLower(m)
	for _, c := range known {
		if lower == string(c) {
			return c
		}
	}
	return Neutral
}

// Color is the hex colour used for the category's badge.
func (c Category) Color() string {
	switch c {
	case Reflective:
		return "#b9a3eb"
	case Calm:
		return "#89ddff"
	case Productive:
		return "#acfab4"
	case Melancholy:
		return "#d06178"
	default:
		return "#8a8fa8"
	}
}
