package validation

import "unicode/utf8"

// Feedback field limits
const (
	RatingMin         = 1
	RatingMax         = 5
	CommentsMaxLength = 1000
)

// Account field limits
const (
	PasswordMinLength = 6
)

// RatingInRange reports whether a rating falls within the accepted scale.
func RatingInRange(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// CommentsWithinLimit reports whether a comment fits the column limit.
// VARCHAR(1000) counts characters, not bytes, so multibyte comments are
// measured in runes.
func CommentsWithinLimit(comments string) bool {
	return utf8.RuneCountInString(comments) <= CommentsMaxLength
}
