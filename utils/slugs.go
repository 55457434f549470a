package utils

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Slugify converts a title into its URL-safe form
func Slugify(title string) string {
	return slug.Make(title)
}

// SlugWithSuffix appends the numeric disambiguation suffix used when a
// slug collides with an existing one
func SlugWithSuffix(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
