package utils

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Slugify produces a URL-safe slug from a display name.
func Slugify(name string) string {
	return slug.Make(name)
}

// SlugifyWithSuffix produces a slug with a numeric suffix, used to
// disambiguate on unique-slug conflicts.
func SlugifyWithSuffix(name string, n int) string {
	return fmt.Sprintf("%s-%d", slug.Make(name), n)
}
