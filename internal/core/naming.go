package core

// PageFileName is the name of the generated page for a slug.
func PageFileName(slug string) string {
	return slug + ".html"
}
