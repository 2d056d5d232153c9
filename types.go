package aspx2html

// Defaults applied when no option or configuration overrides them.
const (
	// DefaultTitle is used when the source has no Page directive or the
	// directive carries no Title attribute.
	DefaultTitle = "Untitled Page"

	// DefaultLang is the lang attribute of the generated <html> element.
	DefaultLang = "ja"
)

// Input holds the content for a single conversion.
type Input struct {
	// Source is the raw .aspx markup, already decoded to UTF-8.
	// See DecodeText for legacy encodings.
	Source string
}

// Result holds the outcome of a single conversion.
type Result struct {
	// HTML is the complete generated document.
	HTML string

	// Title is the page title used in the document head. Either the value
	// of the Title attribute of the first Page directive, or the configured
	// default.
	Title string
}
