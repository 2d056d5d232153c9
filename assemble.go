package aspx2html

import (
	"context"
	"strings"

	"github.com/mkume/go-aspx2html/internal/assets"
)

// titleSlot is the substitution token inside the embedded head template.
const titleSlot = "{{TITLE}}"

// documentAssembler defines the contract for wrapping a body in the fixed
// document shell.
type documentAssembler interface {
	AssembleDocument(ctx context.Context, body, title, lang string) string
}

// fixedHeadAssembler builds documents around the shared embedded <head>.
// Every generated document differs only in the title slot, the lang
// attribute, and the body.
type fixedHeadAssembler struct {
	head string
}

// newFixedHeadAssembler creates a fixedHeadAssembler with the embedded head
// template. Panics if the template cannot be loaded (programmer error).
func newFixedHeadAssembler() *fixedHeadAssembler {
	head, err := assets.LoadTemplate("head")
	if err != nil {
		panic("failed to load head template: " + err.Error())
	}
	return &fixedHeadAssembler{head: head}
}

// AssembleDocument wraps body in the full HTML shell. Title and body are
// inserted verbatim; no escaping is applied.
func (a *fixedHeadAssembler) AssembleDocument(ctx context.Context, body, title, lang string) string {
	head := strings.ReplaceAll(a.head, titleSlot, title)

	var buf strings.Builder
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="` + lang + "\">\n")
	buf.WriteString(head)
	buf.WriteString("<body>\n\n")
	buf.WriteString(body)
	buf.WriteString("\n\n</body>\n</html>\n")
	return buf.String()
}
