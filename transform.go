package aspx2html

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled rewrite patterns. Order of application is significant and
// lives in RewriteSource; banners must be normalized before server comments
// are stripped or the middle banner line would be deleted with them.
var (
	// <%@ Page ... %> directive, first match also carries the Title attribute
	pageDirective = regexp.MustCompile(`(?is)<%@\s*Page\s+[^%]*%>`)

	// Title="value" inside a Page directive
	titleAttribute = regexp.MustCompile(`(?i)Title\s*=\s*"([^"]+)"`)

	// Three-line banner: separator, wrapped comment text, separator
	bannerBlock = regexp.MustCompile(`(?is)<%\s*-{3,}\s*%>\s*<%\s*--\s*(.*?)\s*--\s*%>\s*<%\s*-{3,}\s*%>`)

	// asp:Content wrapper tags, inner content is kept
	contentRegionOpen  = regexp.MustCompile(`(?i)<asp:Content[^>]*>`)
	contentRegionClose = regexp.MustCompile(`(?i)</asp:Content>`)

	// <%-- ... --%> server comment, non-greedy across lines
	serverComment = regexp.MustCompile(`(?s)<%--.*?--%>`)

	// Any remaining <% ... %> block that is not a directive
	serverBlock = regexp.MustCompile(`(?s)<%[^@].*?%>`)
)

// sourceRewriter defines the contract for stripping server-side constructs.
type sourceRewriter interface {
	RewriteSource(ctx context.Context, content string) string
}

// webFormsRewriter applies the ordered rewrite rules to Web Forms markup.
type webFormsRewriter struct{}

// RewriteSource applies all rewrites and returns the trimmed document body.
func (r *webFormsRewriter) RewriteSource(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = stripPageDirectives(content)
	content = normalizeBanners(content)
	content = stripContentRegions(content)
	content = stripServerComments(content)
	content = stripServerBlocks(content)
	return strings.TrimSpace(content)
}

// extractTitle returns the Title attribute of the first Page directive.
// Returns "" when the source has no directive or the directive has no title.
func extractTitle(content string) string {
	directive := pageDirective.FindString(content)
	if directive == "" {
		return ""
	}
	m := titleAttribute.FindStringSubmatch(directive)
	if m == nil {
		return ""
	}
	return m[1]
}

// stripPageDirectives deletes every <%@ Page ... %> directive.
func stripPageDirectives(content string) string {
	return pageDirective.ReplaceAllString(content, "")
}

// normalizeBanners rewrites three-line banner blocks into single HTML
// comments. The produced comment no longer matches the banner pattern, so
// the rewrite is idempotent.
func normalizeBanners(content string) string {
	return bannerBlock.ReplaceAllStringFunc(content, func(match string) string {
		inner := bannerBlock.FindStringSubmatch(match)[1]
		return "<!-- ----------- " + strings.TrimSpace(inner) + " ----------- -->"
	})
}

// stripContentRegions removes asp:Content wrapper tags, keeping their
// enclosed content in place.
func stripContentRegions(content string) string {
	content = contentRegionOpen.ReplaceAllString(content, "")
	return contentRegionClose.ReplaceAllString(content, "")
}

// stripServerComments deletes <%-- ... --%> blocks.
func stripServerComments(content string) string {
	return serverComment.ReplaceAllString(content, "")
}

// stripServerBlocks deletes remaining <% ... %> code blocks. Directives
// (<%@) are excluded; they were already removed by stripPageDirectives.
func stripServerBlocks(content string) string {
	return serverBlock.ReplaceAllString(content, "")
}
