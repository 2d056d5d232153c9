// Package aspx2html converts legacy ASP.NET Web Forms markup (.aspx) into
// static HTML documents.
//
// # Quick Start
//
// Create a service and convert one source file:
//
//	svc := aspx2html.New()
//
//	result, err := svc.Convert(ctx, aspx2html.Input{
//	    Source: `<%@ Page Title="Home" %><asp:Content>Hello</asp:Content>`,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("home.html", []byte(result.HTML), 0644)
//
// The result contains the complete HTML document (result.HTML) and the title
// extracted from the Page directive (result.Title).
//
// # Conversion Pipeline
//
// The conversion is an ordered sequence of regex rewrites over the source
// text:
//
//  1. Title extraction from the first <%@ Page ... %> directive
//  2. Page directive removal
//  3. Three-line banner comments normalized to HTML comments
//  4. asp:Content wrapper tags stripped (inner content preserved)
//  5. Server comments (<%-- ... --%>) removed
//  6. Remaining server code blocks (<% ... %>) removed
//  7. Assembly into a fixed document shell with a shared <head>
//
// The source is never parsed structurally or validated; malformed markup
// passes through whatever the rewrite rules produce.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	svc := aspx2html.New(
//	    aspx2html.WithLang("en"),
//	    aspx2html.WithDefaultTitle("No Title"),
//	)
//
// # Legacy Encodings
//
// Source trees from old Japanese Web Forms applications are often not UTF-8.
// DecodeText converts raw file bytes to UTF-8 before conversion:
//
//	text, err := aspx2html.DecodeText(raw, "shift_jis")
package aspx2html
