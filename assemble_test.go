package aspx2html

import (
	"context"
	"strings"
	"testing"
)

func TestFixedHeadAssembler_AssembleDocument(t *testing.T) {
	t.Parallel()

	assembler := newFixedHeadAssembler()
	doc := assembler.AssembleDocument(context.Background(), "<p>body</p>", "Orders", "ja")

	checks := []string{
		"<!DOCTYPE html>\n",
		"<html lang=\"ja\">\n",
		"<title>Orders</title>",
		"<link rel=\"stylesheet\" href=\"Content/jquery-ui.min.css\">",
		"<link rel=\"stylesheet\" href=\"Content/tabulator/tabulator.min.css\">",
		"<script src=\"Scripts/jquery-3.7.1.min.js\"></script>",
		"<script src=\"Scripts/FontAwesome/fontawesome.min.js\"></script>",
		"<script src=\"Scripts/mvp.js\"></script>",
		"</head>\n<body>\n\n<p>body</p>\n\n</body>\n</html>\n",
	}
	for _, want := range checks {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	if strings.Contains(doc, titleSlot) {
		t.Errorf("unresolved title slot in document:\n%s", doc)
	}
}

func TestFixedHeadAssembler_TitleSlotReplacedEverywhere(t *testing.T) {
	t.Parallel()

	a := &fixedHeadAssembler{head: "<head><title>{{TITLE}}</title><meta name=\"x\" content=\"{{TITLE}}\"></head>\n"}
	doc := a.AssembleDocument(context.Background(), "", "T", "ja")
	if strings.Contains(doc, titleSlot) {
		t.Errorf("title slot left unreplaced:\n%s", doc)
	}
	if strings.Count(doc, ">T<") != 1 || !strings.Contains(doc, `content="T"`) {
		t.Errorf("title not substituted in every slot:\n%s", doc)
	}
}

func TestFixedHeadAssembler_EmptyBody(t *testing.T) {
	t.Parallel()

	assembler := newFixedHeadAssembler()
	doc := assembler.AssembleDocument(context.Background(), "", "Untitled Page", "ja")
	if !strings.Contains(doc, "<body>\n\n\n\n</body>") {
		t.Errorf("empty body not wrapped as expected:\n%s", doc)
	}
}
