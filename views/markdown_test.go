package views

import (
	"context"
	"strings"
	"testing"
)

func renderToString(t *testing.T, content string) string {
	t.Helper()
	var sb strings.Builder
	if err := Markdown(content).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestMarkdownHeadings(t *testing.T) {
	got := renderToString(t, "# Title\n## Section\n### Sub")
	for _, want := range []string{"<h1>Title</h1>", "<h2>Section</h2>", "<h3>Sub</h3>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownParagraphsJoinLines(t *testing.T) {
	got := renderToString(t, "first line\nsecond line\n\nnew paragraph")
	if !strings.Contains(got, "<p>first line second line</p>") {
		t.Errorf("adjacent lines should join into one paragraph:\n%s", got)
	}
	if !strings.Contains(got, "<p>new paragraph</p>") {
		t.Errorf("blank line should start a new paragraph:\n%s", got)
	}
}

func TestMarkdownList(t *testing.T) {
	got := renderToString(t, "- one\n- two\n* three")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "</ul>") {
		t.Fatalf("missing list wrapper:\n%s", got)
	}
	for _, want := range []string{"<li>one</li>", "<li>two</li>", "<li>three</li>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownCodeBlockIsVerbatim(t *testing.T) {
	got := renderToString(t, "```\n# not a heading\n**not bold**\n```")
	if !strings.Contains(got, "<pre><code>") {
		t.Fatalf("missing code block:\n%s", got)
	}
	if !strings.Contains(got, "# not a heading") {
		t.Errorf("code content should be verbatim:\n%s", got)
	}
	if strings.Contains(got, "<strong>") {
		t.Errorf("inline markup must not apply inside code blocks:\n%s", got)
	}
}

func TestMarkdownBlockquote(t *testing.T) {
	got := renderToString(t, "> quoted words")
	if !strings.Contains(got, "<blockquote>") || !strings.Contains(got, "quoted words") {
		t.Errorf("missing blockquote:\n%s", got)
	}
}

func TestMarkdownInline(t *testing.T) {
	got := renderToString(t, "mix **bold**, *italic*, `code`, and [a link](https://example.com).")
	for _, want := range []string{
		"<strong>bold</strong>",
		"<em>italic</em>",
		"<code>code</code>",
		`<a href="https://example.com">a link</a>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownEscapesHTML(t *testing.T) {
	got := renderToString(t, "<script>alert(1)</script>")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML must be escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("escaped form missing:\n%s", got)
	}
}
