package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// Components are built with templ.ComponentFunc and write HTML directly.
// Pages are simple enough that hand-built components beat a template layer.

func esc(s string) string {
	return html.EscapeString(s)
}

// DisplayDate formats a timestamp for listing pages; zero times render empty.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// page wraps body in the shared HTML shell: head, nav, footer.
func page(cfg SiteConfig, title string, body func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fullTitle := cfg.Name
		if title != "" {
			fullTitle = title + " — " + cfg.Name
		}
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", esc(fullTitle))
		if cfg.Description != "" {
			fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", esc(cfg.Description))
		}
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\">\n")
		fmt.Fprintf(&b, "<script type=\"application/ld+json\">%s</script>\n", WebsiteJsonLD(cfg))
		b.WriteString("</head>\n<body>\n")
		b.WriteString("<header class=\"site-header\">\n")
		fmt.Fprintf(&b, "<a class=\"brand\" href=\"/\">%s</a>\n", esc(cfg.Name))
		b.WriteString("<nav>\n")
		b.WriteString("<a href=\"/\">Home</a>\n")
		b.WriteString("<a href=\"/about\">About</a>\n")
		b.WriteString("<a href=\"/upload_files\">Files</a>\n")
		b.WriteString("<a href=\"/contact\">Contact</a>\n")
		b.WriteString("<a href=\"/dashbord\">Dashboard</a>\n")
		b.WriteString("</nav>\n</header>\n<main>\n")
		body(&b)
		b.WriteString("</main>\n<footer class=\"site-footer\">")
		if cfg.Author != "" {
			fmt.Fprintf(&b, "<span>&copy; %s</span>", esc(cfg.Author))
		}
		b.WriteString("<a href=\"/feed.xml\">RSS</a></footer>\n</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// csrfField renders the hidden CSRF input expected by the form middleware.
func csrfField(b *strings.Builder, token string) {
	fmt.Fprintf(b, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">\n", esc(token))
}
