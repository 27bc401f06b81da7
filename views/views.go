package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Home renders the paginated post listing.
func Home(cfg SiteConfig, pg PageData) templ.Component {
	return page(cfg, "", func(b *strings.Builder) {
		if cfg.Description != "" {
			fmt.Fprintf(b, "<p class=\"site-intro\">%s</p>\n", esc(cfg.Description))
		}
		if len(pg.Posts) == 0 {
			b.WriteString("<p class=\"empty\">Nothing here yet.</p>\n")
		}
		b.WriteString("<section class=\"post-list\">\n")
		for _, p := range pg.Posts {
			b.WriteString("<article class=\"post-card\">\n")
			fmt.Fprintf(b, "<h2><a href=\"%s\">%s</a></h2>\n", esc(p.Link()), esc(p.Title))
			fmt.Fprintf(b, "<time>%s</time>\n", esc(DisplayDate(p.PublishedAt)))
			if p.Tagline != "" {
				fmt.Fprintf(b, "<p>%s</p>\n", esc(truncate(p.Tagline, 160)))
			}
			b.WriteString("</article>\n")
		}
		b.WriteString("</section>\n")
		b.WriteString("<nav class=\"pager\">\n")
		prevClass := ""
		if pg.Prev == "#" {
			prevClass = " class=\"inert\""
		}
		nextClass := ""
		if pg.Next == "#" {
			nextClass = " class=\"inert\""
		}
		fmt.Fprintf(b, "<a%s href=\"%s\">&larr; Previous</a>\n", prevClass, esc(pg.Prev))
		fmt.Fprintf(b, "<span>Page %d of %d</span>\n", pg.Number, pg.Last)
		fmt.Fprintf(b, "<a%s href=\"%s\">Next &rarr;</a>\n", nextClass, esc(pg.Next))
		b.WriteString("</nav>\n")
	})
}

// PostView renders a single post with its markdown content.
func PostView(cfg SiteConfig, post Post) templ.Component {
	return page(cfg, post.Title, func(b *strings.Builder) {
		b.WriteString("<article class=\"post\">\n")
		fmt.Fprintf(b, "<h1>%s</h1>\n", esc(post.Title))
		fmt.Fprintf(b, "<time>%s</time>\n", esc(DisplayDate(post.PublishedAt)))
		if post.Tagline != "" {
			fmt.Fprintf(b, "<p class=\"tagline\">%s</p>\n", esc(post.Tagline))
		}
		if post.ImgFile != "" {
			fmt.Fprintf(b, "<img src=\"/public/uploads/%s\" alt=\"%s\">\n",
				esc(PathEscape(post.ImgFile)), esc(post.Title))
		}
		b.WriteString("<div class=\"post-body\">\n")
		renderMarkdown(b, post.Content)
		b.WriteString("</div>\n</article>\n")
		fmt.Fprintf(b, "<script type=\"application/ld+json\">%s</script>\n", BlogPostingJsonLD(post, cfg))
	})
}

// About renders the static informational page.
func About(cfg SiteConfig) templ.Component {
	return page(cfg, "About", func(b *strings.Builder) {
		b.WriteString("<article class=\"about\">\n<h1>About</h1>\n")
		if cfg.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", esc(cfg.Description))
		}
		if cfg.Author != "" {
			fmt.Fprintf(b, "<p>Written and maintained by %s.</p>\n", esc(cfg.Author))
		}
		b.WriteString("<p>Get in touch via the <a href=\"/contact\">contact form</a>.</p>\n</article>\n")
	})
}

// ContactForm renders the contact page. sent shows the post-submit banner,
// errMsg shows a validation failure above the form.
func ContactForm(cfg SiteConfig, sent bool, errMsg, csrf string) templ.Component {
	return page(cfg, "Contact", func(b *strings.Builder) {
		b.WriteString("<h1>Contact</h1>\n")
		if sent {
			b.WriteString("<p class=\"flash\">Thanks! Your message has been sent.</p>\n")
		}
		if errMsg != "" {
			fmt.Fprintf(b, "<p class=\"error\">%s</p>\n", esc(errMsg))
		}
		b.WriteString("<form method=\"post\" action=\"/contact\" class=\"contact-form\">\n")
		csrfField(b, csrf)
		b.WriteString("<label>Name <input name=\"name\" required></label>\n")
		b.WriteString("<label>Phone <input name=\"phone\"></label>\n")
		b.WriteString("<label>Email <input name=\"email\" type=\"email\" required></label>\n")
		b.WriteString("<label>Message <textarea name=\"message\" rows=\"6\" required></textarea></label>\n")
		b.WriteString("<button type=\"submit\">Send</button>\n</form>\n")
	})
}

// FileList renders the public uploaded-files listing.
func FileList(cfg SiteConfig, files []Upload) templ.Component {
	return page(cfg, "Files", func(b *strings.Builder) {
		b.WriteString("<h1>Files</h1>\n")
		if len(files) == 0 {
			b.WriteString("<p class=\"empty\">No files uploaded.</p>\n")
			return
		}
		b.WriteString("<ul class=\"file-list\">\n")
		for _, f := range files {
			fmt.Fprintf(b, "<li><a href=\"%s\">%s</a> <time>%s</time></li>\n",
				esc(f.Link()), esc(f.Filename), esc(DisplayDate(f.UploadedAt)))
		}
		b.WriteString("</ul>\n")
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return page(cfg, "Not Found", func(b *strings.Builder) {
		b.WriteString("<h1>404</h1>\n<p>That page does not exist. <a href=\"/\">Back home</a>.</p>\n")
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return page(cfg, "Something went wrong", func(b *strings.Builder) {
		b.WriteString("<h1>Something went wrong</h1>\n<p>Try again in a moment. <a href=\"/\">Back home</a>.</p>\n")
	})
}
