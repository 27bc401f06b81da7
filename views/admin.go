package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Login renders the admin sign-in form. failed shows the bad-credentials
// notice after a rejected attempt.
func Login(cfg SiteConfig, failed bool, csrf string) templ.Component {
	return page(cfg, "Sign in", func(b *strings.Builder) {
		b.WriteString("<h1>Sign in</h1>\n")
		if failed {
			b.WriteString("<p class=\"error\">Wrong username or password.</p>\n")
		}
		b.WriteString("<form method=\"post\" action=\"/dashbord\" class=\"login-form\">\n")
		csrfField(b, csrf)
		b.WriteString("<label>Username <input name=\"uname\" autocomplete=\"username\" required></label>\n")
		b.WriteString("<label>Password <input name=\"pass\" type=\"password\" autocomplete=\"current-password\" required></label>\n")
		b.WriteString("<button type=\"submit\">Sign in</button>\n</form>\n")
	})
}

// Dashboard renders the admin panel: posts, files, and recent contacts.
func Dashboard(cfg SiteConfig, posts []Post, files []Upload, contacts []Contact, msg, csrf string) templ.Component {
	return page(cfg, "Dashboard", func(b *strings.Builder) {
		b.WriteString("<h1>Dashboard</h1>\n")
		if msg != "" {
			fmt.Fprintf(b, "<p class=\"flash\">%s</p>\n", esc(msg))
		}
		b.WriteString("<p class=\"actions\"><a href=\"/edit/0\">New post</a> <a href=\"/uploder\">Upload file</a> <a href=\"/logout\">Log out</a></p>\n")

		b.WriteString("<section>\n<h2>Posts</h2>\n<table>\n<tr><th>Title</th><th>Slug</th><th>Published</th><th></th></tr>\n")
		for _, p := range posts {
			fmt.Fprintf(b, "<tr><td><a href=\"/edit/%d\">%s</a></td><td>%s</td><td>%s</td>",
				p.ID, esc(p.Title), esc(p.Slug), esc(DisplayDate(p.PublishedAt)))
			fmt.Fprintf(b, "<td><form method=\"post\" action=\"/delete_post/%d\">", p.ID)
			csrfField(b, csrf)
			b.WriteString("<button type=\"submit\">Delete</button></form></td></tr>\n")
		}
		b.WriteString("</table>\n</section>\n")

		b.WriteString("<section>\n<h2>Files</h2>\n<table>\n<tr><th>Filename</th><th>Uploaded</th><th></th></tr>\n")
		for _, f := range files {
			fmt.Fprintf(b, "<tr><td><a href=\"%s\">%s</a></td><td>%s</td>",
				esc(f.Link()), esc(f.Filename), esc(DisplayDate(f.UploadedAt)))
			fmt.Fprintf(b, "<td><form method=\"post\" action=\"/delete_file/%d\">", f.ID)
			csrfField(b, csrf)
			b.WriteString("<button type=\"submit\">Delete</button></form></td></tr>\n")
		}
		b.WriteString("</table>\n</section>\n")

		b.WriteString("<section>\n<h2>Messages</h2>\n<table>\n<tr><th>From</th><th>Email</th><th>Phone</th><th>Message</th><th>Received</th></tr>\n")
		for _, ct := range contacts {
			fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(ct.Name), esc(ct.Email), esc(ct.Phone), esc(truncate(ct.Message, 120)), esc(DisplayDate(ct.ReceivedAt)))
		}
		b.WriteString("</table>\n</section>\n")
	})
}

// Editor renders the post editor; a zero id means a new post.
func Editor(cfg SiteConfig, id int64, post Post, csrf string) templ.Component {
	title := "Edit post"
	if id == 0 {
		title = "New post"
	}
	return page(cfg, title, func(b *strings.Builder) {
		fmt.Fprintf(b, "<h1>%s</h1>\n", esc(title))
		fmt.Fprintf(b, "<form method=\"post\" action=\"/edit/%d\" class=\"editor\">\n", id)
		csrfField(b, csrf)
		fmt.Fprintf(b, "<label>Title <input name=\"title\" value=\"%s\" required></label>\n", esc(post.Title))
		fmt.Fprintf(b, "<label>Slug <input name=\"slug\" value=\"%s\" placeholder=\"derived from title when blank\"></label>\n", esc(post.Slug))
		fmt.Fprintf(b, "<label>Tagline <input name=\"tline\" value=\"%s\"></label>\n", esc(post.Tagline))
		fmt.Fprintf(b, "<label>Image file <input name=\"img_file\" value=\"%s\"></label>\n", esc(post.ImgFile))
		fmt.Fprintf(b, "<label>Content <textarea name=\"content\" rows=\"20\">%s</textarea></label>\n", esc(post.Content))
		b.WriteString("<button type=\"submit\">Save</button>\n</form>\n")
		if id != 0 {
			fmt.Fprintf(b, "<p><a href=\"%s\">View post</a></p>\n", esc(post.Link()))
		}
	})
}

// Uploader renders the admin file-upload form.
func Uploader(cfg SiteConfig, csrf string) templ.Component {
	return page(cfg, "Upload", func(b *strings.Builder) {
		b.WriteString("<h1>Upload a file</h1>\n")
		b.WriteString("<form method=\"post\" action=\"/uploder\" enctype=\"multipart/form-data\" class=\"uploader\">\n")
		csrfField(b, csrf)
		b.WriteString("<label>File <input type=\"file\" name=\"file1\" required></label>\n")
		b.WriteString("<button type=\"submit\">Upload</button>\n</form>\n")
		b.WriteString("<p>Images wider than 800px are downscaled and re-encoded as JPEG.</p>\n")
	})
}
