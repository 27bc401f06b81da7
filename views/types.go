package views

import "time"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Blog")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// Post is the core content type stored in SQLite and rendered by templates.
type Post struct {
	ID          int64
	Title       string
	Slug        string
	Tagline     string
	Content     string
	ImgFile     string // filename under /public/uploads, may be empty
	PublishedAt time.Time
}

// Link returns the public URL path of the post.
func (p Post) Link() string {
	return "/post/" + p.Slug
}

// Contact is a contact-form submission. Rows are written once and never
// updated; there is no public delete route.
type Contact struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	Message    string
	ReceivedAt time.Time
}

// Upload records a file stored in the upload directory. The row holds only
// the sanitized filename; the bytes live on disk.
type Upload struct {
	ID         int64
	Filename   string
	UploadedAt time.Time
}

// Link returns the public URL path of the uploaded file.
func (u Upload) Link() string {
	return "/public/uploads/" + u.Filename
}

// PageData is one page of the post listing plus its navigation tokens.
// Prev and Next are href values; "#" marks an inert link on the first and
// last page respectively.
type PageData struct {
	Posts  []Post
	Number int
	Last   int
	Prev   string
	Next   string
}
