package inkwell

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ogulcan/inkwell/views"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("inkwell: record not found")

// Store wraps a SQLite database and provides CRUD operations for posts,
// contacts, and upload records. The three tables are independent; there are
// no relationships between them.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately.
	// synchronous=NORMAL is safe with WAL and avoids an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    slug TEXT NOT NULL,
    tagline TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    img_file TEXT NOT NULL DEFAULT '',
    published_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contacts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    received_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS uploads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

// Timestamps are stored as RFC3339 text in UTC.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// --- Posts ---

const postColumns = `id, title, slug, tagline, content, img_file, published_at`

func scanPost(row interface{ Scan(...any) error }) (views.Post, error) {
	var p views.Post
	var publishedAt string
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Tagline, &p.Content, &p.ImgFile, &publishedAt); err != nil {
		return views.Post{}, err
	}
	p.PublishedAt = decodeTime(publishedAt)
	return p, nil
}

// ListPosts returns all posts in insertion order (id ascending). The explicit
// ordering keeps pagination stable between requests.
func (s *Store) ListPosts() ([]views.Post, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []views.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a post by id.
func (s *Store) GetPost(id int64) (views.Post, error) {
	p, err := scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return views.Post{}, ErrNotFound
	}
	return p, err
}

// GetPostBySlug returns the lowest-id post carrying slug. Slug uniqueness is
// not enforced; picking the lowest id makes the lookup deterministic when
// two posts collide.
func (s *Store) GetPostBySlug(slug string) (views.Post, error) {
	p, err := scanPost(s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ? ORDER BY id ASC LIMIT 1`, slug))
	if err == sql.ErrNoRows {
		return views.Post{}, ErrNotFound
	}
	return p, err
}

// CreatePost inserts a new post and returns its assigned id.
func (s *Store) CreatePost(p views.Post) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO posts (title, slug, tagline, content, img_file, published_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Slug, p.Tagline, p.Content, p.ImgFile, encodeTime(p.PublishedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePost overwrites all editable fields of an existing post. The id
// never changes. Returns ErrNotFound when no row has p.ID.
func (s *Store) UpdatePost(p views.Post) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, slug = ?, tagline = ?, content = ?, img_file = ?, published_at = ? WHERE id = ?`,
		p.Title, p.Slug, p.Tagline, p.Content, p.ImgFile, encodeTime(p.PublishedAt), p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes a post by id. Returns ErrNotFound when the id does not
// exist; nothing is mutated in that case.
func (s *Store) DeletePost(id int64) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Contacts ---

// CreateContact inserts a contact-form submission and returns its id.
func (s *Store) CreateContact(ct views.Contact) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO contacts (name, phone, email, message, received_at) VALUES (?, ?, ?, ?, ?)`,
		ct.Name, ct.Phone, ct.Email, ct.Message, encodeTime(ct.ReceivedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListContacts returns submissions newest first for the admin dashboard.
func (s *Store) ListContacts() ([]views.Contact, error) {
	rows, err := s.db.Query(`SELECT id, name, phone, email, message, received_at FROM contacts ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []views.Contact
	for rows.Next() {
		var ct views.Contact
		var receivedAt string
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Phone, &ct.Email, &ct.Message, &receivedAt); err != nil {
			return nil, err
		}
		ct.ReceivedAt = decodeTime(receivedAt)
		contacts = append(contacts, ct)
	}
	return contacts, rows.Err()
}

// --- Uploads ---

// CreateUpload records a stored file and returns the row id.
func (s *Store) CreateUpload(u views.Upload) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO uploads (filename, uploaded_at) VALUES (?, ?)`,
		u.Filename, encodeTime(u.UploadedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListUploads returns upload records in insertion order.
func (s *Store) ListUploads() ([]views.Upload, error) {
	rows, err := s.db.Query(`SELECT id, filename, uploaded_at FROM uploads ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []views.Upload
	for rows.Next() {
		var u views.Upload
		var uploadedAt string
		if err := rows.Scan(&u.ID, &u.Filename, &uploadedAt); err != nil {
			return nil, err
		}
		u.UploadedAt = decodeTime(uploadedAt)
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// DeleteUpload removes an upload record by id and returns the stored
// filename so the caller can remove the file itself. Returns ErrNotFound
// when the id does not exist.
func (s *Store) DeleteUpload(id int64) (string, error) {
	var filename string
	err := s.db.QueryRow(`SELECT filename FROM uploads WHERE id = ?`, id).Scan(&filename)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if _, err := s.db.Exec(`DELETE FROM uploads WHERE id = ?`, id); err != nil {
		return "", err
	}
	return filename, nil
}
