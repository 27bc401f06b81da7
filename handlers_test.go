package inkwell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ogulcan/inkwell/views"
)

// captureMailer hands submitted contacts to the test over a channel.
type captureMailer struct {
	ch chan views.Contact
}

func (m captureMailer) ContactNotification(_ context.Context, ct views.Contact) error {
	m.ch <- ct
	return nil
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		AdminUser:     "admin",
		AdminPassword: "secret",
		SessionSecret: "test-session-secret",
		DatabasePath:  filepath.Join(dir, "blog.db"),
		UploadDir:     filepath.Join(dir, "uploads"),
	}
	cfg.setDefaults()

	a := New(cfg, opts...)
	store, err := NewStore(cfg.DatabasePath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	a.Store = store
	a.Cache = NewPostCache(store, cfg.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	if a.Mailer == nil {
		a.Mailer = noopMailer{}
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func doGet(a *App, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func doPostForm(a *App, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echoContentType, "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

const echoContentType = "Content-Type"

// csrfSetup performs a GET to obtain the CSRF token and its cookie.
func csrfSetup(t *testing.T, a *App) (string, []*http.Cookie) {
	t.Helper()
	rec := doGet(a, "/contact", nil)
	cookies := rec.Result().Cookies()
	for _, ck := range cookies {
		if ck.Name == "_csrf" {
			return ck.Value, cookies
		}
	}
	t.Fatal("no CSRF cookie issued")
	return "", nil
}

// login authenticates as the test admin and returns the cookies to carry.
func login(t *testing.T, a *App) []*http.Cookie {
	t.Helper()
	token, cookies := csrfSetup(t, a)
	form := url.Values{"uname": {"admin"}, "pass": {"secret"}, "_csrf": {token}}
	rec := doPostForm(a, "/dashbord", form, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login: status = %d, want 303", rec.Code)
	}
	return append(cookies, rec.Result().Cookies()...)
}

func TestAdminRouteRedirectsWithoutSession(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/edit/0", "/edit/1", "/uploder", "/delete_post/1", "/delete_file/1"} {
		rec := doGet(a, target, nil)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("GET %s: status = %d, want 303", target, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/dashbord" {
			t.Errorf("GET %s: Location = %q, want /dashbord", target, loc)
		}
	}
}

func TestDeleteWithoutSessionDoesNotMutate(t *testing.T) {
	a := newTestApp(t)

	id, err := a.Store.CreatePost(views.Post{Title: "Keep", Slug: "keep", Content: "c", PublishedAt: time.Now().UTC()})
	if err != nil {
		t.Fatal(err)
	}

	rec := doGet(a, "/delete_post/"+strconv.FormatInt(id, 10), nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if _, err := a.Store.GetPost(id); err != nil {
		t.Errorf("post should survive unauthenticated delete: %v", err)
	}
}

func TestDashboardShowsLoginWhenAnonymous(t *testing.T) {
	a := newTestApp(t)

	rec := doGet(a, "/dashbord", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sign in") {
		t.Error("anonymous dashboard should render the login form")
	}
}

func TestLoginFlow(t *testing.T) {
	a := newTestApp(t)
	cookies := login(t, a)

	rec := doGet(a, "/dashbord", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dashboard") {
		t.Error("authenticated dashboard should render the admin panel")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestApp(t)
	token, cookies := csrfSetup(t, a)

	form := url.Values{"uname": {"admin"}, "pass": {"wrong"}, "_csrf": {token}}
	rec := doPostForm(a, "/dashbord", form, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (login form re-rendered)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Wrong username or password") {
		t.Error("failed login should show the error notice")
	}
}

func TestCheckCredentialsBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := &App{Config: Config{AdminUser: "admin", AdminPasswordHash: string(hash)}}

	if !a.checkCredentials("admin", "hunter2") {
		t.Error("valid bcrypt credentials rejected")
	}
	if a.checkCredentials("admin", "hunter3") {
		t.Error("wrong password accepted")
	}
	if a.checkCredentials("root", "hunter2") {
		t.Error("wrong username accepted")
	}
}

func TestHomeCoercesBadPageParam(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/", "/?page=banana", "/?page=-2"} {
		rec := doGet(a, target, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status = %d, want 200", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Page 1 of") {
			t.Errorf("GET %s: should resolve to page 1", target)
		}
	}
}

func TestPostDetailAndNotFound(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.Store.CreatePost(views.Post{Title: "Hello", Slug: "hello", Content: "body", PublishedAt: time.Now().UTC()}); err != nil {
		t.Fatal(err)
	}

	rec := doGet(a, "/post/hello", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Hello") {
		t.Error("post page should contain the title")
	}

	rec = doGet(a, "/post/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing slug: status = %d, want 404", rec.Code)
	}
}

func TestContactSubmission(t *testing.T) {
	mailer := captureMailer{ch: make(chan views.Contact, 1)}
	a := newTestApp(t, WithMailer(mailer))
	token, cookies := csrfSetup(t, a)

	form := url.Values{
		"name":    {"Alice"},
		"phone":   {"555-1234"},
		"email":   {"a@x.com"},
		"message": {"Hi"},
		"_csrf":   {token},
	}
	rec := doPostForm(a, "/contact", form, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	contacts, err := a.Store.ListContacts()
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contact count = %d, want 1", len(contacts))
	}
	ct := contacts[0]
	if ct.Name != "Alice" || ct.Phone != "555-1234" || ct.Email != "a@x.com" || ct.Message != "Hi" {
		t.Errorf("contact fields not persisted exactly: %+v", ct)
	}

	select {
	case notified := <-mailer.ch:
		if notified.Email != "a@x.com" {
			t.Errorf("notification carries email %q, want a@x.com", notified.Email)
		}
	case <-time.After(2 * time.Second):
		t.Error("owner notification was never attempted")
	}
}

func TestContactValidation(t *testing.T) {
	a := newTestApp(t)
	token, cookies := csrfSetup(t, a)

	form := url.Values{"name": {""}, "email": {"a@x.com"}, "message": {"Hi"}, "_csrf": {token}}
	rec := doPostForm(a, "/contact", form, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	contacts, err := a.Store.ListContacts()
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 0 {
		t.Errorf("invalid submission must not be persisted, have %d rows", len(contacts))
	}
}

func TestEditCreatesAndRedirectsToNewID(t *testing.T) {
	a := newTestApp(t)
	cookies := login(t, a)
	token := cookieValue(cookies, "_csrf")

	form := url.Values{
		"title":   {"Brand New"},
		"tline":   {"fresh"},
		"content": {"body"},
		"_csrf":   {token},
	}
	rec := doPostForm(a, "/edit/0", form, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	posts, err := a.Store.ListPosts()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("post count = %d, want 1", len(posts))
	}
	p := posts[0]
	if p.ID == 0 {
		t.Error("new post should have a fresh nonzero id")
	}
	if p.Slug != "brand-new" {
		t.Errorf("slug = %q, want brand-new (derived from title)", p.Slug)
	}
	if want := "/edit/" + strconv.FormatInt(p.ID, 10); rec.Header().Get("Location") != want {
		t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), want)
	}
}

func TestEditNonexistentIDIsNotFound(t *testing.T) {
	a := newTestApp(t)
	cookies := login(t, a)
	token := cookieValue(cookies, "_csrf")

	form := url.Values{"title": {"Ghost"}, "content": {"body"}, "_csrf": {token}}
	rec := doPostForm(a, "/edit/99", form, cookies)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func cookieValue(cookies []*http.Cookie, name string) string {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
