package inkwell

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ogulcan/inkwell/views"
)

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// handleHome serves the paginated post listing.
func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	page := ParsePage(c.QueryParam("page"))
	return Render(c, views.Home(a.Config.Site, Paginate(posts, page, a.Config.PageSize)))
}

// handlePost serves a single post by slug.
func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetPostBySlug(c.Param("slug"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return Render(c, views.PostView(a.Config.Site, post))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.Config.Site))
}

// handleContact renders the form (GET) or persists a submission and
// dispatches the owner notification (POST).
func (a *App) handleContact(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		sent := c.QueryParam("sent") != ""
		return Render(c, views.ContactForm(a.Config.Site, sent, "", CsrfToken(c)))
	}

	ct := views.Contact{
		Name:       strings.TrimSpace(c.FormValue("name")),
		Phone:      strings.TrimSpace(c.FormValue("phone")),
		Email:      strings.TrimSpace(c.FormValue("email")),
		Message:    strings.TrimSpace(c.FormValue("message")),
		ReceivedAt: time.Now().UTC(),
	}
	if ct.Name == "" || ct.Email == "" || ct.Message == "" {
		return RenderStatus(c, http.StatusBadRequest,
			views.ContactForm(a.Config.Site, false, "Name, email, and message are required.", CsrfToken(c)))
	}

	if _, err := a.Store.CreateContact(ct); err != nil {
		return err
	}
	a.notifyContact(c, ct)
	return c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

// notifyContact dispatches the owner email without blocking the request.
// Delivery failure is logged and never surfaces to the submitter.
func (a *App) notifyContact(c echo.Context, ct views.Contact) {
	logger := c.Echo().Logger
	mailer := a.Mailer
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mailer.ContactNotification(ctx, ct); err != nil {
			logger.Errorf("contact notification for %q failed: %v", ct.Email, err)
		}
	}()
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /dashbord\nDisallow: /edit/\nDisallow: /uploder\n\nSitemap: %s/sitemap.xml\n", a.Config.Site.URL)
	return c.String(http.StatusOK, body)
}

// httpErrorHandler renders styled 404/500 pages; everything else falls back
// to Echo's default handler.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
