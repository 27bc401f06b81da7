package inkwell

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ogulcan/inkwell/views"
)

// handleDashboard is the combined login form / admin panel route. A GET with
// a valid session shows the panel; a POST carries login credentials;
// everything else lands on the login form.
func (a *App) handleDashboard(c echo.Context) error {
	if a.isAdmin(c) {
		return a.renderDashboard(c, c.QueryParam("msg"))
	}

	if c.Request().Method == http.MethodPost {
		if !a.loginLimiter.Allow(c.RealIP()) {
			return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
		}
		user := c.FormValue("uname")
		pass := c.FormValue("pass")
		if a.checkCredentials(user, pass) {
			if err := setAdminSession(c, user); err != nil {
				return err
			}
			return c.Redirect(http.StatusSeeOther, "/dashbord")
		}
		return Render(c, views.Login(a.Config.Site, true, CsrfToken(c)))
	}

	return Render(c, views.Login(a.Config.Site, false, CsrfToken(c)))
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashbord")
}

// handleEdit is the post editor. Id 0 signals a new post: a POST inserts a
// fresh row and redirects to the editor for the assigned id. A nonzero id
// overwrites all editable fields, keeping the id.
func (a *App) handleEdit(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil || id < 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	if c.Request().Method == http.MethodPost {
		return a.savePost(c, id)
	}

	var post views.Post
	if id != 0 {
		post, err = a.Store.GetPost(id)
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if err != nil {
			return err
		}
	}
	return Render(c, views.Editor(a.Config.Site, id, post, CsrfToken(c)))
}

func (a *App) savePost(c echo.Context, id int64) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "A title or slug is required")
	}
	post := views.Post{
		ID:          id,
		Title:       title,
		Slug:        slug,
		Tagline:     strings.TrimSpace(c.FormValue("tline")),
		Content:     c.FormValue("content"),
		ImgFile:     strings.TrimSpace(c.FormValue("img_file")),
		PublishedAt: time.Now().UTC(),
	}

	if id == 0 {
		newID, err := a.Store.CreatePost(post)
		if err != nil {
			return err
		}
		id = newID
	} else {
		if err := a.Store.UpdatePost(post); err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound)
		} else if err != nil {
			return err
		}
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/edit/"+strconv.FormatInt(id, 10))
}

// handleDeletePost removes a post row by id. A nonexistent id is a 404 and
// mutates nothing.
func (a *App) handleDeletePost(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := a.Store.DeletePost(id); err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	} else if err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/dashbord?msg=Post+deleted")
}

func (a *App) renderDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	files, err := a.Store.ListUploads()
	if err != nil {
		return err
	}
	contacts, err := a.Store.ListContacts()
	if err != nil {
		return err
	}
	return Render(c, views.Dashboard(a.Config.Site, posts, files, contacts, msg, CsrfToken(c)))
}
