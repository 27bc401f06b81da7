package inkwell

import (
	"fmt"
	"strconv"

	"github.com/ogulcan/inkwell/views"
)

// ParsePage interprets the `page` query parameter. Absent, non-numeric, or
// sub-1 values resolve to page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate slices posts into a fixed-size page. The last page is
// ceil(len(posts)/size); out-of-range pages yield an empty slice, not an
// error. Prev and Next carry the inert marker "#" on the first and last
// page respectively.
func Paginate(posts []views.Post, page, size int) views.PageData {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	last := (len(posts) + size - 1) / size
	if last < 1 {
		last = 1
	}

	lo := (page - 1) * size
	hi := lo + size
	if lo > len(posts) {
		lo = len(posts)
	}
	if hi > len(posts) {
		hi = len(posts)
	}

	pg := views.PageData{
		Posts:  posts[lo:hi],
		Number: page,
		Last:   last,
		Prev:   "#",
		Next:   "#",
	}
	if page > 1 {
		pg.Prev = fmt.Sprintf("/?page=%d", page-1)
	}
	if page < last {
		pg.Next = fmt.Sprintf("/?page=%d", page+1)
	}
	return pg
}
