package inkwell

import (
	"fmt"
	"testing"

	"github.com/ogulcan/inkwell/views"
)

func makePosts(n int) []views.Post {
	posts := make([]views.Post, n)
	for i := range posts {
		posts[i] = views.Post{ID: int64(i + 1), Slug: fmt.Sprintf("post-%d", i+1)}
	}
	return posts
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"1.5", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.raw); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestPaginatePartitionsWithoutLossOrDuplication(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 10} {
		for _, total := range []int{0, 1, 2, 5, 7, 10, 11} {
			posts := makePosts(total)
			wantLast := (total + size - 1) / size
			if wantLast < 1 {
				wantLast = 1
			}

			var union []views.Post
			first := Paginate(posts, 1, size)
			if first.Last != wantLast {
				t.Errorf("size=%d total=%d: Last = %d, want %d", size, total, first.Last, wantLast)
			}
			for page := 1; page <= first.Last; page++ {
				pg := Paginate(posts, page, size)
				if len(pg.Posts) > size {
					t.Errorf("size=%d total=%d page=%d: page holds %d posts", size, total, page, len(pg.Posts))
				}
				union = append(union, pg.Posts...)
			}

			if len(union) != total {
				t.Fatalf("size=%d total=%d: union holds %d posts", size, total, len(union))
			}
			for i := range union {
				if union[i].ID != posts[i].ID {
					t.Fatalf("size=%d total=%d: union[%d] = id %d, want %d", size, total, i, union[i].ID, posts[i].ID)
				}
			}
		}
	}
}

func TestPaginateNavigationTokens(t *testing.T) {
	posts := makePosts(7) // 3 pages at size 3

	first := Paginate(posts, 1, 3)
	if first.Prev != "#" {
		t.Errorf("page 1 Prev = %q, want inert marker", first.Prev)
	}
	if first.Next != "/?page=2" {
		t.Errorf("page 1 Next = %q, want /?page=2", first.Next)
	}

	middle := Paginate(posts, 2, 3)
	if middle.Prev != "/?page=1" || middle.Next != "/?page=3" {
		t.Errorf("page 2 tokens = %q/%q", middle.Prev, middle.Next)
	}

	last := Paginate(posts, 3, 3)
	if last.Next != "#" {
		t.Errorf("last page Next = %q, want inert marker", last.Next)
	}
	if len(last.Posts) != 1 {
		t.Errorf("last page holds %d posts, want 1", len(last.Posts))
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	posts := makePosts(4)

	pg := Paginate(posts, 9, 2)
	if len(pg.Posts) != 0 {
		t.Errorf("out-of-range page should be empty, holds %d posts", len(pg.Posts))
	}
	if pg.Last != 2 {
		t.Errorf("Last = %d, want 2", pg.Last)
	}
}

func TestPaginateEmptyList(t *testing.T) {
	pg := Paginate(nil, 1, 5)
	if len(pg.Posts) != 0 || pg.Last != 1 {
		t.Errorf("empty list: %d posts, Last = %d", len(pg.Posts), pg.Last)
	}
	if pg.Prev != "#" || pg.Next != "#" {
		t.Errorf("empty list tokens = %q/%q, want inert markers", pg.Prev, pg.Next)
	}
}
