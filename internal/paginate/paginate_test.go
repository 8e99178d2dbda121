package paginate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.n, tt.size), "PageCount(%d, %d)", tt.n, tt.size)
	}
}

func TestSlice_ConcatenatedPagesReproduceList(t *testing.T) {
	for n := 0; n <= 23; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			items := numbers(n)
			var joined []int
			for page := 1; page <= PageCount(n, PageSize); page++ {
				got := Slice(items, page, PageSize)
				require.NotEmpty(t, got, "page %d of %d", page, PageCount(n, PageSize))
				require.LessOrEqual(t, len(got), PageSize)
				joined = append(joined, got...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				return
			}
			assert.Equal(t, items, joined)
		})
	}
}

func TestSlice_SevenItems(t *testing.T) {
	items := numbers(7)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Slice(items, 1, PageSize))
	assert.Equal(t, []int{6, 7}, Slice(items, 2, PageSize))
}

func TestSlice_OutOfRangeIsEmpty(t *testing.T) {
	items := numbers(7)
	assert.Empty(t, Slice(items, 3, PageSize))
	assert.Empty(t, Slice(items, 0, PageSize))
	assert.Empty(t, Slice(items, -1, PageSize))
	assert.Empty(t, Slice([]int(nil), 1, PageSize))
}

// render flattens a control into a compact string such as "< 1 [2] … 9 10 >".
func render(items []Item) string {
	s := ""
	for i, it := range items {
		if i > 0 {
			s += " "
		}
		switch it.Kind {
		case ItemPrevious:
			s += "<"
		case ItemNext:
			s += ">"
		case ItemBreak:
			s += "…"
		case ItemPage:
			if it.Active {
				s += fmt.Sprintf("[%d]", it.Page)
			} else {
				s += fmt.Sprintf("%d", it.Page)
			}
		}
	}
	return s
}

func TestItems(t *testing.T) {
	tests := []struct {
		name            string
		pageCount, page int
		want            string
	}{
		{"no pages", 0, 1, "< >"},
		{"two pages first", 2, 1, "< [1] 2 >"},
		{"two pages second", 2, 2, "< 1 [2] >"},
		{"ten pages first", 10, 1, "< [1] 2 … 9 10 >"},
		{"ten pages middle", 10, 5, "< 1 2 3 4 [5] 6 … 9 10 >"},
		{"ten pages sixth", 10, 6, "< 1 2 … 5 [6] 7 8 9 10 >"},
		{"eight pages fifth", 8, 5, "< 1 2 3 4 [5] 6 7 8 >"},
		{"ten pages last", 10, 10, "< 1 2 … 9 [10] >"},
		{"six pages third", 6, 3, "< 1 2 [3] 4 5 6 >"},
		{"seven pages fourth", 7, 4, "< 1 2 3 [4] 5 6 7 >"},
		{"twenty pages eighth", 20, 8, "< 1 2 … 7 [8] 9 … 19 20 >"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Items(tt.pageCount, tt.page, MarginPages, PageRange)
			assert.Equal(t, tt.want, render(got))
		})
	}
}

func TestItems_PrevNextDisabled(t *testing.T) {
	items := Items(3, 1, MarginPages, PageRange)
	assert.True(t, items[0].Disabled, "previous disabled on first page")
	assert.False(t, items[len(items)-1].Disabled)

	items = Items(3, 3, MarginPages, PageRange)
	assert.False(t, items[0].Disabled)
	assert.True(t, items[len(items)-1].Disabled, "next disabled on last page")
}

func TestPager_NavigationDoesNotResetOnShrink(t *testing.T) {
	p := NewPager()
	require.Equal(t, 1, p.Page)

	p.Prev()
	assert.Equal(t, 1, p.Page, "prev stops at 1")

	p.Next(7)
	assert.Equal(t, 2, p.Page)
	p.Next(7)
	assert.Equal(t, 2, p.Page, "next stops at last page")

	// List shrinks to one page: the pointer stays and the page renders empty.
	items := numbers(5)
	assert.Equal(t, 2, p.Page)
	assert.Empty(t, Slice(items, p.Page, p.Size))

	assert.True(t, p.Goto(1, 5))
	assert.False(t, p.Goto(3, 5))
	assert.Equal(t, 1, p.Page)
}
