// Package paginate slices an in-memory list into fixed-size pages and builds
// the numbered page control shown under the department table.
package paginate

const (
	// PageSize is the number of rows shown per page.
	PageSize = 5
	// MarginPages is how many pages are always shown at each end of the control.
	MarginPages = 2
	// PageRange is how many pages are shown around the selected one.
	PageRange = 2
)

// PageCount returns ceil(n/size). An empty list has zero pages.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Slice returns items[(page-1)*size : page*size] clamped to the list.
// A page past the end, or below 1, yields an empty slice.
func Slice[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	first := (page - 1) * size
	if first >= len(items) {
		return nil
	}
	last := min(first+size, len(items))
	return items[first:last]
}

// ItemKind identifies an entry in the page control.
type ItemKind int

const (
	ItemPrevious ItemKind = iota
	ItemPage
	ItemBreak
	ItemNext
)

func (k ItemKind) String() string {
	switch k {
	case ItemPrevious:
		return "previous"
	case ItemPage:
		return "page"
	case ItemBreak:
		return "break"
	case ItemNext:
		return "next"
	default:
		return "unknown"
	}
}

// Item is one entry of the page control.
type Item struct {
	Kind     ItemKind
	Page     int  // 1-based; zero for non-page items
	Active   bool // selected page
	Disabled bool // previous on the first page, next on the last
}

// Items builds the page control for pageCount pages with page (1-based)
// selected. The first and last margin pages are always listed, a window of
// rangeDisplayed pages surrounds the selection, and every hidden run collapses
// into a single break. A break that would hide exactly one page shows that
// page instead.
func Items(pageCount, page, margin, rangeDisplayed int) []Item {
	selected := page - 1
	out := []Item{{Kind: ItemPrevious, Disabled: selected <= 0}}

	if pageCount <= rangeDisplayed {
		for i := range pageCount {
			out = append(out, pageItem(i, selected))
		}
		return append(out, Item{Kind: ItemNext, Disabled: selected >= pageCount-1})
	}

	half := float64(rangeDisplayed) / 2
	leftSide := half
	rightSide := float64(rangeDisplayed) - leftSide
	switch {
	case float64(selected) > float64(pageCount)-half:
		rightSide = float64(pageCount - selected)
		leftSide = float64(rangeDisplayed) - rightSide
	case float64(selected) < half:
		leftSide = float64(selected)
		rightSide = float64(rangeDisplayed) - leftSide
	}
	adjustedRight := rightSide
	if selected == 0 && rangeDisplayed > 1 {
		adjustedRight = rightSide - 1
	}

	for i := range pageCount {
		p := i + 1
		if p <= margin || p > pageCount-margin {
			out = append(out, pageItem(i, selected))
			continue
		}
		idx := float64(i)
		if idx >= float64(selected)-leftSide && idx <= float64(selected)+adjustedRight {
			out = append(out, pageItem(i, selected))
			continue
		}
		if last := out[len(out)-1]; last.Kind == ItemPage && (rangeDisplayed > 0 || margin > 0) {
			out = append(out, Item{Kind: ItemBreak})
		}
	}
	fillSinglePageBreaks(out, selected)
	return append(out, Item{Kind: ItemNext, Disabled: selected >= pageCount-1})
}

// fillSinglePageBreaks replaces a break between pages p and p+2 with page p+1.
func fillSinglePageBreaks(items []Item, selected int) {
	for i := 1; i < len(items)-1; i++ {
		prev, next := items[i-1], items[i+1]
		if items[i].Kind != ItemBreak || prev.Kind != ItemPage || next.Kind != ItemPage {
			continue
		}
		if next.Page-prev.Page == 2 {
			items[i] = pageItem(prev.Page, selected)
		}
	}
}

func pageItem(index, selected int) Item {
	return Item{Kind: ItemPage, Page: index + 1, Active: index == selected}
}

// Pager tracks the current page of a list. The page is never reset when the
// list shrinks; an emptied page simply renders no rows.
type Pager struct {
	Page int
	Size int
}

// NewPager returns a pager on page 1 with the default page size.
func NewPager() Pager {
	return Pager{Page: 1, Size: PageSize}
}

// Count returns the number of pages for n items.
func (p Pager) Count(n int) int {
	return PageCount(n, p.Size)
}

// Next advances one page unless already on the last page of n items.
func (p *Pager) Next(n int) {
	if p.Page < p.Count(n) {
		p.Page++
	}
}

// Prev moves back one page, stopping at page 1.
func (p *Pager) Prev() {
	if p.Page > 1 {
		p.Page--
	}
}

// Goto selects page if it exists for n items.
func (p *Pager) Goto(page, n int) bool {
	if page < 1 || page > p.Count(n) {
		return false
	}
	p.Page = page
	return true
}
