package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deptdash/internal/department"
	"deptdash/internal/paginate"
	"deptdash/internal/store"
	"deptdash/internal/ui/textutil"
)

const (
	dateColWidth = len(department.TimeLayout)
	minNameWidth = 12
	maxNameWidth = 48
)

// Banner texts for successful mutations.
const (
	msgRegistered = "Department Registered Successfully"
	msgUpdated    = "Department Updated Successfully"
	msgDeleted    = "Department Deleted Successfully"
	msgNoData     = "No data found!"
)

// View implements View.
func (s *DepartmentScreen) View() string {
	st := s.store.State()
	var b strings.Builder

	b.WriteString(s.renderHeader() + "\n\n")

	if banners := s.renderBanners(st); banners != "" {
		b.WriteString(banners + "\n")
	}

	switch {
	case st.DepartmentList.Loading:
		b.WriteString(s.spinner.View() + " Loading…\n")
	case st.DepartmentList.Error != "":
		b.WriteString(Styles.Danger.Render(st.DepartmentList.Error) + "\n")
	default:
		b.WriteString(s.renderTable(st) + "\n")
		b.WriteString("\n" + RenderPager(s.Pager, len(st.DepartmentList.Departments)) + "\n")
	}

	if top, ok := s.Overlays.Peek(); ok {
		b.WriteString(top.View.View() + "\n")
	}
	return b.String()
}

func (s *DepartmentScreen) renderHeader() string {
	title := Styles.Title.Render("Department")
	action := Styles.Action.Render("n") + " " + Styles.Normal.Render("REGISTER NEW DEPARTMENT")
	width := s.width
	if width == 0 {
		width = 80
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(action)
	if gap < 2 {
		gap = 2
	}
	return title + strings.Repeat(" ", gap) + action
}

// renderBanners shows mutation results. Create/update failures are shown in
// the form instead, since the form stays open on failure.
func (s *DepartmentScreen) renderBanners(st store.State) string {
	var lines []string
	if st.DepartmentCreate.Success {
		lines = append(lines, Styles.Success.Render(msgRegistered))
	}
	if st.DepartmentUpdate.Success {
		lines = append(lines, Styles.Success.Render(msgUpdated))
	}
	switch {
	case st.DepartmentDelete.Success:
		lines = append(lines, Styles.Success.Render(msgDeleted))
	case st.DepartmentDelete.Loading:
		lines = append(lines, s.spinner.View()+" Deleting…")
	case st.DepartmentDelete.Error != "":
		lines = append(lines, Styles.Danger.Render(st.DepartmentDelete.Error))
	}
	if s.Modal == ModalClosed {
		if e := st.DepartmentCreate.Error; e != "" {
			lines = append(lines, Styles.Danger.Render(e))
		}
		if e := st.DepartmentUpdate.Error; e != "" {
			lines = append(lines, Styles.Danger.Render(e))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *DepartmentScreen) renderTable(st store.State) string {
	rows := s.PageItems()
	admin := st.IsAdmin()

	nameWidth := minNameWidth
	for _, d := range rows {
		nameWidth = max(nameWidth, textutil.VisualWidth(d.Name))
	}
	nameWidth = min(nameWidth, maxNameWidth)

	var b strings.Builder
	header := textutil.Column("DATE & TIME", dateColWidth+2) + textutil.Column("DEPARTMENT", nameWidth+2)
	b.WriteString("  " + Styles.Header.Render(header) + "\n")
	for i, d := range rows {
		line := textutil.Column(d.CreatedLabel(), dateColWidth+2) + textutil.Column(d.Name, nameWidth+2)
		actions := Styles.Action.Render("e") + " Edit"
		if admin {
			actions += "  " + Styles.Delete.Render("d") + " Delete"
		}
		if i == s.Cursor && !s.HasOverlay() {
			b.WriteString(Styles.Selected.Render("› "+line) + actions + "\n")
		} else {
			b.WriteString("  " + Styles.Normal.Render(line) + Styles.Muted.Render(actions) + "\n")
		}
	}
	if len(st.DepartmentList.Departments) == 0 {
		b.WriteString("\n" + Styles.Empty.Render(msgNoData) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderPager draws previous, numbered pages with breaks, and next.
func RenderPager(p paginate.Pager, n int) string {
	items := paginate.Items(p.Count(n), p.Page, paginate.MarginPages, paginate.PageRange)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case paginate.ItemPrevious:
			parts = append(parts, pagerEdge("previous", it.Disabled))
		case paginate.ItemNext:
			parts = append(parts, pagerEdge("next", it.Disabled))
		case paginate.ItemBreak:
			parts = append(parts, Styles.PageItem.Render("..."))
		case paginate.ItemPage:
			label := strconv.Itoa(it.Page)
			if it.Active {
				parts = append(parts, Styles.PageActive.Render(label))
			} else {
				parts = append(parts, Styles.PageItem.Render(label))
			}
		}
	}
	return strings.Join(parts, " ")
}

func pagerEdge(label string, disabled bool) string {
	if disabled {
		return Styles.PageDisabled.Render(label)
	}
	return Styles.PageItem.Render(label)
}
