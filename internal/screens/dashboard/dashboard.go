// Package dashboard renders the learner's progress dashboard: the merged
// catalog/ledger view grouped by topic, a recency strip, and the coverage
// summary.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sikshya/internal/api"
	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/catalog"
	"github.com/abhisek/sikshya/internal/gate"
	"github.com/abhisek/sikshya/internal/ledger"
	"github.com/abhisek/sikshya/internal/prefs"
	"github.com/abhisek/sikshya/internal/progress"
	"github.com/abhisek/sikshya/internal/router"
	"github.com/abhisek/sikshya/internal/screen"
	"github.com/abhisek/sikshya/internal/ui/components"
	"github.com/abhisek/sikshya/internal/ui/layout"
	"github.com/abhisek/sikshya/internal/ui/theme"
)

// recentCount is how many recency entries the strip shows.
const recentCount = 3

type phase int

const (
	phaseLoading phase = iota
	phaseError
	phaseReady
)

// loadedMsg carries the joined fetch result.
type loadedMsg struct {
	session *auth.Session
	cat     *catalog.Catalog
	led     ledger.Ledger
}

// loadFailedMsg reports a failed fetch. Catalog and ledger fail jointly;
// there is never a partially loaded dashboard.
type loadFailedMsg struct {
	err error
}

type rowKind int

const (
	rowHeader rowKind = iota
	rowConcept
)

type row struct {
	kind    rowKind
	title   string
	concept progress.Row
}

// DashboardScreen is the main progress view.
type DashboardScreen struct {
	client *api.Client
	prefs  *prefs.Service

	session *auth.Session
	cat     *catalog.Catalog
	led     ledger.Ledger
	view    *progress.View

	rows         []row
	cursor       int
	scrollOffset int

	phase  phase
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen. Data is fetched on Init.
func New(client *api.Client, prefsSvc *prefs.Service) *DashboardScreen {
	return &DashboardScreen{
		client: client,
		prefs:  prefsSvc,
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	d.phase = phaseLoading
	return d.load()
}

// load fetches the session, then the catalog and ledger concurrently.
func (d *DashboardScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		session, err := d.client.Current(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		if session == nil {
			return loadFailedMsg{err: api.ErrUnauthorized}
		}
		cat, led, err := d.client.LoadDashboard(ctx, session.ID)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{session: session, cat: cat, led: led}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		d.session = msg.session
		d.cat = msg.cat
		d.led = msg.led
		d.phase = phaseReady
		d.errMsg = ""
		d.rebuild()
		return d, func() tea.Msg {
			return screen.SessionMsg{Session: msg.session}
		}

	case loadFailedMsg:
		d.phase = phaseError
		d.errMsg = "Could not load your progress. Check your connection and retry."
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.phase == phaseError {
		if key == "r" {
			d.phase = phaseLoading
			return d, d.load()
		}
		return d, nil
	}
	if d.phase != phaseReady {
		return d, nil
	}

	switch key {
	case "up", "k":
		d.moveCursor(-1)
	case "down", "j":
		d.moveCursor(1)
	case "enter":
		return d, d.selectConcept()
	case "a":
		if d.prefs.AddNextAvailable(d.cat.Subjects()) {
			d.rebuild()
		}
	case "r":
		d.phase = phaseLoading
		return d, d.load()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			d.toggleSubject(int(key[0] - '1'))
		}
	}
	return d, nil
}

// toggleSubject flips the subject at idx in catalog enumeration order.
func (d *DashboardScreen) toggleSubject(idx int) {
	subjects := d.cat.Subjects()
	if idx < 0 || idx >= len(subjects) {
		return
	}
	d.prefs.Toggle(subjects[idx])
	d.rebuild()
}

// selectConcept handles enter on the current row. Passed concepts have
// nothing left to diagnose; the cursor row is recorded as viewed either
// way so it surfaces in the recency strip.
func (d *DashboardScreen) selectConcept() tea.Cmd {
	if d.cursor < 0 || d.cursor >= len(d.rows) {
		return nil
	}
	r := d.rows[d.cursor]
	if r.kind != rowConcept {
		return nil
	}

	d.prefs.MarkViewed(r.concept.ID)
	d.rebuild()

	if r.concept.Status == ledger.StatusPassed {
		return nil
	}
	id := r.concept.ID
	return func() tea.Msg {
		return router.NavigateMsg{Dest: gate.DestDiagnose, Param: id}
	}
}

// rebuild recomputes the aggregated view and the flat row list. Called
// after every selection or preference change; rows are never cached
// across data changes.
func (d *DashboardScreen) rebuild() {
	d.view = progress.Aggregate(d.cat, d.led, d.prefs.Subjects())

	var rows []row
	recent := d.view.RecentRows(d.prefs.Recent(), recentCount)
	if len(recent) > 0 {
		rows = append(rows, row{kind: rowHeader, title: "Jump back in"})
		for _, r := range recent {
			rows = append(rows, row{kind: rowConcept, concept: r})
		}
	}
	for _, group := range d.view.Topics {
		rows = append(rows, row{kind: rowHeader, title: group.Topic})
		for _, r := range group.Rows {
			rows = append(rows, row{kind: rowConcept, concept: r})
		}
	}
	d.rows = rows

	if d.cursor >= len(d.rows) {
		d.cursor = len(d.rows) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
	if len(d.rows) > 0 && d.rows[d.cursor].kind != rowConcept {
		d.moveCursor(1)
	}
}

// moveCursor moves the cursor by delta, skipping section headers.
func (d *DashboardScreen) moveCursor(delta int) {
	next := d.cursor + delta
	for next >= 0 && next < len(d.rows) {
		if d.rows[next].kind == rowConcept {
			d.cursor = next
			return
		}
		next += delta
	}
}

func (d *DashboardScreen) View(width, height int) string {
	switch d.phase {
	case phaseLoading:
		return centered(width, height, theme.Hint.Render("Loading your progress…"))
	case phaseError:
		return centered(width, height,
			theme.ErrorText.Render(d.errMsg)+"\n\n"+
				theme.Hint.Render("Press r to retry"))
	}

	top := d.renderTop(width)
	topHeight := lipgloss.Height(top)

	listHeight := height - topHeight - 1
	if listHeight < 1 {
		listHeight = 1
	}

	return top + "\n" + d.renderList(width, listHeight)
}

// renderTop renders the welcome line, subject badges and coverage summary.
func (d *DashboardScreen) renderTop(width int) string {
	var lines []string

	name := ""
	if d.session != nil {
		name = d.session.Name
	}
	lines = append(lines, "  "+theme.Body.Bold(true).Render(fmt.Sprintf("Welcome back, %s", name)))
	lines = append(lines, "  "+d.renderSubjectBadges())

	s := d.view.Summary
	counts := fmt.Sprintf("%s %d passed   %s %d to review   %s %d not started",
		ledger.StatusPassed.Icon(), s.Passed,
		ledger.StatusNeedsReview.Icon(), s.NeedsReview,
		ledger.StatusNotStarted.Icon(), s.NotStarted,
	)
	lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts))

	pct, ok := s.Coverage()
	bar := components.CoverageBar{Percent: pct, HasData: ok, Width: width - 4}
	lines = append(lines, "  "+bar.View())

	return strings.Join(lines, "\n")
}

// renderSubjectBadges renders one numbered badge per catalog subject,
// highlighted when selected. The numbers match the toggle keys.
func (d *DashboardScreen) renderSubjectBadges() string {
	selected := make(map[catalog.Subject]bool)
	for _, s := range d.prefs.Subjects() {
		selected[s] = true
	}

	var parts []string
	for i, subject := range d.cat.Subjects() {
		badge := fmt.Sprintf("[%d] %s", i+1, subject.DisplayName())
		if selected[subject] {
			parts = append(parts, theme.Selected.Render(badge+" ●"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(badge+" ○"))
		}
	}
	return strings.Join(parts, "   ")
}

func (d *DashboardScreen) renderList(width, height int) string {
	if len(d.rows) == 0 {
		return centered(width, height,
			theme.Hint.Render("Nothing to show. Press a to add a subject."))
	}

	d.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range d.rows {
		if i < d.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowHeader:
			lines = append(lines, d.renderHeaderRow(r.title, width))
		case rowConcept:
			lines = append(lines, d.renderConceptRow(r.concept, i == d.cursor, width))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

// adjustScroll keeps the cursor, and its section header when adjacent,
// inside the viewport.
func (d *DashboardScreen) adjustScroll(height int) {
	if height <= 0 || len(d.rows) == 0 {
		return
	}
	top := d.cursor
	for top > 0 && d.rows[top-1].kind == rowHeader {
		top--
	}
	if top < d.scrollOffset {
		d.scrollOffset = top
	}
	if d.cursor >= d.scrollOffset+height {
		d.scrollOffset = d.cursor - height + 1
	}
}

func (d *DashboardScreen) renderHeaderRow(title string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(title))
}

func (d *DashboardScreen) renderConceptRow(r progress.Row, selected bool, width int) string {
	icon := r.Status.Icon()
	label := r.Status.Label()
	class := fmt.Sprintf("Class %d", r.Class)

	padding := 4
	iconWidth := 3
	classWidth := 9
	labelWidth := 13
	spacing := 4
	nameWidth := width - padding - iconWidth - classWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	// Truncate by runes; concept names can be non-ASCII.
	name := r.Name
	if runes := []rune(name); len(runes) > nameWidth {
		name = string(runes[:nameWidth-1]) + "…"
	}

	var nameStyle, classStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = theme.Selected
		classStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		statusColor := theme.StatusColor(string(r.Status))
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		if r.Status == ledger.StatusNotStarted {
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		classStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(statusColor)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(namePadded),
		classStyle.Render(class),
		labelStyle.Render(fmt.Sprintf("%12s", label)),
	)
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

// KeyHints returns the footer hints for this screen.
func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Diagnose"},
		{Key: "1-9", Description: "Toggle subject"},
		{Key: "a", Description: "Add subject"},
		{Key: "r", Description: "Refresh"},
	}
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
