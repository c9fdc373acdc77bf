package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/meltforce/gymtrack/internal/models"
	"github.com/meltforce/gymtrack/internal/stats"
)

const chartBarWidth = 30

func (m *Model) View() string {
	var body string
	switch m.view {
	case viewHome:
		body = m.viewHome()
	case viewRecord:
		body = m.viewRecord()
	case viewCreate:
		body = m.viewCreate()
	case viewHistory:
		body = m.viewHistory()
	case viewDetail:
		body = m.viewDetail()
	case viewStats:
		body = m.viewStats()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.topBar(), body, m.footer())
}

func (m *Model) topBar() string {
	title := m.theme.TopBarTitle.Render("Gymtrack " + m.version)

	badge := m.theme.TopBar.Render("no active session")
	if sess, active := m.app.ActiveSession(); active {
		badge = m.theme.TopBarBadge.Render(fmt.Sprintf("session running · %d logged", len(sess.Exercises)))
	}

	line := title + "  " + badge
	if m.status != "" {
		line += "\n" + m.theme.TopBar.Render(m.status)
	}
	return line
}

func (m *Model) footer() string {
	var keys string
	switch m.view {
	case viewHome:
		keys = "enter log · s start · e finish · x discard · n new workout · / search · c category · h history · t stats · q quit"
	case viewRecord:
		keys = "enter save · tab next field · esc cancel"
	case viewCreate:
		keys = "enter save · tab next field · ←/→ category · esc cancel"
	case viewHistory:
		if m.confirmClear {
			keys = "y confirm clear · any other key cancels"
		} else {
			keys = "enter detail · d delete · C clear all · esc back"
		}
	case viewDetail, viewStats:
		keys = "esc back"
	}
	return m.theme.Footer.Render(keys)
}

func (m *Model) viewHome() string {
	var b strings.Builder

	category := filterCategories[m.categoryIdx]
	b.WriteString(m.theme.PaneTitle.Render("Workouts · "+category) + "\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString("\n")

	workouts := m.visibleWorkouts()
	if len(workouts) == 0 {
		b.WriteString(m.theme.Hint.Render("No workouts match.") + "\n")
	}
	for i, w := range workouts {
		line := fmt.Sprintf("%s  %s", w.Name, m.theme.ListMeta.Render(string(w.Category)))
		if i == m.cursor {
			b.WriteString(m.theme.ListItemSel.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.theme.ListItem.Render("  "+line) + "\n")
		}
	}

	return m.theme.Pane.Render(b.String())
}

func (m *Model) viewRecord() string {
	var b strings.Builder

	b.WriteString(m.theme.PaneTitle.Render("Log "+m.target.Name) + "\n")
	b.WriteString(m.theme.ListMeta.Render(string(m.target.Category)) + "\n\n")

	if last, ok := m.app.LastEntryFor(m.target.ID); ok {
		b.WriteString(m.theme.Hint.Render("Last time: "+m.entrySummary(last)) + "\n\n")
	}

	for i, input := range m.inputs {
		marker := "  "
		if i == m.focusIdx {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, m.theme.Label.Render(m.labels[i]+":"), input.View()))
	}

	if m.formErr != "" {
		b.WriteString("\n" + m.theme.ErrText.Render(m.formErr) + "\n")
	}

	return m.theme.Pane.Render(b.String())
}

func (m *Model) viewCreate() string {
	var b strings.Builder

	b.WriteString(m.theme.PaneTitle.Render("New custom workout") + "\n\n")

	rows := []struct {
		label string
		view  string
	}{
		{"Name", m.createName.View()},
		{"Category", m.theme.Value.Render(string(models.Categories[m.createCat]))},
		{"Description", m.createDesc.View()},
	}
	for i, row := range rows {
		marker := "  "
		if i == m.createRow {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, m.theme.Label.Render(row.label+":"), row.view))
	}

	if m.createErr != "" {
		b.WriteString("\n" + m.theme.ErrText.Render(m.createErr) + "\n")
	}

	return m.theme.Pane.Render(b.String())
}

func (m *Model) viewHistory() string {
	var b strings.Builder

	sessions := m.app.Sessions()
	b.WriteString(m.theme.PaneTitle.Render(fmt.Sprintf("History · %d sessions", len(sessions))) + "\n\n")

	if m.confirmClear {
		b.WriteString(m.theme.ErrText.Render("Delete ALL sessions? Press y to confirm.") + "\n\n")
	}

	if len(sessions) == 0 {
		b.WriteString(m.theme.Hint.Render("No completed sessions yet.") + "\n")
	}
	for i, s := range sessions {
		line := fmt.Sprintf("%s  %s  %s",
			s.StartTime,
			m.theme.ListMeta.Render(fmt.Sprintf("%d exercises", len(s.Exercises))),
			m.theme.ListMeta.Render(models.FormatDuration(s.Duration)))
		if i == m.histCursor {
			b.WriteString(m.theme.ListItemSel.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.theme.ListItem.Render("  "+line) + "\n")
		}
	}

	return m.theme.Pane.Render(b.String())
}

func (m *Model) viewDetail() string {
	var b strings.Builder

	s := m.detail
	b.WriteString(m.theme.PaneTitle.Render("Session "+s.StartTime) + "\n")
	b.WriteString(m.theme.ListMeta.Render(models.FormatDuration(s.Duration)) + "\n\n")

	if len(s.Exercises) == 0 {
		b.WriteString(m.theme.Hint.Render("No exercises recorded.") + "\n")
	}
	for _, e := range s.Exercises {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			m.theme.ListMeta.Render(e.Time),
			m.theme.Value.Render(e.Workout.Name),
			m.entrySummary(e)))
	}

	return m.theme.Pane.Render(b.String())
}

func (m *Model) viewStats() string {
	var b strings.Builder

	summary := m.app.Stats()
	b.WriteString(m.theme.PaneTitle.Render("Stats") + "\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Sessions", fmt.Sprintf("%d", summary.TotalSessions)},
		{"Exercises", fmt.Sprintf("%d", summary.TotalExercises)},
		{"Sets", fmt.Sprintf("%d", summary.TotalSets)},
		{"Volume", fmt.Sprintf("%.0f %s", summary.TotalVolume, m.units)},
		{"Cardio", fmt.Sprintf("%d min", summary.TotalCardioMinutes)},
		{"Avg duration", fmt.Sprintf("%d min", summary.AvgSessionDuration)},
		{"Top exercise", summary.TopExercise},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			m.theme.Label.Render(fmt.Sprintf("%-14s", row.label)),
			m.theme.Value.Render(row.value)))
	}

	b.WriteString("\n" + m.theme.PaneTitle.Render("Volume by session") + "\n")
	b.WriteString(m.renderSeries(m.app.VolumeSeries()))

	b.WriteString("\n" + m.theme.PaneTitle.Render("Cardio minutes by session") + "\n")
	b.WriteString(m.renderSeries(m.app.CardioSeries()))

	return m.theme.Pane.Render(b.String())
}

func (m *Model) renderSeries(points []stats.SeriesPoint) string {
	if len(points) == 0 {
		return m.theme.Hint.Render("No data yet.") + "\n"
	}

	var max float64
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	var b strings.Builder
	for _, p := range points {
		bar := strings.Repeat("█", barWidth(p.Value, max, chartBarWidth))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			m.theme.BarLabel.Render(fmt.Sprintf("%-3s", p.Label)),
			m.theme.Bar.Render(bar),
			m.theme.ListMeta.Render(fmt.Sprintf("%.0f", p.Value))))
	}
	return b.String()
}

func (m *Model) entrySummary(e models.ExerciseEntry) string {
	if e.Workout.Category.IsCardio() {
		return fmt.Sprintf("%d min", e.Minutes)
	}
	return fmt.Sprintf("%g %s × %d reps × %d sets", e.Weight, m.units, e.Reps, e.Sets)
}
