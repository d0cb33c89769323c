package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

// dashboardLoadedMsg carries the listings used for the summary cards.
type dashboardLoadedMsg struct {
	hostels []domain.Hostel
	err     error
}

type dashboardModel struct {
	store   *hostelstore.Store
	hostels []domain.Hostel
	user    *domain.User
	loading bool
	err     error
	width   int
	height  int
}

func newDashboardModel(s *hostelstore.Store) dashboardModel {
	return dashboardModel{store: s, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		hostels, err := s.List(context.Background())
		return dashboardLoadedMsg{hostels: hostels, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.hostels = msg.hostels
		m.err = msg.err
		return m, nil

	case sessionStartedMsg:
		m.user = msg.user
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	greeting := "Welcome back"
	if m.user != nil && m.user.FirstName != "" {
		greeting = "Welcome back, " + m.user.FirstName
	}
	b.WriteString(" " + selectedStyle.Render(greeting) + "\n\n")

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		return b.String()
	}

	// Summary cards: listings, beds, reviews, average rating
	totalBeds := 0
	totalReviews := 0
	ratingSum := 0.0
	rated := 0
	for _, h := range m.hostels {
		totalBeds += h.TotalBeds
		totalReviews += h.ReviewCount
		if h.ReviewCount > 0 {
			ratingSum += h.Rating
			rated++
		}
	}

	stats := []struct{ value, label string }{
		{fmt.Sprintf("%d", len(m.hostels)), "listings"},
		{fmt.Sprintf("%d", totalBeds), "beds"},
		{fmt.Sprintf("%d", totalReviews), "reviews"},
	}
	if rated > 0 {
		stats = append(stats, struct{ value, label string }{
			fmt.Sprintf("%.1f", ratingSum/float64(rated)), "avg rating",
		})
	}

	b.WriteString(" ")
	for i, s := range stats {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(accentStyle.Render(s.value) + " " + dimStyle.Render(s.label))
	}
	b.WriteString("\n\n")

	if len(m.hostels) == 0 {
		b.WriteString(" " + dimStyle.Render("no listings yet — press n to add your first hostel"))
		return truncateToHeight(b.String(), m.height)
	}

	b.WriteString(" " + sectionHeaderStyle.Render("RECENT LISTINGS") + "\n")
	shown := m.hostels
	if len(shown) > 5 {
		shown = shown[len(shown)-5:]
	}
	for i := len(shown) - 1; i >= 0; i-- {
		h := shown[i]
		name := truncStr(h.Name, 32)
		line := fmt.Sprintf(" %s %s  %s  %s",
			TypeStyle(h.Type).Render("●"),
			normalStyle.Render(fmt.Sprintf("%-32s", name)),
			priceStyle.Render(formatPrice(h.PricePerNight)),
			metaStyle.Render(ratingStars(h.Rating, h.ReviewCount)))
		b.WriteString(line + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}
