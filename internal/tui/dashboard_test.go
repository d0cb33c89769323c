package tui

import (
	"strings"
	"testing"

	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

func newTestDashboard(t *testing.T) dashboardModel {
	t.Helper()
	m := newDashboardModel(hostelstore.NewSeeded(hostelstore.WithDelay(0)))
	m.width = 80
	m.height = 24
	msg := m.Init()()
	loaded, ok := msg.(dashboardLoadedMsg)
	if !ok {
		t.Fatalf("Init produced %T, want dashboardLoadedMsg", msg)
	}
	m, _ = m.Update(loaded)
	return m
}

func TestDashboardShowsListingCounts(t *testing.T) {
	m := newTestDashboard(t)
	view := m.View()

	if !strings.Contains(view, "3") || !strings.Contains(view, "listings") {
		t.Errorf("expected listing count in view, got:\n%s", view)
	}
	// Seeded beds: 24 + 18 + 12
	if !strings.Contains(view, "54") {
		t.Errorf("expected total beds 54 in view, got:\n%s", view)
	}
}

func TestDashboardGreetsUserByFirstName(t *testing.T) {
	m := newTestDashboard(t)
	m, _ = m.Update(sessionStartedMsg{user: &domain.User{FirstName: "Asha", LastName: "Rao"}})

	if !strings.Contains(m.View(), "Welcome back, Asha") {
		t.Errorf("expected greeting, got:\n%s", m.View())
	}
}

func TestDashboardEmptyStoreHint(t *testing.T) {
	m := newDashboardModel(hostelstore.New(hostelstore.WithDelay(0)))
	m.width = 80
	m.height = 24
	m, _ = m.Update(dashboardLoadedMsg{})

	if !strings.Contains(m.View(), "no listings yet") {
		t.Errorf("expected empty-state hint, got:\n%s", m.View())
	}
}

func TestDashboardRecentListingsNewestFirst(t *testing.T) {
	m := newTestDashboard(t)
	view := m.View()

	// Insertion order is 1..3; the recent list leads with the newest.
	last := strings.Index(view, "Mountain View Lodge")
	first := strings.Index(view, "Downtown Backpacker Hostel")
	if last == -1 || first == -1 {
		t.Fatalf("expected seeded names in view, got:\n%s", view)
	}
	if last > first {
		t.Error("recent listings not rendered newest first")
	}
}
