package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/client"
	"github.com/hostelhut/hostelhut/pkg/domain"
	"github.com/hostelhut/hostelhut/pkg/session"
)

func newTestApp(t *testing.T, authenticated bool) App {
	t.Helper()
	sess, err := session.NewStore(session.NewMemoryStorage())
	if err != nil {
		t.Fatal(err)
	}
	if authenticated {
		user := &domain.User{FirstName: "Asha", LastName: "Rao", Email: "asha@test.in"}
		if err := sess.SetSession("acc-1", "ref-1", user); err != nil {
			t.Fatal(err)
		}
	}
	c := client.New("http://localhost:5000", sess)
	a := NewApp(c, hostelstore.NewSeeded(hostelstore.WithDelay(0)), "dev")
	a.width = 90
	a.height = 30
	return a
}

func TestAppStartsAtLoginWhenUnauthenticated(t *testing.T) {
	a := newTestApp(t, false)
	if a.view != viewLogin {
		t.Errorf("view = %d, want login", a.view)
	}
	if !strings.Contains(a.View(), "SIGN IN") {
		t.Errorf("expected sign-in screen, got:\n%s", a.View())
	}
}

func TestAppStartsAtDashboardWhenAuthenticated(t *testing.T) {
	a := newTestApp(t, true)
	if a.view != viewDashboard {
		t.Errorf("view = %d, want dashboard", a.view)
	}
	if a.user == nil || a.user.FirstName != "Asha" {
		t.Error("session user not carried into the app")
	}
}

func TestAppTabSwitching(t *testing.T) {
	a := newTestApp(t, true)

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	a = model.(App)
	if a.view != viewHostels {
		t.Errorf("view = %d after 2, want hostels", a.view)
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	a = model.(App)
	if a.view != viewProfile {
		t.Errorf("view = %d after 3, want profile", a.view)
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	a = model.(App)
	if a.view != viewDashboard {
		t.Errorf("view = %d after 1, want dashboard", a.view)
	}
}

func TestAppTabsLockedOnLoginScreen(t *testing.T) {
	a := newTestApp(t, false)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	a = model.(App)
	if a.view != viewLogin {
		t.Error("tab switch escaped the sign-in screen")
	}
}

func TestAppNewListingOpensWizard(t *testing.T) {
	a := newTestApp(t, true)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	a = model.(App)
	if a.view != viewCreate {
		t.Fatalf("view = %d after n, want create", a.view)
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.view != viewHostels {
		t.Errorf("view = %d after esc, want hostels", a.view)
	}
}

func TestAppSessionStartedSwitchesToDashboard(t *testing.T) {
	a := newTestApp(t, false)
	model, _ := a.Update(sessionStartedMsg{user: &domain.User{FirstName: "Ravi"}})
	a = model.(App)
	if a.view != viewDashboard {
		t.Errorf("view = %d after login, want dashboard", a.view)
	}
	if a.user == nil || a.user.FirstName != "Ravi" {
		t.Error("user not recorded from session start")
	}
}

func TestAppSessionExpiredReturnsToLogin(t *testing.T) {
	a := newTestApp(t, true)
	model, _ := a.Update(SessionExpiredMsg{})
	a = model.(App)
	if a.view != viewLogin {
		t.Fatalf("view = %d after expiry, want login", a.view)
	}
	if !strings.Contains(a.View(), "session expired") {
		t.Errorf("expected expiry notice, got:\n%s", a.View())
	}
}

func TestAppLogoutReturnsToLogin(t *testing.T) {
	a := newTestApp(t, true)
	model, _ := a.Update(loggedOutMsg{})
	a = model.(App)
	if a.view != viewLogin {
		t.Errorf("view = %d after logout, want login", a.view)
	}
	if a.user != nil {
		t.Error("user not cleared on logout")
	}
}

func TestAppEditMsgPrefillsWizard(t *testing.T) {
	a := newTestApp(t, true)
	h := domain.Hostel{ID: "42", Name: "Edit Me", Type: "Quiet Hostel"}
	model, _ := a.Update(editHostelMsg{hostel: h})
	a = model.(App)
	if a.view != viewCreate {
		t.Fatalf("view = %d after edit, want create", a.view)
	}
	if a.create.editingID != "42" {
		t.Errorf("wizard editingID = %q, want 42", a.create.editingID)
	}
}

func TestAppSavedListingSwitchesToHostels(t *testing.T) {
	a := newTestApp(t, true)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	a = model.(App)

	model, cmd := a.Update(hostelSavedMsg{hostel: &domain.Hostel{ID: "new"}})
	a = model.(App)
	if a.view != viewHostels {
		t.Errorf("view = %d after save, want hostels", a.view)
	}
	if cmd == nil {
		t.Error("expected hostels reload command after save")
	}
}

func TestAppQuitKeys(t *testing.T) {
	a := newTestApp(t, true)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q returned %v, want tea.Quit", msg)
	}
}

func TestAppHelpOverlay(t *testing.T) {
	a := newTestApp(t, true)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	a = model.(App)
	if !a.helpOpen {
		t.Fatal("h did not open help")
	}
	if !strings.Contains(a.View(), "H O S T E L H U T") {
		t.Error("help overlay not rendered")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.helpOpen {
		t.Error("esc did not close help")
	}
}
