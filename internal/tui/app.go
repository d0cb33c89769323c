package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostelhut/hostelhut/internal/browser"
	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/client"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewHostels
	viewCreate
	viewProfile
)

// SessionExpiredMsg is sent into the program when a 401 could not be
// recovered by a token refresh. Wired from main via Program.Send.
type SessionExpiredMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client     *client.Client
	store      *hostelstore.Store
	view       view
	login      loginModel
	dashboard  dashboardModel
	hostels    hostelsModel
	create     createModel
	profile    profileModel
	helpOpen   bool
	helpCursor int
	user       *domain.User
	updateHint string
	versionCmd tea.Cmd
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the TUI application. An authenticated session skips the
// sign-in screen.
func NewApp(c *client.Client, s *hostelstore.Store, version string) App {
	a := App{
		client:    c,
		store:     s,
		login:     newLoginModel(c),
		dashboard: newDashboardModel(s),
		hostels:   newHostelsModel(s),
		create:    newCreateModel(s),
		profile:   newProfileModel(c),
	}
	if sess := c.Session(); sess.IsAuthenticated() {
		a.view = viewDashboard
		a.user = sess.User()
	}
	a.versionCmd = checkVersion(version)
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd()}
	if a.view == viewDashboard {
		cmds = append(cmds, a.dashboard.Init(), a.propagateUser())
	}
	if a.versionCmd != nil {
		cmds = append(cmds, a.versionCmd)
	}
	return tea.Batch(cmds...)
}

// propagateUser re-announces the session user to the sub-models.
func (a App) propagateUser() tea.Cmd {
	if a.user == nil {
		return nil
	}
	user := a.user
	return func() tea.Msg { return sessionStartedMsg{user: user} }
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.login, _ = a.login.Update(bodyMsg)
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.hostels, _ = a.hostels.Update(bodyMsg)
		a.create, _ = a.create.Update(bodyMsg)
		a.profile, _ = a.profile.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case versionCheckMsg:
		if msg.hasUpdate {
			a.updateHint = msg.latestVersion + " available"
		}
		return a, nil

	case SessionExpiredMsg:
		a.view = viewLogin
		a.user = nil
		a.login = newLoginModel(a.client)
		a.login.notice = "Your session expired. Please sign in again."
		return a, nil

	case sessionStartedMsg:
		a.user = msg.user
		a.view = viewDashboard
		a.dashboard, _ = a.dashboard.Update(msg)
		a.profile, _ = a.profile.Update(msg)
		return a, a.dashboard.Init()

	case loggedOutMsg:
		a.view = viewLogin
		a.user = nil
		a.login = newLoginModel(a.client)
		a.profile = newProfileModel(a.client)
		return a, nil

	case editHostelMsg:
		a.create = a.create.prefill(msg.hostel)
		a.view = viewCreate
		return a, nil

	case hostelSavedMsg:
		// Route to the wizard first so it resets or shows the error.
		var cmd tea.Cmd
		a.create, cmd = a.create.Update(msg)
		if msg.err == nil {
			a.view = viewHostels
			return a, tea.Batch(cmd, a.hostels.Init())
		}
		return a, cmd

	case tea.KeyMsg:
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keys, only when no text input has focus
		if !a.isEditing() {
			switch msg.String() {
			case "h":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q":
				return a, tea.Quit
			case "1":
				if a.view != viewDashboard && a.view != viewLogin {
					a.view = viewDashboard
					return a, tea.Batch(a.dashboard.Init(), a.propagateUser())
				}
				return a, nil
			case "2":
				if a.view != viewHostels && a.view != viewLogin {
					a.view = viewHostels
					return a, a.hostels.Init()
				}
				return a, nil
			case "3":
				if a.view != viewProfile && a.view != viewLogin {
					a.view = viewProfile
					return a, tea.Batch(a.profile.Init(), a.propagateUser())
				}
				return a, nil
			case "n":
				if a.view == viewDashboard || a.view == viewHostels {
					a.create = newCreateModel(a.store)
					a.view = viewCreate
					return a, nil
				}
			}
		}
		if msg.String() == "esc" && a.view == viewCreate {
			a.view = viewHostels
			return a, a.hostels.Init()
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewHostels:
		a.hostels, cmd = a.hostels.Update(msg)
	case viewCreate:
		a.create, cmd = a.create.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	switch a.view {
	case viewLogin, viewCreate:
		return true
	case viewHostels:
		return a.hostels.editing || a.hostels.deleting
	case viewProfile:
		return a.profile.uploading
	}
	return false
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)
	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	// Meta line below logo: signed-in user and update hint
	metaLine := ""
	if a.user != nil {
		metaLine = a.user.FullName()
	}
	if a.updateHint != "" {
		if metaLine != "" {
			metaLine += " · "
		}
		metaLine += a.updateHint
	}
	if metaLine != "" {
		rendered := metaStyle.Render(metaLine)
		pad := (a.width - lipgloss.Width(rendered)) / 2
		if pad < 0 {
			pad = 0
		}
		header += "\n" + strings.Repeat(" ", pad) + rendered
	} else {
		header += "\n"
	}

	// Tab bar: hidden on the sign-in screen
	tabBar := ""
	if a.view != viewLogin {
		type tabEntry struct {
			key  string
			name string
			v    view
		}
		tabs := []tabEntry{
			{"1", "Dashboard", viewDashboard},
			{"2", "Hostels", viewHostels},
			{"3", "Profile", viewProfile},
		}

		colWidth := a.width / len(tabs)
		var tb strings.Builder
		for _, t := range tabs {
			var label string
			active := t.v == a.view || (t.v == viewHostels && a.view == viewCreate)
			if active {
				label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
			} else {
				label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
			}
			labelWidth := lipgloss.Width(label)
			leftPad := (colWidth - labelWidth) / 2
			if leftPad < 0 {
				leftPad = 0
			}
			rightPad := colWidth - labelWidth - leftPad
			if rightPad < 0 {
				rightPad = 0
			}
			tb.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
		}
		tabBar = tb.String()
	}

	// Body and help bar
	var body, help string
	switch a.view {
	case viewLogin:
		body = a.login.View()
		help = " " + helpEntry("tab", "next field") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+r", "switch mode") + "  " + helpEntry("ctrl+c", "quit")
	case viewDashboard:
		body = a.dashboard.View()
		help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("n", "new listing") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewHostels:
		body = a.hostels.View()
		if a.hostels.detail {
			help = " " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy contact") + "  " + helpEntry("o", "website") + "  " + helpEntry("esc", "back")
		} else {
			help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("enter", "open") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("n", "new") + "  " + helpEntry("q", "quit")
		}
	case viewCreate:
		body = a.create.View()
		help = " " + helpEntry("ctrl+n", "next step") + "  " + helpEntry("ctrl+b", "back") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
	case viewProfile:
		body = a.profile.View()
		help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("u", "upload picture") + "  " + helpEntry("x", "sign out") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	}

	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Chrome budget: header(2) + tabs(1) + help(1) = 4 lines + body
	chrome := 4
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar, body, help)
}
