package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/client"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

type profileLoadedMsg struct {
	profile *domain.Profile
	err     error
}

type pictureUploadedMsg struct{ err error }

// loggedOutMsg tells the app the user signed out. The session is cleared
// locally whether or not the server acknowledged the logout.
type loggedOutMsg struct{}

type profileModel struct {
	client    *client.Client
	profile   *domain.Profile
	user      *domain.User
	loading   bool
	err       error
	uploading bool // typing a picture path
	picPath   string
	statusMsg string
	width     int
	height    int
}

func newProfileModel(c *client.Client) profileModel {
	return profileModel{client: c, loading: true}
}

func (m profileModel) Init() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		profile, err := c.UserProfile(context.Background())
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.profile = msg.profile
		m.err = msg.err
		return m, nil

	case sessionStartedMsg:
		m.user = msg.user
		return m, nil

	case pictureUploadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("upload failed: %v", msg.err)
			return m, nil
		}
		m.statusMsg = "picture updated"
		m.loading = true
		return m, m.Init()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.uploading {
			return m.updateUpload(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m profileModel) updateKeys(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	m.statusMsg = ""
	switch msg.String() {
	case "u":
		m.uploading = true
		m.picPath = ""
	case "x":
		return m, m.logout()
	case "r":
		m.loading = true
		return m, m.Init()
	}
	return m, nil
}

func (m profileModel) updateUpload(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.uploading = false
	case "enter":
		path := strings.TrimSpace(m.picPath)
		m.uploading = false
		if path == "" {
			return m, nil
		}
		c := m.client
		return m, func() tea.Msg {
			img, err := hostelstore.LoadImageFile(path)
			if err != nil {
				return pictureUploadedMsg{err: err}
			}
			err = c.UploadProfilePicture(context.Background(), img.Name, img.Data)
			return pictureUploadedMsg{err: err}
		}
	default:
		m.picPath = editRune(m.picPath, msg.String())
	}
	return m, nil
}

// logout tells the server to revoke the refresh token, then clears the
// local session regardless of the outcome.
func (m profileModel) logout() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		sess := c.Session()
		if rt := sess.RefreshToken(); rt != "" {
			c.Logout(context.Background(), rt) //nolint:errcheck // best-effort revocation
		}
		sess.Clear() //nolint:errcheck
		return loggedOutMsg{}
	}
}

func (m profileModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("PROFILE") + "\n\n")

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
		b.WriteString(" " + dimStyle.Render("r to retry"))
		return b.String()
	}
	if m.profile == nil {
		return b.String()
	}

	p := m.profile
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	b.WriteString(" " + normalStyle.Bold(true).Render(name) + "\n")
	b.WriteString(" " + metaStyle.Render(p.Email) + "\n")
	if p.PhoneNumber != "" {
		b.WriteString(" " + metaStyle.Render(p.PhoneNumber) + "\n")
	}
	if m.user != nil && m.user.RegistrationType != "" {
		label := "hosteler"
		if m.user.RegistrationType == domain.RegistrationOwner {
			label = "hostel owner"
		}
		b.WriteString(" " + accentStyle.Render(label) + "\n")
	}

	b.WriteString("\n")
	if p.ProfilePicture != "" {
		b.WriteString(" " + okStyle.Render("●") + " " + dimStyle.Render("profile picture set") + "\n")
	} else {
		b.WriteString(" " + metaStyle.Render("○") + " " + dimStyle.Render("no profile picture") + "\n")
	}

	if m.uploading {
		b.WriteString("\n > " + selectedStyle.Render("picture path") + ": " + m.picPath + "█\n")
		b.WriteString("   " + dimStyle.Render("enter to upload, esc to cancel") + "\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + okStyle.Render(m.statusMsg) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}
