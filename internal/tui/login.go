package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostelhut/hostelhut/pkg/client"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeRegister
)

type loginField int

const (
	loginFieldFirstName loginField = iota
	loginFieldLastName
	loginFieldEmail
	loginFieldPhone
	loginFieldPassword
	loginFieldRegType
	numLoginFields
)

// loginFieldKeys index fieldErrs; they match the wire names.
var loginFieldKeys = [numLoginFields]string{
	"firstName", "lastName", "email", "phoneNumber", "password", "registrationType",
}

// sessionStartedMsg tells the app a login or registration succeeded.
type sessionStartedMsg struct {
	user *domain.User
}

type authResultMsg struct {
	user *domain.User
	err  error
}

type loginModel struct {
	client     *client.Client
	mode       authMode
	fields     [numLoginFields]string
	fieldErrs  map[string]string
	focus      loginField
	submitting bool
	err        error
	notice     string
	width      int
	height     int
}

func newLoginModel(c *client.Client) loginModel {
	m := loginModel{client: c, fieldErrs: map[string]string{}}
	m.fields[loginFieldRegType] = domain.RegistrationOwner
	m.focus = loginFieldEmail
	return m
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

// visibleFields returns the fields shown for the current mode, in focus order.
func (m loginModel) visibleFields() []loginField {
	if m.mode == authModeLogin {
		return []loginField{loginFieldEmail, loginFieldPassword}
	}
	return []loginField{
		loginFieldFirstName, loginFieldLastName, loginFieldEmail,
		loginFieldPhone, loginFieldPassword, loginFieldRegType,
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return sessionStartedMsg{user: msg.user} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	m.err = nil

	switch msg.String() {
	case "ctrl+r":
		if m.mode == authModeLogin {
			m.mode = authModeRegister
			m.focus = loginFieldFirstName
		} else {
			m.mode = authModeLogin
			m.focus = loginFieldEmail
		}
		m.fieldErrs = map[string]string{}
		return m, nil

	case "tab", "down":
		m.focus = m.nextField(1)
		return m, nil

	case "shift+tab", "up":
		m.focus = m.nextField(-1)
		return m, nil

	case "enter":
		fields := m.visibleFields()
		if m.focus == fields[len(fields)-1] {
			return m.submit()
		}
		m.focus = m.nextField(1)
		return m, nil

	case "ctrl+s":
		return m.submit()

	default:
		key := msg.String()
		if m.focus == loginFieldRegType {
			if key == "h" || key == "l" || key == "left" || key == "right" {
				if m.fields[loginFieldRegType] == domain.RegistrationOwner {
					m.fields[loginFieldRegType] = domain.RegistrationHosteler
				} else {
					m.fields[loginFieldRegType] = domain.RegistrationOwner
				}
			}
			return m, nil
		}
		before := m.fields[m.focus]
		m.fields[m.focus] = editRune(before, key)
		if m.fields[m.focus] != before {
			delete(m.fieldErrs, loginFieldKeys[m.focus])
		}
	}
	return m, nil
}

func (m loginModel) nextField(dir int) loginField {
	fields := m.visibleFields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(fields)) % len(fields)
	return fields[idx]
}

// validate checks the visible fields and records per-field messages.
func (m *loginModel) validate() bool {
	errs := map[string]string{}

	email := strings.TrimSpace(m.fields[loginFieldEmail])
	if email == "" {
		errs["email"] = "Email is required"
	} else if !domain.ValidEmail(email) {
		errs["email"] = "Please enter a valid email"
	}
	if len(m.fields[loginFieldPassword]) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if m.mode == authModeRegister {
		if strings.TrimSpace(m.fields[loginFieldFirstName]) == "" {
			errs["firstName"] = "First name is required"
		}
		if strings.TrimSpace(m.fields[loginFieldLastName]) == "" {
			errs["lastName"] = "Last name is required"
		}
		if len(strings.TrimSpace(m.fields[loginFieldPhone])) < 10 {
			errs["phoneNumber"] = "Please enter a valid phone number"
		}
	}

	m.fieldErrs = errs
	return len(errs) == 0
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	if !m.validate() {
		return m, nil
	}
	m.submitting = true

	c := m.client
	if m.mode == authModeLogin {
		req := client.LoginRequest{
			Email:    strings.TrimSpace(m.fields[loginFieldEmail]),
			Password: m.fields[loginFieldPassword],
		}
		return m, func() tea.Msg {
			payload, err := c.Login(context.Background(), req)
			if err != nil {
				return authResultMsg{err: err}
			}
			return authResultMsg{user: &payload.User}
		}
	}

	req := client.RegisterRequest{
		FirstName:        strings.TrimSpace(m.fields[loginFieldFirstName]),
		LastName:         strings.TrimSpace(m.fields[loginFieldLastName]),
		Email:            strings.TrimSpace(m.fields[loginFieldEmail]),
		PhoneNumber:      strings.TrimSpace(m.fields[loginFieldPhone]),
		Password:         m.fields[loginFieldPassword],
		RegistrationType: m.fields[loginFieldRegType],
	}
	return m, func() tea.Msg {
		payload, err := c.Register(context.Background(), req)
		if err != nil {
			return authResultMsg{err: err}
		}
		return authResultMsg{user: &payload.User}
	}
}

var loginLabels = [numLoginFields]string{
	"first name", "last name", "email", "phone", "password", "account type",
}

func (m loginModel) View() string {
	var b strings.Builder

	if m.mode == authModeLogin {
		b.WriteString(" " + selectedStyle.Render("SIGN IN") + "  " + dimStyle.Render("ctrl+r to register") + "\n\n")
	} else {
		b.WriteString(" " + selectedStyle.Render("CREATE ACCOUNT") + "  " + dimStyle.Render("ctrl+r to sign in") + "\n\n")
	}

	if m.notice != "" {
		b.WriteString(" " + errStyle.Render(m.notice) + "\n\n")
	}

	for _, f := range m.visibleFields() {
		label := loginLabels[f]
		value := m.fields[f]
		cursor := " "
		style := metaStyle
		if f == m.focus {
			cursor = ">"
			style = selectedStyle
		}

		switch f {
		case loginFieldPassword:
			value = strings.Repeat("•", len(value))
		case loginFieldRegType:
			owner := dimStyle.Render("owner")
			hosteler := dimStyle.Render("hosteler")
			if value == domain.RegistrationOwner {
				owner = accentStyle.Render("[owner]")
			} else {
				hosteler = accentStyle.Render("[hosteler]")
			}
			b.WriteString(cursor + " " + style.Render(label) + ": " + owner + " " + hosteler + "  " + metaStyle.Render("h/l") + "\n")
			continue
		}

		if f == m.focus {
			value += "█"
		}
		b.WriteString(cursor + " " + style.Render(label) + ": " + value + "\n")
		if e, ok := m.fieldErrs[loginFieldKeys[f]]; ok {
			b.WriteString("    " + errStyle.Render(e) + "\n")
		}
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(" " + dimStyle.Render("signing in..."))
	} else if m.err != nil {
		b.WriteString(" " + errStyle.Render(m.err.Error()))
	}

	return b.String()
}
