package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostelhut/hostelhut/internal/browser"
	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

type hostelsLoadedMsg struct {
	hostels []domain.Hostel
	err     error
}

type hostelDeletedMsg struct {
	id  string
	err error
}

type copyResultMsg struct{ err error }

// editHostelMsg asks the app to open the wizard prefilled with a listing.
type editHostelMsg struct {
	hostel domain.Hostel
}

type hostelsModel struct {
	store     *hostelstore.Store
	hostels   []domain.Hostel
	cursor    int
	search    string
	editing   bool // typing in search
	detail    bool
	deleting  bool // delete confirmation for selected listing
	err       error
	loading   bool
	statusMsg string
	width     int
	height    int
}

func newHostelsModel(s *hostelstore.Store) hostelsModel {
	return hostelsModel{store: s, loading: true}
}

func (m hostelsModel) load() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		hostels, err := s.List(context.Background())
		return hostelsLoadedMsg{hostels: hostels, err: err}
	}
}

func (m hostelsModel) Init() tea.Cmd {
	return m.load()
}

// filtered returns listings matching the search text by name or city.
func (m hostelsModel) filtered() []domain.Hostel {
	if m.search == "" {
		return m.hostels
	}
	q := strings.ToLower(m.search)
	var out []domain.Hostel
	for _, h := range m.hostels {
		if strings.Contains(strings.ToLower(h.Name), q) || strings.Contains(strings.ToLower(h.City), q) {
			out = append(out, h)
		}
	}
	return out
}

func (m hostelsModel) selected() (domain.Hostel, bool) {
	list := m.filtered()
	if m.cursor < 0 || m.cursor >= len(list) {
		return domain.Hostel{}, false
	}
	return list[m.cursor], true
}

func (m hostelsModel) Update(msg tea.Msg) (hostelsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case hostelsLoadedMsg:
		m.loading = false
		m.hostels = msg.hostels
		m.err = msg.err
		if m.cursor >= len(m.filtered()) {
			m.cursor = 0
		}
		return m, nil

	case hostelDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.statusMsg = "listing removed"
		m.detail = false
		m.loading = true
		return m, m.load()

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.editing {
			return m.updateSearch(msg)
		}
		if m.deleting {
			return m.updateDeleteConfirm(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m hostelsModel) updateSearch(msg tea.KeyMsg) (hostelsModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.cursor = 0
	case "esc":
		m.editing = false
		m.search = ""
		m.cursor = 0
	default:
		m.search = editRune(m.search, msg.String())
	}
	return m, nil
}

func (m hostelsModel) updateDeleteConfirm(msg tea.KeyMsg) (hostelsModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		h, ok := m.selected()
		if !ok {
			m.deleting = false
			return m, nil
		}
		s := m.store
		return m, func() tea.Msg {
			err := s.Delete(context.Background(), h.ID)
			return hostelDeletedMsg{id: h.ID, err: err}
		}
	case "n", "esc":
		m.deleting = false
	}
	return m, nil
}

func (m hostelsModel) updateList(msg tea.KeyMsg) (hostelsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(m.filtered()) > 0 {
			m.detail = true
		}
	case "/":
		m.editing = true
		m.search = ""
	case "d":
		if _, ok := m.selected(); ok {
			m.deleting = true
		}
	case "e":
		if h, ok := m.selected(); ok {
			return m, func() tea.Msg { return editHostelMsg{hostel: h} }
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m hostelsModel) updateDetail(msg tea.KeyMsg) (hostelsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
	case "d":
		m.deleting = true
	case "e":
		if h, ok := m.selected(); ok {
			return m, func() tea.Msg { return editHostelMsg{hostel: h} }
		}
	case "c":
		if h, ok := m.selected(); ok {
			contact := h.ContactInfo.Phone
			if contact == "" {
				contact = h.ContactInfo.Email
			}
			return m, func() tea.Msg {
				err := clipboard.WriteAll(contact)
				return copyResultMsg{err: err}
			}
		}
	case "o":
		if h, ok := m.selected(); ok && h.ContactInfo.Website != "" {
			browser.Open(h.ContactInfo.Website) //nolint:errcheck // best-effort browser open
		}
	}
	return m, nil
}

func (m hostelsModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("MY HOSTELS") + "\n")

	if m.editing {
		b.WriteString(" " + accentStyle.Render("/ "+m.search+"█") + "\n")
	} else if m.search != "" {
		b.WriteString(" " + accentStyle.Render("/ "+m.search) + "\n")
	} else {
		b.WriteString(" " + dimStyle.Render("/ search...") + "\n")
	}

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg) + "\n")
	}
	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		return b.String()
	}

	list := m.filtered()
	if len(list) == 0 {
		if m.search != "" {
			b.WriteString(" " + dimStyle.Render("no listings match"))
		} else {
			b.WriteString(" " + dimStyle.Render("no listings yet — press n to add one"))
		}
		return b.String()
	}

	available := m.height - 8
	if available < 6 {
		available = 6
	}
	maxVisible := available * 3 / 5
	if maxVisible < 3 {
		maxVisible = 3
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(list) && i < start+maxVisible; i++ {
		h := list[i]

		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		dot := TypeStyle(h.Type).Render("●") + " "

		cityCol := metaStyle.Render(fmt.Sprintf("%-14s", truncStr(h.City, 14)))
		priceCol := priceStyle.Render(fmt.Sprintf("%10s", formatPrice(h.PricePerNight)))
		bedsCol := metaStyle.Render(fmt.Sprintf("%3d beds", h.TotalBeds))

		nameWidth := m.width - 4 - 14 - 12 - 9 - 4
		if nameWidth < 14 {
			nameWidth = 14
		}
		name := fmt.Sprintf("%-*s", nameWidth, truncStr(h.Name, nameWidth))

		line := cursor + dot + nameStyle.Render(name) + " " + cityCol + " " + priceCol + " " + bedsCol
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	if m.deleting {
		if h, ok := m.selected(); ok {
			b.WriteString("\n " + errStyle.Render(fmt.Sprintf("delete %q? (y/n)", h.Name)) + "\n")
		}
	} else if h, ok := m.selected(); ok {
		// Preview of the selected listing
		b.WriteString("\n")
		header := " " + TypeStyle(h.Type).Render("["+h.Type+"]") +
			"  " + ratingStyle.Render(ratingStars(h.Rating, h.ReviewCount))
		b.WriteString(header + "\n")
		desc := truncStr(strings.ReplaceAll(h.Description, "\n", " "), m.width-4)
		b.WriteString(" " + normalStyle.Render(desc) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

func (m hostelsModel) viewDetail() string {
	h, ok := m.selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")
	b.WriteString(" " + selectedStyle.Render(h.Name) + "  " + TypeStyle(h.Type).Render(h.Type) + "\n")

	meta := " " + priceStyle.Render(formatPrice(h.PricePerNight)) +
		metaStyle.Render(" · ") + ratingStyle.Render(ratingStars(h.Rating, h.ReviewCount))
	b.WriteString(meta + "\n\n")

	detailWidth := m.width - 4
	if detailWidth < 40 {
		detailWidth = 40
	}
	wrapped := lipgloss.NewStyle().Width(detailWidth).Render(h.Description)
	for _, line := range strings.Split(wrapped, "\n") {
		b.WriteString(" " + normalStyle.Render(line) + "\n")
	}

	addr := strings.Join(nonEmpty(h.Address, h.City, h.State, h.Country, h.PostalCode), ", ")
	b.WriteString("\n " + metaStyle.Render(addr) + "\n")

	capacity := fmt.Sprintf("%d beds · %d rooms · up to %d guests", h.TotalBeds, h.TotalRooms, h.MaxGuests)
	b.WriteString(" " + metaStyle.Render(capacity) + "\n")

	if len(h.Amenities) > 0 {
		labels := make([]string, 0, len(h.Amenities))
		for _, key := range h.Amenities {
			labels = append(labels, domain.AmenityLabel(key))
		}
		b.WriteString("\n " + sectionHeaderStyle.Render("AMENITIES") + "  " + normalStyle.Render(strings.Join(labels, " · ")) + "\n")
	}

	policies := fmt.Sprintf("check-in %s · check-out %s · %s cancellation",
		h.Policies.CheckInTime, h.Policies.CheckOutTime, h.Policies.CancellationPolicy)
	b.WriteString("\n " + sectionHeaderStyle.Render("POLICIES") + "  " + normalStyle.Render(policies) + "\n")
	flags := []string{}
	if h.Policies.PetFriendly {
		flags = append(flags, "pets ok")
	}
	if h.Policies.SmokingAllowed {
		flags = append(flags, "smoking ok")
	}
	if h.Policies.AlcoholAllowed {
		flags = append(flags, "alcohol ok")
	}
	if len(flags) > 0 {
		b.WriteString(" " + metaStyle.Render(strings.Join(flags, " · ")) + "\n")
	}

	contact := strings.Join(nonEmpty(h.ContactInfo.Phone, h.ContactInfo.Email, h.ContactInfo.Website), " · ")
	if contact != "" {
		b.WriteString("\n " + sectionHeaderStyle.Render("CONTACT") + "  " + normalStyle.Render(contact) + "\n")
	}

	if len(h.Images) > 0 {
		b.WriteString(" " + metaStyle.Render(fmt.Sprintf("%d photos · cover %s", len(h.Images), truncStr(h.Images[0], 40))) + "\n")
	}

	b.WriteString(" " + metaStyle.Render("updated "+formatTime(h.UpdatedAt)) + "\n")

	if m.deleting {
		b.WriteString("\n " + errStyle.Render(fmt.Sprintf("delete %q? (y/n)", h.Name)) + "\n")
	}
	if m.statusMsg != "" {
		b.WriteString("\n " + okStyle.Render(m.statusMsg) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

// nonEmpty drops empty strings so joined lines have no dangling separators.
func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
