package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/pkg/domain"
)

// The listing wizard walks seven steps. Moving forward validates the
// current step; moving back never does. Validation errors are keyed by
// field and clear as soon as the field is edited.
const (
	stepBasicInfo = iota
	stepLocation
	stepContact
	stepPricing
	stepAmenities
	stepPolicies
	stepPhotos
	numSteps
)

var stepTitles = [numSteps]string{
	"Basic Info", "Location", "Contact", "Pricing & Capacity",
	"Amenities", "Policies", "Photos",
}

type createField int

const (
	fName createField = iota
	fDescription
	fAddress
	fCity
	fState
	fCountry
	fPostalCode
	fPhone
	fEmail
	fWebsite
	fPrice
	fBeds
	fRooms
	fGuests
	fCheckIn
	fCheckOut
	fPhotoPath
	numCreateFields
)

// createFieldKeys index fieldErrs; they match the wire names.
var createFieldKeys = [numCreateFields]string{
	"name", "description", "address", "city", "state", "country", "postalCode",
	"phone", "email", "website", "pricePerNight", "totalBeds", "totalRooms",
	"maxGuests", "checkInTime", "checkOutTime", "photoPath",
}

var createFieldLabels = [numCreateFields]string{
	"name", "description", "address", "city", "state", "country", "postal code",
	"phone", "email", "website", "price per night", "total beds", "total rooms",
	"max guests", "check-in", "check-out", "add photo",
}

// stepTextFields lists the free-text fields per step, in focus order.
var stepTextFields = [numSteps][]createField{
	stepBasicInfo: {fName, fDescription},
	stepLocation:  {fAddress, fCity, fState, fCountry, fPostalCode},
	stepContact:   {fPhone, fEmail, fWebsite},
	stepPricing:   {fPrice, fBeds, fRooms, fGuests},
	stepAmenities: {},
	stepPolicies:  {fCheckIn, fCheckOut},
	stepPhotos:    {fPhotoPath},
}

type hostelSavedMsg struct {
	hostel *domain.Hostel
	err    error
}

type photoAddedMsg struct {
	image hostelstore.ImageInput
	err   error
}

type createModel struct {
	store  *hostelstore.Store
	step   int
	fields [numCreateFields]string

	// selectors and toggles outside the text fields
	hostelType   string
	amenityCur   int
	amenities    map[string]bool
	cancellation string
	petFriendly  bool
	smoking      bool
	alcohol      bool
	polFocus     int // 0..1 text, 2 cancellation, 3..5 toggles

	images []hostelstore.ImageInput

	focus      int // index into stepTextFields[step]
	fieldErrs  map[string]string
	editingID  string // non-empty when updating an existing listing
	submitting bool
	statusMsg  string
	width      int
	height     int
}

func newCreateModel(s *hostelstore.Store) createModel {
	pol := domain.DefaultPolicies()
	m := createModel{
		store:        s,
		amenities:    map[string]bool{},
		fieldErrs:    map[string]string{},
		cancellation: pol.CancellationPolicy,
		alcohol:      pol.AlcoholAllowed,
	}
	m.fields[fCheckIn] = pol.CheckInTime
	m.fields[fCheckOut] = pol.CheckOutTime
	return m
}

// prefill loads an existing listing into the wizard for editing.
func (m createModel) prefill(h domain.Hostel) createModel {
	p := newCreateModel(m.store)
	p.width, p.height = m.width, m.height
	p.editingID = h.ID
	p.fields[fName] = h.Name
	p.fields[fDescription] = h.Description
	p.hostelType = h.Type
	p.fields[fAddress] = h.Address
	p.fields[fCity] = h.City
	p.fields[fState] = h.State
	p.fields[fCountry] = h.Country
	p.fields[fPostalCode] = h.PostalCode
	p.fields[fPhone] = h.ContactInfo.Phone
	p.fields[fEmail] = h.ContactInfo.Email
	p.fields[fWebsite] = h.ContactInfo.Website
	p.fields[fPrice] = strconv.Itoa(h.PricePerNight)
	p.fields[fBeds] = strconv.Itoa(h.TotalBeds)
	p.fields[fRooms] = strconv.Itoa(h.TotalRooms)
	p.fields[fGuests] = strconv.Itoa(h.MaxGuests)
	for _, a := range h.Amenities {
		p.amenities[a] = true
	}
	if h.Policies.CheckInTime != "" {
		p.fields[fCheckIn] = h.Policies.CheckInTime
	}
	if h.Policies.CheckOutTime != "" {
		p.fields[fCheckOut] = h.Policies.CheckOutTime
	}
	if h.Policies.CancellationPolicy != "" {
		p.cancellation = h.Policies.CancellationPolicy
	}
	p.petFriendly = h.Policies.PetFriendly
	p.smoking = h.Policies.SmokingAllowed
	p.alcohol = h.Policies.AlcoholAllowed
	return p
}

func (m createModel) Init() tea.Cmd {
	return nil
}

func (m createModel) Update(msg tea.Msg) (createModel, tea.Cmd) {
	switch msg := msg.(type) {
	case hostelSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		// App switches away; hand back a fresh form.
		return newCreateModel(m.store), nil

	case photoAddedMsg:
		if msg.err != nil {
			m.fieldErrs["photoPath"] = msg.err.Error()
			return m, nil
		}
		m.images = append(m.images, msg.image)
		m.fields[fPhotoPath] = ""
		return m, nil

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

func (m createModel) updateKeys(msg tea.KeyMsg) (createModel, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "ctrl+n":
		return m.nextStep()
	case "ctrl+b":
		// Back never validates.
		if m.step > 0 {
			m.step--
			m.focus = 0
		}
		return m, nil
	case "ctrl+s":
		return m.submit()
	}

	switch m.step {
	case stepAmenities:
		return m.updateAmenities(msg), nil
	case stepPolicies:
		return m.updatePolicies(msg), nil
	case stepPhotos:
		return m.updatePhotos(msg)
	default:
		return m.updateTextStep(msg), nil
	}
}

func (m createModel) updateTextStep(msg tea.KeyMsg) createModel {
	fields := stepTextFields[m.step]

	switch msg.String() {
	case "tab", "down", "enter":
		m.focus = (m.focus + 1) % len(fields)
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(fields)) % len(fields)
	case "h", "l", "left", "right":
		// Basic info: the type selector cycles only while the name field
		// has focus and h/l are not being typed into text. Use arrows.
		if m.step == stepBasicInfo && (msg.String() == "left" || msg.String() == "right") {
			m.hostelType = cycleChoice(domain.HostelTypes, m.hostelType, msg.String() == "right")
			delete(m.fieldErrs, "type")
			return m
		}
		m = m.editFocused(msg.String())
	default:
		m = m.editFocused(msg.String())
	}
	return m
}

func (m createModel) editFocused(key string) createModel {
	fields := stepTextFields[m.step]
	f := fields[m.focus]
	before := m.fields[f]
	m.fields[f] = editRune(before, key)
	if m.fields[f] != before {
		delete(m.fieldErrs, createFieldKeys[f])
	}
	return m
}

func (m createModel) updateAmenities(msg tea.KeyMsg) createModel {
	switch msg.String() {
	case "j", "down":
		if m.amenityCur < len(domain.Amenities)-1 {
			m.amenityCur++
		}
	case "k", "up":
		if m.amenityCur > 0 {
			m.amenityCur--
		}
	case " ", "space", "enter":
		key := domain.Amenities[m.amenityCur].Key
		m.amenities[key] = !m.amenities[key]
	}
	return m
}

func (m createModel) updatePolicies(msg tea.KeyMsg) createModel {
	const polItems = 6

	switch msg.String() {
	case "tab", "down":
		m.polFocus = (m.polFocus + 1) % polItems
		return m
	case "shift+tab", "up":
		m.polFocus = (m.polFocus - 1 + polItems) % polItems
		return m
	}

	switch m.polFocus {
	case 0, 1:
		f := fCheckIn
		if m.polFocus == 1 {
			f = fCheckOut
		}
		m.fields[f] = editRune(m.fields[f], msg.String())
	case 2:
		switch msg.String() {
		case "h", "left", "l", "right":
			m.cancellation = cycleChoice(domain.CancellationPolicies, m.cancellation, msg.String() == "l" || msg.String() == "right")
		}
	default:
		if msg.String() == " " || msg.String() == "space" || msg.String() == "enter" {
			switch m.polFocus {
			case 3:
				m.petFriendly = !m.petFriendly
			case 4:
				m.smoking = !m.smoking
			case 5:
				m.alcohol = !m.alcohol
			}
		}
	}
	return m
}

func (m createModel) updatePhotos(msg tea.KeyMsg) (createModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.fields[fPhotoPath])
		if path == "" {
			return m, nil
		}
		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			m.images = append(m.images, hostelstore.ImageInput{URL: path})
			m.fields[fPhotoPath] = ""
			return m, nil
		}
		return m, func() tea.Msg {
			img, err := hostelstore.LoadImageFile(path)
			return photoAddedMsg{image: img, err: err}
		}
	case "ctrl+x":
		if len(m.images) > 0 {
			m.images = m.images[:len(m.images)-1]
		}
		return m, nil
	default:
		before := m.fields[fPhotoPath]
		m.fields[fPhotoPath] = editRune(before, msg.String())
		if m.fields[fPhotoPath] != before {
			delete(m.fieldErrs, "photoPath")
		}
		return m, nil
	}
}

// cycleChoice steps through choices; an empty current selects the first.
func cycleChoice(choices []string, current string, forward bool) string {
	if current == "" {
		return choices[0]
	}
	for i, c := range choices {
		if c == current {
			if forward {
				return choices[(i+1)%len(choices)]
			}
			return choices[(i-1+len(choices))%len(choices)]
		}
	}
	return choices[0]
}

func (m createModel) nextStep() (createModel, tea.Cmd) {
	if !m.validateStep(m.step) {
		return m, nil
	}
	if m.step < numSteps-1 {
		m.step++
		m.focus = 0
	}
	return m, nil
}

// validateStep records field errors for one step and reports whether it
// passed. Errors are collected fresh each call so a re-failed field still
// blocks the step. Steps past pricing have no required fields.
func (m *createModel) validateStep(step int) bool {
	errs := make(map[string]string)

	require := func(f createField, msg string) {
		if strings.TrimSpace(m.fields[f]) == "" {
			errs[createFieldKeys[f]] = msg
		}
	}
	positive := func(f createField, label string) {
		raw := strings.TrimSpace(m.fields[f])
		n, err := strconv.Atoi(raw)
		if raw == "" || err != nil {
			errs[createFieldKeys[f]] = label + " must be a number"
			return
		}
		if n <= 0 {
			errs[createFieldKeys[f]] = label + " must be greater than 0"
		}
	}

	switch step {
	case stepBasicInfo:
		require(fName, "Hostel name is required")
		require(fDescription, "Description is required")
		if m.hostelType == "" {
			errs["type"] = "Select a hostel type"
		}
	case stepLocation:
		require(fAddress, "Address is required")
		require(fCity, "City is required")
		require(fState, "State is required")
		require(fCountry, "Country is required")
	case stepContact:
		if len(strings.TrimSpace(m.fields[fPhone])) < 10 {
			errs["phone"] = "Please enter a valid contact number"
		}
		if !domain.ValidEmail(strings.TrimSpace(m.fields[fEmail])) {
			errs["email"] = "Please enter a valid email"
		}
	case stepPricing:
		positive(fPrice, "Price per night")
		positive(fBeds, "Total beds")
		positive(fRooms, "Total rooms")
		positive(fGuests, "Max guests")
	}
	for k, v := range errs {
		m.fieldErrs[k] = v
	}
	return len(errs) == 0
}

// buildInput assembles the structured listing from the wizard state.
// Numeric fields were validated; a parse failure here reads as zero and
// is caught again at the form boundary.
func (m createModel) buildInput() hostelstore.CreateInput {
	atoi := func(f createField) int {
		n, _ := strconv.Atoi(strings.TrimSpace(m.fields[f])) //nolint:errcheck
		return n
	}
	selected := make([]string, 0, len(m.amenities))
	for _, a := range domain.Amenities {
		if m.amenities[a.Key] {
			selected = append(selected, a.Key)
		}
	}
	return hostelstore.CreateInput{
		Name:          strings.TrimSpace(m.fields[fName]),
		Description:   strings.TrimSpace(m.fields[fDescription]),
		Type:          m.hostelType,
		Address:       strings.TrimSpace(m.fields[fAddress]),
		City:          strings.TrimSpace(m.fields[fCity]),
		State:         strings.TrimSpace(m.fields[fState]),
		Country:       strings.TrimSpace(m.fields[fCountry]),
		PostalCode:    strings.TrimSpace(m.fields[fPostalCode]),
		PricePerNight: atoi(fPrice),
		TotalBeds:     atoi(fBeds),
		TotalRooms:    atoi(fRooms),
		MaxGuests:     atoi(fGuests),
		Amenities:     selected,
		ContactInfo: &domain.ContactInfo{
			Phone:   strings.TrimSpace(m.fields[fPhone]),
			Email:   strings.TrimSpace(m.fields[fEmail]),
			Website: strings.TrimSpace(m.fields[fWebsite]),
		},
		Policies: &domain.Policies{
			CheckInTime:        strings.TrimSpace(m.fields[fCheckIn]),
			CheckOutTime:       strings.TrimSpace(m.fields[fCheckOut]),
			CancellationPolicy: m.cancellation,
			PetFriendly:        m.petFriendly,
			SmokingAllowed:     m.smoking,
			AlcoholAllowed:     m.alcohol,
		},
		Images: m.images,
	}
}

func (m createModel) submit() (createModel, tea.Cmd) {
	// Re-validate every gated step; jump to the first one that fails.
	for step := stepBasicInfo; step <= stepPricing; step++ {
		if !m.validateStep(step) {
			m.step = step
			m.focus = 0
			return m, nil
		}
	}

	m.submitting = true
	in := m.buildInput()
	s := m.store
	id := m.editingID

	return m, func() tea.Msg {
		// Round the listing through its form encoding, the same payload
		// shape the web client posts.
		values, err := hostelstore.EncodeForm(in)
		if err != nil {
			return hostelSavedMsg{err: err}
		}
		parsed, err := hostelstore.ParseForm(values, in.Images)
		if err != nil {
			return hostelSavedMsg{err: err}
		}
		var h *domain.Hostel
		if id != "" {
			h, err = s.Update(context.Background(), id, parsed)
		} else {
			h, err = s.Create(context.Background(), parsed)
		}
		return hostelSavedMsg{hostel: h, err: err}
	}
}

func (m createModel) View() string {
	var b strings.Builder

	title := "NEW LISTING"
	if m.editingID != "" {
		title = "EDIT LISTING"
	}
	b.WriteString(" " + selectedStyle.Render(title) + "  " +
		accentStyle.Render(fmt.Sprintf("step %d/%d", m.step+1, numSteps)) + "  " +
		dimStyle.Render(stepTitles[m.step]) + "\n")

	// Step dots
	var dots []string
	for i := 0; i < numSteps; i++ {
		if i == m.step {
			dots = append(dots, accentStyle.Render("●"))
		} else if i < m.step {
			dots = append(dots, okStyle.Render("●"))
		} else {
			dots = append(dots, metaStyle.Render("○"))
		}
	}
	b.WriteString(" " + strings.Join(dots, " ") + "\n\n")

	switch m.step {
	case stepAmenities:
		b.WriteString(m.viewAmenities())
	case stepPolicies:
		b.WriteString(m.viewPolicies())
	case stepPhotos:
		b.WriteString(m.viewPhotos())
	default:
		b.WriteString(m.viewTextStep())
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(" " + dimStyle.Render("saving..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errStyle.Render(m.statusMsg))
	}

	return truncateToHeight(b.String(), m.height)
}

func (m createModel) viewTextStep() string {
	var b strings.Builder

	if m.step == stepBasicInfo {
		t := m.hostelType
		display := inputPlaceholderStyle.Render("left/right to choose")
		if t != "" {
			display = TypeStyle(t).Render(t)
		}
		b.WriteString("  " + metaStyle.Render("type") + ": " + display + "\n")
		if e, ok := m.fieldErrs["type"]; ok {
			b.WriteString("    " + errStyle.Render(e) + "\n")
		}
	}

	for i, f := range stepTextFields[m.step] {
		label := createFieldLabels[f]
		value := m.fields[f]
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
			value += "█"
		}
		b.WriteString(cursor + " " + style.Render(label) + ": " + value + "\n")
		if e, ok := m.fieldErrs[createFieldKeys[f]]; ok {
			b.WriteString("    " + errStyle.Render(e) + "\n")
		}
	}
	return b.String()
}

func (m createModel) viewAmenities() string {
	var b strings.Builder
	for i, a := range domain.Amenities {
		cursor := "  "
		style := dimStyle
		if i == m.amenityCur {
			cursor = accentStyle.Render("▸") + " "
			style = normalStyle
		}
		box := metaStyle.Render("[ ]")
		if m.amenities[a.Key] {
			box = okStyle.Render("[x]")
		}
		b.WriteString(cursor + box + " " + style.Render(a.Label) + "\n")
	}
	b.WriteString("\n " + dimStyle.Render("space to toggle") + "\n")
	return b.String()
}

func (m createModel) viewPolicies() string {
	var b strings.Builder

	row := func(idx int, label, value string) {
		cursor := " "
		style := metaStyle
		if idx == m.polFocus {
			cursor = ">"
			style = selectedStyle
		}
		b.WriteString(cursor + " " + style.Render(label) + ": " + value + "\n")
	}

	checkIn := m.fields[fCheckIn]
	if m.polFocus == 0 {
		checkIn += "█"
	}
	checkOut := m.fields[fCheckOut]
	if m.polFocus == 1 {
		checkOut += "█"
	}
	row(0, "check-in", checkIn)
	row(1, "check-out", checkOut)
	row(2, "cancellation", accentStyle.Render(m.cancellation)+"  "+metaStyle.Render("h/l"))

	toggle := func(on bool) string {
		if on {
			return okStyle.Render("[yes]")
		}
		return metaStyle.Render("[no]")
	}
	row(3, "pet friendly", toggle(m.petFriendly))
	row(4, "smoking allowed", toggle(m.smoking))
	row(5, "alcohol allowed", toggle(m.alcohol))
	return b.String()
}

func (m createModel) viewPhotos() string {
	var b strings.Builder

	for i, img := range m.images {
		name := img.URL
		if name == "" {
			name = img.Name
		}
		marker := " "
		if i == 0 {
			marker = ratingStyle.Render("★") // cover photo
		}
		b.WriteString(" " + marker + " " + normalStyle.Render(truncStr(name, 50)) + "\n")
	}
	if len(m.images) == 0 {
		b.WriteString(" " + dimStyle.Render("no photos yet — first photo becomes the cover") + "\n")
	}

	value := m.fields[fPhotoPath] + "█"
	b.WriteString("\n> " + selectedStyle.Render("add photo") + ": " + value + "\n")
	if e, ok := m.fieldErrs["photoPath"]; ok {
		b.WriteString("    " + errStyle.Render(e) + "\n")
	}
	b.WriteString(" " + dimStyle.Render("path or URL, enter to add, ctrl+x to remove last") + "\n")
	return b.String()
}
