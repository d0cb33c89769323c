package hostelstore

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

// CreateInput is the one internal request shape for Create and Update.
// Structured callers build it directly; the wizard's multipart-style
// encoding goes through ParseForm. Nil Amenities/ContactInfo/Policies
// mean "not supplied" so Update can tell absence from emptiness.
type CreateInput struct {
	Name          string
	Description   string
	Type          string
	Address       string
	City          string
	State         string
	Country       string
	PostalCode    string
	PricePerNight int
	TotalBeds     int
	TotalRooms    int
	MaxGuests     int
	Amenities     []string
	ContactInfo   *domain.ContactInfo
	Policies      *domain.Policies
	Images        []ImageInput
}

// ParseForm decodes the form encoding of a listing — flat string fields
// with array and object values carried as JSON strings — into a
// CreateInput. A non-numeric value in a numeric field is an error here
// rather than a sentinel the store would have to reject later.
func ParseForm(values url.Values, images []ImageInput) (CreateInput, error) {
	in := CreateInput{
		Name:        values.Get("name"),
		Description: values.Get("description"),
		Type:        values.Get("type"),
		Address:     values.Get("address"),
		City:        values.Get("city"),
		State:       values.Get("state"),
		Country:     values.Get("country"),
		PostalCode:  values.Get("postalCode"),
		Images:      images,
	}

	var err error
	if in.PricePerNight, err = formInt(values, "pricePerNight"); err != nil {
		return CreateInput{}, err
	}
	if in.TotalBeds, err = formInt(values, "totalBeds"); err != nil {
		return CreateInput{}, err
	}
	if in.TotalRooms, err = formInt(values, "totalRooms"); err != nil {
		return CreateInput{}, err
	}
	if in.MaxGuests, err = formInt(values, "maxGuests"); err != nil {
		return CreateInput{}, err
	}

	if raw := values.Get("amenities"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Amenities); err != nil {
			return CreateInput{}, fmt.Errorf("parse form field amenities: %w", err)
		}
	}
	if raw := values.Get("contactInfo"); raw != "" {
		var ci domain.ContactInfo
		if err := json.Unmarshal([]byte(raw), &ci); err != nil {
			return CreateInput{}, fmt.Errorf("parse form field contactInfo: %w", err)
		}
		in.ContactInfo = &ci
	}
	if raw := values.Get("policies"); raw != "" {
		var p domain.Policies
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return CreateInput{}, fmt.Errorf("parse form field policies: %w", err)
		}
		in.Policies = &p
	}

	return in, nil
}

// formInt parses a numeric form field. An absent or empty field is
// zero; a present non-numeric value is an error.
func formInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse form field %s: invalid number %q", key, raw)
	}
	return n, nil
}

// EncodeForm is the inverse of ParseForm: it flattens a CreateInput to
// the form encoding the wizard submits. Nested values are JSON strings.
func EncodeForm(in CreateInput) (url.Values, error) {
	values := url.Values{}
	set := func(key, v string) {
		if v != "" {
			values.Set(key, v)
		}
	}
	set("name", in.Name)
	set("description", in.Description)
	set("type", in.Type)
	set("address", in.Address)
	set("city", in.City)
	set("state", in.State)
	set("country", in.Country)
	set("postalCode", in.PostalCode)
	setInt := func(key string, n int) {
		if n != 0 {
			values.Set(key, strconv.Itoa(n))
		}
	}
	setInt("pricePerNight", in.PricePerNight)
	setInt("totalBeds", in.TotalBeds)
	setInt("totalRooms", in.TotalRooms)
	setInt("maxGuests", in.MaxGuests)

	if in.Amenities != nil {
		raw, err := json.Marshal(in.Amenities)
		if err != nil {
			return nil, fmt.Errorf("encode form field amenities: %w", err)
		}
		values.Set("amenities", string(raw))
	}
	if in.ContactInfo != nil {
		raw, err := json.Marshal(in.ContactInfo)
		if err != nil {
			return nil, fmt.Errorf("encode form field contactInfo: %w", err)
		}
		values.Set("contactInfo", string(raw))
	}
	if in.Policies != nil {
		raw, err := json.Marshal(in.Policies)
		if err != nil {
			return nil, fmt.Errorf("encode form field policies: %w", err)
		}
		values.Set("policies", string(raw))
	}
	return values, nil
}
