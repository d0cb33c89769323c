package hostelstore

import (
	"net/url"
	"strings"
	"testing"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

func TestFormRoundTrip(t *testing.T) {
	in := CreateInput{
		Name:          "Old Town Dorms",
		Description:   "Dorm beds near the fort.",
		Type:          "Party Hostel",
		Address:       "7 Fort Road",
		City:          "Jaipur",
		State:         "Rajasthan",
		Country:       "India",
		PostalCode:    "302002",
		PricePerNight: 650,
		TotalBeds:     40,
		TotalRooms:    10,
		MaxGuests:     45,
		Amenities:     []string{"wifi", "laundry", "tv"},
		ContactInfo: &domain.ContactInfo{
			Phone:   "+91 9111111111",
			Email:   "hello@oldtowndorms.in",
			Website: "https://oldtowndorms.in",
		},
		Policies: &domain.Policies{
			CheckInTime:        "13:00",
			CheckOutTime:       "10:00",
			CancellationPolicy: "moderate",
			PetFriendly:        true,
		},
	}

	values, err := EncodeForm(in)
	if err != nil {
		t.Fatalf("EncodeForm() error: %v", err)
	}
	got, err := ParseForm(values, nil)
	if err != nil {
		t.Fatalf("ParseForm() error: %v", err)
	}

	if got.Name != in.Name || got.City != in.City || got.PostalCode != in.PostalCode {
		t.Errorf("string fields: got %q/%q/%q", got.Name, got.City, got.PostalCode)
	}
	if got.PricePerNight != 650 || got.TotalBeds != 40 || got.TotalRooms != 10 || got.MaxGuests != 45 {
		t.Errorf("numeric fields: got %d/%d/%d/%d",
			got.PricePerNight, got.TotalBeds, got.TotalRooms, got.MaxGuests)
	}
	if len(got.Amenities) != 3 || got.Amenities[0] != "wifi" {
		t.Errorf("Amenities = %v, want %v", got.Amenities, in.Amenities)
	}
	if got.ContactInfo == nil || *got.ContactInfo != *in.ContactInfo {
		t.Errorf("ContactInfo = %+v, want %+v", got.ContactInfo, in.ContactInfo)
	}
	if got.Policies == nil || *got.Policies != *in.Policies {
		t.Errorf("Policies = %+v, want %+v", got.Policies, in.Policies)
	}
}

func TestParseFormAbsentFieldsAreZero(t *testing.T) {
	got, err := ParseForm(url.Values{"name": {"Just A Name"}}, nil)
	if err != nil {
		t.Fatalf("ParseForm() error: %v", err)
	}
	if got.PricePerNight != 0 || got.TotalBeds != 0 {
		t.Errorf("numeric fields = %d/%d, want zeros", got.PricePerNight, got.TotalBeds)
	}
	if got.Amenities != nil || got.ContactInfo != nil || got.Policies != nil {
		t.Error("absent nested fields should stay nil")
	}
}

func TestParseFormRejectsNonNumeric(t *testing.T) {
	_, err := ParseForm(url.Values{"pricePerNight": {"cheap"}}, nil)
	if err == nil {
		t.Fatal("ParseForm() accepted a non-numeric price")
	}
	if !strings.Contains(err.Error(), "pricePerNight") {
		t.Errorf("error %q does not name the bad field", err)
	}
}

func TestParseFormRejectsMalformedJSON(t *testing.T) {
	_, err := ParseForm(url.Values{"amenities": {"not json"}}, nil)
	if err == nil {
		t.Fatal("ParseForm() accepted malformed amenities JSON")
	}
}

func TestEncodeFormSkipsEmptyFields(t *testing.T) {
	values, err := EncodeForm(CreateInput{Name: "Sparse"})
	if err != nil {
		t.Fatalf("EncodeForm() error: %v", err)
	}
	for _, key := range []string{"description", "pricePerNight", "amenities", "contactInfo", "policies"} {
		if values.Has(key) {
			t.Errorf("empty field %q was encoded", key)
		}
	}
	if values.Get("name") != "Sparse" {
		t.Errorf("name = %q, want %q", values.Get("name"), "Sparse")
	}
}
