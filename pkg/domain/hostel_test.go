package domain

import "testing"

func TestValidHostelType(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		valid bool
	}{
		{"valid backpacker", "Backpacker Hostel", true},
		{"valid boutique", "Boutique Hostel", true},
		{"valid party", "Party Hostel", true},
		{"valid luxury", "Luxury Hostel", true},
		{"valid eco", "Eco Hostel", true},
		{"invalid empty", "", false},
		{"invalid unknown", "Motel", false},
		{"invalid lowercase", "backpacker hostel", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidHostelType(tt.typ); got != tt.valid {
				t.Errorf("ValidHostelType(%q) = %v, want %v", tt.typ, got, tt.valid)
			}
		})
	}
}

func TestValidAmenity(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{"valid wifi", "wifi", true},
		{"valid pool", "pool", true},
		{"valid kitchen", "kitchen", true},
		{"invalid empty", "", false},
		{"invalid label", "Free WiFi", false},
		{"invalid unknown", "helipad", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidAmenity(tt.key); got != tt.valid {
				t.Errorf("ValidAmenity(%q) = %v, want %v", tt.key, got, tt.valid)
			}
		})
	}
}

func TestAmenityLabel(t *testing.T) {
	if got := AmenityLabel("gym"); got != "Fitness Center" {
		t.Errorf("AmenityLabel(gym) = %q, want %q", got, "Fitness Center")
	}
	// Unknown keys fall back to the key itself.
	if got := AmenityLabel("helipad"); got != "helipad" {
		t.Errorf("AmenityLabel(helipad) = %q, want %q", got, "helipad")
	}
}

func TestValidCancellationPolicy(t *testing.T) {
	for _, p := range CancellationPolicies {
		if !ValidCancellationPolicy(p) {
			t.Errorf("ValidCancellationPolicy(%q) = false, want true", p)
		}
	}
	if ValidCancellationPolicy("refundable") {
		t.Error("ValidCancellationPolicy(refundable) = true, want false")
	}
}

func TestDefaultPolicies(t *testing.T) {
	p := DefaultPolicies()
	if p.CheckInTime != "14:00" {
		t.Errorf("CheckInTime = %q, want %q", p.CheckInTime, "14:00")
	}
	if p.CheckOutTime != "11:00" {
		t.Errorf("CheckOutTime = %q, want %q", p.CheckOutTime, "11:00")
	}
	if p.CancellationPolicy != "flexible" {
		t.Errorf("CancellationPolicy = %q, want %q", p.CancellationPolicy, "flexible")
	}
	if !p.AlcoholAllowed || p.PetFriendly || p.SmokingAllowed {
		t.Errorf("boolean defaults = %v/%v/%v, want alcohol only", p.AlcoholAllowed, p.PetFriendly, p.SmokingAllowed)
	}
}
