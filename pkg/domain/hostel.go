package domain

import "time"

// Hostel represents a hostel listing.
type Hostel struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Type          string      `json:"type"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Country       string      `json:"country"`
	PostalCode    string      `json:"postalCode,omitempty"`
	PricePerNight int         `json:"pricePerNight"`
	TotalBeds     int         `json:"totalBeds"`
	TotalRooms    int         `json:"totalRooms,omitempty"`
	MaxGuests     int         `json:"maxGuests,omitempty"`
	Images        []string    `json:"images"` // first entry is the cover image
	Amenities     []string    `json:"amenities"`
	ContactInfo   ContactInfo `json:"contactInfo"`
	Policies      Policies    `json:"policies"`
	Rating        float64     `json:"rating"`
	ReviewCount   int         `json:"reviewCount"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// ContactInfo holds a hostel's public contact details.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

// Policies holds a hostel's house policies.
type Policies struct {
	CheckInTime        string `json:"checkInTime"`
	CheckOutTime       string `json:"checkOutTime"`
	CancellationPolicy string `json:"cancellationPolicy"`
	PetFriendly        bool   `json:"petFriendly"`
	SmokingAllowed     bool   `json:"smokingAllowed"`
	AlcoholAllowed     bool   `json:"alcoholAllowed"`
}

// DefaultPolicies returns the policy values a new listing starts with.
func DefaultPolicies() Policies {
	return Policies{
		CheckInTime:        "14:00",
		CheckOutTime:       "11:00",
		CancellationPolicy: "flexible",
		AlcoholAllowed:     true,
	}
}

// Valid hostel types.
var HostelTypes = []string{
	"Backpacker Hostel",
	"Boutique Hostel",
	"Party Hostel",
	"Quiet Hostel",
	"Family Hostel",
	"Luxury Hostel",
	"Eco Hostel",
	"Business Hostel",
}

var hostelTypeSet = func() map[string]bool {
	m := make(map[string]bool, len(HostelTypes))
	for _, t := range HostelTypes {
		m[t] = true
	}
	return m
}()

// ValidHostelType returns true if the given type is a known hostel type.
func ValidHostelType(t string) bool {
	return hostelTypeSet[t]
}

// Amenity is a selectable hostel feature.
type Amenity struct {
	Key   string
	Label string
}

// Amenities lists every selectable amenity, in display order.
var Amenities = []Amenity{
	{Key: "wifi", Label: "Free WiFi"},
	{Key: "parking", Label: "Parking"},
	{Key: "restaurant", Label: "Restaurant"},
	{Key: "gym", Label: "Fitness Center"},
	{Key: "pool", Label: "Swimming Pool"},
	{Key: "laundry", Label: "Laundry Service"},
	{Key: "security", Label: "24/7 Security"},
	{Key: "ac", Label: "Air Conditioning"},
	{Key: "kitchen", Label: "Shared Kitchen"},
	{Key: "tv", Label: "TV Lounge"},
}

var amenitySet = func() map[string]bool {
	m := make(map[string]bool, len(Amenities))
	for _, a := range Amenities {
		m[a.Key] = true
	}
	return m
}()

// ValidAmenity returns true if the given key is a known amenity.
func ValidAmenity(key string) bool {
	return amenitySet[key]
}

// AmenityLabel returns the display label for an amenity key, or the key
// itself when unknown.
func AmenityLabel(key string) string {
	for _, a := range Amenities {
		if a.Key == key {
			return a.Label
		}
	}
	return key
}

// Valid cancellation policies.
var CancellationPolicies = []string{"flexible", "moderate", "strict"}

// ValidCancellationPolicy returns true for a known cancellation policy.
func ValidCancellationPolicy(p string) bool {
	for _, c := range CancellationPolicies {
		if c == p {
			return true
		}
	}
	return false
}
