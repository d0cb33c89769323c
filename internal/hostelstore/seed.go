package hostelstore

import (
	"time"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

// seedHostels returns the development fixture listings.
func seedHostels() []*domain.Hostel {
	now := time.Now()
	return []*domain.Hostel{
		{
			ID:            "1",
			Name:          "Downtown Backpacker Hostel",
			Description:   "A vibrant hostel located in the heart of the city, perfect for budget travelers looking for a social atmosphere.",
			Type:          "Backpacker Hostel",
			Address:       "123 Main Street",
			City:          "Mumbai",
			State:         "Maharashtra",
			Country:       "India",
			PostalCode:    "400001",
			PricePerNight: 800,
			TotalBeds:     24,
			Rating:        4.2,
			ReviewCount:   156,
			Images:        []string{"/placeholder-hostel.jpg"},
			Amenities:     []string{"wifi", "ac", "laundry", "kitchen"},
			ContactInfo: domain.ContactInfo{
				Phone:   "+91 9876543210",
				Email:   "info@downtownhostel.com",
				Website: "www.downtownhostel.com",
			},
			Policies: domain.Policies{
				CheckInTime:        "14:00",
				CheckOutTime:       "11:00",
				CancellationPolicy: "flexible",
				AlcoholAllowed:     true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            "2",
			Name:          "Seaside Retreat Hostel",
			Description:   "Relax by the beach at our cozy hostel with stunning ocean views and a laid-back atmosphere.",
			Type:          "Party Hostel",
			Address:       "456 Beach Road",
			City:          "Goa",
			State:         "Goa",
			Country:       "India",
			PostalCode:    "403001",
			PricePerNight: 1200,
			TotalBeds:     18,
			Rating:        4.5,
			ReviewCount:   89,
			Images:        []string{"/placeholder-hostel.jpg"},
			Amenities:     []string{"wifi", "restaurant", "pool"},
			ContactInfo: domain.ContactInfo{
				Phone:   "+91 9876543211",
				Email:   "hello@seasideretreat.com",
				Website: "www.seasideretreat.com",
			},
			Policies: domain.Policies{
				CheckInTime:        "15:00",
				CheckOutTime:       "10:00",
				CancellationPolicy: "moderate",
				AlcoholAllowed:     true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            "3",
			Name:          "Mountain View Lodge",
			Description:   "Experience the tranquility of the mountains with breathtaking views and outdoor activities.",
			Type:          "Quiet Hostel",
			Address:       "789 Hill Station Road",
			City:          "Manali",
			State:         "Himachal Pradesh",
			Country:       "India",
			PostalCode:    "175131",
			PricePerNight: 1500,
			TotalBeds:     12,
			Rating:        4.7,
			ReviewCount:   234,
			Images:        []string{"/placeholder-hostel.jpg"},
			Amenities:     []string{"wifi", "security", "kitchen"},
			ContactInfo: domain.ContactInfo{
				Phone:   "+91 9876543212",
				Email:   "stay@mountainviewlodge.com",
				Website: "www.mountainviewlodge.com",
			},
			Policies: domain.Policies{
				CheckInTime:        "13:00",
				CheckOutTime:       "12:00",
				CancellationPolicy: "strict",
				PetFriendly:        true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
