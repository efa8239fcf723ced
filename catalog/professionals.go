package catalog

import "github.com/cryptoexpertssss/gobeauty-mobile/models"

var professionals = []models.Professional{
	{
		ID:        "1",
		Name:      "Isabella Santos",
		Specialty: "Hair Stylist & Colorist",
		Rating:    4.9,
		Reviews:   234,
		Image:     "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=400",
		Distance:  "0.5 km",
		Price:     "$$$",
		Location: models.GeoPoint{
			Latitude:  37.7849,
			Longitude: -122.4094,
			Address:   "123 Beauty Street, San Francisco",
		},
		Services: []string{"Hair Coloring", "Balayage", "Haircut", "Styling"},
		Bio:      "Certified colorist with 10+ years experience in modern techniques",
	},
	{
		ID:        "2",
		Name:      "Maria Rodriguez",
		Specialty: "Makeup Artist",
		Rating:    5.0,
		Reviews:   189,
		Image:     "https://images.unsplash.com/photo-1598257006458-087169a1f08d?w=400",
		Distance:  "1.2 km",
		Price:     "$$",
		Location: models.GeoPoint{
			Latitude:  37.7749,
			Longitude: -122.4194,
			Address:   "456 Glam Avenue, San Francisco",
		},
		Services: []string{"Bridal Makeup", "Special Events", "Photoshoot", "Lessons"},
		Bio:      "Professional makeup artist specializing in natural glam looks",
	},
	{
		ID:        "3",
		Name:      "Sophie Chen",
		Specialty: "Nail Artist",
		Rating:    4.8,
		Reviews:   312,
		Image:     "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400",
		Distance:  "0.8 km",
		Price:     "$$",
		Location: models.GeoPoint{
			Latitude:  37.7649,
			Longitude: -122.4294,
			Address:   "789 Nail Plaza, San Francisco",
		},
		Services: []string{"Gel Manicure", "Nail Art", "Pedicure", "Acrylic Nails"},
		Bio:      "Creative nail designs with a focus on nail health",
	},
	{
		ID:        "4",
		Name:      "Emma Johnson",
		Specialty: "Esthetician",
		Rating:    4.9,
		Reviews:   276,
		Image:     "https://images.unsplash.com/photo-1559250404-b4ee645cf82a?w=400",
		Distance:  "1.5 km",
		Price:     "$$$",
		Location: models.GeoPoint{
			Latitude:  37.7549,
			Longitude: -122.4394,
			Address:   "321 Skin Care Lane, San Francisco",
		},
		Services: []string{"Facials", "Microdermabrasion", "Chemical Peels", "LED Therapy"},
		Bio:      "Licensed esthetician specializing in anti-aging treatments",
	},
	{
		ID:        "5",
		Name:      "Olivia Martinez",
		Specialty: "Lash & Brow Specialist",
		Rating:    5.0,
		Reviews:   198,
		Image:     "https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=400",
		Distance:  "2.0 km",
		Price:     "$$",
		Location: models.GeoPoint{
			Latitude:  37.7449,
			Longitude: -122.4494,
			Address:   "654 Lash Boulevard, San Francisco",
		},
		Services: []string{"Lash Extensions", "Brow Lamination", "Lash Lift", "Brow Tint"},
		Bio:      "Expert in creating natural-looking lash extensions",
	},
	{
		ID:        "6",
		Name:      "Ava Thompson",
		Specialty: "Massage Therapist",
		Rating:    4.7,
		Reviews:   145,
		Image:     "https://images.unsplash.com/photo-1594744803329-e58b31de8bf5?w=400",
		Distance:  "1.8 km",
		Price:     "$$$",
		Location: models.GeoPoint{
			Latitude:  37.7349,
			Longitude: -122.4594,
			Address:   "987 Wellness Way, San Francisco",
		},
		Services: []string{"Swedish Massage", "Deep Tissue", "Hot Stone", "Aromatherapy"},
		Bio:      "Certified massage therapist with holistic approach",
	},
}
