package catalog

import "github.com/cryptoexpertssss/gobeauty-mobile/models"

var reviews = []models.Review{
	{
		ID:             "rev_001",
		ProfessionalID: "1",
		ClientName:     "Sarah Wilson",
		ClientImage:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
		Rating:         5,
		Comment:        "Isabella is absolutely amazing! The balayage came out exactly as I wanted. She really listened to what I was looking for and delivered perfection. Highly recommend!",
		Service:        "Balayage Hair Color",
		Date:           "2025-01-05",
		Helpful:        24,
	},
	{
		ID:             "rev_002",
		ProfessionalID: "1",
		ClientName:     "Emma Thompson",
		ClientImage:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
		Rating:         5,
		Comment:        "Best hair stylist in the city! My hair has never looked better. Isabella is a true professional and artist.",
		Service:        "Hair Coloring",
		Date:           "2025-01-03",
		Helpful:        18,
	},
	{
		ID:             "rev_003",
		ProfessionalID: "2",
		ClientName:     "Olivia Brown",
		ClientImage:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400",
		Rating:         5,
		Comment:        "Maria did my wedding makeup and I felt like a princess! She's incredibly talented and made me feel so comfortable. Everyone complimented my makeup all night!",
		Service:        "Bridal Makeup",
		Date:           "2025-01-04",
		Helpful:        31,
	},
	{
		ID:             "rev_005",
		ProfessionalID: "3",
		ClientName:     "Mia Johnson",
		ClientImage:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400",
		Rating:         5,
		Comment:        "Sophie's nail art is incredible! My gel manicure lasted for 3 weeks without chipping. The designs she creates are so unique and beautiful.",
		Service:        "Gel Manicure",
		Date:           "2025-01-06",
		Helpful:        27,
	},
	{
		ID:             "rev_007",
		ProfessionalID: "4",
		ClientName:     "Isabella Garcia",
		ClientImage:    "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=400",
		Rating:         5,
		Comment:        "Emma's facials are transformative! My skin has never looked better. She really knows her stuff and customizes each treatment.",
		Service:        "Hydrafacial",
		Date:           "2025-01-07",
		Helpful:        35,
	},
	{
		ID:             "rev_009",
		ProfessionalID: "5",
		ClientName:     "Amelia Rodriguez",
		ClientImage:    "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?w=400",
		Rating:         5,
		Comment:        "Olivia is the lash queen! My extensions look so natural and beautiful. She's gentle and professional throughout the entire process.",
		Service:        "Lash Extensions",
		Date:           "2025-01-05",
		Helpful:        29,
	},
}

var galleryItems = []models.GalleryItem{
	{
		ID:               "gallery_001",
		ProfessionalID:   "1",
		ProfessionalName: "Isabella Santos",
		Service:          "Balayage Hair Color",
		Image:            "https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=600",
		Likes:            245,
		Description:      "Sun-kissed balayage with natural blonde highlights",
		Category:         "Hair",
	},
	{
		ID:               "gallery_002",
		ProfessionalID:   "1",
		ProfessionalName: "Isabella Santos",
		Service:          "Hair Styling",
		Image:            "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=600",
		Likes:            198,
		Description:      "Elegant updo for special occasion",
		Category:         "Hair",
	},
	{
		ID:               "gallery_003",
		ProfessionalID:   "2",
		ProfessionalName: "Maria Rodriguez",
		Service:          "Bridal Makeup",
		Image:            "https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=600",
		Likes:            312,
		Description:      "Classic bridal makeup with soft glam",
		Category:         "Makeup",
	},
	{
		ID:               "gallery_005",
		ProfessionalID:   "3",
		ProfessionalName: "Sophie Chen",
		Service:          "Nail Art",
		Image:            "https://images.unsplash.com/photo-1604654894610-df63bc536371?w=600",
		Likes:            189,
		Description:      "Floral nail art design with gel polish",
		Category:         "Nails",
	},
	{
		ID:               "gallery_007",
		ProfessionalID:   "4",
		ProfessionalName: "Emma Johnson",
		Service:          "Facial Treatment",
		Image:            "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=600",
		Likes:            178,
		Description:      "Hydrafacial treatment results - glowing skin",
		Category:         "Skincare",
	},
}

var beautyTips = []models.BeautyTip{
	{
		ID:          "tip_001",
		Title:       "How to Make Your Hair Color Last Longer",
		Category:    "Hair",
		Content:     "Use color-safe shampoo and conditioner, wash with cool water, limit heat styling, and get regular trims every 6-8 weeks. Protect your hair from UV rays and chlorine.",
		Author:      "Isabella Santos",
		AuthorImage: "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=400",
		Image:       "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=600",
		ReadTime:    "5 min read",
		Date:        "2025-01-10",
		Likes:       342,
	},
	{
		ID:          "tip_002",
		Title:       "10 Skincare Secrets for Glowing Skin",
		Category:    "Skincare",
		Content:     "Double cleanse, use vitamin C serum, never skip sunscreen, stay hydrated, get enough sleep, eat antioxidant-rich foods, and establish a consistent routine.",
		Author:      "Emma Johnson",
		AuthorImage: "https://images.unsplash.com/photo-1559250404-b4ee645cf82a?w=400",
		Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=600",
		ReadTime:    "7 min read",
		Date:        "2025-01-08",
		Likes:       487,
	},
	{
		ID:          "tip_004",
		Title:       "Nail Care Routine for Healthy Nails",
		Category:    "Nails",
		Content:     "Keep nails trimmed and filed, moisturize cuticles daily, avoid harsh chemicals, take biotin supplements, and give your nails breaks between polish applications.",
		Author:      "Sophie Chen",
		AuthorImage: "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400",
		Image:       "https://images.unsplash.com/photo-1604654894610-df63bc536371?w=600",
		ReadTime:    "4 min read",
		Date:        "2025-01-06",
		Likes:       276,
	},
	{
		ID:          "tip_005",
		Title:       "Lash Extension Aftercare Guide",
		Category:    "Lashes",
		Content:     "Avoid water for 24 hours, use oil-free products, brush daily with a spoolie, sleep on your back, and avoid rubbing your eyes to maintain your lashes.",
		Author:      "Olivia Martinez",
		AuthorImage: "https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=400",
		Image:       "https://images.unsplash.com/photo-1588016207390-f836d1feb77e?w=600",
		ReadTime:    "5 min read",
		Date:        "2025-01-05",
		Likes:       412,
	},
}

var featuredPromotions = []models.FeaturedPromotion{
	{
		ID:          "promo_001",
		Title:       "New Year Hair Transformation",
		Description: "Get 20% off all hair coloring services this January",
		Image:       "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=800",
		Discount:    "20% OFF",
		ValidUntil:  "2025-01-31",
		Category:    "Hair",
	},
	{
		ID:          "promo_002",
		Title:       "Winter Skin Revival",
		Description: "Hydrafacial + LED Therapy combo for glowing winter skin",
		Image:       "https://images.unsplash.com/photo-1616394584738-fc6e612e71b9?w=800",
		Discount:    "30% OFF",
		ValidUntil:  "2025-02-14",
		Category:    "Skincare",
	},
	{
		ID:          "promo_003",
		Title:       "Bridal Package Special",
		Description: "Complete bridal beauty package including trial sessions",
		Image:       "https://images.unsplash.com/photo-1519741497674-611481863552?w=800",
		Discount:    "Save $200",
		ValidUntil:  "2025-03-31",
		Category:    "Makeup",
	},
	{
		ID:          "promo_005",
		Title:       "Relaxation Retreat",
		Description: "90-minute massage + aromatherapy session",
		Image:       "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=800",
		Discount:    "25% OFF",
		ValidUntil:  "2025-01-31",
		Category:    "Massage",
	},
}

var salonLocations = []models.SalonLocation{
	{
		ID:        "loc_001",
		Name:      "GoBeauty Downtown",
		Address:   "123 Market Street",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94102",
		Phone:     "+1 (415) 555-0100",
		Email:     "downtown@gobeauty.com",
		Amenities: []string{"WiFi", "Refreshments", "Parking", "Wheelchair Accessible", "Air Conditioned"},
		Image:     "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=600",
		Rating:    4.8,
		Reviews:   423,
		Latitude:  37.7849,
		Longitude: -122.4094,
	},
	{
		ID:        "loc_002",
		Name:      "GoBeauty Marina",
		Address:   "456 Chestnut Street",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94123",
		Phone:     "+1 (415) 555-0200",
		Email:     "marina@gobeauty.com",
		Amenities: []string{"WiFi", "Refreshments", "Valet Parking", "Luxury Lounge", "Premium Products"},
		Image:     "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=600",
		Rating:    4.9,
		Reviews:   387,
		Latitude:  37.8024,
		Longitude: -122.4378,
	},
	{
		ID:        "loc_003",
		Name:      "GoBeauty Mission",
		Address:   "789 Valencia Street",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94110",
		Phone:     "+1 (415) 555-0300",
		Email:     "mission@gobeauty.com",
		Amenities: []string{"WiFi", "Organic Products", "Street Parking", "Modern Interior", "Music Lounge"},
		Image:     "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=600",
		Rating:    4.7,
		Reviews:   312,
		Latitude:  37.7599,
		Longitude: -122.4210,
	},
}
