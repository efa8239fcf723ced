package catalog

import "github.com/cryptoexpertssss/gobeauty-mobile/models"

var treatments = []models.Treatment{
	{
		ID:          "1",
		Name:        "Balayage Hair Color",
		Category:    "Hair",
		Description: "A freehand hair coloring technique that creates natural-looking, sun-kissed highlights with a seamless blend.",
		Duration:    "2-3 hours",
		PriceRange:  "$150-$300",
		Image:       "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400",
		Benefits: []string{
			"Natural-looking color",
			"Low maintenance",
			"Customizable results",
			"Less damage than traditional highlights",
		},
		Contraindications: []string{
			"Very damaged hair",
			"Recent chemical treatments",
			"Scalp sensitivity",
		},
		Popularity: 95,
	},
	{
		ID:          "2",
		Name:        "Hydrafacial",
		Category:    "Skincare",
		Description: "A medical-grade facial treatment that cleanses, extracts, and hydrates skin using patented technology.",
		Duration:    "45-60 minutes",
		PriceRange:  "$150-$250",
		Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=400",
		Benefits: []string{
			"Deep cleansing",
			"Improved skin texture",
			"Reduced fine lines",
			"Instant glow",
		},
		Contraindications: []string{
			"Active rashes or sunburn",
			"Recent laser treatments",
			"Open wounds",
		},
		Popularity: 92,
	},
	{
		ID:          "3",
		Name:        "Lash Extensions",
		Category:    "Lashes",
		Description: "Individual synthetic lashes applied to natural lashes for enhanced length and volume.",
		Duration:    "1.5-2 hours",
		PriceRange:  "$120-$200",
		Image:       "https://images.unsplash.com/photo-1583001984006-35f1f5b56d2d?w=400",
		Benefits: []string{
			"Fuller lashes",
			"No mascara needed",
			"Waterproof",
			"Long-lasting results",
		},
		Contraindications: []string{
			"Eye infections",
			"Allergies to adhesive",
			"Extremely sparse lashes",
		},
		Popularity: 88,
	},
	{
		ID:          "4",
		Name:        "Microblading",
		Category:    "Brows",
		Description: "Semi-permanent eyebrow tattooing technique that creates hair-like strokes for natural-looking brows.",
		Duration:    "2-3 hours",
		PriceRange:  "$400-$800",
		Image:       "https://images.unsplash.com/photo-1588778605356-e2f3c1800e10?w=400",
		Benefits: []string{
			"Natural-looking brows",
			"Long-lasting (1-3 years)",
			"Saves time daily",
			"Customizable shape",
		},
		Contraindications: []string{
			"Pregnancy",
			"Skin conditions",
			"Blood thinners",
			"Recent Botox",
		},
		Popularity: 85,
	},
	{
		ID:          "5",
		Name:        "Gel Manicure",
		Category:    "Nails",
		Description: "Long-lasting nail polish that is cured under UV or LED light for chip-free shine.",
		Duration:    "45-60 minutes",
		PriceRange:  "$30-$60",
		Image:       "https://images.unsplash.com/photo-1604654894610-df63bc536371?w=400",
		Benefits: []string{
			"Lasts 2-3 weeks",
			"Instant dry time",
			"High shine finish",
			"Wide color selection",
		},
		Contraindications: []string{
			"Nail infections",
			"Damaged nail beds",
			"Pregnancy (check with doctor)",
		},
		Popularity: 90,
	},
	{
		ID:          "6",
		Name:        "Brazilian Blowout",
		Category:    "Hair",
		Description: "Smoothing treatment that reduces frizz and creates sleek, shiny hair for months.",
		Duration:    "2-3 hours",
		PriceRange:  "$200-$400",
		Image:       "https://images.unsplash.com/photo-1522337660859-02fbefca4702?w=400",
		Benefits: []string{
			"Reduces frizz up to 95%",
			"Lasts 3-4 months",
			"Cuts styling time",
			"Works on all hair types",
		},
		Contraindications: []string{
			"Pregnant or nursing",
			"Damaged hair",
			"Recent color treatments",
		},
		Popularity: 82,
	},
	{
		ID:          "7",
		Name:        "Microneedling",
		Category:    "Skincare",
		Description: "Collagen induction therapy using fine needles to improve skin texture and appearance.",
		Duration:    "60-90 minutes",
		PriceRange:  "$200-$700",
		Image:       "https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=400",
		Benefits: []string{
			"Reduces scars",
			"Minimizes pores",
			"Improves texture",
			"Boosts collagen",
		},
		Contraindications: []string{
			"Active acne",
			"Blood disorders",
			"Skin infections",
			"Recent radiation",
		},
		Popularity: 78,
	},
	{
		ID:          "8",
		Name:        "Spray Tan",
		Category:    "Body",
		Description: "Airbrush tanning application for a natural-looking sun-kissed glow without UV exposure.",
		Duration:    "15-30 minutes",
		PriceRange:  "$35-$75",
		Image:       "https://images.unsplash.com/photo-1512290923902-8a9f81dc236c?w=400",
		Benefits: []string{
			"Safe alternative to sun",
			"Even coverage",
			"Lasts 5-7 days",
			"Customizable shade",
		},
		Contraindications: []string{
			"Skin sensitivity",
			"Recent exfoliation",
			"Open cuts or wounds",
		},
		Popularity: 75,
	},
}
