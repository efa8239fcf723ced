// Package catalog holds the static reference dataset of the demo: the
// professionals, treatments and editorial content the screens browse. It is
// read-only; booking snapshots display fields out of it but never writes back.
package catalog

import "github.com/cryptoexpertssss/gobeauty-mobile/models"

// Catalog exposes lookups over the reference dataset.
type Catalog struct {
	professionals []models.Professional
	treatments    []models.Treatment
	reviews       []models.Review
	gallery       []models.GalleryItem
	tips          []models.BeautyTip
	promotions    []models.FeaturedPromotion
	locations     []models.SalonLocation
}

// New returns a catalog over the built-in demo dataset.
func New() *Catalog {
	return &Catalog{
		professionals: professionals,
		treatments:    treatments,
		reviews:       reviews,
		gallery:       galleryItems,
		tips:          beautyTips,
		promotions:    featuredPromotions,
		locations:     salonLocations,
	}
}

// Professionals returns all professionals in catalogue order.
func (c *Catalog) Professionals() []models.Professional {
	out := make([]models.Professional, len(c.professionals))
	copy(out, c.professionals)
	return out
}

// ProfessionalByID returns the professional with the given ID, or false.
func (c *Catalog) ProfessionalByID(id string) (models.Professional, bool) {
	for _, p := range c.professionals {
		if p.ID == id {
			return p, true
		}
	}
	return models.Professional{}, false
}

// FeaturedProfessionals returns the first n professionals, the slice the
// explore screen shows.
func (c *Catalog) FeaturedProfessionals(n int) []models.Professional {
	if n > len(c.professionals) {
		n = len(c.professionals)
	}
	out := make([]models.Professional, n)
	copy(out, c.professionals[:n])
	return out
}

// Treatments returns all treatments in catalogue order.
func (c *Catalog) Treatments() []models.Treatment {
	out := make([]models.Treatment, len(c.treatments))
	copy(out, c.treatments)
	return out
}

// TreatmentByID returns the treatment with the given ID, or false.
func (c *Catalog) TreatmentByID(id string) (models.Treatment, bool) {
	for _, t := range c.treatments {
		if t.ID == id {
			return t, true
		}
	}
	return models.Treatment{}, false
}

// TreatmentsByCategory returns treatments matching category; the pseudo
// category "All" returns everything.
func (c *Catalog) TreatmentsByCategory(category string) []models.Treatment {
	if category == "All" {
		return c.Treatments()
	}
	var out []models.Treatment
	for _, t := range c.treatments {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Categories lists the treatment filter tabs, "All" first.
func (c *Catalog) Categories() []string {
	return []string{"All", "Hair", "Skincare", "Nails", "Lashes", "Brows", "Body"}
}

// ReviewsByProfessional returns all reviews for one professional.
func (c *Catalog) ReviewsByProfessional(professionalID string) []models.Review {
	var out []models.Review
	for _, r := range c.reviews {
		if r.ProfessionalID == professionalID {
			out = append(out, r)
		}
	}
	return out
}

// Gallery returns all showcase items.
func (c *Catalog) Gallery() []models.GalleryItem {
	out := make([]models.GalleryItem, len(c.gallery))
	copy(out, c.gallery)
	return out
}

// Tips returns all editorial tips.
func (c *Catalog) Tips() []models.BeautyTip {
	out := make([]models.BeautyTip, len(c.tips))
	copy(out, c.tips)
	return out
}

// Promotions returns all featured promotions.
func (c *Catalog) Promotions() []models.FeaturedPromotion {
	out := make([]models.FeaturedPromotion, len(c.promotions))
	copy(out, c.promotions)
	return out
}

// Locations returns all salon locations.
func (c *Catalog) Locations() []models.SalonLocation {
	out := make([]models.SalonLocation, len(c.locations))
	copy(out, c.locations)
	return out
}
