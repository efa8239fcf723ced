package models

// GeoPoint is a latitude/longitude pair with a display address.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Professional represents a beauty professional in the reference catalogue.
type Professional struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Image     string   `json:"image"`
	Distance  string   `json:"distance"`
	Price     string   `json:"price"` // Price tier, e.g. "$$"
	Location  GeoPoint `json:"location"`
	Services  []string `json:"services"`
	Bio       string   `json:"bio"`
}

// OffersService reports whether the professional lists the named service.
func (p Professional) OffersService(service string) bool {
	for _, s := range p.Services {
		if s == service {
			return true
		}
	}
	return false
}

// Treatment represents a treatment entry in the reference catalogue.
type Treatment struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Duration          string   `json:"duration"`
	PriceRange        string   `json:"priceRange"`
	Image             string   `json:"image"`
	Benefits          []string `json:"benefits"`
	Contraindications []string `json:"contraindications"`
	Popularity        int      `json:"popularity"` // 0-100
}

// Review is a client review of a professional.
type Review struct {
	ID             string  `json:"id"`
	ProfessionalID string  `json:"professionalId"`
	ClientName     string  `json:"clientName"`
	ClientImage    string  `json:"clientImage"`
	Rating         float64 `json:"rating"` // Expected value between 1 and 5.
	Comment        string  `json:"comment"`
	Service        string  `json:"service"`
	Date           string  `json:"date"`
	Helpful        int     `json:"helpful"`
}

// GalleryItem is a showcase photo of a professional's work.
type GalleryItem struct {
	ID               string `json:"id"`
	ProfessionalID   string `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
	Service          string `json:"service"`
	Image            string `json:"image"`
	Likes            int    `json:"likes"`
	Description      string `json:"description"`
	Category         string `json:"category"`
}

// BeautyTip is an editorial content entry.
type BeautyTip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	AuthorImage string `json:"authorImage"`
	Image       string `json:"image"`
	ReadTime    string `json:"readTime"`
	Date        string `json:"date"`
	Likes       int    `json:"likes"`
}

// FeaturedPromotion is a promotional banner entry.
type FeaturedPromotion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Discount    string `json:"discount"`
	ValidUntil  string `json:"validUntil"`
	Category    string `json:"category"`
}

// SalonLocation is a physical salon in the reference catalogue.
type SalonLocation struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zipCode"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}
