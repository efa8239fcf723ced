package catalog

import "testing"

func TestProfessionalLookups(t *testing.T) {
	c := New()

	all := c.Professionals()
	if len(all) == 0 {
		t.Fatal("empty professional catalog")
	}

	pro, ok := c.ProfessionalByID("1")
	if !ok {
		t.Fatal("professional 1 not found")
	}
	if pro.Name != "Isabella Santos" {
		t.Errorf("name = %q", pro.Name)
	}
	if !pro.OffersService("Balayage") {
		t.Errorf("expected Balayage in services %v", pro.Services)
	}

	if _, ok := c.ProfessionalByID("nope"); ok {
		t.Error("lookup of unknown id succeeded")
	}

	featured := c.FeaturedProfessionals(4)
	if len(featured) != 4 {
		t.Errorf("featured len = %d, want 4", len(featured))
	}
	if got := c.FeaturedProfessionals(100); len(got) != len(all) {
		t.Errorf("oversized slice len = %d, want %d", len(got), len(all))
	}
}

func TestTreatmentLookups(t *testing.T) {
	c := New()

	tr, ok := c.TreatmentByID("1")
	if !ok || tr.Name != "Balayage Hair Color" {
		t.Fatalf("treatment 1 = %+v, ok = %v", tr, ok)
	}

	hair := c.TreatmentsByCategory("Hair")
	for _, h := range hair {
		if h.Category != "Hair" {
			t.Errorf("category filter leaked %q", h.Category)
		}
	}
	if len(hair) == 0 {
		t.Error("no hair treatments")
	}
	if got := c.TreatmentsByCategory("All"); len(got) != len(c.Treatments()) {
		t.Error(`"All" does not return every treatment`)
	}
	if cats := c.Categories(); len(cats) == 0 || cats[0] != "All" {
		t.Errorf("categories = %v", cats)
	}
}

func TestReviewsByProfessional(t *testing.T) {
	c := New()
	got := c.ReviewsByProfessional("1")
	if len(got) == 0 {
		t.Fatal("no reviews for professional 1")
	}
	for _, r := range got {
		if r.ProfessionalID != "1" {
			t.Errorf("review %s belongs to %s", r.ID, r.ProfessionalID)
		}
	}
}

func TestContentCollections(t *testing.T) {
	c := New()
	if len(c.Gallery()) == 0 {
		t.Error("empty gallery")
	}
	if len(c.Tips()) == 0 {
		t.Error("empty tips")
	}
	if len(c.Promotions()) == 0 {
		t.Error("empty promotions")
	}
	if len(c.Locations()) == 0 {
		t.Error("empty locations")
	}
}
