package model

// SponsorCategory is the tier a sponsor appears under on the site.
type SponsorCategory string

const (
	SponsorHauptfoerderer      SponsorCategory = "hauptfoerderer"
	SponsorFoerderer           SponsorCategory = "foerderer"
	SponsorKooperationspartner SponsorCategory = "kooperationspartner"
)

// Sponsor is a supporter shown on the public site. Position is the sort key
// within a category; uniqueness within a category is by convention only.
type Sponsor struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Logo     string          `json:"logo,omitempty"`
	URL      string          `json:"url,omitempty"`
	Category SponsorCategory `json:"category"`
	Position int             `json:"position"`
	Notes    string          `json:"notes,omitempty"`
}

// PublicSponsor is the allow-list projection served without auth. Fields
// added to Sponsor later must not leak through this type.
type PublicSponsor struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Logo     string          `json:"logo,omitempty"`
	URL      string          `json:"url,omitempty"`
	Category SponsorCategory `json:"category"`
	Position int             `json:"position"`
}

// Public returns the allow-list projection of the sponsor.
func (s Sponsor) Public() PublicSponsor {
	return PublicSponsor{
		ID:       s.ID,
		Name:     s.Name,
		Logo:     s.Logo,
		URL:      s.URL,
		Category: s.Category,
		Position: s.Position,
	}
}
