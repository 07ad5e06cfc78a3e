package model

import "time"

// PageContent is CMS-style content for one named page. Body is markdown,
// rendered to HTML on the public read path.
type PageContent struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SiteSettings is the singleton site configuration, overwritten wholesale
// by admin PUT.
type SiteSettings struct {
	ID           int               `json:"id"`
	SiteName     string            `json:"siteName"`
	Tagline      string            `json:"tagline,omitempty"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Address      string            `json:"address,omitempty"`
	OpeningHours string            `json:"openingHours,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Testimonial is a visitor quote shown on the public site.
type Testimonial struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Year   int    `json:"year,omitempty"`
}

// GalleryImage is one picture in the public gallery.
type GalleryImage struct {
	ID       int    `json:"id"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	Position int    `json:"position"`
}
