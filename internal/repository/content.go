package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Pages is the CMS page content repository.
type Pages struct {
	coll *Collection[model.PageContent]
}

// NewPages creates the page content repository.
func NewPages(s store.Store) *Pages {
	coll := NewCollection(s, "pages",
		func(p *model.PageContent) *int { return &p.ID },
	)
	coll.WithRecompute(func(p *model.PageContent) {
		p.UpdatedAt = time.Now().UTC()
	})
	return &Pages{coll: coll}
}

// List returns all pages.
func (r *Pages) List(ctx context.Context) ([]model.PageContent, error) {
	return r.coll.Load(ctx)
}

// GetByName returns the page with the given name (case-insensitive).
func (r *Pages) GetByName(ctx context.Context, name string) (model.PageContent, error) {
	pages, err := r.coll.Load(ctx)
	if err != nil {
		return model.PageContent{}, err
	}
	for _, p := range pages {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return model.PageContent{}, ErrNotFound
}

// Upsert overwrites the page with the same name wholesale, or creates it.
func (r *Pages) Upsert(ctx context.Context, page model.PageContent) (model.PageContent, error) {
	existing, err := r.GetByName(ctx, page.Name)
	if err == nil {
		return r.coll.Replace(ctx, existing.ID, page)
	}
	if !errors.Is(err, ErrNotFound) {
		return model.PageContent{}, err
	}
	return r.coll.Add(ctx, page)
}

// Delete removes the page and returns the removed record.
func (r *Pages) Delete(ctx context.Context, id int) (model.PageContent, error) {
	return r.coll.Delete(ctx, id)
}

// Settings is the singleton site settings repository. The collection holds
// at most one record with id 1.
type Settings struct {
	coll *Collection[model.SiteSettings]
}

// NewSettings creates the site settings repository.
func NewSettings(s store.Store) *Settings {
	coll := NewCollection(s, "settings",
		func(st *model.SiteSettings) *int { return &st.ID },
	)
	return &Settings{coll: coll}
}

// Get returns the stored settings, or defaults when never written.
func (r *Settings) Get(ctx context.Context) (model.SiteSettings, error) {
	records, err := r.coll.Load(ctx)
	if err != nil {
		return model.SiteSettings{}, err
	}
	if len(records) == 0 {
		return model.SiteSettings{ID: 1, SiteName: "Kulturboden"}, nil
	}
	return records[0], nil
}

// Put overwrites the settings wholesale.
func (r *Settings) Put(ctx context.Context, settings model.SiteSettings) (model.SiteSettings, error) {
	settings.ID = 1
	settings.UpdatedAt = time.Now().UTC()
	if err := r.coll.Save(ctx, []model.SiteSettings{settings}); err != nil {
		return model.SiteSettings{}, err
	}
	return settings, nil
}

// Testimonials is the visitor testimonial repository.
type Testimonials struct {
	coll *Collection[model.Testimonial]
}

// NewTestimonials creates the testimonial repository.
func NewTestimonials(s store.Store) *Testimonials {
	coll := NewCollection(s, "testimonials",
		func(t *model.Testimonial) *int { return &t.ID },
	)
	return &Testimonials{coll: coll}
}

// List returns all testimonials.
func (r *Testimonials) List(ctx context.Context) ([]model.Testimonial, error) {
	return r.coll.Load(ctx)
}

// Get returns the testimonial with the given id.
func (r *Testimonials) Get(ctx context.Context, id int) (model.Testimonial, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new testimonial.
func (r *Testimonials) Create(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	return r.coll.Add(ctx, t)
}

// Update shallow-merges the patch over the stored testimonial.
func (r *Testimonials) Update(ctx context.Context, id int, patch json.RawMessage) (model.Testimonial, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the testimonial and returns the removed record.
func (r *Testimonials) Delete(ctx context.Context, id int) (model.Testimonial, error) {
	return r.coll.Delete(ctx, id)
}

// Gallery is the public gallery image repository.
type Gallery struct {
	coll *Collection[model.GalleryImage]
}

// NewGallery creates the gallery repository.
func NewGallery(s store.Store) *Gallery {
	coll := NewCollection(s, "gallery",
		func(g *model.GalleryImage) *int { return &g.ID },
	)
	return &Gallery{coll: coll}
}

// List returns gallery images ordered by position.
func (r *Gallery) List(ctx context.Context) ([]model.GalleryImage, error) {
	images, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Position < images[j].Position
	})
	return images, nil
}

// Get returns the image with the given id.
func (r *Gallery) Get(ctx context.Context, id int) (model.GalleryImage, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new gallery image.
func (r *Gallery) Create(ctx context.Context, image model.GalleryImage) (model.GalleryImage, error) {
	return r.coll.Add(ctx, image)
}

// Update shallow-merges the patch over the stored image.
func (r *Gallery) Update(ctx context.Context, id int, patch json.RawMessage) (model.GalleryImage, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the image and returns the removed record.
func (r *Gallery) Delete(ctx context.Context, id int) (model.GalleryImage, error) {
	return r.coll.Delete(ctx, id)
}
