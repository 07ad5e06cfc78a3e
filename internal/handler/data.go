package handler

import (
	"net/http"

	"github.com/kulturboden/api/internal/middleware"
	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
)

// DataHandler serves the generic back-office resource surface: one path,
// discriminated by the type query parameter, with method-based CRUD. Two
// types are public by design: the sponsors-public projection read and the
// newsletter-subscribe create. Everything else requires a session token.
type DataHandler struct {
	validator middleware.SessionValidator

	contacts     *repository.Contacts
	vouchers     *repository.Vouchers
	memberships  *repository.Memberships
	sponsors     *repository.Sponsors
	subscribers  *repository.Subscribers
	issues       *repository.Issues
	pages        *repository.Pages
	settings     *repository.Settings
	testimonials *repository.Testimonials
	gallery      *repository.Gallery
}

// NewDataHandler creates the generic data handler.
func NewDataHandler(
	validator middleware.SessionValidator,
	contacts *repository.Contacts,
	vouchers *repository.Vouchers,
	memberships *repository.Memberships,
	sponsors *repository.Sponsors,
	subscribers *repository.Subscribers,
	issues *repository.Issues,
	pages *repository.Pages,
	settings *repository.Settings,
	testimonials *repository.Testimonials,
	gallery *repository.Gallery,
) *DataHandler {
	return &DataHandler{
		validator:    validator,
		contacts:     contacts,
		vouchers:     vouchers,
		memberships:  memberships,
		sponsors:     sponsors,
		subscribers:  subscribers,
		issues:       issues,
		pages:        pages,
		settings:     settings,
		testimonials: testimonials,
		gallery:      gallery,
	}
}

// Handle dispatches /data?type=<resource>[&id=&status=].
func (h *DataHandler) Handle(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("type")
	if resource == "" {
		WriteError(w, http.StatusBadRequest, "type is required")
		return
	}

	// Public exceptions; everything else is gated.
	if !h.isPublic(r.Method, resource) {
		if h.validator.Validate(r.Header.Get(middleware.SessionHeader)) == nil {
			WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, resource)
	case http.MethodPost:
		h.create(w, r, resource)
	case http.MethodPut:
		h.update(w, r, resource)
	case http.MethodDelete:
		h.delete(w, r, resource)
	default:
		WriteMethodNotAllowed(w)
	}
}

func (h *DataHandler) isPublic(method, resource string) bool {
	switch {
	case method == http.MethodGet && resource == "sponsors-public":
		return true
	case method == http.MethodPost && resource == "newsletter-subscribe":
		return true
	}
	return false
}

func (h *DataHandler) get(w http.ResponseWriter, r *http.Request, resource string) {
	ctx := r.Context()

	id, hasID, err := queryID(r)
	if hasID && err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	// write wraps the repeated single-vs-list response shaping.
	write := func(data interface{}, err error) {
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, data)
	}

	status := r.URL.Query().Get("status")

	switch resource {
	case "sponsors-public":
		write(h.sponsors.ListPublic(ctx))
	case "sponsors":
		if hasID {
			write(h.sponsors.Get(ctx, id))
			return
		}
		write(h.sponsors.List(ctx))
	case "contacts":
		if hasID {
			write(h.contacts.Get(ctx, id))
			return
		}
		var filter *model.ContactStatus
		if status != "" {
			s := model.ContactStatus(status)
			filter = &s
		}
		write(h.contacts.List(ctx, filter))
	case "vouchers":
		if hasID {
			write(h.vouchers.Get(ctx, id))
			return
		}
		var filter *model.VoucherStatus
		if status != "" {
			s := model.VoucherStatus(status)
			filter = &s
		}
		write(h.vouchers.List(ctx, filter))
	case "memberships":
		if hasID {
			write(h.memberships.Get(ctx, id))
			return
		}
		var filter *model.MembershipStatus
		if status != "" {
			s := model.MembershipStatus(status)
			filter = &s
		}
		write(h.memberships.List(ctx, filter))
	case "newsletter-subscribers":
		if hasID {
			write(h.subscribers.Get(ctx, id))
			return
		}
		write(h.subscribers.List(ctx))
	case "newsletter-issues":
		if hasID {
			write(h.issues.Get(ctx, id))
			return
		}
		write(h.issues.List(ctx))
	case "pages":
		if name := r.URL.Query().Get("name"); name != "" {
			write(h.pages.GetByName(ctx, name))
			return
		}
		write(h.pages.List(ctx))
	case "settings":
		write(h.settings.Get(ctx))
	case "testimonials":
		if hasID {
			write(h.testimonials.Get(ctx, id))
			return
		}
		write(h.testimonials.List(ctx))
	case "gallery":
		if hasID {
			write(h.gallery.Get(ctx, id))
			return
		}
		write(h.gallery.List(ctx))
	default:
		WriteError(w, http.StatusBadRequest, "unknown type")
	}
}

func (h *DataHandler) create(w http.ResponseWriter, r *http.Request, resource string) {
	ctx := r.Context()

	write := func(data interface{}, err error) {
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, data)
	}

	switch resource {
	case "newsletter-subscribe":
		var req struct {
			Email  string `json:"email"`
			Name   string `json:"name"`
			Source string `json:"source"`
		}
		if err := DecodeJSON(r, &req); err != nil || req.Email == "" {
			WriteError(w, http.StatusBadRequest, "email is required")
			return
		}
		// Created-vs-reactivated never leaks to the public caller.
		_, _, err := h.subscribers.Subscribe(ctx, req.Email, req.Name, req.Source)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, map[string]bool{"subscribed": true})
	case "sponsors":
		var sponsor model.Sponsor
		if err := DecodeJSON(r, &sponsor); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if sponsor.Name == "" {
			WriteError(w, http.StatusBadRequest, "name is required")
			return
		}
		write(h.sponsors.Create(ctx, sponsor))
	case "newsletter-subscribers":
		var req struct {
			Email  string `json:"email"`
			Name   string `json:"name"`
			Source string `json:"source"`
		}
		if err := DecodeJSON(r, &req); err != nil || req.Email == "" {
			WriteError(w, http.StatusBadRequest, "email is required")
			return
		}
		sub, _, err := h.subscribers.Subscribe(ctx, req.Email, req.Name, req.Source)
		write(sub, err)
	case "newsletter-issues":
		var issue model.NewsletterIssue
		if err := DecodeJSON(r, &issue); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if issue.Title == "" {
			WriteError(w, http.StatusBadRequest, "title is required")
			return
		}
		write(h.issues.Create(ctx, issue))
	case "pages":
		var page model.PageContent
		if err := DecodeJSON(r, &page); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if page.Name == "" {
			WriteError(w, http.StatusBadRequest, "name is required")
			return
		}
		write(h.pages.Upsert(ctx, page))
	case "testimonials":
		var t model.Testimonial
		if err := DecodeJSON(r, &t); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if t.Text == "" {
			WriteError(w, http.StatusBadRequest, "text is required")
			return
		}
		write(h.testimonials.Create(ctx, t))
	case "gallery":
		var img model.GalleryImage
		if err := DecodeJSON(r, &img); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if img.URL == "" {
			WriteError(w, http.StatusBadRequest, "url is required")
			return
		}
		write(h.gallery.Create(ctx, img))
	case "contacts":
		var c model.Contact
		if err := DecodeJSON(r, &c); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if c.Name == "" || c.Email == "" || c.Message == "" {
			WriteError(w, http.StatusBadRequest, "name, email and message are required")
			return
		}
		write(h.contacts.Create(ctx, c))
	default:
		WriteError(w, http.StatusBadRequest, "unknown type")
	}
}

func (h *DataHandler) update(w http.ResponseWriter, r *http.Request, resource string) {
	ctx := r.Context()

	// Settings is the singleton exception: a wholesale PUT without an id.
	if resource == "settings" {
		var settings model.SiteSettings
		if err := DecodeJSON(r, &settings); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		stored, err := h.settings.Put(ctx, settings)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, stored)
		return
	}

	id, hasID, err := queryID(r)
	if !hasID || err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	patch, err := readPatch(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	write := func(data interface{}, err error) {
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, data)
	}

	switch resource {
	case "contacts":
		write(h.contacts.Update(ctx, id, patch))
	case "vouchers":
		write(h.vouchers.Update(ctx, id, patch))
	case "memberships":
		write(h.memberships.Update(ctx, id, patch))
	case "sponsors":
		write(h.sponsors.Update(ctx, id, patch))
	case "newsletter-subscribers":
		write(h.subscribers.Update(ctx, id, patch))
	case "newsletter-issues":
		write(h.issues.Update(ctx, id, patch))
	case "testimonials":
		write(h.testimonials.Update(ctx, id, patch))
	case "gallery":
		write(h.gallery.Update(ctx, id, patch))
	default:
		WriteError(w, http.StatusBadRequest, "unknown type")
	}
}

func (h *DataHandler) delete(w http.ResponseWriter, r *http.Request, resource string) {
	ctx := r.Context()

	id, hasID, err := queryID(r)
	if !hasID || err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	write := func(data interface{}, err error) {
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, data)
	}

	switch resource {
	case "contacts":
		write(h.contacts.Delete(ctx, id))
	case "vouchers":
		write(h.vouchers.Delete(ctx, id))
	case "memberships":
		write(h.memberships.Delete(ctx, id))
	case "sponsors":
		write(h.sponsors.Delete(ctx, id))
	case "newsletter-subscribers":
		write(h.subscribers.Delete(ctx, id))
	case "newsletter-issues":
		write(h.issues.Delete(ctx, id))
	case "pages":
		write(h.pages.Delete(ctx, id))
	case "testimonials":
		write(h.testimonials.Delete(ctx, id))
	case "gallery":
		write(h.gallery.Delete(ctx, id))
	default:
		WriteError(w, http.StatusBadRequest, "unknown type")
	}
}
