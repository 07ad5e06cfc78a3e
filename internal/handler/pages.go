package handler

import (
	"net/http"
	"time"

	"github.com/kulturboden/api/internal/content"
	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/service"
)

// Version is the build version shown in the admin panel footer, overridden
// at build time via -ldflags.
var Version = "dev"

// PagesHandler serves the read-only public content surface. Values cross
// this boundary in German display formatting ("15. Januar 2026", "20:00
// Uhr", "18,00 EUR"); the raw stored representation stays internal.
type PagesHandler struct {
	events       *service.EventService
	pages        *repository.Pages
	settings     *repository.Settings
	testimonials *repository.Testimonials
	gallery      *repository.Gallery
}

// NewPagesHandler creates the public pages handler.
func NewPagesHandler(
	events *service.EventService,
	pages *repository.Pages,
	settings *repository.Settings,
	testimonials *repository.Testimonials,
	gallery *repository.Gallery,
) *PagesHandler {
	return &PagesHandler{
		events:       events,
		pages:        pages,
		settings:     settings,
		testimonials: testimonials,
		gallery:      gallery,
	}
}

// pageEvent is a public event with display labels attached.
type pageEvent struct {
	model.PublicEvent
	DateLabel  string `json:"dateLabel"`
	TimeLabel  string `json:"timeLabel"`
	PriceLabel string `json:"priceLabel"`
}

func toPageEvent(e model.PublicEvent) pageEvent {
	return pageEvent{
		PublicEvent: e,
		DateLabel:   model.GermanDate(e.Date),
		TimeLabel:   model.GermanTime(e.Time),
		PriceLabel:  model.GermanPrice(e.Price),
	}
}

// pageView is a CMS page with its markdown body rendered to HTML.
type pageView struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	BodyHTML  string    `json:"bodyHtml"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Handle dispatches GET /pages?type=...&name=...&id=...
func (h *PagesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteMethodNotAllowed(w)
		return
	}

	ctx := r.Context()

	if name := r.URL.Query().Get("name"); name != "" {
		page, err := h.pages.GetByName(ctx, name)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		bodyHTML, err := content.RenderMarkdown(page.Body)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, pageView{
			ID: page.ID, Name: page.Name, Title: page.Title,
			BodyHTML: bodyHTML, UpdatedAt: page.UpdatedAt,
		})
		return
	}

	switch r.URL.Query().Get("type") {
	case "events":
		events, err := h.events.PublicEvents(ctx)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		views := make([]pageEvent, 0, len(events))
		for _, e := range events {
			views = append(views, toPageEvent(e))
		}
		WriteData(w, http.StatusOK, views)
	case "event":
		id, hasID, err := queryID(r)
		if !hasID || err != nil {
			WriteError(w, http.StatusBadRequest, "invalid id")
			return
		}
		event, err := h.events.PublicEvent(ctx, id)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, toPageEvent(event))
	case "gallery":
		images, err := h.gallery.List(ctx)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, images)
	case "settings":
		settings, err := h.settings.Get(ctx)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, settings)
	case "testimonials":
		testimonials, err := h.testimonials.List(ctx)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, testimonials)
	case "list":
		pages, err := h.pages.List(ctx)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		type pageSummary struct {
			Name  string `json:"name"`
			Title string `json:"title"`
		}
		summaries := make([]pageSummary, 0, len(pages))
		for _, p := range pages {
			summaries = append(summaries, pageSummary{Name: p.Name, Title: p.Title})
		}
		WriteData(w, http.StatusOK, summaries)
	case "version":
		WriteData(w, http.StatusOK, map[string]string{"version": Version})
	default:
		WriteError(w, http.StatusBadRequest, "unknown type")
	}
}
