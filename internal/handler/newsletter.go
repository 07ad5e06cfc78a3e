package handler

import (
	"errors"
	"net/http"

	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/service"
)

// NewsletterHandler serves the issue send trigger and the public
// unsubscribe page.
type NewsletterHandler struct {
	newsletter  *service.NewsletterService
	subscribers *repository.Subscribers
}

// NewNewsletterHandler creates the newsletter handler.
func NewNewsletterHandler(newsletter *service.NewsletterService, subscribers *repository.Subscribers) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter, subscribers: subscribers}
}

// SendIssue handles POST /send/newsletter-issue. The send is synchronous:
// the response arrives after the last batch, carrying the delivery report.
func (h *NewsletterHandler) SendIssue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IssueID   int    `json:"issueId"`
		TestEmail string `json:"testEmail"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IssueID <= 0 {
		WriteError(w, http.StatusBadRequest, "issueId is required")
		return
	}

	report, err := h.newsletter.SendIssue(r.Context(), req.IssueID, req.TestEmail)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, report)
}

const unsubscribePage = `<!DOCTYPE html>
<html lang="de">
<head><meta charset="utf-8"><title>Newsletter abbestellt</title></head>
<body style="font-family:sans-serif;max-width:36em;margin:4em auto">
<h1>Newsletter abbestellt</h1>
<p>Sie erhalten ab sofort keinen Newsletter mehr von uns.
Falls Sie es sich anders überlegen, können Sie sich jederzeit
wieder anmelden.</p>
</body>
</html>`

const unsubscribeUnknownPage = `<!DOCTYPE html>
<html lang="de">
<head><meta charset="utf-8"><title>Link ungültig</title></head>
<body style="font-family:sans-serif;max-width:36em;margin:4em auto">
<h1>Link ungültig</h1>
<p>Dieser Abmeldelink ist nicht (mehr) gültig.</p>
</body>
</html>`

// Unsubscribe handles GET /newsletter/unsubscribe?token=<t>. This is the
// one HTML endpoint: the link lands in a mail client, not the SPA.
// Idempotent; repeated visits of a valid link show the same confirmation.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err := h.subscribers.Unsubscribe(r.Context(), token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(unsubscribeUnknownPage))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(unsubscribeUnknownPage))
		return
	}

	_, _ = w.Write([]byte(unsubscribePage))
}
