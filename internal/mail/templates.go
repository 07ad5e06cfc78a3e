package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/kulturboden/api/internal/model"
)

// Template rendering for the notification flows. Pure string templating:
// every decision about what to send was made by the caller.

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
<h2>Neue Kontaktanfrage ({{.FormType}})</h2>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>E-Mail:</strong> {{.Email}}<br>
{{if .Phone}}<strong>Telefon:</strong> {{.Phone}}<br>{{end}}
{{if .Subject}}<strong>Betreff:</strong> {{.Subject}}<br>{{end}}</p>
<p>{{.Message}}</p>
`))

var contactConfirmTmpl = template.Must(template.New("contactConfirm").Parse(`
<p>Hallo {{.Name}},</p>
<p>vielen Dank für Ihre Nachricht. Wir melden uns so bald wie möglich.</p>
<p>Ihr Kulturboden-Team</p>
`))

var reservationAdminTmpl = template.Must(template.New("reservationAdmin").Parse(`
<h2>Neue Kartenreservierung</h2>
<p><strong>Veranstaltung:</strong> {{.EventTitle}}{{if .EventDate}} am {{.EventDate}}{{end}}<br>
<strong>Name:</strong> {{.Name}}<br>
<strong>E-Mail:</strong> {{.Email}}<br>
{{if .Phone}}<strong>Telefon:</strong> {{.Phone}}<br>{{end}}
<strong>Karten:</strong> {{.Tickets}}</p>
{{if .Notes}}<p>{{.Notes}}</p>{{end}}
`))

var reservationConfirmTmpl = template.Must(template.New("reservationConfirm").Parse(`
<p>Hallo {{.Name}},</p>
<p>wir haben Ihre Reservierung über {{.Tickets}} Karte(n) für
<strong>{{.EventTitle}}</strong>{{if .EventDate}} am {{.EventDate}}{{end}} erhalten.
Die Karten liegen am Abend der Veranstaltung an der Kasse für Sie bereit.</p>
<p>Ihr Kulturboden-Team</p>
`))

var voucherAdminTmpl = template.Must(template.New("voucherAdmin").Parse(`
<h2>Neue Gutscheinbestellung</h2>
<p><strong>Art:</strong> {{if eq .VoucherType "amount"}}Wertgutschein über {{.AmountLabel}}{{else}}Veranstaltungsgutschein: {{.EventName}}{{end}}<br>
<strong>Käufer:</strong> {{.BuyerName}} ({{.BuyerEmail}})<br>
{{if .RecipientName}}<strong>Empfänger:</strong> {{.RecipientName}}<br>{{end}}
<strong>Zustellung:</strong> {{.Delivery}}</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}
`))

var voucherConfirmTmpl = template.Must(template.New("voucherConfirm").Parse(`
<p>Hallo {{.BuyerName}},</p>
<p>vielen Dank für Ihre Gutscheinbestellung. Wir melden uns mit den
Zahlungsdetails bei Ihnen.</p>
<p>Ihr Kulturboden-Team</p>
`))

var membershipAdminTmpl = template.Must(template.New("membershipAdmin").Parse(`
<h2>Neuer Mitgliedsantrag</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}<br>
<strong>E-Mail:</strong> {{.Email}}<br>
{{if .Phone}}<strong>Telefon:</strong> {{.Phone}}<br>{{end}}
<strong>Beitragsart:</strong> {{.MembershipType}}</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}
`))

var membershipConfirmTmpl = template.Must(template.New("membershipConfirm").Parse(`
<p>Hallo {{.FirstName}} {{.LastName}},</p>
<p>vielen Dank für Ihren Mitgliedsantrag. Wir prüfen ihn und melden uns in
den nächsten Tagen bei Ihnen.</p>
<p>Ihr Kulturboden-Team</p>
`))

var newsletterIssueTmpl = template.Must(template.New("newsletterIssue").Parse(`
<h1>{{.Title}}</h1>
{{.IntroHTML}}
{{range .Events}}
<h3>{{.Title}}{{if .Artist}} – {{.Artist}}{{end}}</h3>
<p>{{.DateLabel}}{{if .TimeLabel}}, {{.TimeLabel}}{{end}}{{if .PriceLabel}} · {{.PriceLabel}}{{end}}</p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{end}}
<hr>
<p style="font-size:12px;color:#888">
<a href="{{.UnsubscribeURL}}">Newsletter abbestellen</a></p>
`))

func render(t *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and parse at init; execution only fails on
		// writer errors, which bytes.Buffer never produces.
		return ""
	}
	return buf.String()
}

// ContactAdminBody renders the admin notification for a contact request.
func ContactAdminBody(c model.Contact) string {
	return render(contactAdminTmpl, c)
}

// ContactConfirmBody renders the submitter confirmation for a contact request.
func ContactConfirmBody(c model.Contact) string {
	return render(contactConfirmTmpl, c)
}

type reservationBody struct {
	model.Reservation
	EventDate string
}

// ReservationAdminBody renders the admin notification for a reservation.
func ReservationAdminBody(r model.Reservation, eventDate string) string {
	return render(reservationAdminTmpl, reservationBody{Reservation: r, EventDate: eventDate})
}

// ReservationConfirmBody renders the customer confirmation for a reservation.
func ReservationConfirmBody(r model.Reservation, eventDate string) string {
	return render(reservationConfirmTmpl, reservationBody{Reservation: r, EventDate: eventDate})
}

type voucherBody struct {
	model.VoucherOrder
	AmountLabel string
}

// VoucherAdminBody renders the admin notification for a voucher order.
func VoucherAdminBody(v model.VoucherOrder) string {
	return render(voucherAdminTmpl, voucherBody{VoucherOrder: v, AmountLabel: model.GermanPrice(v.Amount)})
}

// VoucherConfirmBody renders the buyer confirmation for a voucher order.
func VoucherConfirmBody(v model.VoucherOrder) string {
	return render(voucherConfirmTmpl, voucherBody{VoucherOrder: v, AmountLabel: model.GermanPrice(v.Amount)})
}

// MembershipAdminBody renders the admin notification for a membership
// application.
func MembershipAdminBody(m model.MembershipApplication) string {
	return render(membershipAdminTmpl, m)
}

// MembershipConfirmBody renders the applicant confirmation.
func MembershipConfirmBody(m model.MembershipApplication) string {
	return render(membershipConfirmTmpl, m)
}

// IssueEvent is one featured event in a newsletter issue body.
type IssueEvent struct {
	Title       string
	Artist      string
	DateLabel   string
	TimeLabel   string
	PriceLabel  string
	Description string
}

// IssueBody is the data consumed by the newsletter issue template.
type IssueBody struct {
	Title          string
	IntroHTML      template.HTML
	Events         []IssueEvent
	UnsubscribeURL string
}

// NewsletterIssueBody renders one edition of the newsletter.
func NewsletterIssueBody(data IssueBody) string {
	return render(newsletterIssueTmpl, data)
}

// UnsubscribeURL builds the per-subscriber unsubscribe link.
func UnsubscribeURL(baseURL, token string) string {
	return fmt.Sprintf("%s/newsletter/unsubscribe?token=%s", baseURL, token)
}
