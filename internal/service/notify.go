package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/kulturboden/api/internal/mail"
	"github.com/kulturboden/api/internal/model"
)

// Notifier fans out the transactional mails of the public forms: one
// notification to the house address, one confirmation to the submitter. The
// record is always persisted before notification, so a mail failure never
// loses the submission; it only turns the response into an error.
type Notifier struct {
	sender    mail.Sender
	adminAddr string
	siteName  string
}

// NewNotifier creates the notifier. adminAddr receives the house copies.
func NewNotifier(sender mail.Sender, adminAddr, siteName string) *Notifier {
	return &Notifier{sender: sender, adminAddr: adminAddr, siteName: siteName}
}

// fanOut sends the admin and confirmation mails in parallel and joins their
// errors. Message ids are logged, not returned; nobody downstream needs them.
func (n *Notifier) fanOut(ctx context.Context, kind string, admin, confirm mail.Message) error {
	msgs := [2]mail.Message{admin, confirm}
	errs := make([]error, len(msgs))

	var wg sync.WaitGroup
	for i, msg := range msgs {
		wg.Add(1)
		go func(i int, msg mail.Message) {
			defer wg.Done()
			id, err := n.sender.Send(ctx, msg)
			if err != nil {
				errs[i] = err
				return
			}
			slog.Info("notification sent",
				slog.String("kind", kind),
				slog.String("to", msg.To),
				slog.String("message_id", id),
			)
		}(i, msg)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// ContactSubmitted notifies about a new contact request.
func (n *Notifier) ContactSubmitted(ctx context.Context, c model.Contact) error {
	return n.fanOut(ctx, "contact",
		mail.Message{
			To:      n.adminAddr,
			Subject: "Neue Kontaktanfrage: " + c.Name,
			HTML:    mail.ContactAdminBody(c),
			ReplyTo: c.Email,
		},
		mail.Message{
			To:      c.Email,
			Subject: "Ihre Nachricht an den " + n.siteName,
			HTML:    mail.ContactConfirmBody(c),
		},
	)
}

// ReservationSubmitted notifies about a new ticket reservation. eventDate is
// the German-formatted date label, empty when unknown.
func (n *Notifier) ReservationSubmitted(ctx context.Context, r model.Reservation, eventDate string) error {
	return n.fanOut(ctx, "reservation",
		mail.Message{
			To:      n.adminAddr,
			Subject: "Neue Reservierung: " + r.EventTitle,
			HTML:    mail.ReservationAdminBody(r, eventDate),
			ReplyTo: r.Email,
		},
		mail.Message{
			To:      r.Email,
			Subject: "Ihre Reservierung: " + r.EventTitle,
			HTML:    mail.ReservationConfirmBody(r, eventDate),
		},
	)
}

// VoucherOrdered notifies about a new voucher order.
func (n *Notifier) VoucherOrdered(ctx context.Context, v model.VoucherOrder) error {
	return n.fanOut(ctx, "voucher",
		mail.Message{
			To:      n.adminAddr,
			Subject: "Neue Gutscheinbestellung von " + v.BuyerName,
			HTML:    mail.VoucherAdminBody(v),
			ReplyTo: v.BuyerEmail,
		},
		mail.Message{
			To:      v.BuyerEmail,
			Subject: "Ihre Gutscheinbestellung beim " + n.siteName,
			HTML:    mail.VoucherConfirmBody(v),
		},
	)
}

// MembershipApplied notifies about a new membership application.
func (n *Notifier) MembershipApplied(ctx context.Context, m model.MembershipApplication) error {
	return n.fanOut(ctx, "membership",
		mail.Message{
			To:      n.adminAddr,
			Subject: "Neuer Mitgliedsantrag: " + m.FirstName + " " + m.LastName,
			HTML:    mail.MembershipAdminBody(m),
			ReplyTo: m.Email,
		},
		mail.Message{
			To:      m.Email,
			Subject: "Ihr Mitgliedsantrag beim " + n.siteName,
			HTML:    mail.MembershipConfirmBody(m),
		},
	)
}
