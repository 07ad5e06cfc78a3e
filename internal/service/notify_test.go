package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulturboden/api/internal/model"
)

func TestContactSubmitted_FansOutBothMails(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: map[string]bool{}}
	n := NewNotifier(sender, "haus@example.com", "Kulturboden")

	err := n.ContactSubmitted(context.Background(), model.Contact{
		Name: "Erika Muster", Email: "erika@example.com",
		Message: "Gibt es noch Karten?", FormType: model.ContactFormGeneral,
	})
	require.NoError(t, err)

	msgs := sender.messages()
	require.Len(t, msgs, 2)

	byTo := map[string]string{}
	for _, m := range msgs {
		byTo[m.To] = m.HTML
	}
	assert.Contains(t, byTo["haus@example.com"], "Erika Muster")
	assert.Contains(t, byTo["erika@example.com"], "vielen Dank")
}

func TestContactSubmitted_FailedMailIsAnError(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: map[string]bool{"erika@example.com": true}}
	n := NewNotifier(sender, "haus@example.com", "Kulturboden")

	err := n.ContactSubmitted(context.Background(), model.Contact{
		Name: "Erika Muster", Email: "erika@example.com", Message: "Hallo",
	})
	require.Error(t, err)

	// The admin copy still went out.
	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "haus@example.com", msgs[0].To)
}

func TestReservationSubmitted(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: map[string]bool{}}
	n := NewNotifier(sender, "haus@example.com", "Kulturboden")

	err := n.ReservationSubmitted(context.Background(), model.Reservation{
		Name: "Max", Email: "max@example.com", Tickets: 3,
		EventTitle: "Jazzabend",
	}, "7. März 2026")
	require.NoError(t, err)

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.Contains(t, m.HTML, "Jazzabend")
		assert.Contains(t, m.HTML, "7. März 2026")
	}
}

func TestVoucherOrdered(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: map[string]bool{}}
	n := NewNotifier(sender, "haus@example.com", "Kulturboden")

	err := n.VoucherOrdered(context.Background(), model.VoucherOrder{
		VoucherType: model.VoucherAmount, Amount: 50,
		BuyerName: "Moritz", BuyerEmail: "moritz@example.com",
		Delivery: model.VoucherDeliveryEmail,
	})
	require.NoError(t, err)

	msgs := sender.messages()
	require.Len(t, msgs, 2)

	byTo := map[string]string{}
	for _, m := range msgs {
		byTo[m.To] = m.HTML
	}
	assert.Contains(t, byTo["haus@example.com"], "50,00 EUR")
	assert.Contains(t, byTo["moritz@example.com"], "Gutscheinbestellung")
}

func TestMembershipApplied(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failFor: map[string]bool{}}
	n := NewNotifier(sender, "haus@example.com", "Kulturboden")

	err := n.MembershipApplied(context.Background(), model.MembershipApplication{
		FirstName: "Hanna", LastName: "Berg", Email: "hanna@example.com",
		MembershipType: "Einzelmitgliedschaft",
	})
	require.NoError(t, err)

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.Contains(t, m.HTML, "Hanna")
	}
}
