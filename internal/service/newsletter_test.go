package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulturboden/api/internal/mail"
	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/store"
)

// fakeSender records messages and fails addresses listed in failFor.
type fakeSender struct {
	mu      sync.Mutex
	sent    []mail.Message
	failFor map[string]bool
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[msg.To] {
		return "", errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, msg)
	return "msg-id", nil
}

func (f *fakeSender) messages() []mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mail.Message(nil), f.sent...)
}

type newsletterFixture struct {
	svc         *NewsletterService
	issues      *repository.Issues
	subscribers *repository.Subscribers
	events      *repository.Events
	sender      *fakeSender
}

func newNewsletterFixture(t *testing.T) *newsletterFixture {
	t.Helper()
	s := store.NewMemStore()
	issues := repository.NewIssues(s)
	subscribers := repository.NewSubscribers(s)
	events := repository.NewEvents(s)
	sender := &fakeSender{failFor: map[string]bool{}}
	svc := NewNewsletterService(issues, subscribers, events, sender,
		"https://kulturboden.example", "Kulturboden")
	return &newsletterFixture{svc: svc, issues: issues, subscribers: subscribers, events: events, sender: sender}
}

func (f *newsletterFixture) subscribe(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, _, err := f.subscribers.Subscribe(context.Background(),
			fmt.Sprintf("abonnent%d@example.com", i), "", "test")
		require.NoError(t, err)
	}
}

func TestSendIssue(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)
	ctx := context.Background()
	f.subscribe(t, 23) // spans three batches

	issue, err := f.issues.Create(ctx, model.NewsletterIssue{
		Title:     "Frühjahrsprogramm",
		IntroText: "Liebe Freunde des Hauses, **es geht wieder los**.",
	})
	require.NoError(t, err)

	report, err := f.svc.SendIssue(ctx, issue.ID, "")
	require.NoError(t, err)

	assert.Equal(t, 23, report.Recipients)
	assert.Equal(t, 23, report.Sent)
	assert.Zero(t, report.Failed)
	assert.False(t, report.Test)

	msgs := f.sender.messages()
	require.Len(t, msgs, 23)
	assert.Equal(t, "Kulturboden Newsletter: Frühjahrsprogramm", msgs[0].Subject)
	assert.Contains(t, msgs[0].HTML, "<strong>es geht wieder los</strong>")

	sent, err := f.issues.Get(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IssueSent, sent.Status)
	require.NotNil(t, sent.SentAt)
}

func TestSendIssue_UnsubscribeLinksArePerSubscriber(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)
	ctx := context.Background()
	f.subscribe(t, 2)

	issue, err := f.issues.Create(ctx, model.NewsletterIssue{Title: "Test"})
	require.NoError(t, err)

	_, err = f.svc.SendIssue(ctx, issue.ID, "")
	require.NoError(t, err)

	subs, err := f.subscribers.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	tokens := map[string]string{}
	for _, sub := range subs {
		tokens[sub.Email] = sub.UnsubscribeToken
	}
	for _, msg := range f.sender.messages() {
		assert.Contains(t, msg.HTML,
			"https://kulturboden.example/newsletter/unsubscribe?token="+tokens[msg.To])
	}
}

func TestSendIssue_ToleratesIndividualFailures(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)
	ctx := context.Background()
	f.subscribe(t, 5)
	f.sender.failFor["abonnent2@example.com"] = true

	issue, err := f.issues.Create(ctx, model.NewsletterIssue{Title: "Robust"})
	require.NoError(t, err)

	report, err := f.svc.SendIssue(ctx, issue.ID, "")
	require.NoError(t, err)

	assert.Equal(t, 5, report.Recipients)
	assert.Equal(t, 4, report.Sent)
	assert.Equal(t, 1, report.Failed)

	// A dead mailbox must not keep the issue a draft.
	sent, err := f.issues.Get(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IssueSent, sent.Status)
}

func TestSendIssue_AlreadySent(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)
	ctx := context.Background()
	f.subscribe(t, 1)

	issue, err := f.issues.Create(ctx, model.NewsletterIssue{Title: "Einmalig"})
	require.NoError(t, err)

	_, err = f.svc.SendIssue(ctx, issue.ID, "")
	require.NoError(t, err)

	_, err = f.svc.SendIssue(ctx, issue.ID, "")
	assert.ErrorIs(t, err, ErrIssueAlreadySent)
}

func TestSendIssue_TestEmailLeavesDraft(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)
	ctx := context.Background()
	f.subscribe(t, 7)

	issue, err := f.issues.Create(ctx, model.NewsletterIssue{Title: "Probe"})
	require.NoError(t, err)

	report, err := f.svc.SendIssue(ctx, issue.ID, "chef@example.com")
	require.NoError(t, err)

	assert.True(t, report.Test)
	assert.Equal(t, 1, report.Sent)

	msgs := f.sender.messages()
	require.Len(t, msgs, 1, "a test send must not reach the subscriber list")
	assert.Equal(t, "chef@example.com", msgs[0].To)
	assert.True(t, strings.HasSuffix(msgs[0].Subject, "(Test)"))

	draft, err := f.issues.Get(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IssueDraft, draft.Status)

	// A test send after the real send is still allowed.
	_, err = f.svc.SendIssue(ctx, issue.ID, "")
	require.NoError(t, err)
	_, err = f.svc.SendIssue(ctx, issue.ID, "chef@example.com")
	require.NoError(t, err)
}

func TestSendIssue_SkipsDanglingEventIDs(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)
	ctx := context.Background()
	f.subscribe(t, 1)

	event, err := f.events.Create(ctx, model.Event{
		Title: "Weinprobe", Artist: "Winzerei Hahn", Date: "2026-09-12",
		Time: "19:30", Price: 24,
	})
	require.NoError(t, err)

	issue, err := f.issues.Create(ctx, model.NewsletterIssue{
		Title:            "Herbst",
		SelectedEventIDs: []int{event.ID, 4242},
	})
	require.NoError(t, err)

	_, err = f.svc.SendIssue(ctx, issue.ID, "")
	require.NoError(t, err)

	msgs := f.sender.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].HTML, "Weinprobe")
	assert.Contains(t, msgs[0].HTML, "12. September 2026")
	assert.Contains(t, msgs[0].HTML, "19:30 Uhr")
	assert.Contains(t, msgs[0].HTML, "24,00 EUR")
}

func TestSendIssue_UnknownIssue(t *testing.T) {
	t.Parallel()

	f := newNewsletterFixture(t)

	_, err := f.svc.SendIssue(context.Background(), 99, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
