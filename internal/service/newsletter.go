package service

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"sync"

	"github.com/kulturboden/api/internal/content"
	"github.com/kulturboden/api/internal/mail"
	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
)

// sendBatchSize is how many subscriber mails go out concurrently per batch.
const sendBatchSize = 10

// NewsletterService sends newsletter issues to the active subscriber list.
type NewsletterService struct {
	issues      *repository.Issues
	subscribers *repository.Subscribers
	events      *repository.Events
	sender      mail.Sender
	baseURL     string
	siteName    string
}

// NewNewsletterService creates the newsletter service. baseURL is the public
// site origin used to build unsubscribe links.
func NewNewsletterService(
	issues *repository.Issues,
	subscribers *repository.Subscribers,
	events *repository.Events,
	sender mail.Sender,
	baseURL, siteName string,
) *NewsletterService {
	return &NewsletterService{
		issues:      issues,
		subscribers: subscribers,
		events:      events,
		sender:      sender,
		baseURL:     baseURL,
		siteName:    siteName,
	}
}

// SendReport summarizes one issue send.
type SendReport struct {
	IssueID    int  `json:"issueId"`
	Recipients int  `json:"recipients"`
	Sent       int  `json:"sent"`
	Failed     int  `json:"failed"`
	Test       bool `json:"test"`
}

// SendIssue sends the issue to all active subscribers in batches, tolerating
// individual delivery failures, and marks the issue sent at the end. With a
// non-empty testEmail the rendered issue goes to that single address only and
// the issue stays a draft, so a test never blocks the real send.
func (s *NewsletterService) SendIssue(ctx context.Context, issueID int, testEmail string) (SendReport, error) {
	issue, err := s.issues.Get(ctx, issueID)
	if err != nil {
		return SendReport{}, err
	}

	if testEmail == "" && issue.Status == model.IssueSent {
		return SendReport{}, ErrIssueAlreadySent
	}

	introHTML, err := content.RenderMarkdown(issue.IntroText)
	if err != nil {
		return SendReport{}, err
	}

	featured, err := s.featuredEvents(ctx, issue)
	if err != nil {
		return SendReport{}, err
	}

	subject := fmt.Sprintf("%s Newsletter: %s", s.siteName, issue.Title)
	body := func(unsubscribeToken string) string {
		return mail.NewsletterIssueBody(mail.IssueBody{
			Title:          issue.Title,
			IntroHTML:      template.HTML(introHTML),
			Events:         featured,
			UnsubscribeURL: mail.UnsubscribeURL(s.baseURL, unsubscribeToken),
		})
	}

	if testEmail != "" {
		_, err := s.sender.Send(ctx, mail.Message{
			To:      testEmail,
			Subject: subject + " (Test)",
			HTML:    body(""),
		})
		if err != nil {
			return SendReport{}, err
		}
		return SendReport{IssueID: issue.ID, Recipients: 1, Sent: 1, Test: true}, nil
	}

	recipients, err := s.subscribers.ListActive(ctx)
	if err != nil {
		return SendReport{}, err
	}

	report := SendReport{IssueID: issue.ID, Recipients: len(recipients)}
	for start := 0; start < len(recipients); start += sendBatchSize {
		end := start + sendBatchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		sent, failed := s.sendBatch(ctx, recipients[start:end], subject, body)
		report.Sent += sent
		report.Failed += failed
	}

	if _, err := s.issues.MarkSent(ctx, issue.ID); err != nil {
		return report, err
	}

	slog.Info("newsletter issue sent",
		slog.Int("issue_id", issue.ID),
		slog.Int("recipients", report.Recipients),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

// sendBatch delivers one batch concurrently. Failures are logged per
// recipient and counted, never propagated: one dead mailbox must not stop
// the edition.
func (s *NewsletterService) sendBatch(ctx context.Context, batch []model.NewsletterSubscriber, subject string, body func(token string) string) (sent, failed int) {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, sub := range batch {
		wg.Add(1)
		go func(sub model.NewsletterSubscriber) {
			defer wg.Done()
			_, err := s.sender.Send(ctx, mail.Message{
				To:      sub.Email,
				Subject: subject,
				HTML:    body(sub.UnsubscribeToken),
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				slog.Error("newsletter delivery failed",
					slog.String("email", sub.Email),
					slog.String("error", err.Error()),
				)
				return
			}
			sent++
		}(sub)
	}
	wg.Wait()
	return sent, failed
}

// featuredEvents resolves the issue's selected event ids to display data,
// skipping ids that no longer resolve.
func (s *NewsletterService) featuredEvents(ctx context.Context, issue model.NewsletterIssue) ([]mail.IssueEvent, error) {
	if len(issue.SelectedEventIDs) == 0 {
		return nil, nil
	}

	events, err := s.events.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]model.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	featured := make([]mail.IssueEvent, 0, len(issue.SelectedEventIDs))
	for _, id := range issue.SelectedEventIDs {
		event, ok := byID[id]
		if !ok {
			slog.Warn("newsletter issue references missing event",
				slog.Int("issue_id", issue.ID),
				slog.Int("event_id", id),
			)
			continue
		}
		featured = append(featured, mail.IssueEvent{
			Title:       event.Title,
			Artist:      event.Artist,
			DateLabel:   model.GermanDate(event.Date),
			TimeLabel:   model.GermanTime(event.Time),
			PriceLabel:  model.GermanPrice(event.Price),
			Description: event.Description,
		})
	}
	return featured, nil
}
