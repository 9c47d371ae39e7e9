package notification

import (
	"context"
	"fmt"
	"log"

	"skybook/internal/domain"
)

type Service struct {
	notifications NotificationRepository
	users         UserRepository
	mailer        Mailer
}

// NewService wires the notification fan-out. mailer may be nil when SMTP is
// not configured; announcements then stay in-app only.
func NewService(notifications NotificationRepository, users UserRepository, mailer Mailer) *Service {
	return &Service{notifications: notifications, users: users, mailer: mailer}
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkRead flips one of the user's own notifications; ids belonging to other
// users are invisible here and report ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	n, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Notify records a single-user notification row. Callers treat it as best
// effort: a failed notification never fails the operation that caused it.
func (s *Service) Notify(ctx context.Context, userID int64, title, message string) error {
	return s.notifications.Create(ctx, &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	})
}

// AnnouncePromotion broadcasts a new promotion: one notification row per
// user plus an email to each verified address.
func (s *Service) AnnouncePromotion(ctx context.Context, p *domain.Promotion) {
	percent := p.Discount * 100
	message := fmt.Sprintf("Save %.0f%% on flights from %s until %s.",
		percent, p.StartDate.Format("2 Jan 2006"), p.EndDate.Format("2 Jan 2006"))

	if err := s.notifications.CreateForAll(ctx, "New promotion", message); err != nil {
		log.Printf("promotion broadcast: %v", err)
	}

	if s.mailer == nil {
		return
	}
	users, err := s.users.ListAll(ctx)
	if err != nil {
		log.Printf("promotion broadcast: list users: %v", err)
		return
	}
	for _, u := range users {
		if !u.IsVerified {
			continue
		}
		if err := s.mailer.SendPromotionAnnouncement(
			u.Email, percent,
			p.StartDate.Format("2 Jan 2006"),
			p.EndDate.Format("2 Jan 2006"),
		); err != nil {
			log.Printf("promotion mail to %s: %v", u.Email, err)
		}
	}
}
