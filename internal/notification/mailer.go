package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"kivulounge/internal/config"
	"kivulounge/internal/domain"
	"kivulounge/internal/pkg/logger"
)

const stayDateLayout = "Mon, 02 Jan 2006 15:04"

// Mailer sends booking lifecycle emails to guests over SMTP. With no SMTP
// host configured every send is a logged no-op, so notifications never
// block a deployment that has not set up email yet.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{from: cfg.SMTPFrom}
	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return m
}

func (m *Mailer) BookingReceived(ctx context.Context, b *domain.Booking, room *domain.Room) error {
	roomName := ""
	if room != nil {
		roomName = room.Name
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nWe received your booking request for %s.\n\n"+
			"Check-in: %s\nCheck-out: %s\nTotal: $%.2f\n\n"+
			"Your booking is pending confirmation. We will be in touch shortly.\n\n"+
			"Choice Kivu Lounge",
		b.GuestName, roomName,
		b.CheckIn.Format(stayDateLayout), b.CheckOut.Format(stayDateLayout), b.TotalCost,
	)
	return m.send(b.GuestEmail, "Booking request received", body)
}

func (m *Mailer) BookingConfirmed(ctx context.Context, b *domain.Booking) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking #%d has been confirmed.\n\n"+
			"Check-in: %s\nCheck-out: %s\nTotal: $%.2f\n\n"+
			"We look forward to hosting you.\n\nChoice Kivu Lounge",
		b.GuestName, b.ID,
		b.CheckIn.Format(stayDateLayout), b.CheckOut.Format(stayDateLayout), b.TotalCost,
	)
	return m.send(b.GuestEmail, "Booking confirmed", body)
}

func (m *Mailer) BookingCancelled(ctx context.Context, b *domain.Booking, reason string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking #%d has been cancelled (%s).\n\n"+
			"If this was a mistake, please contact us.\n\nChoice Kivu Lounge",
		b.GuestName, b.ID, reason,
	)
	return m.send(b.GuestEmail, "Booking cancelled", body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.dialer == nil {
		logger.InfoLogger.Printf("email disabled, skipping %q to %s", subject, to)
		return nil
	}
	if to == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.ErrorLogger.Errorf("email %q to %s failed: %v", subject, to, err)
		return err
	}
	return nil
}
