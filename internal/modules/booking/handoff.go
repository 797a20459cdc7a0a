package booking

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kivulounge/internal/domain"
)

const contactDateLayout = "January 2, 2006"

// ContactMessage builds the pre-filled WhatsApp text for the anonymous
// handoff. The total is explicitly labeled estimated and negotiable: the
// final price is agreed over the messaging channel, not charged here.
func ContactMessage(room *domain.Room, req SubmitBookingRequest, total float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi! I'd like to book %s.\n\n", room.Name)
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "- Room: %s\n", room.Name)
	fmt.Fprintf(&b, "- Check-in: %s\n", formatContactDate(req.CheckIn))
	fmt.Fprintf(&b, "- Check-out: %s\n", formatContactDate(req.CheckOut))
	fmt.Fprintf(&b, "- Booking Type: %s\n", req.BookingType)
	fmt.Fprintf(&b, "- Guest Name: %s\n", orNotProvided(req.GuestName))
	fmt.Fprintf(&b, "- Email: %s\n", orNotProvided(req.GuestEmail))
	fmt.Fprintf(&b, "- Phone: %s\n", orNotProvided(req.GuestPhone))
	fmt.Fprintf(&b, "- Estimated Total: $%s (negotiable)\n", formatAmount(total))
	fmt.Fprintf(&b, "- Special Requests: %s\n\n", orNone(req.SpecialRequests))
	b.WriteString("Please confirm availability and final pricing. Thank you!")

	return b.String()
}

// WhatsAppURL builds the wa.me deep link that opens the external messaging
// channel with the message pre-filled. Opening it is the caller's only
// "network call" on this path.
func WhatsAppURL(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

func formatContactDate(t time.Time) string {
	if t.IsZero() {
		return "Not selected"
	}
	return t.Format(contactDateLayout)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
