// Package checkout serializes a cart into the WhatsApp enquiry handoff:
// a human-readable message plus a wa.me deep link. Pure string
// construction; opening the link belongs to the client.
package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shahhardik4599/creatively-yours/internal/model"
)

const (
	messageHeader = "🌸 *Creatively Yours by Mugdha — Gift Enquiry*"
	messageFooter = "Please confirm availability and final pricing. Thank you! 🙏"
)

// FormatWhatsAppMessage renders one line per cart entry followed by the
// grand total and a fixed confirmation request
func FormatWhatsAppMessage(lines []model.CartLine, total int) string {
	var b strings.Builder
	b.WriteString(messageHeader)
	b.WriteString("\n\n")

	for _, line := range lines {
		b.WriteString("• *")
		b.WriteString(line.Product.Name)
		b.WriteString("*")
		if line.Product.Code != "" {
			b.WriteString(" (")
			b.WriteString(line.Product.Code)
			b.WriteString(")")
		}
		b.WriteString(" ×")
		b.WriteString(strconv.Itoa(line.Quantity))
		b.WriteString(" — ₹")
		b.WriteString(formatINR(line.LineTotal()))
		b.WriteString("\n")
	}

	b.WriteString("\n💰 *Estimated Total: ₹")
	b.WriteString(formatINR(total))
	b.WriteString("*\n\n")
	b.WriteString(messageFooter)
	return b.String()
}

// BuildDeepLink URL-encodes the message into the wa.me deep-link template
func BuildDeepLink(phoneNumber, message string) string {
	return "https://wa.me/" + phoneNumber + "?text=" + url.QueryEscape(message)
}

// ContactLink returns the plain wa.me link without a prefilled message
func ContactLink(phoneNumber string) string {
	return "https://wa.me/" + phoneNumber
}

// formatINR groups digits in the Indian numbering style: the last three
// digits, then groups of two (1234567 -> 12,34,567).
func formatINR(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return sign + strings.Join(groups, ",") + "," + tail
}
