package impl

import (
	"net/url"
	"strings"
)

const (
	whatsAppBaseURL    = "https://wa.me/"
	defaultCountryCode = "243"
)

// normalizeWhatsAppNumber turns a local or international phone number into
// the digits-only form expected by wa.me. It returns "" when nothing usable is left.
func normalizeWhatsAppNumber(phone string) string {
	var builder strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			builder.WriteRune(r)
		}
	}
	cleaned := builder.String()

	switch {
	case strings.HasPrefix(cleaned, "+"):
		cleaned = cleaned[1:]
	case strings.HasPrefix(cleaned, "0"):
		cleaned = defaultCountryCode + cleaned[1:]
	case cleaned != "" && !strings.HasPrefix(cleaned, defaultCountryCode):
		cleaned = defaultCountryCode + cleaned
	}

	cleaned = strings.ReplaceAll(cleaned, "+", "")
	if len(cleaned) <= len(defaultCountryCode) {
		return ""
	}

	return cleaned
}

// whatsAppLink builds the click-to-chat URL for a listing, or "" when phone is unusable.
func whatsAppLink(phone, productTitle string) string {
	number := normalizeWhatsAppNumber(phone)
	if number == "" {
		return ""
	}

	text := `Bonjour, je suis intéressé(e) par votre annonce "` + productTitle + `" sur Teka Somba.`

	return whatsAppBaseURL + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
