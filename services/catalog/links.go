package catalog

import "net/url"

// TelLink returns the dialer deep link for the hotel phone.
func TelLink() string {
	return "tel:" + Hotel.Phone
}

// WhatsAppLink returns a wa.me deep link to hotel management, optionally
// pre-filled with text.
func WhatsAppLink(text string) string {
	link := "https://wa.me/" + Hotel.WhatsApp
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// WhatsAppShareLink returns a recipient-less wa.me link pre-filled with text,
// used as the share fallback when no native share sheet is available.
func WhatsAppShareLink(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}
