package utils

import (
	"fmt"
	"net/url"
)

// ShareLinks carries the share targets for a product page. Instagram has no
// URL-share endpoint, so clients copy the plain URL for it.
type ShareLinks struct {
	URL      string `json:"url"`
	WhatsApp string `json:"whatsapp"`
	Twitter  string `json:"twitter"`
}

// BuildShareLinks assembles the WhatsApp and Twitter share URLs for a page.
func BuildShareLinks(pageURL, title, description string) ShareLinks {
	text := fmt.Sprintf("%s\n\n%s\n\n%s", title, description, pageURL)
	return ShareLinks{
		URL:      pageURL,
		WhatsApp: "https://wa.me/?text=" + url.QueryEscape(text),
		Twitter: "https://twitter.com/intent/tweet?text=" + url.QueryEscape(title) +
			"&url=" + url.QueryEscape(pageURL),
	}
}
