package mail

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// detectContentType picks the MIME type for the message body. HTML templates
// are sent as text/html; everything else goes out as plain text.
func detectContentType(body string) string {
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<html>") || strings.Contains(lower, "<p>") {
		return "text/html; charset=UTF-8"
	}
	return "text/plain; charset=UTF-8"
}

// buildMessage assembles a single-recipient RFC 822 message with CRLF line
// endings. Each recipient of a batch gets its own message; there is never a
// multi-recipient To header.
func buildMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: %s\r\n"+
		"\r\n"+
		"%s\r\n", from, to, subject, detectContentType(body), body))
}

// encodeRaw encodes a message for the Gmail API "raw" field (URL-safe base64).
func encodeRaw(message []byte) string {
	return base64.URLEncoding.EncodeToString(message)
}
