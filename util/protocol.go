package util

import (
	"fmt"
	"strings"
)

// RenderProtocolInfo builds a UPnP protocolInfo string for a resource. When
// either part is missing the wildcard "http-get:*:*:*" is returned.
func RenderProtocolInfo(mimetype, protocol string) string {
	if StringOK(mimetype) && StringOK(protocol) {
		return protocol + ":*:" + mimetype + ":*"
	}
	return "http-get:*:*:*"
}

// MimeTypesToCSV renders the source protocol list advertised by the
// connection manager, one http-get entry per MIME type.
func MimeTypesToCSV(mimeTypes []string) string {
	var b strings.Builder
	for i, mt := range mimeTypes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("http-get:*:")
		b.WriteString(mt)
		b.WriteString(":*")
	}
	return b.String()
}

// HTTPRedirectTo returns an HTML page that immediately refreshes to
// http://ip:port/page.
func HTTPRedirectTo(ip, port, page string) string {
	return `<html><head><meta http-equiv="Refresh" content="0;URL=http://` +
		ip + ":" + port + "/" + page +
		`"></head><body bgcolor="#408bff"></body></html>`
}

// SecondsToHMS formats a duration in seconds as HH:MM:SS. Hours are not
// wrapped at 24.
func SecondsToHMS(seconds int) string {
	s := seconds % 60
	seconds /= 60
	m := seconds % 60
	h := seconds / 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
