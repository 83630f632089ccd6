package umweltverband

import (
	"abfuhrkalender/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// the portal marks every pickup date on a schedule page with this class
const noticeClass = "tunterlegt"

// ExtractNotices returns the text of every highlighted date on a schedule
// page. A page without any is valid, some municipalities publish nothing.
func ExtractNotices(doc *goquery.Document) []string {
	notices := []string{}
	doc.Find("." + noticeClass).Each(func(_ int, s *goquery.Selection) {
		notices = append(notices, htmlutil.Text(s))
	})
	return notices
}
