package web

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

//go:embed index.html
var indexHTML string

// renderStatusPage fills the invite link and the status line of index.html
func renderStatusPage(inviteURL string, online bool, guilds int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(indexHTML))
	if err != nil {
		return "", err
	}

	doc.Find("a.button").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if strings.Contains(a.Text(), "Invite it to your server") {
			a.SetAttr("href", inviteURL)
			return false
		}
		return true
	})

	status := "Bot status: Offline"
	if online {
		status = fmt.Sprintf("Bot status: Online - %d servers", guilds)
	}
	doc.Find(`p[align="center"]`).EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if strings.Contains(p.Text(), "Bot status:") {
			p.SetText(status)
			return false
		}
		return true
	})

	return doc.Html()
}
