package tui

import "strings"

const (
	appName    = "Properties DEX"
	appTagline = "Tokenize real estate and trade property tokens on Base"
)

// renderWelcome is the banner on top of the home page.
func renderWelcome(connected bool) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render(appTagline))
	b.WriteString("\n")
	if !connected {
		b.WriteString(helpStyle.Render("Connect your wallet to create and list property tokens (press c)."))
		b.WriteString("\n")
	}
	return b.String()
}
