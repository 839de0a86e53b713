package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/banner"
	"termfolio/content"
)

var (
	printBanner  = lipgloss.NewStyle().Foreground(lipgloss.Color("105"))
	printHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	printBody    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// printPortfolio writes the static portfolio to w: banner art followed
// by every section. Colour degrades with the terminal, lipgloss
// handles the profile.
func printPortfolio(w io.Writer) {
	fmt.Fprintln(w, printBanner.Render(strings.Trim(banner.DefaultTemplate, "\n")))
	fmt.Fprintln(w)
	for _, sec := range content.DefaultSections() {
		fmt.Fprintln(w, printHeading.Render(sec.Title))
		for _, line := range sec.Body {
			fmt.Fprintln(w, printBody.Render("  "+line))
		}
		fmt.Fprintln(w)
	}
}
