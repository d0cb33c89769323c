package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fbbf24")).
		Bold(true).
		Render("H O S T E L H U T")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Your hostels, one terminal away.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	commands := []struct{ cmd, desc string }{
		{"hostelhut", "Open the dashboard (interactive TUI)"},
		{"hostelhut logout", "Clear your session"},
		{"hostelhut terms", "Open the terms of service"},
		{"hostelhut privacy", "Open the privacy policy"},
		{"hostelhut faq", "Open the FAQ"},
		{"hostelhut --version", "Show version"},
	}

	envs := []struct{ name, desc string }{
		{"HOSTELHUT_API_URL", "API base URL (default http://localhost:5000)"},
		{"HOSTELHUT_DATA_DIR", "Session token directory (default ~/.hostelhut)"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n", title, tagline)
	fmt.Printf("  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}
	fmt.Printf("\n  %s\n", sectionStyle.Render("Environment"))
	for _, e := range envs {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", e.name)), descStyle.Render(e.desc))
	}
	fmt.Println()
}
