package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for sieve.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient (teal -> blue)
	s1 := termenv.String("      _                ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  ___(_) _____   _____ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(" / __| |/ _ \\ \\ / / _ \\").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String(" \\__ \\ |  __/\\ V /  __/").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String(" |___/_|\\___| \\_/ \\___|").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
	fmt.Printf("  sieve %s - schema validation for documents\n\n", version)
}
