package report

import (
	"fmt"
	"strings"
)

const ruleWidth = 60

// Banner prints a section heading between rules.
func Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Println(rule)
	fmt.Println(title)
	fmt.Println(rule)
}

// Section prints a subsection heading with a lighter rule.
func Section(title string) {
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("-", len(title)))
}

// Item prints one labeled value, indented under a heading.
func Item(label string, value any) {
	fmt.Printf("  %-44s %v\n", label, value)
}

// Linef prints one formatted line.
func Linef(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Blank prints an empty line.
func Blank() {
	fmt.Println()
}
