// Package input provides interactive terminal input utilities.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Confirm asks the user a yes/no question on stderr and reads the
// answer from stdin. Returns true for y/Y/yes/YES. Pressing Enter
// returns defaultYes.
//
// Example:
//
//	if input.Confirm("Overwrite pom.xml?", false) {
//	    // user said yes
//	}
//	// Displays: Overwrite pom.xml? [y/N]: _
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(os.Stdin)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprint(os.Stderr, promptStyle.Render(message)+" "+
		hintStyle.Render(hint)+": ")

	answer, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer == "" {
		return defaultYes
	}

	return answer == "y" || answer == "yes"
}
