package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const clearCmd = "clear"

// String renders the grid as a bordered ascii block: a + - + frame around
// rows of | ... |, with Alive cells drawn as '#' and Dead cells as ' '
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteByte('+')
	for i := 0; i < g.width; i++ {
		sb.WriteByte('-')
	}
	sb.WriteString("+\n")
	for y := 0; y < g.height; y++ {
		sb.WriteByte('|')
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] == Alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteByte('+')
	for i := 0; i < g.width; i++ {
		sb.WriteByte('-')
	}
	sb.WriteString("+\n")
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the current world state to the terminal
func (r *TerminalRenderer) Display(w *World) {
	fmt.Print(w.GetState().String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
