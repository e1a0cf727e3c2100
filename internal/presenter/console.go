package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347")).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
)

const wordWrap = 100

// Console prints notices and results to a terminal.
type Console struct {
	out      io.Writer
	markdown *glamour.TermRenderer
}

// NewConsole creates a Console whose markdown style follows the terminal.
func NewConsole(out io.Writer) *Console {
	return newConsole(out, glamour.WithAutoStyle())
}

// NewConsoleWithStyle creates a Console rendering markdown with a named
// glamour style ("dark", "light", "notty", ...).
func NewConsoleWithStyle(out io.Writer, style string) *Console {
	return newConsole(out, glamour.WithStandardStyle(style))
}

func newConsole(out io.Writer, style glamour.TermRendererOption) *Console {
	c := &Console{out: out}
	// Without a renderer summaries are printed as plain text.
	if r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wordWrap)); err == nil {
		c.markdown = r
	}
	return c
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, infoStyle.Render(msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, successStyle.Render("✅ "+msg))
}

func (c *Console) Warning(msg string) {
	fmt.Fprintln(c.out, warningStyle.Render("⚠️  "+msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, errorStyle.Render("❌ "+msg))
}

// Summary prints the final summary under a heading, rendering its markdown.
func (c *Console) Summary(summary string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headingStyle.Render("Summary of the video provided:"))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.TrimRight(c.renderMarkdown(summary), "\n"))
}

func (c *Console) renderMarkdown(text string) string {
	if c.markdown == nil {
		return text
	}
	out, err := c.markdown.Render(text)
	if err != nil {
		return text
	}
	return out
}

// Transcript prints the raw transcript under a heading.
func (c *Console) Transcript(transcript string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headingStyle.Render("Full transcript:"))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.TrimSpace(transcript))
}
