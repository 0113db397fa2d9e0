package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/acedergren/agentic-tools/internal/artifact"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Amber   = lipgloss.Color("#E59866")
	Copper  = lipgloss.Color("#DC7633")
	Purple  = lipgloss.Color("#9B59B6")
	Blue    = lipgloss.Color("#5DADE2")
	Cyan    = lipgloss.Color("#76D7C4")
	Green   = lipgloss.Color("#58D68D")
	Pink    = lipgloss.Color("#FF6B9D")
	Magenta = lipgloss.Color("#E91E8C")

	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Amber)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// SkillBadge returns the skill type badge
func SkillBadge() string {
	if !IsTTY {
		return "[SKILL]"
	}
	return baseBadge.Background(Purple).Foreground(White).Render("✦ SKILL")
}

// AgentBadge returns the agent type badge
func AgentBadge() string {
	if !IsTTY {
		return "[AGENT]"
	}
	return baseBadge.Background(Magenta).Foreground(White).Render("◈ AGENT")
}

// HookBadge returns the hook type badge
func HookBadge() string {
	if !IsTTY {
		return "[HOOK]"
	}
	return baseBadge.Background(Copper).Foreground(White).Render("⚡ HOOK")
}

// Badge returns the badge for an artifact kind
func Badge(t artifact.Type) string {
	switch t {
	case artifact.TypeSkill:
		return SkillBadge()
	case artifact.TypeAgent:
		return AgentBadge()
	case artifact.TypeHook:
		return HookBadge()
	default:
		return ""
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", title)
	}

	width := min(TerminalWidth(), 80)
	titleStyled := Title.Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := max((width-titleLen-6)/2, 2)
	padRight := max(width-titleLen-6-padLeft, 2)

	line := lipgloss.NewStyle().Foreground(DarkGray)
	return line.Render(strings.Repeat("─", padLeft)+" ✦ ") +
		titleStyled +
		line.Render(" ✦ "+strings.Repeat("─", padRight))
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates an indented status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("    %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	return fmt.Sprintf("    %s %s", iconStyled, message)
}

// AddedLine marks an entry that was installed or is available
func AddedLine(message string) string {
	return StatusLine("+", message, Green)
}

// MissingLine marks an entry absent from the source tree
func MissingLine(message string) string {
	return StatusLine("-", Render(Dim, message), DarkGray)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return "  " + Success.Render("✓ "+message)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return "  " + lipgloss.NewStyle().Foreground(Blue).Render("→") + " " + message
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// PageFooter closes a page of output
func PageFooter() string {
	if !IsTTY {
		return ""
	}

	width := min(TerminalWidth(), 80)
	padSide := (width - 5) / 2
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	return lipgloss.NewStyle().Foreground(DarkGray).Render(left+" ✦ "+right) + "\n"
}
