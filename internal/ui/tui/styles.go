package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

// Header and step list
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	currentStepStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	barFilled = lipgloss.NewStyle().Foreground(colorGreen)
	barEmpty  = lipgloss.NewStyle().Foreground(colorDim)
)

// Messages, summary and status line
var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			MarginTop(1)

	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	noticeStyle = lipgloss.NewStyle().Foreground(colorYellow)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorDim)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	pending   = "[  ]"
	tipMark   = " * "
)

// spinnerFrames animates the submission screen, one frame per tick.
var spinnerFrames = []string{"[⠋]", "[⠙]", "[⠹]", "[⠸]", "[⠼]", "[⠴]", "[⠦]", "[⠧]", "[⠇]", "[⠏]"}
