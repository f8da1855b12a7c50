package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/mcwarm/internal/styles"
)

// introFrame is the animation frame interval.
const introFrame = 16 * time.Millisecond

// introTagline is faded in next to the wordmark once the letters settle.
const introTagline = "instance cache warmer"

// IntroModel handles the intro animation state.
type IntroModel struct {
	Active    bool
	StartTime time.Time
	Letters   []*IntroLetter
	Done      bool // Set to true when the letters have settled

	// Tagline fade-in (starts after the logo animation completes)
	Tagline          string
	TaglineOpacity   float64   // 0.0 to 1.0
	TaglineFadeStart time.Time // When the fade began
}

type IntroLetter struct {
	Char     rune
	TargetX  float64
	CurrentX float64

	// Overshoot logic
	ReachedTarget bool
	OvershootMax  float64

	// Color interpolation
	StartColor   RGB
	EndColor     RGB
	CurrentColor RGB

	Delay time.Duration
}

type RGB struct {
	R, G, B float64
}

func hexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return RGB{float64(r), float64(g), float64(b)}
}

func (c RGB) toLipgloss() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", int(c.R), int(c.G), int(c.B)))
}

func NewIntroModel() IntroModel {
	text := "mcwarm"
	letters := make([]*IntroLetter, len(text))

	theme := styles.GetCurrentTheme()

	// Gradient endpoints for the settled state, matching the progress
	// bar gradient.
	startGradient := hexToRGB(theme.Colors.Primary)
	endGradient := hexToRGB(theme.Colors.Accent)

	// Varied start colors so the letters fly in from a scatter
	startColors := []string{
		theme.Colors.Error,
		theme.Colors.Secondary,
		theme.Colors.Success,
		theme.Colors.Primary,
		theme.Colors.ButtonHover,
		theme.Colors.Info,
		theme.Colors.Accent,
	}

	for i, char := range text {
		// Target color for this letter along the gradient
		t := float64(i) / float64(len(text)-1)
		targetColor := RGB{
			R: startGradient.R + t*(endGradient.R-startGradient.R),
			G: startGradient.G + t*(endGradient.G-startGradient.G),
			B: startGradient.B + t*(endGradient.B-startGradient.B),
		}

		letters[i] = &IntroLetter{
			Char:         char,
			CurrentX:     -15.0 - float64(i)*8.0,
			TargetX:      float64(i),
			OvershootMax: float64(i) * 2.5, // Spread out before settling
			StartColor:   hexToRGB(startColors[i%len(startColors)]),
			EndColor:     targetColor,
			CurrentColor: hexToRGB(startColors[i%len(startColors)]),
			Delay:        time.Duration(i) * 80 * time.Millisecond,
		}
	}

	return IntroModel{
		Active:  true,
		Letters: letters,
		Tagline: introTagline,
	}
}

// Update progresses the animation
func (m *IntroModel) Update(dt time.Duration) {
	if !m.Active {
		return
	}

	allSettled := true

	for _, l := range m.Letters {
		// Check delay
		if m.StartTime.IsZero() {
			m.StartTime = time.Now()
		}
		elapsed := time.Since(m.StartTime)
		if elapsed < l.Delay {
			allSettled = false
			continue
		}

		// Animation logic (Overshoot then return)
		// 1. Move towards OvershootMax until reached
		// 2. Then move back to TargetX

		var target float64
		var speed float64

		if !l.ReachedTarget {
			target = l.OvershootMax
			speed = 30.0

			if l.CurrentX >= l.OvershootMax-0.1 {
				l.ReachedTarget = true
			}
		} else {
			target = l.TargetX
			speed = 5.0 // Slower return
		}

		dist := target - l.CurrentX
		move := dist * 6.0 * dt.Seconds()

		// Clamp move to avoid oscillating wildly
		if math.Abs(move) > math.Abs(dist) {
			move = dist
		}

		// Ensure minimum movement if far away
		minMove := speed * dt.Seconds()
		if math.Abs(dist) > 0.1 && math.Abs(move) < minMove {
			if dist > 0 {
				move = minMove
			} else {
				move = -minMove
			}
		}

		l.CurrentX += move

		// Color interpolation towards EndColor
		colorSpeed := 3.0 * dt.Seconds()
		l.CurrentColor.R += (l.EndColor.R - l.CurrentColor.R) * colorSpeed
		l.CurrentColor.G += (l.EndColor.G - l.CurrentColor.G) * colorSpeed
		l.CurrentColor.B += (l.EndColor.B - l.CurrentColor.B) * colorSpeed

		// Check if settled
		if l.ReachedTarget &&
			math.Abs(l.TargetX-l.CurrentX) < 0.1 &&
			math.Abs(l.EndColor.R-l.CurrentColor.R) < 1.0 {
			// Settled
		} else {
			allSettled = false
		}
	}

	if allSettled {
		m.Done = true
	}

	// Tagline fade-in (starts after the logo animation completes)
	if m.Done && m.Tagline != "" && m.TaglineOpacity < 1.0 {
		if m.TaglineFadeStart.IsZero() {
			m.TaglineFadeStart = time.Now()
		}
		// Fade duration: 300ms
		elapsed := time.Since(m.TaglineFadeStart)
		m.TaglineOpacity = math.Min(1.0, elapsed.Seconds()/0.3)
	}
}

func (m IntroModel) View() string {
	if !m.Active {
		return ""
	}

	// Calculate required width based on current positions
	minX := 0
	maxX := len(m.Letters) // Minimum width is the final string length

	for _, l := range m.Letters {
		x := int(math.Round(l.CurrentX))
		if x > maxX {
			maxX = x
		}
	}

	// A little padding keeps the last character from clipping mid-move
	width := maxX + 1
	buf := make([]string, width)
	for i := range buf {
		buf[i] = " "
	}

	for _, l := range m.Letters {
		x := int(math.Round(l.CurrentX))
		if x >= minX && x < width {
			style := lipgloss.NewStyle().Foreground(l.CurrentColor.toLipgloss()).Bold(true)
			buf[x] = style.Render(string(l.Char))
		}
	}

	return strings.Join(buf, "")
}

// TaglineView returns the tagline with the current fade opacity applied.
// Returns empty string if there is no tagline or opacity is 0.
func (m IntroModel) TaglineView() string {
	if m.Tagline == "" || m.TaglineOpacity <= 0 {
		return ""
	}

	theme := styles.GetCurrentTheme()

	// Background color for fade-in interpolation
	bgColor := hexToRGB(theme.Colors.BgSecondary)

	// Gradient from highlight to primary across the tagline
	lightColor := hexToRGB(theme.Colors.TextHighlight)
	darkColor := hexToRGB(theme.Colors.Primary)

	// " / " separator in the secondary text color
	prefixTarget := hexToRGB(theme.Colors.TextSecondary)
	prefixColor := RGB{
		R: bgColor.R + (prefixTarget.R-bgColor.R)*m.TaglineOpacity,
		G: bgColor.G + (prefixTarget.G-bgColor.G)*m.TaglineOpacity,
		B: bgColor.B + (prefixTarget.B-bgColor.B)*m.TaglineOpacity,
	}
	prefixStyle := lipgloss.NewStyle().Foreground(prefixColor.toLipgloss())
	result := prefixStyle.Render(" / ")

	runes := []rune(m.Tagline)
	for i, r := range runes {
		// Gradient position (0.0 = light, 1.0 = dark)
		var t float64
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}

		targetColor := RGB{
			R: lightColor.R + t*(darkColor.R-lightColor.R),
			G: lightColor.G + t*(darkColor.G-lightColor.G),
			B: lightColor.B + t*(darkColor.B-lightColor.B),
		}

		// Apply fade-in opacity
		currentColor := RGB{
			R: bgColor.R + (targetColor.R-bgColor.R)*m.TaglineOpacity,
			G: bgColor.G + (targetColor.G-bgColor.G)*m.TaglineOpacity,
			B: bgColor.B + (targetColor.B-bgColor.B)*m.TaglineOpacity,
		}

		style := lipgloss.NewStyle().Foreground(currentColor.toLipgloss())
		result += style.Render(string(r))
	}

	return result
}

// LogoView renders the settled wordmark for the header once the intro
// has finished.
func LogoView() string {
	theme := styles.GetCurrentTheme()
	start := hexToRGB(theme.Colors.Primary)
	end := hexToRGB(theme.Colors.Accent)

	runes := []rune("mcwarm")
	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes)-1)
		c := RGB{
			R: start.R + t*(end.R-start.R),
			G: start.G + t*(end.G-start.G),
			B: start.B + t*(end.B-start.B),
		}
		b.WriteString(lipgloss.NewStyle().Foreground(c.toLipgloss()).Bold(true).Render(string(r)))
	}
	return b.String()
}

// IntroTickMsg is sent to update the animation frame.
type IntroTickMsg time.Time

func IntroTick() tea.Cmd {
	return tea.Tick(introFrame, func(t time.Time) tea.Msg {
		return IntroTickMsg(t)
	})
}
