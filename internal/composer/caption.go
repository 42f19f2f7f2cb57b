package composer

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// captionStyle is the resolved text styling for one frame size
type captionStyle struct {
	Width, Height int
	FontName      string
	FontSize      int
	Primary       rgb
	Outline       rgb
	OutlineWidth  int
	MarginSide    int
	MarginTop     int
	Start, End    float64
	FadeMillis    int
}

// newCaptionStyle places the caption box at TextVerticalOffset of the height,
// TextWidthRatio of the width wide and horizontally centered.
// The caption appears half way through the image fade-in.
func (c *implComposer) newCaptionStyle(width, height int) (captionStyle, error) {
	primary, err := parseColor(c.video.FontColor)
	if err != nil {
		return captionStyle{}, fmt.Errorf("font color: %w", err)
	}
	outline, err := parseColor(c.video.StrokeColor)
	if err != nil {
		return captionStyle{}, fmt.Errorf("stroke color: %w", err)
	}

	return captionStyle{
		Width:        width,
		Height:       height,
		FontName:     c.video.FontName,
		FontSize:     c.video.FontSize,
		Primary:      primary,
		Outline:      outline,
		OutlineWidth: c.video.StrokeWidth,
		MarginSide:   int(math.Round(float64(width) * (1 - c.video.TextWidthRatio) / 2)),
		MarginTop:    int(math.Round(float64(height) * c.video.TextVerticalOffset)),
		Start:        c.video.FadeDuration / 2,
		End:          c.video.Duration,
		FadeMillis:   int(math.Round(c.video.CaptionFade * 1000)),
	}, nil
}

// renderASS builds an ASS script holding the caption as a single event.
// WrapStyle 0 lets libass word-wrap inside the side margins, alignment 8 is top-centre.
func renderASS(style captionStyle, text string) string {
	var b strings.Builder

	b.WriteString("[Script Info]\n")
	b.WriteString("Title: quote-reel caption\n")
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", style.Width)
	fmt.Fprintf(&b, "PlayResY: %d\n", style.Height)
	b.WriteString("WrapStyle: 0\n")
	b.WriteString("ScaledBorderAndShadow: yes\n")
	b.WriteString("\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(&b, "Style: Caption,%s,%d,%s,%s,%s,&H00000000,0,0,0,0,100,100,0,0,1,%d,0,8,%d,%d,%d,1\n",
		style.FontName, style.FontSize,
		style.Primary.ass(), style.Primary.ass(), style.Outline.ass(),
		style.OutlineWidth,
		style.MarginSide, style.MarginSide, style.MarginTop)
	b.WriteString("\n")

	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	var effect string
	if style.FadeMillis > 0 {
		effect = fmt.Sprintf("{\\fad(%d,%d)}", style.FadeMillis, style.FadeMillis)
	}
	fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Caption,,0,0,0,,%s%s\n",
		formatASSTimestamp(style.Start),
		formatASSTimestamp(style.End),
		effect,
		escapeASSText(text))

	return b.String()
}

func writeASS(path string, style captionStyle, text string) error {
	return os.WriteFile(path, []byte(renderASS(style, text)), 0644)
}

// A backslash is followed by a word joiner so libass never reads it as the
// start of \N, \h or \{. Braces use the libass literal escapes.
var assTextReplacer = strings.NewReplacer(
	"\\", "\\\u2060",
	"{", "\\{",
	"}", "\\}",
	"\r\n", "\\N",
	"\n", "\\N",
)

// escapeASSText keeps user text from being read as override tags
func escapeASSText(text string) string {
	return assTextReplacer.Replace(strings.TrimSpace(text))
}

// formatASSTimestamp converts seconds to ASS timestamp format (h:mm:ss.cc)
func formatASSTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	cs := int(math.Round(seconds * 100))
	hours := cs / 360000
	minutes := (cs / 6000) % 60
	secs := (cs / 100) % 60
	centisecs := cs % 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centisecs)
}
