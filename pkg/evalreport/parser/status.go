package parser

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/drivelab/evalreport/pkg/evalreport/models"
)

// DefaultColorTolerance is the maximum Euclidean RGB distance (normalized,
// 0..sqrt(3)) at which a fill color still matches a palette entry. It
// corresponds to roughly 30/255 of slack on two channels.
const DefaultColorTolerance = 0.2

// statusPalette maps each status to the fill color the workbook macros use.
var statusPalette = []struct {
	status models.Status
	color  colorful.Color
}{
	{models.StatusRed, rgb(225, 0, 0)},
	{models.StatusGreen, rgb(0, 176, 80)},
	{models.StatusYellow, rgb(227, 225, 0)},
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// MatchStatusText resolves a status from cell text. Accepts full color names
// and single-letter abbreviations, case-insensitively.
func MatchStatusText(text string) (models.Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "RED", "R":
		return models.StatusRed, true
	case "YELLOW", "Y":
		return models.StatusYellow, true
	case "GREEN", "G":
		return models.StatusGreen, true
	}
	return models.StatusUnspecified, false
}

// MatchStatusColor resolves a status from a fill color hex string ("E10000"
// or ARGB "FFE10000", with or without a leading '#'). The nearest palette
// entry wins if its distance is within tolerance; tolerance <= 0 falls back
// to DefaultColorTolerance.
func MatchStatusColor(hex string, tolerance float64) (models.Status, bool) {
	if tolerance <= 0 {
		tolerance = DefaultColorTolerance
	}
	c, ok := parseHexRGB(hex)
	if !ok {
		return models.StatusUnspecified, false
	}

	best := models.StatusUnspecified
	bestDist := tolerance
	for _, entry := range statusPalette {
		if d := c.DistanceRgb(entry.color); d <= bestDist {
			best = entry.status
			bestDist = d
		}
	}
	return best, best != models.StatusUnspecified
}

// parseHexRGB parses a 6-digit RGB or 8-digit ARGB hex string. The alpha
// channel, when present, is dropped.
func parseHexRGB(hex string) (colorful.Color, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 6 {
		return colorful.Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return colorful.Color{}, false
	}
	return rgb(uint8(v>>16), uint8(v>>8), uint8(v)), true
}
