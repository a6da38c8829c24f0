package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Tier groups tile values into display buckets.
type Tier int

const (
	TierEmpty  Tier = iota // 0
	TierSmall              // 2, 4
	TierMedium             // 8
	TierLarge              // 16
	TierHuge               // 32 and up

	tierCount
)

// TileTier returns the display tier of a tile value.
func TileTier(v int) Tier {
	switch {
	case v <= 0:
		return TierEmpty
	case v <= 4:
		return TierSmall
	case v <= 8:
		return TierMedium
	case v <= 16:
		return TierLarge
	default:
		return TierHuge
	}
}

// Palette assigns a color to each tier.
type Palette [tierCount]core.Color

// DefaultPalette returns the built-in tier colors.
func DefaultPalette() Palette {
	return Palette{
		TierEmpty:  core.ColorGray,
		TierSmall:  core.ColorYellow,
		TierMedium: core.ColorCyan,
		TierLarge:  core.ColorMagenta,
		TierHuge:   core.ColorBrightRed,
	}
}

// Color returns the color for a tile value.
func (p Palette) Color(v int) core.Color {
	return p[TileTier(v)]
}
