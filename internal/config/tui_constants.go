package config

// Layout constants.
const (
	// CellAspect is how many horizontal cells match one row in height.
	CellAspect = 2

	// MinDialRadius is the smallest dial radius in rows.
	MinDialRadius = 4

	// MaxDialRadius caps the dial on large terminals.
	MaxDialRadius = 14

	// HeaderRows is the number of rows above the dial (label and spacer).
	HeaderRows = 3

	// FooterRows is the number of rows below the dial (progress and status).
	FooterRows = 3

	// ProgressWidth is the preferred width of the countdown bar.
	ProgressWidth = 30
)

// Display glyphs.
const (
	RimGlyph    = '·'
	MarkGlyph   = '•'
	HandGlyph   = '█'
	PivotGlyph  = '◉'
	ShadowGlyph = '░'

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
