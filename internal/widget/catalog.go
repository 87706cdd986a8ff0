package widget

// ColorPreset is a named gradient offered as a shortcut to custom colours.
type ColorPreset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// ColorPresets lists the built-in themes in display order.
var ColorPresets = []ColorPreset{
	{ID: "blue", Label: "Azure", From: "#1E40AF", To: "#3B82F6"},
	{ID: "emerald", Label: "Forest", From: "#065F46", To: "#10B981"},
	{ID: "rose", Label: "Savage", From: "#9F1239", To: "#F43F5E"},
	{ID: "amber", Label: "Sunlight", From: "#92400E", To: "#F59E0B"},
	{ID: "violet", Label: "Cosmos", From: "#5B21B6", To: "#8B5CF6"},
	{ID: "indigo", Label: "Electric", From: "#3730A3", To: "#6366F1"},
	{ID: "cyan", Label: "Ice", From: "#0E7490", To: "#06B6D4"},
	{ID: "slate", Label: "Steel", From: "#1E293B", To: "#475569"},
	{ID: "orange", Label: "Fire", From: "#9A3412", To: "#F97316"},
	{ID: "pink", Label: "Neon", From: "#9D174D", To: "#EC4899"},
	{ID: "teal", Label: "Lagoon", From: "#0D9488", To: "#2DD4BF"},
	{ID: "lime", Label: "Acid", From: "#4D7C0F", To: "#A3E635"},
	{ID: "gold", Label: "Midas", From: "#A16207", To: "#EAB308"},
	{ID: "crimson", Label: "Blood", From: "#991B1B", To: "#EF4444"},
	{ID: "fuchsia", Label: "Cyber", From: "#86198F", To: "#E879F9"},
}

// LookupPreset finds a preset by id.
func LookupPreset(id string) (ColorPreset, bool) {
	for _, p := range ColorPresets {
		if p.ID == id {
			return p, true
		}
	}
	return ColorPreset{}, false
}

// ColorChoices returns every valid Color value: preset ids followed by "custom".
func ColorChoices() []string {
	out := make([]string, 0, len(ColorPresets)+1)
	for _, p := range ColorPresets {
		out = append(out, p.ID)
	}
	return append(out, ColorCustom)
}

// ColorLabel returns the display name for a Color value.
func ColorLabel(color string) string {
	if color == ColorCustom {
		return "Custom"
	}
	if p, ok := LookupPreset(color); ok {
		return p.Label
	}
	return color
}

// PlatformOption pairs a platform with its display label.
type PlatformOption struct {
	Value Platform
	Label string
}

// PlatformOptions lists supported platforms in picker order.
var PlatformOptions = []PlatformOption{
	{Value: PlatformInstagram, Label: "Instagram"},
	{Value: PlatformTwitter, Label: "Twitter"},
	{Value: PlatformFacebook, Label: "Facebook"},
	{Value: PlatformLinkedIn, Label: "LinkedIn"},
	{Value: PlatformYouTube, Label: "YouTube"},
	{Value: PlatformGitHub, Label: "GitHub"},
	{Value: PlatformWhatsApp, Label: "WhatsApp"},
	{Value: PlatformEmail, Label: "Email"},
	{Value: PlatformPhone, Label: "Phone"},
}

// PlatformLabel returns the display label for a platform.
func PlatformLabel(p Platform) string {
	for _, opt := range PlatformOptions {
		if opt.Value == p {
			return opt.Label
		}
	}
	return string(p)
}

// ToggleIconOption pairs a toggle icon with its label and glyph.
type ToggleIconOption struct {
	Value ToggleIcon
	Label string
	Glyph string
}

// ToggleIconOptions lists toggle icons in picker order.
var ToggleIconOptions = []ToggleIconOption{
	{Value: IconShare, Label: "Share", Glyph: "📤"},
	{Value: IconMessage, Label: "Message", Glyph: "💬"},
	{Value: IconZap, Label: "Zap", Glyph: "⚡"},
	{Value: IconSparkles, Label: "Sparkles", Glyph: "✨"},
	{Value: IconGrid, Label: "Grid", Glyph: "⚏"},
}

// ToggleIconGlyph returns the glyph for an icon, or "?" if unknown.
func ToggleIconGlyph(icon ToggleIcon) string {
	for _, opt := range ToggleIconOptions {
		if opt.Value == icon {
			return opt.Glyph
		}
	}
	return "?"
}

// Sizes, Positions, AnimationStyles and CopyTypes list enum members in display order.
var (
	Sizes           = []Size{SizeSmall, SizeMedium, SizeLarge, SizeXL}
	Positions       = []Position{PositionBottomRight, PositionBottomLeft}
	AnimationStyles = []AnimationStyle{AnimationFan, AnimationStack, AnimationGrid}
	CopyTypes       = []CopyType{CopyComponent, CopyPage}
)

// Valid reports whether s is a declared Size.
func (s Size) Valid() bool { return contains(Sizes, s) }

// Valid reports whether p is a declared Position.
func (p Position) Valid() bool { return contains(Positions, p) }

// Valid reports whether a is a declared AnimationStyle.
func (a AnimationStyle) Valid() bool { return contains(AnimationStyles, a) }

// Valid reports whether t is a declared CopyType.
func (t CopyType) Valid() bool { return contains(CopyTypes, t) }

// Valid reports whether i is a declared ToggleIcon.
func (i ToggleIcon) Valid() bool {
	for _, opt := range ToggleIconOptions {
		if opt.Value == i {
			return true
		}
	}
	return false
}

// Valid reports whether p is a declared Platform.
func (p Platform) Valid() bool {
	for _, opt := range PlatformOptions {
		if opt.Value == p {
			return true
		}
	}
	return false
}

// IsValidColor reports whether color is a preset id or "custom".
func IsValidColor(color string) bool {
	if color == ColorCustom {
		return true
	}
	_, ok := LookupPreset(color)
	return ok
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Cycle returns the element after (or before, when delta is negative) current
// in list, wrapping at both ends. An unknown current yields list[0].
func Cycle[T comparable](list []T, current T, delta int) T {
	for i, item := range list {
		if item == current {
			n := len(list)
			return list[((i+delta)%n+n)%n]
		}
	}
	return list[0]
}
