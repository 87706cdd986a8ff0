package widget

// Platform identifies the social network a link points to.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformGitHub    Platform = "github"
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformEmail     Platform = "email"
	PlatformPhone     Platform = "phone"
)

// Size is the rendered size of the toggle button.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
	SizeXL     Size = "xl"
)

// Position is the screen corner the button is anchored to.
type Position string

const (
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
)

// AnimationStyle controls how the social links unfold from the toggle.
type AnimationStyle string

const (
	AnimationFan   AnimationStyle = "fan"
	AnimationStack AnimationStyle = "stack"
	AnimationGrid  AnimationStyle = "grid"
)

// ToggleIcon is the glyph shown on the collapsed button.
type ToggleIcon string

const (
	IconShare    ToggleIcon = "share"
	IconMessage  ToggleIcon = "message"
	IconZap      ToggleIcon = "zap"
	IconSparkles ToggleIcon = "sparkles"
	IconGrid     ToggleIcon = "grid"
)

// CopyType selects the code generator output mode.
type CopyType string

const (
	CopyComponent CopyType = "component"
	CopyPage      CopyType = "page"
)

// ColorCustom is the Color value that activates CustomColors.
const ColorCustom = "custom"

// DefaultBottomOffset is the initial distance from the bottom edge in pixels.
const DefaultBottomOffset = 24

// MaxBottomOffset bounds BottomOffset; larger values push the button off most viewports.
const MaxBottomOffset = 1000

// SocialLink is one entry in the button's link list.
type SocialLink struct {
	Platform Platform `json:"platform" validate:"platform"`
	URL      string   `json:"url"`
	Label    string   `json:"label"`
}

// CustomColors holds the user-defined palette used when Color is "custom".
type CustomColors struct {
	Primary   string `json:"primary" validate:"hex_color"`
	Secondary string `json:"secondary" validate:"hex_color"`
	Hover     string `json:"hover" validate:"hex_color"`
}

// Config is the complete widget configuration edited by the wizard.
//
// Config is a value type: every mutating operation returns a new Config and
// leaves the receiver untouched, so a snapshot handed to a renderer can never
// change underneath it.
type Config struct {
	Size           Size           `json:"size" validate:"oneof=sm md lg xl"`
	Position       Position       `json:"position" validate:"oneof=bottom-right bottom-left"`
	BottomOffset   int            `json:"bottomOffset" validate:"min=0,max=1000"`
	Color          string         `json:"color" validate:"preset_color"`
	CustomColors   CustomColors   `json:"customColors"`
	SocialLinks    []SocialLink   `json:"socialLinks" validate:"dive"`
	ShowLabels     bool           `json:"showLabels"`
	AnimationStyle AnimationStyle `json:"animationStyle" validate:"oneof=fan stack grid"`
	ToggleIcon     ToggleIcon     `json:"toggleIcon" validate:"oneof=share message zap sparkles grid"`
	BrandColors    bool           `json:"brandColors"`
	PreviewURL     string         `json:"previewUrl"`
	CopyType       CopyType       `json:"copyType" validate:"oneof=component page"`
}

// NewLink returns the link appended by AddLink.
func NewLink() SocialLink {
	return SocialLink{
		Platform: PlatformInstagram,
		URL:      "https://instagram.com/yourhandle",
		Label:    "Instagram",
	}
}

// Default returns the configuration a new wizard session starts with.
func Default() Config {
	return Config{
		Size:         SizeMedium,
		Position:     PositionBottomRight,
		BottomOffset: DefaultBottomOffset,
		Color:        ColorPresets[0].ID,
		CustomColors: CustomColors{
			Primary:   "#6366f1",
			Secondary: "#4f46e5",
			Hover:     "#4338ca",
		},
		SocialLinks: []SocialLink{
			{Platform: PlatformInstagram, URL: "https://instagram.com/yourhandle", Label: "Instagram"},
			{Platform: PlatformTwitter, URL: "https://twitter.com/yourhandle", Label: "Twitter"},
			{Platform: PlatformLinkedIn, URL: "https://linkedin.com/in/yourprofile", Label: "LinkedIn"},
		},
		ShowLabels:     false,
		AnimationStyle: AnimationStack,
		ToggleIcon:     IconShare,
		BrandColors:    false,
		PreviewURL:     "",
		CopyType:       CopyComponent,
	}
}

// IsCustomColor reports whether CustomColors is in effect.
func (c Config) IsCustomColor() bool {
	return c.Color == ColorCustom
}

// Gradient returns the two endpoint colours the button is painted with.
// For a preset this is the preset's pair; for "custom" it is primary→secondary.
// An unknown colour falls back to the first preset.
func (c Config) Gradient() (from, to string) {
	if c.IsCustomColor() {
		return c.CustomColors.Primary, c.CustomColors.Secondary
	}
	if p, ok := LookupPreset(c.Color); ok {
		return p.From, p.To
	}
	return ColorPresets[0].From, ColorPresets[0].To
}

// clone returns a copy whose SocialLinks slice does not alias c's.
func (c Config) clone() Config {
	out := c
	if c.SocialLinks != nil {
		out.SocialLinks = make([]SocialLink, len(c.SocialLinks))
		copy(out.SocialLinks, c.SocialLinks)
	}
	return out
}
