// Package codegen renders a widget configuration as JSX source that mounts
// the FloatingSocialButton component.
//
// Output is deterministic: equal configurations always produce byte-identical
// text, and no trailing newline is emitted.
package codegen

import (
	"fmt"
	"strings"

	"github.com/muurk/flochat/internal/widget"
)

// PackageName is the npm package that ships the component.
const PackageName = "@flochat/react"

// InstallCommand installs the component package.
const InstallCommand = "npm i " + PackageName

// Generate renders cfg in the mode selected by cfg.CopyType.
func Generate(cfg widget.Config) string {
	if cfg.CopyType == widget.CopyPage {
		return Page(cfg)
	}
	return Component(cfg)
}

// GenerateAs renders cfg in the given mode regardless of cfg.CopyType.
func GenerateAs(cfg widget.Config, mode widget.CopyType) string {
	cfg.CopyType = mode
	return Generate(cfg)
}

// Component renders the bare <FloatingSocialButton ... /> element.
func Component(cfg widget.Config) string {
	var b strings.Builder

	b.WriteString("<FloatingSocialButton\n")
	fmt.Fprintf(&b, "  size={\"%s\"}\n", cfg.Size)
	fmt.Fprintf(&b, "  position=\"%s\"\n", cfg.Position)
	fmt.Fprintf(&b, "  bottomOffset={%d}\n", cfg.BottomOffset)
	fmt.Fprintf(&b, "  color=\"%s\"\n", cfg.Color)

	if cfg.IsCustomColor() {
		b.WriteString("  customColors={{\n")
		fmt.Fprintf(&b, "    primary: '%s',\n", quote(cfg.CustomColors.Primary))
		fmt.Fprintf(&b, "    secondary: '%s',\n", quote(cfg.CustomColors.Secondary))
		fmt.Fprintf(&b, "    hover: '%s'\n", quote(cfg.CustomColors.Hover))
		b.WriteString("  }}\n")
	}

	if len(cfg.SocialLinks) == 0 {
		b.WriteString("  socialLinks={[]}\n")
	} else {
		b.WriteString("  socialLinks={[\n")
		entries := make([]string, len(cfg.SocialLinks))
		for i, l := range cfg.SocialLinks {
			entries[i] = fmt.Sprintf("    { platform: '%s', url: '%s', label: '%s' }",
				quote(string(l.Platform)), quote(l.URL), quote(l.Label))
		}
		b.WriteString(strings.Join(entries, ",\n"))
		b.WriteString("\n  ]}\n")
	}

	fmt.Fprintf(&b, "  showLabels={%t}\n", cfg.ShowLabels)
	fmt.Fprintf(&b, "  animationStyle=\"%s\"\n", cfg.AnimationStyle)
	fmt.Fprintf(&b, "  toggleIcon=\"%s\"\n", cfg.ToggleIcon)
	fmt.Fprintf(&b, "  brandColors={%t}\n", cfg.BrandColors)
	b.WriteString("/>")

	return b.String()
}

// Page renders a complete page module that imports and mounts the component.
func Page(cfg widget.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "import { FloatingSocialButton } from '%s'\n", PackageName)
	b.WriteString("\n")
	b.WriteString("export default function Page() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <main>\n")
	b.WriteString(Component(cfg))
	b.WriteString("\n")
	b.WriteString("    </main>\n")
	b.WriteString("  )\n")
	b.WriteString("}")

	return b.String()
}

var quoter = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// quote escapes s for a single-quoted JS string literal.
func quote(s string) string {
	return quoter.Replace(s)
}
