package widget

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	cfg := Default()
	if got, want := cfg.Summary(), "3 links • md • bottom-right • Azure"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	cfg = cfg.RemoveLink(0).RemoveLink(0)
	cfg, _ = cfg.Update(FieldColor, "custom")
	if got, want := cfg.Summary(), "1 link • md • bottom-right • Custom"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestFormatCompact(t *testing.T) {
	got := Default().FormatCompact()

	for _, want := range []string{
		"Button:  md, bottom-right +24px",
		"Theme:   Azure (#1E40AF → #3B82F6)",
		"Links:   Instagram, Twitter, LinkedIn",
		"Output:  component",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCompact() missing %q in:\n%s", want, got)
		}
	}

	empty := Default()
	empty.SocialLinks = nil
	if !strings.Contains(empty.FormatCompact(), "Links:   (none)") {
		t.Error("FormatCompact() with no links should say (none)")
	}
}

func TestFormatDetailed(t *testing.T) {
	cfg := Default()
	cfg.PreviewURL = "https://example.com"
	cfg.Color = ColorCustom

	got := cfg.FormatDetailed()
	for _, want := range []string{
		"FLOATING SOCIAL BUTTON CONFIGURATION",
		"=== Appearance ===",
		"Toggle Icon: 📤 share",
		"Hover:        #4338ca",
		"3. LinkedIn",
		"Preview URL: https://example.com",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatDetailed() missing %q", want)
		}
	}
}

func TestFormatDiff(t *testing.T) {
	old := Default()
	changed, _ := old.Update(FieldSize, SizeLarge)

	got, err := FormatDiff(old, changed)
	if err != nil {
		t.Fatalf("FormatDiff() error = %v", err)
	}
	if !strings.Contains(got, `size: "md" → "lg"`) {
		t.Errorf("FormatDiff() = %q, want size change", got)
	}
	if strings.Contains(got, "position") {
		t.Errorf("FormatDiff() lists unchanged field:\n%s", got)
	}

	same, err := FormatDiff(old, old)
	if err != nil {
		t.Fatalf("FormatDiff() error = %v", err)
	}
	if !strings.Contains(same, "no differences") {
		t.Error("FormatDiff() of identical configs should report no differences")
	}
}
