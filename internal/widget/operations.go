package widget

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Field names a top-level Config field by its JSON name.
type Field string

const (
	FieldSize           Field = "size"
	FieldPosition       Field = "position"
	FieldBottomOffset   Field = "bottomOffset"
	FieldColor          Field = "color"
	FieldCustomColors   Field = "customColors"
	FieldSocialLinks    Field = "socialLinks"
	FieldShowLabels     Field = "showLabels"
	FieldAnimationStyle Field = "animationStyle"
	FieldToggleIcon     Field = "toggleIcon"
	FieldBrandColors    Field = "brandColors"
	FieldPreviewURL     Field = "previewUrl"
	FieldCopyType       Field = "copyType"
)

var fields = []Field{
	FieldSize, FieldPosition, FieldBottomOffset, FieldColor, FieldCustomColors,
	FieldSocialLinks, FieldShowLabels, FieldAnimationStyle, FieldToggleIcon,
	FieldBrandColors, FieldPreviewURL, FieldCopyType,
}

// FieldNames returns every Field in declaration order.
func FieldNames() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// ParseField resolves a field name. Matching ignores case and dashes so
// "bottom-offset" and "BottomOffset" both resolve to FieldBottomOffset.
func ParseField(name string) (Field, error) {
	key := fieldKey(name)
	for _, f := range fields {
		if fieldKey(string(f)) == key {
			return f, nil
		}
	}
	return "", NewUnknownFieldError(name)
}

func fieldKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// ColorKey selects one of the three custom colours.
type ColorKey string

const (
	ColorPrimary   ColorKey = "primary"
	ColorSecondary ColorKey = "secondary"
	ColorHover     ColorKey = "hover"
)

// ColorKeys lists the custom colour slots in display order.
var ColorKeys = []ColorKey{ColorPrimary, ColorSecondary, ColorHover}

// LinkField selects one attribute of a SocialLink.
type LinkField string

const (
	LinkPlatform LinkField = "platform"
	LinkURL      LinkField = "url"
	LinkLabel    LinkField = "label"
)

// Update returns a copy of c with field replaced by value.
//
// Enum fields accept the typed constant or its string form. BottomOffset
// accepts any integer kind, an integral float, or a decimal string. Booleans
// accept bool or a strconv.ParseBool string. On error c is returned as is.
func (c Config) Update(field Field, value any) (Config, error) {
	out := c.clone()

	switch field {
	case FieldSize:
		s, err := enumValue(field, value, Size.Valid)
		if err != nil {
			return c, err
		}
		out.Size = s

	case FieldPosition:
		p, err := enumValue(field, value, Position.Valid)
		if err != nil {
			return c, err
		}
		out.Position = p

	case FieldAnimationStyle:
		a, err := enumValue(field, value, AnimationStyle.Valid)
		if err != nil {
			return c, err
		}
		out.AnimationStyle = a

	case FieldToggleIcon:
		i, err := enumValue(field, value, ToggleIcon.Valid)
		if err != nil {
			return c, err
		}
		out.ToggleIcon = i

	case FieldCopyType:
		t, err := enumValue(field, value, CopyType.Valid)
		if err != nil {
			return c, err
		}
		out.CopyType = t

	case FieldColor:
		s, ok := stringValue(value)
		if !ok {
			return c, NewTypeMismatchError(string(field), "string", value)
		}
		if !IsValidColor(s) {
			return c, NewValidationError(string(field), fmt.Sprintf("unknown colour %q", s))
		}
		out.Color = s

	case FieldBottomOffset:
		n, ok := intValue(value)
		if !ok {
			return c, NewTypeMismatchError(string(field), "integer", value)
		}
		if n < 0 || n > MaxBottomOffset {
			return c, NewValidationError(string(field), fmt.Sprintf("must be 0-%d, got %d", MaxBottomOffset, n))
		}
		out.BottomOffset = n

	case FieldShowLabels, FieldBrandColors:
		b, ok := boolValue(value)
		if !ok {
			return c, NewTypeMismatchError(string(field), "boolean", value)
		}
		if field == FieldShowLabels {
			out.ShowLabels = b
		} else {
			out.BrandColors = b
		}

	case FieldPreviewURL:
		s, ok := stringValue(value)
		if !ok {
			return c, NewTypeMismatchError(string(field), "string", value)
		}
		out.PreviewURL = s

	case FieldCustomColors:
		cc, ok := value.(CustomColors)
		if !ok {
			return c, NewTypeMismatchError(string(field), "CustomColors", value)
		}
		normalized, err := normalizeCustomColors(cc)
		if err != nil {
			return c, err
		}
		out.CustomColors = normalized

	case FieldSocialLinks:
		links, ok := value.([]SocialLink)
		if !ok {
			return c, NewTypeMismatchError(string(field), "[]SocialLink", value)
		}
		for i, l := range links {
			if !l.Platform.Valid() {
				return c, NewValidationError(string(field), fmt.Sprintf("link %d: unknown platform %q", i, l.Platform))
			}
		}
		out.SocialLinks = make([]SocialLink, len(links))
		copy(out.SocialLinks, links)

	default:
		return c, NewUnknownFieldError(string(field))
	}

	return out, nil
}

// UpdateCustomColor returns a copy of c with one custom colour replaced.
// The value must be #rgb or #rrggbb and is stored as lowercase #rrggbb.
func (c Config) UpdateCustomColor(key ColorKey, value string) (Config, error) {
	hex, err := NormalizeHex(value)
	if err != nil {
		return c, &ConfigError{
			Type:    ErrTypeValidation,
			Field:   string(FieldCustomColors) + "." + string(key),
			Message: fmt.Sprintf("invalid hex colour %q", value),
			Err:     err,
		}
	}

	out := c.clone()
	switch key {
	case ColorPrimary:
		out.CustomColors.Primary = hex
	case ColorSecondary:
		out.CustomColors.Secondary = hex
	case ColorHover:
		out.CustomColors.Hover = hex
	default:
		return c, NewUnknownFieldError(string(FieldCustomColors) + "." + string(key))
	}
	return out, nil
}

// AddLink returns a copy of c with NewLink appended.
func (c Config) AddLink() Config {
	out := c.clone()
	out.SocialLinks = append(out.SocialLinks, NewLink())
	return out
}

// RemoveLink returns a copy of c without the link at index.
// An out-of-range index returns an unchanged copy.
func (c Config) RemoveLink(index int) Config {
	out := c.clone()
	if index < 0 || index >= len(out.SocialLinks) {
		return out
	}
	out.SocialLinks = append(out.SocialLinks[:index], out.SocialLinks[index+1:]...)
	return out
}

// UpdateLink returns a copy of c with one attribute of the link at index
// replaced. An out-of-range index returns an unchanged copy and no error.
func (c Config) UpdateLink(index int, field LinkField, value string) (Config, error) {
	if index < 0 || index >= len(c.SocialLinks) {
		return c.clone(), nil
	}

	out := c.clone()
	link := &out.SocialLinks[index]
	switch field {
	case LinkPlatform:
		p := Platform(value)
		if !p.Valid() {
			return c, NewValidationError("socialLinks.platform", fmt.Sprintf("unknown platform %q", value))
		}
		link.Platform = p
	case LinkURL:
		link.URL = value
	case LinkLabel:
		link.Label = value
	default:
		return c, NewUnknownFieldError("socialLinks." + string(field))
	}
	return out, nil
}

// MoveLink returns a copy of c with the link at from moved to position to.
// Either index out of range returns an unchanged copy.
func (c Config) MoveLink(from, to int) Config {
	out := c.clone()
	n := len(out.SocialLinks)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return out
	}
	link := out.SocialLinks[from]
	if from < to {
		copy(out.SocialLinks[from:to], out.SocialLinks[from+1:to+1])
	} else {
		copy(out.SocialLinks[to+1:from+1], out.SocialLinks[to:from])
	}
	out.SocialLinks[to] = link
	return out
}

// Preset returns the colour preset with the given id.
func Preset(id string) (ColorPreset, bool) {
	return LookupPreset(id)
}

func enumValue[T ~string](field Field, value any, valid func(T) bool) (T, error) {
	s, ok := stringValue(value)
	if !ok {
		return "", NewTypeMismatchError(string(field), "string", value)
	}
	v := T(s)
	if !valid(v) {
		return "", NewValidationError(string(field), fmt.Sprintf("invalid value %q", s))
	}
	return v, nil
}

// stringValue accepts string and every named string type.
func stringValue(value any) (string, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func intValue(value any) (int, bool) {
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return n, err == nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case !rv.IsValid():
		return 0, false
	case rv.CanInt():
		return int(rv.Int()), true
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt32 {
			return 0, false
		}
		return int(u), true
	case rv.CanFloat():
		f := rv.Float()
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

func boolValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	}
	return false, false
}

func normalizeCustomColors(cc CustomColors) (CustomColors, error) {
	var err error
	out := cc
	for _, slot := range []struct {
		key ColorKey
		val *string
	}{
		{ColorPrimary, &out.Primary},
		{ColorSecondary, &out.Secondary},
		{ColorHover, &out.Hover},
	} {
		raw := *slot.val
		if *slot.val, err = NormalizeHex(raw); err != nil {
			return cc, &ConfigError{
				Type:    ErrTypeValidation,
				Field:   string(FieldCustomColors) + "." + string(slot.key),
				Message: fmt.Sprintf("invalid hex colour %q", raw),
				Err:     err,
			}
		}
	}
	return out, nil
}
