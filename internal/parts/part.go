package parts

// Part is one element of a parsed dialogue line.
type Part interface {
	// Kind returns the stable variant name, e.g. "border" or "primaryColor".
	Kind() string
	part()
}

// Text is a run of literal dialogue text.
type Text struct {
	Value string `json:"value" yaml:"value"`
}

// Comment is content inside a tag block that is not a recognised tag.
type Comment struct {
	Value string `json:"value" yaml:"value"`
}

// NewLine is a hard line break (\N).
type NewLine struct{}

// Italic toggles italics.
type Italic struct {
	Value *bool `json:"value" yaml:"value"`
}

// Bold toggles bold or selects an explicit font weight. When both fields are
// nil the style default applies.
type Bold struct {
	Enabled *bool `json:"enabled" yaml:"enabled"`
	Weight  *int  `json:"weight" yaml:"weight"`
}

// Underline toggles underlining.
type Underline struct {
	Value *bool `json:"value" yaml:"value"`
}

// StrikeThrough toggles strike-through.
type StrikeThrough struct {
	Value *bool `json:"value" yaml:"value"`
}

// Border sets the outline width on both axes.
type Border struct {
	Value *float64 `json:"value" yaml:"value"`
}

// BorderX sets the horizontal outline width.
type BorderX struct {
	Value *float64 `json:"value" yaml:"value"`
}

// BorderY sets the vertical outline width.
type BorderY struct {
	Value *float64 `json:"value" yaml:"value"`
}

// Shadow sets the shadow depth on both axes.
type Shadow struct {
	Value *float64 `json:"value" yaml:"value"`
}

// ShadowX sets the horizontal shadow depth.
type ShadowX struct {
	Value *float64 `json:"value" yaml:"value"`
}

// ShadowY sets the vertical shadow depth.
type ShadowY struct {
	Value *float64 `json:"value" yaml:"value"`
}

// Blur sets edge blur strength (\be).
type Blur struct {
	Value *float64 `json:"value" yaml:"value"`
}

// GaussianBlur sets gaussian blur strength (\blur).
type GaussianBlur struct {
	Value *float64 `json:"value" yaml:"value"`
}

// FontName selects a font family.
type FontName struct {
	Value *string `json:"value" yaml:"value"`
}

// FontSize sets the font size.
type FontSize struct {
	Value *float64 `json:"value" yaml:"value"`
}

// FontScaleX sets horizontal font scaling as a fraction (1 = 100%).
type FontScaleX struct {
	Value *float64 `json:"value" yaml:"value"`
}

// FontScaleY sets vertical font scaling as a fraction (1 = 100%).
type FontScaleY struct {
	Value *float64 `json:"value" yaml:"value"`
}

// LetterSpacing sets extra spacing between characters.
type LetterSpacing struct {
	Value *float64 `json:"value" yaml:"value"`
}

// RotateX sets rotation around the X axis in degrees.
type RotateX struct {
	Value *float64 `json:"value" yaml:"value"`
}

// RotateY sets rotation around the Y axis in degrees.
type RotateY struct {
	Value *float64 `json:"value" yaml:"value"`
}

// RotateZ sets rotation around the Z axis in degrees.
type RotateZ struct {
	Value *float64 `json:"value" yaml:"value"`
}

// SkewX sets horizontal shearing.
type SkewX struct {
	Value *float64 `json:"value" yaml:"value"`
}

// SkewY sets vertical shearing.
type SkewY struct {
	Value *float64 `json:"value" yaml:"value"`
}

// PrimaryColor sets the fill color.
type PrimaryColor struct {
	Value *Color `json:"value" yaml:"value"`
}

// SecondaryColor sets the karaoke pre-highlight color.
type SecondaryColor struct {
	Value *Color `json:"value" yaml:"value"`
}

// OutlineColor sets the border color.
type OutlineColor struct {
	Value *Color `json:"value" yaml:"value"`
}

// ShadowColor sets the shadow color.
type ShadowColor struct {
	Value *Color `json:"value" yaml:"value"`
}

// Alpha sets the opacity of every color at once.
type Alpha struct {
	Value *float64 `json:"value" yaml:"value"`
}

// PrimaryAlpha sets the fill opacity.
type PrimaryAlpha struct {
	Value *float64 `json:"value" yaml:"value"`
}

// SecondaryAlpha sets the karaoke pre-highlight opacity.
type SecondaryAlpha struct {
	Value *float64 `json:"value" yaml:"value"`
}

// OutlineAlpha sets the border opacity.
type OutlineAlpha struct {
	Value *float64 `json:"value" yaml:"value"`
}

// ShadowAlpha sets the shadow opacity.
type ShadowAlpha struct {
	Value *float64 `json:"value" yaml:"value"`
}

func (Text) Kind() string           { return "text" }
func (Comment) Kind() string        { return "comment" }
func (NewLine) Kind() string        { return "newLine" }
func (Italic) Kind() string         { return "italic" }
func (Bold) Kind() string           { return "bold" }
func (Underline) Kind() string      { return "underline" }
func (StrikeThrough) Kind() string  { return "strikeThrough" }
func (Border) Kind() string         { return "border" }
func (BorderX) Kind() string        { return "borderX" }
func (BorderY) Kind() string        { return "borderY" }
func (Shadow) Kind() string         { return "shadow" }
func (ShadowX) Kind() string        { return "shadowX" }
func (ShadowY) Kind() string        { return "shadowY" }
func (Blur) Kind() string           { return "blur" }
func (GaussianBlur) Kind() string   { return "gaussianBlur" }
func (FontName) Kind() string       { return "fontName" }
func (FontSize) Kind() string       { return "fontSize" }
func (FontScaleX) Kind() string     { return "fontScaleX" }
func (FontScaleY) Kind() string     { return "fontScaleY" }
func (LetterSpacing) Kind() string  { return "letterSpacing" }
func (RotateX) Kind() string        { return "rotateX" }
func (RotateY) Kind() string        { return "rotateY" }
func (RotateZ) Kind() string        { return "rotateZ" }
func (SkewX) Kind() string          { return "skewX" }
func (SkewY) Kind() string          { return "skewY" }
func (PrimaryColor) Kind() string   { return "primaryColor" }
func (SecondaryColor) Kind() string { return "secondaryColor" }
func (OutlineColor) Kind() string   { return "outlineColor" }
func (ShadowColor) Kind() string    { return "shadowColor" }
func (Alpha) Kind() string          { return "alpha" }
func (PrimaryAlpha) Kind() string   { return "primaryAlpha" }
func (SecondaryAlpha) Kind() string { return "secondaryAlpha" }
func (OutlineAlpha) Kind() string   { return "outlineAlpha" }
func (ShadowAlpha) Kind() string    { return "shadowAlpha" }

func (Text) part()           {}
func (Comment) part()        {}
func (NewLine) part()        {}
func (Italic) part()         {}
func (Bold) part()           {}
func (Underline) part()      {}
func (StrikeThrough) part()  {}
func (Border) part()         {}
func (BorderX) part()        {}
func (BorderY) part()        {}
func (Shadow) part()         {}
func (ShadowX) part()        {}
func (ShadowY) part()        {}
func (Blur) part()           {}
func (GaussianBlur) part()   {}
func (FontName) part()       {}
func (FontSize) part()       {}
func (FontScaleX) part()     {}
func (FontScaleY) part()     {}
func (LetterSpacing) part()  {}
func (RotateX) part()        {}
func (RotateY) part()        {}
func (RotateZ) part()        {}
func (SkewX) part()          {}
func (SkewY) part()          {}
func (PrimaryColor) part()   {}
func (SecondaryColor) part() {}
func (OutlineColor) part()   {}
func (ShadowColor) part()    {}
func (Alpha) part()          {}
func (PrimaryAlpha) part()   {}
func (SecondaryAlpha) part() {}
func (OutlineAlpha) part()   {}
func (ShadowAlpha) part()    {}
