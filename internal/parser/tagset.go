package parser

import "assparse/internal/parts"

// Value grammars shared by the tag definitions below.
var (
	decimalValue         ruleFunc = (*run).parseDecimal
	unsignedDecimalValue ruleFunc = (*run).parseUnsignedDecimal
	colorValue           ruleFunc = (*run).parseColor
	alphaValue           ruleFunc = (*run).parseAlpha
	toggleValue          ruleFunc = (*run).parseEnableDisable
)

var (
	tagI = optional("i", toggleValue, func(v *bool) parts.Part { return parts.Italic{Value: v} })
	tagU = optional("u", toggleValue, func(v *bool) parts.Part { return parts.Underline{Value: v} })
	tagS = optional("s", toggleValue, func(v *bool) parts.Part { return parts.StrikeThrough{Value: v} })

	tagBord  = optional("bord", decimalValue, func(v *float64) parts.Part { return parts.Border{Value: v} })
	tagXBord = optional("xbord", decimalValue, func(v *float64) parts.Part { return parts.BorderX{Value: v} })
	tagYBord = optional("ybord", decimalValue, func(v *float64) parts.Part { return parts.BorderY{Value: v} })
	tagShad  = optional("shad", decimalValue, func(v *float64) parts.Part { return parts.Shadow{Value: v} })
	tagXShad = optional("xshad", decimalValue, func(v *float64) parts.Part { return parts.ShadowX{Value: v} })
	tagYShad = optional("yshad", decimalValue, func(v *float64) parts.Part { return parts.ShadowY{Value: v} })
	tagBe    = optional("be", decimalValue, func(v *float64) parts.Part { return parts.Blur{Value: v} })
	tagBlur  = optional("blur", decimalValue, func(v *float64) parts.Part { return parts.GaussianBlur{Value: v} })

	tagFn = nameTag("fn", func(v *string) parts.Part { return parts.FontName{Value: v} })
	tagR  = nameTag("r", func(v *string) parts.Part { return parts.Reset{Value: v} })

	tagFs   = optional("fs", unsignedDecimalValue, func(v *float64) parts.Part { return parts.FontSize{Value: v} })
	tagFscx = optional("fscx", decimalValue, func(v *float64) parts.Part { return parts.FontScaleX{Value: scaled(v, 100)} })
	tagFscy = optional("fscy", decimalValue, func(v *float64) parts.Part { return parts.FontScaleY{Value: scaled(v, 100)} })
	tagFsp  = optional("fsp", decimalValue, func(v *float64) parts.Part { return parts.LetterSpacing{Value: v} })

	tagFr  = optional("fr", decimalValue, func(v *float64) parts.Part { return parts.RotateZ{Value: v} })
	tagFrx = optional("frx", decimalValue, func(v *float64) parts.Part { return parts.RotateX{Value: v} })
	tagFry = optional("fry", decimalValue, func(v *float64) parts.Part { return parts.RotateY{Value: v} })
	tagFrz = optional("frz", decimalValue, func(v *float64) parts.Part { return parts.RotateZ{Value: v} })
	tagFax = optional("fax", decimalValue, func(v *float64) parts.Part { return parts.SkewX{Value: v} })
	tagFay = optional("fay", decimalValue, func(v *float64) parts.Part { return parts.SkewY{Value: v} })

	tagC  = optional("c", colorValue, func(v *parts.Color) parts.Part { return parts.PrimaryColor{Value: v} })
	tag1c = optional("1c", colorValue, func(v *parts.Color) parts.Part { return parts.PrimaryColor{Value: v} })
	tag2c = optional("2c", colorValue, func(v *parts.Color) parts.Part { return parts.SecondaryColor{Value: v} })
	tag3c = optional("3c", colorValue, func(v *parts.Color) parts.Part { return parts.OutlineColor{Value: v} })
	tag4c = optional("4c", colorValue, func(v *parts.Color) parts.Part { return parts.ShadowColor{Value: v} })

	tagAlpha = optional("alpha", alphaValue, func(v *float64) parts.Part { return parts.Alpha{Value: v} })
	tag1a    = optional("1a", alphaValue, func(v *float64) parts.Part { return parts.PrimaryAlpha{Value: v} })
	tag2a    = optional("2a", alphaValue, func(v *float64) parts.Part { return parts.SecondaryAlpha{Value: v} })
	tag3a    = optional("3a", alphaValue, func(v *float64) parts.Part { return parts.OutlineAlpha{Value: v} })
	tag4a    = optional("4a", alphaValue, func(v *float64) parts.Part { return parts.ShadowAlpha{Value: v} })

	// Karaoke durations are centiseconds.
	tagK         = required("k", decimalValue, func(v float64) parts.Part { return parts.ColorKaraoke{Duration: v / 100} })
	tagSweepingK = required("K", decimalValue, func(v float64) parts.Part { return parts.SweepingColorKaraoke{Duration: v / 100} })
	tagKf        = required("kf", decimalValue, func(v float64) parts.Part { return parts.SweepingColorKaraoke{Duration: v / 100} })
	tagKo        = required("ko", decimalValue, func(v float64) parts.Part { return parts.OutlineKaraoke{Duration: v / 100} })

	tagP   = required("p", decimalValue, func(v float64) parts.Part { return parts.DrawingMode{Scale: v} })
	tagPbo = required("pbo", decimalValue, func(v float64) parts.Part { return parts.DrawingBaselineOffset{Value: v} })

	tagPos = parenthesized("pos", 2, func(v []float64) parts.Part { return parts.Position{X: v[0], Y: v[1]} })
	tagOrg = parenthesized("org", 2, func(v []float64) parts.Part { return parts.RotationOrigin{X: v[0], Y: v[1]} })
	tagFad = parenthesized("fad", 2, func(v []float64) parts.Part {
		return parts.Fade{Start: seconds(v[0]), End: seconds(v[1])}
	})
	tagFade = parenthesized("fade", 7, func(v []float64) parts.Part {
		return parts.ComplexFade{
			A1: 1 - v[0]/255, A2: 1 - v[1]/255, A3: 1 - v[2]/255,
			T1: seconds(v[3]), T2: seconds(v[4]), T3: seconds(v[5]), T4: seconds(v[6]),
		}
	})

	tagClip  = clipTag("clip", true)
	tagIClip = clipTag("iclip", false)
)
