package layout

import (
	"fmt"
	"strings"
)

const (
	StyleName          = "ResumeName"
	StyleContact       = "ContactInfo"
	StyleSectionHeader = "SectionHeader"
	StyleRoleLeft      = "RoleLeft"
	StyleDateRight     = "DateRight"
	StyleLocationLeft  = "LocationLeft"
	StyleBullet        = "BulletText"
	StyleSkills        = "SkillsText"
	StyleSummary       = "Summary"
	StyleProjectName   = "ProjectName"
	StyleProjectDetail = "ProjectDetail"
)

const fontFamily = "Helvetica"

// PageSize is a named page in points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	Letter = PageSize{Name: "letter", Width: 612, Height: 792}
	A4     = PageSize{Name: "a4", Width: 595.28, Height: 841.89}
)

// PageSizeByName resolves "letter" or "a4", case-insensitively.
func PageSizeByName(name string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "letter", "":
		return Letter, nil
	case "a4":
		return A4, nil
	default:
		return PageSize{}, fmt.Errorf("unsupported page size %q (expected letter|a4)", name)
	}
}

// Geometry is a page with a uniform margin on all sides.
type Geometry struct {
	Page   PageSize
	Margin float64
}

func (g Geometry) ContentWidth() float64 {
	return g.Page.Width - 2*g.Margin
}

func (g Geometry) ContentHeight() float64 {
	return g.Page.Height - 2*g.Margin
}

// Theme bundles every constant the assembler and paging engine share.
type Theme struct {
	Styles   StyleSheet
	Geometry Geometry

	RuleThickness    float64
	RuleSpaceAfter   float64
	ItemGap          float64
	LeftColumnRatio  float64
	ContactSeparator string
}

// DefaultTheme builds the resume theme for the given geometry.
func DefaultTheme(g Geometry) Theme {
	ss, err := NewStyleSheet(defaultStyles()...)
	if err != nil {
		panic(err)
	}
	return Theme{
		Styles:           ss,
		Geometry:         g,
		RuleThickness:    0.5,
		RuleSpaceAfter:   2,
		ItemGap:          3,
		LeftColumnRatio:  0.72,
		ContactSeparator: " | ",
	}
}

func defaultStyles() []Style {
	const (
		nameSize     = 16
		contactSize  = 9
		headerSize   = 10.5
		roleSize     = 10
		locationSize = 9
		bodySize     = 9
	)
	return []Style{
		{Name: StyleName, Font: fontFamily, Bold: true, Size: nameSize, Leading: nameSize + 2, Align: AlignCenter, SpaceAfter: 1},
		{Name: StyleContact, Font: fontFamily, Size: contactSize, Leading: contactSize + 2, Align: AlignCenter, SpaceAfter: 2},
		{Name: StyleSectionHeader, Font: fontFamily, Bold: true, Size: headerSize, Leading: headerSize + 2, SpaceBefore: 4},
		{Name: StyleRoleLeft, Font: fontFamily, Bold: true, Size: roleSize, Leading: roleSize + 2},
		{Name: StyleDateRight, Font: fontFamily, Size: roleSize, Leading: roleSize + 2, Align: AlignRight},
		{Name: StyleLocationLeft, Font: fontFamily, Italic: true, Size: locationSize, Leading: locationSize + 2},
		{Name: StyleBullet, Font: fontFamily, Size: bodySize, Leading: bodySize + 2, SpaceBefore: 1, LeftIndent: 6, FirstLineIndent: -6},
		{Name: StyleSkills, Font: fontFamily, Size: bodySize, Leading: bodySize + 2},
		{Name: StyleSummary, Font: fontFamily, Size: bodySize, Leading: bodySize + 2},
		{Name: StyleProjectName, Font: fontFamily, Bold: true, Size: roleSize, Leading: roleSize + 2},
		{Name: StyleProjectDetail, Font: fontFamily, Size: bodySize, Leading: bodySize + 2},
	}
}
