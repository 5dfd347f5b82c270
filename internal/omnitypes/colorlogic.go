package omnitypes

import "strconv"

// ColorLogicSpeed is a light's show-cycling speed setting.
type ColorLogicSpeed int

const (
	ColorLogicSpeedOneSixteenth ColorLogicSpeed = 0
	ColorLogicSpeedOneEighth    ColorLogicSpeed = 1
	ColorLogicSpeedOneQuarter   ColorLogicSpeed = 2
	ColorLogicSpeedOneHalf      ColorLogicSpeed = 3
	ColorLogicSpeedOneTimes     ColorLogicSpeed = 4
	ColorLogicSpeedTwoTimes     ColorLogicSpeed = 5
	ColorLogicSpeedFourTimes    ColorLogicSpeed = 6
	ColorLogicSpeedEightTimes   ColorLogicSpeed = 7
	ColorLogicSpeedSixteenTimes ColorLogicSpeed = 8
)

// ColorLogicBrightness is a light's output brightness setting.
type ColorLogicBrightness int

const (
	ColorLogicBrightnessTwentyPercent    ColorLogicBrightness = 0
	ColorLogicBrightnessFortyPercent     ColorLogicBrightness = 1
	ColorLogicBrightnessSixtyPercent     ColorLogicBrightness = 2
	ColorLogicBrightnessEightyPercent    ColorLogicBrightness = 3
	ColorLogicBrightnessOneHundredPercent ColorLogicBrightness = 4
)

// ColorLogicPowerState is a light's current power/transition state.
type ColorLogicPowerState int

const (
	ColorLogicPowerStateOff                 ColorLogicPowerState = 0
	ColorLogicPowerStatePoweringOff         ColorLogicPowerState = 1
	ColorLogicPowerStateChangingShow        ColorLogicPowerState = 3
	ColorLogicPowerStateFifteenSecondsWhite ColorLogicPowerState = 4
	ColorLogicPowerStateActive              ColorLogicPowerState = 6
	ColorLogicPowerStateCooldown            ColorLogicPowerState = 7
)

// IsTransitional reports whether the light is mid-transition and its
// show/speed/brightness settings should not be trusted as steady-state.
func (p ColorLogicPowerState) IsTransitional() bool {
	switch p {
	case ColorLogicPowerStateFifteenSecondsWhite, ColorLogicPowerStateChangingShow,
		ColorLogicPowerStatePoweringOff, ColorLogicPowerStateCooldown:
		return true
	default:
		return false
	}
}

// ColorLogicLightType identifies the physical light fixture model,
// which in turn determines which show table and which of speed/
// brightness are meaningful for it.
type ColorLogicLightType string

const (
	ColorLogicLightTypeUCL          ColorLogicLightType = "COLOR_LOGIC_UCL"
	ColorLogicLightTypeFourZero     ColorLogicLightType = "COLOR_LOGIC_4_0"
	ColorLogicLightTypeTwoFive      ColorLogicLightType = "COLOR_LOGIC_2_5"
	ColorLogicLightTypeSAM          ColorLogicLightType = "COLOR_LOGIC_SAM"
	ColorLogicLightTypePentairColor ColorLogicLightType = "CL_P_COLOR"
	ColorLogicLightTypeZodiacColor  ColorLogicLightType = "CL_Z_COLOR"
)

// SupportsSpeedAndBrightness reports whether t is one of the fixture
// models whose speed/brightness settings are meaningful. All other
// models always report ColorLogicSpeedOneTimes /
// ColorLogicBrightnessOneHundredPercent.
func (t ColorLogicLightType) SupportsSpeedAndBrightness() bool {
	switch t {
	case ColorLogicLightTypeSAM, ColorLogicLightTypeTwoFive,
		ColorLogicLightTypeFourZero, ColorLogicLightTypeUCL:
		return true
	default:
		return false
	}
}

// ColorLogicShow is the common representation for a show selection
// across every light model's own show table: a numeric value plus the
// display name resolved for the light type/firmware generation it was
// read from.
type ColorLogicShow struct {
	Value int
	Name  string
}

// colorLogicShow25And40 is shared by the 2.5 and 4.0 fixture
// generations: 12 entries, identical across both.
var colorLogicShow25And40 = []string{
	"Voodoo Lounge", "Deep Blue Sea", "Afternoon Sky", "Emerald",
	"Sangria", "Cloud White", "Twilight", "Tranquility",
	"Gemstone", "USA", "Mardi Gras", "Cool Cabaret",
}

// colorLogicShowUCL is the first-generation UCL show table: 17 entries.
var colorLogicShowUCL = []string{
	"Voodoo Lounge", "Deep Blue Sea", "Royal Blue", "Afternoon Sky",
	"Aqua Green", "Emerald", "Cloud White", "Warm Red",
	"Flamingo", "Vivid Violet", "Sangria", "Twilight",
	"Tranquility", "Gemstone", "USA", "Mardi Gras", "Cool Cabaret",
}

// colorLogicShowUCLV2 extends colorLogicShowUCL to 27 entries for
// V2-active UCL fixtures.
var colorLogicShowUCLV2 = append(append([]string{}, colorLogicShowUCL...),
	"Yellow", "Orange", "Gold", "Mint", "Teal", "Burnt Orange",
	"Pure White", "Crisp White", "Warm White", "Bright Yellow",
)

// colorLogicShowPentair is the Pentair-rebadged fixture's 12-entry show
// table.
var colorLogicShowPentair = []string{
	"SAM", "Party", "Romance", "Caribbean", "American",
	"California Sunset", "Royal", "Blue", "Green", "Red", "White", "Magenta",
}

// colorLogicShowZodiac is the Zodiac-rebadged fixture's 14-entry show
// table.
var colorLogicShowZodiac = []string{
	"Alpine White", "Sky Blue", "Cobalt Blue", "Caribbean Blue",
	"Spring Green", "Emerald Green", "Emerald Rose", "Magenta", "Violet",
	"Slow Color Splash", "Fast Color Splash", "America the Beautiful",
	"Fat Tuesday", "Disco Tech",
}

// ShowsForLightType returns the ordered show table applicable to a
// light of type t, taking v2Active into account for UCL fixtures (a
// V2-active UCL exposes 27 shows instead of 17).
func ShowsForLightType(t ColorLogicLightType, v2Active bool) []ColorLogicShow {
	var names []string
	switch t {
	case ColorLogicLightTypeUCL:
		if v2Active {
			names = colorLogicShowUCLV2
		} else {
			names = colorLogicShowUCL
		}
	case ColorLogicLightTypeFourZero, ColorLogicLightTypeTwoFive, ColorLogicLightTypeSAM:
		names = colorLogicShow25And40
	case ColorLogicLightTypePentairColor:
		names = colorLogicShowPentair
	case ColorLogicLightTypeZodiacColor:
		names = colorLogicShowZodiac
	default:
		names = colorLogicShowUCLV2
	}
	shows := make([]ColorLogicShow, len(names))
	for i, name := range names {
		shows[i] = ColorLogicShow{Value: i, Name: name}
	}
	return shows
}

// ShowName resolves the display name for a raw show value under the
// given light type/v2Active combination. Values outside the table's
// range return a generic "Show <value>" label rather than an error,
// since firmware revisions occasionally add shows ahead of any client.
func ShowName(t ColorLogicLightType, v2Active bool, value int) string {
	shows := ShowsForLightType(t, v2Active)
	if value >= 0 && value < len(shows) {
		return shows[value].Name
	}
	return "Show " + strconv.Itoa(value)
}
