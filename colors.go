package housestyle

import "fmt"

type Palette []string

// Color returns the color at position i, cycling through the palette
// when i runs past its end.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

// RGB converts 0-255 components to an hex color string.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Colors of the classic book style.
var (
	ClassicBlue       = RGB(75, 130, 173)
	ClassicGreen      = RGB(150, 186, 121)
	ClassicRed        = RGB(192, 0, 80)
	ClassicGrey       = RGB(166, 168, 172)
	ClassicLightGreen = RGB(150, 215, 130)
	ClassicLightGrey  = RGB(211, 211, 211)
	ClassicLightRed   = RGB(238, 36, 0)
	ClassicDarkRed    = RGB(144, 0, 0)
	ClassicLightBlue  = RGB(202, 224, 251)
	ClassicDarkBlue   = RGB(14, 16, 116)
	ClassicPurple     = RGB(146, 60, 194)
	ClassicOrange     = RGB(255, 133, 71)
)

// Colors of the outlook report style.
var (
	OutlookBlue       = RGB(0, 98, 175)
	OutlookRed        = RGB(170, 31, 76)
	OutlookGold       = RGB(245, 189, 71)
	OutlookGreen      = RGB(73, 117, 39)
	OutlookLightGrey  = RGB(200, 200, 200)
	OutlookLightBlue  = RGB(141, 163, 210)
	OutlookLightRed   = RGB(209, 145, 131)
	OutlookLightGold  = RGB(249, 219, 161)
	OutlookLightGreen = RGB(162, 176, 143)
	OutlookDarkGrey   = RGB(150, 150, 150)
)

var (
	ClassicColors = Palette{
		ClassicBlue,
		ClassicGreen,
		ClassicGrey,
		ClassicLightGreen,
		ClassicLightGrey,
		ClassicLightRed,
		ClassicDarkRed,
	}
	ClassicBarColors = Palette{
		ClassicBlue,
		ClassicGreen,
		ClassicRed,
		ClassicGrey,
		"black",
		ClassicLightGreen,
		ClassicLightGrey,
		ClassicLightRed,
		ClassicDarkRed,
	}
	OutlookColors = Palette{
		OutlookBlue,
		OutlookRed,
		OutlookGold,
		OutlookGreen,
		OutlookLightGrey,
		OutlookLightBlue,
		OutlookLightRed,
		OutlookLightGold,
		OutlookLightGreen,
		OutlookDarkGrey,
	}
)

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
