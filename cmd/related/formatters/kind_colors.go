package formatters

import "github.com/ccm2020/home-assistant/search"

var kindColors = map[search.Kind]string{
	search.KindArea:        "palegreen",
	search.KindAutomation:  "lightsalmon",
	search.KindConfigEntry: "plum",
	search.KindDevice:      "lightblue",
	search.KindEntity:      "lightyellow",
	search.KindGroup:       "khaki",
	search.KindScene:       "lightpink",
	search.KindScript:      "lavender",
}

// KindColor returns the fill color used for nodes of kind.
func KindColor(kind search.Kind) string {
	if color, ok := kindColors[kind]; ok {
		return color
	}
	return "white"
}
