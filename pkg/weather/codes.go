package weather

// UnknownDescription is substituted for weather codes missing from the
// table. The provider adds codes over time; an unmapped code is expected
// and never treated as an error.
const UnknownDescription = "Onbekend"

// wmoDescriptions maps WMO weather interpretation codes to Dutch text.
// Built once at init, read-only afterwards.
var wmoDescriptions = map[int]string{
	0:  "Onbewolkt",
	1:  "Overwegend onbewolkt",
	2:  "Half bewolkt",
	3:  "Bewolkt",
	45: "Mist",
	48: "Aanvriezende mist",
	51: "Lichte motregen",
	53: "Motregen",
	55: "Zware motregen",
	56: "Lichte aanvriezende motregen",
	57: "Aanvriezende motregen",
	61: "Lichte regen",
	63: "Regen",
	65: "Zware regen",
	66: "Lichte aanvriezende regen",
	67: "Aanvriezende regen",
	71: "Lichte sneeuwval",
	73: "Sneeuwval",
	75: "Zware sneeuwval",
	77: "Sneeuwkorrels",
	80: "Lichte regenbuien",
	81: "Regenbuien",
	82: "Zware regenbuien",
	85: "Lichte sneeuwbuien",
	86: "Sneeuwbuien",
	95: "Onweer",
	96: "Onweer met lichte hagel",
	99: "Onweer met zware hagel",
}

// DescribeCode resolves a WMO weather code to its Dutch description, falling
// back to UnknownDescription for codes not in the table.
func DescribeCode(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return UnknownDescription
}
