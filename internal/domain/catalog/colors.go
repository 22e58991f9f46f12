package catalog

// ColorInfo describes how a variant code renders in the storefront
type ColorInfo struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// fallbackHex is the neutral swatch used for unrecognized variant codes
const fallbackHex = "#9E9E9E"

// colorTable maps vendor variant codes to display colors. The codes follow
// the Italian vendor convention (N = nero, R = rosso, ...). The table is
// intentionally static: an unknown code falls back to the code itself rather
// than failing, so a newly introduced color never breaks rendering.
var colorTable = map[string]ColorInfo{
	"N":    {Name: "Černá", Hex: "#1A1A1A"},
	"NN":   {Name: "Černá", Hex: "#1A1A1A"},
	"R":    {Name: "Červená", Hex: "#C0392B"},
	"BLU":  {Name: "Modrá", Hex: "#1F4E79"},
	"BLU2": {Name: "Tmavě modrá", Hex: "#16324F"},
	"AZBE": {Name: "Světle modrá", Hex: "#5DADE2"},
	"M":    {Name: "Hnědá", Hex: "#6E4B2A"},
	"MO":   {Name: "Mahagon", Hex: "#4E2A1E"},
	"TM":   {Name: "Tmavě hnědá", Hex: "#3E2B23"},
	"CU":   {Name: "Koňaková", Hex: "#A9652E"},
	"C":    {Name: "Koňaková", Hex: "#A9652E"},
	"BE":   {Name: "Béžová", Hex: "#D8C3A5"},
	"G":    {Name: "Šedá", Hex: "#7F8C8D"},
	"GR":   {Name: "Šedá", Hex: "#7F8C8D"},
	"VE":   {Name: "Zelená", Hex: "#1E8449"},
	"V":    {Name: "Zelená", Hex: "#1E8449"},
	"GI":   {Name: "Žlutá", Hex: "#F1C40F"},
	"AR":   {Name: "Oranžová", Hex: "#E67E22"},
	"RO":   {Name: "Růžová", Hex: "#E8A0BF"},
	"VI":   {Name: "Fialová", Hex: "#7D3C98"},
	"BI":   {Name: "Bílá", Hex: "#F5F5F5"},
	"CHEV": {Name: "Chevron", Hex: "#8A7F72"},
}

// GetColorInfo resolves a variant code to its display color. Unknown codes
// return the code itself with a neutral gray swatch.
func GetColorInfo(variantCode string) ColorInfo {
	if info, ok := colorTable[variantCode]; ok {
		return info
	}
	return ColorInfo{Name: variantCode, Hex: fallbackHex}
}
