package domain

import "math"

// Competitiveness classifies how lopsided a county result is. Codes and hex
// colors are read directly by the map front end; treat them as a wire
// contract and never change them.
type Competitiveness struct {
	Category string `json:"category"`
	Party    string `json:"party"`
	Code     string `json:"code"`
	Color    string `json:"color"`
}

// competitivenessByCategory holds the 15 fixed categories: seven Republican
// tiers, seven Democratic tiers mirrored, and Tossup. The red and blue color
// ramps mirror each other from Tilt out to Annihilation.
var competitivenessByCategory = map[string]Competitiveness{
	"Annihilation Republican": {Category: "Annihilation Republican", Party: "Republican", Code: "R_ANNIHILATION", Color: "#67000d"},
	"Dominant Republican":     {Category: "Dominant Republican", Party: "Republican", Code: "R_DOMINANT", Color: "#a50f15"},
	"Stronghold Republican":   {Category: "Stronghold Republican", Party: "Republican", Code: "R_STRONGHOLD", Color: "#cb181d"},
	"Safe Republican":         {Category: "Safe Republican", Party: "Republican", Code: "R_SAFE", Color: "#ef3b2c"},
	"Likely Republican":       {Category: "Likely Republican", Party: "Republican", Code: "R_LIKELY", Color: "#fb6a4a"},
	"Lean Republican":         {Category: "Lean Republican", Party: "Republican", Code: "R_LEAN", Color: "#fcae91"},
	"Tilt Republican":         {Category: "Tilt Republican", Party: "Republican", Code: "R_TILT", Color: "#fee8c8"},
	"Tossup":                  {Category: "Tossup", Party: "Tossup", Code: "TOSSUP", Color: "#f7f7f7"},
	"Tilt Democratic":         {Category: "Tilt Democratic", Party: "Democratic", Code: "D_TILT", Color: "#e1f5fe"},
	"Lean Democratic":         {Category: "Lean Democratic", Party: "Democratic", Code: "D_LEAN", Color: "#c6dbef"},
	"Likely Democratic":       {Category: "Likely Democratic", Party: "Democratic", Code: "D_LIKELY", Color: "#9ecae1"},
	"Safe Democratic":         {Category: "Safe Democratic", Party: "Democratic", Code: "D_SAFE", Color: "#6baed6"},
	"Stronghold Democratic":   {Category: "Stronghold Democratic", Party: "Democratic", Code: "D_STRONGHOLD", Color: "#3182bd"},
	"Dominant Democratic":     {Category: "Dominant Democratic", Party: "Democratic", Code: "D_DOMINANT", Color: "#08519c"},
	"Annihilation Democratic": {Category: "Annihilation Democratic", Party: "Democratic", Code: "D_ANNIHILATION", Color: "#08306b"},
}

// marginTiers maps an inclusive lower bound on |margin_pct| to a base label.
// Evaluated top to bottom; anything below 0.5 is a Tossup.
var marginTiers = []struct {
	floor float64
	label string
}{
	{40, "Annihilation"},
	{30, "Dominant"},
	{20, "Stronghold"},
	{10, "Safe"},
	{5.5, "Likely"},
	{1.0, "Lean"},
	{0.5, "Tilt"},
}

// CategorizeMargin maps a winner and two-party margin percentage to a
// competitiveness category. Ties and third-party winners are Tossup
// regardless of margin.
func CategorizeMargin(marginPct float64, winnerParty string) Competitiveness {
	abs := math.Abs(marginPct)

	var base string
	for _, tier := range marginTiers {
		if abs >= tier.floor {
			base = tier.label
			break
		}
	}
	if base == "" {
		return competitivenessByCategory["Tossup"]
	}

	switch {
	case isDemLabel(winnerParty):
		return competitivenessByCategory[base+" Democratic"]
	case isRepLabel(winnerParty):
		return competitivenessByCategory[base+" Republican"]
	default:
		return competitivenessByCategory["Tossup"]
	}
}

func isDemLabel(p string) bool {
	switch p {
	case "DEM", "Democratic", "D", "DFL":
		return true
	}
	return false
}

func isRepLabel(p string) bool {
	switch p {
	case "REP", "Republican", "R":
		return true
	}
	return false
}
