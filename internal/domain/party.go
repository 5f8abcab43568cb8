package domain

import "strings"

// Party codes emitted by normalization. Anything unrecognized maps to PartyOther.
const (
	PartyDem     = "DEM"
	PartyRep     = "REP"
	PartyLib     = "LIB"
	PartyGrn     = "GRN"
	PartyUST     = "UST"
	PartyNLP     = "NLP"
	PartyNPA     = "NPA"
	PartyWriteIn = "WRITE-IN"
	PartyCon     = "CON"
	PartyOther   = "Other"
)

// partySynonyms maps uppercased raw ballot labels to party codes.
var partySynonyms = map[string]string{
	"DEM": PartyDem, "DEMOCRAT": PartyDem, "DEMOCRATIC": PartyDem, "D": PartyDem, "DFL": PartyDem,
	"REP": PartyRep, "REPUBLICAN": PartyRep, "R": PartyRep,
	"LIB": PartyLib, "LIBERTARIAN": PartyLib,
	"GRN": PartyGrn, "GREEN": PartyGrn, "GRP": PartyGrn, "GRE": PartyGrn,
	"UST": PartyUST, "US TAXPAYERS": PartyUST, "U.S. TAXPAYERS": PartyUST,
	"NLP": PartyNLP, "NATURAL LAW": PartyNLP, "NL": PartyNLP,
	"NPA": PartyNPA, "NO PARTY AFFILIATION": PartyNPA, "NON": PartyNPA, "NONPARTISAN": PartyNPA,
	"WRITE-IN": PartyWriteIn, "WRITEIN": PartyWriteIn,
	"CON": PartyCon, "CONSTITUTION": PartyCon,
}

// candidateParties resolves Michigan statewide candidates (1998-2024) to
// their party, keyed by lowercased normalized name. Used as a fallback for
// rows that omit or mislabel the party field. Immutable reference data.
var candidateParties = map[string]string{
	// Presidential candidates.
	"george w. bush": PartyRep, "george w bush": PartyRep, "george bush": PartyRep,
	"al gore": PartyDem, "albert gore": PartyDem,
	"john kerry": PartyDem, "john f. kerry": PartyDem, "john f kerry": PartyDem,
	"barack obama":    PartyDem,
	"mitt romney":     PartyRep,
	"hillary clinton": PartyDem, "hillary": PartyDem,
	"donald trump": PartyRep, "donald j. trump": PartyRep, "donald j trump": PartyRep,
	"joe biden": PartyDem, "joseph biden": PartyDem, "joseph r. biden": PartyDem,
	"kamala harris":            PartyDem,
	"ralph nader":              PartyGrn,
	"jill stein":               PartyGrn,
	"gary johnson":             PartyLib,
	"david cobb":               PartyGrn,
	"michael badnarik":         PartyLib,
	"michael anthony peroutka": PartyCon,
	"walter brown":             PartyOther,

	// Governors.
	"john engler":     PartyRep,
	"geoffrey fieger": PartyDem,
	"jennifer granholm": PartyDem, "jennifer m. granholm": PartyDem,
	"dick posthumus":   PartyRep,
	"dick devos":       PartyRep,
	"rick snyder":      PartyRep,
	"mark schauer":     PartyDem,
	"gretchen whitmer": PartyDem,
	"bill schuette":    PartyRep,
	"tudor dixon":      PartyRep,

	// US Senate.
	"debbie stabenow": PartyDem, "deborah stabenow": PartyDem,
	"spence abraham": PartyRep, "spencer abraham": PartyRep,
	"carl levin":        PartyDem,
	"andrew raczkowski": PartyRep,
	"john james":        PartyRep,
	"gary peters":       PartyDem,
	"terri lynn land":   PartyRep,
	"elissa slotkin":    PartyDem,
	"mike rogers":       PartyRep,

	// Secretary of State.
	"candice miller": PartyRep, "candice s. miller": PartyRep,
	"ruth johnson":   PartyRep,
	"jocelyn benson": PartyDem,
	"mary lou parks": PartyDem,

	// Attorney General.
	"john a. smietanka": PartyRep,
	"tom leonard":       PartyRep,
	"dana nessel":       PartyDem,
	"mike cox":          PartyRep,
	"mark totten":       PartyDem,
}

// NormalizeParty maps a raw party label to a party code, defaulting to Other.
func NormalizeParty(raw string) string {
	if p, ok := lookupDeclared(raw); ok {
		return p
	}
	return PartyOther
}

// InferPartyFromCandidate resolves a party from the candidate's normalized
// name. The election year is accepted for context, but the historical table
// is keyed by name alone.
func InferPartyFromCandidate(name, year string) string {
	if p, ok := lookupHistorical(name); ok {
		return p
	}
	return PartyOther
}

// ResolveParty applies the per-row party fallback chain: the declared ballot
// label wins, then the historical candidate table, then Other. The chain is
// an ordered list of lookups so the precedence stays auditable.
func ResolveParty(rawParty, candidate, year string) string {
	lookups := []func() (string, bool){
		func() (string, bool) { return lookupDeclared(rawParty) },
		func() (string, bool) { return lookupHistorical(candidate) },
	}
	for _, lookup := range lookups {
		if p, ok := lookup(); ok {
			return p
		}
	}
	return PartyOther
}

func lookupDeclared(raw string) (string, bool) {
	p, ok := partySynonyms[strings.ToUpper(strings.TrimSpace(raw))]
	return p, ok
}

func lookupHistorical(candidate string) (string, bool) {
	p, ok := candidateParties[strings.ToLower(strings.TrimSpace(candidate))]
	return p, ok
}
