package domain

import "strings"

// ContestType identifies a tracked statewide contest. Values appear as keys
// in the output document.
type ContestType string

const (
	ContestPresident        ContestType = "president"
	ContestUSSenate         ContestType = "us_senate"
	ContestGovernor         ContestType = "governor"
	ContestSecretaryOfState ContestType = "secretary_of_state"
	ContestAttorneyGeneral  ContestType = "attorney_general"
	ContestStateTreasurer   ContestType = "state_treasurer"
)

// contestRule matches a lowercased office title. Rules are evaluated in
// order; the first match wins.
type contestRule struct {
	match func(office string) bool
	typ   ContestType
	name  string
}

var contestRules = []contestRule{
	{
		typ: ContestPresident, name: "President",
		match: func(o string) bool { return strings.Contains(o, "president") },
	},
	{
		// "senator" does not contain "senate", so the federal spelling needs
		// its own alternative. "state senate" rows are legislative races.
		typ: ContestUSSenate, name: "US Senate",
		match: func(o string) bool {
			return strings.Contains(o, "u.s. senate") ||
				strings.Contains(o, "united states senator") ||
				(strings.Contains(o, "senate") && !strings.Contains(o, "state senate"))
		},
	},
	{
		// University Board of Governors races also contain "governor".
		typ: ContestGovernor, name: "Governor",
		match: func(o string) bool {
			return strings.Contains(o, "governor") &&
				!strings.Contains(o, "university") &&
				!strings.Contains(o, "board")
		},
	},
	{
		typ: ContestSecretaryOfState, name: "Secretary of State",
		match: func(o string) bool {
			return strings.Contains(o, "secretary of state") || strings.Contains(o, "secretary state")
		},
	},
	{
		typ: ContestAttorneyGeneral, name: "Attorney General",
		match: func(o string) bool { return strings.Contains(o, "attorney general") },
	},
	{
		typ: ContestStateTreasurer, name: "State Treasurer",
		match: func(o string) bool {
			return strings.Contains(o, "treasurer") && !strings.Contains(o, "county")
		},
	},
}

// ClassifyContest maps a raw office title to a tracked contest type and its
// display name. ok is false for offices outside the tracked set; those rows
// are dropped, not errors.
func ClassifyContest(office string) (typ ContestType, name string, ok bool) {
	office = strings.ToLower(strings.TrimSpace(office))
	for _, rule := range contestRules {
		if rule.match(office) {
			return rule.typ, rule.name, true
		}
	}
	return "", "", false
}
