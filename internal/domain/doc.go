// Package domain models Michigan statewide election results and the
// normalization rules that turn heterogeneous raw files into one canonical
// county-level dataset.
//
// # Data Sources
//
// Results come from two families of files. OpenElections CSVs
// (https://github.com/openelections) follow the naming pattern
// "YYYYMMDD__mi__general__<granularity>.csv" and carry county, office, party,
// candidate, and votes columns; precinct-level files split the candidate name
// across first/middle/last columns. The Michigan Bureau of Elections also
// publishes tab-separated CENR files for recent cycles, which the convert
// command rewrites into the same CSV shape before aggregation.
//
// # Normalization Rules
//
// County names vary across sources: "WASHTENAW", "Washtenaw County",
// "St Clair", "Gd. Traverse". [NormalizeCounty] title-cases, restores the
// period in "St.", strips possessives and the trailing "County" word, and
// expands the "Gd. Traverse" abbreviation. The result is one of the 83
// Michigan county names and the function is idempotent.
//
// Candidate names carry party prefixes ("DEM KAMALA D. HARRIS"), running-mate
// suffixes ("/TIM WALZ", "w/ Kamala Harris"), and inconsistent casing.
// [NormalizeCandidate] strips all of those and pins the three candidates who
// dominate the modern files (Harris, Trump, Biden) to a single display
// spelling so that precinct rows for the same ticket sum into one county
// total.
//
// Party labels are reduced to a fixed code set (DEM, REP, LIB, GRN, UST, NLP,
// NPA, WRITE-IN, CON, Other). When a row omits or mislabels its party, the
// historical table of Michigan statewide candidates (1998-2024) resolves it
// from the candidate's name; see [ResolveParty] for the fallback order.
//
// # Contest Classification
//
// Only six statewide contests are tracked: president, us_senate, governor,
// secretary_of_state, attorney_general, state_treasurer. Classification is
// ordered keyword matching over the raw office title with explicit
// exclusions: "state senate" rows are legislative races, "university" and
// "board" exclude Board of Governors contests, and "county" excludes county
// treasurers. Everything else is dropped without error.
//
// # Competitiveness Categories
//
// Each county result is classified into one of 15 categories by the winning
// party and the two-party margin percentage: seven Republican tiers, seven
// Democratic tiers, and Tossup. The thresholds (40/30/20/10/5.5/1.0/0.5,
// inclusive) and the category codes and hex colors are consumed directly by
// the visualization front end and must not change. Ties and third-party
// winners are always Tossup.
package domain
