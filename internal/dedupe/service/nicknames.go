package service

import "strings"

// diminutives maps a canonical given name to its common short forms. Lookup is
// symmetric: "bill" and "william" resolve to the same canonical entry.
var diminutives = map[string][]string{
	"william":     {"will", "bill", "billy", "willy", "liam"},
	"robert":      {"rob", "bob", "bobby", "robbie"},
	"james":       {"jim", "jimmy", "jamie"},
	"john":        {"jack", "johnny", "jon"},
	"richard":     {"rick", "ricky", "dick", "rich"},
	"michael":     {"mike", "mikey", "mick"},
	"christopher": {"chris", "topher"},
	"anthony":     {"tony"},
	"thomas":      {"tom", "tommy"},
	"charles":     {"chuck", "charlie", "chas"},
	"daniel":      {"dan", "danny"},
	"matthew":     {"matt"},
	"joseph":      {"joe", "joey"},
	"david":       {"dave", "davey"},
	"steven":      {"steve"},
	"stephen":     {"steve"},
	"andrew":      {"andy", "drew"},
	"edward":      {"ed", "eddie", "ted", "teddy"},
	"nicholas":    {"nick", "nicky"},
	"samuel":      {"sam", "sammy"},
	"benjamin":    {"ben", "benny", "benji"},
	"alexander":   {"alex", "xander"},
	"gregory":     {"greg"},
	"kenneth":     {"ken", "kenny"},
	"ronald":      {"ron", "ronnie"},
	"timothy":     {"tim", "timmy"},
	"lawrence":    {"larry"},
	"gerald":      {"jerry"},
	"raymond":     {"ray"},
	"frederick":   {"fred", "freddie"},
	"peter":       {"pete"},
	"phillip":     {"phil"},
	"philip":      {"phil"},
	"zachary":     {"zach", "zack"},
	"jonathan":    {"jon"},
	"margaret":    {"meg", "peggy", "maggie"},
	"elizabeth":   {"liz", "beth", "betsy", "betty", "eliza"},
	"katherine":   {"kate", "katie", "kathy", "kat"},
	"kathryn":     {"kate", "katie", "kathy"},
	"jennifer":    {"jen", "jenny"},
	"jessica":     {"jess", "jessie"},
	"patricia":    {"pat", "patty", "trish", "tricia"},
	"susan":       {"sue", "susie"},
	"deborah":     {"deb", "debbie"},
	"barbara":     {"barb", "babs"},
	"rebecca":     {"becky", "becca"},
	"victoria":    {"vicky", "tori"},
	"samantha":    {"sam", "sammy"},
	"christina":   {"chris", "tina", "christy"},
	"kimberly":    {"kim"},
	"pamela":      {"pam"},
	"cynthia":     {"cindy"},
	"sandra":      {"sandy"},
	"donald":      {"don", "donny"},
	"douglas":     {"doug"},
	"francis":     {"frank", "fran"},
	"theodore":    {"ted", "teddy", "theo"},
	"harold":      {"harry", "hal"},
	"albert":      {"al", "bert"},
	"eugene":      {"gene"},
	"leonard":     {"leo", "len", "lenny"},
	"vincent":     {"vince", "vinny"},
	"walter":      {"walt", "wally"},
}

// nicknameGroups maps every known first-name form (canonical or variant,
// lowercase) to the set of canonical names it belongs to.
var nicknameGroups = buildNicknameGroups()

func buildNicknameGroups() map[string]map[string]struct{} {
	groups := make(map[string]map[string]struct{})
	add := func(form, canonical string) {
		set, ok := groups[form]
		if !ok {
			set = make(map[string]struct{})
			groups[form] = set
		}
		set[canonical] = struct{}{}
	}
	for canonical, variants := range diminutives {
		add(canonical, canonical)
		for _, v := range variants {
			add(v, canonical)
		}
	}
	return groups
}

// sharedCanonical reports whether two first names are known variants of a
// shared canonical name. Case-insensitive and symmetric.
func sharedCanonical(a, b string) bool {
	ga, ok := nicknameGroups[strings.ToLower(strings.TrimSpace(a))]
	if !ok {
		return false
	}
	gb, ok := nicknameGroups[strings.ToLower(strings.TrimSpace(b))]
	if !ok {
		return false
	}
	for c := range ga {
		if _, ok := gb[c]; ok {
			return true
		}
	}
	return false
}
