package register

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preferences maps a register and a source word to the replacements preferred in that register.
type Preferences struct {
	table map[Register]map[string][]string
}

var builtinPreferences = map[Register]map[string][]string{
	Professional: {
		"implement":    {"establish", "set up", "put in place"},
		"provide":      {"deliver", "supply", "offer"},
		"request":      {"apply for", "seek", "petition"},
		"consider":     {"examine", "review", "evaluate"},
		"experience":   {"background", "expertise", "track record"},
		"commence":     {"initiate", "launch", "begin"},
		"purchase":     {"acquire", "obtain", "procure"},
		"extended":     {"postponed", "delayed", "rescheduled"},
		"experiencing": {"encountering", "facing", "undergoing"},
		"available":    {"accessible", "obtainable", "ready"},
		"difficulties": {"challenges", "issues", "obstacles"},
		"options":      {"alternatives", "possibilities", "selections"},
		"position":     {"role", "assignment", "post"},
		"genuine":      {"authentic", "sincere", "legitimate"},
		"express":      {"demonstrate", "indicate", "convey"},
		"interest":     {"enthusiasm", "motivation", "commitment"},
		"opportunity":  {"possibility", "prospect", "opening"},
	},
	Casual: {
		"implement":    {"put in place", "set up", "create"},
		"provide":      {"give", "hand over", "pass on"},
		"request":      {"ask for", "look for", "get"},
		"consider":     {"think about", "look at", "check out"},
		"experience":   {"background", "history", "know-how"},
		"commence":     {"start", "begin", "kick off"},
		"purchase":     {"buy", "get", "pick up"},
		"extended":     {"pushed back", "put off", "delayed"},
		"experiencing": {"having", "going through", "dealing with"},
		"available":    {"ready", "on hand", "possible"},
		"difficulties": {"problems", "troubles", "hurdles"},
		"options":      {"choices", "picks", "alternatives"},
		"position":     {"job", "spot", "role"},
		"genuine":      {"real", "true", "legitimate"},
		"express":      {"show", "get across", "convey"},
		"interest":     {"curiosity", "eagerness", "enthusiasm"},
		"opportunity":  {"chance", "shot", "break"},
	},
	Technical: {
		"implement":    {"deploy", "set up", "configure"},
		"provide":      {"deliver", "supply", "offer"},
		"request":      {"call", "invoke", "fetch"},
		"consider":     {"evaluate", "assess", "analyze"},
		"experience":   {"expertise", "background", "skills"},
		"commence":     {"initialize", "start", "launch"},
		"purchase":     {"acquire", "obtain", "procure"},
		"extended":     {"delayed", "postponed", "rescheduled"},
		"experiencing": {"encountering", "facing", "undergoing"},
		"available":    {"accessible", "ready", "obtainable"},
		"difficulties": {"issues", "challenges", "problems"},
		"options":      {"alternatives", "possibilities", "selections"},
		"position":     {"role", "assignment", "function"},
		"genuine":      {"authentic", "legitimate", "valid"},
		"express":      {"represent", "indicate", "denote"},
		"interest":     {"motivation", "commitment", "enthusiasm"},
		"opportunity":  {"possibility", "prospect", "opening"},
	},
	Academic: {
		"implement":    {"establish", "institute", "create"},
		"provide":      {"supply", "deliver", "offer"},
		"request":      {"apply for", "seek", "petition"},
		"consider":     {"examine", "review", "analyze"},
		"experience":   {"background", "expertise", "qualifications"},
		"commence":     {"initiate", "begin", "launch"},
		"purchase":     {"acquire", "obtain", "procure"},
		"extended":     {"postponed", "delayed", "rescheduled"},
		"experiencing": {"undergoing", "encountering", "facing"},
		"available":    {"accessible", "obtainable", "ready"},
		"difficulties": {"challenges", "obstacles", "issues"},
		"options":      {"alternatives", "possibilities", "selections"},
		"position":     {"role", "assignment", "post"},
		"genuine":      {"authentic", "sincere", "legitimate"},
		"express":      {"demonstrate", "indicate", "convey"},
		"interest":     {"motivation", "commitment", "enthusiasm"},
		"opportunity":  {"possibility", "prospect", "opening"},
	},
}

func BuiltinPreferences() *Preferences {
	p := &Preferences{table: map[Register]map[string][]string{}}
	for r, words := range builtinPreferences {
		for w, prefs := range words {
			p.set(r, w, prefs)
		}
	}
	return p
}

// LoadPreferencesYAML overlays preferences from a file shaped like:
//
//	technical:
//	  implement: [deploy, set up]
//
// Words present in the file replace the built-in list for that register.
func LoadPreferencesYAML(path string) (*Preferences, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	var doc map[string]map[string][]string
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	p := BuiltinPreferences()
	for name, words := range doc {
		r, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("decode preferences: %w", err)
		}
		for w, prefs := range words {
			p.set(r, w, prefs)
		}
	}
	return p, nil
}

// Preferred returns the ordered preferences for word in register r.
func (p *Preferences) Preferred(r Register, word string) []string {
	if p == nil {
		return nil
	}
	return p.table[r][strings.ToLower(strings.TrimSpace(word))]
}

// Pick returns the first preference for word that is present in candidates.
func (p *Preferences) Pick(r Register, word string, candidates []string) (string, bool) {
	for _, pref := range p.Preferred(r, word) {
		for _, c := range candidates {
			if strings.EqualFold(c, pref) {
				return c, true
			}
		}
	}
	return "", false
}

func (p *Preferences) set(r Register, word string, prefs []string) {
	if p.table[r] == nil {
		p.table[r] = map[string][]string{}
	}
	p.table[r][strings.ToLower(strings.TrimSpace(word))] = append([]string(nil), prefs...)
}
