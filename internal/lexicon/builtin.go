package lexicon

// builtinEntries is the curated formal-to-casual table. No candidate is itself a key and no
// candidate contains a key as a whole word, so substituted text does not re-match.
var builtinEntries = map[string][]string{
	// business and professional
	"implement":      {"put in place", "set up", "create", "carry out", "roll out"},
	"implementation": {"setup", "rollout", "putting in place", "launch"},
	"provide":        {"give", "supply", "offer", "hand over", "pass on"},
	"request":        {"ask for", "seek", "apply for", "call for", "look for"},
	"consider":       {"look at", "think about", "examine", "review", "check out"},
	"experience":     {"background", "history", "track record", "expertise", "know-how"},
	"experiencing":   {"having", "going through", "facing", "encountering", "dealing with"},
	"commence":       {"start", "begin", "launch", "kick off", "get going"},
	"purchase":       {"buy", "acquire", "obtain", "get", "pick up"},
	"extended":       {"pushed back", "delayed", "postponed", "lengthened", "put off"},
	"available":      {"possible", "accessible", "ready", "on hand", "free"},
	"difficulties":   {"problems", "issues", "challenges", "troubles", "hurdles"},
	"options":        {"choices", "alternatives", "possibilities", "picks"},
	"position":       {"job", "role", "post", "spot"},
	"genuine":        {"real", "authentic", "sincere", "true"},
	"express":        {"show", "indicate", "convey", "get across"},
	"interest":       {"curiosity", "enthusiasm", "eagerness", "motivation"},
	"opportunity":    {"chance", "opening", "shot", "break"},
	"mission":        {"goal", "purpose", "aim"},
	"align":          {"match", "fit", "line up"},
	"results":        {"outcomes", "findings", "wins"},
	"collaboration":  {"teamwork", "partnership", "cooperation"},

	// verbs that read as corporate filler
	"utilize":     {"use", "make use of", "employ", "apply"},
	"establish":   {"set up", "create", "found", "start", "build"},
	"maintain":    {"keep up", "preserve", "sustain", "hold", "keep"},
	"demonstrate": {"show", "prove", "display", "exhibit"},
	"accomplish":  {"achieve", "complete", "finish", "pull off"},
	"facilitate":  {"help", "make easier", "assist", "enable", "support"},
	"enhance":     {"improve", "boost", "upgrade", "strengthen"},
	"optimize":    {"improve", "fine-tune", "tune", "make better"},
	"leverage":    {"use", "take advantage of", "make use of", "capitalize on"},
	"streamline":  {"simplify", "smooth out", "trim down", "make easier"},
	"deploy":      {"put out", "release", "launch", "roll out", "ship"},
	"monitor":     {"watch", "keep track of", "check", "observe", "follow"},
	"analyze":     {"look at", "examine", "study", "review", "dig into"},
	"evaluate":    {"assess", "judge", "rate", "check out", "weigh"},
	"coordinate":  {"organize", "arrange", "set up", "manage", "handle"},
	"collaborate": {"work together", "team up", "join forces", "partner", "cooperate"},
	"innovate":    {"come up with new ideas", "create", "invent", "develop"},
	"strategize":  {"plan", "figure out", "work out", "map out"},
	"execute":     {"carry out", "do", "perform", "complete", "finish"},
	"deliver":     {"give", "supply", "hand over", "pass on", "bring"},
	"ensure":      {"make sure", "guarantee", "see to it", "check"},
	"maximize":    {"get the most out of", "boost", "increase", "raise"},
	"minimize":    {"reduce", "cut down", "lessen", "lower"},
	"prioritize":  {"put first", "focus on", "emphasize", "highlight"},
	"standardize": {"make consistent", "normalize", "regularize", "unify"},
	"customize":   {"tailor", "adapt", "modify", "adjust", "personalize"},
	"integrate":   {"combine", "merge", "unite", "join", "connect"},
	"validate":    {"check", "verify", "confirm", "test"},
	"document":    {"write down", "record", "note", "log"},
	"communicate": {"talk", "speak", "discuss", "share"},

	// academic register
	"methodology":   {"approach", "method", "procedure", "technique"},
	"necessitates":  {"requires", "needs", "calls for", "demands"},
	"evaluation":    {"assessment", "review", "check", "look"},
	"comprehensive": {"thorough", "complete", "detailed", "full"},
	"understanding": {"knowledge", "grasp", "awareness", "sense"},
	"endeavors":     {"tries", "attempts", "efforts", "aims"},
	"empirical":     {"real-world", "practical", "observed", "hands-on"},
	"qualitative":   {"descriptive", "detailed", "in-depth"},
	"proposed":      {"suggested", "recommended", "planned", "intended"},
	"extensive":     {"thorough", "detailed", "broad", "wide"},
	"existing":      {"current", "present", "on hand"},
	"framework":     {"structure", "setup", "approach", "method"},
	"approximately": {"about", "around", "roughly"},
	"assistance":    {"help", "support", "a hand"},
	"sufficient":    {"enough", "plenty"},
	"numerous":      {"many", "lots of", "plenty of"},
	"regarding":     {"about", "on", "when it comes to"},

	// connectives
	"furthermore":   {"also", "plus", "besides", "on top of that"},
	"moreover":      {"also", "plus", "besides", "what's more"},
	"additionally":  {"also", "plus", "on top of that"},
	"subsequently":  {"then", "later", "after that", "next"},

	// stock phrases
	"in order to":           {"to"},
	"prior to":              {"before"},
	"due to the fact that":  {"because"},
	"at this point in time": {"now", "right now"},
	"in the event that":     {"if"},
	"with regard to":        {"about"},
}

// Builtin returns a fresh store holding the curated table.
func Builtin() *Store {
	return New(builtinEntries)
}
