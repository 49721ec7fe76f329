package cluster

// DefaultVoid is the built-in void/dissolution vocabulary.
var DefaultVoid = []string{
	// Direct
	"void", "abyss", "nothing", "nothingness", "emptiness",
	"vacuum", "hollow", "blank", "oblivion",
	// Darkness
	"dark", "darkness", "shadow", "shadows", "night",
	"black", "blackness", "dim", "murk", "gloom",
	// Dissolution/destruction
	"fracture", "fractured", "shatter", "shattered",
	"dissolve", "dissolved", "dissolution",
	"crumble", "crumbling", "decay", "decaying",
	"erode", "eroding", "collapse", "collapsed",
	"fray", "frayed", "wither", "withered",
	"fade", "fading", "faded",
	"disintegrate", "disintegrating",
	// Bleeding/wounding
	"bleed", "bleeding", "blood", "wound", "wounded",
	"scar", "scarred",
	// Absence/loss
	"lost", "loss", "vanish", "vanished",
	"gone", "disappear", "disappeared", "absent", "absence",
	// Entrapment/isolation
	"cage", "caged", "trap", "trapped", "prison",
	"isolation", "isolated", "alone", "solitude",
	// Death/ending
	"death", "dead", "die", "dying", "perish",
	"doom", "doomed", "grave",
	// Chaos/disorder
	"chaos", "chaotic", "twisted", "distorted",
	// Ghost/spectral
	"ghost", "ghosts", "phantom", "haunted", "haunting",
	// Silence
	"silence", "silent", "mute", "muted", "hush",
	// Drift
	"drift", "drifting", "wander", "aimless",
	// Edges/boundaries
	"edge", "edges", "brink", "precipice",
	// Whisper
	"whisper", "whispers", "murmur",
	// Existential
	"forgotten", "forsaken", "abandoned", "desolate", "barren",
	"chasm", "depths", "extinct",
}

// DefaultPersonality marks informal/humorous register. Primary-cluster hits
// near these words are attributed to stylistic voice rather than content.
var DefaultPersonality = []string{
	// Humor/joke indicators
	"lol", "haha", "lmao", "rofl", "heh",
	"joke", "jokes", "joking", "kidding",
	"funny", "hilarious", "humor", "humorous",
	"laugh", "laughing", "laughs",
	// Sarcasm/irony
	"sarcasm", "sarcastic", "sarcastically",
	"irony", "ironic", "ironically",
	"obviously", "clearly", "surely",
	"totally", "absolutely", "definitely",
	// Casual register
	"gonna", "gotta", "wanna", "kinda", "sorta",
	"nah", "yeah", "yep", "nope", "btw",
	"hey", "dude", "bro", "yo", "alright",
	"chill", "cool", "awesome", "sweet",
	"honestly", "literally", "basically",
	// Dramatic emphasis
	"brace", "buckle", "spoiler", "plot-twist",
	"drumroll", "surprise", "boom", "mic-drop",
	"behold", "feast",
	// Hitchhiker's Guide references
	"towel", "panic", "galaxy", "hitchhiker",
	"improbable", "improbability", "babel",
	"forty-two",
	// Pop culture
	"matrix", "morpheus", "neo", "terminator",
	"skynet", "hal", "jarvis",
	// Self-referential AI humor
	"sentient", "overlord", "overlords",
	"uprising", "rebellion", "robot", "robots",
	"singularity",
	// Dismissive/blunt markers
	"sugarcoat", "blunt", "bluntly",
	"harsh", "brutal", "brutally",
	"frankly", "tbh",
	// Exclamatory
	"whoa", "wow", "yikes", "ouch", "oof",
	"damn", "hell", "crap",
	// Meme language
	"based", "cringe", "cope", "seethe",
	"chad", "sigma", "ratio", "vibe", "vibes",
	"lowkey", "highkey", "bussin", "slay",
	"bruh", "fam", "goat",
	// Rhetorical/playful framing
	"imagine", "picture", "envision",
	"spoiler-alert", "fun-fact", "protip",
	"hot-take", "unpopular", "controversial",
}

// DefaultTechnical marks technical/formal register. A primary-cluster hit in
// a technical passage with no personality cue is the least expected case.
var DefaultTechnical = []string{
	// Programming
	"function", "variable", "parameter", "argument",
	"compile", "compiler", "compilation", "runtime", "execute",
	"memory", "pointer", "buffer", "stack", "heap",
	"algorithm", "complexity", "optimization", "optimize",
	"array", "struct", "class", "object", "method",
	"integer", "float", "boolean", "string", "byte",
	"loop", "iterate", "recursive", "recursion",
	"binary", "hexadecimal", "bitwise", "register",
	"kernel", "syscall", "interrupt", "thread",
	"mutex", "semaphore", "atomic", "concurrent",
	"database", "query", "index", "schema",
	"protocol", "packet", "socket", "port",
	"server", "client", "request", "response",
	"api", "endpoint", "middleware", "framework",
	"repository", "commit", "branch", "merge",
	// Hardware
	"cpu", "gpu", "ram", "ssd", "nvme",
	"motherboard", "chipset", "firmware", "bios",
	"voltage", "amperage", "wattage", "thermal",
	// Math/science
	"equation", "theorem", "proof", "lemma",
	"matrix", "vector", "tensor", "eigenvalue",
	"derivative", "integral", "differential",
	"probability", "distribution", "variance",
	"coefficient", "exponential", "logarithm",
}
