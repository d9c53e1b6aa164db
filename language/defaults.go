package language

// identifierOrder is the canonical order of the default table.
var identifierOrder = []Identifier{
	JavaScript, TypeScript, Python, Go, Java, Swift, Cpp, CSharp, Ruby, Actions,
}

// defaults maps each identifier to its baseline job. Only Default hands
// these out, and always by value.
var defaults = map[Identifier]Config{
	JavaScript: {Language: "javascript-typescript"},
	TypeScript: {Language: "javascript-typescript"},
	Python:     {Language: "python"},
	Go:         {Language: "go"},
	Java: {
		Language:     "java-kotlin",
		BuildMode:    BuildModeManual,
		BuildCommand: "./mvnw compile",
	},
	Swift:   {Language: "swift"},
	Cpp:     {Language: "cpp"},
	CSharp:  {Language: "csharp"},
	Ruby:    {Language: "ruby"},
	Actions: {Language: "actions"},
}

// Default returns the baseline job for id.
func Default(id Identifier) (Config, bool) {
	cfg, ok := defaults[id]
	return cfg, ok
}

// ScannerLanguage returns the scanner language of id's baseline job, or ""
// when id has no baseline.
func ScannerLanguage(id Identifier) string {
	return defaults[id].Language
}

// Identifiers lists every identifier with a baseline job.
func Identifiers() []Identifier {
	out := make([]Identifier, len(identifierOrder))
	copy(out, identifierOrder)
	return out
}
