package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	Terminology string
	ListModels  bool

	// Translation flags
	Engine     string
	SourceLang string
	PivotLang  string
	TargetLang string
	BatchFile  string
	OutputDir  string
	MemoryPath string

	// Export flags
	Format string
	Domain string
	Output string

	// Sample flags
	SamplePath string

	// Engine model flags
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Engine:      "openai",
		SourceLang:  "en",
		PivotLang:   "en",
		Format:      "json",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
