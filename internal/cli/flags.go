package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	OutputPath string
	BatchFile  string
	ListModels bool
	Archive    bool

	// Transcription flags
	SpeechModel string
	Language    string

	// Extraction flags
	LLMProvider string
	LLMModel    string
	LLMBaseURL  string
	Temperature float64
	NumQuotes   int
	MinScore    float64
	MaxCount    int

	// Card flags
	Title string
	Style string
}

// NewFlags creates a new Flags instance with default values. LLMModel
// stays empty so each extraction backend can resolve its own default.
func NewFlags() *Flags {
	return &Flags{
		SpeechModel: "whisper-1",
		LLMProvider: "openai",
		LLMBaseURL:  "https://api.openai.com/v1",
		Temperature: 0.7,
		NumQuotes:   10,
		Title:       "Podcast Quotes",
		Style:       "minimal",
	}
}
