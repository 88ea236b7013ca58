package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/quotecast/internal"
	"codeberg.org/snonux/quotecast/internal/batch"
	"codeberg.org/snonux/quotecast/internal/card"
	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/extract"
	"codeberg.org/snonux/quotecast/internal/library"
	"codeberg.org/snonux/quotecast/internal/quote"
	"codeberg.org/snonux/quotecast/internal/transcribe"
)

// Output file names inside an episode directory
const (
	transcriptTextFile = "transcript.txt"
	transcriptJSONFile = "transcript.json"
	quotesFile         = "quotes.json"
	cardsDirName       = "cards"
)

// Processor handles the main episode processing logic
type Processor struct {
	flags *cli.Flags

	// Overridable backends, created lazily from flags and config when nil
	transcriber transcribe.Provider
	extractor   extract.Extractor
}

// NewProcessor creates a new episode processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// RunTranscribe transcribes a single audio file. The transcript is written
// as plain text plus a JSON file with segment timestamps.
func (p *Processor) RunTranscribe(ctx context.Context, audioPath string) error {
	provider, err := p.getTranscriber()
	if err != nil {
		return err
	}

	fmt.Printf("Transcribing: %s\n", audioPath)
	result, err := provider.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	if result.Language != "" {
		fmt.Printf("  Language: %s\n", result.Language)
	}
	if result.Duration > 0 {
		fmt.Printf("  Duration: %.1fs\n", result.Duration)
	}

	textPath, jsonPath := p.transcriptPaths(audioPath)
	if err := result.WriteText(textPath); err != nil {
		return err
	}
	if err := result.WriteJSON(jsonPath); err != nil {
		return err
	}

	fmt.Printf("  Transcript saved: %s\n", textPath)
	return nil
}

// RunExtract extracts quotes from a transcript file and writes them as a
// JSON array next to the transcript (or to the configured output path).
func (p *Processor) RunExtract(ctx context.Context, transcriptPath string) error {
	result, err := transcribe.LoadResult(transcriptPath)
	if err != nil {
		return err
	}

	quotes, err := p.extractQuotes(ctx, result)
	if err != nil {
		return err
	}

	// Score and count filters only narrow the displayed table; the file
	// keeps every extracted quote so a later render can lower the floor
	// without new API calls
	printQuoteTable(quote.Filter(quotes, quote.FilterOptions{
		MinScore: p.flags.MinScore,
		MaxCount: p.flags.MaxCount,
	}))

	outputPath := p.flags.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(transcriptPath), quotesFile)
	}

	if err := quote.Save(outputPath, quotes); err != nil {
		return err
	}

	fmt.Printf("\nQuotes saved: %s\n", outputPath)
	return nil
}

// RunCards renders cards for a quotes JSON file
func (p *Processor) RunCards(quotesPath string) error {
	quotes, err := quote.Load(quotesPath)
	if err != nil {
		return err
	}

	quotes = quote.Filter(quotes, quote.FilterOptions{
		MinScore: p.flags.MinScore,
		MaxCount: p.flags.MaxCount,
	})

	if len(quotes) == 0 {
		fmt.Println("No quotes to render")
		return nil
	}

	outputDir := p.flags.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(filepath.Dir(quotesPath), cardsDirName)
	}

	gen := card.NewGenerator(p.cardOptions())
	paths, err := gen.GenerateBatch(quotes, outputDir, p.flags.Title, p.flags.Style)
	if err != nil {
		return err
	}

	fmt.Printf("\nGenerated %d cards in %s\n", len(paths), outputDir)
	return nil
}

// RunPipeline runs all three stages for a single episode
func (p *Processor) RunPipeline(ctx context.Context, audioPath, title string) error {
	if title == "" {
		title = p.flags.Title
	}

	episodeDir := p.episodeDir(audioPath)
	if err := os.MkdirAll(episodeDir, 0755); err != nil {
		return fmt.Errorf("failed to create episode directory: %w", err)
	}

	// Step 1: transcription
	fmt.Printf("\nStep 1/3: Transcribing %s\n", audioPath)
	provider, err := p.getTranscriber()
	if err != nil {
		return err
	}
	result, err := provider.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	textPath := filepath.Join(episodeDir, transcriptTextFile)
	jsonPath := filepath.Join(episodeDir, transcriptJSONFile)
	if err := result.WriteText(textPath); err != nil {
		return err
	}
	if err := result.WriteJSON(jsonPath); err != nil {
		return err
	}
	fmt.Printf("  Transcript saved: %s\n", textPath)

	// Step 2: quote extraction
	fmt.Printf("\nStep 2/3: Extracting quotes\n")
	quotes, err := p.extractQuotes(ctx, result)
	if err != nil {
		return err
	}

	quotesPath := filepath.Join(episodeDir, quotesFile)
	if err := quote.Save(quotesPath, quotes); err != nil {
		return err
	}
	fmt.Printf("  Extracted %d quotes: %s\n", len(quotes), quotesPath)

	selected := quote.Filter(quotes, quote.FilterOptions{
		MinScore: p.flags.MinScore,
		MaxCount: p.flags.MaxCount,
	})

	// Step 3: card rendering
	fmt.Printf("\nStep 3/3: Rendering cards\n")
	cardsDir := filepath.Join(episodeDir, cardsDirName)
	if len(selected) == 0 {
		fmt.Printf("  No quotes scored %.1f or higher, skipping card rendering\n", p.flags.MinScore)
	} else {
		gen := card.NewGenerator(p.cardOptions())
		if _, err := gen.GenerateBatch(selected, cardsDir, title, p.flags.Style); err != nil {
			return err
		}
	}

	p.recordEpisode(audioPath, title, episodeDir, quotes, len(selected) > 0)

	fmt.Printf("\nDone: %d of %d quotes rendered as cards\n", len(selected), len(quotes))
	return nil
}

// ProcessBatch runs the pipeline for every episode listed in the batch
// file. Already-complete episodes are skipped, and a failing episode does
// not abort the rest of the batch.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	lib := p.openLibrary()
	if lib != nil {
		defer lib.Close()
	}

	skippedCount := 0
	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.AudioPath)

		if lib != nil && lib.IsComplete(entry.AudioPath) {
			fmt.Printf("  Skipping %s, already fully processed\n", internal.EpisodeName(entry.AudioPath))
			skippedCount++
			continue
		}

		if err := p.RunPipeline(ctx, entry.AudioPath, entry.Title); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", entry.AudioPath, err)
			errorCount++
		} else {
			processedCount++
		}
	}

	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total episodes: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	fmt.Printf("Skipped (already complete): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	return nil
}

// ListEpisodes prints the episode catalog
func (p *Processor) ListEpisodes() error {
	lib := p.openLibrary()
	if lib == nil {
		return fmt.Errorf("failed to open episode library")
	}
	defer lib.Close()

	episodes, err := lib.Episodes()
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes in the library yet")
		return nil
	}

	fmt.Printf("%-30s %-8s %-20s %s\n", "EPISODE", "QUOTES", "PROCESSED", "AUDIO")
	for _, ep := range episodes {
		fmt.Printf("%-30s %-8d %-20s %s\n",
			truncate(ep.Title, 30), ep.QuoteCount,
			ep.CreatedAt.Format("2006-01-02 15:04"), ep.AudioPath)
	}

	return nil
}

// extractQuotes runs the LLM extraction backend over a transcript
func (p *Processor) extractQuotes(ctx context.Context, result *transcribe.Result) ([]quote.Quote, error) {
	extractor, err := p.getExtractor()
	if err != nil {
		return nil, err
	}

	opts := extract.DefaultOptions()
	if p.flags.NumQuotes > 0 {
		opts.NumQuotes = p.flags.NumQuotes
	}

	quotes, err := extractor.Extract(ctx, result.Text, opts)
	if err != nil {
		return nil, fmt.Errorf("quote extraction failed: %w", err)
	}

	attachTimestamps(quotes, result)
	return quotes, nil
}

// attachTimestamps locates each quote in the transcript segments and
// records its approximate start and end time
func attachTimestamps(quotes []quote.Quote, result *transcribe.Result) {
	if len(result.Segments) == 0 {
		return
	}

	for i, q := range quotes {
		// A quote may span segments, so match on a prefix of the text
		needle := q.Text
		if len(needle) > 40 {
			needle = needle[:40]
		}

		for _, seg := range result.Segments {
			if strings.Contains(seg.Text, needle) {
				quotes[i].Timestamp = map[string]float64{
					"start": seg.Start,
					"end":   seg.End,
				}
				break
			}
		}
	}
}

// recordEpisode updates the episode catalog. Catalog failures only warn,
// the rendered cards are already on disk.
func (p *Processor) recordEpisode(audioPath, title, episodeDir string, quotes []quote.Quote, hasCards bool) {
	lib := p.openLibrary()
	if lib == nil {
		return
	}
	defer lib.Close()

	ep := &library.Episode{
		AudioPath:      audioPath,
		Title:          title,
		TranscriptPath: filepath.Join(episodeDir, transcriptTextFile),
		QuotesPath:     filepath.Join(episodeDir, quotesFile),
	}
	if hasCards {
		ep.CardsDir = filepath.Join(episodeDir, cardsDirName)
	}

	id, err := lib.RecordEpisode(ep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record episode in library: %v\n", err)
		return
	}

	if err := lib.RecordQuotes(id, quotes); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record quotes in library: %v\n", err)
	}
}

// getTranscriber returns the configured transcription provider
func (p *Processor) getTranscriber() (transcribe.Provider, error) {
	if p.transcriber != nil {
		return p.transcriber, nil
	}

	config := &transcribe.Config{
		Provider:      "openai",
		Model:         p.flags.SpeechModel,
		Language:      p.flags.Language,
		OpenAIKey:     cli.GetOpenAIKey(),
		OpenAIBaseURL: cli.GetLLMBaseURL(p.flags),
		EnableCache:   viper.GetBool("transcribe.enable_cache"),
		CacheDir:      viper.GetString("transcribe.cache_dir"),
	}
	if config.CacheDir == "" {
		config.CacheDir = "./.transcript_cache"
	}
	if viper.IsSet("transcribe.model") && p.flags.SpeechModel == "whisper-1" {
		config.Model = viper.GetString("transcribe.model")
	}

	provider, err := transcribe.NewProvider(config)
	if err != nil {
		return nil, err
	}

	p.transcriber = provider
	return provider, nil
}

// getExtractor returns the configured quote extraction backend
func (p *Processor) getExtractor() (extract.Extractor, error) {
	if p.extractor != nil {
		return p.extractor, nil
	}

	// Resolved through viper so config file values apply when the flags
	// keep their defaults
	config := &extract.Config{
		Provider:      cli.GetLLMProvider(p.flags),
		Model:         cli.GetLLMModel(p.flags),
		Temperature:   cli.GetLLMTemperature(p.flags),
		MaxTokens:     extract.DefaultConfig().MaxTokens,
		OpenAIKey:     cli.GetOpenAIKey(),
		OpenAIBaseURL: cli.GetLLMBaseURL(p.flags),
		GeminiKey:     cli.GetGeminiKey(),
	}

	extractor, err := extract.NewExtractor(config)
	if err != nil {
		return nil, err
	}

	p.extractor = extractor
	return extractor, nil
}

// cardOptions builds the card renderer configuration from config file
// values, falling back to the defaults
func (p *Processor) cardOptions() *card.Options {
	opts := card.DefaultOptions()

	if viper.IsSet("card.width") {
		opts.Width = viper.GetInt("card.width")
	}
	if viper.IsSet("card.height") {
		opts.Height = viper.GetInt("card.height")
	}
	if viper.IsSet("card.background_color") {
		opts.BackgroundColor = viper.GetString("card.background_color")
	}
	if viper.IsSet("card.text_color") {
		opts.TextColor = viper.GetString("card.text_color")
	}
	if viper.IsSet("card.accent_color") {
		opts.AccentColor = viper.GetString("card.accent_color")
	}
	if viper.IsSet("card.font_path") {
		opts.FontPath = viper.GetString("card.font_path")
	}
	if viper.IsSet("card.font_size") {
		opts.FontSize = viper.GetFloat64("card.font_size")
	}
	if viper.IsSet("card.padding") {
		opts.Padding = viper.GetFloat64("card.padding")
	}

	return opts
}

// openLibrary opens the episode catalog, returning nil on failure
func (p *Processor) openLibrary() *library.Library {
	path := viper.GetString("library.path")
	if path == "" {
		outputDir := p.flags.OutputDir
		if outputDir == "" {
			outputDir = "."
		}
		path = filepath.Join(outputDir, "quotecast.db")
	}

	lib, err := library.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open episode library: %v\n", err)
		return nil
	}

	return lib
}

// episodeDir returns the output directory for an audio file
func (p *Processor) episodeDir(audioPath string) string {
	outputDir := p.flags.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	return filepath.Join(outputDir, internal.SanitizeFilename(internal.EpisodeName(audioPath)))
}

// transcriptPaths returns the text and JSON output paths for a standalone
// transcription run
func (p *Processor) transcriptPaths(audioPath string) (textPath, jsonPath string) {
	if p.flags.OutputPath != "" {
		textPath = p.flags.OutputPath
		ext := filepath.Ext(textPath)
		jsonPath = strings.TrimSuffix(textPath, ext) + ".json"
		return textPath, jsonPath
	}

	episodeDir := p.episodeDir(audioPath)
	return filepath.Join(episodeDir, transcriptTextFile), filepath.Join(episodeDir, transcriptJSONFile)
}

// printQuoteTable prints extracted quotes with their scores
func printQuoteTable(quotes []quote.Quote) {
	if len(quotes) == 0 {
		fmt.Println("No quotes extracted")
		return
	}

	fmt.Printf("\n%-4s %-5s %-10s %s\n", "#", "SCORE", "CATEGORY", "QUOTE")
	for i, q := range quotes {
		fmt.Printf("%-4d %-5.1f %-10s %s\n", i+1, q.Score, q.Category, truncate(q.Text, 70))
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
