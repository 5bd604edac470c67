package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"geneticsqa"
)

func main() {
	var (
		variant     = flag.String("variant", "current", "Schema variant (current = 10 options, legacy = 8 options)")
		model       = flag.String("model", "anthropic/claude-sonnet-4", "Model identifier for generation")
		perTopic    = flag.Int("per-topic", 2, "Questions to generate per subtopic")
		category    = flag.String("category", "", "Only generate for this category (default: all)")
		outDir      = flag.String("outdir", "genetics_training_data", "Output directory")
		prefix      = flag.String("prefix", "", "Output filename prefix (default derived from variant)")
		delay       = flag.Duration("delay", time.Second, "Courtesy delay between API calls")
		timeout     = flag.Duration("timeout", 90*time.Second, "Per-request timeout")
		maxTokens   = flag.Int("max-tokens", 2500, "Token budget per completion")
		temperature = flag.Float64("temperature", 0.7, "Sampling temperature")
		apiKey      = flag.String("api-key", "", "OpenRouter API key (or set OPENROUTER_API_KEY env var)")
		bankPath    = flag.String("db", "", "Optional SQLite question bank to archive the run into")
		verbose     = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	geneticsqa.SetVerbose(*verbose)

	schema, err := geneticsqa.SchemaByName(*variant)
	if err != nil {
		log.Fatal(err)
	}

	if *apiKey == "" {
		*apiKey = os.Getenv("OPENROUTER_API_KEY")
		if *apiKey == "" {
			log.Fatal("OpenRouter API key is required. Use -api-key flag or set OPENROUTER_API_KEY environment variable.")
		}
	}

	if *prefix == "" {
		if schema.Name == geneticsqa.LegacySchema.Name {
			*prefix = "genetics"
		} else {
			*prefix = "v4_genetics"
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	worklist := geneticsqa.TopicsFor(schema).Worklist(*perTopic, *category)
	runID := geneticsqa.NewRunID()

	fmt.Println("Genetics Training Data Generator")
	fmt.Printf("Model: %s\n", *model)
	fmt.Printf("Variant: %s (%d options)\n", schema.Name, schema.NumOptions)
	fmt.Printf("Output directory: %s\n", *outDir)
	fmt.Printf("Worklist: %d questions (%d per subtopic)\n", len(worklist), *perTopic)

	gen := &geneticsqa.Generator{
		Client:      geneticsqa.NewModelClient(*apiKey, *timeout),
		Model:       *model,
		Schema:      schema,
		MaxTokens:   *maxTokens,
		Temperature: float32(*temperature),
		Delay:       *delay,
	}

	// Run log is best effort; generation proceeds without it.
	logger, err := geneticsqa.NewLLMLogger(runID, *model, schema.Name, len(worklist))
	if err != nil {
		log.Printf("Failed to create run log: %v", err)
	} else {
		gen.Logger = logger
		defer logger.Close()
	}

	result := gen.Run(context.Background(), worklist)

	qaFile := filepath.Join(*outDir, *prefix+"_qa.jsonl")
	if err := geneticsqa.WriteQuestions(qaFile, result.Accepted); err != nil {
		log.Fatalf("Failed to write accepted questions: %v", err)
	}

	chatFile := filepath.Join(*outDir, *prefix+"_chat.jsonl")
	if err := geneticsqa.WriteChatExamples(chatFile, result.Accepted, schema); err != nil {
		log.Fatalf("Failed to write chat examples: %v", err)
	}

	if schema.KeepFailures {
		failedFile := filepath.Join(*outDir, *prefix+"_failed.jsonl")
		if err := geneticsqa.WriteFailures(failedFile, result.Failed); err != nil {
			log.Fatalf("Failed to write failure partition: %v", err)
		}
		fmt.Printf("Failed: %d items -> %s\n", len(result.Failed), failedFile)
	}

	if *bankPath != "" {
		archiveRun(*bankPath, runID, *model, schema.Name, result)
	}

	fmt.Println("Generation complete!")
	fmt.Printf("Accepted: %d questions -> %s\n", len(result.Accepted), qaFile)
	fmt.Printf("Chat examples -> %s\n", chatFile)
	if len(worklist) > 0 {
		fmt.Printf("Success rate: %d/%d (%.0f%%)\n",
			len(result.Accepted), len(worklist), 100*float64(len(result.Accepted))/float64(len(worklist)))
	}
}

func archiveRun(path, runID, model, variant string, result *geneticsqa.GenerationResult) {
	bank, err := geneticsqa.OpenBank(path)
	if err != nil {
		log.Printf("Failed to open question bank: %v", err)
		return
	}
	defer bank.Close()

	if err := bank.Init(); err != nil {
		log.Printf("Failed to initialize question bank: %v", err)
		return
	}

	run := &geneticsqa.RunRecord{
		ID:        runID,
		Model:     model,
		Variant:   variant,
		CreatedAt: time.Now(),
		Accepted:  len(result.Accepted),
		Failed:    len(result.Failed),
	}
	if err := bank.RecordRun(run, result.Accepted); err != nil {
		log.Printf("Failed to archive run: %v", err)
		return
	}
	fmt.Printf("Archived run %s to %s\n", runID, path)
}
