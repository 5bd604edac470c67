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
		input       = flag.String("input", "", "Input JSONL file of generated questions (required)")
		outDir      = flag.String("outdir", "genetics_training_data", "Output directory")
		prefix      = flag.String("prefix", "v3", "Output filename prefix")
		model       = flag.String("model", "anthropic/claude-opus-4", "Reviewer model identifier")
		delay       = flag.Duration("delay", time.Second, "Courtesy delay between API calls")
		timeout     = flag.Duration("timeout", 90*time.Second, "Per-request timeout")
		maxTokens   = flag.Int("max-tokens", 600, "Token budget per completion")
		temperature = flag.Float64("temperature", 0.3, "Sampling temperature")
		apiKey      = flag.String("api-key", "", "OpenRouter API key (or set OPENROUTER_API_KEY env var)")
		verbose     = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	geneticsqa.SetVerbose(*verbose)

	if *input == "" {
		log.Fatal("Input file is required. Use -input flag.")
	}
	if *apiKey == "" {
		*apiKey = os.Getenv("OPENROUTER_API_KEY")
		if *apiKey == "" {
			log.Fatal("OpenRouter API key is required. Use -api-key flag or set OPENROUTER_API_KEY environment variable.")
		}
	}

	questions, err := geneticsqa.LoadQuestions(*input)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}

	fmt.Println("Question Defense Review")
	fmt.Printf("Reviewer model: %s\n", *model)
	fmt.Printf("Input file: %s\n", *input)
	fmt.Printf("Loaded %d questions\n", len(questions))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	def := &geneticsqa.Defender{
		Client:      geneticsqa.NewModelClient(*apiKey, *timeout),
		Model:       *model,
		MaxTokens:   *maxTokens,
		Temperature: float32(*temperature),
		Delay:       *delay,
	}

	logger, err := geneticsqa.NewLLMLogger(geneticsqa.NewRunID(), *model, "defense", len(questions))
	if err != nil {
		log.Printf("Failed to create run log: %v", err)
	} else {
		def.Logger = logger
		defer logger.Close()
	}

	result := def.Run(context.Background(), questions)

	defendedFile := filepath.Join(*outDir, *prefix+"_defended.jsonl")
	if err := geneticsqa.WriteQuestions(defendedFile, result.Defended); err != nil {
		log.Fatalf("Failed to write defended partition: %v", err)
	}
	cantFile := filepath.Join(*outDir, *prefix+"_cant_defend.jsonl")
	if err := geneticsqa.WriteQuestions(cantFile, result.CantDefend); err != nil {
		log.Fatalf("Failed to write can't-defend partition: %v", err)
	}

	fmt.Println("Defense review complete!")
	fmt.Printf("Defended: %d questions -> %s\n", len(result.Defended), defendedFile)
	fmt.Printf("Can't defend: %d questions -> %s\n", len(result.CantDefend), cantFile)
	if len(questions) > 0 {
		fmt.Printf("Defense rate: %.0f%%\n", 100*float64(len(result.Defended))/float64(len(questions)))
	}
}
