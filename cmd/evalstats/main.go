package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// Summarizes an lm-evaluation-harness samples file: accuracy, wrong answers
// grouped by question source, and a few example misses.

type evalSample struct {
	ExactMatch    float64  `json:"exact_match"`
	Doc           evalDoc  `json:"doc"`
	FilteredResps []string `json:"filtered_resps"`
}

type evalDoc struct {
	Src      string   `json:"src"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

func main() {
	var (
		samplesFile = flag.String("samples", "", "Samples JSONL file from lm-evaluation-harness (required)")
		numExamples = flag.Int("examples", 5, "Number of wrong answers to print")
	)

	flag.Parse()

	if *samplesFile == "" {
		log.Fatal("Samples file is required. Use -samples flag.")
	}

	f, err := os.Open(*samplesFile)
	if err != nil {
		log.Fatalf("Failed to open samples file: %v", err)
	}
	defer f.Close()

	var correct, wrong []evalSample
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var sample evalSample
		if err := json.Unmarshal([]byte(line), &sample); err != nil {
			log.Fatalf("Failed to parse sample: %v", err)
		}
		if sample.ExactMatch == 1.0 {
			correct = append(correct, sample)
		} else {
			wrong = append(wrong, sample)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read samples file: %v", err)
	}

	total := len(correct) + len(wrong)
	if total == 0 {
		fmt.Println("No samples found.")
		return
	}

	fmt.Printf("Total questions: %d\n", total)
	fmt.Printf("Correct: %d (%.1f%%)\n", len(correct), 100*float64(len(correct))/float64(total))
	fmt.Printf("Wrong: %d (%.1f%%)\n", len(wrong), 100*float64(len(wrong))/float64(total))

	fmt.Println("\n--- Wrong answers by source ---")
	sources := map[string]int{}
	for _, sample := range wrong {
		src := sample.Doc.Src
		if src == "" {
			src = "unknown"
		}
		sources[src]++
	}
	names := make([]string, 0, len(sources))
	for src := range sources {
		names = append(names, src)
	}
	sort.Slice(names, func(i, j int) bool { return sources[names[i]] > sources[names[j]] })
	for _, src := range names {
		fmt.Printf("  %s: %d\n", src, sources[src])
	}

	fmt.Println("\n--- Sample wrong answers ---")
	for i, sample := range wrong {
		if i >= *numExamples {
			break
		}
		fmt.Printf("\nQ: %s\n", truncate(sample.Doc.Question, 200))
		fmt.Printf("Options: %v\n", sample.Doc.Options)
		resp := ""
		if len(sample.FilteredResps) > 0 {
			resp = sample.FilteredResps[0]
		}
		fmt.Printf("Correct: %s, Model said: %s\n", sample.Doc.Answer, resp)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
