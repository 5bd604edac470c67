package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"geneticsqa"
)

// Interactive terminal loop for spot-checking generated questions. Reads
// records either from a JSONL file (flags go to a plain text flag file) or
// from a question bank run (flags are marked on the bank rows).

func main() {
	var (
		input    = flag.String("input", "", "Input JSONL file of questions to review")
		flagFile = flag.String("flagfile", "flagged_questions.txt", "File to append flagged question numbers to")
		bankPath = flag.String("db", "", "Question bank to review from instead of a JSONL file")
		runID    = flag.String("run", "", "Run ID to review (required with -db)")
	)

	flag.Parse()

	if *bankPath != "" {
		if *runID == "" {
			log.Fatal("Run ID is required with -db. Use -run flag.")
		}
		reviewBank(*bankPath, *runID)
		return
	}

	if *input == "" {
		log.Fatal("Input file is required. Use -input flag (or -db with -run).")
	}

	questions, err := geneticsqa.LoadQuestions(*input)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}

	stdin := bufio.NewScanner(os.Stdin)
	for i, q := range questions {
		printQuestion(i, len(questions), q)

		switch readResponse(stdin) {
		case "q":
			return
		case "f":
			fmt.Printf("  -> Flagged question %d\n", i+1)
			if err := appendFlag(*flagFile, i+1); err != nil {
				log.Printf("Failed to record flag: %v", err)
			}
		}
	}
}

func reviewBank(path, runID string) {
	bank, err := geneticsqa.OpenBank(path)
	if err != nil {
		log.Fatalf("Failed to open question bank: %v", err)
	}
	defer bank.Close()

	rows, err := bank.Questions(runID)
	if err != nil {
		log.Fatalf("Failed to load run %s: %v", runID, err)
	}
	if len(rows) == 0 {
		fmt.Printf("No questions stored for run %s\n", runID)
		return
	}

	stdin := bufio.NewScanner(os.Stdin)
	for i, row := range rows {
		q, err := row.ToQuestion()
		if err != nil {
			log.Printf("Skipping malformed bank row %s: %v", row.ID, err)
			continue
		}
		printQuestion(i, len(rows), q)

		switch readResponse(stdin) {
		case "q":
			return
		case "f":
			fmt.Printf("  -> Flagged question %d\n", i+1)
			if err := bank.MarkFlagged(row.ID); err != nil {
				log.Printf("Failed to flag question: %v", err)
			}
		}
	}
}

func printQuestion(i, total int, q *geneticsqa.Question) {
	divider := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n", divider)
	fmt.Printf("QUESTION %d of %d\n", i+1, total)
	fmt.Printf("Category: %s | Subtopic: %s\n", orNA(q.Category), orNA(q.Subtopic))
	fmt.Printf("%s\n", divider)
	fmt.Printf("\n%s\n\n", q.Question)

	for _, letter := range q.Letters() {
		fmt.Printf("  %s. %s\n", letter, q.Options[letter])
	}

	fmt.Printf("\nCORRECT ANSWER: %s\n", q.CorrectAnswer)
	fmt.Printf("\nREASONING:\n%s\n", q.Rationale())
}

// readResponse reads one line of input; EOF counts as quit.
func readResponse(stdin *bufio.Scanner) string {
	fmt.Print("\n[Enter] next | [f] flag as bad | [q] quit: ")
	if !stdin.Scan() {
		return "q"
	}
	return strings.ToLower(strings.TrimSpace(stdin.Text()))
}

func appendFlag(path string, num int) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%d\n", num)
	return err
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
