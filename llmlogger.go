package geneticsqa

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LLMLogger records every prompt and raw response of one pipeline run to a
// per-run log file, so failed or flagged items can be audited afterwards.
type LLMLogger struct {
	file  *os.File
	mu    sync.Mutex
	runID string
}

// NewLLMLogger creates a log file for one run under the log directory.
func NewLLMLogger(runID, model, variant string, itemCount int) (*LLMLogger, error) {
	if err := os.MkdirAll("log", 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := filepath.Join("log", fmt.Sprintf("%s.log", runID))
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := &LLMLogger{
		file:  file,
		runID: runID,
	}

	logger.Logf("=== Pipeline Run Log ===\n")
	logger.Logf("Run ID: %s\n", runID)
	logger.Logf("Model: %s\n", model)
	logger.Logf("Variant: %s\n", variant)
	logger.Logf("Items: %d\n", itemCount)
	logger.Logf("Started: %s\n", time.Now().Format(time.RFC3339))
	logger.Logf("========================\n\n")

	return logger, nil
}

// Logf writes a formatted log entry with timestamp
func (ll *LLMLogger) Logf(format string, args ...interface{}) {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	message := fmt.Sprintf(format, args...)

	fmt.Fprintf(ll.file, "[%s] %s", timestamp, message)

	// Flush so a crashed run still leaves a usable log
	ll.file.Sync()
}

// LogLLMRequest logs an LLM request
func (ll *LLMLogger) LogLLMRequest(stage, prompt string) {
	ll.Logf("=== LLM REQUEST (%s) ===\n", stage)
	ll.Logf("Prompt:\n%s\n", prompt)
	ll.Logf("=====================\n\n")
}

// LogLLMResponse logs an LLM response
func (ll *LLMLogger) LogLLMResponse(stage, response string) {
	ll.Logf("=== LLM RESPONSE (%s) ===\n", stage)
	ll.Logf("Response:\n%s\n", response)
	ll.Logf("======================\n\n")
}

// LogItemResult logs how one worklist item resolved.
func (ll *LLMLogger) LogItemResult(label, outcome, detail string) {
	ll.Logf("Item %s: %s - %s\n", label, outcome, detail)
}

// Close closes the log file
func (ll *LLMLogger) Close() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	if ll.file != nil {
		ll.Logf("=== Pipeline Run Complete ===\n")
		ll.Logf("Completed: %s\n", time.Now().Format(time.RFC3339))
		ll.Logf("=============================\n")
		return ll.file.Close()
	}
	return nil
}
