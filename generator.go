package geneticsqa

import (
	"context"
	"log"
	"time"
)

// Generator runs the question generation pipeline: one prompt and one model
// call per work item, strictly sequential, with a fixed courtesy delay
// between calls. Items that fail anywhere (transport, parse, schema) are
// logged and, when the schema keeps failures, routed to the failure
// partition; nothing is fatal to the run.
type Generator struct {
	Client      Completer
	Model       string
	Schema      Schema
	MaxTokens   int
	Temperature float32
	Delay       time.Duration
	Logger      *LLMLogger
}

// GenerationResult holds the two output partitions of a generation run, in
// processing order.
type GenerationResult struct {
	Accepted []*Question
	Failed   []*GenerationFailure
}

// Run consumes the worklist and returns the partitions. The concept
// registry starts empty, is extended after every acceptance, and feeds the
// next prompt's exclusion list.
func (g *Generator) Run(ctx context.Context, worklist []WorkItem) *GenerationResult {
	reg := NewConceptRegistry()
	result := &GenerationResult{
		Accepted: []*Question{},
		Failed:   []*GenerationFailure{},
	}

	for i, item := range worklist {
		q, err := g.generateOne(ctx, item, reg)
		if err != nil {
			log.Printf("Question %d/%d (%s): %v", i+1, len(worklist), item.Topic, err)
			if g.Logger != nil {
				g.Logger.LogItemResult(item.Topic, "FAILED", err.Error())
			}
			if g.Schema.KeepFailures {
				result.Failed = append(result.Failed, &GenerationFailure{
					Category: item.Category,
					Subtopic: item.Topic,
					Error:    err.Error(),
				})
			}
		} else {
			reg.Add(q.ConceptTag())
			result.Accepted = append(result.Accepted, q)
			VerboseLog("Question %d/%d (%s): accepted", i+1, len(worklist), item.Topic)
			if g.Logger != nil {
				g.Logger.LogItemResult(item.Topic, "ACCEPTED", q.ConceptTag())
			}
		}

		// Courtesy rate limit, applied after every call regardless of outcome.
		if err := pause(ctx, g.Delay); err != nil {
			break
		}
	}

	return result
}

func (g *Generator) generateOne(ctx context.Context, item WorkItem, reg *ConceptRegistry) (*Question, error) {
	prompt := BuildGenerationPrompt(g.Schema, item, reg)
	if g.Logger != nil {
		g.Logger.LogLLMRequest("Generator", prompt)
	}

	text, err := g.Client.Complete(ctx, CompletionRequest{
		Model:       g.Model,
		Prompt:      prompt,
		MaxTokens:   g.MaxTokens,
		Temperature: g.Temperature,
	})
	if err != nil {
		return nil, err
	}
	if g.Logger != nil {
		g.Logger.LogLLMResponse("Generator", text)
	}

	q, err := DecodeQuestion(text)
	if err != nil {
		return nil, err
	}
	if err := g.Schema.Validate(q); err != nil {
		return nil, err
	}

	q.Category = item.Category
	q.Subtopic = item.Topic
	return q, nil
}
