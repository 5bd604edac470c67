package geneticsqa

import (
	"context"
	"log"
	"time"
)

// Defender runs the defense pass: instead of hunting for flaws, the
// reviewer model is asked to argue that each question is solid. Questions
// it cannot confidently defend go to the needs-attention partition.
type Defender struct {
	Client      Completer
	Model       string
	MaxTokens   int
	Temperature float32
	Delay       time.Duration
	Logger      *LLMLogger
}

// DefenseResult holds the two output partitions of a defense run.
type DefenseResult struct {
	Defended   []*Question
	CantDefend []*Question
}

// Run defends every question in order, attaching the defense verdict. A
// failed call attaches a synthetic cannot-defend verdict.
func (d *Defender) Run(ctx context.Context, questions []*Question) *DefenseResult {
	result := &DefenseResult{
		Defended:   []*Question{},
		CantDefend: []*Question{},
	}

	for i, q := range questions {
		verdict, err := d.defendOne(ctx, q)
		switch {
		case err != nil:
			log.Printf("Defense %d/%d failed: %v", i+1, len(questions), err)
			q.Defense = &DefenseVerdict{CanDefend: false, Defense: "Auto-defense failed"}
			result.CantDefend = append(result.CantDefend, q)
		case verdict.CanDefend:
			VerboseLog("Defense %d/%d: DEFENDED", i+1, len(questions))
			q.Defense = verdict
			result.Defended = append(result.Defended, q)
		default:
			VerboseLog("Defense %d/%d: CAN'T DEFEND - %s", i+1, len(questions), verdict.Defense)
			q.Defense = verdict
			result.CantDefend = append(result.CantDefend, q)
		}

		if err := pause(ctx, d.Delay); err != nil {
			break
		}
	}

	return result
}

func (d *Defender) defendOne(ctx context.Context, q *Question) (*DefenseVerdict, error) {
	prompt := BuildDefensePrompt(q)
	if d.Logger != nil {
		d.Logger.LogLLMRequest("Defender", prompt)
	}

	text, err := d.Client.Complete(ctx, CompletionRequest{
		Model:       d.Model,
		Prompt:      prompt,
		MaxTokens:   d.MaxTokens,
		Temperature: d.Temperature,
	})
	if err != nil {
		return nil, err
	}
	if d.Logger != nil {
		d.Logger.LogLLMResponse("Defender", text)
	}

	return DecodeDefenseVerdict(text)
}
