package geneticsqa

import (
	"context"
	"log"
	"time"
)

// Reviewer runs the auto-review pass: every question gets one reviewer
// model call and ends up in exactly one partition. A failed call attaches a
// synthetic FLAG verdict so the item stays auditable instead of vanishing.
type Reviewer struct {
	Client      Completer
	Model       string
	MaxTokens   int
	Temperature float32
	Delay       time.Duration
	Logger      *LLMLogger
}

// ReviewResult holds the two output partitions of a review run.
type ReviewResult struct {
	Passed  []*Question
	Flagged []*Question
}

// Run reviews every question in order. The input records are returned with
// a review verdict attached; no other field is touched.
func (r *Reviewer) Run(ctx context.Context, questions []*Question) *ReviewResult {
	result := &ReviewResult{
		Passed:  []*Question{},
		Flagged: []*Question{},
	}

	for i, q := range questions {
		verdict, err := r.reviewOne(ctx, q)
		switch {
		case err != nil:
			log.Printf("Review %d/%d failed: %v", i+1, len(questions), err)
			q.Review = &ReviewVerdict{Verdict: VerdictFlag, Notes: "Auto-review failed"}
			result.Flagged = append(result.Flagged, q)
		case verdict.Verdict == VerdictPass:
			VerboseLog("Review %d/%d: PASS", i+1, len(questions))
			q.Review = verdict
			result.Passed = append(result.Passed, q)
		default:
			VerboseLog("Review %d/%d: FLAG - %s", i+1, len(questions), verdict.Notes)
			q.Review = verdict
			result.Flagged = append(result.Flagged, q)
		}

		if err := pause(ctx, r.Delay); err != nil {
			break
		}
	}

	return result
}

func (r *Reviewer) reviewOne(ctx context.Context, q *Question) (*ReviewVerdict, error) {
	prompt := BuildReviewPrompt(q)
	if r.Logger != nil {
		r.Logger.LogLLMRequest("Reviewer", prompt)
	}

	text, err := r.Client.Complete(ctx, CompletionRequest{
		Model:       r.Model,
		Prompt:      prompt,
		MaxTokens:   r.MaxTokens,
		Temperature: r.Temperature,
	})
	if err != nil {
		return nil, err
	}
	if r.Logger != nil {
		r.Logger.LogLLMResponse("Reviewer", text)
	}

	return DecodeReviewVerdict(text)
}
