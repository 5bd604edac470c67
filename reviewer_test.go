package geneticsqa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewerPartitionsByVerdict(t *testing.T) {
	responses := []string{
		"```json\n{\"verdict\": \"PASS\", \"confidence\": \"high\", \"concerns\": [], \"notes\": \"solid question\"}\n```",
		`{"verdict": "FLAG", "confidence": "medium", "concerns": ["two defensible answers"], "notes": "option D is also correct"}`,
	}
	call := 0
	rev := &Reviewer{
		Client: completerFunc(func(ctx context.Context, req CompletionRequest) (string, error) {
			resp := responses[call]
			call++
			return resp, nil
		}),
	}

	questions := []*Question{validCurrentQuestion(), validCurrentQuestion()}
	result := rev.Run(context.Background(), questions)

	require.Len(t, result.Passed, 1)
	require.Len(t, result.Flagged, 1)

	assert.Equal(t, VerdictPass, result.Passed[0].Review.Verdict)
	assert.Equal(t, "solid question", result.Passed[0].Review.Notes)
	assert.Equal(t, []string{"two defensible answers"}, result.Flagged[0].Review.Concerns)

	// Verdicts are attached; validated fields stay untouched.
	assert.Equal(t, "C", result.Passed[0].CorrectAnswer)
	assert.Len(t, result.Passed[0].Options, 10)
}

func TestReviewerFlagsOnFailure(t *testing.T) {
	rev := &Reviewer{
		Client: completerFunc(func(ctx context.Context, req CompletionRequest) (string, error) {
			return "", &TransportError{StatusCode: 500, Message: "internal server error"}
		}),
	}

	result := rev.Run(context.Background(), []*Question{validCurrentQuestion()})

	assert.Empty(t, result.Passed)
	require.Len(t, result.Flagged, 1)
	assert.Equal(t, VerdictFlag, result.Flagged[0].Review.Verdict)
	assert.Equal(t, "Auto-review failed", result.Flagged[0].Review.Notes)
}

func TestReviewerFlagsOnMalformedVerdict(t *testing.T) {
	rev := &Reviewer{
		Client: completerFunc(func(ctx context.Context, req CompletionRequest) (string, error) {
			return "I think the question looks fine overall.", nil
		}),
	}

	result := rev.Run(context.Background(), []*Question{validCurrentQuestion()})

	assert.Empty(t, result.Passed)
	require.Len(t, result.Flagged, 1)
	assert.Equal(t, VerdictFlag, result.Flagged[0].Review.Verdict)
}

func TestReviewerEmptyInput(t *testing.T) {
	rev := &Reviewer{
		Client: completerFunc(func(ctx context.Context, req CompletionRequest) (string, error) {
			t.Fatal("no call expected")
			return "", nil
		}),
	}

	result := rev.Run(context.Background(), nil)
	assert.NotNil(t, result.Passed)
	assert.NotNil(t, result.Flagged)
	assert.Empty(t, result.Passed)
	assert.Empty(t, result.Flagged)
}
