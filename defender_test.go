package geneticsqa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefenderPartitionsByVerdict(t *testing.T) {
	responses := []string{
		"```json\n{\"can_defend\": true, \"defense\": \"the answer follows directly from the RNA template mechanism\", \"weak_points\": []}\n```",
		`{"can_defend": false, "defense": "option G is equally defensible", "weak_points": ["ambiguous wording"]}`,
	}
	call := 0
	def := &Defender{
		Client: completerFunc(func(ctx context.Context, req CompletionRequest) (string, error) {
			resp := responses[call]
			call++
			return resp, nil
		}),
	}

	questions := []*Question{validCurrentQuestion(), validCurrentQuestion()}
	result := def.Run(context.Background(), questions)

	require.Len(t, result.Defended, 1)
	require.Len(t, result.CantDefend, 1)

	assert.True(t, result.Defended[0].Defense.CanDefend)
	assert.False(t, result.CantDefend[0].Defense.CanDefend)
	assert.Equal(t, "option G is equally defensible", result.CantDefend[0].Defense.Defense)
	assert.Equal(t, []string{"ambiguous wording"}, result.CantDefend[0].Defense.WeakPoints)
}

func TestDefenderFlagsOnFailure(t *testing.T) {
	def := &Defender{
		Client: completerFunc(func(ctx context.Context, req CompletionRequest) (string, error) {
			return "", ErrTimeout
		}),
	}

	result := def.Run(context.Background(), []*Question{validCurrentQuestion()})

	assert.Empty(t, result.Defended)
	require.Len(t, result.CantDefend, 1)
	assert.False(t, result.CantDefend[0].Defense.CanDefend)
	assert.Equal(t, "Auto-defense failed", result.CantDefend[0].Defense.Defense)
}
