package geneticsqa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorklistExpansion(t *testing.T) {
	items := CurrentTopics.Worklist(2, "")
	assert.Len(t, items, 20) // 10 subtopics x 2

	assert.Equal(t, "molecular_genetics", items[0].Category)
	assert.Equal(t, "DNA replication fork dynamics and coordination of enzymes", items[0].Topic)
	// Consecutive items repeat the same subtopic perTopic times.
	assert.Equal(t, items[0].Topic, items[1].Topic)
	assert.NotEqual(t, items[1].Topic, items[2].Topic)
}

func TestWorklistCategoryFilter(t *testing.T) {
	all := LegacyTopics.Worklist(1, "")
	assert.Len(t, all, 40) // 4 categories x 10 subtopics

	only := LegacyTopics.Worklist(1, "population_genetics")
	require.Len(t, only, 10)
	for _, item := range only {
		assert.Equal(t, "population_genetics", item.Category)
	}

	assert.Empty(t, LegacyTopics.Worklist(1, "no_such_category"))
}

func TestTopicsFor(t *testing.T) {
	assert.Equal(t, LegacyTopics, TopicsFor(LegacySchema))
	assert.Equal(t, CurrentTopics, TopicsFor(CurrentSchema))
}

func TestRetryableClassification(t *testing.T) {
	assert.True(t, retryable(&TransportError{StatusCode: 500, Message: "boom"}))
	assert.True(t, retryable(ErrTimeout))
	assert.False(t, retryable(&ParseError{Fragment: "x"}))
	assert.False(t, retryable(&SchemaError{Reason: "missing field"}))
}

func TestTransportErrorMessage(t *testing.T) {
	assert.Equal(t, "API error: 500 - internal", (&TransportError{StatusCode: 500, Message: "internal"}).Error())
	assert.Equal(t, "transport error: connection refused", (&TransportError{Message: "connection refused"}).Error())
}
