package domain

import (
	"fmt"
	"strings"
)

// Topic summary display strings for the degraded cases.
const (
	TopicsInsufficientText = "Not enough reviews to generate topics."
	TopicsSparseText       = "Could not extract topics: vocabulary too sparse."
	topicsFailedPrefix     = "Could not extract topics: "
	topicSeparator         = " | "
)

// TopicStatus describes how a topic summary was produced.
type TopicStatus string

// Topic summary statuses.
const (
	// TopicStatusNone means extraction was not attempted.
	TopicStatusNone TopicStatus = ""

	// TopicStatusOK means the model was fitted and labels are present.
	TopicStatusOK TopicStatus = "ok"

	// TopicStatusInsufficientData means fewer than two documents were given.
	TopicStatusInsufficientData TopicStatus = "insufficient_data"

	// TopicStatusSparseVocabulary means no term survived vocabulary filtering.
	TopicStatusSparseVocabulary TopicStatus = "sparse_vocabulary"

	// TopicStatusFailed means fitting failed for another reason.
	TopicStatusFailed TopicStatus = "failed"
)

// TopicLabel is one extracted topic.
type TopicLabel struct {
	// Index is the 1-based topic number.
	Index int

	// Words are the representative terms, strongest first.
	Words []string
}

// String renders the label as "Topic i: w1 w2 ...".
func (t TopicLabel) String() string {
	return fmt.Sprintf("Topic %d: %s", t.Index, strings.Join(t.Words, " "))
}

// TopicSummary is the advisory theme summary of a recommendation.
type TopicSummary struct {
	Status TopicStatus
	Labels []TopicLabel

	// Text is the display string.
	Text string
}

// NewTopicSummary builds a successful summary from labels in index order.
func NewTopicSummary(labels []TopicLabel) TopicSummary {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.String()
	}
	return TopicSummary{
		Status: TopicStatusOK,
		Labels: labels,
		Text:   strings.Join(parts, topicSeparator),
	}
}

// InsufficientTopics is the summary for batches with fewer than two documents.
func InsufficientTopics() TopicSummary {
	return TopicSummary{Status: TopicStatusInsufficientData, Text: TopicsInsufficientText}
}

// SparseTopics is the summary for batches whose vocabulary filtered to nothing.
func SparseTopics() TopicSummary {
	return TopicSummary{Status: TopicStatusSparseVocabulary, Text: TopicsSparseText}
}

// FailedTopics is the summary for any other fitting failure.
func FailedTopics(err error) TopicSummary {
	return TopicSummary{Status: TopicStatusFailed, Text: topicsFailedPrefix + err.Error()}
}

// String returns the display text.
func (s TopicSummary) String() string {
	return s.Text
}
