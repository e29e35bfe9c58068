package ai

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestCollectText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("first part"), genai.Text(" second part")},
				},
			},
		},
	}
	assert.Equal(t, "first part second part", collectText(resp))
}

func TestCollectTextSkipsEmptyCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("  answer  ")},
				},
			},
		},
	}
	assert.Equal(t, "answer", collectText(resp))
}

func TestCollectTextEmpty(t *testing.T) {
	assert.Equal(t, "", collectText(&genai.GenerateContentResponse{}))
}
