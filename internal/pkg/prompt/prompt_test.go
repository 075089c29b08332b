package prompt

import (
	"strings"
	"testing"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionPrompt(t *testing.T) {
	problem := "Small businesses struggle with inventory management daily"
	got := BuildQuestionPrompt(problem)

	assert.True(t, strings.HasPrefix(got, questionInstructions))
	assert.Contains(t, got, "Problem Statement: "+problem)
	assert.True(t, strings.HasSuffix(got, "Generate questions:"))
	for _, field := range []string{`"id"`, `"question"`, `"type"`, `"required"`, `"order"`, `"options"`} {
		assert.Contains(t, got, field)
	}
}

func headingOrder(t *testing.T, text string, headings []string) {
	t.Helper()
	last := -1
	for _, h := range headings {
		idx := strings.Index(text, "## "+h+"\n")
		if !assert.GreaterOrEqual(t, idx, 0, "missing heading %q", h) {
			continue
		}
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}

func TestBuildReportPrompt_Basic(t *testing.T) {
	got := BuildReportPrompt("Restaurants waste too much food every day", nil)

	assert.Contains(t, got, "PROBLEM STATEMENT:\nRestaurants waste too much food every day\n")
	assert.NotContains(t, got, "USER ANSWERS")
	headingOrder(t, got, BasicReportSections)
	assert.Equal(t, len(BasicReportSections), strings.Count(got, "\n## "))
}

func TestBuildReportPrompt_WithAnswers(t *testing.T) {
	answers := []entity.AnsweredQuestion{
		{Question: "What industry?", Answer: "Retail"},
		{Question: "Who are customers?", Answer: "Small shop owners"},
	}
	got := BuildReportPrompt("Small businesses struggle with inventory", answers)

	assert.Contains(t, got, "Q1: What industry?\nA1: Retail\n")
	assert.Contains(t, got, "Q2: Who are customers?\nA2: Small shop owners\n")
	headingOrder(t, got, DetailedReportSections)
	assert.NotContains(t, got, "Financial Projections")
}

func TestBuildReportPrompt_Deterministic(t *testing.T) {
	answers := []entity.AnsweredQuestion{{Question: "Q", Answer: "A"}}
	assert.Equal(t, BuildReportPrompt("problem text here", answers), BuildReportPrompt("problem text here", answers))
}
