package prompt

import "fmt"

const questionInstructions = `You are a market research expert. Generate 5-8 simple, clear questions to understand a business problem.

Focus on these key areas:
1. What industry/market is this?
2. Who are the customers?
3. How big is the opportunity?
4. What are the main challenges?
5. How urgent is this problem?

Keep questions short and simple. Use basic language.

Return ONLY a JSON array like this:
[
  {
    "id": "q1",
    "question": "What industry is this problem in?",
    "type": "text",
    "required": true,
    "order": 1
  }
]

Use "type": "select" with an "options" array of strings when the answer should be picked from a fixed list.`

// BuildQuestionPrompt returns the question-elicitation prompt for a problem statement.
func BuildQuestionPrompt(problem string) string {
	return fmt.Sprintf("%s\n\nProblem Statement: %s\n\nGenerate questions:", questionInstructions, problem)
}
