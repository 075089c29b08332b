package prompt

import (
	"fmt"
	"strings"

	"github.com/glowup/research-backend/internal/entity"
)

// BasicReportSections are the headings requested when no answers are available.
var BasicReportSections = []string{
	"Executive Summary",
	"Market Analysis & Market Maps",
	"Ideal Customer Profile (ICP)",
	"Competitive Landscape Breakdown",
	"Pricing Guidance & Business Model",
	"Strategic Recommendations",
	"Financial Projections",
}

// DetailedReportSections are the headings requested for answer-augmented reports.
var DetailedReportSections = []string{
	"Executive Summary",
	"Market Analysis",
	"Competitive Landscape",
	"Customer Insights",
	"Market Opportunity",
	"Recommendations",
	"Conclusion",
}

const basicReportTemplate = `You are an expert market research analyst and startup strategist. Based on the problem statement below, generate a comprehensive, structured market research report.

PROBLEM STATEMENT:
%s

Generate the report using exactly these section headings, in this order:

## Executive Summary
- One-paragraph overview of the problem and the opportunity
- 3-5 bullet points with the key findings
- A one-line verdict on whether the opportunity is worth pursuing

## Market Analysis & Market Maps
- Estimated TAM, SAM and SOM with numeric estimates and the reasoning behind them
- Market growth rate (CAGR) and the main industry trends and drivers
- A text market map: list the market segments and the players in each segment

## Ideal Customer Profile (ICP)
- Primary and secondary customer segments
- Demographics or firmographics, pain points, buying triggers and objections
- Where these customers can be reached (channels)

## Competitive Landscape Breakdown
- A table as text with columns: Competitor | Offering | Pricing | Strengths | Weaknesses
- Direct competitors, indirect competitors and substitutes
- Gaps in the market that a new entrant can exploit

## Pricing Guidance & Business Model
- Recommended pricing model and price points with numeric ranges
- Revenue streams and unit economics (CAC, LTV, gross margin estimates)
- Comparison with competitor pricing

## Strategic Recommendations
- Go-to-market strategy and positioning
- Prioritised next steps for the first 90 days
- Key risks and how to mitigate them

## Financial Projections
- A 3-year projection table as text with columns: Year | Customers | Revenue | Costs | Profit
- Key assumptions behind the projections
- Break-even estimate

Make the report professional, data-driven and actionable. Use numeric estimates wherever possible and clearly mark them as estimates. Use "## " only for the section headings above.`

const detailedReportTemplate = `You are an expert market research analyst. Based on the problem statement and user answers below, generate a comprehensive market research report.

PROBLEM STATEMENT:
%s

USER ANSWERS:
%s

Please generate a detailed market research report with the following structure:

## Executive Summary
- Brief overview of the problem and market opportunity
- Key findings and recommendations

## Market Analysis
- Market size and growth potential
- Industry trends and drivers
- Market segmentation

## Competitive Landscape
- Key competitors and their positioning
- Competitive advantages and disadvantages
- Market share analysis

## Customer Insights
- Target customer segments
- Customer pain points and needs
- Customer behavior and preferences

## Market Opportunity
- Market gap analysis
- Revenue potential
- Entry barriers and challenges

## Recommendations
- Strategic recommendations
- Implementation roadmap
- Risk mitigation strategies

## Conclusion
- Summary of key insights
- Next steps

Make the report professional, data-driven, and actionable. Use the user's answers to provide specific insights and recommendations. Keep each section concise but comprehensive.`

// BuildReportPrompt returns the basic report prompt when answers is empty and the
// answer-augmented prompt otherwise.
func BuildReportPrompt(problem string, answers []entity.AnsweredQuestion) string {
	if len(answers) == 0 {
		return fmt.Sprintf(basicReportTemplate, problem)
	}
	return fmt.Sprintf(detailedReportTemplate, problem, formatAnswers(answers))
}

func formatAnswers(answers []entity.AnsweredQuestion) string {
	var b strings.Builder
	for i, a := range answers {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Q%d: %s\nA%d: %s\n", i+1, a.Question, i+1, a.Answer)
	}
	return b.String()
}
