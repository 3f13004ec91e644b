package evaluation

import "fmt"

func BuildPrompt(idea StartupIdea) string {
	return fmt.Sprintf(`You are a startup evaluator. Analyze the following startup idea and return valid JSON only. Do not repeat input.

Startup:
Title: %s
Problem: %s
Solution: %s
Audience: %s
Business Model: %s

Output JSON format:
{
  "isGibberish": boolean,
  "score": {
    "overall": number [0-100],
    "marketPotential": number [0-100],
    "technicalFeasibility": number [0-100]
  },
  "swotAnalysis": {
    "strengths": [string, ...],
    "weaknesses": [string, ...],
    "opportunities": [string, ...],
    "threats": [string, ...]
  },
  "mvpSuggestions": [string, string, string],
  "businessModelIdeas": [string, ...],
  "marketAnalysis": {
    "targetMarket": string,
    "tam": string (total addressable market in USD, numeric format only, e.g. "$1500000000", and mention the user types or groups included in TAM),
    "sam": string (serviceable available market in USD, and mention who is actually reachable based on your scope),
    "som": string (serviceable obtainable market in USD, and mention who is most likely to convert first),
    "growthRate": string (state the CAGR or growth and the reason behind this growth based on market forces or user demand),
    "trends": [string, ...],
    "competitors": [string, ...],
    "customerNeeds": [string, ...],
    "barriersToEntry": [string, ...]
  }
}
- Return only valid JSON
- Do not repeat or rephrase the input.
- No markdown, no commentary.`,
		idea.Title,
		idea.Problem,
		idea.Solution,
		idea.Audience,
		idea.BusinessModel,
	)
}
