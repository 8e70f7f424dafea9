package content

import (
	"fmt"
)

// SystemInstructions is the fixed system message sent ahead of every
// completion request.
const SystemInstructions = `You are a precise enterprise research/writing assistant for Customer Success Managers.
Generate concise, presentation-ready content based on broadly available public context for the named company.
Keep bullets short (6–14 words). Avoid speculation or marketing fluff. If specifics are unclear, give conservative,
generically relevant bullets appropriate to the company's business model.`

const userPromptTemplate = `Company: %s

Task: Draft sections for an executive slide titled "Customer Updates – Strategic Priorities & Supply Chain Context".
Keep it concise, factual, and presentation-ready. Use bullets where applicable. No fluff.

Return strict JSON with keys:
- corporate_vision: string (2–3 sentences).
- business_strategies: array of 4–6 short bullets.
- supply_chain_contribution: array of 4–6 short bullets.
- risks_of_supply_chain_failure: array of 4–6 short bullets.
- critical_capabilities: array of 4–6 short bullets.

Rules:
- Base on widely reported info (brand positioning, retail/e-commerce ops, logistics practices).
- If specifics are not well-documented, provide conservative, relevant bullets for the company type.
- Do not include sources or URLs. Return only JSON.`

// UserPrompt interpolates the customer name into the fixed prompt template.
func UserPrompt(customer string) string {
	return fmt.Sprintf(userPromptTemplate, customer)
}
