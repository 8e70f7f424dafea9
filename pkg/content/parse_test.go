package content_test

import (
	"testing"

	"github.com/slidesmith/slidesmith/pkg/content"

	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"corporate_vision": "Acme turns roadrunners into repeat customers.",
	"business_strategies": ["Expand catalog", "Improve delivery"],
	"supply_chain_contribution": ["Faster routing", "Vendor onboarding"],
	"risks_of_supply_chain_failure": ["Carrier delays", "Forecast error"],
	"critical_capabilities": ["Modern WMS", "Returns analytics"]
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "raw json",
			body: sampleJSON,
		},
		{
			name: "fenced json block",
			body: "Here is the slide content you asked for:\n\n```json\n" + sampleJSON + "\n```\n\nLet me know if you need changes.",
		},
		{
			name: "untagged fence",
			body: "Sure!\n\n```\n" + sampleJSON + "\n```\n",
		},
		{
			name: "second fence parses",
			body: "```json\n{not json at all\n```\n\n```json\n" + sampleJSON + "\n```\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := content.Parse(tt.body)
			require.NoError(t, err)

			require.Equal(t, "Acme turns roadrunners into repeat customers.", record.CorporateVision)
			require.Equal(t, []string{"Expand catalog", "Improve delivery"}, record.BusinessStrategies)
			require.Equal(t, []string{"Modern WMS", "Returns analytics"}, record.CriticalCapabilities)
		})
	}
}

func TestParseUnparseable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "plain prose",
			body: "I could not find reliable information about this company.",
		},
		{
			name: "empty body",
			body: "",
		},
		{
			name: "fence with wrong language",
			body: "```yaml\ncorporate_vision: nope\n```",
		},
		{
			name: "fence without json",
			body: "```json\nstill prose, no braces that parse\n```",
		},
		{
			name: "null body",
			body: "null",
		},
		{
			name: "fenced null",
			body: "```json\nnull\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := content.Parse(tt.body)

			require.ErrorIs(t, err, content.ErrUnparseableContent)
			require.Nil(t, record)
		})
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	body := `{"corporate_vision": "v", "business_strategies": ["a"], "supply_chain_contribution": ["b"], "risks_of_supply_chain_failure": ["c"], "critical_capabilities": ["d"], "sources": ["not in schema"]}`

	record, err := content.Parse(body)
	require.NoError(t, err)
	require.Equal(t, "v", record.CorporateVision)
}
