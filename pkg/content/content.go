package content

import (
	"fmt"
)

// Record is the fixed payload exchanged between content generation and slide
// rendering. All five fields must be filled before a deck can be rendered.
type Record struct {
	CorporateVision string `json:"corporate_vision" yaml:"corporate_vision"`

	BusinessStrategies        []string `json:"business_strategies" yaml:"business_strategies"`
	SupplyChainContribution   []string `json:"supply_chain_contribution" yaml:"supply_chain_contribution"`
	RisksOfSupplyChainFailure []string `json:"risks_of_supply_chain_failure" yaml:"risks_of_supply_chain_failure"`
	CriticalCapabilities      []string `json:"critical_capabilities" yaml:"critical_capabilities"`
}

// Validate reports the first absent field. Bullet counts are a content
// guideline, not a contract, and are not checked here.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: no record", ErrIncompleteContent)
	}

	fields := []struct {
		name  string
		empty bool
	}{
		{"corporate_vision", r.CorporateVision == ""},
		{"business_strategies", len(r.BusinessStrategies) == 0},
		{"supply_chain_contribution", len(r.SupplyChainContribution) == 0},
		{"risks_of_supply_chain_failure", len(r.RisksOfSupplyChainFailure) == 0},
		{"critical_capabilities", len(r.CriticalCapabilities) == 0},
	}

	for _, f := range fields {
		if f.empty {
			return fmt.Errorf("%w: field %q", ErrIncompleteContent, f.name)
		}
	}

	return nil
}

// Clone returns a copy that shares no slices with the receiver, so read-only
// preset tables stay read-only.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	clone := *r

	clone.BusinessStrategies = append([]string(nil), r.BusinessStrategies...)
	clone.SupplyChainContribution = append([]string(nil), r.SupplyChainContribution...)
	clone.RisksOfSupplyChainFailure = append([]string(nil), r.RisksOfSupplyChainFailure...)
	clone.CriticalCapabilities = append([]string(nil), r.CriticalCapabilities...)

	return &clone
}
