package usecase

import (
	"context"
	"fmt"
)

// resolveConfigurations determines the authoritative set of configuration
// ids to render for a quotation.
//
// With an explicit configurationID the quotation's set is still fetched to
// verify membership: a mismatch is a validation failure, not a smaller run.
// Without one the full deduplicated set is returned; empty is a valid answer.
func (u *TriggerRenderUseCase) resolveConfigurations(ctx context.Context, quotationID, configurationID string) ([]string, error) {
	set, err := u.configurationSet(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("fetching configuration set for quotation %s: %w", quotationID, err)
	}

	if configurationID == "" {
		return set, nil
	}

	for _, id := range set {
		if id == configurationID {
			return []string{configurationID}, nil
		}
	}
	return nil, fmt.Errorf("%w: configuration %s is not part of quotation %s", ErrQuotationConfigMismatch, configurationID, quotationID)
}

// configurationSet collects the distinct non-empty configuration references
// across the quotation's lines, in order of first appearance. Lines may
// repeat a configuration or reference none at all.
func (u *TriggerRenderUseCase) configurationSet(ctx context.Context, quotationID string) ([]string, error) {
	lines, err := u.directory.ListQuotationLines(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	var set []string
	for _, line := range lines {
		if line.ConfigurationID == "" {
			continue
		}
		if _, ok := seen[line.ConfigurationID]; ok {
			continue
		}
		seen[line.ConfigurationID] = struct{}{}
		set = append(set, line.ConfigurationID)
	}
	return set, nil
}
