package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/chains"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

var errNoTargets = errors.New("no targets")

// parseTargets reads chain:network:address values into canonical ledger keys.
// The address keeps any further colons, so BCH cashaddr prefixes are accepted.
func parseTargets(values []string) ([]model.LedgerKey, error) {
	seen := make(map[model.LedgerKey]struct{}, len(values))
	keys := make([]model.LedgerKey, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(strings.TrimSpace(value), ":", 3)
		if len(parts) != 3 || parts[2] == "" {
			return nil, fmt.Errorf("target %q: want chain:network:address", value)
		}

		profile, err := chains.Lookup(model.Chain(strings.ToUpper(parts[0])), model.Network(strings.ToLower(parts[1])))
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", value, err)
		}
		address, err := profile.Canonical(parts[2])
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", value, err)
		}

		key := profile.Key(address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, errNoTargets
	}
	return keys, nil
}
