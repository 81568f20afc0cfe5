package main

import (
	"fmt"

	"charm.land/smartjson/internal/jsonext"
	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// generalRepair runs a general purpose JSON repair. Unlike the corrector it
// may add or drop any punctuation, array brackets included, so its output is
// only ever offered behind the same confirmation prompt.
func generalRepair(text string) (string, any, error) {
	repaired, err := jsonrepair.RepairJSON(text)
	if err != nil {
		return "", nil, fmt.Errorf("json repair failed: %w", err)
	}
	v, err := jsonext.Decode(repaired)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse repaired json: %w", err)
	}
	return repaired, v, nil
}
