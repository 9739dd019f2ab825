package raw

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	emptyBatch       = json.RawMessage("[]")
	errBatchNotArray = errors.New("batch is not a JSON array")
)

// Concat flattens provider pages into one serialized batch, preserving page and item order.
func Concat(pages ...json.RawMessage) (json.RawMessage, error) {
	all := make([]json.RawMessage, 0)
	for i, page := range pages {
		pageItems, err := items(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		all = append(all, pageItems...)
	}
	if len(all) == 0 {
		return emptyBatch, nil
	}
	out, err := json.Marshal(all)
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}
	return out, nil
}

// Len returns the number of items in a serialized batch.
func Len(batch json.RawMessage) (int, error) {
	all, err := items(batch)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func items(batch json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(batch)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, errBatchNotArray
	}
	var out []json.RawMessage
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return out, nil
}
