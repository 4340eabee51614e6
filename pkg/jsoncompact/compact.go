// Package jsoncompact shrinks decoded JSON payloads by trimming long arrays
// and strings, leaving a marker where content was dropped.
package jsoncompact

import (
	"encoding/json"
	"fmt"
)

// Default limits.
const (
	DefaultMaxArrayItems = 20
	DefaultMaxStringLen  = 500
)

// Options controls compaction. Zero fields mean no limit.
type Options struct {
	MaxArrayItems int
	MaxStringLen  int
	MaxDepth      int
}

// DefaultOptions returns limits suited to list responses such as time entries.
func DefaultOptions() Options {
	return Options{MaxArrayItems: DefaultMaxArrayItems, MaxStringLen: DefaultMaxStringLen}
}

// Stats counts what compaction removed.
type Stats struct {
	TrimmedArrays    int `json:"trimmed_arrays"`
	DroppedItems     int `json:"dropped_items"`
	TruncatedStrings int `json:"truncated_strings"`
	DepthCutoffs     int `json:"depth_cutoffs,omitempty"`
}

// Changed reports whether anything was removed.
func (s Stats) Changed() bool {
	return s.TrimmedArrays+s.TruncatedStrings+s.DepthCutoffs > 0
}

// Compact decodes data, compacts it and re-encodes it.
func Compact(data []byte, opts Options) ([]byte, Stats, error) {
	if len(data) == 0 {
		return data, Stats{}, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, Stats{}, fmt.Errorf("invalid JSON: %w", err)
	}
	out, stats := CompactValue(v, opts)
	encoded, err := json.Marshal(out)
	return encoded, stats, err
}

// CompactValue compacts a value produced by json.Unmarshal into any.
// The input is not modified.
func CompactValue(v any, opts Options) (any, Stats) {
	c := compactor{opts: opts}
	return c.value(v, 0), c.stats
}

type compactor struct {
	opts  Options
	stats Stats
}

func (c *compactor) value(v any, depth int) any {
	if c.opts.MaxDepth > 0 && depth >= c.opts.MaxDepth {
		switch v.(type) {
		case []any, map[string]any:
			c.stats.DepthCutoffs++
			return "[max depth]"
		}
	}

	switch val := v.(type) {
	case []any:
		return c.array(val, depth)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = c.value(item, depth+1)
		}
		return out
	case string:
		return c.string(val)
	default:
		return v
	}
}

func (c *compactor) array(arr []any, depth int) []any {
	keep := len(arr)
	if c.opts.MaxArrayItems > 0 && keep > c.opts.MaxArrayItems {
		keep = c.opts.MaxArrayItems
	}

	out := make([]any, 0, keep+1)
	for _, item := range arr[:keep] {
		out = append(out, c.value(item, depth+1))
	}
	if dropped := len(arr) - keep; dropped > 0 {
		c.stats.TrimmedArrays++
		c.stats.DroppedItems += dropped
		out = append(out, fmt.Sprintf("... (%d more items)", dropped))
	}
	return out
}

func (c *compactor) string(s string) string {
	if c.opts.MaxStringLen <= 0 || len(s) <= c.opts.MaxStringLen {
		return s
	}
	c.stats.TruncatedStrings++
	return s[:c.opts.MaxStringLen] + fmt.Sprintf("... (%d more chars)", len(s)-c.opts.MaxStringLen)
}
