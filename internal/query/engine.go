// Package query provides jq filtering of Toggl API payloads.
package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/usestring/toggl-mcp/internal/cache"
)

// Engine executes jq expressions against JSON payloads.
type Engine struct {
	maxResults int
	programs   *cache.ProgramCache
}

// NewEngine creates a query engine. maxResults caps the values returned by
// calls that do not set their own limit; 0 means unlimited.
func NewEngine(maxResults int) *Engine {
	programs, _ := cache.NewProgramCache(cache.DefaultProgramCacheSize)
	return &Engine{maxResults: maxResults, programs: programs}
}

// Options tune a single query.
type Options struct {
	Deduplicate bool
	MaxResults  int            // 0 uses the engine default
	Vars        map[string]any // exposed to the expression as $name
}

// Result contains the values produced by a jq expression.
type Result struct {
	Values    []any    `json:"values"`
	Errors    []string `json:"errors,omitempty"` // runtime errors, e.g. iterating null
	RawCount  int      `json:"raw_count"`        // count before deduplication
	Truncated bool     `json:"truncated,omitempty"`
}

// Query runs expression against data. Parse and compile problems are
// returned as errors; runtime errors are collected in Result.Errors.
func (e *Engine) Query(ctx context.Context, data []byte, expression string, opts Options) (*Result, error) {
	names, values := splitVars(opts.Vars)
	code, err := e.compile(expression, names)
	if err != nil {
		return nil, err
	}

	var input any
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("invalid JSON data: %w", err)
		}
	}

	limit := opts.MaxResults
	if limit <= 0 {
		limit = e.maxResults
	}

	result := &Result{Values: make([]any, 0)}
	seen := make(map[string]bool)
	iter := code.RunWithContext(ctx, input, values...)

	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			result.Errors = append(result.Errors, formatJQError(err))
			continue
		}

		if v == nil {
			continue
		}

		result.RawCount++

		if opts.Deduplicate {
			key := valueKey(v)
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		if limit > 0 && len(result.Values) >= limit {
			result.Truncated = true
			break
		}
		result.Values = append(result.Values, v)
	}

	return result, nil
}

// ValidateExpression checks if a jq expression is valid without executing it.
// vars names the variables the expression may reference, with or without "$".
func (e *Engine) ValidateExpression(expression string, vars ...string) error {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = "$" + strings.TrimPrefix(v, "$")
	}
	_, err := e.compile(expression, names)
	return err
}

// compile returns the cached program for expression, compiling on a miss.
func (e *Engine) compile(expression string, varNames []string) (*gojq.Code, error) {
	if code, ok := e.programs.Get(expression, varNames); ok {
		return code, nil
	}
	code, err := compile(expression, varNames)
	if err != nil {
		return nil, err
	}
	e.programs.Put(expression, varNames, code)
	return code, nil
}

func compile(expression string, varNames []string) (*gojq.Code, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(q, gojq.WithVariables(varNames))
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// splitVars returns "$name" variable names in a stable order with their values.
func splitVars(vars map[string]any) ([]string, []any) {
	if len(vars) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make([]string, len(keys))
	values := make([]any, len(keys))
	for i, k := range keys {
		names[i] = "$" + strings.TrimPrefix(k, "$")
		values[i] = normalizeVar(vars[k])
	}
	return names, values
}

// normalizeVar converts Go integers to the float64 values jq compares against.
func normalizeVar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	default:
		return v
	}
}

// formatJQError adds hints for common runtime errors.
//
// Runtime errors such as "cannot iterate over: null" are plain errors in
// gojq, so hints are chosen by message text. Only display text depends on it.
func formatJQError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return "query halted"
		}
		return fmt.Sprintf("query halted with: %v", haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this response)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return errStr + hint
}

// valueKey creates a string key for deduplication.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case float64:
		return fmt.Sprintf("n:%v", val)
	case int:
		return fmt.Sprintf("n:%v", val)
	case bool:
		return fmt.Sprintf("b:%v", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("?:%v", val)
		}
		return "j:" + string(b)
	}
}
