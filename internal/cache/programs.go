// Package cache provides caching utilities for the MCP server.
package cache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/itchyny/gojq"
)

// DefaultProgramCacheSize bounds the compiled jq programs kept in memory.
const DefaultProgramCacheSize = 256

// ProgramCache is a thread-safe LRU of compiled jq programs keyed by
// expression and the variable names it was compiled with.
type ProgramCache struct {
	cache *lru.Cache[string, *gojq.Code]
}

// NewProgramCache creates a cache holding at most maxItems programs.
func NewProgramCache(maxItems int) (*ProgramCache, error) {
	c, err := lru.New[string, *gojq.Code](maxItems)
	if err != nil {
		return nil, err
	}
	return &ProgramCache{cache: c}, nil
}

// Get returns the program compiled for expression with vars.
func (c *ProgramCache) Get(expression string, vars []string) (*gojq.Code, bool) {
	return c.cache.Get(programKey(expression, vars))
}

// Put stores a compiled program.
func (c *ProgramCache) Put(expression string, vars []string, code *gojq.Code) {
	c.cache.Add(programKey(expression, vars), code)
}

// Len returns the current number of cached programs.
func (c *ProgramCache) Len() int {
	return c.cache.Len()
}

// Variable names are prefixed with $, which cannot appear unquoted inside a
// name, so the NUL separator keeps keys unambiguous.
func programKey(expression string, vars []string) string {
	return strings.Join(vars, ",") + "\x00" + expression
}
