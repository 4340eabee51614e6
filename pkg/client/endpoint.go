package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Family identifies an API namespace and how its paths are scoped.
type Family string

// API families, each with its own versioned path prefix.
const (
	FamilyMe        Family = "me"        // api/v9/me/<endpoint>
	FamilyWorkspace Family = "workspace" // api/v9/workspaces/<wid>/<endpoint>
	FamilyReports   Family = "reports"   // reports/api/v2/<endpoint>
	FamilyWebhooks  Family = "webhooks"  // webhooks/api/v1/<endpoint>
	FamilyLegacy    Family = "legacy"    // api/v8/<endpoint>
)

// workspaceParam is the path placeholder filled from the bound workspace.
const workspaceParam = "workspace_id"

var errWorkspaceRequired = errors.New("workspace id is required")

// Families lists every API family in display order.
func Families() []Family {
	return []Family{FamilyMe, FamilyWorkspace, FamilyWebhooks, FamilyReports, FamilyLegacy}
}

// Scoped reports whether every path in the family carries a workspace id.
func (f Family) Scoped() bool {
	return f == FamilyWorkspace || f == FamilyWebhooks
}

func (f Family) prefix(workspaceID int64) []string {
	switch f {
	case FamilyMe:
		return []string{"api", "v9", "me"}
	case FamilyWorkspace:
		return []string{"api", "v9", "workspaces", strconv.FormatInt(workspaceID, 10)}
	case FamilyReports:
		return []string{"reports", "api", "v2"}
	case FamilyWebhooks:
		return []string{"webhooks", "api", "v1"}
	case FamilyLegacy:
		return []string{"api", "v8"}
	default:
		return nil
	}
}

// Resolve returns the request path for endpoint within the family.
// For FamilyWorkspace the workspace id is always part of the path.
func (f Family) Resolve(workspaceID int64, endpoint string) string {
	return Resolve(append(f.prefix(workspaceID), endpoint)...)
}

// Template returns the full path template of endpoint, leaving the
// workspace as a {workspace_id} placeholder.
func (f Family) Template(endpoint string) string {
	parts := f.prefix(0)
	if f == FamilyWorkspace {
		parts[len(parts)-1] = "{" + workspaceParam + "}"
	}
	return Resolve(append(parts, endpoint)...)
}

// Resolve joins path fragments with "/", skipping empty ones, so an absent
// fragment yields the same path as omitting it.
func Resolve(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "/")
}

// ExpandPath substitutes {name} segments of template with values from params.
// A placeholder without a value, or whose value formats to nothing, is an error.
func ExpandPath(template string, params map[string]any) (string, error) {
	if template == "" {
		return "", nil
	}
	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if len(seg) < 3 || seg[0] != '{' || seg[len(seg)-1] != '}' {
			continue
		}
		name := seg[1 : len(seg)-1]
		v, ok := params[name]
		if !ok || v == nil {
			return "", fmt.Errorf("missing path parameter %q", name)
		}
		formatted := FormatPathValue(v)
		if formatted == "" {
			return "", fmt.Errorf("empty path parameter %q", name)
		}
		segments[i] = formatted
	}
	return Resolve(segments...), nil
}

// JoinIDs renders ids as a comma-joined path segment for bulk operations.
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// FormatPathValue renders a single path parameter. Slices become comma-joined
// id lists; strings are escaped as one path segment.
func FormatPathValue(v any) string {
	switch val := v.(type) {
	case string:
		return url.PathEscape(val)
	case []int64:
		return JoinIDs(val)
	case []int:
		ids := make([]int64, len(val))
		for i, id := range val {
			ids[i] = int64(id)
		}
		return JoinIDs(ids)
	case []string:
		parts := make([]string, 0, len(val))
		for _, s := range val {
			if s != "" {
				parts = append(parts, url.PathEscape(s))
			}
		}
		return strings.Join(parts, ",")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := FormatPathValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return formatScalar(v)
	}
}

// formatScalar renders numbers without exponents; JSON-decoded ids arrive as float64.
func formatScalar(v any) string {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case string:
		return val
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
