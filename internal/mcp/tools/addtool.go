package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool registers a tool after checking its output type with CheckOutput.
// It panics on a bad output type so the mistake shows at startup instead of
// as a schema error on the first call.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	if err := CheckOutput[Out](); err != nil {
		panic(fmt.Sprintf("tool %q: %v", t.Name, err))
	}
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutput reports output types the SDK would reject at call time:
//   - json.RawMessage anywhere in the type. client.Result.Data is raw JSON,
//     which the schema inference sees as a byte array; convert payloads with
//     Result.Value or ToAny.
//   - a zero value that fails the inferred schema, typically a nil slice
//     marshalled as null where the schema says array. Tag the field omitzero.
//
// Untyped any outputs are always accepted.
func CheckOutput[T any]() error {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return nil
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	w := rawWalker{seen: map[reflect.Type]bool{}}
	w.walk(rt, "")
	if len(w.paths) > 0 {
		return fmt.Errorf("output %s holds json.RawMessage at %s; use any and decode with Result.Value",
			rt, strings.Join(w.paths, ", "))
	}

	// Inference failures are reported by the SDK itself.
	schema, err := jsonschema.ForType(rt, &jsonschema.ForOptions{})
	if err != nil {
		return nil
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return nil
	}

	data, err := json.Marshal(reflect.Zero(rt).Interface())
	if err != nil {
		return nil
	}
	var zero map[string]any
	if err := json.Unmarshal(data, &zero); err != nil {
		return nil
	}
	if err := resolved.Validate(&zero); err != nil {
		return fmt.Errorf("zero value of output %s is %s and fails its schema (%v); tag slice fields omitzero",
			rt, data, err)
	}
	return nil
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// rawWalker collects the paths of json.RawMessage values in a type.
type rawWalker struct {
	seen  map[reflect.Type]bool
	paths []string
}

func (w *rawWalker) walk(t reflect.Type, path string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == rawMessageType {
		w.paths = append(w.paths, path)
		return
	}
	if w.seen[t] {
		return
	}
	w.seen[t] = true
	defer delete(w.seen, t)

	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				w.walk(f.Type, joinPath(path, f.Name))
			}
		}
	case reflect.Slice, reflect.Array:
		w.walk(t.Elem(), path+"[]")
	case reflect.Map:
		w.walk(t.Elem(), path+"[value]")
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
