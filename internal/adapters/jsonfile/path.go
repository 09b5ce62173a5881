package jsonfile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// A path is dot-separated segments of the form `key` or `key[index]`,
// e.g. "route.stays" or "location[0]". Empty segments are skipped, so
// the empty path resolves to the document itself.
var segmentRe = regexp.MustCompile(`^([A-Za-z0-9_]+)(?:\[([0-9]+)\])?$`)

// resolve walks the path through raw JSON one segment at a time, so that
// failures can name the exact segment that broke.
func resolve(raw, path string) (gjson.Result, error) {
	node := gjson.Parse(raw)
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			continue
		}

		m := segmentRe.FindStringSubmatch(part)
		if m == nil {
			return gjson.Result{}, fmt.Errorf("invalid path segment %q", part)
		}
		key := m[1]

		if !node.IsObject() {
			return gjson.Result{}, fmt.Errorf("cannot look up key %q: value is %s, not an object", key, typeName(node))
		}
		child := node.Get(key)
		if !child.Exists() {
			return gjson.Result{}, fmt.Errorf("key %q not found", key)
		}
		node = child

		if m[2] != "" {
			idx, _ := strconv.Atoi(m[2])
			if !node.IsArray() {
				return gjson.Result{}, fmt.Errorf("cannot index into %q: value is %s, not an array", key, typeName(node))
			}
			arr := node.Array()
			if idx >= len(arr) {
				return gjson.Result{}, fmt.Errorf("index %d out of range (len %d) at %q", idx, len(arr), part)
			}
			node = arr[idx]
		}
	}
	return node, nil
}

func typeName(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	}
	switch r.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	}
	return "value"
}
