package mathresolver

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON Serialization
// ============================================================

// ToJSON encodes an expression tree as
// {"type":"function","value":"+","id":1,"children":[...]}.
func ToJSON(n *Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("nil expression")
	}
	b, err := json.Marshal(n.toJSON())
	return string(b), err
}

func (n *Node) toJSON() map[string]interface{} {
	m := map[string]interface{}{
		"type":  n.Kind.String(),
		"value": n.Value,
		"id":    n.ID,
	}
	if n.Kind == KindFunction {
		children := make([]interface{}, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.toJSON()
		}
		m["children"] = children
	}
	return m
}

// FromJSON decodes a tree produced by ToJSON (or an equivalent
// map[string]interface{} from encoding/json). Parent links are set;
// nodes without an "id" keep identifier 0.
func FromJSON(data map[string]interface{}) (*Node, error) {
	n, err := fromJSON(data)
	if err != nil {
		return nil, err
	}
	link(n, nil)
	return n, nil
}

func fromJSON(data map[string]interface{}) (*Node, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%s: %q must be a string", typ, field)
		}
		return s, nil
	}

	subObjArray := func(field string) ([]map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, nil
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]map[string]interface{}, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			out[i] = m
		}
		return out, nil
	}

	value, err := subString("value")
	if err != nil {
		return nil, err
	}
	id := 0
	if v, ok := data["id"]; ok {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: %q must be a number", typ, "id")
		}
		id = int(f)
	}

	switch typ {
	case "variable":
		if value == "" {
			return nil, fmt.Errorf("variable: 'value' must be a non-empty string")
		}
		n := V(value)
		n.ID = id
		return n, nil

	case "function":
		objs, err := subObjArray("children")
		if err != nil {
			return nil, err
		}
		n := Op(value)
		n.ID = id
		for i, o := range objs {
			c, err := fromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("%s: children[%d]: %w", value, i, err)
			}
			n.Children = append(n.Children, c)
		}
		return n, nil
	}
	return nil, fmt.Errorf("unknown node type: %s", typ)
}

func link(n, parent *Node) {
	n.Parent = parent
	for _, c := range n.Children {
		link(c, n)
	}
}

// asRoot wraps n unless it already is a wrapped root.
func asRoot(n *Node) *Node {
	if n.Kind == KindFunction && n.Value == "" && len(n.Children) == 1 {
		return n
	}
	return Wrap(n)
}

// carriesIDs reports whether any node of an encoded tree has an "id".
func carriesIDs(data map[string]interface{}) bool {
	if _, ok := data["id"]; ok {
		return true
	}
	children, _ := data["children"].([]interface{})
	for _, c := range children {
		if m, ok := c.(map[string]interface{}); ok && carriesIDs(m) {
			return true
		}
	}
	return false
}
