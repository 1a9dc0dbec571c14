package mathresolver

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall executes one tool request. Expression parameters take
// either a structure string like "(+(a;b))" or a JSON tree as produced by
// ToJSON. Optional "style", "domain" and "catalog" (YAML text) parameters
// configure the resolver.
func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	optString := func(key string) (string, error) {
		if _, ok := req.Params[key]; !ok {
			return "", nil
		}
		return getString(key)
	}
	getTree := func(key string) (*Node, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		switch val := v.(type) {
		case string:
			return ParseStructure(val)
		case map[string]interface{}:
			n, err := FromJSON(val)
			if err != nil {
				return nil, fmt.Errorf("param %s: %w", key, err)
			}
			root := asRoot(n)
			if !carriesIDs(val) {
				return Number(root), nil
			}
			link(root, nil)
			return root, nil
		}
		return nil, fmt.Errorf("param %s must be a structure string or expression object", key)
	}
	getResolver := func() (*Resolver, error) {
		var opts []Option
		s, err := optString("style")
		if err != nil {
			return nil, err
		}
		style, err := ParseStyle(s)
		if err != nil {
			return nil, err
		}
		d, err := optString("domain")
		if err != nil {
			return nil, err
		}
		domain, err := ParseDomain(d)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithStyle(style), WithDomain(domain))
		c, err := optString("catalog")
		if err != nil {
			return nil, err
		}
		if c != "" {
			cat, err := ParseCatalog([]byte(c))
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithCatalog(cat))
		}
		return NewResolver(opts...), nil
	}
	render := func(r *Resolver, key string) (*Result, error) {
		root, err := getTree(key)
		if err != nil {
			return nil, err
		}
		return r.Resolve(root)
	}
	respond := func(res *Result) ToolResponse {
		return ToolResponse{
			Result: map[string]interface{}{
				"matrix":   []string(res.Matrix),
				"spans":    res.Spans,
				"baseline": res.Baseline,
				"width":    res.Matrix.Width(),
				"height":   res.Matrix.Height(),
			},
			String: res.String(),
		}
	}

	switch req.Tool {
	case "render":
		r, err := getResolver()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		res, err := render(r, "expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(res)

	case "render_rule", "join_rule":
		r, err := getResolver()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		from, err := render(r, "from")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		to, err := render(r, "to")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		if req.Tool == "join_rule" {
			res, err := JoinRule(from, to)
			if err != nil {
				return ToolResponse{Error: err.Error()}
			}
			return respond(res)
		}
		line, err := GetRule(from, to)
		if err != nil {
			return ToolResponse{String: line, Error: err.Error()}
		}
		return ToolResponse{Result: line, String: line}

	case "parse_structure":
		root, err := getTree("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: root.toJSON(), String: root.String()}

	case "catalog":
		r, err := getResolver()
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		b, err := yaml.Marshal(r.Catalog())
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: r.Catalog().Entries(), String: string(b)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// MCPToolSpec returns the JSON schema of every tool.
func MCPToolSpec() string {
	render := map[string]string{"expr": "string|object", "style": "string", "domain": "string", "catalog": "string"}
	rule := map[string]string{"from": "string|object", "to": "string|object", "style": "string", "domain": "string", "catalog": "string"}
	tools := []map[string]interface{}{
		ts("render", "Lay out an expression tree as a fixed-width text matrix. style: default|greek, domain: algebra|set, catalog: YAML operator table", []string{"expr"}, render),
		ts("render_rule", "Render a single-line rule 'from → to'. Fails with 'unrenderable' when a side spans several rows", []string{"from", "to"}, rule),
		ts("join_rule", "Render a rule of any height, both sides aligned on their baselines", []string{"from", "to"}, rule),
		ts("parse_structure", "Parse a structure string like (+(a;b)) into a JSON tree with node ids", []string{"expr"}, map[string]string{"expr": "string|object"}),
		ts("catalog", "Return the operator table as entries and YAML", []string{}, map[string]string{"catalog": "string"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
