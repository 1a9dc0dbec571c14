// cmd/mcp-server/main.go - Standalone HTTP MCP server for mathresolver
//
// Exposes expression layout tools as an HTTP endpoint for AI agent
// frameworks.
//
// Usage:
//   go run ./cmd/mcp-server -port 8080 -catalog ops.yaml
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	mathresolver "github.com/njchilds90/mathresolver"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	catalogPath := flag.String("catalog", "", "YAML operator table applied when a request has none")
	flag.Parse()

	var catalogYAML string
	if *catalogPath != "" {
		data, err := os.ReadFile(*catalogPath)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := mathresolver.ParseCatalog(data); err != nil {
			log.Fatal(err)
		}
		catalogYAML = string(data)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("mathresolver MCP server listening on %s", addr)
	log.Printf("  POST /tool   — execute a tool call")
	log.Printf("  GET  /schema — tool schema for agent registration")
	log.Printf("  GET  /health — health check")

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(catalogYAML),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// newMux builds the server routes. A non-empty catalogYAML is passed as the
// "catalog" param of requests that do not carry their own.
func newMux(catalogYAML string) *http.ServeMux {
	mux := http.NewServeMux()

	// POST /tool - handle a tool call
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in /tool: %v\n%s", rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req mathresolver.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, err.Error())
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			writeError(w, "invalid JSON: trailing data")
			return
		}
		if catalogYAML != "" {
			if req.Params == nil {
				req.Params = map[string]interface{}{}
			}
			if _, ok := req.Params["catalog"]; !ok {
				req.Params["catalog"] = catalogYAML
			}
		}

		resp := mathresolver.HandleToolCall(req)
		if resp.Error != "" {
			log.Printf("tool %s: %s", req.Tool, resp.Error)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	// GET /schema - return tool schema for agent registration
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, mathresolver.MCPToolSpec())
	})

	// GET /health - liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return mux
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
