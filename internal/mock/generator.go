package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vulnscan-ai/gui-server/pkg/types"
)

// Generator maps API requests to canned or derived mock responses. It holds
// no cross-request state; every response is built from the fixtures or the
// request itself.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// rule pairs a method+path predicate with a response builder. Rules are
// evaluated in order; the first match wins.
type rule struct {
	match  func(method, path string) bool
	handle func(g *Generator, path string, query url.Values, body string) interface{}
}

var rules = []rule{
	{
		match:  exact("/api/v1/service/status"),
		handle: fixed(serviceStatus),
	},
	{
		match:  exact("/api/v1/providers", http.MethodGet),
		handle: fixed(providers),
	},
	{
		match:  exact("/api/v1/providers", http.MethodPost),
		handle: fixed(types.GenericResponse{Success: true, Message: "Provider added successfully"}),
	},
	{
		match:  exact("/api/v1/metrics"),
		handle: fixed(metrics),
	},
	{
		match:  exact("/api/v1/requests/history"),
		handle: fixed(requestHistory),
	},
	{
		match: exact("/api/v1/requests", http.MethodPost),
		handle: func(g *Generator, _ string, _ url.Values, body string) interface{} {
			return g.aiResult(body)
		},
	},
	{
		match:  exact("/api/v1/logs"),
		handle: fixed(serviceLogs),
	},
	{
		match: func(method, path string) bool {
			return method == http.MethodPost && strings.HasSuffix(path, "/test")
		},
		handle: func(_ *Generator, path string, _ url.Values, _ string) interface{} {
			return types.ProviderTestResult{
				Status:       "success",
				ResponseTime: 800 + int(stableHash(path)%400),
				Message:      "Provider test successful",
			}
		},
	},
}

// Generate builds the mock response for an API request. It is total: any
// method+path combination not covered by the rule table falls through to a
// generic acknowledgement.
func (g *Generator) Generate(method, path string, query url.Values, body string) interface{} {
	for _, r := range rules {
		if r.match(method, path) {
			return r.handle(g, path, query, body)
		}
	}
	return types.GenericResponse{Success: true, Message: "Mock API response"}
}

// aiResult synthesizes the response for a queued AI analysis request. A
// missing or unparsable JSON body is treated as an empty object.
func (g *Generator) aiResult(body string) types.AIResult {
	var payload map[string]interface{}
	if body != "" {
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			payload = nil
		}
	}

	taskType := stringField(payload, "task_type", "vulnerability_analysis")
	provider := stringField(payload, "provider", "openai")

	jitter := stableHash(body)
	now := g.now()

	return types.AIResult{
		ID:           fmt.Sprintf("req-%d", now.Unix()),
		Status:       "success",
		ResponseTime: 1500 + int(jitter%1000),
		Confidence:   0.8 + float64(jitter%20)/100,
		Result: types.AIResultPayload{
			Content:  reportFor(taskType),
			Provider: provider,
		},
		Timestamp: now.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// exact matches a path exactly, optionally restricted to the given methods.
func exact(path string, methods ...string) func(string, string) bool {
	return func(method, p string) bool {
		if p != path {
			return false
		}
		if len(methods) == 0 {
			return true
		}
		for _, m := range methods {
			if method == m {
				return true
			}
		}
		return false
	}
}

func fixed(response interface{}) func(*Generator, string, url.Values, string) interface{} {
	return func(*Generator, string, url.Values, string) interface{} {
		return response
	}
}

func stringField(payload map[string]interface{}, key, fallback string) string {
	if value, ok := payload[key].(string); ok && value != "" {
		return value
	}
	return fallback
}
