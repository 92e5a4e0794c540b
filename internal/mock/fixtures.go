package mock

import (
	"github.com/vulnscan-ai/gui-server/pkg/types"
)

// Fixture data backing the fixed endpoints. Initialized once, never mutated:
// the provider-add and provider-test endpoints are deliberately
// non-persistent stubs.
var serviceStatus = types.ServiceStatus{
	Status:  "running",
	Uptime:  86400,
	Version: "1.0.0",
	Components: map[string]string{
		"ai_service":   "running",
		"cache":        "running",
		"rate_limiter": "running",
		"monitoring":   "running",
	},
}

var providers = types.ProviderList{
	Providers: []types.Provider{
		{
			ID:              "openai-1",
			Name:            "OpenAI GPT-4",
			Type:            "openai",
			Status:          "healthy",
			Model:           "gpt-4",
			RequestsSent:    1247,
			SuccessRate:     98.5,
			AvgResponseTime: 1850,
			LastUsed:        "2025-01-20T10:30:00Z",
		},
		{
			ID:              "claude-1",
			Name:            "Claude 3 Sonnet",
			Type:            "claude",
			Status:          "healthy",
			Model:           "claude-3-sonnet-20240229",
			RequestsSent:    892,
			SuccessRate:     97.2,
			AvgResponseTime: 2100,
			LastUsed:        "2025-01-20T09:15:00Z",
		},
	},
}

var metrics = types.Metrics{
	TotalRequests:      2139,
	SuccessfulRequests: 2089,
	FailedRequests:     50,
	SuccessRate:        97.7,
	AvgResponseTime:    1950,
	CacheHitRate:       23.4,
	RequestsPerMinute:  12.5,
}

var requestHistory = types.HistoryList{
	Requests: []types.HistoryEntry{
		{
			ID:           "req-001",
			Provider:     "openai",
			TaskType:     "vulnerability_analysis",
			Status:       "success",
			ResponseTime: 1650,
			Confidence:   0.92,
			Timestamp:    "2025-01-20T10:45:00Z",
		},
		{
			ID:           "req-002",
			Provider:     "claude",
			TaskType:     "threat_modeling",
			Status:       "success",
			ResponseTime: 2200,
			Confidence:   0.88,
			Timestamp:    "2025-01-20T10:40:00Z",
		},
	},
}

var serviceLogs = types.LogList{
	Logs: []types.LogEntry{
		{
			Timestamp: "2025-01-20T10:45:00Z",
			Level:     "INFO",
			Message:   "AI service started successfully",
		},
		{
			Timestamp: "2025-01-20T10:44:00Z",
			Level:     "INFO",
			Message:   "OpenAI provider health check passed",
		},
		{
			Timestamp: "2025-01-20T10:43:00Z",
			Level:     "WARN",
			Message:   "Rate limit approaching for OpenAI provider",
		},
	},
}
