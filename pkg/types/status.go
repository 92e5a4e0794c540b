package types

// ServiceStatus is the fixed health snapshot reported by the mock backend.
type ServiceStatus struct {
	Status     string            `json:"status"`
	Uptime     int               `json:"uptime"`
	Version    string            `json:"version"`
	Components map[string]string `json:"components"`
}

type Metrics struct {
	TotalRequests      int     `json:"total_requests"`
	SuccessfulRequests int     `json:"successful_requests"`
	FailedRequests     int     `json:"failed_requests"`
	SuccessRate        float64 `json:"success_rate"`
	AvgResponseTime    int     `json:"avg_response_time"`
	CacheHitRate       float64 `json:"cache_hit_rate"`
	RequestsPerMinute  float64 `json:"requests_per_minute"`
}

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

type LogList struct {
	Logs []LogEntry `json:"logs"`
}
