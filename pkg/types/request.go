package types

// AIResult is the synthesized response for a queued AI analysis request.
type AIResult struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	ResponseTime int             `json:"response_time"`
	Confidence   float64         `json:"confidence"`
	Result       AIResultPayload `json:"result"`
	Timestamp    string          `json:"timestamp"`
}

type AIResultPayload struct {
	Content  string `json:"content"`
	Provider string `json:"provider"`
}

type HistoryEntry struct {
	ID           string  `json:"id"`
	Provider     string  `json:"provider"`
	TaskType     string  `json:"task_type"`
	Status       string  `json:"status"`
	ResponseTime int     `json:"response_time"`
	Confidence   float64 `json:"confidence"`
	Timestamp    string  `json:"timestamp"`
}

type HistoryList struct {
	Requests []HistoryEntry `json:"requests"`
}
