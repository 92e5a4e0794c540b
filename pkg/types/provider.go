package types

type Provider struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Model           string  `json:"model"`
	RequestsSent    int     `json:"requests_sent"`
	SuccessRate     float64 `json:"success_rate"`
	AvgResponseTime int     `json:"avg_response_time"`
	LastUsed        string  `json:"last_used"`
}

type ProviderList struct {
	Providers []Provider `json:"providers"`
}

type ProviderTestResult struct {
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time"`
	Message      string `json:"message"`
}

type GenericResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
