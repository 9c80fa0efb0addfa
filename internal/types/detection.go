package types

// DetectionResult is one canned disease analysis
type DetectionResult struct {
	Disease        string   `json:"disease"`
	Confidence     int      `json:"confidence"`
	Severity       string   `json:"severity"`
	Remedies       []string `json:"remedies"`
	Prevention     []string `json:"prevention"`
	SeverityBand   string   `json:"severity_band"`
	ConfidenceBand string   `json:"confidence_band"`
}

// LoadImageResponse is the selected image encoded for preview and analysis
type LoadImageResponse struct {
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// AnalyzeImageResponse wraps a detection result with its notification
type AnalyzeImageResponse struct {
	Result DetectionResult `json:"result"`
	Toast  Toast           `json:"toast"`
}
