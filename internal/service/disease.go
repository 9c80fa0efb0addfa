package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// Severity bands, from most to least urgent
const (
	SeverityHigh     = "high"
	SeverityModerate = "moderate"
	SeverityLow      = "low"
	SeverityNone     = "none"
)

// Confidence bands
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// detectionResults stand in for a classifier; analysis picks one uniformly
var detectionResults = []types.DetectionResult{
	{
		Disease:    "Leaf Spot Disease",
		Confidence: 92,
		Severity:   "Moderate",
		Remedies: []string{
			"Apply copper-based fungicide spray",
			"Remove infected leaves immediately",
			"Improve air circulation between plants",
			"Avoid overhead watering",
		},
		Prevention: []string{
			"Maintain proper plant spacing",
			"Water at soil level, not on leaves",
			"Apply preventive fungicide before wet season",
		},
	},
	{
		Disease:    "Healthy Crop",
		Confidence: 88,
		Severity:   "None",
		Remedies: []string{
			"Continue current care routine",
			"Monitor regularly for early detection",
			"Maintain proper nutrition schedule",
		},
		Prevention: []string{
			"Keep soil well-drained",
			"Maintain balanced fertilization",
			"Regular inspection recommended",
		},
	},
}

// DetectionResults returns the possible analysis outcomes with their bands filled in
func DetectionResults() []types.DetectionResult {
	out := make([]types.DetectionResult, len(detectionResults))
	for i := range detectionResults {
		out[i] = withBands(detectionResults[i])
	}
	return out
}

// DetectionService backs the disease detection screen. Images are encoded for
// the client and never stored.
type DetectionService struct {
	delay    time.Duration
	maxBytes int64
	pick     func(n int) int
	logger   *zap.Logger
}

var _ IDetectionService = (*DetectionService)(nil)

func NewDetectionService(delay time.Duration, maxBytes int64, logger *zap.Logger) *DetectionService {
	return &DetectionService{
		delay:    delay,
		maxBytes: maxBytes,
		pick:     rand.IntN,
		logger:   logger,
	}
}

// EncodeImage reads an uploaded file into a data URL after checking it really is an image
func (s *DetectionService) EncodeImage(r io.Reader) (types.LoadImageResponse, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return types.LoadImageResponse{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return types.LoadImageResponse{}, ErrNoImage
	}
	if int64(len(data)) > s.maxBytes {
		return types.LoadImageResponse{}, ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	mime := strings.TrimSpace(strings.SplitN(mtype.String(), ";", 2)[0])
	if !strings.HasPrefix(mime, "image/") {
		return types.LoadImageResponse{}, fmt.Errorf("%w: detected %s", ErrNotAnImage, mime)
	}

	return types.LoadImageResponse{
		Image:    "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		MimeType: mime,
		Size:     int64(len(data)),
	}, nil
}

// AnalyzeImage waits out the simulated analysis and returns one of the canned results
func (s *DetectionService) AnalyzeImage(ctx context.Context, image string) (types.DetectionResult, error) {
	if strings.TrimSpace(image) == "" {
		return types.DetectionResult{}, ErrNoImage
	}

	if err := wait(ctx, s.delay); err != nil {
		return types.DetectionResult{}, err
	}

	result := detectionResults[s.pick(len(detectionResults))]
	s.logger.Debug("image analysed", zap.String("disease", result.Disease))
	return withBands(result), nil
}

// CameraToast explains that capture happens in the native shell
func (s *DetectionService) CameraToast() types.Toast {
	return types.Toast{
		Title:       "Camera feature",
		Description: "Camera integration would be available in the mobile app",
		Variant:     types.ToastDefault,
	}
}

func withBands(r types.DetectionResult) types.DetectionResult {
	r.Remedies = slices.Clone(r.Remedies)
	r.Prevention = slices.Clone(r.Prevention)
	r.SeverityBand = SeverityBand(r.Severity)
	r.ConfidenceBand = ConfidenceBand(r.Confidence)
	return r
}

// SeverityBand folds a free-text severity into one of four display bands
func SeverityBand(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "high", "severe":
		return SeverityHigh
	case "moderate", "medium":
		return SeverityModerate
	case "low", "mild":
		return SeverityLow
	default:
		return SeverityNone
	}
}

// ConfidenceBand buckets a confidence percentage
func ConfidenceBand(confidence int) string {
	switch {
	case confidence >= 80:
		return ConfidenceHigh
	case confidence >= 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
