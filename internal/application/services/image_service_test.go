package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krishirakshak/backend/internal/adapters/cache"
	"github.com/krishirakshak/backend/internal/domain/entities"
	"github.com/krishirakshak/backend/internal/hazard"
	"github.com/krishirakshak/backend/internal/offline"
	apperrors "github.com/krishirakshak/backend/pkg/errors"
)

type stubVision struct {
	labels []entities.Label
	errs   []error
	calls  int
}

func (s *stubVision) DetectLabels(ctx context.Context, image []byte) ([]entities.Label, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return s.labels, nil
}

type stubInterpreter struct {
	report *entities.HazardReport
	err    error
	calls  int
}

func (s *stubInterpreter) InterpretHazards(ctx context.Context, labels []entities.Label, language string) (*entities.HazardReport, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func testImage(t *testing.T, size int) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, size))
}

func newImageService(vision *stubVision, interpreter *stubInterpreter, demoMode bool) (*ImageService, *offline.HazardHistory) {
	history := offline.NewHazardHistory(cache.NewMemoryAdapter(), 30)
	service := &ImageService{
		matcher:  hazard.NewMatcher(),
		demo:     hazard.NewDemoGenerator(),
		history:  history,
		retryCfg: fastRetryConfig(),
		demoMode: demoMode,
	}
	if vision != nil {
		service.vision = vision
	}
	if interpreter != nil {
		service.interpreter = interpreter
	}
	return service, history
}

func TestAnalyze_DemoModeGeneratesReport(t *testing.T) {
	vision := &stubVision{}
	service, history := newImageService(vision, nil, true)

	report, err := service.Analyze(context.Background(), "", "en")

	assert.NoError(t, err)
	assert.Equal(t, 0, vision.calls)
	assert.Equal(t, "demo", report.Source)
	assert.GreaterOrEqual(t, report.HazardCount, 2)

	records, err := history.List(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAnalyze_NilVisionServesDemo(t *testing.T) {
	service, _ := newImageService(nil, nil, false)

	report, err := service.Analyze(context.Background(), "", "en")

	assert.NoError(t, err)
	assert.Equal(t, "demo", report.Source)
}

func TestAnalyze_RejectsBadBase64(t *testing.T) {
	service, _ := newImageService(&stubVision{}, nil, false)

	_, err := service.Analyze(context.Background(), "not base64 at all!!!", "en")

	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestAnalyze_RejectsTinyImage(t *testing.T) {
	service, _ := newImageService(&stubVision{}, nil, false)

	_, err := service.Analyze(context.Background(), testImage(t, 50), "en")

	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestAnalyze_RejectsOversizedImage(t *testing.T) {
	service, _ := newImageService(&stubVision{}, nil, false)

	_, err := service.Analyze(context.Background(), testImage(t, maxImageBytes+1), "en")

	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestAnalyze_StripsDataURIPrefix(t *testing.T) {
	vision := &stubVision{labels: []entities.Label{{Name: "Tractor", Confidence: 90}}}
	service, _ := newImageService(vision, nil, false)

	report, err := service.Analyze(context.Background(), "data:image/jpeg;base64,"+testImage(t, 200), "en")

	assert.NoError(t, err)
	assert.Equal(t, 1, vision.calls)
	assert.Equal(t, []string{"Tractor"}, report.DetectedLabels)
}

func TestAnalyze_ModelReportPreferred(t *testing.T) {
	vision := &stubVision{labels: []entities.Label{{Name: "Wire", Confidence: 92}}}
	interpreter := &stubInterpreter{report: &entities.HazardReport{
		Hazards:     []entities.Hazard{{ID: "exposed_wiring", Severity: entities.SeverityCritical}},
		OverallRisk: entities.SeverityCritical,
		HazardCount: 1,
		Source:      "model",
		AnalyzedAt:  time.Now(),
	}}
	service, _ := newImageService(vision, interpreter, false)

	report, err := service.Analyze(context.Background(), testImage(t, 200), "en")

	assert.NoError(t, err)
	assert.Equal(t, 1, interpreter.calls)
	assert.Equal(t, "model", report.Source)
	assert.Equal(t, "exposed_wiring", report.Hazards[0].ID)
}

func TestAnalyze_EmptyModelReportFallsBackToRules(t *testing.T) {
	vision := &stubVision{labels: []entities.Label{
		{Name: "Wire", Confidence: 91},
		{Name: "Exposed", Confidence: 87},
	}}
	interpreter := &stubInterpreter{report: &entities.HazardReport{
		Hazards:     []entities.Hazard{},
		OverallRisk: entities.SeverityNone,
		Source:      "model",
		AnalyzedAt:  time.Now(),
	}}
	service, _ := newImageService(vision, interpreter, false)

	report, err := service.Analyze(context.Background(), testImage(t, 200), "en")

	assert.NoError(t, err)
	assert.Equal(t, 1, interpreter.calls)
	assert.Equal(t, "rules", report.Source)
	assert.GreaterOrEqual(t, report.HazardCount, 1)
	assert.Equal(t, "electrical_hazard", report.Hazards[0].ID)
	assert.Equal(t, entities.SeverityCritical, report.OverallRisk)
}

func TestAnalyze_InterpreterFailureFallsBackToRules(t *testing.T) {
	vision := &stubVision{labels: []entities.Label{
		{Name: "Rust", Confidence: 88},
		{Name: "Metal", Confidence: 91},
	}}
	interpreter := &stubInterpreter{err: apperrors.NewRemoteGenericError("model down", nil)}
	service, _ := newImageService(vision, interpreter, false)

	report, err := service.Analyze(context.Background(), testImage(t, 200), "en")

	assert.NoError(t, err)
	assert.Equal(t, "rules", report.Source)
	assert.Equal(t, "corroded_equipment", report.Hazards[0].ID)
}

func TestAnalyze_TransientDetectionErrorIsRetried(t *testing.T) {
	vision := &stubVision{
		labels: []entities.Label{{Name: "Tractor", Confidence: 95}},
		errs:   []error{apperrors.NewRemoteThrottledError("slow down", nil), nil},
	}
	service, _ := newImageService(vision, nil, false)

	report, err := service.Analyze(context.Background(), testImage(t, 200), "en")

	assert.NoError(t, err)
	assert.Equal(t, 2, vision.calls)
	assert.Equal(t, "rules", report.Source)
}

func TestAnalyze_InputErrorFromVisionPropagates(t *testing.T) {
	vision := &stubVision{errs: []error{apperrors.NewInputError("unsupported image format, use JPEG or PNG")}}
	service, _ := newImageService(vision, nil, false)

	_, err := service.Analyze(context.Background(), testImage(t, 200), "en")

	assert.Equal(t, 1, vision.calls)
	assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
}

func TestAnalyze_ReportSavedToHistory(t *testing.T) {
	vision := &stubVision{labels: []entities.Label{{Name: "Fire", Confidence: 97}}}
	service, history := newImageService(vision, nil, false)

	report, err := service.Analyze(context.Background(), testImage(t, 200), "en")

	assert.NoError(t, err)
	assert.Equal(t, entities.SeverityCritical, report.OverallRisk)

	stats, err := history.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, stats[entities.SeverityCritical])
}
