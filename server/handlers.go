package server

import (
	"github.com/gin-gonic/gin"

	"github.com/ubcspin/REMO1-dataProcessing/errors"
	"github.com/ubcspin/REMO1-dataProcessing/heartbeat"
	"github.com/ubcspin/REMO1-dataProcessing/logger"
	"github.com/ubcspin/REMO1-dataProcessing/observability"
	"github.com/ubcspin/REMO1-dataProcessing/server/middleware"
	"github.com/ubcspin/REMO1-dataProcessing/validation"
)

// AnalyzeRequest is the payload of POST /v1/analyze. Options are optional;
// absent options fall back to the server's configured pipeline defaults.
type AnalyzeRequest struct {
	Samples    []float64          `json:"samples" validate:"required,min=2"`
	SampleRate float64            `json:"sample_rate" validate:"required,gt=0"`
	Options    *heartbeat.Options `json:"options,omitempty"`
}

// AnalysisHandler serves the analysis endpoints.
type AnalysisHandler struct {
	defaults heartbeat.Options
	metrics  *observability.Metrics
	log      *logger.Logger
}

// NewAnalysisHandler creates the handler. metrics may be nil when metric
// export is disabled.
func NewAnalysisHandler(defaults heartbeat.Options, metrics *observability.Metrics, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		defaults: defaults,
		metrics:  metrics,
		log:      log.WithComponent("handler"),
	}
}

// Register mounts the analysis routes on the engine.
func (h *AnalysisHandler) Register(engine *gin.Engine) {
	v1 := engine.Group("/v1")
	v1.POST("/analyze", h.Analyze)
}

// Analyze runs the pipeline over the posted signal and returns its
// measures.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, errors.InvalidInput("body", err.Error()))
		return
	}
	if err := validation.Validate(req); err != nil {
		RespondWithError(c, err)
		return
	}

	opts := h.defaults
	if req.Options != nil {
		opts = *req.Options
	}

	rc := observability.NewRunContext("hrv", "analyze", middleware.GetRequestID(c), h.metrics)
	ctx, span := rc.StartSpanForRun(c.Request.Context(), observability.SpanAnalysisRun)

	measures, err := heartbeat.Process(ctx, req.Samples, req.SampleRate, opts)
	if err != nil {
		rc.EndRun(ctx, span, opts.SpectralMethod, "error", len(req.Samples), err)
		h.log.Warn("analysis failed", logger.ErrorFields("analyze", err))
		RespondWithError(c, err)
		return
	}

	rc.EndRun(ctx, span, opts.SpectralMethod, "ok", len(req.Samples), nil)
	RespondOK(c, measures)
}
