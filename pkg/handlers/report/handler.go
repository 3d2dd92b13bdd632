package report

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/prop-tools/report-atlas/pkg/models/api"
	"github.com/prop-tools/report-atlas/pkg/models/domain"
	"github.com/prop-tools/report-atlas/pkg/services/calc"
	"github.com/prop-tools/report-atlas/pkg/services/images"
	"github.com/rs/zerolog"
)

// Generator renders a report for the given input into w.
type Generator interface {
	Generate(ctx context.Context, input domain.ReportInput, w io.Writer) error
}

type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dir, err := os.MkdirTemp("", "report-images-*")
	if err != nil {
		logger.Error().Err(err).Msg("failed to create image staging dir")
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}
	defer os.RemoveAll(dir)

	set, logo, err := images.Materialize(req.Images, req.Logo, dir)
	if err != nil {
		logger.Error().Err(err).Msg("failed to stage images")
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	input := domain.ReportInput{
		Fields:   req.Fields,
		Images:   set,
		LogoPath: logo,
	}

	var buf bytes.Buffer
	if err := h.generator.Generate(ctx, input, &buf); err != nil {
		logger.Error().Err(err).Msg("failed to generate report")
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("failed to write report response")
	}
}

func (h *Handler) ListCalculators(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var response []api.Calculator
	for _, typ := range calc.Types() {
		response = append(response, api.Calculator{
			Type: string(typ),
			Name: calc.DisplayName(typ),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode calculators")
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
