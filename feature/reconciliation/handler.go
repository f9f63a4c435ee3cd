package reconciliation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"reconciler/core/ingest"
	"reconciler/core/logger"
	"reconciler/core/reconcile"
	"reconciler/core/report"
	"reconciler/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliations.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RunResponse is a reconciliation summary with its (filtered) results.
type RunResponse struct {
	RunID      string                       `json:"run_id"`
	Cached     bool                         `json:"cached,omitempty"`
	Saved      bool                         `json:"saved"`
	FileA      string                       `json:"file_a"`
	FileB      string                       `json:"file_b"`
	Mappings   []reconcile.FieldMapping     `json:"mappings"`
	Tolerances []reconcile.ToleranceSetting `json:"tolerances"`
	Summary    reconcile.Summary            `json:"summary"`
	Shown      int                          `json:"shown"`
	Results    []reconcile.Result           `json:"results"`
}

// ObjectsRequest names two objects of the configured bucket.
type ObjectsRequest struct {
	ObjectA string     `json:"object_a"`
	ObjectB string     `json:"object_b"`
	Config  *RunConfig `json:"config,omitempty"`
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/recognize", h.HandleRecognize)

	group := app.Group("/reconcile")
	group.Post("/", h.HandleReconcileUpload)
	group.Post("/objects", h.HandleReconcileObjects)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
	group.Get("/runs/:id/export", h.HandleExportRun)
	group.Post("/runs/:id/publish", h.HandlePublishRun)
	group.Delete("/runs/:id", h.HandleDeleteRun)
}

// HandleReconcileUpload reconciles two uploaded files.
// @Summary Reconcile Uploaded Files
// @Description Reconciles file_a against file_b (CSV or XLSX). The optional config field holds JSON mappings and tolerances; without it mappings are suggested from the headers.
// @Tags reconciliation
// @Accept multipart/form-data
// @Produce json
// @Param file_a formData file true "Dataset A"
// @Param file_b formData file true "Dataset B"
// @Param config formData string false "JSON RunConfig"
// @Param status query string false "Filter results by status (all, matched, mismatched, missing_in_a, missing_in_b, duplicate, unkeyed)"
// @Param search query string false "Case-insensitive search over keys, reasons and values"
// @Success 200 {object} RunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile [post]
func (h *Handler) HandleReconcileUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, search, err := filterParams(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	a, err := readUpload(c, "file_a")
	if err != nil {
		return h.fail(c, l, err)
	}
	b, err := readUpload(c, "file_b")
	if err != nil {
		return h.fail(c, l, err)
	}
	cfg, err := parseRunConfig(c.FormValue("config"))
	if err != nil {
		return h.fail(c, l, err)
	}

	out, err := h.service.ReconcileUploads(c.UserContext(), a, b, cfg)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(outcomeResponse(out, status, search))
}

// HandleReconcileObjects reconciles two objects from the bucket.
// @Summary Reconcile Stored Objects
// @Description Reconciles two datasets already stored in the configured bucket.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body ObjectsRequest true "Object names and optional config"
// @Param status query string false "Filter results by status"
// @Param search query string false "Case-insensitive search"
// @Success 200 {object} RunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Object storage disabled"
// @Router /reconcile/objects [post]
func (h *Handler) HandleReconcileObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, search, err := filterParams(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	var req ObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, l, fmt.Errorf("%w: %v", ErrBadRequest, err))
	}

	out, err := h.service.ReconcileObjects(c.UserContext(), req.ObjectA, req.ObjectB, req.Config)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(outcomeResponse(out, status, search))
}

// HandleRecognize types headers and suggests mappings.
// @Summary Recognize Fields
// @Description Detects field types of both header lists and suggests mappings and default tolerances.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body RecognizeRequest true "Headers of both files"
// @Success 200 {object} Recognition
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /recognize [post]
func (h *Handler) HandleRecognize(c *fiber.Ctx) error {
	var req RecognizeRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, logger.WithRayID(h.logger, c), fmt.Errorf("%w: %v", ErrBadRequest, err))
	}
	return c.JSON(Recognize(req.HeadersA, req.HeadersB))
}

// HandleListRuns lists recent runs.
// @Summary List Runs
// @Description Lists stored reconciliation runs, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} Run
// @Failure 503 {object} map[string]string "History disabled"
// @Router /reconcile/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	runs, err := h.service.ListRuns(c.UserContext(), utils.ToInt(c.Query("limit"), 0))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(runs)
}

// HandleGetRun returns a stored run.
// @Summary Get Run
// @Description Returns a stored run with its results, optionally filtered.
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Param status query string false "Filter results by status"
// @Param search query string false "Case-insensitive search"
// @Success 200 {object} RunResponse
// @Failure 404 {object} map[string]string "Run not found"
// @Router /reconcile/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, search, err := filterParams(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	run, results, err := h.service.GetRun(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, err)
	}
	mappings, err := run.FieldMappings()
	if err != nil {
		return h.fail(c, l, err)
	}
	tolerances, err := run.ToleranceSettings()
	if err != nil {
		return h.fail(c, l, err)
	}

	shown := report.Filter(results, status, search)
	return c.JSON(RunResponse{
		RunID:      run.ID,
		Saved:      true,
		FileA:      run.FileA,
		FileB:      run.FileB,
		Mappings:   mappings,
		Tolerances: tolerances,
		Summary:    run.Summary(),
		Shown:      len(shown),
		Results:    shown,
	})
}

// HandleExportRun downloads a run as CSV.
// @Summary Export Run
// @Description Downloads the results of a run as CSV, honouring the status and search filters.
// @Tags history
// @Produce text/csv
// @Param id path string true "Run ID"
// @Param status query string false "Filter results by status"
// @Param search query string false "Case-insensitive search"
// @Success 200 {string} string "CSV report"
// @Failure 404 {object} map[string]string "Run not found"
// @Router /reconcile/runs/{id}/export [get]
func (h *Handler) HandleExportRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, search, err := filterParams(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	var buf bytes.Buffer
	if err := h.service.Export(c.UserContext(), c.Params("id"), status, search, &buf); err != nil {
		return h.fail(c, l, err)
	}

	c.Attachment(report.ExportFileName)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// HandlePublishRun uploads the CSV report of a run to the bucket.
// @Summary Publish Run Report
// @Description Uploads the full CSV report of a run to object storage.
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]string "Published object"
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 503 {object} map[string]string "Object storage disabled"
// @Router /reconcile/runs/{id}/publish [post]
func (h *Handler) HandlePublishRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	object, err := h.service.Publish(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(fiber.Map{"status": "published", "object": object})
}

// HandleDeleteRun deletes a run.
// @Summary Delete Run
// @Description Deletes a run, its results, archived uploads and published report.
// @Tags history
// @Param id path string true "Run ID"
// @Success 204
// @Failure 404 {object} map[string]string "Run not found"
// @Router /reconcile/runs/{id} [delete]
func (h *Handler) HandleDeleteRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.service.DeleteRun(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail maps err to a status code and writes it as {"error": ...}.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	code := StatusCode(err)
	if code >= fiber.StatusInternalServerError {
		l.Error("Reconciliation request failed", zap.Error(err))
	} else {
		l.Warn("Reconciliation request rejected", zap.Int("status", code), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// StatusCode maps service errors to HTTP status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), reconcile.IsValidationError(err), ingest.IsIngestError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrRunNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrHistoryDisabled), errors.Is(err, ErrStorageDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func filterParams(c *fiber.Ctx) (string, string, error) {
	status := c.Query("status", report.StatusAll)
	if !report.ValidStatus(status) {
		return "", "", fmt.Errorf("%w: unknown status %q", ErrBadRequest, status)
	}
	return status, c.Query("search"), nil
}

func readUpload(c *fiber.Ctx, field string) (Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: missing file %s", ErrBadRequest, field)
	}
	return openUpload(fh)
}

func openUpload(fh *multipart.FileHeader) (Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Upload{}, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}
	return Upload{Name: fh.Filename, Data: data}, nil
}

func parseRunConfig(raw string) (*RunConfig, error) {
	if raw == "" {
		return nil, nil
	}
	var cfg RunConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("%w: invalid config: %v", ErrBadRequest, err)
	}
	return &cfg, nil
}

func outcomeResponse(out *Outcome, status, search string) RunResponse {
	shown := report.Filter(out.Report.Results, status, search)
	return RunResponse{
		RunID:      out.RunID,
		Cached:     out.Cached,
		Saved:      out.Saved,
		FileA:      out.FileA,
		FileB:      out.FileB,
		Mappings:   out.Mappings,
		Tolerances: out.Tolerances,
		Summary:    out.Report.Summary,
		Shown:      len(shown),
		Results:    shown,
	}
}
