package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: multipart form with a "resume" PDF
// and a "job_description" text field.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "resume PDF file is required",
			Hint:  "attach the resume as multipart field 'resume'",
		})
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("unsupported file extension: %s", ext),
			Hint:  "upload a PDF file",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "job_description is required",
			Hint:  "paste the full job description text",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
		})
	}
	defer src.Close()

	resumePDF, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
		})
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), resumePDF, jobDescription)
	if err != nil {
		return respondPipelineError(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		ID:           analysis.ID.String(),
		MatchScore:   analysis.Result.MatchScore,
		ScoreClamped: analysis.Result.ScoreClamped,
		PageCount:    analysis.PageCount,
		Sections:     services.BuildReport(&analysis.Result),
	})
}

// respondPipelineError turns each failure kind into a single user-visible
// message with a remedy hint. No partial result is ever returned.
func respondPipelineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
			Hint:  "provide a fuller resume and job description",
		})
	case errors.Is(err, services.ErrExtraction):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Error: "could not extract text from the resume",
			Hint:  "re-upload a text-based PDF",
		})
	case errors.Is(err, services.ErrAuth):
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error: "inference endpoint rejected the configured credential",
			Hint:  "check the server's API key configuration",
		})
	case errors.Is(err, services.ErrRateLimit):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Error: "inference endpoint is throttling requests",
			Hint:  "try again shortly",
		})
	case errors.Is(err, services.ErrTransport):
		return c.Status(fiber.StatusGatewayTimeout).JSON(models.ErrorResponse{
			Error: "could not reach the inference endpoint",
			Hint:  "try again shortly",
		})
	case errors.Is(err, services.ErrMalformedResponse):
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error: "model returned an unparseable response",
			Hint:  "try again",
		})
	case errors.Is(err, services.ErrSchemaViolation):
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error: "model response was missing required fields",
			Hint:  "try again",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: "analysis failed",
	})
}
