package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dhvanil3103/ats-resume/internal/models"
	"github.com/dhvanil3103/ats-resume/internal/services"
)

type AnalysisHandler struct {
	analyzer  services.Analyzer
	extractor services.TextExtractor
}

func NewAnalysisHandler(analyzer services.Analyzer, extractor services.TextExtractor) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:  analyzer,
		extractor: extractor,
	}
}

func (h *AnalysisHandler) HandleSummary(c *fiber.Ctx) error {
	input, ok := readResumeInput(c)
	if !ok {
		return badRequest(c, MessageNoResume)
	}

	resume, err := input.resolve(h.extractor)
	if err != nil {
		return fileError(c, err)
	}

	out := h.analyzer.Summarize(c.UserContext(), resume)
	return c.JSON(models.SummaryResponse{Summary: out.Value})
}

func (h *AnalysisHandler) HandleSimilarity(c *fiber.Ctx) error {
	input, jobDescription, missing := readJobRequest(c)
	if missing != "" {
		return badRequest(c, missing)
	}

	resume, err := input.resolve(h.extractor)
	if err != nil {
		return fileError(c, err)
	}

	out := h.analyzer.Similarity(c.UserContext(), jobDescription, resume)
	return c.JSON(out.Value)
}

func (h *AnalysisHandler) HandleKeywords(c *fiber.Ctx) error {
	input, jobDescription, missing := readJobRequest(c)
	if missing != "" {
		return badRequest(c, missing)
	}

	resume, err := input.resolve(h.extractor)
	if err != nil {
		return fileError(c, err)
	}

	out := h.analyzer.Keywords(c.UserContext(), jobDescription, resume)
	return c.JSON(out.Value)
}

// readJobRequest returns the message for the first missing field, or "".
func readJobRequest(c *fiber.Ctx) (resumeInput, string, string) {
	input, ok := readResumeInput(c)
	if !ok {
		return resumeInput{}, "", MessageNoResume
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return resumeInput{}, "", MessageNoJobDescription
	}

	return input, jobDescription, ""
}
