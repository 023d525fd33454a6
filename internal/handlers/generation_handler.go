package handlers

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/dhvanil3103/ats-resume/internal/models"
	"github.com/dhvanil3103/ats-resume/internal/services"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

type GenerationHandler struct {
	analyzer  services.Analyzer
	extractor services.TextExtractor
}

func NewGenerationHandler(analyzer services.Analyzer, extractor services.TextExtractor) *GenerationHandler {
	return &GenerationHandler{
		analyzer:  analyzer,
		extractor: extractor,
	}
}

func (h *GenerationHandler) HandleCoverLetter(c *fiber.Ctx) error {
	input, jobDescription, missing := readJobRequest(c)
	if missing != "" {
		return badRequest(c, missing)
	}

	company := models.CompanyInfo{
		CompanyName:    c.FormValue("company_name"),
		HiringManager:  c.FormValue("hiring_manager"),
		CompanyAddress: c.FormValue("company_address"),
	}
	if company.CompanyName == "" {
		return badRequest(c, MessageNoCompanyName)
	}

	personal := models.PersonalInfo{
		FullName: c.FormValue("full_name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Address:  c.FormValue("address"),
	}
	if personal.FullName == "" {
		return badRequest(c, MessageNoFullName)
	}

	resume, err := input.resolve(h.extractor)
	if err != nil {
		return fileError(c, err)
	}

	out := h.analyzer.CoverLetter(c.UserContext(), services.CoverLetterRequest{
		Personal:       personal,
		Company:        company,
		JobDescription: jobDescription,
		Resume:         resume,
	})
	return c.JSON(models.CoverLetterResponse{CoverLetter: out.Value})
}

// HandleDownloadCoverLetter echoes the submitted letter back as a text file
// attachment named after the applicant.
func (h *GenerationHandler) HandleDownloadCoverLetter(c *fiber.Ctx) error {
	letter := c.FormValue("cover_letter")
	if letter == "" {
		return badRequest(c, MessageNoCoverLetter)
	}

	fullName := c.FormValue("full_name")
	if fullName == "" {
		return badRequest(c, MessageNoFullName)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+CoverLetterFilename(fullName))
	return c.SendString(letter)
}

// CoverLetterFilename replaces every character outside [A-Za-z0-9] with '_'.
func CoverLetterFilename(fullName string) string {
	return "Cover_Letter_" + unsafeFilenameChars.ReplaceAllString(fullName, "_") + ".txt"
}
