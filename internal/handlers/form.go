package handlers

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/dhvanil3103/ats-resume/internal/models"
	"github.com/dhvanil3103/ats-resume/internal/services"
)

const (
	MessageNoResume            = "No resume provided"
	MessageNoJobDescription    = "No job description provided"
	MessageNoCompanyName       = "Company name is required"
	MessageNoFullName          = "Full name is required"
	MessageNoCoverLetter       = "Cover letter is required"
	messageFileProcessingError = "Error processing file: %v"
)

// resumeInput holds whichever resume the client sent. Extraction is deferred
// until every required field has been checked.
type resumeInput struct {
	text string
	file *multipart.FileHeader
}

// readResumeInput prefers the pasted "resume" text over the "resume_file"
// part. ok is false when neither is present.
func readResumeInput(c *fiber.Ctx) (resumeInput, bool) {
	if text := c.FormValue("resume"); text != "" {
		return resumeInput{text: text}, true
	}
	if file, err := c.FormFile("resume_file"); err == nil && file != nil {
		return resumeInput{file: file}, true
	}
	return resumeInput{}, false
}

func (in resumeInput) resolve(extractor services.TextExtractor) (services.Resume, error) {
	if in.file == nil {
		return services.Resume{Text: in.text, Source: models.ResumeSourceText}, nil
	}

	text, err := extractor.ExtractUpload(in.file)
	if err != nil {
		return services.Resume{}, err
	}
	return services.Resume{Text: text, Source: models.ResumeSourceFile}, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Detail: message})
}

func fileError(c *fiber.Ctx, err error) error {
	return badRequest(c, fmt.Sprintf(messageFileProcessingError, err))
}
