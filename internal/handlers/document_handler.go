package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/dhvanil3103/ats-resume/internal/models"
	"github.com/dhvanil3103/ats-resume/internal/services"
)

type DocumentHandler struct {
	extractor   services.TextExtractor
	maxFileSize int64
	log         *logrus.Logger
}

func NewDocumentHandler(
	extractor services.TextExtractor,
	maxFileSize int64,
	log *logrus.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		extractor:   extractor,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleUpload returns the text extracted from the "file" part. Unsupported
// or unreadable documents still answer 200 with the explanatory message as
// content.
func (h *DocumentHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fileError(c, err)
	}

	if file.Size > h.maxFileSize {
		return fileError(c, fmt.Errorf("file too large, max size: %d bytes", h.maxFileSize))
	}

	content, err := h.extractor.ExtractUpload(file)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"filename": file.Filename,
			"error":    err,
		}).Warn("Failed to process uploaded file")
		return fileError(c, err)
	}

	return c.JSON(models.UploadResponse{
		Filename: file.Filename,
		Content:  content,
	})
}
