package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumelens/resume-optimizer/internal/models"
	"resumelens/resume-optimizer/internal/services"
)

// minExtractedChars is the threshold below which extraction is considered to
// have failed, whether or not the parsing library reported an error.
const minExtractedChars = 50

type UploadHandler struct {
	storageService services.StorageService
	extractor      services.TextExtractor
	analyzer       services.Analyzer
	maxFileSize    int64
}

func NewUploadHandler(
	storageService services.StorageService,
	extractor services.TextExtractor,
	analyzer services.Analyzer,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		extractor:      extractor,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !services.AllowedExtension(ext) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF and DOCX allowed",
		})
	}

	if file.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Empty file provided",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))

	tempPath, err := h.storageService.SaveTemp(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save uploaded file: %v", err),
		})
	}
	// The temp file is gone on every exit path from here on.
	defer h.storageService.Remove(tempPath)

	resumeText, err := h.extractor.ExtractText(tempPath, ext)
	if err != nil {
		resumeText = ""
	}
	resumeText = services.CleanText(resumeText)

	if len(strings.TrimSpace(resumeText)) < minExtractedChars {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not extract text from resume",
		})
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		log.Printf("❌ Analysis failed for %s: %v\n", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "AI analysis failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.UploadResponse{
		Message:  "Analysis complete",
		Filename: file.Filename,
		Analysis: analysis,
	})
}
