package handlers

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/repositories"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/services"
)

type UploadHandler struct {
	sessionRepo repositories.SessionRepository
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewUploadHandler(
	sessionRepo repositories.SessionRepository,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		sessionRepo: sessionRepo,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /sessions/:id/resume. The uploaded PDF is read
// fully in memory; nothing is written to disk. Extraction is cached by file
// name: re-uploading the name already processed skips the parser and leaves
// existing analysis state untouched.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	session, err := findSession(c, h.sessionRepo)
	if err != nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload a PDF file as 'resume'.",
		})
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("invalid file extension: %s (PDF only)", ext),
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	// Same name as the processed file means cache hit, no re-extraction.
	if session.ProcessedFileName != "" && session.ProcessedFileName == file.Filename {
		return c.JSON(models.UploadResponse{
			FileName: file.Filename,
			Cached:   true,
			Message:  fmt.Sprintf("Current resume: '%s'", file.Filename),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	extracted, err := h.pdfParser.ExtractText(data)
	if err != nil {
		log.Printf("⚠️  PDF extraction failed for '%s': %v\n", file.Filename, err)
		// Recoverable: the session keeps its previous resume text, only the
		// processed-file marker is dropped so a retry re-extracts.
		session.ClearProcessedFile()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.UploadResponse{
			FileName: file.Filename,
			Warning:  fmt.Sprintf("Error extracting PDF text: %v", err),
		})
	}

	session.ApplyExtraction(extracted, file.Filename)
	log.Printf("📄 Extracted text from '%s' (%d characters)\n", file.Filename, len(extracted))

	return c.JSON(models.UploadResponse{
		FileName: file.Filename,
		Message:  fmt.Sprintf("Successfully extracted text from '%s'", file.Filename),
	})
}
