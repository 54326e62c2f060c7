package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/repositories"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/services"
)

type AnalysisHandler struct {
	sessionRepo repositories.SessionRepository
	analyzer    services.AnalyzerService
}

func NewAnalysisHandler(
	sessionRepo repositories.SessionRepository,
	analyzer services.AnalyzerService,
) *AnalysisHandler {
	return &AnalysisHandler{
		sessionRepo: sessionRepo,
		analyzer:    analyzer,
	}
}

// HandleAnalyze handles POST /sessions/:id/analyze
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	session, err := findSession(c, h.sessionRepo)
	if err != nil {
		return err
	}

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	kind, err := models.ParseAnalysisKind(req.Kind)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "kind must be one of: summary, improvements, missing_keywords, match_score",
		})
	}

	outcome, err := h.analyzer.Analyze(c.UserContext(), session, kind)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Kind:           string(kind),
		AnalysisResult: outcome.Result,
		ATSScore:       outcome.ATSScore,
		Warning:        outcome.Warning,
	})
}

// analysisErrorResponse maps refused preconditions to 422 warnings (no model
// call was made, the session is unchanged) and everything else to a gateway
// failure.
func analysisErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrResumeRequired) || errors.Is(err, services.ErrJobDescriptionRequired) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"warning": err.Error(),
		})
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": err.Error(),
	})
}
