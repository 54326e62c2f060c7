package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
)

var (
	ErrResumeRequired         = errors.New("please upload and process a resume first")
	ErrJobDescriptionRequired = errors.New("please enter the job description first")
)

// chatErrorReply is appended to the transcript when the model call behind a
// chat turn fails, so the conversation stays coherent for the client.
const chatErrorReply = "*Sorry, I encountered an error processing your request.*"

// AnalysisOutcome carries the mutated result of one completed analysis
// action, plus a non-fatal warning when the outcome was degraded (content
// block, unparseable score).
type AnalysisOutcome struct {
	Result   string
	ATSScore int
	Warning  string
}

type ChatOutcome struct {
	Reply   string
	Warning string
}

type AnalyzerService interface {
	Analyze(ctx context.Context, session *models.Session, kind models.AnalysisKind) (*AnalysisOutcome, error)
	Chat(ctx context.Context, session *models.Session, message string) (*ChatOutcome, error)
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(geminiService GeminiService) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements AnalyzerService. Preconditions are checked before any
// model call: a refused action makes no network request and leaves the
// session exactly as it was.
func (a *analyzerService) Analyze(ctx context.Context, session *models.Session, kind models.AnalysisKind) (*AnalysisOutcome, error) {
	if session.ResumeText == "" {
		return nil, ErrResumeRequired
	}
	if kind.RequiresJobDescription() && session.JobDescription == "" {
		return nil, ErrJobDescriptionRequired
	}

	var prompt string
	switch kind {
	case models.AnalysisSummary:
		prompt = a.promptBuilder.BuildSummaryPrompt(session.ResumeText)
	case models.AnalysisImprovements:
		prompt = a.promptBuilder.BuildImprovementsPrompt(session.ResumeText)
	case models.AnalysisMissingKeywords:
		prompt = a.promptBuilder.BuildMissingKeywordsPrompt(session.JobDescription, session.ResumeText)
	case models.AnalysisMatchScore:
		prompt = a.promptBuilder.BuildMatchScorePrompt(session.JobDescription, session.ResumeText)
	default:
		return nil, fmt.Errorf("unknown analysis kind: %q", kind)
	}

	log.Printf("🤖 Running %s analysis (prompt length: %d characters)\n", kind, len(prompt))

	text, warning, err := a.generate(ctx, prompt)
	if err != nil {
		// Terminal for this action; the session keeps its previous result.
		return nil, err
	}

	if kind == models.AnalysisMatchScore {
		score, explanation, ok := ParseATSScoreOutcome(text, true)
		if !ok && warning == "" {
			warning = "could not parse ATS score from the response"
		}
		result := fmt.Sprintf("**ATS Score Explanation:**\n\n%s", explanation)
		session.RecordAnalysis(result, score)
		return &AnalysisOutcome{Result: result, ATSScore: score, Warning: warning}, nil
	}

	session.RecordAnalysis(text, 0)
	return &AnalysisOutcome{Result: text, Warning: warning}, nil
}

// Chat implements AnalyzerService. The user turn is appended before the
// prompt is built, so the context window ends with the query being answered.
// A failed model call is recorded in the transcript instead of erroring the
// whole request.
func (a *analyzerService) Chat(ctx context.Context, session *models.Session, message string) (*ChatOutcome, error) {
	if session.ResumeText == "" {
		return nil, ErrResumeRequired
	}

	session.AppendChatTurn(models.ChatRoleUser, message)

	prompt := a.promptBuilder.BuildChatPrompt(session, message)

	text, warning, err := a.generate(ctx, prompt)
	if err != nil {
		log.Printf("❌ Chat generation failed: %v\n", err)
		session.AppendChatTurn(models.ChatRoleAssistant, chatErrorReply)
		return &ChatOutcome{Reply: chatErrorReply, Warning: err.Error()}, nil
	}

	session.AppendChatTurn(models.ChatRoleAssistant, text)
	return &ChatOutcome{Reply: text, Warning: warning}, nil
}

// generate funnels every model call through one place so blocked responses
// are rendered the same way everywhere: as a visible result marker plus a
// non-fatal warning.
func (a *analyzerService) generate(ctx context.Context, prompt string) (text, warning string, err error) {
	result, err := a.geminiService.Generate(ctx, prompt)
	if err != nil {
		return "", "", err
	}

	if result.Blocked {
		log.Printf("⚠️  API call blocked: %s\n", result.BlockReason)
		blocked := fmt.Sprintf("*API call blocked: %s*", result.BlockReason)
		return blocked, fmt.Sprintf("API call blocked: %s", result.BlockReason), nil
	}

	return result.Text, "", nil
}
