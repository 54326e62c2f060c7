package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is immutable once appended to a session transcript.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Session holds everything one client accumulates during an interactive
// run: the pasted job description, the extracted resume text, the latest
// analysis result with its score, and the chat transcript. A session serves
// a single client at a time, so its fields are mutated without a lock; the
// repository guards only the session map itself.
type Session struct {
	ID                uuid.UUID     `json:"id"`
	JobDescription    string        `json:"job_description"`
	ResumeText        string        `json:"resume_text"`
	AnalysisResult    string        `json:"analysis_result"`
	ATSScore          int           `json:"ats_score"`
	ChatHistory       []ChatMessage `json:"chat_history"`
	ProcessedFileName string        `json:"processed_file_name,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:          uuid.New(),
		ChatHistory: []ChatMessage{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetJobDescription replaces the pasted job description text.
func (s *Session) SetJobDescription(text string) {
	s.JobDescription = text
	s.touch()
}

// ApplyExtraction records a freshly extracted resume. A new document
// invalidates everything derived from the previous one, so the analysis
// result, the score and the chat transcript are all cleared.
func (s *Session) ApplyExtraction(resumeText, fileName string) {
	s.ResumeText = resumeText
	s.ProcessedFileName = fileName
	s.AnalysisResult = ""
	s.ATSScore = 0
	s.ChatHistory = []ChatMessage{}
	s.touch()
}

// ClearProcessedFile drops the processed-file marker after a failed
// extraction so the next upload of the same name is attempted again.
func (s *Session) ClearProcessedFile() {
	s.ProcessedFileName = ""
	s.touch()
}

// RecordAnalysis updates the result text and the score as a pair. Actions
// that produce no score store 0.
func (s *Session) RecordAnalysis(result string, score int) {
	s.AnalysisResult = result
	s.ATSScore = score
	s.touch()
}

// AppendChatTurn adds one message to the transcript in chronological order.
func (s *Session) AppendChatTurn(role ChatRole, content string) {
	s.ChatHistory = append(s.ChatHistory, ChatMessage{Role: role, Content: content})
	s.touch()
}

// RecentChatContext renders the last n transcript messages as
// "role: content" lines, oldest first.
func (s *Session) RecentChatContext(n int) string {
	history := s.ChatHistory
	if len(history) > n {
		history = history[len(history)-n:]
	}

	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
