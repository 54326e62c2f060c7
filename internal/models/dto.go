package models

type CreateSessionResponse struct {
	ID string `json:"id"`
}

type SessionStateResponse struct {
	ID                string        `json:"id"`
	JobDescription    string        `json:"job_description"`
	ResumeText        string        `json:"resume_text"`
	AnalysisResult    string        `json:"analysis_result"`
	ATSScore          int           `json:"ats_score"`
	ChatHistory       []ChatMessage `json:"chat_history"`
	ProcessedFileName string        `json:"processed_file_name,omitempty"`
}

type JobDescriptionRequest struct {
	JobDescription string `json:"job_description"`
}

type UploadResponse struct {
	FileName string `json:"file_name"`
	Cached   bool   `json:"cached"`
	Message  string `json:"message,omitempty"`
	Warning  string `json:"warning,omitempty"`
}

type AnalyzeRequest struct {
	Kind string `json:"kind"`
}

type AnalyzeResponse struct {
	Kind           string `json:"kind"`
	AnalysisResult string `json:"analysis_result"`
	ATSScore       int    `json:"ats_score"`
	Warning        string `json:"warning,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply       string        `json:"reply"`
	ChatHistory []ChatMessage `json:"chat_history"`
	Warning     string        `json:"warning,omitempty"`
}

func NewSessionStateResponse(s *Session) SessionStateResponse {
	return SessionStateResponse{
		ID:                s.ID.String(),
		JobDescription:    s.JobDescription,
		ResumeText:        s.ResumeText,
		AnalysisResult:    s.AnalysisResult,
		ATSScore:          s.ATSScore,
		ChatHistory:       s.ChatHistory,
		ProcessedFileName: s.ProcessedFileName,
	}
}
