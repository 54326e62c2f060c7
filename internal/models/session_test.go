package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyExtractionClearsDerivedState(t *testing.T) {
	session := NewSession()
	session.SetJobDescription("backend role")
	session.ApplyExtraction("old resume", "old.pdf")
	session.RecordAnalysis("a strong candidate", 88)
	session.AppendChatTurn(ChatRoleUser, "how strong?")
	session.AppendChatTurn(ChatRoleAssistant, "very")

	session.ApplyExtraction("new resume", "new.pdf")

	assert.Equal(t, "new resume", session.ResumeText)
	assert.Equal(t, "new.pdf", session.ProcessedFileName)
	assert.Empty(t, session.AnalysisResult)
	assert.Zero(t, session.ATSScore)
	assert.Empty(t, session.ChatHistory)
	// The pasted job description survives a new document.
	assert.Equal(t, "backend role", session.JobDescription)
}

func TestRecordAnalysisUpdatesPair(t *testing.T) {
	session := NewSession()

	session.RecordAnalysis("match explanation", 61)
	assert.Equal(t, "match explanation", session.AnalysisResult)
	assert.Equal(t, 61, session.ATSScore)

	// A non-score analysis resets the score alongside the new result.
	session.RecordAnalysis("summary text", 0)
	assert.Equal(t, "summary text", session.AnalysisResult)
	assert.Zero(t, session.ATSScore)
}

func TestAppendChatTurnPreservesOrder(t *testing.T) {
	session := NewSession()

	session.AppendChatTurn(ChatRoleUser, "first")
	session.AppendChatTurn(ChatRoleAssistant, "second")
	session.AppendChatTurn(ChatRoleUser, "third")

	require.Len(t, session.ChatHistory, 3)
	assert.Equal(t, ChatMessage{Role: ChatRoleUser, Content: "first"}, session.ChatHistory[0])
	assert.Equal(t, ChatMessage{Role: ChatRoleAssistant, Content: "second"}, session.ChatHistory[1])
	assert.Equal(t, ChatMessage{Role: ChatRoleUser, Content: "third"}, session.ChatHistory[2])
}

func TestRecentChatContextShorterThanWindow(t *testing.T) {
	session := NewSession()
	session.AppendChatTurn(ChatRoleUser, "only one")

	assert.Equal(t, "user: only one", session.RecentChatContext(5))
	assert.Empty(t, NewSession().RecentChatContext(5))
}

func TestClearProcessedFileKeepsResume(t *testing.T) {
	session := NewSession()
	session.ApplyExtraction("resume text", "cv.pdf")

	session.ClearProcessedFile()

	assert.Empty(t, session.ProcessedFileName)
	assert.Equal(t, "resume text", session.ResumeText)
}

func TestParseAnalysisKind(t *testing.T) {
	for _, valid := range []string{"summary", "improvements", "missing_keywords", "match_score"} {
		kind, err := ParseAnalysisKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	_, err := ParseAnalysisKind("sentiment")
	assert.Error(t, err)
}

func TestRequiresJobDescription(t *testing.T) {
	assert.False(t, AnalysisSummary.RequiresJobDescription())
	assert.False(t, AnalysisImprovements.RequiresJobDescription())
	assert.True(t, AnalysisMissingKeywords.RequiresJobDescription())
	assert.True(t, AnalysisMatchScore.RequiresJobDescription())
}
