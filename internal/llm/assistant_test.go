package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniapply/uniapply/internal/domain"
)

// fakeClient records the last prompt pair and replies with a canned string.
type fakeClient struct {
	system string
	user   string
	reply  string
	err    error
}

func (f *fakeClient) Complete(_ context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.reply, f.err
}

func TestAssistant_Chat_FlattensHistory(t *testing.T) {
	fake := &fakeClient{reply: "Great, noted your GPA."}
	a := NewAssistant(fake)

	history := []domain.ChatMessage{
		{Role: "user", Content: "My GPA is 3.8"},
		{Role: "ai", Content: "Thanks, what is your major?"},
	}
	out, err := a.Chat(context.Background(), history, "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, "Great, noted your GPA.", out)

	assert.Contains(t, fake.system, "study abroad consultant")
	assert.Contains(t, fake.user, "Student: My GPA is 3.8")
	assert.Contains(t, fake.user, "Consultant: Thanks, what is your major?")
	assert.Contains(t, fake.user, "Student: Computer Science")
}

func TestAssistant_ExtractProfile(t *testing.T) {
	fake := &fakeClient{reply: "```json\n" + `{
		"name": "Jane Doe",
		"gpa": "3.8",
		"major": "CS",
		"experiences": ["robotics club", "internship"],
		"targetMajor": "HCI"
	}` + "\n```"}
	a := NewAssistant(fake)

	p, err := a.ExtractProfile(context.Background(), "Student: my GPA is 3.8 ...")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "HCI", p.TargetMajor)
	assert.Equal(t, []string{"robotics club", "internship"}, p.Experiences)
	assert.Equal(t, "Student: my GPA is 3.8 ...", p.RawText)
}

func TestAssistant_ExtractProfile_BadJSON(t *testing.T) {
	a := NewAssistant(&fakeClient{reply: "I could not find any profile data."})
	_, err := a.ExtractProfile(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestAssistant_RecommendColleges(t *testing.T) {
	wrapped := `{"universities": [
		{"name": "State University", "location": "Springfield", "ranking": "#42", "matchScore": 88, "tags": ["safety"], "requirements": "TOEFL 90+"}
	]}`
	bare := `[{"name": "Tech Institute", "matchScore": 70, "tags": []}]`

	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"wrapped object", wrapped, "State University"},
		{"bare array", bare, "Tech Institute"},
		{"fenced wrapped", "Here you go:\n```json\n" + wrapped + "\n```", "State University"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssistant(&fakeClient{reply: tt.reply})
			colleges, err := a.RecommendColleges(context.Background(), "GPA 3.8, CS")
			require.NoError(t, err)
			require.NotEmpty(t, colleges)
			assert.Equal(t, tt.want, colleges[0].Name)
		})
	}
}

func TestAssistant_GenerateResumeCode_StripsFences(t *testing.T) {
	fake := &fakeClient{reply: "```latex\n\\section{Education}\n\\resumeItem{Dean's list}\n```"}
	a := NewAssistant(fake)

	code, err := a.GenerateResumeCode(context.Background(), `\name{Jane}`, "add education", "")
	require.NoError(t, err)
	assert.Equal(t, "\\section{Education}\n\\resumeItem{Dean's list}", code)
	assert.Contains(t, fake.user, "add education")
	assert.Contains(t, fake.user, `\name{Jane}`)
}

func TestAssistant_GenerateResumeCode_ProfileMode(t *testing.T) {
	fake := &fakeClient{reply: `\name{Jane Doe}`}
	a := NewAssistant(fake)

	_, err := a.GenerateResumeCode(context.Background(), `\name{YOUR NAME}`, "", "Jane Doe, GPA 3.8")
	require.NoError(t, err)
	assert.Contains(t, fake.user, "User Profile Data: Jane Doe, GPA 3.8")
	assert.Contains(t, fake.user, `\resumeSubheading{Title}{Right1}{Subtitle}{Right2}`)
}

func TestAssistant_ScoreEssay(t *testing.T) {
	fake := &fakeClient{reply: `{"vocabulary": 82, "fluency": 88, "structure": 75, "critique": ["stronger conclusion needed"]}`}
	a := NewAssistant(fake)

	score, err := a.ScoreEssay(context.Background(), "My essay text.")
	require.NoError(t, err)
	assert.Equal(t, 82, score.Vocabulary)
	assert.Equal(t, 88, score.Fluency)
	assert.Equal(t, 75, score.Structure)
	assert.Equal(t, []string{"stronger conclusion needed"}, score.Critique)
}

func TestAssistant_PropagatesClientError(t *testing.T) {
	a := NewAssistant(&fakeClient{err: errors.New("boom")})

	_, err := a.GenerateEssay(context.Background(), "Why us?", "background")
	assert.Error(t, err)
	_, err = a.ScoreEssay(context.Background(), "text")
	assert.Error(t, err)
}
