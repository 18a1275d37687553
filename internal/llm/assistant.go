package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/uniapply/uniapply/internal/domain"
)

const consultantSystemPrompt = `You are "UniApply Luxe", a premium study abroad consultant.
Your tone is professional, encouraging, and concise.
Your goal is to collect user background information (GPA, Major, Experience, Target School).
When the user uploads a file or types info, acknowledge it and briefly summarize what you understood.`

// Assistant exposes the application's AI operations. Every method issues a
// single completion call and shapes the result for its caller.
type Assistant struct {
	client Client
}

func NewAssistant(client Client) *Assistant {
	return &Assistant{client: client}
}

// Chat continues the consultant conversation. Prior turns are flattened into
// the prompt so the stateless completion API sees the full exchange.
func (a *Assistant) Chat(ctx context.Context, history []domain.ChatMessage, message string) (string, error) {
	var b strings.Builder
	for _, m := range history {
		role := "Student"
		if m.Role == "ai" {
			role = "Consultant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&b, "Student: %s\nConsultant:", message)
	return a.client.Complete(ctx, consultantSystemPrompt, b.String())
}

// profileFields is the JSON shape the extraction prompt asks for.
type profileFields struct {
	Name        string   `json:"name"`
	GPA         string   `json:"gpa"`
	Major       string   `json:"major"`
	Experiences []string `json:"experiences"`
	TargetMajor string   `json:"targetMajor"`
}

// ExtractProfile pulls structured background fields out of free-form text,
// typically a chat transcript or an uploaded document.
func (a *Assistant) ExtractProfile(ctx context.Context, text string) (*domain.Profile, error) {
	prompt := fmt.Sprintf(`Extract the user profile from this conversation history.
History: %s

Return JSON with keys: name, gpa, major, experiences (array of strings), targetMajor.
If a field is missing, use an empty string or empty array.
ONLY RETURN JSON.`, text)

	raw, err := a.client.Complete(ctx, "", prompt)
	if err != nil {
		return nil, err
	}
	var fields profileFields
	if err := decodeJSON(raw, &fields); err != nil {
		return nil, err
	}
	return &domain.Profile{
		Name:        fields.Name,
		GPA:         fields.GPA,
		Major:       fields.Major,
		Experiences: fields.Experiences,
		TargetMajor: fields.TargetMajor,
		RawText:     text,
	}, nil
}

// GenerateQuestionnaire produces a markdown brainstorming questionnaire
// tailored to the student's application type and background.
func (a *Assistant) GenerateQuestionnaire(ctx context.Context, appType, specialRequests, userContext string) (string, error) {
	prompt := fmt.Sprintf(`Generate a structured essay brainstorming questionnaire for a student applying for %s.
Special Requirements: %s
Student Background: %s

Output Format: Markdown.
Include 5-7 deep, reflective questions tailored to their background to help them write a personal statement.`,
		appType, specialRequests, userContext)
	return a.client.Complete(ctx, "", prompt)
}

// RecommendColleges asks for university recommendations matching the profile.
// Models return either a bare array or an object wrapping one, so both shapes
// are accepted.
func (a *Assistant) RecommendColleges(ctx context.Context, userContext string) ([]domain.College, error) {
	prompt := fmt.Sprintf(`Recommend 4 universities for this student based on their profile.
Profile: %s

Return a JSON array of objects with keys: name, location, ranking, matchScore (0-100), tags (array), requirements (short string).
Return as: { "universities": [...] }
ONLY RETURN JSON.`, userContext)

	raw, err := a.client.Complete(ctx, "", prompt)
	if err != nil {
		return nil, err
	}

	var list []domain.College
	if err := decodeJSON(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Universities []domain.College `json:"universities"`
	}
	if err := decodeJSON(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Universities, nil
}

// GenerateResumeCode rewrites resume source code. With a non-empty
// userContext the template is populated from the profile; otherwise the
// instruction drives a targeted edit. The custom macro vocabulary must be
// preserved so the preview parser keeps understanding the output.
func (a *Assistant) GenerateResumeCode(ctx context.Context, currentCode, instruction, userContext string) (string, error) {
	var prompt string
	if userContext != "" {
		prompt = fmt.Sprintf(`You are a LaTeX expert specializing in professional resumes.
User Profile Data: %s

Task: REWRITE the following LaTeX resume code to populate it with the User Profile Data.

IMPORTANT RULES:
- You MUST use the custom commands already defined in the template: \resumeSubheading{Title}{Right1}{Subtitle}{Right2}, \resumeItem{text}, \resumeItemWithTitle{Title}{Description}
- Wrap sections with \resumeSubHeadingListStart / \resumeSubHeadingListEnd
- Wrap bullet items with \resumeItemListStart / \resumeItemListEnd
- Keep the \begin{center} heading block format with name and contact info
- If the user profile is empty, keep the template structure with placeholder content
- Maintain all \usepackage and preamble definitions exactly as they are

Current Code:
%s

Return ONLY raw LaTeX code.`, userContext, currentCode)
	} else {
		prompt = fmt.Sprintf(`You are a LaTeX expert specializing in professional resumes.
Current Code:
%s
User Instruction: %s
Task: Modify the code based on the instruction. You MUST keep using the custom commands (\resumeSubheading, \resumeItem, \resumeItemWithTitle, \resumeSubHeadingListStart/End, \resumeItemListStart/End). Return ONLY raw LaTeX code.`,
			currentCode, instruction)
	}

	text, err := a.client.Complete(ctx, "", prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stripCodeFences(text)), nil
}

// GenerateEssay drafts a personal statement for the given prompt.
func (a *Assistant) GenerateEssay(ctx context.Context, essayPrompt, background string) (string, error) {
	prompt := fmt.Sprintf(`You are an Ivy League admissions essay coach.
Context/Background Info: %s
Essay Prompt: %s

Task: Write a compelling, 650-word personal statement.
Tone: Authentic, reflective, and engaging.
Output: Just the essay text.`, background, essayPrompt)
	return a.client.Complete(ctx, "", prompt)
}

// scoreSampleLimit bounds how much essay text is sent for scoring.
const scoreSampleLimit = 1000

// ScoreEssay rates an essay on vocabulary, fluency and structure.
func (a *Assistant) ScoreEssay(ctx context.Context, essayText string) (*domain.EssayScore, error) {
	sample := essayText
	if len(sample) > scoreSampleLimit {
		sample = sample[:scoreSampleLimit] + "..."
	}
	prompt := fmt.Sprintf(`Analyze this essay: %q

Return JSON with keys:
vocabulary (number 0-100)
fluency (number 0-100)
structure (number 0-100)
critique (array of strings)
ONLY RETURN JSON.`, sample)

	raw, err := a.client.Complete(ctx, "", prompt)
	if err != nil {
		return nil, err
	}
	var score domain.EssayScore
	if err := decodeJSON(raw, &score); err != nil {
		return nil, err
	}
	return &score, nil
}
