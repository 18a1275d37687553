// Package domain holds the shared application types.
package domain

import "time"

// Resume is a user's saved resume document: the raw LaTeX source plus a
// title. One resume per user; saving overwrites the previous one.
type Resume struct {
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	LaTeX     string    `json:"latexCode"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the student profile collected through the knowledge-base chat.
type Profile struct {
	UserID          string   `json:"userId"`
	Name            string   `json:"name,omitempty"`
	GPA             string   `json:"gpa,omitempty"`
	Major           string   `json:"major,omitempty"`
	TargetMajor     string   `json:"targetMajor,omitempty"`
	Experiences     []string `json:"experiences,omitempty"`
	ApplicationType string   `json:"applicationType,omitempty"` // "Undergraduate" or "Graduate"
	SpecialRequests string   `json:"specialRequests,omitempty"`
	RawText         string   `json:"rawText,omitempty"`
	Questionnaire   string   `json:"questionnaire,omitempty"`
}

// EssayScore is the AI assessment of an essay, each axis 0-100.
type EssayScore struct {
	Vocabulary int      `json:"vocabulary"`
	Fluency    int      `json:"fluency"`
	Structure  int      `json:"structure"`
	Critique   []string `json:"critique"`
}

// Essay is a drafted admission essay with its prompt and optional score.
type Essay struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Prompt    string      `json:"prompt"`
	Content   string      `json:"content"`
	WordCount int         `json:"wordCount"`
	Score     *EssayScore `json:"score,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// College is one recommended school.
type College struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Ranking      string   `json:"ranking"`
	MatchScore   int      `json:"matchScore"`
	Tags         []string `json:"tags"`
	Requirements string   `json:"requirements,omitempty"`
}

// ChatMessage is one message in the knowledge-base conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"` // "user" or "ai"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
