package models

import "time"

// Teacher is a studio instructor profile shown on the marketing pages.
type Teacher struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Slug      string    `bson:"slug" json:"slug"`
	Bio       string    `bson:"bio" json:"bio,omitempty"`
	PhotoURL  string    `bson:"photoUrl" json:"photoUrl,omitempty"`
	Styles    []string  `bson:"styles" json:"styles,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ClassStyle describes one class type offered by the studios. TemplateID
// links it to the braincore service template the schedule reports.
type ClassStyle struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Slug        string    `bson:"slug" json:"slug"`
	TemplateID  string    `bson:"templateId" json:"templateId,omitempty"`
	Description string    `bson:"description" json:"description,omitempty"`
	Level       string    `bson:"level" json:"level,omitempty"`
	Duration    int       `bson:"duration" json:"duration,omitempty"` // minutes
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WellbeingArticle is an editorial recommendation piece.
type WellbeingArticle struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title" binding:"required"`
	Slug      string    `bson:"slug" json:"slug"`
	Summary   string    `bson:"summary" json:"summary,omitempty"`
	Body      string    `bson:"body" json:"body" binding:"required"`
	ImageURL  string    `bson:"imageUrl" json:"imageUrl,omitempty"`
	Tags      []string  `bson:"tags" json:"tags,omitempty"`
	Published bool      `bson:"published" json:"published"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CommunityPost is a member-authored post on the community board.
type CommunityPost struct {
	ID         string    `bson:"id" json:"id"`
	ContactID  string    `bson:"contactId" json:"contactId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	Body       string    `bson:"body" json:"body" binding:"required"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
