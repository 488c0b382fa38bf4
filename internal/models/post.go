package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents an authored post in the Ripple application.
// Tags are attached through the post_tags join table; associations are
// loaded with explicit queries, never implicit traversal.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Tags    []Tag  `gorm:"many2many:post_tags" json:"tags,omitempty"`

	// Bookmarked indicates whether the requesting viewer bookmarked this post (computed)
	Bookmarked bool `gorm:"->" json:"bookmarked"`
	// ViewerReaction is the requesting viewer's own reaction kind, empty if none (computed)
	ViewerReaction string `gorm:"->" json:"viewer_reaction,omitempty"`
	// LoveCount..SadCount mirror the reaction_tallies row; zero when no tally exists yet (computed)
	LoveCount    int `gorm:"->" json:"love_count"`
	LikeCount    int `gorm:"->" json:"like_count"`
	SupportCount int `gorm:"->" json:"support_count"`
	SadCount     int `gorm:"->" json:"sad_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Tally returns the computed reaction counters as a tally snapshot.
func (p *Post) Tally() ReactionTally {
	return ReactionTally{
		PostID:  p.ID,
		Love:    p.LoveCount,
		Like:    p.LikeCount,
		Support: p.SupportCount,
		Sad:     p.SadCount,
	}
}

// TagRefs returns the compact name+color shape for feed responses.
func (p *Post) TagRefs() []TagRef {
	refs := make([]TagRef, 0, len(p.Tags))
	for _, t := range p.Tags {
		refs = append(refs, TagRef{Name: t.Name, Color: t.Color})
	}
	return refs
}
