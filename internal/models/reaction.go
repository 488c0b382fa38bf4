package models

import "time"

// ReactionKind is the closed set of reactions a user can place on a post.
type ReactionKind string

const (
	ReactionLove    ReactionKind = "love"
	ReactionLike    ReactionKind = "like"
	ReactionSupport ReactionKind = "support"
	ReactionSad     ReactionKind = "sad"
)

// ReactionKinds lists every valid kind in tally column order.
var ReactionKinds = []ReactionKind{ReactionLove, ReactionLike, ReactionSupport, ReactionSad}

// ParseReactionKind validates a raw reaction string at the boundary.
func ParseReactionKind(raw string) (ReactionKind, bool) {
	switch ReactionKind(raw) {
	case ReactionLove, ReactionLike, ReactionSupport, ReactionSad:
		return ReactionKind(raw), true
	}
	return "", false
}

// Reaction is a user's reaction on a post. The (user, post) pair is the
// primary key: a user reacting again replaces, never duplicates.
type Reaction struct {
	UserID    uint         `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint         `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Kind      ReactionKind `gorm:"type:varchar(16);not null" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReactionTally is the denormalized per-post counter row, maintained in
// lockstep with reaction writes. Counters never go negative.
type ReactionTally struct {
	PostID  uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Love    int  `gorm:"not null;default:0" json:"love"`
	Like    int  `gorm:"not null;default:0" json:"like"`
	Support int  `gorm:"not null;default:0" json:"support"`
	Sad     int  `gorm:"not null;default:0" json:"sad"`
}

// TableName pins the plural form; gorm would otherwise derive "reaction_tallies"
// anyway, but the feed query references the table by name.
func (ReactionTally) TableName() string { return "reaction_tallies" }

// Count returns the counter for the given kind.
func (t *ReactionTally) Count(kind ReactionKind) int {
	switch kind {
	case ReactionLove:
		return t.Love
	case ReactionLike:
		return t.Like
	case ReactionSupport:
		return t.Support
	case ReactionSad:
		return t.Sad
	}
	return 0
}

// Increment bumps the counter for the given kind.
func (t *ReactionTally) Increment(kind ReactionKind) {
	switch kind {
	case ReactionLove:
		t.Love++
	case ReactionLike:
		t.Like++
	case ReactionSupport:
		t.Support++
	case ReactionSad:
		t.Sad++
	}
}

// Decrement lowers the counter for the given kind, floored at zero.
func (t *ReactionTally) Decrement(kind ReactionKind) {
	switch kind {
	case ReactionLove:
		if t.Love > 0 {
			t.Love--
		}
	case ReactionLike:
		if t.Like > 0 {
			t.Like--
		}
	case ReactionSupport:
		if t.Support > 0 {
			t.Support--
		}
	case ReactionSad:
		if t.Sad > 0 {
			t.Sad--
		}
	}
}

// Total is the sum of all counters.
func (t *ReactionTally) Total() int {
	return t.Love + t.Like + t.Support + t.Sad
}
