package service

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

func gormNotFound() error { return gorm.ErrRecordNotFound }

// tagRepoStub resolves from a fixed catalog.
type tagRepoStub struct {
	tags map[uint]models.Tag
}

func (s *tagRepoStub) GetByIDs(_ context.Context, ids []uint) ([]models.Tag, error) {
	var out []models.Tag
	for _, id := range ids {
		if tag, ok := s.tags[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (s *tagRepoStub) ListActive(_ context.Context) ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range s.tags {
		if tag.Active {
			out = append(out, tag)
		}
	}
	return out, nil
}

// reactionRepoStub records the last SetReaction call.
type reactionRepoStub struct {
	lastKind models.ReactionKind
	calls    int
	created  bool
	tally    models.ReactionTally
	counts   map[models.ReactionKind]int64
	err      error
}

func (s *reactionRepoStub) SetReaction(_ context.Context, postID, _ uint, kind models.ReactionKind) (*models.ReactionTally, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	s.calls++
	s.lastKind = kind
	tally := s.tally
	tally.PostID = postID
	return &tally, s.created, nil
}

func (s *reactionRepoStub) GetTally(_ context.Context, postID uint) (*models.ReactionTally, error) {
	tally := s.tally
	tally.PostID = postID
	return &tally, s.err
}

func (s *reactionRepoStub) CountByKind(_ context.Context, _ uint) (map[models.ReactionKind]int64, error) {
	return s.counts, s.err
}

// bookmarkRepoStub toggles an in-memory state.
type bookmarkRepoStub struct {
	state map[uint]bool
	err   error
}

func (s *bookmarkRepoStub) Toggle(_ context.Context, _, postID uint) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.state == nil {
		s.state = make(map[uint]bool)
	}
	s.state[postID] = !s.state[postID]
	return s.state[postID], nil
}

func (s *bookmarkRepoStub) IsBookmarked(_ context.Context, _, postID uint) (bool, error) {
	return s.state[postID], s.err
}

// userRepoStub serves a fixed user set.
type userRepoStub struct {
	users map[uint]*models.User
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	user.ID = uint(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, gormNotFound()
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *userRepoStub) Update(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

// notificationRepoStub collects created notifications.
type notificationRepoStub struct {
	created []models.Notification
	err     error
}

func (s *notificationRepoStub) Create(_ context.Context, n *models.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *n)
	return nil
}

func (s *notificationRepoStub) ListForReceiver(_ context.Context, receiverID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range s.created {
		if n.ReceiverID == receiverID {
			out = append(out, n)
		}
	}
	return out, s.err
}

func (s *notificationRepoStub) UnreadCount(_ context.Context, receiverID uint) (int64, error) {
	var count int64
	for _, n := range s.created {
		if n.ReceiverID == receiverID && !n.Read {
			count++
		}
	}
	return count, s.err
}
