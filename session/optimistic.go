package session

import (
	"context"

	"github.com/atelier-play/lookfeed/utils"
	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// toggleOp captures one optimistic toggle at the moment it was applied.
type toggleOp struct {
	postId   string
	wasLiked bool
	delta    int // +1 for a like, -1 for an unlike
	epoch    int
}

// MutationController applies like toggles optimistically and reconciles them
// with the network outcome. Each toggle produces exactly one outbound
// request and no retries; a failed request is resolved by silently rolling
// the local state back.
//
// Rollback undoes the toggle's own delta (flip the flag back, reverse the
// count adjustment) instead of writing absolute captured values. Deltas
// compose, so overlapping toggles on the same post roll back to the correct
// state in whatever order their requests fail, and toggles on different
// posts never interact.
type MutationController struct {
	session *FeedSession
}

// ToggleLike flips the post's liked state in the shared list, publishes the
// change, and confirms it against the post service in the background. The
// optimistic state is visible to the presentation layer before the network
// round trip starts. Unknown post ids are ignored.
func (c *MutationController) ToggleLike(postId string) {
	s := c.session

	s.mu.Lock()
	post, ok := s.lookupLocked(postId)
	if !ok {
		s.mu.Unlock()
		return
	}

	op := toggleOp{postId: postId, wasLiked: post.LikedByCurrentUser, epoch: s.epoch}
	if op.wasLiked {
		op.delta = -1
	} else {
		op.delta = 1
	}
	post.LikedByCurrentUser = !op.wasLiked
	post.LikeCount = utils.ClampToZero(post.LikeCount + op.delta)
	userId := s.currentUserId
	s.mu.Unlock()

	s.publishUpdate()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		c.confirm(op, userId)
	}()
}

func (c *MutationController) confirm(op toggleOp, userId string) {
	var err error
	if op.wasLiked {
		err = c.session.client.Unlike(context.Background(), op.postId, userId)
	} else {
		err = c.session.client.Like(context.Background(), op.postId, userId)
	}
	if err == nil {
		// the optimistic state is now the committed state
		return
	}

	Logger.Log.Errorf("like mutation failed for post %s, rolling back: %v", op.postId, err)
	c.revert(op)
}

func (c *MutationController) revert(op toggleOp) {
	s := c.session

	s.mu.Lock()
	if op.epoch != s.epoch {
		// the list was replaced while the call was in flight; the stale
		// result must not touch the new list
		s.mu.Unlock()
		return
	}
	post, ok := s.lookupLocked(op.postId)
	if !ok {
		s.mu.Unlock()
		return
	}
	post.LikedByCurrentUser = !post.LikedByCurrentUser
	post.LikeCount = utils.ClampToZero(post.LikeCount - op.delta)
	s.mu.Unlock()

	s.publishUpdate()
}
