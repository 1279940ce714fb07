package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/atelier-play/lookfeed/gesture"
	"github.com/atelier-play/lookfeed/identity"
	"github.com/atelier-play/lookfeed/layout"
	"github.com/atelier-play/lookfeed/model"
	"github.com/atelier-play/lookfeed/normalizer"
	"github.com/atelier-play/lookfeed/postservice"
	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// TopicFeedUpdated carries one message per observable feed state change.
const TopicFeedUpdated = "feed.updated"

// FeedUpdatedEvent is the payload published on TopicFeedUpdated.
type FeedUpdatedEvent struct {
	Epoch     int `json:"epoch"`
	PostCount int `json:"postCount"`
}

// FeedSession owns the in-memory post list and is the only mutation path to
// it. The presentation layer reads consistent snapshots through Snapshot and
// Columns, and learns about changes by subscribing to TopicFeedUpdated on
// the session's event bus.
type FeedSession struct {
	mu sync.Mutex

	client      postservice.Client
	ids         identity.Store
	distributor *layout.Distributor
	debouncer   *gesture.Debouncer
	bus         *gochannel.GoChannel

	posts         []*model.Post
	currentUserId string
	loadErr       error

	// epoch increments on every load/refresh. Mutation completions from an
	// older epoch are discarded instead of being applied to a replaced list.
	epoch int

	// tracks in-flight like/unlike calls so tests and shutdown can drain them
	inflight sync.WaitGroup

	mutations *MutationController
}

func NewFeedSession(client postservice.Client, ids identity.Store, bus *gochannel.GoChannel) *FeedSession {
	s := &FeedSession{
		client:      client,
		ids:         ids,
		distributor: layout.NewDistributor(),
		debouncer:   gesture.NewDebouncer(),
		bus:         bus,
	}
	s.mutations = &MutationController{session: s}
	return s
}

// NewEventBus builds the in-process pubsub bus sessions publish on.
func NewEventBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            100,
			BlockPublishUntilSubscriberAck: false,
		},
		watermill.NewStdLogger(false, false),
	)
}

// Load fetches the feed, normalizes it with the current user id and replaces
// the session list wholesale. Posts authored by the current user are
// excluded from the feed.
func (s *FeedSession) Load(ctx context.Context) error {
	userId := s.ids.CurrentUserId()

	raws, err := s.client.FetchPosts(ctx)
	if err != nil {
		s.mu.Lock()
		s.loadErr = errors.Wrap(err, "load feed")
		s.mu.Unlock()
		s.publishUpdate()
		return s.Err()
	}

	posts := normalizer.NormalizeAll(raws, userId)
	filtered := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if post.AuthorId == userId {
			continue
		}
		filtered = append(filtered, post)
	}

	s.mu.Lock()
	s.currentUserId = userId
	s.posts = filtered
	s.loadErr = nil
	s.epoch++
	s.mu.Unlock()

	Logger.Log.Infof("feed loaded: %d posts (%d own posts excluded)", len(filtered), len(posts)-len(filtered))
	s.publishUpdate()
	return nil
}

// Refresh re-fetches and replaces the list. Any optimistic mutation still in
// flight against the old list is discarded along with it; refresh is
// authoritative.
func (s *FeedSession) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// LoadLikedPosts returns the current user's liked posts as a standalone
// normalized list. It does not touch the session's feed list.
func (s *FeedSession) LoadLikedPosts(ctx context.Context) ([]*model.Post, error) {
	userId := s.ids.CurrentUserId()
	records, err := s.client.FetchLikedPosts(ctx, userId)
	if err != nil {
		return nil, errors.Wrap(err, "load liked posts")
	}
	return normalizer.NormalizeLiked(records, userId), nil
}

// Like sets the post liked if it isn't already. No-op on already-liked posts.
func (s *FeedSession) Like(postId string) {
	if post, ok := s.lookup(postId); ok && !post.LikedByCurrentUser {
		s.mutations.ToggleLike(postId)
	}
}

// Unlike removes the current user's like if present. No-op otherwise.
func (s *FeedSession) Unlike(postId string) {
	if post, ok := s.lookup(postId); ok && post.LikedByCurrentUser {
		s.mutations.ToggleLike(postId)
	}
}

// ToggleLike flips the post's liked state optimistically and confirms in the
// background.
func (s *FeedSession) ToggleLike(postId string) {
	if _, ok := s.lookup(postId); ok {
		s.mutations.ToggleLike(postId)
	}
}

// DoubleTap registers a tap on the post's card surface and, on a completed
// double tap, likes the post unless it is already liked. Reports whether the
// tap completed a double tap.
func (s *FeedSession) DoubleTap(postId string, now time.Time) bool {
	if !s.debouncer.RegisterTap(postId, now) {
		return false
	}
	s.Like(postId)
	return true
}

// Snapshot returns a deep copy of the current post list. Mutating the copy
// never affects session state.
func (s *FeedSession) Snapshot() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.Post, 0, len(s.posts))
	if err := copier.CopyWithOption(&snapshot, &s.posts, copier.Option{DeepCopy: true}); err != nil {
		Logger.Log.Errorf("cannot snapshot post list: %v", err)
		return []model.Post{}
	}
	return snapshot
}

// Columns returns the masonry split of the current snapshot.
func (s *FeedSession) Columns() (left []model.Post, right []model.Post) {
	snapshot := s.Snapshot()
	refs := make([]*model.Post, len(snapshot))
	for i := range snapshot {
		refs[i] = &snapshot[i]
	}

	leftRefs, rightRefs := s.distributor.Distribute(refs)
	left = make([]model.Post, 0, len(leftRefs))
	right = make([]model.Post, 0, len(rightRefs))
	for _, p := range leftRefs {
		left = append(left, *p)
	}
	for _, p := range rightRefs {
		right = append(right, *p)
	}
	return left, right
}

// Err reports the last load/refresh failure, nil after a successful load.
func (s *FeedSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// CurrentUserId returns the identity the list was last normalized with.
func (s *FeedSession) CurrentUserId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUserId
}

// WaitForPendingMutations blocks until every in-flight like/unlike call has
// resolved. Used on shutdown and in tests.
func (s *FeedSession) WaitForPendingMutations() {
	s.inflight.Wait()
}

func (s *FeedSession) lookup(postId string) (*model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(postId)
}

func (s *FeedSession) lookupLocked(postId string) (*model.Post, bool) {
	for _, post := range s.posts {
		if post.Id == postId {
			return post, true
		}
	}
	return nil, false
}

func (s *FeedSession) publishUpdate() {
	if s.bus == nil {
		return
	}

	s.mu.Lock()
	event := FeedUpdatedEvent{Epoch: s.epoch, PostCount: len(s.posts)}
	s.mu.Unlock()

	payload, err := json.Marshal(event)
	if err != nil {
		Logger.Log.Errorf("cannot marshal feed update event: %v", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.bus.Publish(TopicFeedUpdated, msg); err != nil {
		Logger.Log.Errorf("cannot publish feed update: %v", err)
	}
}
