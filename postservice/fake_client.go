package postservice

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/atelier-play/lookfeed/normalizer"
)

// MutationCall records one like/unlike request the fake received.
type MutationCall struct {
	Kind   string // "like" or "unlike"
	PostId string
	UserId string
}

// FakeClient is an in-memory post service for tests. Mutations can be
// scripted to fail, optionally gated on a release channel so a test can hold
// several calls in flight and resolve them in a chosen order.
type FakeClient struct {
	mu sync.Mutex

	Posts      []normalizer.RawPost
	LikedPosts map[string][]normalizer.RawLikedRecord

	// FetchErr fails FetchPosts/FetchLikedPosts when set.
	FetchErr error
	// MutationErr fails Like/Unlike when set.
	MutationErr error
	// Gate, when non-nil, blocks each mutation until it receives a value.
	Gate chan struct{}

	Mutations []MutationCall
}

func NewFakeClient() *FakeClient {
	return &FakeClient{LikedPosts: map[string][]normalizer.RawLikedRecord{}}
}

func (f *FakeClient) FetchPosts(ctx context.Context) ([]normalizer.RawPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	return f.Posts, nil
}

func (f *FakeClient) FetchLikedPosts(ctx context.Context, userId string) ([]normalizer.RawLikedRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	return f.LikedPosts[userId], nil
}

func (f *FakeClient) mutate(ctx context.Context, kind string, postId string, userId string) error {
	f.mu.Lock()
	f.Mutations = append(f.Mutations, MutationCall{Kind: kind, PostId: postId, UserId: userId})
	gate := f.Gate
	err := f.MutationErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		return errors.Wrap(err, kind)
	}
	return nil
}

func (f *FakeClient) Like(ctx context.Context, postId string, userId string) error {
	return f.mutate(ctx, "like", postId, userId)
}

func (f *FakeClient) Unlike(ctx context.Context, postId string, userId string) error {
	return f.mutate(ctx, "unlike", postId, userId)
}

// MutationCount returns how many mutations the fake has received so far.
func (f *FakeClient) MutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Mutations)
}
