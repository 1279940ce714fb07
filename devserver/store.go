package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-play/lookfeed/normalizer"
)

// FixtureStore is the in-memory backing state of the development post
// service: a fixed set of posts plus a mutable like table.
type FixtureStore struct {
	mu    sync.Mutex
	posts []normalizer.RawPost
}

func NewFixtureStore(posts []normalizer.RawPost) *FixtureStore {
	return &FixtureStore{posts: posts}
}

// NewSeededStore builds a store with a small seeded feed, enough to exercise
// every raw shape and size class.
func NewSeededStore() *FixtureStore {
	approved := true
	authors := []normalizer.RawAuthor{
		{Id: uuid.NewString(), Name: "Lucía", AvatarUrl: "https://i.pravatar.cc/150?img=1"},
		{Id: uuid.NewString(), Name: "Marta", AvatarUrl: "https://i.pravatar.cc/150?img=2"},
		{Id: uuid.NewString(), Name: "Nora", AvatarUrl: ""},
	}
	etiquetas := []string{"propio", "comprado", "rentado", "nuevo", "vintage"}

	posts := make([]normalizer.RawPost, 0, 12)
	for i := 0; i < 12; i++ {
		author := authors[i%len(authors)]
		posts = append(posts, normalizer.RawPost{
			Id:          uuid.NewString(),
			Author:      normalizer.AuthorRef{Id: author.Id},
			Usuaria:     &author,
			ImagenUrl:   "https://picsum.photos/seed/look" + uuid.NewString()[:8] + "/400/600",
			Descripcion: "look de muestra",
			Etiqueta:    etiquetas[i%len(etiquetas)],
			Aprobado:    &approved,
			Fecha:       time.Now().Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
			Likes:       []normalizer.RawLike{},
		})
	}
	return NewFixtureStore(posts)
}

// Posts returns the current feed with like aggregates filled in.
func (s *FixtureStore) Posts() []normalizer.RawPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]normalizer.RawPost, len(s.posts))
	copy(out, s.posts)
	for i := range out {
		// detach the like list so in-place unlikes can't mutate a snapshot
		// a handler is still serializing
		out[i].Likes = append([]normalizer.RawLike{}, out[i].Likes...)
		out[i].LikesCount = len(out[i].Likes)
	}
	return out
}

// AddLike records a like, once per user per post.
func (s *FixtureStore) AddLike(postId string, userId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Id != postId {
			continue
		}
		for _, like := range s.posts[i].Likes {
			if like.UsuariaId == userId {
				return true
			}
		}
		s.posts[i].Likes = append(s.posts[i].Likes, normalizer.RawLike{
			Id:        uuid.NewString(),
			PostId:    postId,
			UsuariaId: userId,
			Fecha:     time.Now().Format(time.RFC3339),
		})
		return true
	}
	return false
}

// RemoveLike drops a user's like. Unliking a post that was never liked is
// accepted and does nothing.
func (s *FixtureStore) RemoveLike(postId string, userId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Id != postId {
			continue
		}
		kept := s.posts[i].Likes[:0]
		for _, like := range s.posts[i].Likes {
			if like.UsuariaId != userId {
				kept = append(kept, like)
			}
		}
		s.posts[i].Likes = kept
		return true
	}
	return false
}

// LikedRecords lists the like records of one user with the liked post
// embedded, matching the liked-posts endpoint shape.
func (s *FixtureStore) LikedRecords(userId string) []normalizer.RawLikedRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []normalizer.RawLikedRecord{}
	for i := range s.posts {
		for _, like := range s.posts[i].Likes {
			if like.UsuariaId != userId {
				continue
			}
			embedded := s.posts[i]
			if embedded.Usuaria != nil {
				embedded.Author = normalizer.AuthorRef{
					Id:        embedded.Usuaria.Id,
					Name:      embedded.Usuaria.Name,
					AvatarUrl: embedded.Usuaria.AvatarUrl,
					Embedded:  true,
				}
			}
			records = append(records, normalizer.RawLikedRecord{
				Id:        like.Id,
				Post:      embedded,
				UsuariaId: userId,
				Fecha:     like.Fecha,
			})
		}
	}
	return records
}
