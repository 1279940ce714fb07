package devserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/atelier-play/lookfeed/normalizer"
	"github.com/atelier-play/lookfeed/postservice"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fixturePosts() []normalizer.RawPost {
	author := normalizer.RawAuthor{Id: "author_1", Name: "Lucía", AvatarUrl: "https://cdn.example.com/a.png"}
	return []normalizer.RawPost{
		{
			Id:          "post_1",
			Author:      normalizer.AuthorRef{Id: author.Id},
			Usuaria:     &author,
			ImagenUrl:   "https://cdn.example.com/1.jpg",
			Etiqueta:    "propio",
			Fecha:       "2024-03-01T10:30:00Z",
			Likes:       []normalizer.RawLike{},
			Descripcion: "look",
		},
	}
}

// Full round trip through the real HTTP client against the dev service.
func TestDevServerRoundTrip(t *testing.T) {
	store := NewFixtureStore(fixturePosts())
	server := httptest.NewServer(NewRouter(store))
	defer server.Close()

	client := postservice.NewHttpClient(server.URL + "/posts")
	ctx := context.Background()

	raws, err := client.FetchPosts(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	require.Equal(t, "post_1", raws[0].Id)
	require.Equal(t, 0, raws[0].LikesCount)

	require.NoError(t, client.Like(ctx, "post_1", "user_9"))

	raws, err = client.FetchPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, raws[0].LikesCount)
	require.Equal(t, "user_9", raws[0].Likes[0].UsuariaId)

	records, err := client.FetchLikedPosts(ctx, "user_9")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "post_1", records[0].Post.Id)
	require.True(t, records[0].Post.Author.Embedded)

	require.NoError(t, client.Unlike(ctx, "post_1", "user_9"))

	records, err = client.FetchLikedPosts(ctx, "user_9")
	require.NoError(t, err)
	require.Len(t, records, 0)
}

func TestLikeIsIdempotentPerUser(t *testing.T) {
	store := NewFixtureStore(fixturePosts())

	require.True(t, store.AddLike("post_1", "user_9"))
	require.True(t, store.AddLike("post_1", "user_9"))
	require.Equal(t, 1, store.Posts()[0].LikesCount)

	require.True(t, store.RemoveLike("post_1", "user_9"))
	require.Equal(t, 0, store.Posts()[0].LikesCount)
	// unliking again is accepted and does nothing
	require.True(t, store.RemoveLike("post_1", "user_9"))
}

func TestMutationsOnUnknownPostReturn404(t *testing.T) {
	store := NewFixtureStore(fixturePosts())
	server := httptest.NewServer(NewRouter(store))
	defer server.Close()

	client := postservice.NewHttpClient(server.URL + "/posts")
	require.Error(t, client.Like(context.Background(), "no_such_post", "user_9"))
	require.Error(t, client.Unlike(context.Background(), "no_such_post", "user_9"))
}

func TestSeededStoreCoversRawShapes(t *testing.T) {
	store := NewSeededStore()
	posts := store.Posts()
	require.NotEmpty(t, posts)
	for _, p := range posts {
		require.NotEmpty(t, p.Id)
		require.NotNil(t, p.Usuaria)
		require.NotEmpty(t, p.Fecha)
	}
}
