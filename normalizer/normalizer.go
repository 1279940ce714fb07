package normalizer

import (
	"hash/fnv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/atelier-play/lookfeed/model"
	"github.com/atelier-play/lookfeed/utils"
	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// Display category per raw tag. Unknown or absent tags resolve to the
// generic category instead of failing the post.
var tagCategoryMap = map[string]string{
	"comprado": "Purchased",
	"rentado":  "Rented",
	"propio":   "Own Style",
	"nuevo":    "New",
}

const genericCategory = "Style"

var sizeClasses = []model.SizeClass{
	model.SizeSmall,
	model.SizeMedium,
	model.SizeLarge,
	model.SizeXLarge,
}

// Rotating card captions, assigned by list position.
var postMoods = []string{
	"Inspiración diaria",
	"Estilo único",
	"Tendencia favorita",
	"Detalle especial",
	"Elegancia atemporal",
	"Frescura natural",
	"Looks que enamoran",
	"Joya en mi colección",
}

func hashPostId(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}

// SizeClassFor derives the layout size class from the post id, so the same
// post keeps its card size across reloads.
func SizeClassFor(id string) model.SizeClass {
	return sizeClasses[hashPostId(id)%uint32(len(sizeClasses))]
}

// AspectRatioHintFor derives a height/width estimate in [0.75, 1.25) from
// the post id, used until the real image dimensions are probed.
func AspectRatioHintFor(id string) float64 {
	return 0.75 + float64(hashPostId(id)%50)/100.0
}

func categoryFor(tag string) string {
	if category, ok := tagCategoryMap[tag]; ok {
		return category
	}
	return genericCategory
}

func approvalFor(aprobado *bool) model.ApprovalState {
	if aprobado == nil {
		return model.ApprovalPending
	}
	if *aprobado {
		return model.ApprovalApproved
	}
	return model.ApprovalRejected
}

// imageUrlsFor prefers the multi-image list, falls back to wrapping the
// single url, else yields an empty list. Null-ish entries are dropped.
func imageUrlsFor(raw *RawPost) []string {
	urls := []string{}
	if len(raw.ImagenUrls) > 0 {
		for _, u := range raw.ImagenUrls {
			if u != "" {
				urls = append(urls, u)
			}
		}
		return urls
	}
	if raw.ImagenUrl != "" {
		urls = append(urls, raw.ImagenUrl)
	}
	return urls
}

func likedBy(likes []RawLike, currentUserId string) bool {
	if currentUserId == "" {
		return false
	}
	for _, like := range likes {
		if like.UsuariaId == currentUserId {
			return true
		}
	}
	return false
}

func parseCreatedAt(postId string, fecha string) time.Time {
	if fecha == "" {
		return time.Now()
	}
	t, err := dateparse.ParseAny(fecha)
	if err != nil {
		Logger.Log.Errorf("unparseable post date %q on post %s: %v", fecha, postId, err)
		return time.Now()
	}
	return t
}

// Normalize maps one raw server record into the canonical Post. It never
// fails: missing optional fields substitute documented defaults. index is
// the post's position in its source list and only feeds the mood rotation.
func Normalize(raw *RawPost, currentUserId string, index int) *model.Post {
	authorId := raw.Author.Id
	authorName := raw.Author.Name
	authorAvatar := raw.Author.AvatarUrl
	if raw.Usuaria != nil {
		authorId = raw.Usuaria.Id
		authorName = raw.Usuaria.Name
		authorAvatar = raw.Usuaria.AvatarUrl
	}
	if authorAvatar == "" {
		authorAvatar = model.PlaceholderImageUrl
	}

	return &model.Post{
		Id:                 raw.Id,
		AuthorId:           authorId,
		AuthorName:         authorName,
		AuthorAvatarUrl:    authorAvatar,
		ImageUrls:          imageUrlsFor(raw),
		Description:        raw.Descripcion,
		Tag:                raw.Etiqueta,
		TagCategory:        categoryFor(raw.Etiqueta),
		Mood:               postMoods[index%len(postMoods)],
		LikeCount:          utils.ClampToZero(raw.LikesCount),
		CommentCount:       utils.ClampToZero(raw.ComentariosCount),
		CreatedAt:          parseCreatedAt(raw.Id, raw.Fecha),
		LikedByCurrentUser: likedBy(raw.Likes, currentUserId),
		SavedByCurrentUser: false,
		Approval:           approvalFor(raw.Aprobado),
		SizeClass:          SizeClassFor(raw.Id),
		AspectRatioHint:    AspectRatioHintFor(raw.Id),
	}
}

// NormalizeAll maps a raw feed in order, preserving input order.
func NormalizeAll(raws []RawPost, currentUserId string) []*model.Post {
	posts := make([]*model.Post, 0, len(raws))
	for i := range raws {
		posts = append(posts, Normalize(&raws[i], currentUserId, i))
	}
	return posts
}

// NormalizeLiked maps the liked-posts endpoint response. Every resulting
// post is liked by the requesting user by construction.
func NormalizeLiked(records []RawLikedRecord, currentUserId string) []*model.Post {
	posts := make([]*model.Post, 0, len(records))
	for i := range records {
		post := Normalize(&records[i].Post, currentUserId, i)
		post.LikedByCurrentUser = true
		posts = append(posts, post)
	}
	return posts
}
