package normalizer

import (
	"encoding/json"
)

// AuthorRef is the variant author reference found on raw posts. Depending on
// the endpoint the "usuariaId" field is either a bare id string or an
// embedded author object, so decoding pattern-matches on the JSON shape
// instead of duck typing downstream.
type AuthorRef struct {
	Id        string
	Name      string
	AvatarUrl string
	// Embedded is true when the reference carried a full author object.
	Embedded bool
}

type rawAuthorObject struct {
	Id        string `json:"_id"`
	Name      string `json:"nombre"`
	AvatarUrl string `json:"fotoDePerfil"`
}

func (a *AuthorRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*a = AuthorRef{Id: id}
		return nil
	}

	var obj rawAuthorObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = AuthorRef{Id: obj.Id, Name: obj.Name, AvatarUrl: obj.AvatarUrl, Embedded: true}
	return nil
}

// RawLike is one like record attached to a raw post.
type RawLike struct {
	Id        string `json:"_id"`
	PostId    string `json:"postId"`
	UsuariaId string `json:"usuariaId"`
	Fecha     string `json:"fecha"`
}

// RawAuthor is the embedded author object on full-feed posts.
type RawAuthor struct {
	Id        string `json:"_id"`
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	AvatarUrl string `json:"fotoDePerfil"`
}

// RawPost is the wire record for one feed item, covering every shape the
// service has historically produced. Optional fields stay pointers so absent
// and zero-valued can be told apart where it matters (approval tri-state).
type RawPost struct {
	Id     string    `json:"_id"`
	Author AuthorRef `json:"usuariaId"`
	// Usuaria is set on the full-feed shape only and wins over Author when
	// present.
	Usuaria          *RawAuthor `json:"usuaria"`
	ImagenUrl        string     `json:"imagenUrl"`
	ImagenUrls       []string   `json:"imagenUrls"`
	Descripcion      string     `json:"descripcion"`
	Etiqueta         string     `json:"etiqueta"`
	Aprobado         *bool      `json:"aprobado"`
	Fecha            string     `json:"fecha"`
	Likes            []RawLike  `json:"likes"`
	LikesCount       int        `json:"likesCount"`
	ComentariosCount int        `json:"comentariosCount"`
}

// RawLikedRecord is one element of the liked-posts endpoint response: a like
// record with the liked post embedded (in the embedded-author shape).
type RawLikedRecord struct {
	Id        string  `json:"_id"`
	Post      RawPost `json:"postId"`
	UsuariaId string  `json:"usuariaId"`
	Fecha     string  `json:"fecha"`
}
