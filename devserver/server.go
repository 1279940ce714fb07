package devserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// likeRequest is the body of the like/unlike mutations.
type likeRequest struct {
	PostId    string `json:"postId" binding:"required"`
	UsuariaId string `json:"usuariaId" binding:"required"`
}

// NewRouter builds the development post service implementing the wire
// surface the feed client consumes:
//
//	GET    /posts/posts-completos
//	GET    /posts/likes/:usuariaId
//	POST   /posts/:userId/like
//	DELETE /posts/:userId/like
func NewRouter(store *FixtureStore) *gin.Engine {
	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	posts := router.Group("/posts")

	posts.GET("/posts-completos", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Posts())
	})

	posts.GET("/likes/:usuariaId", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.LikedRecords(c.Param("usuariaId")))
	})

	posts.POST("/:userId/like", func(c *gin.Context) {
		req := likeRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !store.AddLike(req.PostId, req.UsuariaId) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		Logger.Log.Infof("like recorded: post %s by %s", req.PostId, req.UsuariaId)
		c.JSON(http.StatusOK, gin.H{"status": "liked"})
	})

	posts.DELETE("/:userId/like", func(c *gin.Context) {
		req := likeRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !store.RemoveLike(req.PostId, req.UsuariaId) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		Logger.Log.Infof("like removed: post %s by %s", req.PostId, req.UsuariaId)
		c.JSON(http.StatusOK, gin.H{"status": "unliked"})
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return router
}
