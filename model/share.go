package model

import "fmt"

const shareBaseUrl = "https://atelier-play.en.aptoide.com"

// ShareMessage builds the share-sheet text for a post, or the generic app
// download message when post is nil.
func ShareMessage(post *Post) string {
	if post == nil {
		return fmt.Sprintf("Descarga Atelier Play: %s", shareBaseUrl)
	}
	return fmt.Sprintf("Mira este post en Atelier Play: %s/post/%s\n\n%s", shareBaseUrl, post.Id, post.Description)
}
