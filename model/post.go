package model

import (
	"time"
)

// PlaceholderImageUrl is shown whenever a post or author carries no usable
// image reference. Served from the shared asset bucket.
const PlaceholderImageUrl = "https://res.cloudinary.com/dxmhlxdxo/image/upload/v1743916178/Imagenes%20para%20usar%20xD/gxvcu5gik59c0uu7zz4p.png"

// SizeClass drives the estimated card height in the masonry layout. It is
// assigned once at normalization time and never re-derived afterwards, so a
// fixed post list always lays out the same way.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeXLarge SizeClass = "xlarge"
)

// ApprovalState mirrors the service's tri-state moderation flag
// (true / false / null).
type ApprovalState string

const (
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
	ApprovalPending  ApprovalState = "pending"
)

// Label returns the moderation badge text for this state.
func (s ApprovalState) Label() string {
	switch s {
	case ApprovalApproved:
		return "Approved"
	case ApprovalRejected:
		return "Not approved"
	default:
		return "Pending review"
	}
}

/*

Post is the canonical feed entity every raw server record normalizes into.

Id: primary key, stable across the whole session
AuthorId/AuthorName/AuthorAvatarUrl: flattened author reference; avatar falls
		back to PlaceholderImageUrl when the raw record carries none
ImageUrls: always a list, never nil, never containing empty entries. An empty
		list is a valid renderable state (placeholder card).
TagCategory: display category mapped from the raw closed-set tag
Tag: the raw tag verbatim, kept for the detail-view hashtag chip
Mood: rotating caption assigned by list position at normalization
LikeCount/CommentCount: server-supplied aggregates, never negative
LikedByCurrentUser: snapshot derived from the raw like records at
		normalization time, then owned by the optimistic mutation path
SavedByCurrentUser: always initialized false, no persisted save exists
		server-side yet
Approval: tri-state moderation flag
SizeClass: layout hint, deterministic on the post id
AspectRatioHint: height/width estimate used before the real image dimensions
		are known

*/

type Post struct {
	Id                 string
	AuthorId           string
	AuthorName         string
	AuthorAvatarUrl    string
	ImageUrls          []string
	Description        string
	Tag                string
	TagCategory        string
	Mood               string
	LikeCount          int
	CommentCount       int
	CreatedAt          time.Time
	LikedByCurrentUser bool
	SavedByCurrentUser bool
	Approval           ApprovalState
	SizeClass          SizeClass
	AspectRatioHint    float64
}
