package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "now", TimeAgo(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m", TimeAgo(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h", TimeAgo(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d", TimeAgo(now.Add(-49*time.Hour), now))
	assert.Equal(t, "2w", TimeAgo(now.Add(-15*24*time.Hour), now))
}

func TestShareMessage(t *testing.T) {
	require.Equal(t,
		"Descarga Atelier Play: https://atelier-play.en.aptoide.com",
		ShareMessage(nil))

	post := &Post{Id: "p1", Description: "vestido rojo"}
	require.Equal(t,
		"Mira este post en Atelier Play: https://atelier-play.en.aptoide.com/post/p1\n\nvestido rojo",
		ShareMessage(post))
}

func TestApprovalLabel(t *testing.T) {
	assert.Equal(t, "Approved", ApprovalApproved.Label())
	assert.Equal(t, "Not approved", ApprovalRejected.Label())
	assert.Equal(t, "Pending review", ApprovalPending.Label())
}
