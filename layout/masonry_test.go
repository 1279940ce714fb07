package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/atelier-play/lookfeed/model"
)

func mediumPosts(n int) []*model.Post {
	posts := make([]*model.Post, n)
	for i := range posts {
		posts[i] = &model.Post{Id: fmt.Sprintf("post_%d", i+1), SizeClass: model.SizeMedium}
	}
	return posts
}

func columnIds(column []*model.Post) []string {
	ids := make([]string, 0, len(column))
	for _, p := range column {
		ids = append(ids, p.Id)
	}
	return ids
}

func TestDistributeFiveMediumPosts(t *testing.T) {
	d := &Distributor{CardWidth: 150, CardMargin: 8}
	left, right := d.Distribute(mediumPosts(5))

	// All heights equal, so the tie-break-left rule alternates columns.
	require.Equal(t, []string{"post_1", "post_3", "post_5"}, columnIds(left))
	require.Equal(t, []string{"post_2", "post_4"}, columnIds(right))

	// per-card height: 150*1.1 + 2*8 = 181
	leftHeight, rightHeight := d.ColumnHeights(mediumPosts(5))
	require.InDelta(t, 3*181.0, leftHeight, 1e-9)
	require.InDelta(t, 2*181.0, rightHeight, 1e-9)
}

func TestDistributeIsDeterministic(t *testing.T) {
	d := NewDistributor()
	posts := []*model.Post{
		{Id: "a", SizeClass: model.SizeXLarge},
		{Id: "b", SizeClass: model.SizeSmall},
		{Id: "c", SizeClass: model.SizeLarge},
		{Id: "d", SizeClass: model.SizeSmall},
		{Id: "e", SizeClass: model.SizeMedium},
	}

	left1, right1 := d.Distribute(posts)
	left2, right2 := d.Distribute(posts)

	if diff := cmp.Diff(columnIds(left1), columnIds(left2)); diff != "" {
		t.Errorf("left column not deterministic (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(columnIds(right1), columnIds(right2)); diff != "" {
		t.Errorf("right column not deterministic (-first +second):\n%s", diff)
	}
}

func TestDistributePreservesOrderWithinColumns(t *testing.T) {
	d := NewDistributor()
	posts := mediumPosts(20)
	left, right := d.Distribute(posts)

	index := map[string]int{}
	for i, p := range posts {
		index[p.Id] = i
	}
	for _, column := range [][]*model.Post{left, right} {
		for i := 1; i < len(column); i++ {
			require.Less(t, index[column[i-1].Id], index[column[i].Id])
		}
	}
	require.Equal(t, len(posts), len(left)+len(right))
}

// Greedy balance bound: the final imbalance never exceeds the height of the
// single largest card (with margins) just assigned.
func TestDistributeBalanceBound(t *testing.T) {
	d := NewDistributor()
	sizes := []model.SizeClass{
		model.SizeXLarge, model.SizeSmall, model.SizeSmall, model.SizeLarge,
		model.SizeMedium, model.SizeXLarge, model.SizeSmall, model.SizeMedium,
		model.SizeLarge, model.SizeSmall, model.SizeXLarge, model.SizeMedium,
	}
	posts := make([]*model.Post, len(sizes))
	maxHeight := 0.0
	for i, s := range sizes {
		posts[i] = &model.Post{Id: fmt.Sprintf("p%d", i), SizeClass: s}
		h := d.EstimatedHeight(posts[i]) + 2*d.CardMargin
		if h > maxHeight {
			maxHeight = h
		}
	}

	leftHeight, rightHeight := d.ColumnHeights(posts)
	require.LessOrEqual(t, math.Abs(leftHeight-rightHeight), maxHeight)
}

func TestDistributeEmptyList(t *testing.T) {
	d := NewDistributor()
	left, right := d.Distribute(nil)
	require.NotNil(t, left)
	require.NotNil(t, right)
	require.Len(t, left, 0)
	require.Len(t, right, 0)
}

func TestEstimatedHeightMultipliers(t *testing.T) {
	d := &Distributor{CardWidth: 100, CardMargin: 0}
	cases := map[model.SizeClass]float64{
		model.SizeSmall:  80,
		model.SizeMedium: 110,
		model.SizeLarge:  140,
		model.SizeXLarge: 170,
	}
	for class, want := range cases {
		require.InDelta(t, want, d.EstimatedHeight(&model.Post{SizeClass: class}), 1e-9)
	}
	// unknown class falls back to the bare card width
	require.InDelta(t, 100, d.EstimatedHeight(&model.Post{}), 1e-9)
}
