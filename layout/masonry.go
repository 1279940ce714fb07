package layout

import (
	"github.com/atelier-play/lookfeed/model"
)

const (
	// DefaultCardWidth is the reference card width the height estimates are
	// computed against.
	DefaultCardWidth = 150.0
	// DefaultCardMargin is the vertical margin applied above and below each
	// card.
	DefaultCardMargin = 8.0
)

// Distributor assigns an ordered post list to two columns, always appending
// to the currently shorter one. The split is a greedy online balancing
// heuristic: O(n), order-preserving within each column, and fully
// deterministic for a fixed input list.
type Distributor struct {
	CardWidth  float64
	CardMargin float64
}

func NewDistributor() *Distributor {
	return &Distributor{CardWidth: DefaultCardWidth, CardMargin: DefaultCardMargin}
}

func sizeMultiplier(class model.SizeClass) float64 {
	switch class {
	case model.SizeSmall:
		return 0.8
	case model.SizeMedium:
		return 1.1
	case model.SizeLarge:
		return 1.4
	case model.SizeXLarge:
		return 1.7
	default:
		return 1.0
	}
}

// EstimatedHeight is the card height used for column balancing, excluding
// margins.
func (d *Distributor) EstimatedHeight(post *model.Post) float64 {
	return d.CardWidth * sizeMultiplier(post.SizeClass)
}

// Distribute splits posts into left and right columns. Ties break toward the
// left column.
func (d *Distributor) Distribute(posts []*model.Post) (left []*model.Post, right []*model.Post) {
	left = []*model.Post{}
	right = []*model.Post{}
	leftHeight, rightHeight := 0.0, 0.0

	for _, post := range posts {
		postHeight := d.EstimatedHeight(post) + 2*d.CardMargin
		if leftHeight <= rightHeight {
			left = append(left, post)
			leftHeight += postHeight
		} else {
			right = append(right, post)
			rightHeight += postHeight
		}
	}
	return left, right
}

// ColumnHeights returns the accumulated heights the greedy pass ends with,
// margins included.
func (d *Distributor) ColumnHeights(posts []*model.Post) (leftHeight float64, rightHeight float64) {
	for _, post := range posts {
		postHeight := d.EstimatedHeight(post) + 2*d.CardMargin
		if leftHeight <= rightHeight {
			leftHeight += postHeight
		} else {
			rightHeight += postHeight
		}
	}
	return leftHeight, rightHeight
}
