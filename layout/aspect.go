package layout

import (
	"context"
	"image"
	"net/http"
	"time"

	// Register the image formats the post service is known to serve, so
	// DecodeConfig can read their dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"

	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// defaultHeightFactor applies while an image's real dimensions are unknown.
const defaultHeightFactor = 1.2

const probeTimeoutSec = 10

// HeightFor returns the render height for a card of cardWidth. With both
// natural dimensions known it preserves the aspect ratio, otherwise it
// returns the default estimate.
func HeightFor(cardWidth float64, knownWidth float64, knownHeight float64) float64 {
	if knownWidth > 0 && knownHeight > 0 {
		return cardWidth * (knownHeight / knownWidth)
	}
	return DefaultHeight(cardWidth)
}

// DefaultHeight is the pre-probe placeholder height for a card of cardWidth.
func DefaultHeight(cardWidth float64) float64 {
	return cardWidth * defaultHeightFactor
}

// ProbeImageSize fetches the image header at url and reports its natural
// dimensions. Callers keep the default height on error; a failed probe is
// logged, never fatal.
func ProbeImageSize(ctx context.Context, url string) (width float64, height float64, err error) {
	client := &http.Client{Timeout: probeTimeoutSec * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, errors.Wrap(err, "build image probe request")
	}
	res, err := client.Do(req)
	if err != nil {
		Logger.Log.Errorf("image probe failed for %s: %v", url, err)
		return 0, 0, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		Logger.Log.Errorf("non-200 http code probing image %s: %d", url, res.StatusCode)
		return 0, 0, errors.Errorf("image probe: http %d", res.StatusCode)
	}

	config, _, err := image.DecodeConfig(res.Body)
	if err != nil {
		Logger.Log.Errorf("undecodable image at %s: %v", url, err)
		return 0, 0, errors.Wrap(err, "decode image config")
	}
	return float64(config.Width), float64(config.Height), nil
}

// ProbedHeightFor probes url and resolves the card height, falling back to
// the default estimate when the probe fails.
func ProbedHeightFor(ctx context.Context, cardWidth float64, url string) float64 {
	w, h, err := ProbeImageSize(ctx, url)
	if err != nil {
		return DefaultHeight(cardWidth)
	}
	return HeightFor(cardWidth, w, h)
}
