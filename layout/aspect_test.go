package layout

import (
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeightFor(t *testing.T) {
	// portrait 800x1200 on a 150-wide card
	require.InDelta(t, 225, HeightFor(150, 800, 1200), 1e-9)
	// square image
	require.InDelta(t, 150, HeightFor(150, 500, 500), 1e-9)
	// unknown dimensions fall back to the default estimate
	require.InDelta(t, 180, HeightFor(150, 0, 0), 1e-9)
	require.InDelta(t, 180, DefaultHeight(150), 1e-9)
}

func TestProbeImageSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 40, 60))
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, img)
	}))
	defer server.Close()

	w, h, err := ProbeImageSize(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, 40.0, w)
	require.Equal(t, 60.0, h)

	require.InDelta(t, 225, ProbedHeightFor(context.Background(), 150, server.URL), 1e-9)
}

func TestProbeFailureKeepsDefaultHeight(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		require.InDelta(t, 180, ProbedHeightFor(context.Background(), 150, server.URL), 1e-9)
	})

	t.Run("corrupt image body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("definitely not an image"))
		}))
		defer server.Close()

		require.InDelta(t, 180, ProbedHeightFor(context.Background(), 150, server.URL), 1e-9)
	})

	t.Run("unreachable host", func(t *testing.T) {
		require.InDelta(t, 180, ProbedHeightFor(context.Background(), 150, "http://127.0.0.1:1/nope.png"), 1e-9)
	})
}
