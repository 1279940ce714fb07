package postservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/atelier-play/lookfeed/normalizer"
	Logger "github.com/atelier-play/lookfeed/utils/log"
)

const defaultTimeoutSec = 15

// Client is the remote post service surface the feed session depends on.
type Client interface {
	// FetchPosts returns the approved full feed.
	FetchPosts(ctx context.Context) ([]normalizer.RawPost, error)
	// FetchLikedPosts returns the like records of one user with the liked
	// posts embedded.
	FetchLikedPosts(ctx context.Context, userId string) ([]normalizer.RawLikedRecord, error)
	// Like records a like of postId by userId.
	Like(ctx context.Context, postId string, userId string) error
	// Unlike removes a like of postId by userId.
	Unlike(ctx context.Context, postId string, userId string) error
}

// HttpClient talks to the real post service over HTTP+JSON.
type HttpClient struct {
	baseUrl string
	header  http.Header
	client  *http.Client
}

func NewHttpClient(baseUrl string) *HttpClient {
	return &HttpClient{
		baseUrl: baseUrl,
		header:  http.Header{"Content-Type": []string{"application/json"}},
		client:  &http.Client{Timeout: defaultTimeoutSec * time.Second},
	}
}

func (c *HttpClient) do(ctx context.Context, method string, uri string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, err
	}
	req.Header = c.header
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if IsNon200HttpResponse(res) {
		MaybeLogNon200HttpError(res)
		res.Body.Close()
		return nil, errors.Errorf("post service returned http %d for %s %s", res.StatusCode, method, uri)
	}

	return res, nil
}

func (c *HttpClient) FetchPosts(ctx context.Context) ([]normalizer.RawPost, error) {
	res, err := c.do(ctx, http.MethodGet, c.baseUrl+"/posts-completos", nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetch posts")
	}
	defer res.Body.Close()

	raws := []normalizer.RawPost{}
	if err := json.NewDecoder(res.Body).Decode(&raws); err != nil {
		return nil, errors.Wrap(err, "decode posts response")
	}
	return raws, nil
}

func (c *HttpClient) FetchLikedPosts(ctx context.Context, userId string) ([]normalizer.RawLikedRecord, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/likes/%s", c.baseUrl, userId), nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetch liked posts")
	}
	defer res.Body.Close()

	records := []normalizer.RawLikedRecord{}
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode liked posts response")
	}
	return records, nil
}

type likeRequestBody struct {
	PostId    string `json:"postId"`
	UsuariaId string `json:"usuariaId"`
}

func (c *HttpClient) sendLikeMutation(ctx context.Context, method string, postId string, userId string) error {
	payload, err := json.Marshal(likeRequestBody{PostId: postId, UsuariaId: userId})
	if err != nil {
		return err
	}
	res, err := c.do(ctx, method, fmt.Sprintf("%s/%s/like", c.baseUrl, userId), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

func (c *HttpClient) Like(ctx context.Context, postId string, userId string) error {
	return c.sendLikeMutation(ctx, http.MethodPost, postId, userId)
}

func (c *HttpClient) Unlike(ctx context.Context, postId string, userId string) error {
	return c.sendLikeMutation(ctx, http.MethodDelete, postId, userId)
}

// Log http response if the error code is not 2XX
func MaybeLogNon200HttpError(res *http.Response) {
	if IsNon200HttpResponse(res) {
		Logger.Log.Errorf("non-200 http code: %d", res.StatusCode)
		LogHttpResponseBody(res)
	}
}

func IsNon200HttpResponse(res *http.Response) bool {
	return res.StatusCode >= 300
}

func LogHttpResponseBody(res *http.Response) {
	body, err := io.ReadAll(res.Body)
	if err == nil {
		Logger.Log.Errorln("response body is: ", string(body))
	}
}
