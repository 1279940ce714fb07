package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/atelier-play/lookfeed/identity"
	"github.com/atelier-play/lookfeed/model"
	"github.com/atelier-play/lookfeed/postservice"
	"github.com/atelier-play/lookfeed/session"
	"github.com/atelier-play/lookfeed/utils/dotenv"
	"github.com/atelier-play/lookfeed/utils/flag"
	Logger "github.com/atelier-play/lookfeed/utils/log"
)

const defaultApiUrl = "http://localhost:4000/posts"

// feedcli loads the feed once, prints the two-column layout, and then keeps
// following feed.updated events. Point LOOKFEED_API at a running dev_server
// (cmd/devserver) or the real service.
func main() {
	flag.Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	apiUrl := os.Getenv("LOOKFEED_API")
	if apiUrl == "" {
		apiUrl = defaultApiUrl
	}

	bus := session.NewEventBus()
	sess := session.NewFeedSession(
		postservice.NewHttpClient(apiUrl),
		identity.NewCredentialStoreFromEnv(),
		bus,
	)

	ctx := context.Background()
	messages, err := bus.Subscribe(ctx, session.TopicFeedUpdated)
	if err != nil {
		Logger.Log.Fatalf("cannot subscribe to feed updates: %v", err)
	}

	if err := sess.Load(ctx); err != nil {
		Logger.Log.Fatalf("feed load failed: %v", err)
	}

	for msg := range messages {
		msg.Ack()

		event := session.FeedUpdatedEvent{}
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			Logger.Log.Errorf("bad feed event payload: %v", err)
			continue
		}
		Logger.Log.Infof("feed updated: epoch=%d posts=%d", event.Epoch, event.PostCount)
		printColumns(sess)
	}
}

func printColumns(sess *session.FeedSession) {
	left, right := sess.Columns()
	fmt.Println("=== left column ===")
	printColumn(left)
	fmt.Println("=== right column ===")
	printColumn(right)
}

func printColumn(column []model.Post) {
	for _, post := range column {
		liked := " "
		if post.LikedByCurrentUser {
			liked = "♥"
		}
		fmt.Printf("[%s] %-8s %s (%d likes) by %s\n", liked, post.SizeClass, post.Id, post.LikeCount, post.AuthorName)
	}
}
