package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinelog/internal/models"
)

func seedUser(f *fakeUsers, id string) {
	_ = f.Create(context.Background(), models.User{
		ID: id, Email: id + "@x.com", Username: id, CreatedAt: time.Now(),
	})
}

func TestSocialService_ToggleFollow_RejectsSelfFollow(t *testing.T) {
	social := newFakeSocial()
	users := newFakeUsers()
	seedUser(users, "a")
	svc := NewSocialService(social, users, NewActivityBroker())

	_, err := svc.ToggleFollow(context.Background(), "a", "a")
	if !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
	if len(social.follows) != 0 {
		t.Fatalf("self-follow must not reach the repository")
	}
}

func TestSocialService_ToggleFollow_UnknownTarget(t *testing.T) {
	svc := NewSocialService(newFakeSocial(), newFakeUsers(), NewActivityBroker())

	_, err := svc.ToggleFollow(context.Background(), "a", "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSocialService_ToggleFollow_Idempotence(t *testing.T) {
	social := newFakeSocial()
	users := newFakeUsers()
	seedUser(users, "a")
	seedUser(users, "b")
	svc := NewSocialService(social, users, NewActivityBroker())
	ctx := context.Background()

	added, err := svc.ToggleFollow(ctx, "a", "b")
	if err != nil || !added {
		t.Fatalf("first toggle: added=%v err=%v", added, err)
	}
	following, _ := svc.Following(ctx, "a")
	if len(following) != 1 || following[0].ID != "b" {
		t.Fatalf("expected a to follow b, got %+v", following)
	}

	added, err = svc.ToggleFollow(ctx, "a", "b")
	if err != nil || added {
		t.Fatalf("second toggle: added=%v err=%v", added, err)
	}
	following, _ = svc.Following(ctx, "a")
	if len(following) != 0 {
		t.Fatalf("expected empty following after second toggle, got %+v", following)
	}
}

func TestSocialService_TogglePublishesActivity(t *testing.T) {
	social := newFakeSocial()
	users := newFakeUsers()
	seedUser(users, "a")
	seedUser(users, "b")
	broker := NewActivityBroker()
	svc := NewSocialService(social, users, broker)
	ctx := context.Background()

	events, cancel := broker.Subscribe()
	defer cancel()

	if _, err := svc.ToggleFollow(ctx, "a", "b"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	ev := <-events
	if ev.Type != models.ActivityFollowed || ev.ActorID != "a" || ev.SubjectID != "b" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	if _, err := svc.ToggleFollow(ctx, "a", "b"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	ev = <-events
	if ev.Type != models.ActivityUnfollowed {
		t.Fatalf("expected unfollow event, got %+v", ev)
	}
}

func TestSocialService_ToggleFavoriteAndWatchlist(t *testing.T) {
	social := newFakeSocial()
	svc := NewSocialService(social, newFakeUsers(), NewActivityBroker())
	ctx := context.Background()

	added, err := svc.ToggleFavorite(ctx, "a", "m1")
	if err != nil || !added {
		t.Fatalf("favorite toggle: added=%v err=%v", added, err)
	}
	favorites, _ := svc.Favorites(ctx, "a")
	if len(favorites) != 1 || favorites[0].MovieSeries.ID != "m1" {
		t.Fatalf("unexpected favorites: %+v", favorites)
	}

	added, err = svc.ToggleWatchlist(ctx, "a", "m1")
	if err != nil || !added {
		t.Fatalf("watchlist toggle: added=%v err=%v", added, err)
	}
	added, err = svc.ToggleWatchlist(ctx, "a", "m1")
	if err != nil || added {
		t.Fatalf("second watchlist toggle: added=%v err=%v", added, err)
	}
	watchlist, _ := svc.Watchlist(ctx, "a")
	if len(watchlist) != 0 {
		t.Fatalf("expected empty watchlist, got %+v", watchlist)
	}
}

func TestActivityBroker_DropsSlowSubscribers(t *testing.T) {
	broker := NewActivityBroker()
	events, cancel := broker.Subscribe()
	defer cancel()

	// Overflow the buffer; Publish must never block.
	for i := 0; i < activityBuffer*2; i++ {
		broker.Publish(models.ActivityEvent{Type: models.ActivityFollowed})
	}

	received := 0
	for {
		select {
		case <-events:
			received++
		default:
			if received != activityBuffer {
				t.Fatalf("expected %d buffered events, got %d", activityBuffer, received)
			}
			return
		}
	}
}

func TestActivityBroker_CancelIsIdempotent(t *testing.T) {
	broker := NewActivityBroker()
	_, cancel := broker.Subscribe()
	cancel()
	cancel() // second call must not panic

	broker.Publish(models.ActivityEvent{Type: models.ActivityFollowed}) // no subscriber left
}
