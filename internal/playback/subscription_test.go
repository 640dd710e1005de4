package playback

import (
	"testing"
	"testing/synctest"

	"github.com/jojongai/portfolio/internal/route"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendSelection(SelectionChange{Current: Selection{Index: 2}})
		sub.sendIntent(IntentChange{Playing: true})
		sub.sendNavigation(NavigationChange{Route: route.Song("p", "a")})

		if e := <-sub.SelectionChanged; e.Current.Index != 2 {
			t.Errorf("SelectionChanged.Current.Index = %d, want 2", e.Current.Index)
		}
		if e := <-sub.IntentChanged; !e.Playing {
			t.Error("IntentChanged.Playing = false, want true")
		}
		if e := <-sub.NavigationChanged; e.Route != route.Song("p", "a") {
			t.Errorf("NavigationChanged.Route = %v", e.Route)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendIntent(IntentChange{})
	}

	count := 0
	for {
		select {
		case <-sub.IntentChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}

func TestService_EmitsEvents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		nav := &fakeNav{current: route.Song("p", "2")}
		svc := newTestService(nav)
		sub := svc.Subscribe()
		p := examplePlaylist()

		selectAt(svc, p, 1)
		sel := <-sub.SelectionChanged
		if sel.Previous.HasItem() || sel.Current.ItemID() != "2" {
			t.Errorf("first SelectionChange = %+v", sel)
		}
		if e := <-sub.IntentChanged; !e.Playing {
			t.Error("Select should emit intent playing")
		}

		svc.Next()
		sel = <-sub.SelectionChanged
		if sel.Previous.ItemID() != "2" || sel.Current.ItemID() != "4" {
			t.Errorf("traversal SelectionChange = %s -> %s", sel.Previous.ItemID(), sel.Current.ItemID())
		}
		select {
		case e := <-sub.IntentChanged:
			t.Errorf("traversal while playing emitted intent %+v", e)
		default:
		}
		if e := <-sub.NavigationChanged; e.Route != route.Song("p", "4") {
			t.Errorf("NavigationChange = %v", e.Route)
		}

		svc.TogglePlayPause()
		if e := <-sub.IntentChanged; e.Playing {
			t.Error("toggle should emit intent paused")
		}
	})
}

func TestService_CloseSignalsSubscribers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		svc := newTestService(nil)
		sub := svc.Subscribe()

		if err := svc.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		<-sub.Done

		if err := svc.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}
		late := svc.Subscribe()
		<-late.Done
	})
}
