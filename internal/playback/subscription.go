package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	SelectionChanged  <-chan SelectionChange
	IntentChanged     <-chan IntentChange
	NavigationChanged <-chan NavigationChange
	Done              <-chan struct{}

	// Internal write channels
	selectionCh  chan SelectionChange
	intentCh     chan IntentChange
	navigationCh chan NavigationChange
	doneCh       chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		selectionCh:  make(chan SelectionChange, eventBufferSize),
		intentCh:     make(chan IntentChange, eventBufferSize),
		navigationCh: make(chan NavigationChange, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.SelectionChanged = s.selectionCh
	s.IntentChanged = s.intentCh
	s.NavigationChanged = s.navigationCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSelection sends a selection change event (non-blocking).
func (s *Subscription) sendSelection(e SelectionChange) {
	select {
	case s.selectionCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendIntent sends an intent change event (non-blocking).
func (s *Subscription) sendIntent(e IntentChange) {
	select {
	case s.intentCh <- e:
	default:
	}
}

// sendNavigation sends a navigation change event (non-blocking).
func (s *Subscription) sendNavigation(e NavigationChange) {
	select {
	case s.navigationCh <- e:
	default:
	}
}
