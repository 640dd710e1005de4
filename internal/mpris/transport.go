package mpris

import "github.com/jojongai/portfolio/internal/transport"

// Transport is the part of the transport widget driven by media keys.
type Transport interface {
	TogglePlayPause()
	Play()
	Pause()
	SeekTo(seconds float64)
	SeekBy(seconds float64)
	SetVolume(percent float64)
	SetRepeat(r transport.RepeatMode)
	SetShuffle(on bool)
	Snapshot() transport.View
}

var _ Transport = (*transport.Widget)(nil)

// Options locates cover art for track metadata.
type Options struct {
	// AssetsBase is the URL image assets are served from, for example
	// "http://localhost:8080".
	AssetsBase string
	// MediaRoot is a local directory mirroring the served assets.
	MediaRoot string
}
