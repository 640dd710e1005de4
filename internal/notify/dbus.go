//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"

	appName      = "Portfolio"
	desktopEntry = "portfolio"
)

type busNotifier struct {
	obj dbus.BusObject
}

// New returns a Notifier on the session bus, or a no-op one when there is
// no session bus.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopNotifier{}, nil //nolint:nilerr // no session bus disables notifications
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

func (n *busNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":        dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry":  dbus.MakeVariant(desktopEntry),
		"category":       dbus.MakeVariant("x-gnome.music"),
		"suppress-sound": dbus.MakeVariant(true),
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := n.obj.Call(busMethod, 0,
		appName, notif.ReplacesID, notif.Icon, notif.Title, notif.Body,
		[]string{}, hints, notif.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *busNotifier) Close(id uint32) error {
	return n.obj.Call(busClose, 0, id).Err
}
