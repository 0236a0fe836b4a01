// Package idle keeps track of user inactivity and holds the screensaver off
// while the kiosk is on screen.
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags from the portal interface.
	flagSuspend = 4
	flagIdle    = 8

	// InhibitReason is shown by desktops that list active inhibitors.
	InhibitReason = "Public kiosk session"
)

var _ port.IdleInhibitor = (*PortalInhibitor)(nil)

// objectFunc resolves a portal object. Swapped out in tests.
type objectFunc func(path dbus.ObjectPath) dbus.BusObject

// PortalInhibitor keeps the display awake through the XDG Desktop Portal,
// which works under any Wayland compositor and most X11 desktops.
type PortalInhibitor struct {
	conn   *dbus.Conn
	object objectFunc
	flags  uint32

	mu        sync.Mutex
	handle    dbus.ObjectPath
	holders   int
	supported bool
	// answered is set once the portal emits Response, after which the
	// request object is gone and must not be closed.
	answered bool
}

// NewPortalInhibitor connects to the session bus. When the bus or the portal
// is missing the inhibitor still works as a no-op.
func NewPortalInhibitor(ctx context.Context, blockSuspend bool) *PortalInhibitor {
	log := logging.FromContext(ctx)

	p := &PortalInhibitor{flags: inhibitFlags(blockSuspend)}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Warn().Err(err).Msg("screensaver inhibit unavailable: no D-Bus session bus")
		return p
	}
	p.conn = conn
	p.object = func(path dbus.ObjectPath) dbus.BusObject { return conn.Object(portalDest, path) }

	var version uint32
	err = p.object(portalPath).Call("org.freedesktop.DBus.Properties.Get", 0,
		portalInterface, "version").Store(&version)
	if err != nil {
		log.Warn().Err(err).Msg("screensaver inhibit unavailable: portal not running")
		return p
	}

	p.supported = true
	log.Debug().Uint32("version", version).Msg("inhibit portal available")
	return p
}

func inhibitFlags(blockSuspend bool) uint32 {
	if blockSuspend {
		return flagIdle | flagSuspend
	}
	return flagIdle
}

// Inhibit takes a hold on the screensaver. Only the first holder talks to
// the portal.
func (p *PortalInhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.holders++
	if p.holders > 1 || !p.supported {
		return nil
	}

	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason),
	}

	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	var handle dbus.ObjectPath
	err := p.object(portalPath).Call(portalInterface+".Inhibit", 0, "", p.flags, options).Store(&handle)
	if err != nil {
		p.holders--
		return fmt.Errorf("failed to inhibit screensaver: %w", err)
	}

	p.handle = handle
	p.answered = false
	if p.conn != nil {
		go p.watchResponse(ctx, handle)
	}

	log.Info().Str("handle", string(handle)).Str("reason", reason).Msg("screensaver inhibited")
	return nil
}

// watchResponse marks the request answered when the portal closes it on
// its own, as GNOME does right after granting.
func (p *PortalInhibitor) watchResponse(ctx context.Context, handle dbus.ObjectPath) {
	log := logging.FromContext(ctx)

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handle,
	)
	if err := p.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("failed to watch inhibit request")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)
	defer func() {
		p.conn.RemoveSignal(signals)
		_ = p.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path == handle && sig.Name == requestIface+".Response" {
				p.markAnswered(handle)
				log.Debug().Str("handle", string(handle)).Msg("inhibit request answered by portal")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (p *PortalInhibitor) markAnswered(handle dbus.ObjectPath) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == handle {
		p.answered = true
	}
}

// Uninhibit drops a hold. The last holder releases the portal request.
func (p *PortalInhibitor) Uninhibit(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.holders == 0 {
		return nil
	}
	p.holders--
	if p.holders > 0 {
		return nil
	}

	p.releaseLocked()
	logging.FromContext(ctx).Info().Msg("screensaver inhibit released")
	return nil
}

func (p *PortalInhibitor) releaseLocked() {
	if p.handle != "" && !p.answered && p.object != nil {
		_ = p.object(p.handle).Call(requestIface+".Close", 0).Err
	}
	p.handle = ""
	p.answered = false
}

// IsInhibited reports whether any holder remains.
func (p *PortalInhibitor) IsInhibited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.holders > 0
}

// Close releases the inhibition and the bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.releaseLocked()
	p.holders = 0

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}
