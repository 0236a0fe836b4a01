package idle

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type portalCall struct {
	path   dbus.ObjectPath
	method string
	args   []interface{}
}

// fakePortal answers Inhibit with a fixed handle and records every call.
type fakePortal struct {
	calls      []portalCall
	inhibitErr error
}

type fakeObject struct {
	dbus.BusObject
	portal *fakePortal
	path   dbus.ObjectPath
}

func (o *fakeObject) Call(method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	o.portal.calls = append(o.portal.calls, portalCall{path: o.path, method: method, args: args})
	if method == portalInterface+".Inhibit" {
		if o.portal.inhibitErr != nil {
			return &dbus.Call{Err: o.portal.inhibitErr}
		}
		return &dbus.Call{Body: []interface{}{dbus.ObjectPath("/request/1")}}
	}
	return &dbus.Call{}
}

func (f *fakePortal) methods() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.method)
	}
	return out
}

func newFakeInhibitor(blockSuspend bool) (*PortalInhibitor, *fakePortal) {
	portal := &fakePortal{}
	p := &PortalInhibitor{
		flags:     inhibitFlags(blockSuspend),
		supported: true,
		object: func(path dbus.ObjectPath) dbus.BusObject {
			return &fakeObject{portal: portal, path: path}
		},
	}
	return p, portal
}

func TestPortalInhibitor_HoldsAreCounted(t *testing.T) {
	ctx := testContext()
	p, portal := newFakeInhibitor(false)

	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	assert.True(t, p.IsInhibited())
	assert.Equal(t, []string{portalInterface + ".Inhibit"}, portal.methods())

	require.NoError(t, p.Uninhibit(ctx))
	assert.True(t, p.IsInhibited())
	assert.Len(t, portal.calls, 1)

	require.NoError(t, p.Uninhibit(ctx))
	assert.False(t, p.IsInhibited())
	require.Len(t, portal.calls, 2)
	assert.Equal(t, requestIface+".Close", portal.calls[1].method)
	assert.Equal(t, dbus.ObjectPath("/request/1"), portal.calls[1].path)
}

func TestPortalInhibitor_Flags(t *testing.T) {
	ctx := testContext()

	p, portal := newFakeInhibitor(false)
	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	assert.Equal(t, uint32(flagIdle), portal.calls[0].args[1])

	p, portal = newFakeInhibitor(true)
	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	assert.Equal(t, uint32(flagIdle|flagSuspend), portal.calls[0].args[1])
}

func TestPortalInhibitor_AnsweredRequestIsNotClosed(t *testing.T) {
	ctx := testContext()
	p, portal := newFakeInhibitor(false)

	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	p.markAnswered("/request/1")
	require.NoError(t, p.Uninhibit(ctx))

	assert.Equal(t, []string{portalInterface + ".Inhibit"}, portal.methods())
}

func TestPortalInhibitor_FailedInhibitDropsHold(t *testing.T) {
	ctx := testContext()
	p, portal := newFakeInhibitor(false)
	portal.inhibitErr = errors.New("access denied")

	err := p.Inhibit(ctx, InhibitReason)
	assert.ErrorContains(t, err, "access denied")
	assert.False(t, p.IsInhibited())
}

func TestPortalInhibitor_UnsupportedIsNoop(t *testing.T) {
	ctx := testContext()
	p := &PortalInhibitor{}

	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	assert.True(t, p.IsInhibited())
	require.NoError(t, p.Uninhibit(ctx))
	require.NoError(t, p.Uninhibit(ctx))
	assert.False(t, p.IsInhibited())
	assert.NoError(t, p.Close())
}

func TestPortalInhibitor_CloseReleases(t *testing.T) {
	ctx := testContext()
	p, portal := newFakeInhibitor(false)

	require.NoError(t, p.Inhibit(ctx, InhibitReason))
	require.NoError(t, p.Close())

	assert.False(t, p.IsInhibited())
	assert.Equal(t, requestIface+".Close", portal.calls[len(portal.calls)-1].method)
}
