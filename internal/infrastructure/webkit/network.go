package webkit

import (
	"context"
	"net/url"
	"strings"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"

	"github.com/bnema/kiosk/internal/logging"
)

// NewEphemeralSession creates the network session for one kiosk session.
// Nothing it stores (cookies, cache, HTTP auth, certificate exceptions)
// outlives it, so dropping it at reset is the privacy wipe.
//
// With ignoreCertErrors every request, subresources included, accepts
// invalid certificates.
func NewEphemeralSession(ctx context.Context, ignoreCertErrors bool) *webkit.NetworkSession {
	log := logging.FromContext(ctx)

	session := webkit.NewNetworkSessionEphemeral()
	if session == nil {
		log.Error().Msg("failed to create ephemeral network session")
		return nil
	}

	session.SetTLSErrorsPolicy(tlsErrorsPolicy(ignoreCertErrors))
	if ignoreCertErrors {
		log.Warn().Msg("certificate validation disabled for this session")
	}
	session.SetPersistentCredentialStorageEnabled(false)
	if cm := session.CookieManager(); cm != nil {
		cm.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	}

	log.Debug().Bool("ephemeral", session.IsEphemeral()).Msg("network session created")
	return session
}

// tlsErrorsPolicy picks the session policy. Under Fail, main-frame
// certificate errors reach load-failed-with-tls-errors and the load fails.
func tlsErrorsPolicy(ignore bool) webkit.TLSErrorsPolicy {
	if ignore {
		return webkit.TLSErrorsPolicyIgnore
	}
	return webkit.TLSErrorsPolicyFail
}

var tlsFlagNames = []struct {
	flag gio.TLSCertificateFlags
	name string
}{
	{gio.TLSCertificateUnknownCA, "unknown-ca"},
	{gio.TLSCertificateBadIdentity, "bad-identity"},
	{gio.TLSCertificateNotActivated, "not-activated"},
	{gio.TLSCertificateExpired, "expired"},
	{gio.TLSCertificateRevoked, "revoked"},
	{gio.TLSCertificateInsecure, "insecure"},
	{gio.TLSCertificateGenericError, "generic-error"},
}

// describeTLSErrors names each certificate problem in flags.
func describeTLSErrors(flags gio.TLSCertificateFlags) []string {
	var out []string
	for _, f := range tlsFlagNames {
		if flags&f.flag != 0 {
			out = append(out, f.name)
		}
	}
	return out
}

// hostOf extracts the host name from a URI, without port.
func hostOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
