package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/kiosk/internal/logging"
)

// TLSFailure is a load that failed certificate verification.
type TLSFailure struct {
	FailingURI string
	Host       string
	Errors     []string
}

// TLSPolicyUseCase decides whether certificate errors are ignored. When
// ignoring, the network session skips validation for every request and
// Handle only sees main-frame failures the session did not absorb.
type TLSPolicyUseCase struct {
	ignore bool

	mu      sync.Mutex
	allowed map[string]bool
}

// NewTLSPolicyUseCase creates the policy. When ignore is false every
// certificate error fails the load.
func NewTLSPolicyUseCase(ignore bool) *TLSPolicyUseCase {
	return &TLSPolicyUseCase{ignore: ignore, allowed: make(map[string]bool)}
}

// Ignoring reports whether certificate errors are accepted.
func (uc *TLSPolicyUseCase) Ignoring() bool {
	return uc.ignore
}

// Handle returns true when the certificate should be accepted for the host
// and the load retried. A host is accepted once per session; a second
// failure for the same host is not retried.
func (uc *TLSPolicyUseCase) Handle(ctx context.Context, f TLSFailure) bool {
	log := logging.FromContext(ctx)
	host := strings.ToLower(f.Host)

	if !uc.ignore {
		log.Warn().
			Str("uri", f.FailingURI).
			Strs("errors", f.Errors).
			Msg("certificate rejected")
		return false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if host == "" || uc.allowed[host] {
		log.Warn().Str("host", host).Msg("certificate error repeated after exception, not retrying")
		return false
	}
	uc.allowed[host] = true

	log.Warn().
		Str("host", host).
		Strs("errors", f.Errors).
		Msg("ignoring certificate error")
	return true
}

// Forget drops per-session certificate exceptions.
func (uc *TLSPolicyUseCase) Forget() {
	uc.mu.Lock()
	uc.allowed = make(map[string]bool)
	uc.mu.Unlock()
}
