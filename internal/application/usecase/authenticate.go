package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/kiosk/internal/logging"
)

// Credentials is the default user/password pair offered to every site.
type Credentials struct {
	User     string
	Password string
}

// IsSet reports whether a user name is configured.
func (c Credentials) IsSet() bool {
	return c.User != ""
}

// AuthChallenge is an HTTP authentication request from any page.
type AuthChallenge struct {
	Host    string
	Realm   string
	IsRetry bool
}

// AuthDecision tells the web view how to answer a challenge.
type AuthDecision struct {
	Supply      bool
	Credentials Credentials
}

// AuthenticateUseCase answers authentication challenges with the configured
// default credentials. Unattended terminals cannot prompt, so the same pair
// is offered to every host. The pair is sent to any site that asks, which
// leaks it to third parties; deployments should configure it only on
// networks they control.
type AuthenticateUseCase struct {
	creds       Credentials
	maxAttempts int

	mu       sync.Mutex
	attempts map[string]int
}

// NewAuthenticateUseCase creates the use case. maxAttempts caps how many
// times the pair is resent to one host after being rejected; 0 means no cap.
func NewAuthenticateUseCase(creds Credentials, maxAttempts int) *AuthenticateUseCase {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return &AuthenticateUseCase{
		creds:       creds,
		maxAttempts: maxAttempts,
		attempts:    make(map[string]int),
	}
}

// Handle returns the answer for one challenge.
func (uc *AuthenticateUseCase) Handle(ctx context.Context, ch AuthChallenge) AuthDecision {
	log := logging.FromContext(ctx)
	host := strings.ToLower(ch.Host)

	if !uc.creds.IsSet() {
		log.Debug().Str("host", host).Msg("authentication requested but no default user configured")
		return AuthDecision{}
	}

	uc.mu.Lock()
	if ch.IsRetry {
		uc.attempts[host]++
	} else {
		uc.attempts[host] = 1
	}
	n := uc.attempts[host]
	uc.mu.Unlock()

	if uc.maxAttempts > 0 && n > uc.maxAttempts {
		log.Warn().
			Str("host", host).
			Int("attempts", n-1).
			Msg("default credentials rejected, giving up")
		return AuthDecision{}
	}

	log.Debug().
		Str("host", host).
		Str("realm", ch.Realm).
		Int("attempt", n).
		Msg("supplying default credentials")
	return AuthDecision{Supply: true, Credentials: uc.creds}
}

// ResetAttempts forgets per-host attempt counts.
func (uc *AuthenticateUseCase) ResetAttempts() {
	uc.mu.Lock()
	uc.attempts = make(map[string]int)
	uc.mu.Unlock()
}
