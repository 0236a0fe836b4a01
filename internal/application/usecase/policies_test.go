package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
)

func TestPopupPolicy_DecideDeniesWhenDisallowed(t *testing.T) {
	ctx := testContext()
	policy := usecase.NewPopupPolicy(false, nil)

	assert.False(t, policy.Decide(ctx, port.PopupRequest{TargetURI: "https://ads.example.com"}))
}

func TestPopupPolicy_AllowSharesCredentialsWithChildren(t *testing.T) {
	ctx := testContext()
	auth := usecase.NewAuthenticateUseCase(usecase.Credentials{User: "kiosk", Password: "pw"}, 0)
	policy := usecase.NewPopupPolicy(true, auth)

	assert.True(t, policy.Decide(ctx, port.PopupRequest{TargetURI: "https://help.example.org"}))
	assert.Same(t, auth, policy.Auth)
}

func TestAuthenticate_SuppliesDefaultsUnlimitedByDefault(t *testing.T) {
	ctx := testContext()
	creds := usecase.Credentials{User: "kiosk", Password: "pw"}
	uc := usecase.NewAuthenticateUseCase(creds, 0)

	for i := 0; i < 10; i++ {
		d := uc.Handle(ctx, usecase.AuthChallenge{Host: "intranet", IsRetry: i > 0})
		assert.True(t, d.Supply)
		assert.Equal(t, creds, d.Credentials)
	}
}

func TestAuthenticate_MaxAttemptsCancelsAfterRejections(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewAuthenticateUseCase(usecase.Credentials{User: "kiosk"}, 2)

	assert.True(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "intranet"}).Supply)
	assert.True(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "intranet", IsRetry: true}).Supply)
	assert.False(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "intranet", IsRetry: true}).Supply)

	// Another host has its own counter.
	assert.True(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "wiki"}).Supply)

	// A fresh challenge restarts the count.
	assert.True(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "INTRANET"}).Supply)

	uc.ResetAttempts()
	assert.True(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "intranet", IsRetry: true}).Supply)
}

func TestAuthenticate_NoUserConfiguredCancels(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewAuthenticateUseCase(usecase.Credentials{}, 0)

	assert.False(t, uc.Handle(ctx, usecase.AuthChallenge{Host: "intranet"}).Supply)
}

func TestTLSPolicy_RejectByDefault(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewTLSPolicyUseCase(false)

	assert.False(t, uc.Ignoring())
	assert.False(t, uc.Handle(ctx, usecase.TLSFailure{Host: "self-signed.local", Errors: []string{"unknown-ca"}}))
}

func TestTLSPolicy_IgnoreAcceptsOncePerHost(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewTLSPolicyUseCase(true)

	assert.True(t, uc.Handle(ctx, usecase.TLSFailure{Host: "self-signed.local"}))
	assert.False(t, uc.Handle(ctx, usecase.TLSFailure{Host: "self-signed.local"}))
	assert.False(t, uc.Handle(ctx, usecase.TLSFailure{Host: ""}))

	uc.Forget()
	assert.True(t, uc.Handle(ctx, usecase.TLSFailure{Host: "self-signed.local"}))
}
