package usecase

import (
	"context"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// PopupTitle is shown on every popup window. Kiosk users often do not
// notice a new window has opened on top of the main one.
const PopupTitle = "Click the 'X' to close this window! --->"

// PopupPolicy decides whether pages may open new windows. A popup created
// under the policy carries the same policy and credentials, so popups of
// popups behave identically.
type PopupPolicy struct {
	AllowPopups bool
	Auth        *AuthenticateUseCase
}

// NewPopupPolicy creates a policy shared by a view and all of its popups.
func NewPopupPolicy(allow bool, auth *AuthenticateUseCase) *PopupPolicy {
	return &PopupPolicy{AllowPopups: allow, Auth: auth}
}

// Decide reports whether the popup may be created. A denied request
// creates no window and leaves the opener on its current page.
func (p *PopupPolicy) Decide(ctx context.Context, req port.PopupRequest) bool {
	log := logging.FromContext(ctx)

	if !p.AllowPopups {
		log.Debug().
			Str("target", req.TargetURI).
			Uint64("parent", uint64(req.ParentViewID)).
			Msg("popup blocked")
		return false
	}

	log.Debug().
		Str("target", req.TargetURI).
		Bool("user_gesture", req.IsUserGesture).
		Msg("popup allowed")
	return true
}
