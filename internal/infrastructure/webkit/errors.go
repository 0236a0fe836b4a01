package webkit

import (
	"errors"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/core/gerror"
)

var (
	// ErrViewDestroyed is returned by operations on a view that was torn
	// down by a session reset.
	ErrViewDestroyed = errors.New("webkit: web view destroyed")
	// ErrViewNotCreated is returned when WebKit could not build a view.
	ErrViewNotCreated = errors.New("webkit: failed to create web view")
)

const cancelledMessage = "Load request cancelled"

// isCancelled reports whether a load-failed error only means the load was
// stopped or superseded by another navigation.
func isCancelled(err error) bool {
	if err == nil {
		return false
	}
	if err.Error() == cancelledMessage {
		return true
	}
	var gErr *gerror.GError
	if errors.As(err, &gErr) {
		return gErr.ErrorCode() == int(webkit.NetworkErrorCancelled)
	}
	return false
}
