package browser

import (
	"github.com/pkg/browser"
)

// openURL is a seam for tests; launching a real browser is not something a
// test run should do.
var openURL = browser.OpenURL

// Open launches the system default browser at the given URL. The error is
// returned for the caller to report; callers are expected to treat a failed
// launch as non-fatal and keep serving.
func Open(url string) error {
	return openURL(url)
}
