// Package api implements the session & request lifecycle manager: an HTTP
// dispatcher that attaches the stored bearer token to outgoing requests,
// classifies authentication failures, performs at most one token refresh per
// original request, and retries the request exactly once.
//
// Recovery rules
//
//   - 403: refresh and retry once. If the refresh fails, the original 403 is
//     surfaced unchanged; the session survives, since a 403 may be a genuine
//     permission boundary rather than token expiry.
//   - 401: first adopt a replacement token embedded in the 401 body, if any;
//     otherwise refresh explicitly. If both fail the session is
//     irrecoverable: credentials are cleared, the registered session
//     listener is notified, and the call is rejected with
//     common.ErrSessionExpired.
//   - A request that has already been retried never re-enters recovery; its
//     failure is surfaced as-is. This bounds the work to one refresh and one
//     retry per original call.
//
// Concurrent requests may each run their own refresh; refreshes are not
// deduplicated. Refresh is idempotent server-side, so the races are benign:
// the last written token wins and every issued token stays usable.
package api
