// Package client provides a typed HTTP client for the TaskDeck API.
//
// The client wraps [github.com/go-resty/resty/v2] with per-attempt
// timeouts, automatic retries with capped exponential backoff, and
// pluggable request logging. Typed methods cover boards, lists, cards,
// members, labels, checklists, custom fields, webhooks and search; all
// of them are thin translations onto a single request primitive.
//
// # Basic Usage
//
//	c, err := client.New(key, token,
//	    client.WithRetryCount(5),
//	    client.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	board, err := c.GetBoard(ctx, "b8f1", client.Args{"lists": "open"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// The two API credentials are required arguments to [New]; everything
// else is supplied as [Option] functions. Each setting resolves as
// explicit option, else environment variable (TASKDECK_TIMEOUT_MS,
// TASKDECK_RETRIES, TASKDECK_VERBOSE; a .env file is honored), else
// built-in default. Resolution happens once inside [New]; the resulting
// configuration is immutable and safe for concurrent use. Invalid
// option values are silently ignored and the default is retained.
//
// # Retry Behaviour
//
// A failed attempt is classified into a closed set of kinds. 4xx
// responses ([APIError]) are never retried. 5xx responses, connection
// faults ([NetworkError]) and per-attempt deadline expiries
// ([TimeoutError]) are retried until the retry budget is spent, waiting
// min(wait·2^k, maxWait) between attempts (1s base, 5s cap by default).
// Once the budget is spent the call fails with [RetryExhaustedError]
// wrapping the final attempt's failure. Any fault outside the closed
// set is surfaced immediately without retrying.
//
// # Authentication
//
// Every physical request carries the key and token as query
// parameters; no other authentication flow is supported.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or enable [WithVerbose] to log
// through [log/slog]. The default [NoopLogger] discards all output.
// Logged URLs include the credential query parameters; redact them
// before persisting logs. Logging never affects the request outcome.
package client
