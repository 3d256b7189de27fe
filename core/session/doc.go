// Package session defines the client-side credential model and its
// persistence.
//
// A Session is the (token, user) pair identifying the current actor. The
// token is an opaque string minted by the backend; the client stores and
// transmits it but never inspects it. The user record carries the role the
// backend asserted at login, one of a closed set of three.
//
// # Invariant
//
// Token and user are written together and cleared together. A session
// counts as authenticated only when the in-memory user is present AND the
// store currently holds a token; the store check is re-derived on every
// read rather than cached, so the persistence medium stays the source of
// truth even though callers keep a mirrored copy for reactivity.
//
// # Stores
//
// Store is a pure get/set/remove contract over a key-value medium holding
// exactly one token and one serialized user:
//
//   - MemoryStore: mutex-guarded, for tests and non-persistent clients
//   - FileStore: single JSON file with atomic writes, the local-storage
//     analog for desktop and CLI clients
//   - RedisStore: two keys in Redis, for shared-medium deployments
//
// Absent keys are reported as ErrNotFound; stores perform no validation
// beyond rejecting nil user records.
package session
