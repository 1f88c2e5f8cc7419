// Package otpguard owns the one-time-passcode lifecycle that gates account
// registration and password recovery.
//
// All state lives in a TTL-capable key-value store keyed by the requester's
// email address. The guard enforces a cooldown between issuance requests, a
// spam lock after repeated requests, and a hard lock after repeated wrong
// submissions. Delivery goes through an injected Notifier so the guard stays
// independent from the mail provider.
package otpguard
