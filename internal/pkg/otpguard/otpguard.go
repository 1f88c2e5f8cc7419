package otpguard

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAccountLocked is returned while the hard lock from repeated wrong
	// submissions is active.
	ErrAccountLocked = errors.New("otpguard: account locked")

	// ErrTooManyRequests is returned while the spam lock from repeated
	// issuance requests is active.
	ErrTooManyRequests = errors.New("otpguard: too many requests")

	// ErrCooldown is returned when a new code is requested before the
	// cooldown from the previous issuance has elapsed.
	ErrCooldown = errors.New("otpguard: cooldown active")

	// ErrExpired is returned when no active code exists for the identity,
	// either because none was issued or because it expired or was consumed.
	ErrExpired = errors.New("otpguard: code expired or not issued")

	// ErrLockedOut is returned on the wrong submission that triggers the
	// hard lock. The active code is destroyed at that point.
	ErrLockedOut = errors.New("otpguard: locked out after repeated failures")
)

// InvalidCodeError is returned on a wrong submission that does not trigger
// the hard lock. Remaining counts how many more attempts are allowed.
type InvalidCodeError struct {
	Remaining int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("otpguard: invalid code, %d attempts left", e.Remaining)
}

// DispatchError wraps a Notifier failure during issuance. No OTP state is
// committed when dispatch fails, so the caller may retry issuance safely.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return "otpguard: dispatch failed: " + e.Err.Error()
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Dispatch describes how an issued code is delivered: which purpose template
// to render and the display name of the recipient.
type Dispatch struct {
	Template string
	Name     string
}

// Notifier delivers a generated code to an address. Implementations must
// return a non-nil error on delivery failure so issuance can roll back.
type Notifier interface {
	Send(ctx context.Context, address, template, name, code string) error
}

// Rand yields a non-negative pseudo or true random number below n.
type Rand interface {
	Intn(n int) int
}

const (
	keyLock         = "otp_lock:"
	keySpamLock     = "otp_spam_lock:"
	keyCooldown     = "otp_cooldown:"
	keyRequestCount = "otp_request_count:"
	keyCode         = "otp:"
	keyAttempts     = "otp_attempts:"
)

const (
	lockTTL     = 30 * time.Minute
	spamLockTTL = time.Hour
	cooldownTTL = time.Minute
	requestTTL  = time.Hour
	codeTTL     = 5 * time.Minute
	attemptsTTL = 5 * time.Minute

	// maxRequests is the number of issuance requests allowed inside the
	// rolling one-hour window before the spam lock engages.
	maxRequests = 2

	// maxFailures is the number of wrong submissions tolerated before the
	// hard lock engages on the next one.
	maxFailures = 2
)

// Guard owns all OTP lifecycle state for every identity sharing the store.
// Registration and password recovery deliberately share one key namespace
// per email so neither flow can sidestep the other's cooldown or locks.
type Guard struct {
	store    Store
	notifier Notifier
	rand     Rand
}

// New builds a Guard on top of a TTL store, a Notifier and a random source.
func New(store Store, notifier Notifier, rand Rand) *Guard {
	return &Guard{
		store:    store,
		notifier: notifier,
		rand:     rand,
	}
}

// CheckRestrictions reports whether a new issuance may proceed for the
// identity. It reads the hard lock, the spam lock and the cooldown marker
// in that priority order and returns the matching typed error on denial.
// It never mutates state.
func (g *Guard) CheckRestrictions(ctx context.Context, identity string) error {
	if _, ok, err := g.store.Get(ctx, keyLock+identity); err != nil {
		return err
	} else if ok {
		return ErrAccountLocked
	}

	if _, ok, err := g.store.Get(ctx, keySpamLock+identity); err != nil {
		return err
	} else if ok {
		return ErrTooManyRequests
	}

	if _, ok, err := g.store.Get(ctx, keyCooldown+identity); err != nil {
		return err
	} else if ok {
		return ErrCooldown
	}

	return nil
}

// TrackRequest counts an issuance request against the rolling one-hour
// window. The third and every later request inside the window engages the
// spam lock and is denied.
//
// The increment is a single atomic store primitive, so two concurrent
// requests cannot both observe the pre-lock count. Each increment resets the
// window TTL; the hour restarts on every request rather than being fixed.
func (g *Guard) TrackRequest(ctx context.Context, identity string) error {
	count, err := g.store.Incr(ctx, keyRequestCount+identity, requestTTL)
	if err != nil {
		return err
	}

	if count > maxRequests {
		if err := g.store.Set(ctx, keySpamLock+identity, "locked", spamLockTTL); err != nil {
			return err
		}
		return ErrTooManyRequests
	}

	return nil
}

// Issue generates a fresh 4-digit code, dispatches it through the Notifier
// and records it with a 5-minute lifetime plus a 60-second cooldown marker.
//
// Dispatch happens before any state is written: a stored code is never
// recorded unless delivery was attempted and did not hard-fail. Callers must
// have passed CheckRestrictions and TrackRequest first.
func (g *Guard) Issue(ctx context.Context, identity string, d Dispatch) error {
	code := fmt.Sprintf("%d", 1000+g.rand.Intn(8999))

	if err := g.notifier.Send(ctx, identity, d.Template, d.Name, code); err != nil {
		return &DispatchError{Err: err}
	}

	if err := g.store.Set(ctx, keyCode+identity, code, codeTTL); err != nil {
		return err
	}

	return g.store.Set(ctx, keyCooldown+identity, "true", cooldownTTL)
}

// Verify checks a candidate code against the active one.
//
// With no active code it fails with ErrExpired. On a match the code and the
// failure counter are destroyed (deleting an absent counter is a no-op) and
// verification succeeds. On a mismatch the failure counter is bumped
// atomically; the third wrong submission destroys the code and engages the
// 30-minute hard lock, earlier ones report how many attempts remain.
func (g *Guard) Verify(ctx context.Context, identity, candidate string) error {
	stored, ok, err := g.store.Get(ctx, keyCode+identity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrExpired
	}

	if stored != candidate {
		failures, err := g.store.Incr(ctx, keyAttempts+identity, attemptsTTL)
		if err != nil {
			return err
		}

		if failures > maxFailures {
			if err := g.store.Set(ctx, keyLock+identity, "locked", lockTTL); err != nil {
				return err
			}
			if err := g.store.Delete(ctx, keyCode+identity, keyAttempts+identity); err != nil {
				return err
			}
			return ErrLockedOut
		}

		return &InvalidCodeError{Remaining: int(maxFailures + 1 - failures)}
	}

	return g.store.Delete(ctx, keyCode+identity, keyAttempts+identity)
}
