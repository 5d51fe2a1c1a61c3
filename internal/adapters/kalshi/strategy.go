package kalshi

// strategy.go — credential-tier selection.
//
// The gateway supports four mutually exclusive authentication strategies.
// Which one applies is decided once, from the immutable configuration
// snapshot, by a pure function over the credential set. Call sites switch
// exhaustively on the kind — there are no runtime credential re-reads.

import (
	"crypto/rsa"
	"fmt"
)

// Credentials is the read-only credential material from configuration.
// Any subset of fields may be present.
type Credentials struct {
	KeyID         string
	PrivateKeyPEM string
	Email         string
	Password      string
}

// StrategyKind enumerates the closed set of authentication strategies.
type StrategyKind string

const (
	// KindKeyPair signs every request with the RSA private key.
	KindKeyPair StrategyKind = "keypair"
	// KindBearer sends a static bearer token.
	KindBearer StrategyKind = "bearer"
	// KindLogin exchanges email/password for a session token per request.
	KindLogin StrategyKind = "login"
	// KindUnauthenticated means no live venue calls; sample data and
	// simulated orders only. It is a valid terminal strategy, not an error.
	KindUnauthenticated StrategyKind = "unauthenticated"
)

// AuthStrategy is the selected credential tier. Only the fields belonging to
// the Kind are populated.
type AuthStrategy struct {
	Kind StrategyKind

	// KindKeyPair
	KeyID      string
	PrivateKey *rsa.PrivateKey

	// KindBearer
	Token string

	// KindLogin
	Email    string
	Password string
}

// SelectStrategy derives exactly one strategy from the credential set.
// Precedence, first match wins — the strongest configured credential is
// used even when weaker ones are also present:
//
//  1. key id + private key  → key-pair signing
//  2. key id alone          → bearer token (the key id is the token)
//  3. email + password      → interactive login
//  4. nothing               → unauthenticated
//
// The only error is unparseable key material for tier 1.
func SelectStrategy(creds Credentials) (AuthStrategy, error) {
	switch {
	case creds.KeyID != "" && creds.PrivateKeyPEM != "":
		key, err := ParsePrivateKey([]byte(creds.PrivateKeyPEM))
		if err != nil {
			return AuthStrategy{}, fmt.Errorf("kalshi.SelectStrategy: %w", err)
		}
		return AuthStrategy{Kind: KindKeyPair, KeyID: creds.KeyID, PrivateKey: key}, nil

	case creds.KeyID != "":
		return AuthStrategy{Kind: KindBearer, Token: creds.KeyID}, nil

	case creds.Email != "" && creds.Password != "":
		return AuthStrategy{Kind: KindLogin, Email: creds.Email, Password: creds.Password}, nil

	default:
		return AuthStrategy{Kind: KindUnauthenticated}, nil
	}
}

// Live reports whether the strategy permits real venue calls.
func (s AuthStrategy) Live() bool {
	return s.Kind != KindUnauthenticated
}
