package kalshi

// signer.go — RSA-PSS request signing.
//
// The venue authenticates key-pair requests with an RSA-PSS signature
// (SHA-256 digest, MGF1, maximum salt length) over a timestamped message.
// PSS is salted, so two signatures over the same message differ; nothing may
// assume stable signatures across calls.

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// ParsePrivateKey decodes a PEM-encoded RSA private key. PKCS#8 is tried
// first, PKCS#1 as fallback for older key files.
func ParsePrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: key is not RSA", ErrKeyFormat)
		}
		return rsaKey, nil
	}

	rsaKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}
	return rsaKey, nil
}

// Sign produces the base64-encoded RSA-PSS signature of message.
func Sign(key *rsa.PrivateKey, message []byte) (string, error) {
	hashed := sha256.Sum256(message)

	sig, err := rsa.SignPSS(rand.Reader, key, crypto.SHA256, hashed[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto, // largest salt the key size allows
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return "", fmt.Errorf("kalshi.Sign: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}
