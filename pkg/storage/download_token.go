package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DownloadClaims identifies the exported file a download token grants
// access to. Path is relative to the export storage root.
type DownloadClaims struct {
	JobID     string    `json:"jobId"`
	Format    string    `json:"format"`
	Path      string    `json:"path"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DownloadSigner mints and verifies HMAC-signed export download tokens.
// Tokens are self-contained: the download endpoint can serve a file purely
// from a verified token even after the job record has been pruned.
type DownloadSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewDownloadSigner constructs a signer. TTL bounds how long a generated
// token stays redeemable.
func NewDownloadSigner(secret string, ttl time.Duration) *DownloadSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DownloadSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign serializes the claims, stamps the expiry and returns the token with
// its expiry time.
func (s *DownloadSigner) Sign(claims DownloadClaims) (string, time.Time, error) {
	if claims.JobID == "" || claims.Path == "" {
		return "", time.Time{}, fmt.Errorf("job ID and path required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}

	claims.ExpiresAt = time.Now().Add(s.ttl).Truncate(time.Second)
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encode claims: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	token := encoded + "." + s.signature(encoded)
	return token, claims.ExpiresAt, nil
}

// Verify checks the token's signature and expiry and returns its claims.
func (s *DownloadSigner) Verify(token string) (DownloadClaims, error) {
	encoded, signature, ok := strings.Cut(token, ".")
	if !ok {
		return DownloadClaims{}, fmt.Errorf("invalid token format")
	}
	if !hmac.Equal([]byte(s.signature(encoded)), []byte(signature)) {
		return DownloadClaims{}, fmt.Errorf("invalid token signature")
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return DownloadClaims{}, fmt.Errorf("decode claims: %w", err)
	}
	var claims DownloadClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return DownloadClaims{}, fmt.Errorf("parse claims: %w", err)
	}
	if time.Now().After(claims.ExpiresAt) {
		return DownloadClaims{}, fmt.Errorf("token expired")
	}
	return claims, nil
}

func (s *DownloadSigner) signature(encoded string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}
