// Package tokens issues and verifies the bearer credentials used by the API:
// broad session tokens minted at login and narrow playback tokens bound to a
// single video. Both are HS256 JWTs signed with the same secret and are told
// apart by a type claim, which every verification path checks.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid indicates the token is malformed, expired, or carries a bad signature.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrScopeMismatch indicates a well-signed token presented for the wrong scope or video.
	ErrScopeMismatch = errors.New("token scope mismatch")
)

const (
	typeSession  = "session"
	typePlayback = "playback"
)

// Claims is the JWT payload for both token kinds. VideoID is only set on
// playback tokens.
type Claims struct {
	TokenType string `json:"type"`
	VideoID   string `json:"v_id,omitempty"`
	jwt.RegisteredClaims
}

// Service mints and verifies session and playback tokens.
type Service interface {
	IssueSession(subject string) (string, error)
	IssuePlayback(subject, videoID string) (string, error)
	VerifySession(token string) (subject string, err error)
	VerifyPlayback(token, videoID string) (subject string, err error)
}

// Issuer implements Service with a shared HMAC secret.
type Issuer struct {
	secret      []byte
	sessionTTL  time.Duration
	playbackTTL time.Duration
	now         func() time.Time
}

// NewIssuer constructs an Issuer. The secret must not be empty; TTLs of zero
// fall back to 24h sessions and 1h playback grants.
func NewIssuer(secret []byte, sessionTTL, playbackTTL time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("tokens: signing secret must not be empty")
	}
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	if playbackTTL <= 0 {
		playbackTTL = time.Hour
	}
	return &Issuer{
		secret:      secret,
		sessionTTL:  sessionTTL,
		playbackTTL: playbackTTL,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

// WithNowFunc overrides the time source. Useful for expiry tests.
func (i *Issuer) WithNowFunc(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// IssueSession mints a session token for the provided subject.
func (i *Issuer) IssueSession(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("tokens: subject must be provided")
	}
	return i.sign(Claims{TokenType: typeSession}, subject, i.sessionTTL)
}

// IssuePlayback mints a playback token bound to a single video id.
func (i *Issuer) IssuePlayback(subject, videoID string) (string, error) {
	if subject == "" {
		return "", errors.New("tokens: subject must be provided")
	}
	if videoID == "" {
		return "", errors.New("tokens: video id must be provided")
	}
	return i.sign(Claims{TokenType: typePlayback, VideoID: videoID}, subject, i.playbackTTL)
}

// VerifySession validates a session token and returns its subject. Playback
// tokens are refused here even though they share the signing secret.
func (i *Issuer) VerifySession(token string) (string, error) {
	claims, err := i.parse(token)
	if err != nil {
		return "", err
	}
	if claims.TokenType != typeSession || claims.Subject == "" {
		return "", ErrScopeMismatch
	}
	return claims.Subject, nil
}

// VerifyPlayback validates a playback token against the requested video id.
// The binding check is what stops a token minted for one video from playing
// another.
func (i *Issuer) VerifyPlayback(token, videoID string) (string, error) {
	claims, err := i.parse(token)
	if err != nil {
		return "", err
	}
	if claims.TokenType != typePlayback || claims.Subject == "" || claims.VideoID != videoID {
		return "", ErrScopeMismatch
	}
	return claims.Subject, nil
}

func (i *Issuer) sign(claims Claims, subject string, ttl time.Duration) (string, error) {
	now := i.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

var _ Service = (*Issuer)(nil)
