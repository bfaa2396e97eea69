package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projectpulse/projectpulse/internal/models"
)

// Demo token scheme. The wire shape is a standard three-segment JWT (header,
// claims, signature) but the signature is a constant placeholder and
// verification never checks it — only structure and expiry. This is an
// intentional non-secure stand-in carried over for compatibility with
// already-issued tokens; production use would need a real signing key, which
// would be a breaking behavior change for existing sessions.

const (
	demoSignature = "demo-signature"

	purposePasswordReset = "password_reset"

	loginTokenTTL = 24 * time.Hour
	resetTokenTTL = time.Hour
)

// Claims is the token payload: identity fields plus registered iat/exp.
// Purpose is set only on single-use tokens (password reset).
type Claims struct {
	UserID  int64  `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// demoSigningMethod advertises HS256 in the header (matching tokens minted
// by the first frontend) but signs with the constant placeholder and
// verifies nothing.
type demoSigningMethod struct{}

func (m *demoSigningMethod) Alg() string { return "HS256" }

func (m *demoSigningMethod) Sign(signingString string, key interface{}) ([]byte, error) {
	return []byte(demoSignature), nil
}

func (m *demoSigningMethod) Verify(signingString string, sig []byte, key interface{}) error {
	return nil
}

var methodDemo = &demoSigningMethod{}

func init() {
	// Replace the registered HS256 implementation so parsing demo tokens
	// never attempts a real HMAC check.
	jwt.RegisterSigningMethod(methodDemo.Alg(), func() jwt.SigningMethod { return methodDemo })
}

// mintToken issues a token for the user. purpose is empty for login tokens.
func mintToken(u *models.User, ttl time.Duration, purpose string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  u.ID,
		Email:   u.Email,
		Role:    u.Role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(methodDemo, claims).SignedString(nil)
}

// parseToken decodes and validates a token: three segments, decodable
// claims, exp in the future. No signature check, matching the original
// scheme. Padding is allowed because browser-minted tokens used padded
// base64.
func parseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{methodDemo.Alg()}),
		jwt.WithPaddingAllowed(),
	)
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(demoSignature), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
