package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const defaultTokenTTL = 12 * time.Hour

// TokenIssuer signs and verifies judge session tokens.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
}

type judgeClaims struct {
	JudgeID string `json:"judge_id"`
	Year    int    `json:"year"`
	jwt.RegisteredClaims
}

func (t TokenIssuer) ttl() time.Duration {
	if t.TTL <= 0 {
		return defaultTokenTTL
	}
	return t.TTL
}

func (t TokenIssuer) Issue(judgeID string, year int) (string, error) {
	now := time.Now()
	claims := judgeClaims{
		JudgeID: judgeID,
		Year:    year,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   judgeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

func (t TokenIssuer) verify(raw string) (judgeClaims, error) {
	var claims judgeClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.Secret, nil
	})
	if err != nil {
		return judgeClaims{}, err
	}
	if !token.Valid {
		return judgeClaims{}, errors.New("invalid token")
	}
	return claims, nil
}

// requireJudge resolves the authenticated judge from the bearer token.
// Ballot routes are judge-scoped; the judge id always comes from the
// token, never from the request.
func (s *Server) requireJudge(w http.ResponseWriter, r *http.Request) (judgeClaims, bool) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeVotingError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return judgeClaims{}, false
	}
	claims, err := s.tokens.verify(strings.TrimSpace(parts[1]))
	if err != nil {
		writeVotingError(w, http.StatusUnauthorized, "invalid_token", "judge token is invalid or expired")
		return judgeClaims{}, false
	}
	return claims, true
}
