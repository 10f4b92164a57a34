package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	rankingengine "festival/contexts/festival-operations/ranking-engine"
	registryservice "festival/contexts/festival-operations/registry-service"
	votingcontrol "festival/contexts/festival-operations/voting-control"
)

func newTestServer() *Server {
	return New(
		registryservice.NewInMemoryModule(nil),
		votingcontrol.NewInMemoryModule(nil),
		rankingengine.NewInMemoryModule(nil),
		TokenIssuer{Secret: []byte("test-secret")},
		nil,
		":0",
	)
}

func TestBallotTeamsRequiresBearerToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ballot/teams", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBallotTeamsRejectsForgedToken(t *testing.T) {
	server := newTestServer()
	forged := TokenIssuer{Secret: []byte("other-secret")}
	token, err := forged.Issue("judge-1", 2025)
	if err != nil {
		t.Fatalf("issue forged token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ballot/teams", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	server := newTestServer()

	createBody := `{"name":"Ana","login":"ana","password":"s3cret","year":2025}`
	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/judges", strings.NewReader(createBody))
	createRR := httptest.NewRecorder()
	server.mux.ServeHTTP(createRR, createReq)
	if createRR.Code != http.StatusCreated {
		t.Fatalf("create judge: expected 201, got %d body=%s", createRR.Code, createRR.Body.String())
	}

	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"login":"ana","password":"s3cret"}`))
	loginRR := httptest.NewRecorder()
	server.mux.ServeHTTP(loginRR, loginReq)
	if loginRR.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", loginRR.Code, loginRR.Body.String())
	}

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(loginRR.Body.Bytes(), &login); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if login.Data.Token == "" {
		t.Fatal("expected a session token in the login response")
	}

	ballotReq := httptest.NewRequest(http.MethodGet, "/api/v1/ballot/teams", nil)
	ballotReq.Header.Set("Authorization", "Bearer "+login.Data.Token)
	ballotRR := httptest.NewRecorder()
	server.mux.ServeHTTP(ballotRR, ballotReq)
	if ballotRR.Code != http.StatusOK {
		t.Fatalf("ballot teams: expected 200, got %d body=%s", ballotRR.Code, ballotRR.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"login":"nobody","password":"wrong"}`))

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmitScoreRejectsMalformedBody(t *testing.T) {
	server := newTestServer()
	token, err := (TokenIssuer{Secret: []byte("test-secret")}).Issue("judge-1", 2025)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ballot/scores/score-1", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
