package security

import (
	"errors"
	"testing"
)

func TestPlayerTokenRoundTrip(t *testing.T) {
	playerID := GeneratePlayerID()

	token, err := SignPlayerToken(playerID, "test-secret")
	if err != nil {
		t.Fatalf("SignPlayerToken: %v", err)
	}

	got, err := VerifyPlayerToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifyPlayerToken: %v", err)
	}
	if got != playerID {
		t.Errorf("round-trip player ID = %q, want %q", got, playerID)
	}
}

func TestVerifyPlayerTokenRejectsBadInput(t *testing.T) {
	token, err := SignPlayerToken("player-1", "test-secret")
	if err != nil {
		t.Fatalf("SignPlayerToken: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: token, secret: "other-secret"},
		{name: "garbage token", token: "not.a.jwt", secret: "test-secret"},
		{name: "empty token", token: "", secret: "test-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPlayerToken(tt.token, tt.secret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestGeneratePlayerIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GeneratePlayerID()
		if seen[id] {
			t.Fatalf("duplicate player ID %q", id)
		}
		seen[id] = true
	}
}
