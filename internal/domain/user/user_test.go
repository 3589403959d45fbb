package user

import "testing"

// TestUser_DisplayName tests that username wins over email.
func TestUser_DisplayName(t *testing.T) {
	u := User{Username: "annika", Email: "annika@uni.edu"}
	if got := u.DisplayName(); got != "annika" {
		t.Errorf("got %q, want username", got)
	}
	u.Username = ""
	if got := u.DisplayName(); got != "annika@uni.edu" {
		t.Errorf("got %q, want email fallback", got)
	}
}

// TestUser_Validate tests the minimal renderable shape.
func TestUser_Validate(t *testing.T) {
	if err := (User{ID: "u1", Email: "a@b.c"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (User{Email: "a@b.c"}).Validate(); err == nil {
		t.Error("expected error for empty id")
	}
	if err := (User{ID: "u1"}).Validate(); err == nil {
		t.Error("expected error for no email or username")
	}
}

// TestUser_RoleChecks tests the role gate helpers.
func TestUser_RoleChecks(t *testing.T) {
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role should pass IsAdmin")
	}
	if (User{Role: RoleParticipant}).IsAdmin() {
		t.Error("participant should not pass IsAdmin")
	}
	if !(User{Role: RoleJudge}).IsJudge() {
		t.Error("judge role should pass IsJudge")
	}
}
