package social

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestParseMembershipStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want MembershipStatus
	}{
		{"creator", StatusCreator},
		{"administrator", StatusAdministrator},
		{"member", StatusMember},
		{"restricted", StatusRestricted},
		{"left", StatusLeft},
		{"kicked", StatusKicked},
		{"", StatusUnknown},
		{"owner", StatusUnknown},
		{"MEMBER", StatusUnknown}, // exact match only, no case folding
	}
	for _, tc := range cases {
		if got := ParseMembershipStatus(tc.raw); got != tc.want {
			t.Errorf("ParseMembershipStatus(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestMembershipStatus_Subscribed(t *testing.T) {
	subscribed := []MembershipStatus{StatusCreator, StatusAdministrator, StatusMember}
	for _, s := range subscribed {
		if !s.Subscribed() {
			t.Errorf("%v.Subscribed() = false, want true", s)
		}
	}
	notSubscribed := []MembershipStatus{StatusRestricted, StatusLeft, StatusKicked, StatusUnknown}
	for _, s := range notSubscribed {
		if s.Subscribed() {
			t.Errorf("%v.Subscribed() = true, want false", s)
		}
	}
}

// stubChatMemberAPI returns a canned status or error.
type stubChatMemberAPI struct {
	status string
	err    error

	gotConfig tgbotapi.GetChatMemberConfig
}

func (s *stubChatMemberAPI) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	s.gotConfig = config
	if s.err != nil {
		return tgbotapi.ChatMember{}, s.err
	}
	return tgbotapi.ChatMember{Status: s.status}, nil
}

func TestTelegramChecker_CheckMember(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		status string
		err    error
		want   bool
	}{
		{"member", "member", nil, true},
		{"administrator", "administrator", nil, true},
		{"creator", "creator", nil, true},
		{"left", "left", nil, false},
		{"kicked", "kicked", nil, false},
		{"restricted", "restricted", nil, false},
		{"unknown status", "something-new", nil, false},
		{"api error", "", errors.New("Bad Request: user not found"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubChatMemberAPI{status: tc.status, err: tc.err}
			c := &TelegramChecker{api: stub, channel: "mychannel"}
			if got := c.CheckMember(ctx, "12345"); got != tc.want {
				t.Fatalf("CheckMember = %v, want %v", got, tc.want)
			}
			if stub.gotConfig.SuperGroupUsername != "@mychannel" {
				t.Fatalf("channel = %q, want @mychannel", stub.gotConfig.SuperGroupUsername)
			}
			if stub.gotConfig.UserID != 12345 {
				t.Fatalf("user id = %d, want 12345", stub.gotConfig.UserID)
			}
		})
	}
}

func TestTelegramChecker_FailClosedInputs(t *testing.T) {
	ctx := context.Background()
	stub := &stubChatMemberAPI{status: "member"}
	c := &TelegramChecker{api: stub, channel: "ch"}

	if c.CheckMember(ctx, "") {
		t.Fatal("empty external id must read false")
	}
	if c.CheckMember(ctx, "not-a-number") {
		t.Fatal("non-numeric external id must read false")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if c.CheckMember(cancelled, "12345") {
		t.Fatal("cancelled context must read false")
	}

	// Unconfigured checker (no API handle) always reads false.
	unconfigured := NewTelegramChecker("", "")
	if unconfigured.CheckMember(ctx, "12345") {
		t.Fatal("unconfigured checker must read false")
	}
}

func TestInstagramChecker_AlwaysFalse(t *testing.T) {
	ctx := context.Background()
	c := NewInstagramChecker("", "")
	if c.CheckFollower(ctx, "someone") {
		t.Fatal("placeholder checker must read false")
	}
	if c.CheckFollower(ctx, "") {
		t.Fatal("empty username must read false")
	}

	withCreds := NewInstagramChecker("token", "account")
	if withCreds.CheckFollower(ctx, "someone") {
		t.Fatal("placeholder must read false even with credentials")
	}
}
