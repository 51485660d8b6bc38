package events

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func TestHumanIDs(t *testing.T) {
	members := []*discordgo.Member{
		{User: &discordgo.User{ID: "1"}},
		{User: &discordgo.User{ID: "2", Bot: true}},
		{},
		{User: &discordgo.User{ID: "3"}},
	}
	got := humanIDs(members)
	if len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Errorf("humanIDs() = %v, want [1 3]", got)
	}
}

func TestMentions(t *testing.T) {
	users := []*discordgo.User{{ID: "10"}, {ID: "20"}}
	if !mentions(users, "20") {
		t.Error("mentions(20) = false, want true")
	}
	if mentions(users, "30") {
		t.Error("mentions(30) = true, want false")
	}
	if mentions(nil, "10") {
		t.Error("mentions(nil) = true, want false")
	}
}

func TestRecentlyJoined(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		joinedAt time.Time
		want     bool
	}{
		{"just joined", now.Add(-2 * time.Second), true},
		{"reconnect replay", now.Add(-time.Hour), false},
		{"unknown", time.Time{}, false},
	}
	for _, tt := range tests {
		if got := recentlyJoined(tt.joinedAt, now); got != tt.want {
			t.Errorf("%s: recentlyJoined() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
