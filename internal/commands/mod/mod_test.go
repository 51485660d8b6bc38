package mod

import (
	"testing"

	"github.com/PancyStudios/MaxisGo/internal/moderation"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

func TestModCommandGuards(t *testing.T) {
	h := &handlers{warns: moderation.NewWarns(nil)}
	cmds := []*discord.Command{
		createKickCommand(),
		createBanCommand(),
		createUnbanCommand(),
		createMuteCommand(),
		createUnmuteCommand(),
		h.createWarnCommand(),
		h.createClearWarnsCommand(),
		h.createGetWarnsCommand(),
		createClearCommand(),
		createNukeCommand(),
	}

	for _, cmd := range cmds {
		modCommand(cmd)
		if cmd.UserPermissions != discordgo.PermissionAdministrator {
			t.Errorf("%s UserPermissions = %d, want Administrator", cmd.Name, cmd.UserPermissions)
		}
		if !cmd.GuildOnly {
			t.Errorf("%s GuildOnly = false, want true", cmd.Name)
		}
		if cmd.Category != category {
			t.Errorf("%s Category = %q, want %q", cmd.Name, cmd.Category, category)
		}
	}
}

func TestWithReason(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{"", "Successfully kicked user bob."},
		{"spam", "Successfully kicked user bob. Reason: spam"},
	}

	for _, tt := range tests {
		if got := withReason("Successfully kicked user bob.", tt.reason); got != tt.want {
			t.Errorf("withReason(%q) = %q, want %q", tt.reason, got, tt.want)
		}
	}
}

func TestValidClearAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   bool
	}{
		{0, false},
		{1, true},
		{100, true},
		{101, false},
		{-5, false},
	}

	for _, tt := range tests {
		if got := validClearAmount(tt.amount); got != tt.want {
			t.Errorf("validClearAmount(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestRecreateDataKeepsSettings(t *testing.T) {
	overwrites := []*discordgo.PermissionOverwrite{{ID: "1", Allow: discordgo.PermissionViewChannel}}
	channel := &discordgo.Channel{
		Name:                 "general",
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                "talk",
		RateLimitPerUser:     5,
		Position:             3,
		PermissionOverwrites: overwrites,
		ParentID:             "cat",
		NSFW:                 true,
	}

	data := recreateData(channel)
	if data.Name != "general" || data.Topic != "talk" || data.ParentID != "cat" {
		t.Errorf("recreateData() = %+v, want name, topic and parent copied", data)
	}
	if data.RateLimitPerUser != 5 || data.Position != 3 || !data.NSFW {
		t.Errorf("recreateData() = %+v, want slowmode, position and nsfw copied", data)
	}
	if len(data.PermissionOverwrites) != 1 {
		t.Errorf("len(PermissionOverwrites) = %d, want 1", len(data.PermissionOverwrites))
	}
}
