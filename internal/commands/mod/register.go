// Package mod provides the moderation commands. Every command needs a server
// and administrator permissions.
package mod

import (
	"github.com/PancyStudios/MaxisGo/internal/moderation"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

const category = "moderation"

type handlers struct {
	warns *moderation.Warns
}

// RegisterModCommands registers all moderation commands
func RegisterModCommands(client *discord.ExtendedClient, warns *moderation.Warns) {
	h := &handlers{warns: warns}

	commands := []*discord.Command{
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
	for _, cmd := range commands {
		client.CommandHandler.RegisterCommand(modCommand(cmd))
	}
}

// modCommand applies the guards shared by every moderation command
func modCommand(cmd *discord.Command) *discord.Command {
	return cmd.WithUserPermissions(discordgo.PermissionAdministrator).InGuildOnly()
}

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
		Required:    true,
	}
}

func reasonOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: description,
		Required:    false,
	}
}

// withReason appends " Reason: ..." when a reason was given
func withReason(msg, reason string) string {
	if reason == "" {
		return msg
	}
	return msg + " Reason: " + reason
}
