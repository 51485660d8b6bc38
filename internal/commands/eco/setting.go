package eco

import (
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// settingMessages maps type and value to the confirmation text
var settingMessages = map[string]map[bool]string{
	"bankdm": {
		true:  "Enabled bank transaction DMs! Now you WILL be DMed about all your bank transactions.",
		false: "Disabled bank transaction DMs! Now you WON'T be DMed about any of your bank transactions.",
	},
	"passive": {
		true:  "Enabled passive mode! Now NEITHER anyone can rob you, NOR you can rob anyone else.\nYou also CANNOT give money to someone else.",
		false: "Disabled passive mode! Now anyone CAN rob you, and you CAN rob anyone else.\nYou also CAN give money to someone else.",
	},
}

// createSettingCommand creates the /setting command
func (h *handlers) createSettingCommand() *discord.Command {
	return discord.NewCommand(
		"setting",
		"Change your economy settings",
		category,
		h.settingHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "type",
			Description: "The setting to change",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Bank transaction DMs", Value: "bankdm"},
				{Name: "Passive mode", Value: "passive"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "value",
			Description: "Enable or disable the setting",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Enable", Value: "true"},
				{Name: "Disable", Value: "false"},
			},
		},
	)
}

// settingHandler handles the /setting command
func (h *handlers) settingHandler(ctx *discord.CommandContext) error {
	kind := ctx.GetStringOption("type")
	enabled := ctx.GetStringOption("value") == "true"

	switch kind {
	case "bankdm":
		h.bank.SetBankDM(ctx.UserID(), enabled)
	case "passive":
		h.bank.SetPassive(ctx.UserID(), enabled)
	default:
		return ctx.ReplyError("Invalid setting type!")
	}
	return ctx.ReplyEmbed(discord.SuccessEmbed(settingMessages[kind][enabled]))
}
