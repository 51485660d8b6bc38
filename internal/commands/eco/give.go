package eco

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createGiveCommand creates the /give command
func (h *handlers) createGiveCommand() *discord.Command {
	return discord.NewCommand(
		"give",
		"Give some of your money to another user",
		category,
		h.giveHandler,
	).WithOptions(
		userOption("user", "The user to give money to", true),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How much money to give",
			Required:    true,
		},
	).InGuildOnly()
}

// giveHandler handles the /give command
func (h *handlers) giveHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("user")
	if target == nil {
		return ctx.ReplyError("You must mention a user to give money to!")
	}
	amount := ctx.GetIntOption("amount")

	err := h.bank.Give(ctx.UserID(), economy.Target{UserID: target.ID, Bot: target.Bot}, amount)
	if err != nil {
		return ctx.ReplyError(giveErrorMessage(err))
	}

	desc := fmt.Sprintf("%s successfully gave %s %s.", ctx.DisplayName(), discord.DisplayName(target), coins(amount))
	return ctx.ReplyEmbed(discord.SuccessEmbed(desc))
}

// giveErrorMessage differs from the rob wording for passive mode and funds
func giveErrorMessage(err error) string {
	var passive *economy.PassiveError
	switch {
	case errors.Is(err, economy.ErrSelfTarget):
		return "You can't give money to yourself!"
	case errors.Is(err, economy.ErrBotTarget):
		return "You can't give money to bots!"
	case errors.As(err, &passive):
		if passive.Target {
			return "That user is in passive mode. You can't give money to them."
		}
		return "You are in passive mode! You can't give money to anyone."
	case errors.Is(err, economy.ErrInsufficientFunds):
		return "You can't give more money than you have in your account!"
	}
	if msg := errorMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}
