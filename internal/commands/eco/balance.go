package eco

import (
	"github.com/PancyStudios/MaxisGo/pkg/discord"
)

// createBalanceCommand creates the /balance command
func (h *handlers) createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"balance",
		"Shows your balance, or the balance of another user",
		category,
		h.balanceHandler,
	).WithOptions(userOption("user", "The user whose balance to show", false))
}

// balanceHandler handles the /balance command
func (h *handlers) balanceHandler(ctx *discord.CommandContext) error {
	name := ctx.DisplayName()
	userID := ctx.UserID()
	if user := ctx.GetUserOption("user"); user != nil {
		name = discord.DisplayName(user)
		userID = user.ID
	}

	embed := discord.NewEmbed(name+"'s balance:-", "")
	embed.Fields = append(embed.Fields, discord.Field("Bank", coins(h.bank.Balance(userID)), false))
	return ctx.ReplyEmbed(embed)
}
