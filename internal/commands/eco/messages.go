package eco

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// coins renders an amount the way every economy message shows money
func coins(amount int64) string {
	return fmt.Sprintf(":coin: %d", amount)
}

// errorMessage turns an economy error into the text shown to the user.
// Unknown errors return "" so the dispatcher shows the generic failure.
func errorMessage(err error) string {
	var funds *economy.FundsError
	var passive *economy.PassiveError
	var cooldown *economy.CooldownError

	switch {
	case errors.As(err, &funds):
		if funds.Empty() {
			return "You can't withdraw, because you have no money!"
		}
		return "You can't withdraw more than you have in your bank!"
	case errors.As(err, &cooldown):
		return fmt.Sprintf("You are currently on cooldown! You may use this command again after %s.",
			economy.FormatRemaining(cooldown.Kind, cooldown.Remaining))
	case errors.As(err, &passive):
		if passive.Target {
			return "That user is in passive mode! Try someone else."
		}
		return "You are in passive mode! You can't rob anyone."
	case errors.Is(err, economy.ErrInvalidAmount):
		return "Amount must be greater than 0!"
	case errors.Is(err, economy.ErrNotOwned):
		return "You don't have this item! Buy it from the shop to use it."
	case errors.Is(err, economy.ErrTargetTooPoor):
		return "That user does not have enough money to rob!"
	case errors.Is(err, economy.ErrPuzzleExpired):
		return "Your hacker code timed out. Run it again from your PC."
	}
	return ""
}

// replyEconomyError shows the mapped message, or hands unknown errors back to the dispatcher
func replyEconomyError(ctx *discord.CommandContext, err error) error {
	if msg := errorMessage(err); msg != "" {
		return ctx.ReplyError(msg)
	}
	return err
}

func userOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    required,
	}
}
