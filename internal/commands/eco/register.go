// Package eco provides the economy slash commands, the laptop buttons and
// modal, and the bank receipt DMs.
package eco

import (
	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
)

const category = "economy"

type handlers struct {
	bank *economy.Bank
}

// RegisterEconomyCommands registers the economy commands and their components
func RegisterEconomyCommands(client *discord.ExtendedClient, bank *economy.Bank) {
	h := &handlers{bank: bank}

	commands := []*discord.Command{
		h.createBalanceCommand(),
		h.createClaimCommand(economy.KindDaily),
		h.createClaimCommand(economy.KindWeekly),
		h.createClaimCommand(economy.KindMonthly),
		h.createWorkCommand(),
		h.createRobCommand(),
		h.createGiveCommand(),
		h.createLeaderboardCommand(),
		h.createGlobalLeaderboardCommand(),
		h.createInventoryCommand(),
		h.createShopCommand(),
		h.createBuyCommand(),
		h.createUseCommand(),
		h.createSettingCommand(),
	}
	for _, cmd := range commands {
		client.CommandHandler.RegisterCommand(cmd)
	}

	bank.RegisterEffect(economy.EffectLaptop, h.laptopEffect(client))
	client.Components.Handle(laptopCodePrefix, h.laptopCodeHandler)
	client.Components.Handle(laptopOffPrefix, h.laptopOffHandler)
	client.Modals.Handle(laptopResultPrefix, h.laptopResultHandler)
}
