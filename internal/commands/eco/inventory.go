package eco

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
)

// createInventoryCommand creates the /inventory command
func (h *handlers) createInventoryCommand() *discord.Command {
	return discord.NewCommand(
		"inventory",
		"Shows the items you own",
		category,
		h.inventoryHandler,
	)
}

// inventoryHandler handles the /inventory command
func (h *handlers) inventoryHandler(ctx *discord.CommandContext) error {
	holdings := h.bank.Inventory(ctx.UserID())
	if len(holdings) == 0 {
		return ctx.ReplyError("There are no items in your inventory!")
	}
	return ctx.ReplyEmbed(discord.NewEmbed("Items in your inventory:-", formatInventory(holdings)))
}

func formatInventory(holdings []economy.Holding) string {
	lines := make([]string, 0, len(holdings))
	for i, h := range holdings {
		lines = append(lines, fmt.Sprintf("%d) %s (Count: %d)", i+1, h.Item.Name, h.Count))
	}
	return strings.Join(lines, "\n")
}
