// Package commands wires every command category to the Discord client.
// Commands are organized in subdirectories by category (utils, mod, eco, dev).
package commands

import (
	"github.com/PancyStudios/MaxisGo/internal/commands/dev"
	"github.com/PancyStudios/MaxisGo/internal/commands/eco"
	"github.com/PancyStudios/MaxisGo/internal/commands/mod"
	"github.com/PancyStudios/MaxisGo/internal/commands/utils"
	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/internal/moderation"
	"github.com/PancyStudios/MaxisGo/internal/replies"
	"github.com/PancyStudios/MaxisGo/pkg/config"
	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/relay"
	"github.com/go-resty/resty/v2"
)

// Services are the stores and clients shared by the command categories
type Services struct {
	Bank    *economy.Bank
	Warns   *moderation.Warns
	Replies *replies.Store
	Writes  *database.WriteBehind
	HTTP    *resty.Client
	Relay   relay.Asker
	Config  *config.Config
}

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, s Services) {
	// Utility commands (/ping, /help, /reply, /currconv, /admes...)
	utils.RegisterUtilsCommands(client, utils.Deps{
		Replies:        s.Replies,
		HTTP:           s.HTTP,
		Relay:          s.Relay,
		ExchangeAPIKey: s.Config.ExchangeAPIKey,
		OwnerID:        s.Config.OwnerID,
	})

	// Moderation commands (/kick, /ban, /warn, /clear, /nuke...)
	mod.RegisterModCommands(client, s.Warns)

	// Economy commands (/balance, /daily, /rob, /shop, /use...)
	eco.RegisterEconomyCommands(client, s.Bank)

	// Dev commands, only in the dev guild
	dev.Register(client, dev.Deps{
		Bank:    s.Bank,
		Warns:   s.Warns,
		Replies: s.Replies,
		Writes:  s.Writes,
		Relay:   s.Relay,
		OwnerID: s.Config.OwnerID,
	})
}
