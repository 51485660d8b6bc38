// Package utils provides the utility commands: info embeds, custom replies,
// small games, image generation and the external lookups.
package utils

import (
	"github.com/PancyStudios/MaxisGo/internal/replies"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/relay"
	"github.com/go-resty/resty/v2"
)

const category = "utility"

// Deps are the services the utility commands use
type Deps struct {
	Replies        *replies.Store
	HTTP           *resty.Client
	Relay          relay.Asker
	ExchangeAPIKey string
	OwnerID        string
}

type handlers struct {
	Deps
}

// RegisterUtilsCommands registers all utility commands and their components
func RegisterUtilsCommands(client *discord.ExtendedClient, deps Deps) {
	h := &handlers{Deps: deps}

	commands := []*discord.Command{
		createPingCommand(),
		createHelloCommand(),
		createDatetimeCommand(),
		createHelpCommand(),
		createBotInfoCommand(),
		h.createUserInfoCommand(),
		createServerInfoCommand(),
		createCalculateCommand(),
		h.createReplyCommand(),
		h.createNoReplyCommand(),
		h.createRepliesCommand(),
		createDMCommand(),
		createRPSCommand(),
		createMakeColorCommand(),
		createRandomColorCommand(),
		h.createCurrConvCommand(),
		createTTICommand(),
		createMakeFileCommand(),
		h.createAdmesCommand(),
	}
	for _, cmd := range commands {
		client.CommandHandler.RegisterCommand(cmd)
	}

	client.Components.Handle(helpSelectID, helpSelectHandler)
	client.Components.Handle(rpsPrefix, rpsButtonHandler)
}
