// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command, component and event handling.
package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/config"
	"github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/metrics"
	"github.com/bwmarrin/discordgo"
)

// discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// genericFailure is shown when a handler panics or returns an error before replying.
const genericFailure = "Something went wrong while running this command. Please try again later."

// ExtendedClient wraps discordgo.Session with additional functionality
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	Components     *ComponentRouter
	Modals         *ComponentRouter
	CommandHandler *CommandHandler
	EventHandler   *EventHandler
	StartTime      time.Time
	mu             sync.RWMutex
	isReady        bool
}

// CommandCollection holds registered commands
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

// All returns all commands
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command)
	for k, v := range cc.commands {
		result[k] = v
	}
	return result
}

// ByCategory returns the commands of one category
func (cc *CommandCollection) ByCategory(category string) []*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	var result []*Command
	for _, cmd := range cc.commands {
		if cmd.Category == category {
			result = append(result, cmd)
		}
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Message content is needed for custom replies
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	session.ShardCount = 1
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:    session,
		Commands:   NewCommandCollection(),
		Components: NewComponentRouter(),
		Modals:     NewComponentRouter(),
		isReady:    false,
	}

	c.CommandHandler = NewCommandHandler(c)
	c.EventHandler = NewEventHandler(c)

	return c, nil
}

// Start initializes and starts the bot
func (c *ExtendedClient) Start() error {
	if err := c.CommandHandler.LoadCommands(); err != nil {
		logger.Error("Failed to load commands: "+err.Error(), "Client")
		return err
	}

	if err := c.EventHandler.LoadEvents(); err != nil {
		logger.Error("Failed to load events: "+err.Error(), "Client")
		return err
	}

	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot conectado como: "+r.User.Username, "Client")
	})

	c.Session.AddHandler(c.handleInteraction)

	c.StartTime = time.Now()

	return c.Session.Open()
}

// handleInteraction routes incoming Discord interactions
func (c *ExtendedClient) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := &CommandContext{
		Session:     s,
		Interaction: i,
		Client:      c,
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		cmd, ok := c.Commands.Get(commandName(i.ApplicationCommandData()))
		if ok && cmd.AutoComplete != nil {
			go func() {
				defer errors.RecoverMiddleware()()
				cmd.AutoComplete(ctx)
			}()
		}

	case discordgo.InteractionApplicationCommand:
		name := commandName(i.ApplicationCommandData())
		cmd, ok := c.Commands.Get(name)
		if !ok {
			logger.Warn("Command not found: "+name, "Client")
			return
		}
		go c.run(ctx, name, func() error {
			if err := c.GuardMiddleware(ctx, cmd); err != nil {
				return nil
			}
			return cmd.Run(ctx)
		})

	case discordgo.InteractionMessageComponent:
		id := i.MessageComponentData().CustomID
		if fn, ok := c.Components.Match(id); ok {
			go c.run(ctx, "component:"+routeLabel(id), func() error { return fn(ctx) })
		}

	case discordgo.InteractionModalSubmit:
		id := i.ModalSubmitData().CustomID
		if fn, ok := c.Modals.Match(id); ok {
			go c.run(ctx, "modal:"+routeLabel(id), func() error { return fn(ctx) })
		}
	}
}

// run executes one handler, recording metrics and converting panics and
// errors into a generic reply for the user who triggered it.
func (c *ExtendedClient) run(ctx *CommandContext, name string, fn func() error) {
	start := time.Now()
	status := "ok"
	defer func() {
		metrics.RecordCommand(name, status, time.Since(start))
	}()
	defer errors.RecoverWith(func(recovered interface{}) {
		status = "panic"
		_ = ctx.ReplyError(genericFailure)
	})()

	if err := fn(); err != nil {
		status = "error"
		logger.Error("Error executing "+name+": "+err.Error(), "Client")
		_ = ctx.ReplyError(genericFailure)
	}
}

// commandName builds the full command name for subcommands
func commandName(data discordgo.ApplicationCommandInteractionData) string {
	name := data.Name
	if len(data.Options) > 0 {
		opt := data.Options[0]
		if opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			if len(opt.Options) > 0 {
				name = data.Name + "." + opt.Name + "." + opt.Options[0].Name
			}
		} else if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			name = data.Name + "." + opt.Name
		}
	}
	return name
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// MemberCount sums the member counts of every cached guild
func (c *ExtendedClient) MemberCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	total := 0
	for _, g := range c.Session.State.Guilds {
		total += g.MemberCount
	}
	return total
}

// Latency returns the gateway heartbeat latency
func (c *ExtendedClient) Latency() time.Duration {
	if c.Session == nil {
		return 0
	}
	return c.Session.HeartbeatLatency()
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}

// GuildMembers pages through every member of a guild
func (c *ExtendedClient) GuildMembers(guildID string) ([]*discordgo.Member, error) {
	var members []*discordgo.Member
	after := ""
	for {
		page, err := c.Session.GuildMembers(guildID, after, 1000)
		if err != nil {
			return members, err
		}
		members = append(members, page...)
		if len(page) < 1000 {
			return members, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// UserName resolves a user id to a display name, falling back to the id
func (c *ExtendedClient) UserName(userID string) string {
	if c.Session.State != nil {
		for _, g := range c.Session.State.Guilds {
			if m, err := c.Session.State.Member(g.ID, userID); err == nil && m.User != nil {
				return DisplayName(m.User)
			}
		}
	}
	if u, err := c.Session.User(userID); err == nil {
		return DisplayName(u)
	}
	return userID
}

// InviteURL is the OAuth link that adds the bot with administrator permissions
func InviteURL(clientID string) string {
	return "https://discord.com/api/oauth2/authorize?client_id=" + clientID + "&permissions=8&scope=bot"
}

// BotUserID returns the bot's own user id once connected
func (c *ExtendedClient) BotUserID() string {
	if c.Session == nil || c.Session.State == nil || c.Session.State.User == nil {
		return ""
	}
	return c.Session.State.User.ID
}
