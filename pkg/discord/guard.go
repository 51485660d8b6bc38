package discord

import (
	"errors"

	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

var (
	ErrNotInServer      = errors.New("command only works in servers")
	ErrPermissionDenied = errors.New("missing required permissions")
)

// checkGuards reports why a command may not run for this invocation.
func checkGuards(cmd *Command, guildID string, member *discordgo.Member) error {
	if (cmd.GuildOnly || cmd.UserPermissions != 0) && (guildID == "" || member == nil) {
		return ErrNotInServer
	}
	if cmd.UserPermissions == 0 {
		return nil
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return nil
	}
	if member.Permissions&cmd.UserPermissions != cmd.UserPermissions {
		return ErrPermissionDenied
	}
	return nil
}

// guardMessage is the text shown for a guard failure
func guardMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotInServer):
		return "This command only works in servers!"
	case errors.Is(err, ErrPermissionDenied):
		return "You don't have admin perms, so you cannot use mod commands!"
	default:
		return err.Error()
	}
}

// GuardMiddleware rejects commands used outside servers or without the
// required permissions, replying with an ephemeral error.
func (c *ExtendedClient) GuardMiddleware(ctx *CommandContext, cmd *Command) error {
	err := checkGuards(cmd, ctx.GuildID(), ctx.Member())
	if err == nil {
		return nil
	}

	if replyErr := ctx.ReplyError(guardMessage(err)); replyErr != nil {
		logger.Warn("No se pudo responder al rechazo de /"+cmd.Name+": "+replyErr.Error(), "GuardMiddleware")
	}
	logger.Debug("Comando /"+cmd.Name+" rechazado para "+ctx.UserID()+": "+err.Error(), "GuardMiddleware")
	return err
}
