package utils

import (
	"path/filepath"
	"strings"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// protectedFiles cannot be produced by /makefile
var protectedFiles = map[string]bool{
	".env":       true,
	".gitignore": true,
	"go.mod":     true,
	"go.sum":     true,
}

// createMakeFileCommand creates the /makefile command
func createMakeFileCommand() *discord.Command {
	return discord.NewCommand(
		"makefile",
		"Creates a new file with the specified name and content",
		category,
		makeFileHandler,
	).WithOptions(
		textOption("filename", "The name of the file to create"),
		textOption("content", "The content of the file"),
	)
}

// makeFileHandler sends the content back as an attachment; nothing touches the disk
func makeFileHandler(ctx *discord.CommandContext) error {
	name, ok := sanitizeFileName(ctx.GetStringOption("filename"))
	if !ok {
		return ctx.ReplyError("System file cannot be modified!")
	}
	if name == "" {
		return ctx.ReplyError("Failed to create file! Please try again.")
	}

	return ctx.ReplyFile(discord.SuccessEmbed("Here's your file"), &discordgo.File{
		Name:        name,
		ContentType: "text/plain",
		Reader:      strings.NewReader(ctx.GetStringOption("content")),
	})
}

// sanitizeFileName strips directories and refuses protected names
func sanitizeFileName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", true
	}
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return "", true
	}
	if protectedFiles[name] || protectedFiles[base] {
		return "", false
	}
	return base, true
}
