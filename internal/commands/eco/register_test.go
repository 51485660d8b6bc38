package eco

import (
	"testing"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/stretchr/testify/assert"
)

func TestGuildOnlyCommands(t *testing.T) {
	h := &handlers{bank: economy.NewBank(nil)}

	for _, cmd := range []*discord.Command{
		h.createRobCommand(),
		h.createGiveCommand(),
		h.createLeaderboardCommand(),
	} {
		assert.True(t, cmd.GuildOnly, "%s must require a guild", cmd.Name)
		assert.Equal(t, category, cmd.Category, cmd.Name)
	}
}
