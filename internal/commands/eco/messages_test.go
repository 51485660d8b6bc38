package eco

import (
	"fmt"
	"testing"
	"time"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty account", &economy.FundsError{Balance: 0, Amount: 100}, "You can't withdraw, because you have no money!"},
		{"short account", &economy.FundsError{Balance: 50, Amount: 100}, "You can't withdraw more than you have in your bank!"},
		{"cooldown", &economy.CooldownError{Kind: economy.KindRob, Remaining: 30 * time.Second},
			"You are currently on cooldown! You may use this command again after 30 seconds."},
		{"actor passive", &economy.PassiveError{}, "You are in passive mode! You can't rob anyone."},
		{"target passive", &economy.PassiveError{Target: true}, "That user is in passive mode! Try someone else."},
		{"too poor", economy.ErrTargetTooPoor, "That user does not have enough money to rob!"},
		{"not owned", economy.ErrNotOwned, "You don't have this item! Buy it from the shop to use it."},
		{"wrapped", fmt.Errorf("buy: %w", economy.ErrInvalidAmount), "Amount must be greater than 0!"},
		{"puzzle expired", economy.ErrPuzzleExpired, "Your hacker code timed out. Run it again from your PC."},
		{"unknown", fmt.Errorf("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}

func TestGiveErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{economy.ErrSelfTarget, "You can't give money to yourself!"},
		{economy.ErrBotTarget, "You can't give money to bots!"},
		{economy.ErrInvalidAmount, "Amount must be greater than 0!"},
		{&economy.PassiveError{}, "You are in passive mode! You can't give money to anyone."},
		{&economy.PassiveError{Target: true}, "That user is in passive mode. You can't give money to them."},
		{&economy.FundsError{Balance: 10, Amount: 20}, "You can't give more money than you have in your account!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, giveErrorMessage(tt.err))
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Daily", capitalize("daily"))
	assert.Equal(t, "", capitalize(""))
}

func TestSettingMessagesCoverEveryChoice(t *testing.T) {
	for _, kind := range []string{"bankdm", "passive"} {
		for _, enabled := range []bool{true, false} {
			assert.NotEmpty(t, settingMessages[kind][enabled], "%s=%v", kind, enabled)
		}
	}
}
