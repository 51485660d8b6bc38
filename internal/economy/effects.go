package economy

import "context"

// ActorContext is whoever triggered an item effect: a slash command, a button
// press, or anything else that can name a user, channel and guild.
type ActorContext interface {
	UserID() string
	ChannelID() string
	GuildID() string
}

// EffectFunc implements an item side effect.
type EffectFunc func(ctx context.Context, actor ActorContext) error

// nitro finishes the work and daily cooldowns.
func (b *Bank) nitro(_ context.Context, actor ActorContext) error {
	b.FastForward(actor.UserID(), KindWork, KindDaily)
	return nil
}
