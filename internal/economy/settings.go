package economy

// Settings are a user's bank preferences.
type Settings struct {
	BankDM  bool `bson:"dm" json:"dm"`
	Passive bool `bson:"passive" json:"passive"`
}

// DefaultSettings: receipts on, passive off.
func DefaultSettings() Settings {
	return Settings{BankDM: true}
}

// settingsFor returns stored settings or the defaults. Caller must hold b.mu.
func (b *Bank) settingsFor(userID string) Settings {
	if s, ok := b.settings[userID]; ok {
		return s
	}
	return DefaultSettings()
}

// Settings returns the user's settings.
func (b *Bank) Settings(userID string) Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.settingsFor(userID)
}

// SetBankDM toggles transaction receipts.
func (b *Bank) SetBankDM(userID string, enabled bool) Settings {
	return b.updateSettings(userID, func(s *Settings) { s.BankDM = enabled })
}

// SetPassive toggles passive mode.
func (b *Bank) SetPassive(userID string, enabled bool) Settings {
	return b.updateSettings(userID, func(s *Settings) { s.Passive = enabled })
}

func (b *Bank) updateSettings(userID string, apply func(*Settings)) Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.settingsFor(userID)
	apply(&s)
	b.settings[userID] = s
	b.flushSettings()
	return s
}

// EnsureSettings stores default settings for every user that has none and
// returns how many were added.
func (b *Bank) EnsureSettings(userIDs []string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	added := 0
	for _, id := range userIDs {
		if _, ok := b.settings[id]; !ok {
			b.settings[id] = DefaultSettings()
			added++
		}
	}
	if added > 0 {
		b.flushSettings()
	}
	return added
}
