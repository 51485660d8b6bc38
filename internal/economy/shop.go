package economy

import "strings"

// Effect is an item's side effect on use.
type Effect int

const (
	EffectNone Effect = iota
	EffectNitro
	EffectLaptop
)

// Item is a shop catalog entry.
type Item struct {
	Name        string
	Description string
	UseMessage  string
	Token       string
	Emoji       string
	Cost        int64
	Persistent  bool
	Effect      Effect
}

// Names used across the economy
const (
	ItemHackerCode   = "Hacker Code"
	ItemHackerLaptop = "Hacker Laptop"
)

var catalog = []Item{
	{
		Name:        "Juice",
		Description: "Refresh yourself with a cool can of juice.",
		UseMessage:  "You drink some juice, and get refreshed.",
		Token:       "juice",
		Emoji:       ":beverage_box:",
		Cost:        1000,
	},
	{
		Name:        "Nitro",
		Description: "Speed up your day, and work. Work and daily cooldown will be over.",
		UseMessage:  "You use nitro and gain speed, resulting in your work and day being finished faster.",
		Token:       "nitro",
		Emoji:       ":rocket:",
		Cost:        5400,
		Effect:      EffectNitro,
	},
	{
		Name:        ItemHackerCode,
		Description: "Very special bruteforce attack code. Tested upon top targets.",
		UseMessage:  "Use it on your laptop.",
		Token:       "code",
		Emoji:       ":dvd:",
		Cost:        90000,
		Persistent:  true,
	},
	{
		Name:        ItemHackerLaptop,
		Description: "Have a PC with you anytime, anywhere. Pen-testing utilities pre-installed.",
		UseMessage:  "PC has booted.",
		Token:       "laptop",
		Emoji:       ":computer:",
		Cost:        60000,
		Persistent:  true,
		Effect:      EffectLaptop,
	},
	{
		Name:        "Pet Cat",
		Description: "A pet cat, stays with you as a companion when you code.",
		UseMessage:  "MEW!!! CODE!!!",
		Token:       "cat",
		Emoji:       ":cat:",
		Cost:        60000,
		Persistent:  true,
	},
	{
		Name:        "Premium Pass",
		Description: "Flex item, shows up on rich people's profiles.",
		UseMessage:  "No use lol. Flex on others.",
		Token:       "pass",
		Emoji:       ":crown:",
		Cost:        100000,
		Persistent:  true,
	},
	{
		Name:        "Magna Diamond",
		Description: "Flex item for the very-rich.",
		UseMessage:  "FLEX TIME!",
		Token:       "magna",
		Emoji:       ":large_blue_diamond:",
		Cost:        500000,
		Persistent:  true,
	},
}

// Catalog returns the shop items in display order.
func Catalog() []Item {
	return append([]Item(nil), catalog...)
}

// FindItem looks an item up by its command token, ignoring case.
func FindItem(token string) (Item, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, item := range catalog {
		if item.Token == token {
			return item, true
		}
	}
	return Item{}, false
}

// Holding is an inventory line.
type Holding struct {
	Item  Item
	Count int
}

// owned returns a count. Caller must hold b.mu.
func (b *Bank) owned(userID, itemName string) int {
	return b.items[userID][itemName]
}

// Owned returns how many of the named item the user has.
func (b *Bank) Owned(userID, itemName string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.owned(userID, itemName)
}

// Inventory lists the user's items with a positive count, in catalog order.
func (b *Bank) Inventory(userID string) []Holding {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Holding
	for _, item := range catalog {
		if count := b.owned(userID, item.Name); count > 0 {
			out = append(out, Holding{Item: item, Count: count})
		}
	}
	return out
}

// Buy purchases one unit. Owning one already blocks the purchase for every item.
func (b *Bank) Buy(userID, token string) (Item, int, error) {
	item, ok := FindItem(token)
	if !ok {
		return Item{}, 0, ErrItemNotFound
	}

	b.mu.Lock()
	count, tx, err := b.buy(userID, item)
	b.mu.Unlock()

	b.deliver(tx, err)
	return item, count, err
}

func (b *Bank) buy(userID string, item Item) (int, Transaction, error) {
	if b.owned(userID, item.Name) > 0 {
		return 0, Transaction{}, ErrAlreadyOwned
	}

	tx, err := b.debit(userID, item.Cost)
	if err != nil {
		return 0, Transaction{}, err
	}

	if b.items[userID] == nil {
		b.items[userID] = make(map[string]int)
	}
	b.items[userID][item.Name]++
	b.flushItems()
	return b.items[userID][item.Name], tx, nil
}

// Use consumes one unit of a consumable item; persistent items are kept.
// The caller shows item.UseMessage and then runs RunEffect.
func (b *Bank) Use(userID, token string) (Item, error) {
	item, ok := FindItem(token)
	if !ok {
		return Item{}, ErrItemNotFound
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.owned(userID, item.Name) <= 0 {
		return Item{}, ErrNotOwned
	}
	if !item.Persistent {
		b.items[userID][item.Name]--
		b.flushItems()
	}
	return item, nil
}
