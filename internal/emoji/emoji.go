// Package emoji maps free-text food names to a representative emoji.
package emoji

import "strings"

// Default is returned when no keyword matches or the input is empty.
const Default = "🍽️"

type keywordEmoji struct {
	keyword string
	emoji   string
}

// foodEmojis is an ordered table: for names containing several keywords the
// first entry wins, so ordering is part of the contract.
var foodEmojis = []keywordEmoji{
	{"chicken", "🍗"}, {"beef", "🥩"}, {"fish", "🐟"}, {"salmon", "🐟"}, {"tuna", "🐟"},
	{"egg", "🥚"}, {"eggs", "🥚"}, {"shrimp", "🦐"}, {"pork", "🥩"}, {"lamb", "🥩"},
	{"tofu", "🧀"}, {"turkey", "🦃"},
	{"carrot", "🥕"}, {"tomato", "🍅"}, {"onion", "🧅"}, {"garlic", "🧄"}, {"broccoli", "🥦"},
	{"spinach", "🥬"}, {"lettuce", "🥬"}, {"pepper", "🫑"}, {"potato", "🥔"}, {"corn", "🌽"},
	{"mushroom", "🍄"}, {"cucumber", "🥒"}, {"zucchini", "🥒"}, {"eggplant", "🍆"},
	{"avocado", "🥑"}, {"celery", "🥬"}, {"asparagus", "🥦"}, {"cauliflower", "🥦"},
	{"lemon", "🍋"}, {"lime", "🍋"}, {"apple", "🍎"}, {"banana", "🍌"}, {"orange", "🍊"},
	{"berry", "🫐"}, {"strawberry", "🍓"}, {"mango", "🥭"}, {"pineapple", "🍍"}, {"grape", "🍇"},
	{"rice", "🍚"}, {"pasta", "🍝"}, {"noodle", "🍜"}, {"bread", "🍞"}, {"flour", "🌾"},
	{"cheese", "🧀"}, {"milk", "🥛"}, {"butter", "🧈"}, {"cream", "🥛"}, {"yogurt", "🥛"},
	{"oat", "🌾"},
	{"oil", "🫙"}, {"salt", "🧂"}, {"sugar", "🍬"}, {"honey", "🍯"}, {"sauce", "🫙"},
	{"soup", "🍲"}, {"stew", "🍲"}, {"curry", "🍛"}, {"salad", "🥗"}, {"sandwich", "🥪"},
	{"pizza", "🍕"}, {"burger", "🍔"}, {"cake", "🎂"}, {"cookie", "🍪"}, {"pie", "🥧"},
}

// For returns an emoji for the given food name. Matching is case-insensitive
// substring containment against the keyword table, first match wins.
func For(name string) string {
	if name == "" {
		return Default
	}
	lower := strings.ToLower(name)
	for _, entry := range foodEmojis {
		if strings.Contains(lower, entry.keyword) {
			return entry.emoji
		}
	}
	return Default
}
