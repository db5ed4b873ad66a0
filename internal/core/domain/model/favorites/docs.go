// Package favorites holds the customer's saved menu item ids. The list is
// ordered: toggling an item on puts it at the front, so the most recently
// saved items come first.
package favorites
