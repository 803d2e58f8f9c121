// Package tui renders the terminal queue widget on top of a queue client.
package tui
