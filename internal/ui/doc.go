// Package ui implements the Bubble Tea model bridging terminal input to
// the menu selection manager and compositing the bar with its open popups.
package ui
