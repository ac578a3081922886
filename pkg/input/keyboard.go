// Package input reads raw-mode keyboard events for the terminal front end.
package input

import (
	"github.com/eiannone/keyboard"

	"github.com/asli-sahin/snake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection parses a key input into a heading
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.Up, true
	case 's', 'S':
		return game.Down, true
	case 'a', 'A':
		return game.Left, true
	case 'd', 'D':
		return game.Right, true
	}

	return game.Up, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc
}

// IsRestart checks if the input is a restart command
func IsRestart(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R'
}

// IsPause checks if the input is a pause command
func IsPause(input KeyInput) bool {
	return input.Char == 'p' || input.Char == 'P'
}

// IsStart checks if the input starts a round from the menu
func IsStart(input KeyInput) bool {
	return input.Char == ' ' || input.Key == keyboard.KeySpace || input.Key == keyboard.KeyEnter
}

// IsMenu checks if the input returns to the menu
func IsMenu(input KeyInput) bool {
	return input.Char == 'm' || input.Char == 'M'
}
