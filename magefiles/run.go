//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Terminal runs the game in the current terminal with debug logs.
func (Run) Terminal() error {
	fmt.Println("Run terminal host...")
	_, err := executeCmd("go", withArgs("run", "./cmd/balloon", "-debug"), withStream())
	return err
}

// Window runs the game in a desktop window.
func (Run) Window() error {
	fmt.Println("Run window host...")
	_, err := executeCmd("go", withArgs("run", "./cmd/balloon-window"), withStream())
	return err
}

// Mono runs the terminal host forced to the 256 color palette.
func (Run) Mono() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/balloon", "-color", "256"), withEnv("COLORTERM="), withStream())
	return err
}
