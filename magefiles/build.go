//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

const binDir = "bin"

// Terminal builds the tcell host into bin/balloon.
func (Build) Terminal() error {
	_, err := executeCmd("go", withArgs("build", "-o", binDir+"/balloon", "./cmd/balloon"), withStream())
	return err
}

// Window builds the ebiten host into bin/balloon-window.
func (Build) Window() error {
	_, err := executeCmd("go", withArgs("build", "-o", binDir+"/balloon-window", "./cmd/balloon-window"), withStream())
	return err
}

// All builds both hosts.
func (Build) All() {
	mg.Deps(Build.Terminal, Build.Window)
}

// Test runs the unit tests with the race detector.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Vet runs go vet.
func Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
