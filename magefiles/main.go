//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

var env map[string]string

func init() {
	env = make(map[string]string)
	gobin, exists := os.LookupEnv("GOBIN")
	if !exists {
		gobin = "./gobin"
	}
	if gobin != "" {
		p, err := filepath.Abs(gobin)
		if err == nil {
			gobin = p
		}
	}
	env["GOBIN"] = gobin
}

// Build zvsh into the gobin directory.
func Build() error {
	path := filepath.Join(env["GOBIN"], "zvsh")
	mod, err := target.Dir(path, "go.mod", "cmd", "internal")
	if err != nil {
		return err
	}

	if !mod {
		return nil
	}

	return sh.RunWith(env, "go", "build", "-o", path, "./cmd/zvsh")
}

// Run tests with coverage.
func Test(verbose bool) error {
	args := []string{
		"test",
		"-timeout", "2m",
		"-cover",
		"-coverprofile", "/tmp/cover.out",
	}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	fmt.Printf("go args: %s\n", args)
	return sh.RunWithV(env, "go", args...)
}

// Run the built binary as a smoke test.
func Smoketest() error {
	mg.Deps(Build)

	return sh.RunWithV(env, filepath.Join(env["GOBIN"], "zvsh"), "-version")
}

// Remove volatile files.
func Clean() error {
	return sh.Rm(env["GOBIN"])
}
