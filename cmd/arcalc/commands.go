package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

type command struct {
	name string
	desc string
	run  func(ctx context.Context, a *app, args []string) error
}

var commands []command

func registerCommand(name, desc string, fn func(ctx context.Context, a *app, args []string) error) {
	commands = append(commands, command{name: name, desc: desc, run: fn})
}

func init() {
	registerCommand("search", "Filter weapons and rank them by attack rating", runSearch)
	registerCommand("weapon", "Per-damage-type breakdown of one weapon", runWeapon)
	registerCommand("levels", "Regular to somber upgrade level mapping", runLevels)
	registerCommand("chart", "HTML chart of attack rating over one attribute", runChart)
	registerCommand("import", "Write weapon data into the configured database", runImport)
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: arcalc <command> [flags]")
	fmt.Fprintln(w, "       arcalc --list")
}

func printList(w io.Writer) {
	names := make([]string, 0, len(commands))
	maxLen := 0
	for _, c := range commands {
		names = append(names, c.name)
		maxLen = max(maxLen, len(c.name))
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Available commands:")
	for _, name := range names {
		c, _ := lookupCommand(name)
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		fmt.Fprintf(w, "  %s%s%s\n", name, padding, c.desc)
	}
}
