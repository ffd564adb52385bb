package main

import "context"

func runLevels(_ context.Context, a *app, args []string) error {
	fs := newFlagSet("levels", a.out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return renderLevels(a.out)
}
