package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/udisondev/arcalc/internal/data"
)

func runImport(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("import", a.out)
	from := fs.String("from", "", "weapon JSON file, empty for the embedded data set")
	to := fs.String("to", a.cfg.Data.Source, "target backend: postgres | sqlite")
	version := fs.String("version", "", "data set version label, defaults to the source name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		catalog *data.Catalog
		err     error
	)
	label := "embedded"
	if *from == "" {
		catalog, err = data.LoadDefaultCatalog()
	} else {
		catalog, err = data.LoadCatalogFile(*from)
		label = filepath.Base(*from)
	}
	if err != nil {
		return err
	}
	if *version != "" {
		label = *version
	}

	repo, closeRepo, err := openRepository(ctx, a.cfg.Data, *to)
	if err != nil {
		return err
	}
	defer closeRepo()

	if err := repo.ReplaceWeapons(ctx, label, catalog.Weapons()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "imported %d weapons into %s (version %s)\n", catalog.Len(), *to, label)
	return nil
}
