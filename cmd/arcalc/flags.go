package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/udisondev/arcalc/internal/model"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// bindAttributes registers -str … -arc with defaults from def.
// The returned vector is filled in by fs.Parse.
func bindAttributes(fs *flag.FlagSet, def model.Attributes) *model.Attributes {
	attrs := def
	fs.IntVar(&attrs.Str, "str", def.Str, "Strength")
	fs.IntVar(&attrs.Dex, "dex", def.Dex, "Dexterity")
	fs.IntVar(&attrs.Int, "int", def.Int, "Intelligence")
	fs.IntVar(&attrs.Fai, "fai", def.Fai, "Faith")
	fs.IntVar(&attrs.Arc, "arc", def.Arc, "Arcane")
	return &attrs
}

// parseList splits a comma-separated flag value and parses every item.
func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []T
	for _, item := range strings.Split(s, ",") {
		v, err := parse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func joinNames[T fmt.Stringer](items []T) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return strings.Join(names, ",")
}
