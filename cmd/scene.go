package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/spheretrace/scene/builtin"
	"github.com/achilleasa/spheretrace/scene/reader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene argument")
	}

	aspect, err := parseAspect(ctx.String("aspect"))
	if err != nil {
		return err
	}

	sc, err := reader.ReadScene(ctx.Args().First(), aspect, ctx.Int64("seed"))
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene", "Spheres"})
	for _, name := range builtin.Names() {
		builder, _ := builtin.Lookup(name)
		table.Append([]string{name, fmt.Sprintf("%d", len(builder(1, 0).Primitives))})
	}

	table.Render()
	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}
