package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/urfave/cli"
)

// List the cpus available to the tracers.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	physical, err := cpu.Counts(false)
	if err != nil {
		return fmt.Errorf("could not query physical cpu count: %s", err)
	}
	logical, err := cpu.Counts(true)
	if err != nil {
		return fmt.Errorf("could not query logical cpu count: %s", err)
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("\nSystem provides %d physical core(s) and %d logical cpu(s); the Go runtime will use %d\n\n", physical, logical, runtime.GOMAXPROCS(0)))

	infoList, err := cpu.Info()
	if err != nil {
		logger.Warningf("could not query cpu details: %s", err)
	}

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"CPU", "Vendor", "Model", "Cores", "Speed (MHz)"})
	for _, info := range infoList {
		table.Append([]string{
			fmt.Sprintf("%d", info.CPU),
			info.VendorID,
			info.ModelName,
			fmt.Sprintf("%d", info.Cores),
			fmt.Sprintf("%3.1f", info.Mhz),
		})
	}
	table.Render()

	logger.Notice(buf.String())
	return nil
}
