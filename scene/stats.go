package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Generate a table with the scene primitives grouped by material type.
func (s *Scene) Stats() string {
	var counts [DielectricMaterial + 1]int
	for _, prim := range s.Primitives {
		if int(prim.Material.Type) < len(counts) {
			counts[prim.Material.Type]++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count"})
	table.Append([]string{"Geometry", "Spheres", fmt.Sprintf("%d", len(s.Primitives))})
	table.Append([]string{" ", " ", " "})
	for matType, count := range counts {
		table.Append([]string{"Materials", MaterialType(matType).String(), fmt.Sprintf("%d", count)})
	}
	if s.Camera != nil {
		table.Append([]string{" ", " ", " "})
		table.Append([]string{"Camera", "Look from", s.Camera.LookFrom.String()})
		table.Append([]string{"", "Look at", s.Camera.LookAt.String()})
		table.Append([]string{"", "FOV", fmt.Sprintf("%3.1f", s.Camera.FOV)})
		table.Append([]string{"", "Aperture", fmt.Sprintf("%3.3f", s.Camera.Aperture)})
		table.Append([]string{"", "Focus dist", fmt.Sprintf("%3.3f", s.Camera.FocusDist)})
	}

	table.Render()
	return buf.String()
}
