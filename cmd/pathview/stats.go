package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"pathview/input"
	"pathview/renderer"
	"pathview/scene"
)

func formatSessionStats(stats renderer.FrameStats, elapsed time.Duration) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Frames", fmt.Sprintf("%d", stats.Frames)})
	table.Append([]string{"Skipped frames", fmt.Sprintf("%d", stats.SkippedFrames)})
	table.Append([]string{"Invalidations", fmt.Sprintf("%d", stats.Invalidations)})
	table.Append([]string{"Resizes", fmt.Sprintf("%d", stats.Resizes)})
	table.Append([]string{"Reallocations", fmt.Sprintf("%d", stats.Reallocations)})

	fps := 0.0
	if elapsed > 0 {
		fps = float64(stats.Frames) / elapsed.Seconds()
	}
	table.SetFooter([]string{elapsed.Round(time.Millisecond).String(), fmt.Sprintf("%.1f fps", fps)})

	table.Render()
	return buf.String()
}

func displaySessionStats(stats renderer.FrameStats, elapsed time.Duration) {
	logger.Noticef("session statistics\n%s", formatSessionStats(stats, elapsed))
}

type keyBinding struct {
	key    input.Key
	action string
}

func keyBindings(b scene.Bindings) []keyBinding {
	return []keyBinding{
		{b.Forward, "move forward"},
		{b.Back, "move backward"},
		{b.Right, "move right"},
		{b.Left, "move left"},
		{b.Rise, "move up"},
		{b.Fall, "move down"},
		{b.TurnRight, "turn right"},
		{b.TurnLeft, "turn left"},
		{b.TiltDown, "look down"},
		{b.TiltUp, "look up"},
		{input.KeyHome, "reset camera"},
		{input.KeyF11, "toggle fullscreen"},
		{input.KeyEscape, "quit"},
	}
}

func formatKeyBindings(bindings []keyBinding) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Key", "Action"})
	for _, kb := range bindings {
		table.Append([]string{kb.key.String(), kb.action})
	}
	table.Render()
	return buf.String()
}

// ListKeys prints the key bindings of the viewer.
func ListKeys(ctx *cli.Context) error {
	setupLogging(ctx)
	fmt.Print(formatKeyBindings(keyBindings(scene.DefaultBindings())))
	return nil
}
