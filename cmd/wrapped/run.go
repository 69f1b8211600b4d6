package main

import (
	"github.com/phanxgames/wrapped"
	"github.com/spf13/cobra"
)

var (
	runWidth         int
	runHeight        int
	runFullscreen    bool
	runShowFPS       bool
	runScriptPath    string
	runScreenshotDir string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the slideshow window",
	Long: `Opens a window and plays the dataset. Escape closes it.

With --script the slideshow is driven by a YAML or JSON list of steps
(key, swipe, click, wait, screenshot, quit), e.g. to capture every slide:

  wrapped run --script tour.yaml --screenshot-dir shots`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDataset()
		if err != nil {
			return err
		}

		cfg := wrapped.DefaultRunConfig()
		cfg.Width = runWidth
		cfg.Height = runHeight
		cfg.Fullscreen = runFullscreen
		cfg.ShowFPS = runShowFPS
		cfg.Debug = debug
		cfg.Logger = logger
		if runScreenshotDir != "" {
			cfg.ScreenshotDir = runScreenshotDir
		}
		if runScriptPath != "" {
			s, err := wrapped.LoadScript(runScriptPath)
			if err != nil {
				return err
			}
			cfg.Script = s
		}
		return wrapped.Run(d, cfg)
	},
}

func init() {
	def := wrapped.DefaultRunConfig()
	runCmd.Flags().IntVar(&runWidth, "width", def.Width, "logical canvas width")
	runCmd.Flags().IntVar(&runHeight, "height", def.Height, "logical canvas height")
	runCmd.Flags().BoolVar(&runFullscreen, "fullscreen", false, "start in fullscreen")
	runCmd.Flags().BoolVar(&runShowFPS, "fps", false, "show the FPS overlay")
	runCmd.Flags().StringVar(&runScriptPath, "script", "", "drive the slideshow from a script file")
	runCmd.Flags().StringVar(&runScreenshotDir, "screenshot-dir", "", "directory for script screenshots (default \""+wrapped.DefaultScreenshotDir+"\")")
}
