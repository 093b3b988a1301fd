// vidplane plays a video on a plane in 3D space.
//
// Controls:
//
//	Space        - Play / pause
//	Left/Right   - Seek 5 seconds back / forward
//	Click        - Play / pause, or seek when a lit seek icon is clicked
//	Drag         - Orbit the camera (or pan / rotate the surface, see policy.drag)
//	Scroll       - Move the camera closer / farther (or scale the surface)
//	W/S/A/D/Q/E  - Move the camera
//	Esc          - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Carmen-Shannon/oxy-vidplane/config"
	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := fang.Execute(context.Background(), newRootCommand(afero.NewOsFs())); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the vidplane command tree over fs.
func newRootCommand(fs afero.Fs) *cobra.Command {
	var configFile string

	loader := func() *config.Loader {
		if configFile != "" {
			return config.NewLoader(fs, config.WithConfigFile(configFile))
		}
		return config.NewLoader(fs)
	}

	cmd := &cobra.Command{
		Use:   "vidplane [media-path]",
		Short: "Play a video on a plane in 3D space",
		Long: `vidplane - interactive video plane

Plays a video on a flat surface in a 3D scene. Keyboard, mouse and
websocket clients control playback and the view.

The window only captures input; its canvas stays blank because frames go
to the headless renderer. With the mpv backend the video shows in mpv's
own window.

Settings come from vidplane.toml (working directory or user config
directory), VIDPLANE_* environment variables and flags, in increasing
priority. Run "vidplane config" to see the effective values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loader()
			if err := l.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			if len(args) == 1 {
				l.Set(config.KeyMediaPath, args[0])
			}
			cfg, err := l.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, fs)
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: search for vidplane.toml)")
	addFlags(cmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loader()
			if err := l.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			if _, err := l.Load(); err != nil {
				return err
			}
			describe, _ := cmd.Flags().GetBool("describe")
			if describe {
				return describeFields(cmd)
			}
			if used := l.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
			}
			return l.Write(cmd.OutOrStdout())
		},
	}
	configCmd.Flags().Bool("describe", false, "List every key with its environment variable and default")
	addFlags(configCmd)
	cmd.AddCommand(configCmd)
	return cmd
}

// addFlags registers the overridable settings on cmd.
func addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(config.FlagName(config.KeyMediaBackend), config.BackendMPV, "Media backend: mpv or clock")
	f.String(config.FlagName(config.KeyMediaMPVSocket), "", "Attach to a running mpv IPC socket")
	f.String(config.FlagName(config.KeyPolicyOverlay), "timed-flash", "Icon feedback: timed-flash or hover-reveal")
	f.String(config.FlagName(config.KeyPolicyDrag), "orbit", "Drag: orbit, pan or both")
	f.String(config.FlagName(config.KeyPolicyZoom), "dolly", "Wheel zoom: dolly or scale")
	f.Bool(config.FlagName(config.KeyPolicyRecursivePick), false, "Count icon clicks as surface clicks")
	f.Bool(config.FlagName(config.KeyWindowEnabled), true, "Open a desktop window")
	f.Bool(config.FlagName(config.KeyRemoteEnabled), false, "Accept browser input over a websocket")
	f.String(config.FlagName(config.KeyRemoteAddr), "127.0.0.1:8090", "Websocket listen address")
	f.Bool(config.FlagName(config.KeyEngineProfile), false, "Log frame statistics")
	f.String(config.FlagName(config.KeyLogsLevel), "info", "Log level")
}

func describeFields(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, field := range config.Fields() {
		if _, err := fmt.Fprintf(out, "%s\n  env:     %s\n  default: %v\n  %s\n\n",
			field.Key, field.Env(), field.Value, field.Description); err != nil {
			return err
		}
	}
	return nil
}
