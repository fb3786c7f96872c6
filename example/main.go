// Command titlemaker edits broadcast titles: shapes and text with enter and
// exit animations, laid out on a fixed resolution canvas and served as a
// live feed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run the editor
//
// The canvas is rendered offscreen at the output resolution on a fixed
// timestep. While the feed runs, each step is read back and published as
// JPEG frames on ws://<feed_addr>/feed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/gui/backend/opengl"
	"github.com/go-theft-auto/titlemaker/output"
	"github.com/go-theft-auto/titlemaker/scene"
)

const (
	windowTitle       = "Title Maker"
	defaultConfigPath = "~/.config/titlemaker/config.toml"
	// maxSteps bounds the canvas steps run per window frame after a stall.
	maxSteps = 4
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:          "titlemaker [document]",
		Short:        "Edit and play out animated broadcast titles",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			cfg, err := LoadConfig(resolveConfigPath(configPath, cmd.Flags().Changed("config")))
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if cfg.Document, err = homedir.Expand(args[0]); err != nil {
					return err
				}
			}
			return run(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "TOML configuration file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	return cmd
}

// resolveConfigPath drops the default path when that file does not exist.
// A path given on the command line is always used.
func resolveConfigPath(path string, explicit bool) string {
	if explicit {
		return path
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return ""
	}
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return p
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gui.SetVerbose(verbose)
	scene.SetLogger(logger)
	return logger
}

func run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	fonts, err := opengl.LoadFonts(renderer, cfg.Fonts)
	if err != nil {
		return err
	}
	defer fonts.Delete(renderer)

	opts := []gui.GUIOption{
		gui.WithFontProvider(fonts),
		gui.WithClipboard(opengl.NewClipboard(window)),
	}
	if cfg.Stylesheet != "" {
		sheet, err := gui.LoadStyleSheet(cfg.Stylesheet)
		if err != nil {
			return err
		}
		opts = append(opts, gui.WithStyleSheet(sheet))
	}
	ui := gui.New(renderer, opts...)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { ui.Resize(w, h) })

	target, err := opengl.NewRenderTarget(renderer, cfg.Output.Width, cfg.Output.Height)
	if err != nil {
		return err
	}
	defer target.Delete()

	editor := NewEditor(cfg, fonts, logger)
	defer editor.Close()
	editor.SetCanvas(target.Texture())
	if _, err := os.Stat(cfg.Document); err == nil {
		editor.open()
	}

	input := opengl.NewWindowInput(window)
	step := 1 / float64(cfg.Output.FrameRate)
	last := glfw.GetTime()
	var acc float64

	logger.Info("editor started", "output", fmt.Sprintf("%dx%d@%d", cfg.Output.Width, cfg.Output.Height, cfg.Output.FrameRate))
	for !window.ShouldClose() && ctx.Err() == nil {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := now - last
		last = now

		acc = min(acc+dt, step*maxSteps)
		for ; acc >= step; acc -= step {
			if err := target.Render(renderer, editor.Scene(float32(step)), gui.Color{}); err != nil {
				return fmt.Errorf("render canvas: %w", err)
			}
			if editor.WantsFrame() {
				editor.HandleFrame(output.Frame{
					Width:    cfg.Output.Width,
					Height:   cfg.Output.Height,
					Pix:      target.ReadPixels(),
					BottomUp: true,
				})
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		uictx := ui.Begin(input.Update(), gui.Vec2{X: float32(w), Y: float32(h)}, float32(dt))
		editor.Frame(ctx, uictx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.EndFrame()

		window.SwapBuffers()
	}
	return nil
}
