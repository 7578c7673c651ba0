package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fluxfield/audio"
	"github.com/lixenwraith/fluxfield/engine"
	"github.com/lixenwraith/fluxfield/events"
	"github.com/lixenwraith/fluxfield/preset"
	"github.com/lixenwraith/fluxfield/render"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the installation in the terminal",
		Long: `Runs the engine with the terminal field renderer and, optionally,
the drone audio collaborator. Keys feed the stimulus map, mouse movement
nudges the displacement center, Esc or Ctrl+C quits.`,
		RunE: runInstallation,
	}
	cmd.Flags().String("preset", "", "Preset YAML file to apply at startup")
	cmd.Flags().Bool("audio", false, "Enable drone audio output")
	cmd.Flags().Int("fps", 60, "Target frame rate")
	return cmd
}

func runInstallation(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	presetPath, _ := cmd.Flags().GetString("preset")
	audioOn, _ := cmd.Flags().GetBool("audio")
	fps, _ := cmd.Flags().GetInt("fps")
	if fps < 1 || fps > 240 {
		fps = 60
	}

	cfg := engine.LoadConfig()
	if seed != 0 {
		cfg.Seed = seed
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if presetPath != "" {
		p, err := preset.Load(presetPath)
		if err != nil {
			return err
		}
		p.Apply(eng)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	screen.EnableMouse()

	// Terminal must be restored even when the frame loop panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nfluxfield crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var drone *audio.DroneEngine
	if audioOn {
		drone = audio.NewDroneEngine(audio.LoadAudioConfig())
		if err := drone.Start(); err != nil {
			screen.Fini()
			return fmt.Errorf("audio: %w", err)
		}
		defer drone.Stop()
	}

	queue := events.NewStimulusQueue()
	quit := make(chan struct{})
	go pollInput(screen, queue, quit)

	renderer := render.NewRenderer(screen)
	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			queue.Drain(eng)
			eng.Update(dt)

			renderer.Draw(eng.VisualState())
			if drone != nil {
				drone.Update(eng.AudioState())
			}
		}
	}
}

// pollInput translates terminal events into queued stimuli
// Runs on its own goroutine; the queue bridges it to the frame loop
func pollInput(screen tcell.Screen, queue *events.StimulusQueue, quit chan struct{}) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				close(quit)
				return
			case tcell.KeyRune:
				queue.Push(events.Stimulus{
					Type: events.StimulusKeyPress,
					Key:  string(ev.Rune()),
				})
			}
		case *tcell.EventMouse:
			w, h := screen.Size()
			if w <= 0 || h <= 0 {
				continue
			}
			mx, my := ev.Position()
			queue.Push(events.Stimulus{
				Type: events.StimulusPointerMove,
				X:    float64(mx) / float64(w),
				Y:    float64(my) / float64(h),
			})
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return
		}
	}
}
