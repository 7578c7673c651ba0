package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fluxfield/engine"
	"github.com/lixenwraith/fluxfield/preset"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Tick headless and print both snapshots as YAML",
		Long: `Constructs an engine, advances it a number of frames without any
renderer, and prints the resulting visual and audio snapshots. Useful for
inspecting what a seed or preset produces.`,
		RunE: runSnapshot,
	}
	cmd.Flags().Int("frames", 600, "Frames to simulate at 60Hz before projecting")
	cmd.Flags().String("preset", "", "Preset YAML file to apply before ticking")
	cmd.Flags().String("capture", "", "Also write the final state as a preset to this path")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	frames, _ := cmd.Flags().GetInt("frames")
	presetPath, _ := cmd.Flags().GetString("preset")
	capturePath, _ := cmd.Flags().GetString("capture")

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

	for i := 0; i < frames; i++ {
		eng.Update(1.0 / 60.0)
	}

	out := struct {
		Seed   uint64                `yaml:"seed"`
		Frames int                   `yaml:"frames"`
		Visual engine.VisualSnapshot `yaml:"visual"`
		Audio  engine.AudioSnapshot  `yaml:"audio"`
	}{cfg.Seed, frames, eng.VisualState(), eng.AudioState()}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if capturePath != "" {
		if err := preset.Save(capturePath, preset.Capture("captured", eng)); err != nil {
			return err
		}
	}
	return nil
}
