package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tamagotchi/internal/config"
	"tamagotchi/internal/pet"
	"tamagotchi/internal/session"
	"tamagotchi/internal/ui"
)

const Version = "v1.0.0"

const defaultConfigFile = "tamagotchi.toml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the resolved settings shared by every command.
type app struct {
	flags      config.Config
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.NewDefault()}

	rootCmd := &cobra.Command{
		Use:           "tamagotchi",
		Short:         "A virtual pet that lives in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), a.flags, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: a.runPlay,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigFile, "Path to a TOML config file")
	config.BindFlags(rootCmd.PersistentFlags(), &a.flags)

	rootCmd.AddCommand(a.statusCmd())
	rootCmd.AddCommand(a.resetCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setupLogging routes the log package to the configured file. Without one
// logs are dropped so they never draw over the game.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "tamagotchi")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (a *app) runPlay(cmd *cobra.Command, args []string) error {
	logFile, err := setupLogging(a.cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Printf("Starting session with save file %s", a.cfg.SavePath)

	s, err := session.New(pet.NewStore(a.cfg.SavePath), session.SystemClock{}, newRand(a.cfg.Seed), a.cfg.Name)
	if err != nil {
		return fmt.Errorf("load pet: %w", err)
	}

	if a.cfg.Plain {
		display := ui.LineDisplay{Out: cmd.OutOrStdout()}
		prompter := ui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		if a.cfg.Name == "" {
			if err := session.AskName(s, prompter); err != nil {
				return err
			}
		}
		return session.Run(cmd.Context(), s, display, prompter)
	}

	model, err := ui.NewModel(s, a.cfg.Animations)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	if m, ok := final.(ui.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}

func (a *app) statusCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the saved pet's stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)

			p, err := pet.NewStore(a.cfg.SavePath).Load()
			if errors.Is(err, pet.ErrNoSave) {
				fmt.Fprintf(cmd.OutOrStdout(), "No pet saved at %s. Run tamagotchi to hatch one!\n", a.cfg.SavePath)
				return nil
			}
			if err != nil {
				return err
			}

			if interactive {
				return ui.DisplayStats(p.Snapshot())
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderStats(p.Snapshot()))
			if p.Collapsed() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has run away. Use reset to start over.\n", p.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Show the stats in a full-screen view")
	return cmd
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the save file and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Remove %s and lose your pet? [y/N] ", a.cfg.SavePath)
				answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read answer: %w", err)
				}
				if reply := strings.ToLower(strings.TrimSpace(answer)); reply != "y" && reply != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
					return nil
				}
			}

			if err := pet.NewStore(a.cfg.SavePath).Remove(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Save removed. A new egg awaits!")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
