// Command doodle is a headless Happy Doodle participant: create rooms,
// join a side and stream the round from a terminal, or cast audience
// votes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/happydoodle/core/internal/identity"
	"github.com/happydoodle/core/internal/model"
	"github.com/happydoodle/core/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type cliConfig struct {
	server   string
	stateDir string
}

func main() {
	cfg := &cliConfig{}

	v := viper.New()
	v.SetEnvPrefix("DOODLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "doodle",
		Short:         "Two players doodle, the audience votes, everyone shares the result.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	pf.StringVar(&cfg.server, "server", "http://localhost:8080", "service base URL (env: DOODLE_SERVER)")
	pf.StringVar(&cfg.stateDir, "state-dir", defaultStateDir(), "directory holding the voter token (env: DOODLE_STATE_DIR)")

	cobra.OnInitialize(func() {
		if v.IsSet("server") {
			cfg.server = v.GetString("server")
		}
		if v.IsSet("state-dir") {
			cfg.stateDir = v.GetString("state-dir")
		}
	})

	root.AddCommand(createCmd(cfg), joinCmd(cfg), voteCmd(cfg))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "happydoodle")
}

func createCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Allocate a room and print both share links",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := session.NewClient(cfg.server)
			id, joinURL, spectateURL, err := client.CreateRoom(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("room:    ", id)
			fmt.Println("players: ", joinURL)
			fmt.Println("audience:", spectateURL)
			return nil
		},
	}
}

func joinCmd(cfg *cliConfig) *cobra.Command {
	var (
		as         string
		startRound bool
		share      bool
	)

	cmd := &cobra.Command{
		Use:   "join <room-id>",
		Short: "Join a room and stream the round until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side := model.Side(as)
			if !side.IsDrawer() && side != model.SideSpectator {
				return fmt.Errorf("--as must be left, right or spectator")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			roomID := model.RoomID(args[0])
			client := session.NewClient(cfg.server)

			sess, err := dialSession(ctx, cfg, client, roomID, side)
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.Start(ctx)
			fmt.Printf("joined room %s as %s\n", roomID.Short(), side)

			if startRound {
				if err := sess.StartRound(ctx); err != nil {
					return err
				}
			}

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					counts := sess.Counts()
					switch {
					case sess.RoundState() == "running":
						fmt.Printf("[%2ds] %s — left %d / right %d\n",
							sess.RemainingSeconds(), sess.Prompt(), counts.Left, counts.Right)
					case sess.Winner() != model.WinnerNone:
						fmt.Printf("round over: %s (left %d / right %d)\n",
							sess.Winner(), counts.Left, counts.Right)
						if share {
							url, err := sess.ShareBattle(ctx)
							if err != nil {
								fmt.Fprintln(os.Stderr, "share failed:", err)
							} else {
								fmt.Println("battle image:", url)
							}
						}
						return nil
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&as, "as", "spectator", "side to join as: left, right or spectator")
	cmd.Flags().BoolVar(&startRound, "start-round", false, "start a 30s round after joining")
	cmd.Flags().BoolVar(&share, "share", false, "publish the battle image when the round ends")
	return cmd
}

func voteCmd(cfg *cliConfig) *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "vote <room-id>",
		Short: "Cast this device's vote for a side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			roomID := model.RoomID(args[0])
			client := session.NewClient(cfg.server)

			sess, err := dialSession(ctx, cfg, client, roomID, model.SideSpectator)
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.Start(ctx)
			if err := sess.CastVote(ctx, model.Side(side)); err != nil {
				return err
			}

			counts := sess.Counts()
			leftPct, rightPct := counts.Percentages()
			fmt.Printf("voted %s — left %d (%d%%) / right %d (%d%%)\n",
				strings.ToUpper(side), counts.Left, leftPct, counts.Right, rightPct)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "", "left or right (required)")
	_ = cmd.MarkFlagRequired("side")
	return cmd
}

// dialSession wires the websocket channel to a session, deriving the
// per-room voter key from the device token first. Closing the session
// closes the channel with it.
func dialSession(ctx context.Context, cfg *cliConfig, client *session.Client, roomID model.RoomID, side model.Side) (*session.Session, error) {
	voterKey, err := identity.NewStore(cfg.stateDir).VoterKey(string(roomID))
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		sess *session.Session
	)
	wsURL := strings.Replace(cfg.server, "http", "ws", 1) + "/api/ws/room/" + string(roomID)
	ch, err := session.DialChannel(ctx, wsURL, func(data []byte) {
		mu.Lock()
		s := sess
		mu.Unlock()
		if s != nil {
			s.HandleRaw(data)
		}
	})
	if err != nil {
		return nil, err
	}

	mu.Lock()
	sess = session.New(roomID, side, client, ch, session.WithVoterKey(voterKey))
	mu.Unlock()
	return sess, nil
}
