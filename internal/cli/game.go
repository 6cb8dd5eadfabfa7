package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameDiscardBoardCmd())
	cmd.AddCommand(newGameDiscardHandCmd())
	cmd.AddCommand(newGameDrawPlaceCmd())
	cmd.AddCommand(newGameClaimCmd())
	cmd.AddCommand(newGameEndTurnCmd())
	cmd.AddCommand(newGameCPUTurnCmd())
	cmd.AddCommand(newGameSnapshotCmd())
	cmd.AddCommand(newGameRestoreCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var difficulty string
	var cpuFirst bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game against a CPU opponent",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"difficulty":        difficulty,
				"player_goes_first": !cpuFirst,
			}
			var result GameView

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "normal", "CPU difficulty: easy, normal")
	cmd.Flags().BoolVar(&cpuFirst, "cpu-first", false, "Let the CPU take the first turn")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show the current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameView

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <game-id> <card-id> <row> <col>",
		Short: "Place a card from your hand on the board",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid card id: %w", err)
			}
			row, col, err := parseRowCol(args[2], args[3])
			if err != nil {
				return err
			}

			req := map[string]int{"card_id": cardID, "row": row, "col": col}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/place", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDiscardBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard-board <game-id> <row> <col>",
		Short: "Discard the card at a board position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseRowCol(args[1], args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/discard-board", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDiscardHandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard-hand <game-id> <card-id>",
		Short: "Discard a card from your hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid card id: %w", err)
			}

			req := map[string]int{"card_id": cardID}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/discard-hand", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDrawPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw-place <game-id> <row> <col>",
		Short: "Draw the top deck card and place it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseRowCol(args[1], args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col}
			var result DrawPlaceResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/draw-place", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <game-id> <type> <card-id:row:col> <card-id:row:col> <card-id:row:col>",
		Short: "Claim a combo (type: THREE_CARDS or TRIPLE_MATCH)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardIDs := make([]int, 0, 3)
			positions := make([]map[string]int, 0, 3)
			for _, arg := range args[2:] {
				parts := strings.Split(arg, ":")
				if len(parts) != 3 {
					return fmt.Errorf("expected card-id:row:col, got %q", arg)
				}
				cardID, err := strconv.Atoi(parts[0])
				if err != nil {
					return fmt.Errorf("invalid card id in %q: %w", arg, err)
				}
				row, col, err := parseRowCol(parts[1], parts[2])
				if err != nil {
					return err
				}
				cardIDs = append(cardIDs, cardID)
				positions = append(positions, map[string]int{"row": row, "col": col})
			}

			req := map[string]any{
				"type":      strings.ToUpper(args[1]),
				"card_ids":  cardIDs,
				"positions": positions,
			}
			var result ClaimResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/claim", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEndTurnCmd() *cobra.Command {
	var turn int

	cmd := &cobra.Command{
		Use:   "end-turn <game-id>",
		Short: "End the current turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("turn") {
				req["turn"] = turn
			}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/end-turn", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&turn, "turn", 0, "Only end the turn if the game is still on this turn number")

	return cmd
}

func newGameCPUTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu-turn <game-id>",
		Short: "Let the CPU opponent play its turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CPUTurnResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/cpu-turn", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <game-id>",
		Short: "Export a game snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result json.RawMessage

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/snapshot", args[0]), &result); err != nil {
				return err
			}

			// Snapshots are a wire format; always emit raw JSON
			fmt.Println(string(result))
			return nil
		},
	}
}

func newGameRestoreCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a game from a snapshot (reads stdin unless --file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := io.Reader(os.Stdin)
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				reader = f
			}

			data, err := io.ReadAll(reader)
			if err != nil {
				return err
			}

			var snap json.RawMessage = data
			var result GameView

			if err := client.Post("/api/v1/games/restore", snap, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Snapshot file path")

	return cmd
}

func parseRowCol(rowArg, colArg string) (int, int, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col: %w", err)
	}
	return row, col, nil
}
