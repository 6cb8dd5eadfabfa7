package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGame(v)
	case ClaimResult:
		o.printClaimResult(v)
	case DrawPlaceResult:
		o.printDrawPlaceResult(v)
	case CPUTurnResult:
		o.printCPUTurnResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Card response type (matches API)
type Card struct {
	ID    int    `json:"id"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Position response type
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board response type
type Board struct {
	Cells [3][3]*Card `json:"cells"`
}

// Player response type
type Player struct {
	ID         string `json:"id"`
	Stars      int    `json:"stars"`
	Hand       []Card `json:"hand"`
	Difficulty string `json:"difficulty,omitempty"`
	IsCPU      bool   `json:"is_cpu,omitempty"`
}

// GameView response type
type GameView struct {
	ID            string    `json:"id"`
	State         string    `json:"state"`
	Board         Board     `json:"board"`
	Players       [2]Player `json:"players"`
	CurrentPlayer int       `json:"current_player"`
	Turn          int       `json:"turn"`
	StarPool      int       `json:"star_pool"`
	DeckCount     int       `json:"deck_count"`
	DiscardCount  int       `json:"discard_count"`
	LastPlaced    *Position `json:"last_placed,omitempty"`
	LastAutoDrawn string    `json:"last_auto_drawn,omitempty"`
	Winner        *string   `json:"winner,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Combo response type
type Combo struct {
	Type      string     `json:"type"`
	Cards     []Card     `json:"cards"`
	Positions []Position `json:"positions"`
}

// ClaimResult response type
type ClaimResult struct {
	Applied bool     `json:"applied"`
	Game    GameView `json:"game"`
}

// DrawPlaceResult response type
type DrawPlaceResult struct {
	Card Card     `json:"card"`
	Game GameView `json:"game"`
}

// CPUStep response type
type CPUStep struct {
	Kind     string    `json:"kind"`
	Position *Position `json:"position,omitempty"`
	Card     *Card     `json:"card,omitempty"`
	Combo    *Combo    `json:"combo,omitempty"`
}

// CPUTurnResult response type
type CPUTurnResult struct {
	Steps []CPUStep `json:"steps"`
	Game  GameView  `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// cardLabel renders a card as its color initial and value, e.g. R16
func cardLabel(c Card) string {
	return fmt.Sprintf("%s%d", c.Color[:1], c.Value)
}

func (o *Output) printGame(g GameView) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Turn: %d (current: %s)\n", g.Turn, g.Players[g.CurrentPlayer].ID)
	fmt.Printf("Star Pool: %d  Deck: %d  Discarded: %d\n", g.StarPool, g.DeckCount, g.DiscardCount)

	fmt.Println("\nBoard:")
	o.printBoard(g.Board)

	for _, p := range g.Players {
		cpuStr := ""
		if p.IsCPU {
			cpuStr = fmt.Sprintf(" [cpu:%s]", p.Difficulty)
		}
		fmt.Printf("\n%s%s: %d stars\n", p.ID, cpuStr, p.Stars)
		fmt.Print("  Hand:")
		for _, c := range p.Hand {
			fmt.Printf(" %s", cardLabel(c))
		}
		fmt.Println()
	}

	if g.LastAutoDrawn != "" {
		fmt.Printf("\nAuto-drew a card for %s\n", g.LastAutoDrawn)
	}
	if g.Winner != nil {
		fmt.Printf("\nWinner: %s\n", *g.Winner)
	} else if g.State == "FINISHED" {
		fmt.Println("\nGame drawn")
	}
}

func (o *Output) printBoard(b Board) {
	fmt.Println("     0    1    2")
	fmt.Println("   +--------------+")
	for row := 0; row < 3; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < 3; col++ {
			if c := b.Cells[row][col]; c != nil {
				fmt.Printf(" %-4s", cardLabel(*c))
			} else {
				fmt.Print(" .   ")
			}
		}
		fmt.Println("|")
	}
	fmt.Println("   +--------------+")
}

func (o *Output) printClaimResult(c ClaimResult) {
	if c.Applied {
		fmt.Println("Combo claimed")
	} else {
		fmt.Println("Claim not applied")
	}
	fmt.Println()
	o.printGame(c.Game)
}

func (o *Output) printDrawPlaceResult(d DrawPlaceResult) {
	fmt.Printf("Drew and placed: %s\n\n", cardLabel(d.Card))
	o.printGame(d.Game)
}

func (o *Output) printCPUTurnResult(t CPUTurnResult) {
	fmt.Printf("CPU turn (%d steps):\n", len(t.Steps))
	for _, s := range t.Steps {
		switch s.Kind {
		case "discard_board":
			fmt.Printf("  - discarded card at (%d,%d)\n", s.Position.Row, s.Position.Col)
		case "place_from_hand":
			fmt.Printf("  - placed %s at (%d,%d)\n", cardLabel(*s.Card), s.Position.Row, s.Position.Col)
		case "draw_and_place":
			fmt.Printf("  - drew and placed at (%d,%d)\n", s.Position.Row, s.Position.Col)
		case "claim_combo":
			fmt.Printf("  - claimed %s\n", s.Combo.Type)
		case "missed_combo":
			fmt.Printf("  - overlooked a %s\n", s.Combo.Type)
		case "end_turn":
			fmt.Println("  - ended turn")
		default:
			fmt.Printf("  - %s\n", s.Kind)
		}
	}
	fmt.Println()
	o.printGame(t.Game)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
