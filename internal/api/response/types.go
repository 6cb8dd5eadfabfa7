package response

import (
	"time"

	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/bot"
)

// Card represents a card in API responses
type Card struct {
	ID    int    `json:"id"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// CardFromModel converts a model.Card to a response Card
func CardFromModel(c model.Card) Card {
	return Card{
		ID:    int(c.ID),
		Value: int(c.Value),
		Color: string(c.Color),
	}
}

// Position represents a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Board represents the 3x3 grid. Empty cells are null.
type Board struct {
	Cells [model.BoardSize][model.BoardSize]*Card `json:"cells"`
}

// BoardFromModel converts a model.Board to a response Board
func BoardFromModel(b *model.Board) Board {
	var out Board
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if c := b.Cells[row][col]; c != nil {
				card := CardFromModel(*c)
				out.Cells[row][col] = &card
			}
		}
	}
	return out
}

// Player represents a player in API responses. Hands are always shown;
// hiding the CPU hand is a client concern, not a protocol one.
type Player struct {
	ID         string `json:"id"`
	Stars      int    `json:"stars"`
	Hand       []Card `json:"hand"`
	Difficulty string `json:"difficulty,omitempty"`
	IsCPU      bool   `json:"is_cpu,omitempty"`
}

// PlayerFromModel converts a model.Player, with the hand in display order
func PlayerFromModel(p *model.Player) Player {
	hand := make([]Card, 0, p.Hand.Count())
	for _, c := range p.Hand.Sorted() {
		hand = append(hand, CardFromModel(c))
	}
	return Player{
		ID:         string(p.ID),
		Stars:      p.Stars,
		Hand:       hand,
		Difficulty: string(p.Difficulty),
		IsCPU:      p.IsCPU(),
	}
}

// Game represents the full game state
type Game struct {
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

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	out := Game{
		ID:            string(g.ID),
		State:         string(g.State),
		Board:         BoardFromModel(g.Board),
		CurrentPlayer: g.CurrentPlayer,
		Turn:          g.Turn,
		StarPool:      g.StarPool,
		DeckCount:     g.Deck.Count(),
		DiscardCount:  g.DiscardCount,
		LastAutoDrawn: string(g.LastAutoDrawn),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	for i, p := range g.Players {
		out.Players[i] = PlayerFromModel(p)
	}
	if g.LastPlaced != nil {
		pos := PositionFromModel(*g.LastPlaced)
		out.LastPlaced = &pos
	}
	if g.IsFinished() {
		if winner, err := g.Winner(); err == nil && winner != nil {
			w := string(winner.ID)
			out.Winner = &w
		}
	}
	return out
}

// Combo represents a resolved or detected combo
type Combo struct {
	Type      string     `json:"type"`
	Cards     []Card     `json:"cards"`
	Positions []Position `json:"positions"`
}

// ComboFromModel converts a model.Combo
func ComboFromModel(c model.Combo) Combo {
	cards := make([]Card, len(c.Cards))
	for i, card := range c.Cards {
		cards[i] = CardFromModel(card)
	}
	positions := make([]Position, len(c.Positions))
	for i, pos := range c.Positions {
		positions[i] = PositionFromModel(pos)
	}
	return Combo{Type: string(c.Type), Cards: cards, Positions: positions}
}

// ClaimResponse is the response after a combo claim
type ClaimResponse struct {
	Applied bool `json:"applied"`
	Game    Game `json:"game"`
}

// DrawPlaceResponse is the response after drawing and placing the top deck card
type DrawPlaceResponse struct {
	Card Card `json:"card"`
	Game Game `json:"game"`
}

// CPUStep narrates one step of an executed CPU turn
type CPUStep struct {
	Kind     string    `json:"kind"`
	Position *Position `json:"position,omitempty"`
	Card     *Card     `json:"card,omitempty"`
	Combo    *Combo    `json:"combo,omitempty"`
}

// CPUStepFromModel converts a bot.Step
func CPUStepFromModel(s bot.Step) CPUStep {
	out := CPUStep{Kind: string(s.Kind)}
	if s.Position != nil {
		pos := PositionFromModel(*s.Position)
		out.Position = &pos
	}
	if s.Card != nil {
		card := CardFromModel(*s.Card)
		out.Card = &card
	}
	if s.Combo != nil {
		combo := ComboFromModel(*s.Combo)
		out.Combo = &combo
	}
	return out
}

// CPUTurnResponse is the response after a full CPU turn
type CPUTurnResponse struct {
	Steps []CPUStep `json:"steps"`
	Game  Game      `json:"game"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status string `json:"status"`
}
