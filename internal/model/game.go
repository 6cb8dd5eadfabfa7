package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the lifecycle of a game
type GameState string

const (
	GameStatePlaying  GameState = "PLAYING"
	GameStateFinished GameState = "FINISHED" // terminal
)

// Fixed game constants; these must match exactly for snapshot compatibility
const (
	InitialStarPool = 21
	InitialHandSize = 8
)

// Seat identifiers for the two fixed player slots
const (
	SeatPlayerOne PlayerID = "player1"
	SeatPlayerTwo PlayerID = "player2"
)

// Game is the aggregate root: board, deck, the two players, the shared star
// pool and turn-scoped metadata
type Game struct {
	ID    GameID    `json:"id"`
	Board *Board    `json:"board"`
	Deck  *Deck     `json:"deck"`
	State GameState `json:"state"`

	// Players in fixed seat order; CurrentPlayer indexes into it
	Players       [2]*Player `json:"players"`
	CurrentPlayer int        `json:"current_player"`

	// Turn counts EndTurn transitions, for replay detection
	Turn int `json:"turn"`

	// StarPool is the shared unclaimed reserve; it strictly decreases as
	// combos are claimed and never goes below zero
	StarPool     int `json:"star_pool"`
	DiscardCount int `json:"discard_count"`

	// LastPlaced is the position of the most recently placed card, used to
	// exclude it from the CPU's random discard selection
	LastPlaced *Position `json:"last_placed,omitempty"`

	// LastAutoDrawn is the player who just received an automatic draw on an
	// empty hand, cleared once consumed by the presentation layer
	LastAutoDrawn PlayerID `json:"last_auto_drawn,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Current returns the player whose turn it is
func (g *Game) Current() *Player {
	return g.Players[g.CurrentPlayer]
}

// Opponent returns the player whose turn it is not
func (g *Game) Opponent() *Player {
	return g.Players[1-g.CurrentPlayer]
}

// IsFinished returns true once the game has reached its terminal state
func (g *Game) IsFinished() bool {
	return g.State == GameStateFinished
}

// FinishDue reports whether the end-of-turn transition condition holds:
// the star pool is exhausted or the deck is empty
func (g *Game) FinishDue() bool {
	return g.StarPool == 0 || g.Deck.IsEmpty()
}

// Winner compares star totals on a finished game. It returns nil on an
// exact tie, and ErrGameNotFinished while the game is still in play.
func (g *Game) Winner() (*Player, error) {
	if !g.IsFinished() {
		return nil, ErrGameNotFinished
	}
	p1, p2 := g.Players[0], g.Players[1]
	switch {
	case p1.Stars > p2.Stars:
		return p1, nil
	case p2.Stars > p1.Stars:
		return p2, nil
	}
	return nil, nil
}
