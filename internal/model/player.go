package model

// PlayerID is a stable role name for one of the two seats ("player1"/"player2")
type PlayerID string

// Difficulty tags a CPU-controlled player. An empty difficulty means the
// player is human-controlled.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
)

// Valid returns true for a recognised CPU difficulty
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyNormal
}

// Player is a game participant: an identity, an accumulated star count and
// an owned hand
type Player struct {
	ID         PlayerID   `json:"id"`
	Stars      int        `json:"stars"`
	Hand       Hand       `json:"hand"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// NewPlayer creates a player with an empty hand
func NewPlayer(id PlayerID, difficulty Difficulty) *Player {
	return &Player{ID: id, Difficulty: difficulty}
}

// IsCPU returns true iff the player carries a difficulty tag
func (p *Player) IsCPU() bool {
	return p.Difficulty != ""
}

// AddStars awards stars; the total is monotonically non-decreasing
func (p *Player) AddStars(n int) {
	if n > 0 {
		p.Stars += n
	}
}

// DrawToHand adds a drawn card to the player's hand
func (p *Player) DrawToHand(card Card) {
	p.Hand.Add(card)
}

// PlayCard removes a card from the hand and returns it so the orchestrator
// can place it on the board
func (p *Player) PlayCard(card Card) (*Card, error) {
	held := p.Hand.Find(card.ID)
	if held == nil {
		return nil, ErrCardNotFound
	}
	played := *held
	if err := p.Hand.Remove(played); err != nil {
		return nil, err
	}
	return &played, nil
}
