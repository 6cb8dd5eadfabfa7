package model

// BoardSize is the fixed grid dimension
const BoardSize = 3

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// NewPosition validates a (row, col) pair against the board bounds
func NewPosition(row, col int) (Position, error) {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return Position{}, ErrInvalidPosition
	}
	return p, nil
}

// Valid returns true if the position is within board bounds
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Adjacent reports 4-directional grid adjacency. Diagonal neighbours are
// not adjacent.
func (p Position) Adjacent(other Position) bool {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Board is the 3x3 grid of optional card references. It owns no cards;
// the orchestrator moves them in and out.
type Board struct {
	Cells [BoardSize][BoardSize]*Card `json:"cells"`
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Place stores a card at the given position
func (b *Board) Place(card Card, pos Position) error {
	if !pos.Valid() {
		return ErrInvalidPosition
	}
	if b.Cells[pos.Row][pos.Col] != nil {
		return ErrPositionOccupied
	}
	c := card
	b.Cells[pos.Row][pos.Col] = &c
	return nil
}

// Remove takes the card at the given position off the board and returns it.
// Removing from an empty cell is a no-op returning nil, which keeps discard
// flows idempotent.
func (b *Board) Remove(pos Position) *Card {
	if !pos.Valid() {
		return nil
	}
	card := b.Cells[pos.Row][pos.Col]
	b.Cells[pos.Row][pos.Col] = nil
	return card
}

// CardAt returns the card at the given position, or nil if empty
func (b *Board) CardAt(pos Position) *Card {
	if !pos.Valid() {
		return nil
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsEmpty returns true if the cell at the given position holds no card
func (b *Board) IsEmpty(pos Position) bool {
	return b.CardAt(pos) == nil
}

// IsFull returns true if all 9 cells are occupied
func (b *Board) IsFull() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] == nil {
				return false
			}
		}
	}
	return true
}

// Cards returns the cards currently on the board, in row-major order
func (b *Board) Cards() []Card {
	var cards []Card
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if c := b.Cells[row][col]; c != nil {
				cards = append(cards, *c)
			}
		}
	}
	return cards
}

// OccupiedPositions returns every position holding a card, in row-major order
func (b *Board) OccupiedPositions() []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] != nil {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// EmptyPositions returns every unoccupied position, in row-major order
func (b *Board) EmptyPositions() []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] == nil {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// FindPositions looks up board positions for the given cards by identity.
// The returned slice is parallel to cards; the bool is false if any card is
// not on the board.
func (b *Board) FindPositions(cards []Card) ([]Position, bool) {
	positions := make([]Position, 0, len(cards))
	for _, card := range cards {
		found := false
		for _, pos := range b.OccupiedPositions() {
			if b.Cells[pos.Row][pos.Col].Same(card) {
				positions = append(positions, pos)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return positions, true
}

// Clone returns a deep copy of the board, used for hypothetical placement
// exploration without touching live state.
func (b *Board) Clone() *Board {
	clone := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if c := b.Cells[row][col]; c != nil {
				card := *c
				clone.Cells[row][col] = &card
			}
		}
	}
	return clone
}
