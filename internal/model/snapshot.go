package model

// Snapshot is the session-boundary serialization of a game. Deck contents
// are secret and never transmitted; only the remaining count crosses the
// boundary, and the receiving side rebuilds an empty-but-sized deck.
// The star pool is not transmitted either: every pool decrement equals the
// stars awarded, so the pool is derived from the players' totals.
type Snapshot struct {
	Board         [BoardSize][BoardSize]*SnapshotCard `json:"board"`
	Players       [2]SnapshotPlayer                   `json:"players"`
	CurrentPlayer int                                 `json:"current_player"`
	Turn          int                                 `json:"turn"`
	DeckCount     int                                 `json:"deck_count"`
	DiscardCount  int                                 `json:"discard_count"`
	State         GameState                           `json:"state"`
	LastAutoDrawn *PlayerID                           `json:"last_auto_drawn"`
	LastPlaced    *Position                           `json:"last_placed"`
}

// SnapshotCard is a card as it appears on the wire
type SnapshotCard struct {
	ID    CardID    `json:"id"`
	Value CardValue `json:"value"`
	Color CardColor `json:"color"`
}

// SnapshotPlayer is a player as it appears on the wire
type SnapshotPlayer struct {
	ID         PlayerID       `json:"id"`
	Stars      int            `json:"stars"`
	Hand       []SnapshotCard `json:"hand"`
	Difficulty Difficulty     `json:"difficulty,omitempty"`
}

func snapshotCard(c Card) SnapshotCard {
	return SnapshotCard{ID: c.ID, Value: c.Value, Color: c.Color}
}

func (sc SnapshotCard) card() Card {
	return Card{ID: sc.ID, Value: sc.Value, Color: sc.Color}
}

func (sc SnapshotCard) validate() error {
	if _, err := NewCardValue(int(sc.Value)); err != nil {
		return err
	}
	if !sc.Color.Valid() {
		return ErrInvalidColor
	}
	return nil
}

// ToSnapshot produces the wire representation of the game
func (g *Game) ToSnapshot() Snapshot {
	var snap Snapshot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if c := g.Board.Cells[row][col]; c != nil {
				card := snapshotCard(*c)
				snap.Board[row][col] = &card
			}
		}
	}
	for i, p := range g.Players {
		sp := SnapshotPlayer{
			ID:         p.ID,
			Stars:      p.Stars,
			Hand:       make([]SnapshotCard, 0, p.Hand.Count()),
			Difficulty: p.Difficulty,
		}
		for _, c := range p.Hand.Sorted() {
			sp.Hand = append(sp.Hand, snapshotCard(c))
		}
		snap.Players[i] = sp
	}
	snap.CurrentPlayer = g.CurrentPlayer
	snap.Turn = g.Turn
	snap.DeckCount = g.Deck.Count()
	snap.DiscardCount = g.DiscardCount
	snap.State = g.State
	if g.LastAutoDrawn != "" {
		id := g.LastAutoDrawn
		snap.LastAutoDrawn = &id
	}
	snap.LastPlaced = g.LastPlaced
	return snap
}

// GameFromSnapshot reconstructs a game pushed by a remote relay. All
// orchestrator invariants are re-validated; a snapshot that cannot satisfy
// them fails with ErrInvalidSnapshot.
func GameFromSnapshot(id GameID, snap Snapshot) (*Game, error) {
	if snap.State != GameStatePlaying && snap.State != GameStateFinished {
		return nil, ErrInvalidSnapshot
	}
	if snap.CurrentPlayer != 0 && snap.CurrentPlayer != 1 {
		return nil, ErrInvalidSnapshot
	}
	if snap.DeckCount < 0 || snap.DiscardCount < 0 || snap.Turn < 0 {
		return nil, ErrInvalidSnapshot
	}

	board := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sc := snap.Board[row][col]
			if sc == nil {
				continue
			}
			if err := sc.validate(); err != nil {
				return nil, ErrInvalidSnapshot
			}
			if err := board.Place(sc.card(), Position{Row: row, Col: col}); err != nil {
				return nil, ErrInvalidSnapshot
			}
		}
	}

	var players [2]*Player
	starsAwarded := 0
	for i, sp := range snap.Players {
		if sp.ID == "" || sp.Stars < 0 {
			return nil, ErrInvalidSnapshot
		}
		if sp.Difficulty != "" && !sp.Difficulty.Valid() {
			return nil, ErrInvalidSnapshot
		}
		p := NewPlayer(sp.ID, sp.Difficulty)
		p.Stars = sp.Stars
		for _, sc := range sp.Hand {
			if err := sc.validate(); err != nil {
				return nil, ErrInvalidSnapshot
			}
			p.Hand.Add(sc.card())
		}
		players[i] = p
		starsAwarded += sp.Stars
	}
	if starsAwarded > InitialStarPool {
		return nil, ErrInvalidSnapshot
	}

	if snap.LastPlaced != nil && !snap.LastPlaced.Valid() {
		return nil, ErrInvalidSnapshot
	}

	g := &Game{
		ID:            id,
		Board:         board,
		Deck:          &Deck{Hidden: snap.DeckCount},
		State:         snap.State,
		Players:       players,
		CurrentPlayer: snap.CurrentPlayer,
		Turn:          snap.Turn,
		StarPool:      InitialStarPool - starsAwarded,
		DiscardCount:  snap.DiscardCount,
		LastPlaced:    snap.LastPlaced,
	}
	if snap.LastAutoDrawn != nil {
		g.LastAutoDrawn = *snap.LastAutoDrawn
	}
	return g, nil
}
