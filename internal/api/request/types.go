package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Difficulty      string `json:"difficulty"`
	PlayerGoesFirst bool   `json:"player_goes_first"`
}

// PlaceCardRequest is the request body for placing a card from hand
type PlaceCardRequest struct {
	CardID int `json:"card_id"`
	Row    int `json:"row"`
	Col    int `json:"col"`
}

// DiscardBoardRequest is the request body for discarding a board cell
type DiscardBoardRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// DiscardHandRequest is the request body for discarding a card from hand
type DiscardHandRequest struct {
	CardID int `json:"card_id"`
}

// DrawPlaceRequest is the request body for drawing and placing the top deck card
type DrawPlaceRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ClaimComboRequest is the request body for claiming a combo
type ClaimComboRequest struct {
	Type      string     `json:"type"`
	CardIDs   []int      `json:"card_ids"`
	Positions []Position `json:"positions"`
}

// Position is a board coordinate in request bodies
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// EndTurnRequest is the request body for ending a turn
type EndTurnRequest struct {
	Turn *int `json:"turn,omitempty"`
}
