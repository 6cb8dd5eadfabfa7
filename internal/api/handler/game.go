package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stargrid/stargrid-go/internal/api/request"
	"github.com/stargrid/stargrid-go/internal/api/response"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/bot"
	"github.com/stargrid/stargrid-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	botService     *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, botService *bot.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
	}
}

// gameID extracts the game ID path variable
func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// writeGame responds with the current stored state of a game
func (h *GameHandler) writeGame(w http.ResponseWriter, r *http.Request, id model.GameID, status int) {
	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.GameFromModel(g))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), model.Difficulty(req.Difficulty), req.PlayerGoesFirst)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeGame(w, r, gameID(r), http.StatusOK)
}

// Place handles POST /api/v1/games/{id}/place
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.PlaceCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	if err := h.gameController.PlaceCard(r.Context(), id, model.CardID(req.CardID), pos); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id, http.StatusOK)
}

// DiscardBoard handles POST /api/v1/games/{id}/discard-board
func (h *GameHandler) DiscardBoard(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.DiscardBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	if err := h.gameController.DiscardFromBoard(r.Context(), id, pos); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id, http.StatusOK)
}

// DiscardHand handles POST /api/v1/games/{id}/discard-hand
func (h *GameHandler) DiscardHand(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.DiscardHandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.gameController.DiscardFromHand(r.Context(), id, model.CardID(req.CardID)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id, http.StatusOK)
}

// DrawPlace handles POST /api/v1/games/{id}/draw-place
func (h *GameHandler) DrawPlace(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.DrawPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	card, err := h.gameController.DrawAndPlace(r.Context(), id, pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.DrawPlaceResponse{
		Card: response.CardFromModel(*card),
		Game: response.GameFromModel(g),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Claim handles POST /api/v1/games/{id}/claim
func (h *GameHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.ClaimComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.CardIDs) != len(req.Positions) {
		WriteError(w, model.ErrComboLengthMismatch)
		return
	}

	claim, err := h.resolveClaim(r, id, req)
	if err != nil {
		WriteError(w, err)
		return
	}

	applied, err := h.gameController.ClaimCombo(r.Context(), id, claim)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.ClaimResponse{
		Applied: applied,
		Game:    response.GameFromModel(g),
	}
	response.JSON(w, http.StatusOK, resp)
}

// resolveClaim rebuilds a full combo claim from the wire form, which carries
// card IDs only. Cards still on the board at their claimed positions are
// resolved from the board; cards no longer there keep just their identity,
// which is all replay detection needs.
func (h *GameHandler) resolveClaim(r *http.Request, id model.GameID, req request.ClaimComboRequest) (model.Combo, error) {
	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		return model.Combo{}, err
	}

	cards := make([]model.Card, len(req.CardIDs))
	positions := make([]model.Position, len(req.Positions))
	for i, cardID := range req.CardIDs {
		pos := model.Position{Row: req.Positions[i].Row, Col: req.Positions[i].Col}
		if !pos.Valid() {
			return model.Combo{}, model.ErrInvalidPosition
		}
		positions[i] = pos

		if c := g.Board.CardAt(pos); c != nil && c.ID == model.CardID(cardID) {
			cards[i] = *c
		} else {
			cards[i] = model.Card{ID: model.CardID(cardID)}
		}
	}

	return model.NewCombo(model.ComboType(req.Type), cards, positions)
}

// EndTurn handles POST /api/v1/games/{id}/end-turn
func (h *GameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.EndTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	expectedTurn := -1
	if req.Turn != nil {
		expectedTurn = *req.Turn
	}
	if err := h.gameController.EndTurn(r.Context(), id, expectedTurn); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id, http.StatusOK)
}

// AckAutoDraw handles POST /api/v1/games/{id}/ack-auto-draw
func (h *GameHandler) AckAutoDraw(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	if err := h.gameController.ClearAutoDraw(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Snapshot handles GET /api/v1/games/{id}/snapshot
func (h *GameHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gameController.Snapshot(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snap)
}

// Restore handles POST /api/v1/games/restore
func (h *GameHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var snap model.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.Restore(r.Context(), "", snap)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// CPUTurn handles POST /api/v1/games/{id}/cpu-turn
func (h *GameHandler) CPUTurn(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	steps, err := h.botService.PlayTurn(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.CPUTurnResponse{
		Steps: make([]response.CPUStep, len(steps)),
		Game:  response.GameFromModel(g),
	}
	for i, s := range steps {
		resp.Steps[i] = response.CPUStepFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}
