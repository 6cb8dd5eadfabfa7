package combo

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/stargrid/stargrid-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	nextID  model.CardID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.nextID = 1
}

func (s *ServiceSuite) card(value model.CardValue, color model.CardColor) model.Card {
	c := model.Card{ID: s.nextID, Value: value, Color: color}
	s.nextID++
	return c
}

// place puts cards on a board at the given positions and returns them
func (s *ServiceSuite) place(board *model.Board, cards []model.Card, positions []model.Position) {
	for i, c := range cards {
		s.Require().NoError(board.Place(c, positions[i]))
	}
}

// Adjacency shapes

func (s *ServiceSuite) checkShape(positions []model.Position) bool {
	cards := []model.Card{
		s.card(model.ValueOne, model.ColorRed),
		s.card(model.ValueFour, model.ColorRed),
		s.card(model.ValueSixteen, model.ColorRed),
	}
	_, ok := s.service.CheckCombo(cards, positions)
	return ok
}

func (s *ServiceSuite) TestRowIsChainAdjacent() {
	s.True(s.checkShape([]model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}))
}

func (s *ServiceSuite) TestColumnIsChainAdjacent() {
	s.True(s.checkShape([]model.Position{
		{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1},
	}))
}

func (s *ServiceSuite) TestLShapeIsChainAdjacent() {
	s.True(s.checkShape([]model.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}))
}

func (s *ServiceSuite) TestDiagonalIsNotChainAdjacent() {
	s.False(s.checkShape([]model.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2},
	}))
}

func (s *ServiceSuite) TestGappedLineIsNotChainAdjacent() {
	s.False(s.checkShape([]model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1},
	}))
}

func (s *ServiceSuite) TestDisconnectedTripleIsNotChainAdjacent() {
	s.False(s.checkShape([]model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 2},
	}))
}

// Value rules

func (s *ServiceSuite) TestCheckComboThreeCards() {
	cards := []model.Card{
		s.card(model.ValueSixteen, model.ColorBlue),
		s.card(model.ValueOne, model.ColorBlue),
		s.card(model.ValueFour, model.ColorBlue),
	}
	positions := []model.Position{
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}

	comboType, ok := s.service.CheckCombo(cards, positions)
	s.Require().True(ok)
	s.Equal(model.ComboThreeCards, comboType)
}

func (s *ServiceSuite) TestCheckComboTripleMatch() {
	cards := []model.Card{
		s.card(model.ValueNine, model.ColorRed),
		s.card(model.ValueNine, model.ColorRed),
		s.card(model.ValueNine, model.ColorRed),
	}
	positions := []model.Position{
		{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}

	comboType, ok := s.service.CheckCombo(cards, positions)
	s.Require().True(ok)
	s.Equal(model.ComboTripleMatch, comboType)
}

func (s *ServiceSuite) TestCheckComboRejectsMixedColors() {
	cards := []model.Card{
		s.card(model.ValueOne, model.ColorRed),
		s.card(model.ValueFour, model.ColorBlue),
		s.card(model.ValueSixteen, model.ColorRed),
	}
	positions := []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}

	_, ok := s.service.CheckCombo(cards, positions)
	s.False(ok)
}

func (s *ServiceSuite) TestCheckComboRejectsWrongValues() {
	cards := []model.Card{
		s.card(model.ValueOne, model.ColorRed),
		s.card(model.ValueFour, model.ColorRed),
		s.card(model.ValueNine, model.ColorRed),
	}
	positions := []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}

	_, ok := s.service.CheckCombo(cards, positions)
	s.False(ok)
}

func (s *ServiceSuite) TestCheckComboRejectsLengthMismatch() {
	cards := []model.Card{s.card(model.ValueOne, model.ColorRed)}
	_, ok := s.service.CheckCombo(cards, nil)
	s.False(ok)

	_, ok = s.service.CheckCombo(nil, nil)
	s.False(ok)
}

// Detection

func (s *ServiceSuite) TestDetectCombosFindsAnchoredCombo() {
	board := model.NewBoard()
	cards := []model.Card{
		s.card(model.ValueOne, model.ColorRed),
		s.card(model.ValueFour, model.ColorRed),
		s.card(model.ValueSixteen, model.ColorRed),
	}
	positions := []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}
	s.place(board, cards, positions)

	combos := s.service.DetectCombos(board, positions[2])
	s.Require().Len(combos, 1)
	s.Equal(model.ComboThreeCards, combos[0].Type)
	s.Equal(positions[2], combos[0].Positions[0], "anchor comes first")
}

func (s *ServiceSuite) TestDetectCombosIgnoresCombosWithoutAnchor() {
	board := model.NewBoard()
	s.place(board,
		[]model.Card{
			s.card(model.ValueOne, model.ColorRed),
			s.card(model.ValueFour, model.ColorRed),
			s.card(model.ValueSixteen, model.ColorRed),
			s.card(model.ValueNine, model.ColorBlue),
		},
		[]model.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 2, Col: 2},
		},
	)

	// Anchored at the blue card, the red row is not detectable
	combos := s.service.DetectCombos(board, model.Position{Row: 2, Col: 2})
	s.Empty(combos)
}

func (s *ServiceSuite) TestDetectCombosOnEmptyAnchor() {
	board := model.NewBoard()
	s.Empty(s.service.DetectCombos(board, model.Position{Row: 1, Col: 1}))
}

func (s *ServiceSuite) TestDetectCombosFindsBothRulesIndependently() {
	// A cross around a sixteen: the row completes a triple match, the
	// column completes a three-cards combo, and both share the anchor.
	board := model.NewBoard()
	s.place(board,
		[]model.Card{
			s.card(model.ValueSixteen, model.ColorBlue),
			s.card(model.ValueSixteen, model.ColorBlue),
			s.card(model.ValueSixteen, model.ColorBlue),
			s.card(model.ValueOne, model.ColorBlue),
			s.card(model.ValueFour, model.ColorBlue),
		},
		[]model.Position{
			{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2},
			{Row: 0, Col: 1}, {Row: 2, Col: 1},
		},
	)

	combos := s.service.DetectCombos(board, model.Position{Row: 1, Col: 1})
	s.Require().Len(combos, 2)
	types := []model.ComboType{combos[0].Type, combos[1].Type}
	s.Contains(types, model.ComboThreeCards)
	s.Contains(types, model.ComboTripleMatch)
}

// Suggestions

func (s *ServiceSuite) TestSuggestPlacementsFindsCompletingCell() {
	board := model.NewBoard()
	s.place(board,
		[]model.Card{
			s.card(model.ValueOne, model.ColorRed),
			s.card(model.ValueFour, model.ColorRed),
		},
		[]model.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
		},
	)
	sixteen := s.card(model.ValueSixteen, model.ColorRed)

	suggestions := s.service.SuggestPlacements(board, []model.Card{sixteen})
	s.Require().NotEmpty(suggestions)
	s.Equal(sixteen.ID, suggestions[0].Card.ID)
	s.Equal(PriorityThreeCards, suggestions[0].Priority)
	s.Equal(model.ComboThreeCards, suggestions[0].Combo.Type)
}

func (s *ServiceSuite) TestSuggestPlacementsPrefersThreeCards() {
	board := model.NewBoard()
	s.place(board,
		[]model.Card{
			s.card(model.ValueOne, model.ColorRed),
			s.card(model.ValueFour, model.ColorRed),
			s.card(model.ValueNine, model.ColorBlue),
			s.card(model.ValueNine, model.ColorBlue),
		},
		[]model.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 2, Col: 0}, {Row: 2, Col: 1},
		},
	)
	candidates := []model.Card{
		s.card(model.ValueNine, model.ColorBlue),
		s.card(model.ValueSixteen, model.ColorRed),
	}

	suggestions := s.service.SuggestPlacements(board, candidates)
	s.Require().NotEmpty(suggestions)
	s.Equal(model.ComboThreeCards, suggestions[0].Combo.Type)
}

func (s *ServiceSuite) TestSuggestPlacementsLeavesBoardUntouched() {
	board := model.NewBoard()
	s.place(board,
		[]model.Card{
			s.card(model.ValueOne, model.ColorRed),
			s.card(model.ValueFour, model.ColorRed),
		},
		[]model.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
		},
	)

	_ = s.service.SuggestPlacements(board, []model.Card{s.card(model.ValueSixteen, model.ColorRed)})
	s.Len(board.OccupiedPositions(), 2)
}

func (s *ServiceSuite) TestSuggestPlacementsNoCombosPossible() {
	board := model.NewBoard()
	suggestions := s.service.SuggestPlacements(board, []model.Card{s.card(model.ValueOne, model.ColorRed)})
	s.Empty(suggestions)
}
