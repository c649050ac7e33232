package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"backend/models"
)

// RandomSource yields one uniform draw in [0,1) per call.
type RandomSource interface {
	Draw(ctx context.Context) (float64, error)
}

// StatsRecorder persists a battle result against a catalog entry.
type StatsRecorder interface {
	UpdateMealStats(ctx context.Context, id uint, result string) error
}

// BattleService stages up to two combatants and resolves a contest between
// them. The combatant slots are plain mutable state: instances are not safe
// for concurrent use, give each battle flow its own service.
type BattleService struct {
	kitchen    StatsRecorder
	random     RandomSource
	combatants []models.Meal
}

func NewBattleService(kitchen StatsRecorder, random RandomSource) *BattleService {
	return &BattleService{kitchen: kitchen, random: random}
}

// PrepCombatant stages a meal for the next battle. At most two meals may be
// staged; the same meal may occupy both slots.
func (s *BattleService) PrepCombatant(meal models.Meal) error {
	if len(s.combatants) >= 2 {
		return fmt.Errorf("%w: cannot prep %q", ErrCombatantsFull, meal.Name)
	}
	s.combatants = append(s.combatants, meal)
	return nil
}

// ClearCombatants empties the staging slots unconditionally. Clearing an
// already-empty list is a likely caller mistake, so it is logged rather than
// failed.
func (s *BattleService) ClearCombatants() {
	if len(s.combatants) == 0 {
		log.Println("Clearing an empty combatants list")
	}
	s.combatants = nil
}

// Combatants returns a copy of the currently staged meals.
func (s *BattleService) Combatants() []models.Meal {
	out := make([]models.Meal, len(s.combatants))
	copy(out, s.combatants)
	return out
}

// Higher stated difficulty costs less, so harder meals score higher for the
// same price and cuisine.
var difficultyPenalty = map[string]float64{
	models.DifficultyHigh: 1,
	models.DifficultyMed:  2,
	models.DifficultyLow:  3,
}

// ScoreMeal computes a meal's battle score from its price, cuisine and
// difficulty. Pure; no side effects, no randomness.
func (s *BattleService) ScoreMeal(meal models.Meal) float64 {
	return meal.Price*float64(len(meal.Cuisine)) - difficultyPenalty[meal.Difficulty]
}

// decideWinner picks the winning slot from both scores and a uniform draw.
// The favorite (strictly higher score) wins when the normalized score gap
// beats the draw; otherwise the underdog takes the upset. The gap is left
// unbounded, so once it exceeds 1 the favorite always wins. Ties go to the
// first slot.
func decideWinner(score1, score2, draw float64) int {
	delta := math.Abs(score1-score2) / 100
	if delta > draw {
		if score1 > score2 {
			return 0
		}
		return 1
	}
	if score1 <= score2 {
		return 0
	}
	return 1
}

// Battle resolves the staged pair: scores both combatants, draws once,
// records the winner's win and the loser's loss, then keeps only the winner
// staged. Returns the winner's name.
//
// Errors from the draw or either stats write abort the battle as-is; if the
// second write fails after the first succeeded, the counters are left
// partially applied and the caller must reconcile.
func (s *BattleService) Battle(ctx context.Context) (string, error) {
	if len(s.combatants) != 2 {
		return "", ErrNotEnoughCombatants
	}

	meal1, meal2 := s.combatants[0], s.combatants[1]
	score1 := s.ScoreMeal(meal1)
	score2 := s.ScoreMeal(meal2)

	draw, err := s.random.Draw(ctx)
	if err != nil {
		return "", err
	}

	winner, loser := meal1, meal2
	if decideWinner(score1, score2, draw) == 1 {
		winner, loser = meal2, meal1
	}

	if err := s.kitchen.UpdateMealStats(ctx, winner.ID, ResultWin); err != nil {
		return "", err
	}
	if err := s.kitchen.UpdateMealStats(ctx, loser.ID, ResultLoss); err != nil {
		return "", err
	}

	s.combatants = []models.Meal{winner}
	return winner.Name, nil
}
