package services

import (
	"context"
	"errors"
	"fmt"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// Battle results accepted by UpdateMealStats.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// Leaderboard sort keys.
const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)

// KitchenService is the source of truth for meal existence, identity and
// battle statistics.
type KitchenService struct {
	db *gorm.DB
}

func NewKitchenService(db *gorm.DB) *KitchenService {
	return &KitchenService{db: db}
}

var validDifficulties = map[string]bool{
	models.DifficultyLow:  true,
	models.DifficultyMed:  true,
	models.DifficultyHigh: true,
}

// CreateMeal validates the inputs, inserts a new catalog entry and returns
// its id. A name collision with any existing row (deleted or not) is
// reported as ErrDuplicateMeal.
func (s *KitchenService) CreateMeal(ctx context.Context, name, cuisine string, price float64, difficulty string) (uint, error) {
	if price <= 0 {
		return 0, fmt.Errorf("%w: price must be a positive number, got %v", ErrInvalidInput, price)
	}
	if !validDifficulties[difficulty] {
		return 0, fmt.Errorf("%w: difficulty must be LOW, MED or HIGH, got %q", ErrInvalidInput, difficulty)
	}

	meal := models.Meal{Name: name, Cuisine: cuisine, Price: price, Difficulty: difficulty}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateMeal, name)
		}
		return 0, err
	}
	return meal.ID, nil
}

// GetMealByID returns the meal with the given id. Absent rows fail with
// ErrMealNotFound, soft-deleted rows with ErrMealGone.
func (s *KitchenService) GetMealByID(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
		}
		return nil, err
	}
	if meal.Deleted {
		return nil, fmt.Errorf("%w: id %d", ErrMealGone, id)
	}
	return &meal, nil
}

// GetMealByName is GetMealByID keyed on the unique name.
func (s *KitchenService) GetMealByName(ctx context.Context, name string) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: name %q", ErrMealNotFound, name)
		}
		return nil, err
	}
	if meal.Deleted {
		return nil, fmt.Errorf("%w: name %q", ErrMealGone, name)
	}
	return &meal, nil
}

// DeleteMeal soft-deletes a meal. The second delete of the same id fails
// with ErrMealGone; the check and the write share one transaction so
// concurrent writers cannot both pass the check.
func (s *KitchenService) DeleteMeal(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Select("id", "deleted").First(&meal, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrMealNotFound, id)
			}
			return err
		}
		if meal.Deleted {
			return fmt.Errorf("%w: id %d", ErrMealGone, id)
		}
		return tx.Model(&meal).Update("deleted", true).Error
	})
}

// UpdateMealStats records a battle result against a meal: a win increments
// battles and wins, a loss increments battles only. Any other result fails
// with ErrInvalidInput and leaves the row untouched.
func (s *KitchenService) UpdateMealStats(ctx context.Context, id uint, result string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Select("id", "deleted").First(&meal, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrMealNotFound, id)
			}
			return err
		}
		if meal.Deleted {
			return fmt.Errorf("%w: id %d", ErrMealGone, id)
		}
		switch result {
		case ResultWin:
			return tx.Model(&meal).UpdateColumns(map[string]interface{}{
				"battles": gorm.Expr("battles + 1"),
				"wins":    gorm.Expr("wins + 1"),
			}).Error
		case ResultLoss:
			return tx.Model(&meal).UpdateColumn("battles", gorm.Expr("battles + 1")).Error
		default:
			return fmt.Errorf("%w: result must be %q or %q, got %q", ErrInvalidInput, ResultWin, ResultLoss, result)
		}
	})
}

// Leaderboard returns every non-deleted meal that has fought at least once,
// ordered descending by wins or by win percentage.
func (s *KitchenService) Leaderboard(ctx context.Context, sortBy string) ([]models.LeaderboardEntry, error) {
	var order string
	switch sortBy {
	case SortByWins:
		order = "wins DESC"
	case SortByWinPct:
		order = "1.0 * wins / battles DESC"
	default:
		return nil, fmt.Errorf("%w: sort must be %q or %q, got %q", ErrInvalidInput, SortByWins, SortByWinPct, sortBy)
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("deleted = ? AND battles > 0", false).
		Order(order).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(meals))
	for _, m := range meals {
		entries = append(entries, models.LeaderboardEntry{
			ID:         m.ID,
			Name:       m.Name,
			Cuisine:    m.Cuisine,
			Price:      m.Price,
			Difficulty: m.Difficulty,
			Battles:    m.Battles,
			Wins:       m.Wins,
			WinPct:     utils.RoundTo(100*float64(m.Wins)/float64(m.Battles), 1),
		})
	}
	return entries, nil
}

// ResetMeals drops and recreates the meals table. Destructive; meant for
// administrative or test resets, not the battle flow.
func (s *KitchenService) ResetMeals(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Migrator().DropTable(&models.Meal{}); err != nil {
		return err
	}
	return db.AutoMigrate(&models.Meal{})
}
