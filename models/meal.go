package models

// Difficulty labels accepted by the catalog.
const (
	DifficultyLow  = "LOW"
	DifficultyMed  = "MED"
	DifficultyHigh = "HIGH"
)

// A catalog entry that can be staged for battles. Rows are soft-deleted:
// Deleted flips to true exactly once and the row stays behind so reads can
// tell "never existed" from "existed, now retired".
type Meal struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"uniqueIndex;not null" json:"meal"`
	Cuisine    string  `gorm:"not null" json:"cuisine"`
	Price      float64 `gorm:"not null" json:"price"`
	Difficulty string  `gorm:"type:varchar(8);not null" json:"difficulty"`
	Battles    int     `gorm:"not null;default:0" json:"battles"`
	Wins       int     `gorm:"not null;default:0" json:"wins"`
	Deleted    bool    `gorm:"not null;default:false" json:"-"`
}

// One leaderboard row: a meal's stats plus its win percentage, rounded to
// one decimal place.
type LeaderboardEntry struct {
	ID         uint    `json:"id"`
	Name       string  `json:"meal"`
	Cuisine    string  `json:"cuisine"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty"`
	Battles    int     `json:"battles"`
	Wins       int     `json:"wins"`
	WinPct     float64 `json:"win_pct"`
}
