package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Level curve
// ---------------------------------------------------------------------------

// LevelForXP returns the level reached with the given cumulative XP.
// The curve has four tiers: 100 XP per level up to level 10, then 200 up to
// level 25, 500 up to level 50 and 1000 afterwards. Level 1 is the minimum.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	switch {
	case xp < 1000:
		return max(1, xp/100)
	case xp < 4000:
		return 10 + (xp-1000)/200
	case xp < 16500:
		return 25 + (xp-4000)/500
	default:
		return 50 + (xp-16500)/1000
	}
}

// LevelFloor returns the XP at which level starts.
func LevelFloor(level int) int {
	switch {
	case level < 10:
		return max(1, level) * 100
	case level < 25:
		return 1000 + (level-10)*200
	case level < 50:
		return 4000 + (level-25)*500
	default:
		return 16500 + (level-50)*1000
	}
}

func levelStep(level int) int {
	switch {
	case level < 10:
		return 100
	case level < 25:
		return 200
	case level < 50:
		return 500
	default:
		return 1000
	}
}

// NextLevelThreshold returns the XP needed to leave level.
func NextLevelThreshold(level int) int {
	return LevelFloor(level) + levelStep(level)
}

// XPToNextLevel returns how much XP is missing to reach the next level.
func XPToNextLevel(xp int) int {
	return NextLevelThreshold(LevelForXP(xp)) - max(0, xp)
}

// LevelProgress returns the fraction of the current level already earned,
// clamped to [0, 1].
func LevelProgress(xp int) float64 {
	level := LevelForXP(xp)
	floor := LevelFloor(level)
	next := NextLevelThreshold(level)

	p := float64(xp-floor) / float64(next-floor)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ---------------------------------------------------------------------------
// Streaks
// ---------------------------------------------------------------------------

// Streak counts consecutive days with qualifying activity.
type Streak struct {
	Current  int
	Longest  int
	LastDate *time.Time
}

// Advance applies a qualifying event on today: the same day changes nothing,
// the day after LastDate extends the streak, any other day restarts it at 1.
// Longest never drops below Current.
func (s Streak) Advance(today time.Time) Streak {
	today = CivilDay(today)

	next := s
	switch {
	case s.LastDate != nil && CivilDay(*s.LastDate).Equal(today):
		return s
	case s.LastDate != nil && CivilDay(*s.LastDate).AddDate(0, 0, 1).Equal(today):
		next.Current = s.Current + 1
	default:
		next.Current = 1
	}
	next.Longest = max(s.Longest, next.Current)
	next.LastDate = &today
	return next
}

// ---------------------------------------------------------------------------
// Game state aggregate
// ---------------------------------------------------------------------------

// UserGameState holds the gamification fields of a user. All mutations go
// through its methods so that XP stays monotonic and LongestStreak never
// falls below CurrentStreak.
type UserGameState struct {
	TotalXP             int
	CurrentLevel        int
	Streak              Streak
	InitialBalance      decimal.Decimal
	IsInitialBalanceSet bool
}

// NewUserGameState returns the state of a freshly registered user.
func NewUserGameState() UserGameState {
	return UserGameState{
		CurrentLevel:   1,
		InitialBalance: decimal.Zero,
	}
}

// AwardXP adds amount to the cumulative XP and recomputes the level.
func (s *UserGameState) AwardXP(amount int) error {
	if amount < 0 {
		return NewValidationError("xp", fmt.Sprintf("must not be negative (got %d)", amount))
	}
	s.TotalXP += amount
	s.CurrentLevel = LevelForXP(s.TotalXP)
	return nil
}

// RecordActivity registers a qualifying event on day for the streak.
// It reports whether the streak changed.
func (s *UserGameState) RecordActivity(day time.Time) bool {
	next := s.Streak.Advance(day)
	changed := next.Current != s.Streak.Current || next.Longest != s.Streak.Longest ||
		!sameDayPtr(next.LastDate, s.Streak.LastDate)
	s.Streak = next
	return changed
}

// SetInitialBalance sets the starting balance once, rounded to cents.
func (s *UserGameState) SetInitialBalance(amount decimal.Decimal) error {
	if s.IsInitialBalanceSet {
		return ErrAlreadySet
	}
	amount, err := NormalizeAmount(amount)
	if err != nil {
		return NewValidationError("initial_balance", "out of range")
	}
	s.InitialBalance = amount
	s.IsInitialBalanceSet = true
	return nil
}

// LevelInfo is the read model of a user's progression.
type LevelInfo struct {
	TotalXP       int
	CurrentLevel  int
	LevelFloor    int
	NextLevelAt   int
	XPToNextLevel int
	Progress      float64
	CurrentStreak int
	LongestStreak int
}

// LevelInfo derives the progression read model from the state.
func (s UserGameState) LevelInfo() LevelInfo {
	level := LevelForXP(s.TotalXP)
	return LevelInfo{
		TotalXP:       s.TotalXP,
		CurrentLevel:  level,
		LevelFloor:    LevelFloor(level),
		NextLevelAt:   NextLevelThreshold(level),
		XPToNextLevel: XPToNextLevel(s.TotalXP),
		Progress:      LevelProgress(s.TotalXP),
		CurrentStreak: s.Streak.Current,
		LongestStreak: s.Streak.Longest,
	}
}

func sameDayPtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return CivilDay(*a).Equal(CivilDay(*b))
}
