package crazytype

// Records persists personal bests across sessions.
// The engine reads it at start and reads and writes it at game over.
type Records interface {
	HighScore() (int, error)
	SetHighScore(score int) error
	LongestStreak() (int, error)
	SetLongestStreak(streak int) error
}

// MemoryRecords keeps records in memory. The zero value is ready to use.
type MemoryRecords struct {
	High   int
	Streak int
}

func (m *MemoryRecords) HighScore() (int, error) {
	return m.High, nil
}

func (m *MemoryRecords) LongestStreak() (int, error) {
	return m.Streak, nil
}

func (m *MemoryRecords) SetHighScore(score int) error {
	m.High = score
	return nil
}

func (m *MemoryRecords) SetLongestStreak(streak int) error {
	m.Streak = streak
	return nil
}
