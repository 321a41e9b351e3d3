// Package leaderboard keeps the best times for each ranked difficulty.
package leaderboard

import (
	"slices"
	"sync"
	"time"

	"minesweep/pkg/game/difficulty"
)

// Capacity is the number of entries kept per difficulty
const Capacity = 10

// Defaults for unset slots
const (
	DefaultName = "anonymous"
	DefaultTime = 999.0
)

// Entry is one leaderboard row. Time is in seconds.
type Entry struct {
	Rank int     `json:"rank"`
	Name string  `json:"name"`
	Time float64 `json:"time"`
}

// Recorder receives the final time of every won game
type Recorder interface {
	// Record stores a winning time and returns the rank it earned, or 0 if
	// it did not make the board
	Record(level difficulty.Level, elapsed time.Duration) int
}

// Board holds the entries for every ranked difficulty
type Board struct {
	mu      sync.Mutex
	player  string
	entries map[difficulty.Level][]Entry
}

// New creates a leaderboard with default entries. Wins passed to Record are
// credited to player.
func New(player string) *Board {
	if player == "" {
		player = DefaultName
	}
	b := &Board{
		player:  player,
		entries: make(map[difficulty.Level][]Entry, len(difficulty.Ranked)),
	}
	for _, l := range difficulty.Ranked {
		b.entries[l] = Defaults()
	}
	return b
}

// Defaults returns a full table of placeholder entries
func Defaults() []Entry {
	out := make([]Entry, Capacity)
	for i := range out {
		out[i] = Entry{Rank: i + 1, Name: DefaultName, Time: DefaultTime}
	}
	return out
}

// SetPlayer changes the name credited by Record
func (b *Board) SetPlayer(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if name == "" {
		name = DefaultName
	}
	b.player = name
}

// Record implements Recorder
func (b *Board) Record(level difficulty.Level, elapsed time.Duration) int {
	b.mu.Lock()
	player := b.player
	b.mu.Unlock()
	return b.Insert(level, player, elapsed.Seconds())
}

// Insert adds a time for name and returns its rank, or 0 if the level is
// not ranked or the time is not fast enough. Equal times keep their
// existing order, so an older entry stays ahead.
func (b *Board) Insert(level difficulty.Level, name string, seconds float64) int {
	if !level.IsRanked() {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(slices.Clone(b.entries[level]), Entry{Name: name, Time: seconds})
	slices.SortStableFunc(list, byTime)

	rank := 0
	for i := range list {
		if rank == 0 && list[i].Rank == 0 && i < Capacity {
			rank = i + 1
		}
		list[i].Rank = i + 1
	}
	if len(list) > Capacity {
		list = list[:Capacity]
	}
	b.entries[level] = list
	return rank
}

// Entries returns a copy of the table for level, ordered by rank. Unranked
// levels return nil.
func (b *Board) Entries(level difficulty.Level) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries[level])
}

// Best returns the fastest entry for level
func (b *Board) Best(level difficulty.Level) (Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.entries[level]
	if len(list) == 0 {
		return Entry{}, false
	}
	return list[0], true
}

// Restore replaces the table for level, for example with entries loaded by
// a persistence layer. Entries are re-sorted, re-ranked and padded with
// defaults up to Capacity.
func (b *Board) Restore(level difficulty.Level, entries []Entry) {
	if !level.IsRanked() {
		return
	}

	list := slices.Clone(entries)
	slices.SortStableFunc(list, byTime)
	if len(list) > Capacity {
		list = list[:Capacity]
	}
	for len(list) < Capacity {
		list = append(list, Entry{Name: DefaultName, Time: DefaultTime})
	}
	for i := range list {
		list[i].Rank = i + 1
		if list[i].Name == "" {
			list[i].Name = DefaultName
		}
	}

	b.mu.Lock()
	b.entries[level] = list
	b.mu.Unlock()
}

func byTime(a, b Entry) int {
	switch {
	case a.Time < b.Time:
		return -1
	case a.Time > b.Time:
		return 1
	default:
		return 0
	}
}
