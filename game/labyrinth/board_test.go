package labyrinth

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromSnapshot(t *testing.T) {
	b := mustBoard(t, referenceSnapshot())

	t.Run("sets maze size", func(t *testing.T) {
		assert.Equal(t, 3, b.Size())
	})

	t.Run("places cards by location", func(t *testing.T) {
		card, err := b.MazeCardAt(Loc(1, 0))
		require.NoError(t, err)
		assert.Equal(t, 3, card.ID())
		assert.Equal(t, 180, card.Rotation())
		assert.Equal(t, "NE", card.OutPaths())
	})

	t.Run("first card is the leftover", func(t *testing.T) {
		assert.Equal(t, 9, b.Leftover().ID())
		_, onGrid := b.LocationOf(9)
		assert.False(t, onGrid)
	})

	t.Run("derives disabled shift location", func(t *testing.T) {
		disabled, ok := b.DisabledShiftLocation()
		require.True(t, ok)
		assert.Equal(t, Loc(2, 1), disabled)
	})

	t.Run("puts players on cards", func(t *testing.T) {
		card, err := b.MazeCard(2)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{42, 17}, card.PlayerIDs())

		empty, err := b.MazeCard(3)
		require.NoError(t, err)
		assert.Empty(t, empty.PlayerIDs())

		l, err := b.PlayerLocation(17)
		require.NoError(t, err)
		assert.Equal(t, Loc(0, 2), l)
	})

	t.Run("no disabled location when all are enabled", func(t *testing.T) {
		s := referenceSnapshot()
		s.EnabledShiftLocations = append(s.EnabledShiftLocations, Loc(2, 1))
		other := mustBoard(t, s)
		_, ok := other.DisabledShiftLocation()
		assert.False(t, ok)
	})
}

func TestUpdateOverwritesState(t *testing.T) {
	b, err := Generate(5, []int{1, 2, 3, 4, 5}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.NoError(t, b.Update(referenceSnapshot()))

	assert.Equal(t, 3, b.Size())
	card, err := b.MazeCardAt(Loc(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, card.ID())
	_, err = b.MazeCard(20)
	assert.ErrorIs(t, err, ErrUnknownMazeCard)
	card, err = b.MazeCard(8)
	require.NoError(t, err)
	assert.Empty(t, card.PlayerIDs())
}

func TestUpdateRejectsInvalidSnapshots(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *Snapshot)
		want   error
	}{
		{"even size", func(s *Snapshot) { s.MazeSize = 4 }, ErrInvalidMazeSize},
		{"too few cards", func(s *Snapshot) { s.MazeCards = s.MazeCards[:5] }, ErrInvalidSnapshot},
		{"duplicate id", func(s *Snapshot) { s.MazeCards[2].ID = 0 }, ErrInvalidSnapshot},
		{"leftover with location", func(s *Snapshot) { l := Loc(0, 0); s.MazeCards[0].Location = &l }, ErrInvalidSnapshot},
		{"grid card without location", func(s *Snapshot) { s.MazeCards[3].Location = nil }, ErrInvalidSnapshot},
		{"location used twice", func(s *Snapshot) { l := Loc(0, 0); s.MazeCards[2].Location = &l }, ErrInvalidSnapshot},
		{"bad rotation", func(s *Snapshot) { s.MazeCards[4].Rotation = 45 }, ErrInvalidRotation},
		{"bad out paths", func(s *Snapshot) { s.MazeCards[4].OutPaths = "Q" }, ErrInvalidOutPaths},
		{"player on unknown card", func(s *Snapshot) { s.Players[0].MazeCardID = 77 }, ErrInvalidSnapshot},
		{"player on two cards", func(s *Snapshot) {
			s.Players = append(s.Players, PlayerState{ID: 42, MazeCardID: 5})
		}, ErrInvalidSnapshot},
		{"player twice on one card", func(s *Snapshot) { s.Players[1].ID = 42 }, ErrInvalidSnapshot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, referenceSnapshot())
			s := referenceSnapshot()
			tc.mutate(s)

			err := b.Update(s)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 9, b.Leftover().ID(), "board must be left unchanged")
		})
	}
}

func TestMazeCardAtOutOfBounds(t *testing.T) {
	b := mustBoard(t, referenceSnapshot())
	for _, l := range []Location{Loc(-1, 0), Loc(0, 3), Loc(3, 3)} {
		_, err := b.MazeCardAt(l)
		assert.ErrorIs(t, err, ErrOutOfBounds, "location %s", l)
	}
}

func TestApplyShift(t *testing.T) {
	t.Run("top border shift pushes the column down", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())

		require.NoError(t, b.ApplyShift(Loc(0, 1), 270))

		assert.Equal(t, 7, b.Leftover().ID())
		assert.Equal(t, []int{9, 1, 4}, columnIDs(t, b, 1))
		inserted, err := b.MazeCardAt(Loc(0, 1))
		require.NoError(t, err)
		assert.Equal(t, 270, inserted.Rotation())

		disabled, ok := b.DisabledShiftLocation()
		require.True(t, ok)
		assert.Equal(t, Loc(2, 1), disabled)
	})

	t.Run("left border shift pushes the row right", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())

		require.NoError(t, b.ApplyShift(Loc(1, 0), 0))

		assert.Equal(t, 5, b.Leftover().ID())
		row := make([]int, 0, 3)
		for col := 0; col < 3; col++ {
			card, err := b.MazeCardAt(Loc(1, col))
			require.NoError(t, err)
			row = append(row, card.ID())
		}
		assert.Equal(t, []int{9, 3, 4}, row)
	})

	t.Run("shifting back at the disabled location fails", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		require.NoError(t, b.ApplyShift(Loc(1, 2), 90))

		opposite, _ := OppositeLocation(Loc(1, 2), 3)
		assert.False(t, b.IsShiftAllowed(opposite))
		err := b.ApplyShift(opposite, 0)
		assert.ErrorIs(t, err, ErrInvalidShift)
		assert.Equal(t, 3, b.Leftover().ID(), "failed shift must not change the board")
	})

	t.Run("initially disabled location is rejected", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		assert.ErrorIs(t, b.ApplyShift(Loc(2, 1), 0), ErrInvalidShift)
	})

	t.Run("non shift locations are rejected", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		assert.ErrorIs(t, b.ApplyShift(Loc(0, 0), 0), ErrInvalidShift)
		assert.ErrorIs(t, b.ApplyShift(Loc(1, 1), 0), ErrInvalidShift)
	})

	t.Run("invalid rotation is rejected", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		assert.ErrorIs(t, b.ApplyShift(Loc(0, 1), 45), ErrInvalidRotation)
		assert.Equal(t, 9, b.Leftover().ID())
	})

	t.Run("players on the pushed out card ride the inserted card", func(t *testing.T) {
		s := referenceSnapshot()
		s.Players = []PlayerState{{ID: 5, MazeCardID: 7}, {ID: 6, MazeCardID: 7}, {ID: 8, MazeCardID: 1}}
		b := mustBoard(t, s)

		require.NoError(t, b.ApplyShift(Loc(0, 1), 0))

		assert.Empty(t, b.Leftover().PlayerIDs())
		inserted, err := b.MazeCardAt(Loc(0, 1))
		require.NoError(t, err)
		assert.Equal(t, []int{5, 6}, inserted.PlayerIDs())

		moved, err := b.MazeCardAt(Loc(1, 1))
		require.NoError(t, err)
		assert.Equal(t, []int{8}, moved.PlayerIDs(), "players travel with their card")
	})

	t.Run("keeps the card ids a permutation", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		b, err := Generate(7, []int{1, 2}, rng)
		require.NoError(t, err)
		before := allIDs(b)

		for i := 0; i < 50; i++ {
			candidates := make([]Location, 0)
			for _, l := range ShiftLocations(7) {
				if b.IsShiftAllowed(l) {
					candidates = append(candidates, l)
				}
			}
			l := candidates[rng.Intn(len(candidates))]
			require.NoError(t, b.ApplyShift(l, rotations[rng.Intn(len(rotations))]))

			disabled, ok := b.DisabledShiftLocation()
			require.True(t, ok)
			opposite, _ := OppositeLocation(l, 7)
			assert.Equal(t, opposite, disabled)
			assert.Equal(t, before, allIDs(b))
		}
	})
}

func TestMovePlayer(t *testing.T) {
	t.Run("moves player between cards", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		require.NoError(t, b.MovePlayer(2, 5, 42))

		source, _ := b.MazeCard(2)
		target, _ := b.MazeCard(5)
		assert.Equal(t, []int{17}, source.PlayerIDs())
		assert.Equal(t, []int{42}, target.PlayerIDs())
	})

	t.Run("fails if player is not on source", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		err := b.MovePlayer(3, 5, 42)
		assert.ErrorIs(t, err, ErrInconsistentPlayerState)
		target, _ := b.MazeCard(5)
		assert.Empty(t, target.PlayerIDs())
	})

	t.Run("fails for unknown cards", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		err := b.MovePlayer(2, 100, 42)
		assert.ErrorIs(t, err, ErrInconsistentPlayerState)
		assert.ErrorIs(t, err, ErrUnknownMazeCard)
		source, _ := b.MazeCard(2)
		assert.Len(t, source.PlayerIDs(), 2)
	})

	t.Run("unknown player has no location", func(t *testing.T) {
		b := mustBoard(t, referenceSnapshot())
		_, err := b.PlayerLocation(1000)
		assert.ErrorIs(t, err, ErrInconsistentPlayerState)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := mustBoard(t, referenceSnapshot())
	require.NoError(t, b.ApplyShift(Loc(1, 0), 90))

	s := b.Snapshot()
	assert.Nil(t, s.MazeCards[0].Location)
	assert.Equal(t, 5, s.MazeCards[0].ID)
	assert.Len(t, s.MazeCards, 10)
	assert.NotContains(t, s.EnabledShiftLocations, Loc(1, 2))
	assert.Len(t, s.EnabledShiftLocations, 3)

	rebuilt := mustBoard(t, s)
	assert.Equal(t, s, rebuilt.Snapshot())
	disabled, ok := rebuilt.DisabledShiftLocation()
	require.True(t, ok)
	assert.Equal(t, Loc(1, 2), disabled)
}

func TestGenerate(t *testing.T) {
	t.Run("rejects invalid size", func(t *testing.T) {
		_, err := Generate(4, nil, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidMazeSize)
		_, err = Generate(1, nil, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidMazeSize)
	})

	t.Run("places players on start corners", func(t *testing.T) {
		b, err := Generate(7, []int{10, 11, 12, 13}, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		for i, playerID := range []int{10, 11, 12, 13} {
			l, err := b.PlayerLocation(playerID)
			require.NoError(t, err)
			assert.Equal(t, StartLocations(7)[i], l)
		}
		assert.Equal(t, 49, b.Leftover().ID())
		_, disabled := b.DisabledShiftLocation()
		assert.False(t, disabled)
	})

	t.Run("corners point into the maze", func(t *testing.T) {
		b, err := Generate(5, nil, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		corner, _ := b.MazeCardAt(Loc(0, 0))
		assert.Equal(t, "ES", corner.Openings().String())
		corner, _ = b.MazeCardAt(Loc(4, 4))
		assert.Equal(t, "NW", corner.Openings().String())
	})

	t.Run("fixed t-junctions point to the center", func(t *testing.T) {
		want := map[Location]int{Loc(0, 2): 90, Loc(2, 0): 0, Loc(2, 6): 180, Loc(6, 2): 270, Loc(2, 2): 0, Loc(4, 4): 180}
		for seed := int64(1); seed <= 5; seed++ {
			b, err := Generate(7, nil, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			for l, rotation := range want {
				card, err := b.MazeCardAt(l)
				require.NoError(t, err)
				assert.Equal(t, TJunction, card.OutPaths(), "%s seed %d", l, seed)
				assert.Equal(t, rotation, card.Rotation(), "%s seed %d", l, seed)
			}
		}
	})

	t.Run("center is a cross when fixed", func(t *testing.T) {
		b, err := Generate(5, nil, rand.New(rand.NewSource(2)))
		require.NoError(t, err)
		center, _ := b.MazeCardAt(Loc(2, 2))
		assert.Equal(t, Cross, center.OutPaths())
		edge, _ := b.MazeCardAt(Loc(0, 2))
		assert.Equal(t, "ESW", edge.Openings().String())
	})

	t.Run("keeps the card distribution", func(t *testing.T) {
		cases := map[int]map[string]int{
			3: {Corner: 7, Straight: 2, TJunction: 1},
			5: {Corner: 12, TJunction: 7, Straight: 6, Cross: 1},
			7: {Corner: 19, TJunction: 18, Straight: 13},
		}
		for n, want := range cases {
			b, err := Generate(n, nil, rand.New(rand.NewSource(int64(n))))
			require.NoError(t, err)
			got := make(map[string]int)
			for _, cs := range b.Snapshot().MazeCards {
				got[cs.OutPaths]++
			}
			assert.Equal(t, want, got, "size %d", n)
		}
	})
}

func columnIDs(t *testing.T, b *Board, col int) []int {
	t.Helper()
	ids := make([]int, 0, b.Size())
	for row := 0; row < b.Size(); row++ {
		card, err := b.MazeCardAt(Loc(row, col))
		require.NoError(t, err)
		ids = append(ids, card.ID())
	}
	return ids
}

func allIDs(b *Board) []int {
	ids := []int{b.Leftover().ID()}
	for row := range b.layout {
		ids = append(ids, b.layout[row]...)
	}
	sort.Ints(ids)
	return ids
}
