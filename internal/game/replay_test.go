package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sampleSnapshots(n int) []*TurnSnapshot {
	out := make([]*TurnSnapshot, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &TurnSnapshot{
			Turn:         i + 1,
			ActivePlayer: "A",
			PrizesA:      3,
			PrizesB:      3 - i%3,
			BenchA:       i % 4,
			BenchB:       2,
			LogLength:    (i + 1) * 3,
		})
	}
	return out
}

func TestReplayNavigation(t *testing.T) {
	replay := NewReplay("match-1")
	for _, s := range sampleSnapshots(3) {
		replay.Record(s)
	}
	require.Equal(t, 3, replay.Size())

	replay.Start()
	first := replay.Next()
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Turn)

	second := replay.Next()
	require.NotNil(t, second)
	assert.Equal(t, 2, second.Turn)

	back := replay.Previous()
	require.NotNil(t, back)
	assert.Equal(t, 2, back.Turn, "Previous returns the snapshot just stepped over")

	replay.Next()
	replay.Next()
	assert.Nil(t, replay.Next(), "Next returns nil past the end")

	replay.Start()
	assert.Nil(t, replay.Previous(), "Previous returns nil at the beginning")
}

func TestReplaySaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	replay := NewReplay("match-roundtrip")
	snapshots := sampleSnapshots(5)
	for _, s := range snapshots {
		replay.Record(s)
	}
	require.NoError(t, replay.SaveToFile(dir))

	loaded, err := LoadReplayFromFile(dir, "match-roundtrip")
	require.NoError(t, err)
	assert.Equal(t, "match-roundtrip", loaded.MatchID)
	require.Equal(t, len(snapshots), loaded.Size())
	for i, s := range snapshots {
		assert.Equal(t, *s, *loaded.Snapshots[i])
	}
}

func TestLoadReplayMissingFile(t *testing.T) {
	_, err := LoadReplayFromFile(t.TempDir(), "no-such-match")
	assert.Error(t, err)
}

func TestReplayRecorder(t *testing.T) {
	dir := t.TempDir()
	rec := NewReplayRecorder(zaptest.NewLogger(t), dir)

	for _, s := range sampleSnapshots(4) {
		rec.RecordTurn("match-2", s)
	}

	replay, ok := rec.GetReplay("match-2")
	require.True(t, ok)
	assert.Equal(t, 4, replay.Size())

	_, ok = rec.GetReplay("unknown")
	assert.False(t, ok)

	require.NoError(t, rec.SaveReplay("match-2"))
	_, ok = rec.GetReplay("match-2")
	assert.False(t, ok, "saving drops the replay from memory")

	loaded, err := rec.LoadReplay("match-2")
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Size())

	assert.Error(t, rec.SaveReplay("match-2"), "already flushed to disk")
}

func TestEngineRecordsTurnSnapshots(t *testing.T) {
	a := NewPlayer("A", simpleDeck("A", 20))
	b := NewPlayer("B", passiveDeck("B", 20))

	e := newTestEngine(t, a, b, 5)
	rec := NewReplayRecorder(zaptest.NewLogger(t), t.TempDir())
	e.SetRecorder(rec)

	res, err := e.SimulateGame(GreedyPolicy{}, GreedyPolicy{}, 40)
	require.NoError(t, err)

	replay, ok := rec.GetReplay(e.MatchID())
	require.True(t, ok)
	assert.NotZero(t, replay.Size())
	assert.LessOrEqual(t, replay.Size(), res.Turns)

	last := replay.Snapshots[replay.Size()-1]
	assert.Equal(t, res.PrizesLeftA, last.PrizesA)
	assert.Equal(t, res.PrizesLeftB, last.PrizesB)
}
