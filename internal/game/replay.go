package game

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TurnSnapshot is the per-turn state a replay stores: enough to reconstruct
// the flow of a match alongside its narrative log, without retaining live
// engine state.
type TurnSnapshot struct {
	Turn         int
	ActivePlayer string
	PrizesA      int
	PrizesB      int
	BenchA       int
	BenchB       int
	LogLength    int
}

// Replay is a recorded match: sequential turn snapshots with a playback
// cursor.
type Replay struct {
	MatchID      string
	Snapshots    []*TurnSnapshot
	CurrentIndex int
	mu           sync.RWMutex
}

// NewReplay creates an empty replay for a match.
func NewReplay(matchID string) *Replay {
	return &Replay{
		MatchID:   matchID,
		Snapshots: make([]*TurnSnapshot, 0),
	}
}

// Record appends a turn snapshot.
func (r *Replay) Record(snapshot *TurnSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Snapshots = append(r.Snapshots, snapshot)
}

// Start resets playback to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CurrentIndex = 0
}

// Next advances playback and returns the next snapshot, or nil at the end.
func (r *Replay) Next() *TurnSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex < len(r.Snapshots) {
		s := r.Snapshots[r.CurrentIndex]
		r.CurrentIndex++
		return s
	}
	return nil
}

// Previous steps playback back and returns that snapshot, or nil at the
// beginning.
func (r *Replay) Previous() *TurnSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return r.Snapshots[r.CurrentIndex]
	}
	return nil
}

// Size returns the number of recorded snapshots.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Snapshots)
}

// replayMetadata describes a saved replay file.
type replayMetadata struct {
	MatchID       string
	Timestamp     time.Time
	Version       int
	SnapshotCount int
}

// SaveToFile writes the replay to a gzipped gob file under directory.
func (r *Replay) SaveToFile(directory string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", r.MatchID))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := gob.NewEncoder(gzipWriter)
	metadata := replayMetadata{
		MatchID:       r.MatchID,
		Timestamp:     time.Now(),
		Version:       1,
		SnapshotCount: len(r.Snapshots),
	}
	if err := encoder.Encode(&metadata); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	for i, s := range r.Snapshots {
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to encode snapshot %d: %w", i, err)
		}
	}

	return nil
}

// LoadReplayFromFile loads a replay previously saved with SaveToFile.
func LoadReplayFromFile(directory, matchID string) (*Replay, error) {
	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", matchID))

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	decoder := gob.NewDecoder(gzipReader)
	var metadata replayMetadata
	if err := decoder.Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if metadata.Version != 1 {
		return nil, fmt.Errorf("unsupported replay version: %d", metadata.Version)
	}

	replay := NewReplay(metadata.MatchID)
	for i := 0; i < metadata.SnapshotCount; i++ {
		var s TurnSnapshot
		if err := decoder.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %d: %w", i, err)
		}
		replay.Snapshots = append(replay.Snapshots, &s)
	}

	return replay, nil
}

// ReplayRecorder collects replays for matches by ID. Engines call RecordTurn
// at every turn boundary; drivers decide when to save to disk.
type ReplayRecorder struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	replays map[string]*Replay
	saveDir string
}

// NewReplayRecorder creates a recorder saving into saveDir.
func NewReplayRecorder(logger *zap.Logger, saveDir string) *ReplayRecorder {
	return &ReplayRecorder{
		logger:  logger,
		replays: make(map[string]*Replay),
		saveDir: saveDir,
	}
}

// RecordTurn appends a snapshot to the match's replay, creating it on first
// use.
func (rr *ReplayRecorder) RecordTurn(matchID string, snapshot *TurnSnapshot) {
	rr.mu.Lock()
	replay, ok := rr.replays[matchID]
	if !ok {
		replay = NewReplay(matchID)
		rr.replays[matchID] = replay
	}
	rr.mu.Unlock()

	replay.Record(snapshot)

	if rr.logger != nil {
		rr.logger.Debug("recorded turn snapshot",
			zap.String("match_id", matchID),
			zap.Int("snapshot_count", replay.Size()),
		)
	}
}

// GetReplay returns the replay recorded for a match.
func (rr *ReplayRecorder) GetReplay(matchID string) (*Replay, bool) {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	replay, ok := rr.replays[matchID]
	return replay, ok
}

// SaveReplay writes a match's replay to disk and drops it from memory.
func (rr *ReplayRecorder) SaveReplay(matchID string) error {
	rr.mu.Lock()
	replay, ok := rr.replays[matchID]
	if !ok {
		rr.mu.Unlock()
		return fmt.Errorf("no replay found for match %s", matchID)
	}
	delete(rr.replays, matchID)
	rr.mu.Unlock()

	if err := replay.SaveToFile(rr.saveDir); err != nil {
		return fmt.Errorf("failed to save replay: %w", err)
	}

	if rr.logger != nil {
		rr.logger.Info("saved replay to disk",
			zap.String("match_id", matchID),
			zap.Int("snapshot_count", replay.Size()),
			zap.String("directory", rr.saveDir),
		)
	}
	return nil
}

// LoadReplay loads a match's replay from disk.
func (rr *ReplayRecorder) LoadReplay(matchID string) (*Replay, error) {
	replay, err := LoadReplayFromFile(rr.saveDir, matchID)
	if err != nil {
		return nil, err
	}
	if rr.logger != nil {
		rr.logger.Info("loaded replay from disk",
			zap.String("match_id", matchID),
			zap.Int("snapshot_count", replay.Size()),
		)
	}
	return replay, nil
}
