package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StepRecord is one recorded tick: the snapshot plus the wall-clock moment
// it was taken, so replays can be paced.
type StepRecord struct {
	At       time.Time `json:"at"`
	Snapshot Snapshot  `json:"snapshot"`
}

// Recorder logs session snapshots to a jsonl file asynchronously so the
// game loop never blocks on disk.
type Recorder struct {
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

// NewRecorder creates a recorder writing to dir. The filename carries a
// fresh session ID and a timestamp: session_{id}_{unix}.jsonl.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}

	name := fmt.Sprintf("session_%s_%d.jsonl", uuid.NewString(), time.Now().Unix())
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}

	r := &Recorder{
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, 1000),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the record file location.
func (r *Recorder) Path() string {
	return r.file.Name()
}

// Record queues a snapshot. Non-blocking: when the buffer is full the
// frame is dropped rather than stalling the game loop.
func (r *Recorder) Record(snap Snapshot) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	select {
	case r.recordChan <- StepRecord{At: time.Now(), Snapshot: snap}:
	default:
		// buffer full, drop the frame
	}
}

// Close flushes pending records and closes the file.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.recordChan)
	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	enc := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := enc.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "recorder: dropping frame: %v\n", err)
		}
	}
	r.writer.Flush()
}

// ReadRecords loads a recorded session back from disk, in order.
func ReadRecords(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	var records []StepRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var rec StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}
