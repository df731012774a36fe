package types

import (
	"errors"

	sf "github.com/tinode/snowflake"
)

// IdGenerator holds the snowflake sequence used for message IDs.
// Snowflake IDs are time-ordered so message IDs grow within a single worker.
type IdGenerator struct {
	seq *sf.SnowFlake
}

// Init initialises the ID generator.
func (ig *IdGenerator) Init(workerID uint) error {
	if workerID > 1023 {
		return errors.New("invalid worker ID")
	}

	var err error
	if ig.seq == nil {
		ig.seq, err = sf.NewSnowFlake(uint32(workerID))
	}
	return err
}

// Get generates a unique positive ID. Returns 0 on failure.
func (ig *IdGenerator) Get() int64 {
	if ig.seq == nil {
		return 0
	}
	id, err := ig.seq.Next()
	if err != nil {
		return 0
	}
	// Snowflake keeps the top bit clear.
	return int64(id)
}
