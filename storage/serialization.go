// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/poiesic/keyfit/core"
)

// MarshalPartition serializes a Partition to bytes.
func MarshalPartition(p core.Partition) []byte {
	buf := make([]byte, core.PartitionMUS.Size(p))
	core.PartitionMUS.Marshal(p, buf)
	return buf
}

// UnmarshalPartition deserializes a Partition from bytes.
func UnmarshalPartition(data []byte) (core.Partition, error) {
	p, _, err := core.PartitionMUS.Unmarshal(data)
	return p, err
}

// MarshalSearchResult serializes a SearchResult to bytes.
func MarshalSearchResult(result *core.SearchResult) []byte {
	buf := make([]byte, core.SearchResultMUS.Size(*result))
	core.SearchResultMUS.Marshal(*result, buf)
	return buf
}

// UnmarshalSearchResult deserializes a SearchResult from bytes.
func UnmarshalSearchResult(data []byte) (*core.SearchResult, error) {
	result, _, err := core.SearchResultMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	buf := make([]byte, core.CheckpointMUS.Size(*checkpoint))
	core.CheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.Checkpoint, error) {
	checkpoint, _, err := core.CheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}
