package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Stage names the pipeline stage an entry belongs to. Every key built by
// [DefaultKeyer] starts with its stage, which lets the file cache group
// entries on disk and clear one stage at a time.
type Stage string

// Cached stages. Task lists are never cached: they are the live input and
// blocked state must follow status changes in the store immediately.
const (
	StageGraph    Stage = "graph"
	StageArtifact Stage = "artifact"
)

// Stages lists every cached stage in pipeline order.
func Stages() []Stage { return []Stage{StageGraph, StageArtifact} }

// ParseStage validates a stage name.
func ParseStage(s string) (Stage, error) {
	for _, st := range Stages() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown cache stage %q (want graph or artifact)", s)
}

// StageOf returns the stage a key was built for. Scope prefixes added by
// [ScopedKeyer] are skipped. Keys not built by a Keyer report false.
func StageOf(key string) (Stage, bool) {
	i := strings.LastIndexByte(key, ':')
	if i < 0 {
		return "", false
	}
	head := key[:i]
	st, err := ParseStage(head[strings.LastIndexByte(head, ':')+1:])
	return st, err == nil
}

// stageKey builds "stage:sha256(json(parts))". The full digest is kept so
// distinct task lists never share an entry.
func stageKey(stage Stage, parts ...any) string {
	data, _ := json.Marshal(parts)
	return string(stage) + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data. The pipeline uses it as the
// content hash of task lists and computed graphs.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
