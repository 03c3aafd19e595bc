package service

import (
	"encoding/json"
	"fmt"

	"coachtrack/internal/storage"
)

const dismissedKeyPrefix = "dismissed:"

// PairKey builds the order-independent key for a coach pair.
func PairKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// Suppressions is one operator's persisted "not a duplicate" list, stored as a
// JSON array under a fixed key. Entries never expire; only Clear removes them.
type Suppressions struct {
	kv  storage.KVRepositoryInterface
	key string
}

func NewSuppressions(kv storage.KVRepositoryInterface, operator string) *Suppressions {
	if operator == "" {
		operator = "local"
	}
	return &Suppressions{kv: kv, key: dismissedKeyPrefix + operator}
}

func (s *Suppressions) List() (map[string]struct{}, error) {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("load dismissed pairs: %w", err)
	}
	out := make(map[string]struct{})
	if !ok || raw == "" {
		return out, nil
	}
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("decode dismissed pairs: %w", err)
	}
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out, nil
}

func (s *Suppressions) Add(a, b uint) error {
	set, err := s.List()
	if err != nil {
		return err
	}
	key := PairKey(a, b)
	if _, ok := set[key]; ok {
		return nil
	}
	keys := make([]string, 0, len(set)+1)
	for k := range set {
		keys = append(keys, k)
	}
	keys = append(keys, key)
	raw, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("encode dismissed pairs: %w", err)
	}
	if err := s.kv.Set(s.key, string(raw)); err != nil {
		return fmt.Errorf("save dismissed pairs: %w", err)
	}
	return nil
}

func (s *Suppressions) IsDismissed(a, b uint) (bool, error) {
	set, err := s.List()
	if err != nil {
		return false, err
	}
	_, ok := set[PairKey(a, b)]
	return ok, nil
}

// Clear empties the list; the caller regenerates candidates afterward.
func (s *Suppressions) Clear() error {
	if err := s.kv.Delete(s.key); err != nil {
		return fmt.Errorf("clear dismissed pairs: %w", err)
	}
	return nil
}
