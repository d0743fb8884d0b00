package entity

import "encoding/json"

// ReactionType is one of the fixed sentiments a visitor can leave on a post.
type ReactionType string

const (
	ReactionHeart      ReactionType = "heart"
	ReactionInsightful ReactionType = "insightful"
	ReactionFunny      ReactionType = "funny"
	ReactionFire       ReactionType = "fire"
)

// ReactionTypes lists the reaction tags in display order.
var ReactionTypes = []ReactionType{ReactionHeart, ReactionInsightful, ReactionFunny, ReactionFire}

// IsValid reports whether r belongs to the closed set of reaction tags.
func (r ReactionType) IsValid() bool {
	switch r {
	case ReactionHeart, ReactionInsightful, ReactionFunny, ReactionFire:
		return true
	}
	return false
}

// ReactionCounts holds the aggregate count for each reaction tag on a post.
type ReactionCounts struct {
	Heart      int `bson:"heart" json:"heart"`
	Insightful int `bson:"insightful" json:"insightful"`
	Funny      int `bson:"funny" json:"funny"`
	Fire       int `bson:"fire" json:"fire"`
}

// Get returns the count for a tag. Unknown tags count as zero.
func (c ReactionCounts) Get(r ReactionType) int {
	switch r {
	case ReactionHeart:
		return c.Heart
	case ReactionInsightful:
		return c.Insightful
	case ReactionFunny:
		return c.Funny
	case ReactionFire:
		return c.Fire
	}
	return 0
}

// Add moves the count for a tag by delta. Unknown tags are ignored.
func (c *ReactionCounts) Add(r ReactionType, delta int) {
	switch r {
	case ReactionHeart:
		c.Heart += delta
	case ReactionInsightful:
		c.Insightful += delta
	case ReactionFunny:
		c.Funny += delta
	case ReactionFire:
		c.Fire += delta
	}
}

// Total is the sum over all four tags.
func (c ReactionCounts) Total() int {
	return c.Heart + c.Insightful + c.Funny + c.Fire
}

// LikedSet is the set of prompt ids the visitor has liked. Members keep
// insertion order so the persisted JSON array stays stable across writes.
type LikedSet struct {
	ids     []string
	members map[string]struct{}
}

// NewLikedSet builds a set from a list of ids, dropping duplicates and empty ids.
func NewLikedSet(ids ...string) *LikedSet {
	s := &LikedSet{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *LikedSet) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Add inserts id at the end. Adding an existing or empty id does nothing.
func (s *LikedSet) Add(id string) {
	if id == "" || s.Has(id) {
		return
	}
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *LikedSet) Remove(id string) {
	if !s.Has(id) {
		return
	}
	delete(s.members, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

func (s *LikedSet) Len() int { return len(s.ids) }

// IDs returns a copy of the members in insertion order.
func (s *LikedSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// MarshalJSON encodes the set as a JSON array of ids.
func (s *LikedSet) MarshalJSON() ([]byte, error) {
	if s == nil || len(s.ids) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ids)
}

// UnmarshalJSON decodes a JSON array of ids, collapsing duplicates.
func (s *LikedSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = *NewLikedSet(ids...)
	return nil
}

// ReactionMap maps a post id to the single reaction the visitor picked.
// It is persisted as a JSON object.
type ReactionMap map[string]ReactionType
