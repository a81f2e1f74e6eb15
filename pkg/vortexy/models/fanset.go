package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FanSet maps fan names to fans, keeping first-insertion order.
//
// Putting a name that already exists replaces the stored fan but keeps its
// original position: the last write wins.
type FanSet struct {
	fans *orderedmap.OrderedMap[string, Fan]
}

// NewFanSet returns an empty FanSet.
func NewFanSet() *FanSet {
	return &FanSet{fans: orderedmap.New[string, Fan]()}
}

// Put stores fan under its name and reports whether a fan with the same name
// was replaced.
func (s *FanSet) Put(fan Fan) bool {
	_, replaced := s.fans.Set(fan.Name, fan)
	return replaced
}

// Get returns the fan stored under name.
func (s *FanSet) Get(name string) (Fan, bool) {
	return s.fans.Get(name)
}

// Len returns the number of fans.
func (s *FanSet) Len() int {
	if s == nil || s.fans == nil {
		return 0
	}
	return s.fans.Len()
}

// Names returns the fan names in order.
func (s *FanSet) Names() []string {
	names := make([]string, 0, s.Len())
	for _, fan := range s.Fans() {
		names = append(names, fan.Name)
	}
	return names
}

// Fans returns the fans in order.
func (s *FanSet) Fans() []Fan {
	if s.Len() == 0 {
		return nil
	}
	fans := make([]Fan, 0, s.fans.Len())
	for pair := s.fans.Oldest(); pair != nil; pair = pair.Next() {
		fans = append(fans, pair.Value)
	}
	return fans
}
