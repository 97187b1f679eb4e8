package component

import "github.com/zyedidia/generic/mapset"

// TrophyCounter tracks which pickups have ever been collected.
type TrophyCounter struct {
	Seen  mapset.Set[string]
	Total int
}

// Collect records id and reports whether it was new.
func (c *TrophyCounter) Collect(id string) bool {
	if c.Seen.Has(id) {
		return false
	}
	c.Seen.Put(id)
	return true
}

func (c *TrophyCounter) Collected() int {
	return c.Seen.Size()
}

var TrophyCounterComponent = NewComponent[TrophyCounter]()
