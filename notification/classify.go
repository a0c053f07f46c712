package notification

import (
	"sort"

	"github.com/theoremus-urban-solutions/siri-relay/siri"
	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

// DefaultExcludedTypes are the notification types never forwarded.
var DefaultExcludedTypes = []string{siri.HeartbeatNotification}

// Classifier forwards every record except those holding an excluded notification type.
type Classifier struct {
	excluded map[string]struct{}
}

// NewClassifier returns a classifier excluding DefaultExcludedTypes plus extra.
func NewClassifier(extra ...string) *Classifier {
	c := &Classifier{excluded: make(map[string]struct{}, len(DefaultExcludedTypes)+len(extra))}
	for _, name := range DefaultExcludedTypes {
		c.excluded[name] = struct{}{}
	}
	for _, name := range extra {
		if name != "" {
			c.excluded[name] = struct{}{}
		}
	}
	return c
}

// Allow reports whether rec should be forwarded.
func (c *Classifier) Allow(rec *xmltree.Tree) bool {
	for name := range c.excluded {
		if rec.Has(name) {
			return false
		}
	}
	return true
}

// Excluded lists the excluded notification types in sorted order.
func (c *Classifier) Excluded() []string {
	out := make([]string, 0, len(c.excluded))
	for name := range c.excluded {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
