// Package relations parses the ?relations= query parameter used by list and
// detail endpoints: a comma-separated set of related-entity names, where a
// ".count" suffix requests the _count aggregate instead of the embedded rows.
package relations

import "strings"

type Set struct {
	expand map[string]bool
	counts map[string]bool
}

// Parse splits "user,operating_hour,reservation.count" into a Set.
// Empty names and unknown shapes are dropped silently.
func Parse(raw string) Set {
	s := Set{
		expand: make(map[string]bool),
		counts: make(map[string]bool),
	}
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if trimmed, ok := strings.CutSuffix(name, ".count"); ok {
			if trimmed != "" {
				s.counts[trimmed] = true
			}
			continue
		}
		s.expand[name] = true
	}
	return s
}

// Of builds a Set that expands the given entity names (no counts). Detail
// views use it to expand everything the actor can read.
func Of(names ...string) Set {
	s := Set{
		expand: make(map[string]bool),
		counts: make(map[string]bool),
	}
	for _, n := range names {
		s.expand[n] = true
	}
	return s
}

func (s Set) Has(entity string) bool   { return s.expand[entity] }
func (s Set) Count(entity string) bool { return s.counts[entity] }
func (s Set) IsEmpty() bool            { return len(s.expand) == 0 && len(s.counts) == 0 }

// Filter returns a copy keeping only relations whose entity passes the
// predicate. Expansion and counts are both gated: a relation the actor
// cannot read is omitted entirely.
func (s Set) Filter(allowed func(entity string) bool) Set {
	out := Set{
		expand: make(map[string]bool),
		counts: make(map[string]bool),
	}
	for name := range s.expand {
		if allowed(name) {
			out.expand[name] = true
		}
	}
	for name := range s.counts {
		if allowed(name) {
			out.counts[name] = true
		}
	}
	return out
}
