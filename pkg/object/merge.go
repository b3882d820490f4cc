package object

import "github.com/go-drift/declare/pkg/errors"

// Merge copies every own property of each source onto dst and returns dst.
//
// Sources are applied left to right, so later sources win on name
// collisions. Descriptors are copied in full (accessors, non-enumerable
// members and flags included) and forced configurable so that a later merge
// can override them. A member that dst already holds as non-configurable is
// skipped; the skip is reported as an errors.SkipEvent and the remaining
// members still copy. Nil sources are ignored.
func Merge(dst *Object, srcs ...*Object) *Object {
	if dst == nil {
		return nil
	}
	for _, src := range srcs {
		if src == nil {
			continue
		}
		for _, key := range src.OwnKeys() {
			if cur, ok := dst.props[key]; ok && !cur.Configurable {
				errors.ReportSkip(&errors.SkipEvent{Member: key, Destination: dst.String()})
				continue
			}
			p := *src.props[key]
			p.Configurable = true
			dst.define(key, p)
		}
	}
	return dst
}
