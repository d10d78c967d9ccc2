package pts

import (
	"log"

	"github.com/pkg/errors"
)

// The two fatal paths named in spec.md §7 are programmer errors, not
// recoverable conditions: a caller asking for reverse points-to on a store
// that doesn't track it, or an ID minted by a different cache instance
// reaching this one. Both abort, matching the teacher's own convention of
// log.Fatalf/log.Panicf for invariant violations (see e.g.
// analysis/lattice/map-base.go's "BaseMap did not contain an Element").

func reverseUnsupported(store, op string) {
	log.Panicf("%s.%s: constructed without reverse points-to support", store, op)
}

func fatalf(format string, args ...interface{}) {
	log.Panic(errors.Wrapf(errors.New("pts: invariant violated"), format, args...))
}
