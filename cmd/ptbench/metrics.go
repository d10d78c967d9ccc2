package main

import (
	"github.com/sirupsen/logrus"

	"github.com/cs-au-dk/ptds/internal/randkey"
	"github.com/cs-au-dk/ptds/pts"
)

func runTask(logger *logrus.Logger) {
	cache := pts.NewPersistentPointsToCache[randkey.Data](randkey.DataHasher)
	s := newStore(opts.Store, cache)
	w := buildWorkload()

	logger.Infof("running store=%s keys=%d data=%d density=%d seed=%d",
		opts.Store, opts.NumKeys, opts.NumData, opts.Density, opts.Seed)

	runWorkload(logger, s, w)

	sum, total := s.TopN(opts.TopN)
	inUse := s.InUsePointsToSets()

	logger.Infof("top-%d popularity sum=%d out of %d populated keys", opts.TopN, sum, total)
	logger.Infof("%d distinct points-to sets in use (cache holds %d total)", inUse, cache.Len())
}
