package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketgo/base/log"
)

const (
	// rate to pass metrics to the statsd agent. 1 means always
	rate = 1
	// buffer this many metrics before flushing to the agent
	bufferMetrics = 10
)

var (
	initOnce sync.Once
	client   *statsd.Client
)

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		log.Log().Info("datadog_host not set, metrics disabled")
		return
	}
	addr := fmt.Sprintf("%s:8125", host)
	c, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("failed to init statsd client")
		return
	}
	client = c
}

// Service is a namespaced metrics sink
type Service struct {
	prefix string
}

// StopWatch measures elapsed time of one section, finished by End
type StopWatch struct {
	svc   *Service
	key   string
	tags  []string
	start time.Time
}

// New creates a metrics service whose keys are prefixed with name
func New(name string) *Service {
	initOnce.Do(initClient)
	return &Service{prefix: name + "."}
}

// BumpCount increments key by val. Tags come in key/value pairs.
func (s *Service) BumpCount(key string, val float64, tagPairs ...string) {
	if client == nil {
		return
	}
	client.Count(s.prefix+key, int64(val), makeTags(tagPairs), rate)
}

// BumpAvg records a gauge value for key
func (s *Service) BumpAvg(key string, val float64, tagPairs ...string) {
	if client == nil {
		return
	}
	client.Gauge(s.prefix+key, val, makeTags(tagPairs), rate)
}

// BumpTime starts a stopwatch for key, reported when End is called
func (s *Service) BumpTime(key string, tagPairs ...string) *StopWatch {
	return &StopWatch{
		svc:   s,
		key:   key,
		tags:  makeTags(tagPairs),
		start: time.Now(),
	}
}

// End reports the elapsed time of the stopwatch
func (w *StopWatch) End() {
	if client == nil {
		return
	}
	client.Timing(w.svc.prefix+w.key, time.Since(w.start), w.tags, rate)
}

func makeTags(pairs []string) []string {
	tags := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		tags = append(tags, pairs[i]+":"+pairs[i+1])
	}
	return tags
}
