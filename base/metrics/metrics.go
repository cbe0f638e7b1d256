/*Package metrics wraps datadog-go to facilitate metric recording
Naming convention of metrics:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"github.com/spf13/viper"

	"github.com/hinatamarket/goapi/base/env"
)

// TagValueNA is used for tags whose values are not available.
const TagValueNA = "n/a"

// Ender finishes a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides the metric recording interface
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is a functional parameter for metrics options
type Option func(*opt)

type opt struct {
	withPodName bool
}

// WithoutPodName drops the pod tag. Pod names produce a lot of custom
// metrics; disable the tag where grouping by pod is unnecessary.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	// using "host:" removes all tags associated with host
	// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
	ddTags := []string{
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics sends bumps to the datadog agent
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, ddRate, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, ddRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, ddRate, tags...)
}

// BumpTime starts a timer for the given key; call End() on the returned
// value to record the elapsed time:
//
//	defer met.BumpTime("my.function.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return mt.datadog.BumpTime(mt.pkgName+`.`+key, ddRate, tags...)
}
