package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deviceRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledpanel",
		Subsystem: "device",
		Name:      "requests_total",
		Help:      "Requests made to strip APIs",
	}, []string{"method", "endpoint", "result"})

	deviceBusy = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledpanel",
		Subsystem: "device",
		Name:      "busy_rejections_total",
		Help:      "POSTs rejected because another POST to the strip was still in flight",
	}, []string{"host"})

	sceneEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledpanel",
		Subsystem: "scene",
		Name:      "evaluations_total",
		Help:      "Command lists evaluated into a preview",
	})

	hueCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledpanel",
		Subsystem: "spectrum",
		Name:      "hue_lookups_total",
		Help:      "Device hue lookups split by cache result",
	}, []string{"result"})
)

func DeviceRequest(method string, endpoint string, result string) {
	deviceRequests.WithLabelValues(method, endpoint, result).Inc()
}

func DeviceBusy(host string) {
	deviceBusy.WithLabelValues(host).Inc()
}

func SceneEvaluated() {
	sceneEvaluations.Inc()
}

func HueCacheHit() {
	hueCache.WithLabelValues("hit").Inc()
}

func HueCacheMiss() {
	hueCache.WithLabelValues("miss").Inc()
}
