package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdatesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_bot_updates_received_total",
			Help: "Total number of Telegram updates received",
		},
		[]string{"source"},
	)

	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_bot_commands_handled_total",
			Help: "Total number of /sentiment commands by outcome",
		},
		[]string{"outcome"},
	)

	LookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_bot_lookup_failures_total",
			Help: "Total number of failed sentiment lookups by error kind",
		},
		[]string{"kind"},
	)

	SentimentLabels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_bot_sentiment_labels_total",
			Help: "Sentiment labels returned by the model",
		},
		[]string{"label"},
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_bot_lookup_duration_seconds",
			Help:    "Duration of the news + model lookup in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RepliesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_bot_replies_failed_total",
			Help: "Total number of replies Telegram did not accept",
		},
	)
)
