// Package metrics exposes the bot's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	botCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maxis_commands_total",
			Help: "Total number of interactions handled labeled by command and status",
		},
		[]string{"command", "status"},
	)
	commandDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maxis_command_duration_seconds",
			Help:    "Duration of command handlers in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
	currencyMovedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maxis_currency_moved_total",
			Help: "Coins credited or debited by the ledger",
		},
		[]string{"direction"},
	)
	persistenceSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maxis_persistence_saves_total",
			Help: "Document saves performed by the write-behind queue labeled by document and result",
		},
		[]string{"document", "result"},
	)
	persistenceQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "maxis_persistence_queue_depth",
			Help: "Documents waiting to be written",
		},
	)
	guildCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "maxis_guilds",
			Help: "Guilds the bot is currently in",
		},
	)
)

// RecordCommand increments command counters and records duration.
func RecordCommand(command, status string, duration time.Duration) {
	if command == "" {
		command = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	botCommandsTotal.WithLabelValues(command, status).Inc()
	commandDurationSeconds.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordCredit adds a ledger credit.
func RecordCredit(amount int64) {
	currencyMovedTotal.WithLabelValues("credit").Add(float64(amount))
}

// RecordDebit adds a ledger debit.
func RecordDebit(amount int64) {
	currencyMovedTotal.WithLabelValues("debit").Add(float64(amount))
}

// RecordSave tracks a write-behind flush.
func RecordSave(document string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	persistenceSavesTotal.WithLabelValues(document, result).Inc()
}

// SetQueueDepth updates the pending document gauge.
func SetQueueDepth(depth int) {
	persistenceQueueDepth.Set(float64(depth))
}

// SetGuildCount updates the guild gauge.
func SetGuildCount(count int) {
	guildCount.Set(float64(count))
}
