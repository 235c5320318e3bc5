package sys

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

const MB = 1000.0 * 1000.0

type MemoryUsage struct {
	AllocMB     float64
	HeapInUseMB float64
	StackSysMB  float64
}

func ReadMemoryUsage() MemoryUsage {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	return MemoryUsage{
		AllocMB:     float64(memStats.Alloc) / MB,
		HeapInUseMB: float64(memStats.HeapInuse) / MB,
		StackSysMB:  float64(memStats.StackSys) / MB,
	}
}

// LogMemoryUsage writes the current memory usage at debug level. Reading
// the stats stops the world, so it is skipped when debug is off.
func LogMemoryUsage(logger *logrus.Entry, msg string) {
	if !logger.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	usage := ReadMemoryUsage()
	logger.WithFields(logrus.Fields{
		"alloc_mb": usage.AllocMB,
		"heap_mb":  usage.HeapInUseMB,
		"stack_mb": usage.StackSysMB,
	}).Debug(msg)
}
