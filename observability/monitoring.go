package observability

import (
	"chat-edit/domain"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const recentEditsSize = 20

// RecentEditInfo is one edit attempt as seen by the HTTP boundary
type RecentEditInfo struct {
	RoomID    domain.RoomID    `json:"room_id"`
	MessageID domain.MessageID `json:"mid"`
	UID       string           `json:"uid"`
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
}

// MonitoringStats aggregates the counters exposed on /stats
type MonitoringStats struct {
	EditsApplied    uint64           `json:"edits_applied"`
	EditsRejected   uint64           `json:"edits_rejected"`
	EventsDelivered uint64           `json:"events_delivered"`
	EventsDropped   uint64           `json:"events_dropped"`
	OnlineUsers     int              `json:"online_users"`
	AllocMemMb      uint64           `json:"alloc_mem_mb"`
	NumGC           uint32           `json:"num_gc"`
	RecentEdits     []RecentEditInfo `json:"recent_edits"`
}

// MonitoringManager counts edits and deliveries.
// A nil *MonitoringManager is valid and records nothing.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	recentEdits []RecentEditInfo

	editsApplied    uint64
	editsRejected   uint64
	eventsDelivered uint64
	eventsDropped   uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:         log,
		recentEdits: make([]RecentEditInfo, 0, recentEditsSize),
	}
}

func (mm *MonitoringManager) IncrDelivered() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.eventsDelivered, 1)
}

func (mm *MonitoringManager) IncrDropped() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.eventsDropped, 1)
}

// AddEdit records an edit attempt. status is "ok" or the error key returned to the client.
func (mm *MonitoringManager) AddEdit(roomID domain.RoomID, mid domain.MessageID, uid, status string) {
	if mm == nil {
		return
	}
	if status == "ok" {
		atomic.AddUint64(&mm.editsApplied, 1)
	} else {
		atomic.AddUint64(&mm.editsRejected, 1)
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()

	edit := RecentEditInfo{
		RoomID:    roomID,
		MessageID: mid,
		UID:       uid,
		Status:    status,
		Timestamp: time.Now().Format("15:04:05"),
	}
	mm.recentEdits = append([]RecentEditInfo{edit}, mm.recentEdits...)
	if len(mm.recentEdits) > recentEditsSize {
		mm.recentEdits = mm.recentEdits[:recentEditsSize]
	}
}

// GetLatest returns the current counters along with Go memory stats.
func (mm *MonitoringManager) GetLatest(online int) MonitoringStats {
	stats := MonitoringStats{OnlineUsers: online, RecentEdits: []RecentEditInfo{}}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC

	if mm == nil {
		return stats
	}
	stats.EditsApplied = atomic.LoadUint64(&mm.editsApplied)
	stats.EditsRejected = atomic.LoadUint64(&mm.editsRejected)
	stats.EventsDelivered = atomic.LoadUint64(&mm.eventsDelivered)
	stats.EventsDropped = atomic.LoadUint64(&mm.eventsDropped)

	mm.mu.RLock()
	stats.RecentEdits = append(stats.RecentEdits, mm.recentEdits...)
	mm.mu.RUnlock()

	mm.log.Debug("Stats requested",
		"edits_applied", stats.EditsApplied,
		"edits_rejected", stats.EditsRejected,
		"events_dropped", stats.EventsDropped,
	)
	return stats
}
