package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/stats"
)

type StatsController struct {
	store    ProgressStore
	pusher   StatsPusher
	enqueuer StatsEnqueuer
	now      func() time.Time
}

// NewStatsController creates the controller. The enqueuer may be nil, in
// which case pushes run inline.
func NewStatsController(store ProgressStore, pusher StatsPusher, enqueuer StatsEnqueuer) *StatsController {
	return &StatsController{store: store, pusher: pusher, enqueuer: enqueuer, now: time.Now}
}

// StatsResponse is the aggregated statistics with derived goals.
type StatsResponse struct {
	entities.StatsRecord
	CompletionPercentage int  `json:"completionPercentage"`
	NextMilestone        *int `json:"nextMilestone,omitempty"`
}

// GetStats handles GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	userID := GetUserID(c)
	tracked := sc.store.LoadProgress(c.Request.Context(), userID)

	records := make([]entities.ProgressRecord, 0, len(tracked))
	for _, t := range tracked {
		records = append(records, t.ProgressRecord)
	}

	summary := stats.Aggregate(userID, records, sc.now())
	resp := StatsResponse{
		StatsRecord:          summary,
		CompletionPercentage: stats.CompletionPercentage(summary.TotalVersesRead),
	}
	if next, ok := stats.NextMilestone(summary.ReadingStreak); ok {
		resp.NextMilestone = &next
	}
	c.JSON(http.StatusOK, resp)
}

// PushStats handles POST /api/stats/push
func (sc *StatsController) PushStats(c *gin.Context) {
	userID := GetUserID(c)

	if sc.enqueuer != nil {
		ids, err := sc.enqueuer.EnqueuePushStats(0, userID)
		if err != nil {
			respondInternalError(c, err, "enqueue stats push")
			return
		}
		respondAccepted(c, "stats push enqueued", gin.H{"task_ids": ids})
		return
	}

	saved, err := sc.pusher.Push(c.Request.Context(), userID)
	if err != nil {
		respondUpstreamError(c, err, "progress backend")
		return
	}
	c.JSON(http.StatusOK, saved)
}
