package admindashboard

import (
	"context"
	"time"
)

var QueryTimeoutDuration = time.Second * 5

type Stats struct {
	TotalListings    int64 `json:"total_listings"`
	VerifiedPartners int64 `json:"verified_partners"`
	Visitors         int64 `json:"visitors"`
	PendingPartners  int64 `json:"pending_partners"`
}

type Store interface {
	GetStats(ctx context.Context) (*Stats, error)
}
