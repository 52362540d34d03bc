package storage

import "context"

// OrderStats is a single global snapshot; no time-windowing, no breakdowns.
type OrderStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int64   `json:"pendingOrders"`
}

// GetOrderStats aggregates order count, summed revenue and pending-order
// count in one query.
func (s *Storage) GetOrderStats(ctx context.Context) (*OrderStats, error) {
	var stats OrderStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)                                              AS total_orders,
		       COALESCE(SUM(total_amount), 0)                        AS total_revenue,
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_orders
		FROM orders
	`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
