package services

import (
	"parana/internal/repos"
)

type HistoryService struct {
	Orders *repos.OrderRepo
}

func NewHistoryService(orders *repos.OrderRepo) *HistoryService {
	return &HistoryService{Orders: orders}
}

// History is a read-only projection; most recent order first.
func (s *HistoryService) History(shopperID string) ([]repos.HistoryRow, error) {
	return s.Orders.History(shopperID)
}
