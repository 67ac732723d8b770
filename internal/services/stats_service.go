package services

import (
	"github.com/max25782/server/internal/repositories"
)

// Placeholder identity for orders whose user record no longer resolves.
const (
	unknownUserID    = "unknown"
	unknownUserName  = "Unknown User"
	unknownUserEmail = "unknown@email.com"
)

// ProductStat is the aggregate view of one product across all orders.
// TotalWeight and TotalLength accumulate the CURRENT catalog measurement
// times quantity; this is intentionally different from the per-order resolved
// snapshot used at placement and on invoices.
type ProductStat struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TotalQuantity int      `json:"totalQuantity"`
	TotalOrders   int      `json:"totalOrders"`
	TotalWeight   float64  `json:"totalWeight"`
	TotalLength   float64  `json:"totalLength"`
	UniqueUsers   int      `json:"uniqueUsers"`
	Users         []string `json:"users"`
}

// UserProductBreakdown is one product's totals scoped to a single user.
// Weight and Length hold the last-seen catalog unit values.
type UserProductBreakdown struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Orders      int     `json:"orders"`
	Weight      float64 `json:"weight"`
	Length      float64 `json:"length"`
	TotalWeight float64 `json:"totalWeight"`
	TotalLength float64 `json:"totalLength"`
}

// UserProductStat is the per-user aggregate view.
type UserProductStat struct {
	UserID    string                 `json:"userId"`
	UserName  string                 `json:"userName"`
	UserEmail string                 `json:"userEmail"`
	Products  []UserProductBreakdown `json:"products"`
}

// StatsSummary counts the distinct entities touched by the rollup.
type StatsSummary struct {
	TotalProducts int `json:"totalProducts"`
	TotalUsers    int `json:"totalUsers"`
	TotalOrders   int `json:"totalOrders"`
	TotalItems    int `json:"totalItems"`
}

// StatsReport is the full admin statistics response.
type StatsReport struct {
	ProductStats     []ProductStat     `json:"productStats"`
	UserProductStats []UserProductStat `json:"userProductStats"`
	Summary          StatsSummary      `json:"summary"`
}

// StatsService recomputes order statistics from scratch on every call. There
// is no incremental maintenance and no caching; the endpoint is an infrequent
// administrative read.
type StatsService struct {
	orderRepo repositories.OrderRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(orderRepo repositories.OrderRepository) *StatsService {
	return &StatsService{
		orderRepo: orderRepo,
	}
}

type productAccumulator struct {
	stat      ProductStat
	usersSeen map[string]struct{}
}

type userAccumulator struct {
	stat         UserProductStat
	products     map[string]*UserProductBreakdown
	productOrder []string
}

// ProductStats rolls the full order history into per-product and per-user
// aggregates plus a summary. Items whose product no longer resolves are
// skipped entirely; orders whose user no longer resolves are bucketed under a
// synthetic unknown user. Accumulators are keyed by id and materialized in
// first-seen order so the output is deterministic.
func (s *StatsService) ProductStats() (*StatsReport, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	productAccs := make(map[string]*productAccumulator)
	userAccs := make(map[string]*userAccumulator)
	var productOrder, userOrder []string
	totalItems := 0

	for _, order := range orders {
		totalItems += len(order.Items)

		userID, userName, userEmail := unknownUserID, unknownUserName, unknownUserEmail
		if order.User != nil {
			userID, userName, userEmail = order.User.ID, order.User.Name, order.User.Email
		}

		userAcc, ok := userAccs[userID]
		if !ok {
			userAcc = &userAccumulator{
				stat: UserProductStat{
					UserID:    userID,
					UserName:  userName,
					UserEmail: userEmail,
				},
				products: make(map[string]*UserProductBreakdown),
			}
			userAccs[userID] = userAcc
			userOrder = append(userOrder, userID)
		}

		for _, item := range order.Items {
			if item.Product == nil {
				continue
			}
			productID := item.Product.ID
			productName := item.Product.Name
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			var weight, length float64
			if item.Product.Weight != nil {
				weight = *item.Product.Weight
			}
			if item.Product.Length != nil {
				length = *item.Product.Length
			}

			productAcc, ok := productAccs[productID]
			if !ok {
				productAcc = &productAccumulator{
					stat: ProductStat{
						ID:   productID,
						Name: productName,
					},
					usersSeen: make(map[string]struct{}),
				}
				productAccs[productID] = productAcc
				productOrder = append(productOrder, productID)
			}
			productAcc.stat.TotalQuantity += quantity
			productAcc.stat.TotalOrders++
			productAcc.stat.TotalWeight += weight * float64(quantity)
			productAcc.stat.TotalLength += length * float64(quantity)
			if _, seen := productAcc.usersSeen[userID]; !seen {
				productAcc.usersSeen[userID] = struct{}{}
				productAcc.stat.Users = append(productAcc.stat.Users, userID)
			}

			breakdown, ok := userAcc.products[productID]
			if !ok {
				breakdown = &UserProductBreakdown{
					ID:     productID,
					Name:   productName,
					Weight: weight,
					Length: length,
				}
				userAcc.products[productID] = breakdown
				userAcc.productOrder = append(userAcc.productOrder, productID)
			}
			breakdown.Quantity += quantity
			breakdown.Orders++
			breakdown.TotalWeight += weight * float64(quantity)
			breakdown.TotalLength += length * float64(quantity)
		}
	}

	productStats := make([]ProductStat, 0, len(productOrder))
	for _, id := range productOrder {
		acc := productAccs[id]
		acc.stat.UniqueUsers = len(acc.usersSeen)
		productStats = append(productStats, acc.stat)
	}

	userProductStats := make([]UserProductStat, 0, len(userOrder))
	for _, id := range userOrder {
		acc := userAccs[id]
		acc.stat.Products = make([]UserProductBreakdown, 0, len(acc.productOrder))
		for _, productID := range acc.productOrder {
			acc.stat.Products = append(acc.stat.Products, *acc.products[productID])
		}
		userProductStats = append(userProductStats, acc.stat)
	}

	return &StatsReport{
		ProductStats:     productStats,
		UserProductStats: userProductStats,
		Summary: StatsSummary{
			TotalProducts: len(productStats),
			TotalUsers:    len(userProductStats),
			TotalOrders:   len(orders),
			TotalItems:    totalItems,
		},
	}, nil
}
