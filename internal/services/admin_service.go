package services

import (
	"fmt"
	"math"

	"catalogo/internal/domain"
)

// Narrow read contracts for the admin overview.
type SellerLister interface {
	ListAll() ([]domain.Seller, error)
}

type ProductCounter interface {
	CountsBySeller() (map[string]int, error)
}

type AdminService struct {
	Sellers  SellerLister
	Products ProductCounter
}

// SellerRow is one line of the admin table.
type SellerRow struct {
	Seller       domain.Seller
	ProductCount int
}

type AdminStats struct {
	TotalSellers        int
	TotalProducts       int
	SellersWithProducts int
	SellersWithPhone    int
	PctWithProducts     int // rounded
	PctWithPhone        int // rounded
	AvgProductsPer      int // rounded
}

type AdminOverview struct {
	Rows  []SellerRow
	Stats AdminStats
}

// Overview loads every seller plus grouped product counts and aggregates
// them. Two reads; the math is pure.
func (s *AdminService) Overview() (*AdminOverview, error) {
	sellers, err := s.Sellers.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	counts, err := s.Products.CountsBySeller()
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	rows := make([]SellerRow, 0, len(sellers))
	for _, u := range sellers {
		rows = append(rows, SellerRow{Seller: u, ProductCount: counts[u.ID]})
	}
	return &AdminOverview{Rows: rows, Stats: ComputeStats(rows)}, nil
}

// ComputeStats aggregates already-fetched rows.
func ComputeStats(rows []SellerRow) AdminStats {
	st := AdminStats{TotalSellers: len(rows)}
	for _, r := range rows {
		st.TotalProducts += r.ProductCount
		if r.ProductCount > 0 {
			st.SellersWithProducts++
		}
		if r.Seller.Phone != "" {
			st.SellersWithPhone++
		}
	}
	if st.TotalSellers > 0 {
		st.PctWithProducts = roundPct(st.SellersWithProducts, st.TotalSellers)
		st.PctWithPhone = roundPct(st.SellersWithPhone, st.TotalSellers)
		st.AvgProductsPer = int(math.Round(float64(st.TotalProducts) / float64(st.TotalSellers)))
	}
	return st
}

func roundPct(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
