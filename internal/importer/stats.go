package importer

import "fmt"

// Stats accumulates counters and warnings for one pipeline run.
type Stats struct {
	Processed       int      `json:"processed"`
	OrdersCreated   int      `json:"orders_created"`
	OrdersUpdated   int      `json:"orders_updated"`
	ProductsCreated int      `json:"products_created"`
	ProductsUpdated int      `json:"products_updated"`
	Warnings        []string `json:"warnings"`
}

func (s *Stats) warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

func (s *Stats) warnf(format string, args ...interface{}) {
	s.warn(fmt.Sprintf(format, args...))
}
