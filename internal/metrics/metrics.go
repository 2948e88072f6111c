package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seller_registrations_total",
		Help: "Total number of completed seller registrations",
	})

	RegistrationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seller_registration_failures_total",
		Help: "Total number of rejected registrations",
	}, []string{"reason"})

	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seller_logins_total",
		Help: "Total number of successful logins",
	})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Total number of products created",
	})

	ProductsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "Total number of products updated",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "Total number of products deleted",
	})

	CatalogViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_views_total",
		Help: "Total number of public catalog page views",
	})

	CatalogMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_misses_total",
		Help: "Total number of catalog lookups for unknown usernames",
	})
)
