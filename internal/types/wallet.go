// Package types contains the wire types shared by the HTTP service and the
// CLI commands.
package types

import (
	"time"

	"github.com/injective-tools/injective-address-api/pkg/cache"
	"github.com/injective-tools/injective-address-api/pkg/wallet"
)

// BatchConversionRequest is the request body for batch conversion.
type BatchConversionRequest struct {
	Addresses []string `json:"addresses"`
}

// BatchConversionResponse is the result of a batch address conversion.
// Total counts successful conversions only.
type BatchConversionResponse struct {
	Conversions []wallet.ConversionResult `json:"conversions"`
	Total       int                       `json:"total"`
	Errors      []wallet.BatchError       `json:"errors"`
}

// HealthResponse is the basic health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// DetailedHealthResponse adds uptime and cache statistics to the health
// check.
type DetailedHealthResponse struct {
	HealthResponse
	Uptime string      `json:"uptime"`
	Cache  cache.Stats `json:"cache"`
}

// ErrorResponse carries a caller-facing validation error message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
