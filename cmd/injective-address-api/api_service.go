package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/injective-tools/injective-address-api/internal/types"
	"github.com/injective-tools/injective-address-api/pkg/cache"
	"github.com/injective-tools/injective-address-api/pkg/utils"
	"github.com/injective-tools/injective-address-api/pkg/wallet"
)

// serveCmd starts the address conversion REST API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the address conversion REST API",
	Long: `Start an HTTP server exposing the address conversion engine.

Endpoints:
  GET  /api/v1/wallet/convert/{address}                       - auto-detect and convert
  GET  /api/v1/wallet/convert/evm-to-inj/{address}            - explicit EVM -> Injective
  GET  /api/v1/wallet/convert/inj-to-evm/{address}            - explicit Injective -> EVM
  GET  /api/v1/wallet/convert/inj-to-cosmos/{address}?prefix= - re-encode under another prefix
  POST /api/v1/wallet/convert/batch                           - batch conversion
  GET  /api/v1/health                                         - health check

Example:
  injective-address-api serve --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("port") {
			config.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		service := NewAddressAPIService(config)

		fmt.Println("🚀 Starting Injective Address Conversion API")
		fmt.Println("============================================")
		fmt.Printf("🌐 Port: %d\n", config.Server.Port)
		fmt.Printf("📦 Max batch size: %d\n", config.API.MaxBatchSize)
		fmt.Printf("⚙️  Batch workers: %d\n", config.API.BatchWorkers)
		fmt.Printf("🗄️  Cache: %d entries, %ds TTL\n", config.Cache.MaxEntries, config.Cache.TTLSeconds)

		return service.Start()
	},
}

// AddressAPIService serves the conversion engine over HTTP
type AddressAPIService struct {
	config    *utils.Config
	cache     *cache.Cache[*wallet.ConversionResult]
	startTime time.Time
}

// NewAddressAPIService creates a new API service
func NewAddressAPIService(config *utils.Config) *AddressAPIService {
	return &AddressAPIService{
		config:    config,
		cache:     cache.New[*wallet.ConversionResult](config.Cache.MaxEntries, time.Duration(config.Cache.TTLSeconds)*time.Second),
		startTime: time.Now(),
	}
}

// Router builds the HTTP router with all API routes
func (s *AddressAPIService) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleRoot).Methods("GET")

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Conversion endpoints
	api.HandleFunc("/wallet/convert/batch", s.handleBatchConvert).Methods("POST")
	api.HandleFunc("/wallet/convert/evm-to-inj/{address}", s.handleEvmToInj).Methods("GET")
	api.HandleFunc("/wallet/convert/inj-to-evm/{address}", s.handleInjToEvm).Methods("GET")
	api.HandleFunc("/wallet/convert/inj-to-cosmos/{address}", s.handleInjToCosmos).Methods("GET")
	api.HandleFunc("/wallet/convert/{address}", s.handleAutoConvert).Methods("GET")

	// Health endpoints
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/health/detailed", s.handleDetailedHealth).Methods("GET")

	// Enable CORS for web client integration
	if s.config.Server.EnableCORS {
		r.Use(corsMiddleware)
	}

	return r
}

// Start starts the API HTTP server
func (s *AddressAPIService) Start() error {
	r := s.Router()

	fmt.Printf("🌐 API available at http://localhost:%d/api/v1/\n", s.config.Server.Port)
	fmt.Println("\n📋 Available endpoints:")
	fmt.Println("   GET  /api/v1/wallet/convert/{address}                       - Auto-detect and convert")
	fmt.Println("   GET  /api/v1/wallet/convert/evm-to-inj/{address}            - EVM to Injective")
	fmt.Println("   GET  /api/v1/wallet/convert/inj-to-evm/{address}            - Injective to EVM")
	fmt.Println("   GET  /api/v1/wallet/convert/inj-to-cosmos/{address}?prefix= - Re-encode prefix")
	fmt.Println("   POST /api/v1/wallet/convert/batch                           - Batch conversion")
	fmt.Println("   GET  /api/v1/health                                         - Health check")
	fmt.Println("   GET  /api/v1/health/detailed                                - Health + cache stats")

	return http.ListenAndServe(fmt.Sprintf(":%d", s.config.Server.Port), r)
}

// HTTP Handlers

// handleRoot returns basic API information
func (s *AddressAPIService) handleRoot(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"name":    "Injective Address Conversion API",
		"version": version,
		"health":  "/api/v1/health",
	}
	writeJSON(w, http.StatusOK, response)
}

// handleAutoConvert auto-detects the address format and converts it
func (s *AddressAPIService) handleAutoConvert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address := vars["address"]

	cacheKey := "convert:" + address
	if result, ok := s.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, result)
		return
	}

	result, err := wallet.ConvertAddress(address)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.cache.Add(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}

// handleEvmToInj explicitly converts an EVM hex address to Injective format
func (s *AddressAPIService) handleEvmToInj(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address := vars["address"]

	injAddr, err := wallet.EvmToInjective(address)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := wallet.ConversionResult{
		Input:            address,
		InjectiveAddress: injAddr,
		EvmAddress:       strings.ToLower(address),
		SourceType:       wallet.SourceEVM,
	}
	writeJSON(w, http.StatusOK, result)
}

// handleInjToEvm explicitly converts an Injective address to EVM hex format
func (s *AddressAPIService) handleInjToEvm(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address := vars["address"]

	evmAddr, err := wallet.InjectiveToEvm(address)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := wallet.ConversionResult{
		Input:             address,
		InjectiveAddress:  address,
		EvmAddress:        evmAddr,
		SourceType:        wallet.SourceInjective,
		SourceChainPrefix: wallet.InjectivePrefix,
	}
	writeJSON(w, http.StatusOK, result)
}

// handleInjToCosmos re-encodes an Injective address under another prefix
func (s *AddressAPIService) handleInjToCosmos(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address := vars["address"]
	prefix := r.URL.Query().Get("prefix")

	if prefix == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("query parameter 'prefix' is required"))
		return
	}

	converted, err := wallet.InjectiveToCosmos(address, prefix)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	response := map[string]interface{}{
		"input_address":     address,
		"converted_address": converted,
		"target_prefix":     prefix,
	}
	writeJSON(w, http.StatusOK, response)
}

// handleBatchConvert converts up to MaxBatchSize addresses in one request
func (s *AddressAPIService) handleBatchConvert(w http.ResponseWriter, r *http.Request) {
	var req types.BatchConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	report, err := wallet.ConvertBatchParallel(r.Context(), req.Addresses, s.config.API.MaxBatchSize, s.config.API.BatchWorkers)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if report.Errors == nil {
		report.Errors = []wallet.BatchError{}
	}

	response := types.BatchConversionResponse{
		Conversions: report.Conversions,
		Total:       len(report.Conversions),
		Errors:      report.Errors,
	}
	writeJSON(w, http.StatusOK, response)
}

// handleHealth returns the basic health status
func (s *AddressAPIService) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version,
	})
}

// handleDetailedHealth returns health status plus cache statistics
func (s *AddressAPIService) handleDetailedHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.DetailedHealthResponse{
		HealthResponse: types.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   version,
		},
		Uptime: time.Since(s.startTime).String(),
		Cache:  s.cache.Stats(),
	})
}

// Utility functions

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, types.ErrorResponse{Detail: err.Error()})
}

// corsMiddleware enables CORS for web client integration
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on (overrides config)")
}
