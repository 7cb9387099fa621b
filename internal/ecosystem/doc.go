// Package ecosystem holds the built-in launch definition for the chainlink
// oracle node and the loader that materializes it into config.LaunchSpec
// records.
//
// The node reads its settings from the following environment variables:
//
//	CHAINLINK_TLS_PORT           TLS listener port; 0 disables the TLS listener
//	SECURE_COOKIES               require secure session cookies
//	CHAINLINK_DEV                development mode
//	LINK_CONTRACT_ADDRESS        address of the LINK token contract
//	ETH_URL                      blockchain RPC/WebSocket endpoint
//	ETH_CHAIN_ID                 expected chain ID, checked on connect
//	JSON_CONSOLE                 structured JSON log output
//	DATABASE_URL                 connection string for the backing database
//	FEATURE_EXTERNAL_INITIATORS  external job initiators
//	DATABASE_TIMEOUT             database operation timeout; 0 means none
//	MIN_INCOMING_CONFIRMATIONS   confirmations before an inbound event is accepted
//	MIN_OUTGOING_CONFIRMATIONS   confirmations before an outbound tx is final
//	FEATURE_FLUX_MONITOR         price-deviation monitoring
//	LOG_LEVEL                    log verbosity threshold
//	ALLOW_ORIGINS                CORS allowed origins; * permits all
//
// Values are passed through as literal strings. The node parses them.
package ecosystem
