package domain

// Table is a mongo collection name
type Table string

const (
	TablePayTokens         Table = "pay_tokens"
	TableListings          Table = "listings"
	TableEscrowedBids      Table = "escrowed_bids"
	TableUsedNonces        Table = "used_nonces"
	TableMarketSettings    Table = "market_settings"
	TableMarketplaceEvents Table = "marketplace_events"
)
