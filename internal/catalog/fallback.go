package catalog

import (
	"aevonx/internal/domain"

	"github.com/shopspring/decimal"
)

// FallbackRoutes is the static catalogue served while the backend is
// unreachable. Values are a point-in-time copy of the live catalogue and are
// only ever shown as a last resort.
func FallbackRoutes() []domain.ExchangeRoute {
	btc := domain.Currency{ID: "btc", Code: "BTC", Name: "Bitcoin", Type: domain.CurrencyCrypto}
	eth := domain.Currency{ID: "eth", Code: "ETH", Name: "Ethereum", Type: domain.CurrencyCrypto}
	usdtERC := domain.Currency{ID: "usdt-erc20", Code: "USDT", Name: "Tether ERC-20", Type: domain.CurrencyCrypto, Network: "ERC20"}
	ltc := domain.Currency{ID: "ltc", Code: "LTC", Name: "Litecoin", Type: domain.CurrencyCrypto}
	sol := domain.Currency{ID: "sol", Code: "SOL", Name: "Solana", Type: domain.CurrencyCrypto}

	dec := decimal.RequireFromString
	return []domain.ExchangeRoute{
		{ID: "btc-usdt", From: btc, To: usdtERC, Rate: dec("97234.56"), MinAmount: dec("0.001"), MaxAmount: dec("10"), Reserve: dec("500000"), IsActive: true},
		{ID: "eth-usdt", From: eth, To: usdtERC, Rate: dec("3456.78"), MinAmount: dec("0.01"), MaxAmount: dec("100"), Reserve: dec("250000"), IsActive: true},
		{ID: "usdt-btc", From: usdtERC, To: btc, Rate: dec("0.0000103"), MinAmount: dec("100"), MaxAmount: dec("100000"), Reserve: dec("5.5"), IsActive: true},
		{ID: "usdt-eth", From: usdtERC, To: eth, Rate: dec("0.000289"), MinAmount: dec("50"), MaxAmount: dec("50000"), Reserve: dec("75"), IsActive: true},
		{ID: "ltc-usdt", From: ltc, To: usdtERC, Rate: dec("125.45"), MinAmount: dec("0.1"), MaxAmount: dec("500"), Reserve: dec("100000"), IsActive: true},
		{ID: "sol-usdt", From: sol, To: usdtERC, Rate: dec("198.50"), MinAmount: dec("0.5"), MaxAmount: dec("1000"), Reserve: dec("150000"), IsActive: true},
	}
}
