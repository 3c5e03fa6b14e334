package pricefeed

import (
	"strings"

	"github.com/nosytlabs/nosytlabs-site/internal/content"
)

var knownCoins = map[string][2]string{ //nolint:gochecknoglobals
	"bitcoin":               {"BTC", "Bitcoin"},
	"ethereum":              {"ETH", "Ethereum"},
	"basic-attention-token": {"BAT", "Basic Attention Token"},
	"solana":                {"SOL", "Solana"},
	"monero":                {"XMR", "Monero"},
}

// Describe returns ticker symbol and display name of a CoinGecko coin id.
// Unknown ids get the upper case id and a humanized name.
func Describe(coin string) (symbol, name string) {
	if c, ok := knownCoins[coin]; ok {
		return c[0], c[1]
	}

	return strings.ToUpper(coin), content.Humanize(coin)
}
