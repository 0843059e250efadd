package quote

import (
	"testing"

	"aevonx/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	btc  = domain.Currency{ID: "btc", Code: "BTC", Name: "Bitcoin", Type: domain.CurrencyCrypto}
	eth  = domain.Currency{ID: "eth", Code: "ETH", Name: "Ethereum", Type: domain.CurrencyCrypto}
	usdt = domain.Currency{ID: "usdt-erc20", Code: "USDT", Name: "Tether ERC-20", Type: domain.CurrencyCrypto, Network: "ERC-20"}
	eur  = domain.Currency{ID: "eur", Code: "EUR", Name: "Euro", Type: domain.CurrencyFiat}
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func btcUsdtRoute(t *testing.T) domain.ExchangeRoute {
	t.Helper()
	return domain.ExchangeRoute{
		ID:        "btc-usdt",
		From:      btc,
		To:        usdt,
		Rate:      mustDec(t, "97000"),
		MinAmount: mustDec(t, "0.001"),
		MaxAmount: mustDec(t, "10"),
		Reserve:   mustDec(t, "500000"),
		IsActive:  true,
	}
}

// --- FindRoute ---

func TestFindRoute_MatchesActivePair(t *testing.T) {
	routes := []domain.ExchangeRoute{btcUsdtRoute(t)}

	r, ok := FindRoute(routes, "btc", "usdt-erc20")
	require.True(t, ok)
	require.Equal(t, "btc-usdt", r.ID)
}

func TestFindRoute_NoMatchIsNotAnError(t *testing.T) {
	routes := []domain.ExchangeRoute{btcUsdtRoute(t)}

	r, ok := FindRoute(routes, "btc", "eth")
	require.False(t, ok)
	require.Nil(t, r)
}

func TestFindRoute_SkipsInactiveRoutes(t *testing.T) {
	route := btcUsdtRoute(t)
	route.IsActive = false

	_, ok := FindRoute([]domain.ExchangeRoute{route}, "btc", "usdt-erc20")
	require.False(t, ok)
}

// --- ComputeDestinationAmount ---

func TestComputeDestinationAmount_CryptoDestinationEightPlaces(t *testing.T) {
	route := btcUsdtRoute(t)

	got, err := ComputeDestinationAmount(&route, "1")
	require.NoError(t, err)
	require.Equal(t, "97000.00000000", got)
}

func TestComputeDestinationAmount_FiatDestinationTwoPlaces(t *testing.T) {
	route := btcUsdtRoute(t)
	route.To = eur
	route.Rate = mustDec(t, "89123.45")

	got, err := ComputeDestinationAmount(&route, "0.5")
	require.NoError(t, err)
	require.Equal(t, "44561.73", got)
}

func TestComputeDestinationAmount_ExactDecimalProduct(t *testing.T) {
	// 0.1 * 0.2 has no exact binary representation; the decimal product must.
	route := btcUsdtRoute(t)
	route.Rate = mustDec(t, "0.2")

	got, err := ComputeDestinationAmount(&route, "0.1")
	require.NoError(t, err)
	require.Equal(t, "0.02000000", got)
}

func TestComputeDestinationAmount_NonNumericAmount(t *testing.T) {
	route := btcUsdtRoute(t)

	_, err := ComputeDestinationAmount(&route, "abc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not numeric")
}

func TestComputeDestinationAmount_MalformedRouteRaises(t *testing.T) {
	route := btcUsdtRoute(t)
	route.Rate = decimal.Zero

	_, err := ComputeDestinationAmount(&route, "1")
	require.ErrorIs(t, err, domain.ErrMalformedRoute)
}

func TestComputeDestinationAmount_MonotonicInSourceAmount(t *testing.T) {
	route := btcUsdtRoute(t)

	amounts := []string{"0.001", "0.01", "0.5", "1", "2.5", "10"}
	prev := decimal.NewFromInt(-1)
	for _, a := range amounts {
		got, err := ComputeDestinationAmount(&route, a)
		require.NoError(t, err)
		cur := mustDec(t, got)
		require.True(t, cur.GreaterThanOrEqual(prev), "destination for %s went down", a)
		prev = cur
	}
}

// --- Validate ---

func TestValidate_OrderedVerdicts(t *testing.T) {
	route := btcUsdtRoute(t)

	cases := []struct {
		name    string
		route   *domain.ExchangeRoute
		amount  string
		address string
		reason  domain.InvalidReason
	}{
		{name: "missing route wins over everything", route: nil, amount: "", address: "", reason: domain.ReasonPairUnavailable},
		{name: "empty amount", route: &route, amount: "", address: "addr", reason: domain.ReasonAmountRequired},
		{name: "non numeric amount", route: &route, amount: "1,5", address: "addr", reason: domain.ReasonAmountRequired},
		{name: "zero amount", route: &route, amount: "0", address: "addr", reason: domain.ReasonAmountRequired},
		{name: "negative amount", route: &route, amount: "-3", address: "addr", reason: domain.ReasonAmountRequired},
		{name: "below minimum", route: &route, amount: "0.0001", address: "addr", reason: domain.ReasonBelowMinimum},
		{name: "below minimum wins over empty address", route: &route, amount: "0.0001", address: "", reason: domain.ReasonBelowMinimum},
		{name: "above maximum", route: &route, amount: "11", address: "addr", reason: domain.ReasonAboveMaximum},
		{name: "above maximum wins over empty address", route: &route, amount: "11", address: "", reason: domain.ReasonAboveMaximum},
		{name: "whitespace address", route: &route, amount: "1", address: "   ", reason: domain.ReasonAddressRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(tc.route, tc.amount, tc.address)
			require.False(t, v.Valid)
			require.Equal(t, tc.reason, v.Reason)
			require.NotEmpty(t, v.Message)
		})
	}
}

func TestValidate_BelowMinimumMessageCarriesBoundAndCode(t *testing.T) {
	route := btcUsdtRoute(t)

	v := Validate(&route, "0.0001", "addr")
	require.Equal(t, domain.ReasonBelowMinimum, v.Reason)
	require.Equal(t, "Minimum amount is 0.001 BTC", v.Message)
}

func TestValidate_AboveMaximumMessageCarriesBound(t *testing.T) {
	route := btcUsdtRoute(t)

	v := Validate(&route, "15", "addr")
	require.Equal(t, domain.ReasonAboveMaximum, v.Reason)
	require.Equal(t, "Maximum amount is 10 BTC", v.Message)
}

func TestValidate_InRangeAmountsWithAddressAreValid(t *testing.T) {
	route := btcUsdtRoute(t)

	for _, a := range []string{"0.001", "0.5", "1", "9.99999999", "10"} {
		v := Validate(&route, a, "bc1q-some-address")
		require.True(t, v.Valid, "amount %s should be valid", a)
		require.Empty(t, v.Reason)
		require.Empty(t, v.Message)
	}
}

// --- SwapInputs ---

func TestSwapInputs_ExchangesRolesVerbatim(t *testing.T) {
	in := Inputs{FromID: "btc", ToID: "usdt-erc20", SourceAmount: "1", DestinationAmount: "97000.00000000"}

	out := SwapInputs(in)
	require.Equal(t, "usdt-erc20", out.FromID)
	require.Equal(t, "btc", out.ToID)
	require.Equal(t, "97000.00000000", out.SourceAmount)
	require.Equal(t, "1", out.DestinationAmount)
}

func TestSwapInputs_DoubleSwapRestoresCurrencySelection(t *testing.T) {
	in := Inputs{FromID: "btc", ToID: "usdt-erc20", SourceAmount: "1", DestinationAmount: "97000.00000000"}

	out := SwapInputs(SwapInputs(in))
	require.Equal(t, in.FromID, out.FromID)
	require.Equal(t, in.ToID, out.ToID)
}

// --- AvailableDestinations ---

func TestAvailableDestinations_PreservesSupplyOrder(t *testing.T) {
	first := btcUsdtRoute(t)
	second := btcUsdtRoute(t)
	second.ID = "btc-eth"
	second.To = eth
	third := btcUsdtRoute(t)
	third.ID = "btc-eur"
	third.To = eur
	inactive := btcUsdtRoute(t)
	inactive.ID = "btc-xrp"
	inactive.To = domain.Currency{ID: "xrp", Code: "XRP", Type: domain.CurrencyCrypto}
	inactive.IsActive = false

	dests := AvailableDestinations([]domain.ExchangeRoute{first, inactive, second, third}, "btc")
	require.Len(t, dests, 3)
	require.Equal(t, []string{"usdt-erc20", "eth", "eur"}, []string{dests[0].ID, dests[1].ID, dests[2].ID})
}

func TestAvailableDestinations_UnknownSource(t *testing.T) {
	dests := AvailableDestinations([]domain.ExchangeRoute{btcUsdtRoute(t)}, "doge")
	require.Empty(t, dests)
}

// --- Resolve ---

func TestResolve_ValidScenario(t *testing.T) {
	routes := []domain.ExchangeRoute{btcUsdtRoute(t)}

	q, err := Resolve(routes, Inputs{FromID: "btc", ToID: "usdt-erc20", SourceAmount: "1"}, "addr")
	require.NoError(t, err)
	require.True(t, q.Verdict.Valid)
	require.Equal(t, "97000.00000000", q.DestinationAmount)
	require.NotNil(t, q.Route)
	require.Equal(t, "btc-usdt", q.Route.ID)
}

func TestResolve_BelowMinimumStillComputesDestination(t *testing.T) {
	routes := []domain.ExchangeRoute{btcUsdtRoute(t)}

	q, err := Resolve(routes, Inputs{FromID: "btc", ToID: "usdt-erc20", SourceAmount: "0.0001"}, "addr")
	require.NoError(t, err)
	require.False(t, q.Verdict.Valid)
	require.Equal(t, domain.ReasonBelowMinimum, q.Verdict.Reason)
	require.Contains(t, q.Verdict.Message, "0.001 BTC")
	require.Equal(t, "9.70000000", q.DestinationAmount)
}

func TestResolve_PairUnavailable(t *testing.T) {
	routes := []domain.ExchangeRoute{btcUsdtRoute(t)}

	q, err := Resolve(routes, Inputs{FromID: "btc", ToID: "eth", SourceAmount: "1"}, "addr")
	require.NoError(t, err)
	require.False(t, q.Verdict.Valid)
	require.Equal(t, domain.ReasonPairUnavailable, q.Verdict.Reason)
	require.Nil(t, q.Route)
	require.Empty(t, q.DestinationAmount)
}

func TestResolve_MalformedRouteRaises(t *testing.T) {
	route := btcUsdtRoute(t)
	route.Reserve = mustDec(t, "-1")

	_, err := Resolve([]domain.ExchangeRoute{route}, Inputs{FromID: "btc", ToID: "usdt-erc20", SourceAmount: "1"}, "addr")
	require.ErrorIs(t, err, domain.ErrMalformedRoute)
}

func TestResolve_RedisplayIsReproducible(t *testing.T) {
	routes := []domain.ExchangeRoute{btcUsdtRoute(t)}
	in := Inputs{FromID: "btc", ToID: "usdt-erc20", SourceAmount: "0.12345678"}

	first, err := Resolve(routes, in, "addr")
	require.NoError(t, err)
	second, err := Resolve(routes, in, "addr")
	require.NoError(t, err)
	require.Equal(t, first.DestinationAmount, second.DestinationAmount)
	require.Equal(t, "11975.30766000", first.DestinationAmount)
}
