package stripe

import "github.com/evgolabs/evpay/provider"

// Register Stripe provider with the gateway registry
func init() {
	provider.Register("stripe", NewProvider)
}
