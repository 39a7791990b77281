package papara

import "github.com/evgolabs/evpay/provider"

// Register Papara provider with the gateway registry
func init() {
	provider.Register("papara", NewProvider)
}
