package iyzico

import "github.com/evgolabs/evpay/provider"

// Register Iyzico provider with the gateway registry
func init() {
	provider.Register("iyzico", NewProvider)
}
