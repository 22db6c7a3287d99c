// Package domain contains the core domain entities of the scan-to-cart
// pipeline: scan inputs, catalog product candidates, resolved products and
// recorded scan events. These types are free of infrastructure concerns so
// they can be shared across packages.
package domain
