// Package kernel contains shared value objects used across the freight domain:
// entity identifiers and the warehouse route a shipment travels. All value
// objects are immutable, validated at construction, and safe for concurrent use.
package kernel
