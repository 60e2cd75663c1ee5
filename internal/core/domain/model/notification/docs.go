// Package notification holds the campaign and delivery-log model for the
// WhatsApp dispatcher. A campaign is one run over a shipment's customers;
// consent filtering happens per recipient and every recipient gets exactly
// one immutable delivery log row per run.
package notification
