// Package customer holds the Customer aggregate and its WhatsApp consent
// record. Consent is per notification category; a missing record means the
// customer never opted in, and the dispatcher treats both cases the same.
package customer
