// Package services contains stateless domain services that span aggregates.
// The order visibility service builds the role- and tab-scoped filter every
// listing goes through, so all read paths share one definition of "what can
// this principal see".
package services
